package workflow

import (
	"fmt"
	"time"

	"vincula/internal/consent"
)

// documentEmailBody is the confirmation message carrying the final document.
// The greeting goes to the signer (the legal representative for entities),
// while the subject line and filename carry the subject's name.
func documentEmailBody(req *consent.Request, documentID string, issuedAt time.Time) string {
	return fmt.Sprintf(`<h3>Confirmación de Autorización - Ferreinox S.A.S. BIC</h3>
<p>Estimado(a) <b>%s</b>,</p>
<p>Este correo confirma que hemos recibido y procesado exitosamente su formulario de autorización de datos.</p>
<p>Adjunto encontrará el documento PDF con la información y la constancia de su consentimiento.</p>
<p><b>ID del Documento:</b> %s<br><b>Fecha y Hora (Colombia):</b> %s</p>
<p>Gracias por confiar en Ferreinox S.A.S. BIC.</p>`,
		req.SignerName(), documentID, issuedAt.Format("2006-01-02 15:04:05"))
}
