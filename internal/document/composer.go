// Package document renders the consent artifact: a paginated PDF with the
// identity table, the two legal authorizations, the signature block, and the
// traceability table. Output is byte-for-byte reproducible for identical
// inputs; the PDF creation date is pinned to the issuance timestamp so no
// wall-clock leaks into the bytes.
package document

import (
	"bytes"
	"fmt"
	"os"
	"time"

	"github.com/go-pdf/fpdf"

	"vincula/internal/consent"
	dErrors "vincula/pkg/domain-errors"
)

// Traceability is the issuance metadata embedded in section 4 of the
// document. IssuedAt is already in the subject's civil time zone.
type Traceability struct {
	DocumentID string
	IssuedAt   time.Time
	Channel    string
	Email      string
}

// Institutional palette.
var (
	darkBlue = [3]int{13, 71, 161}
	grey     = [3]int{211, 211, 211}
)

// Composer renders consent documents. It is stateless and safe for
// sequential reuse across sessions.
type Composer struct {
	institution string
	title       string
	slogan      string
}

// NewComposer builds a Composer for the given institution mark.
func NewComposer(institution string) *Composer {
	return &Composer{
		institution: institution,
		title:       "ACTUALIZACIÓN Y AUTORIZACIÓN DE DATOS",
		slogan:      "EVOLUCIONANDO JUNTOS",
	}
}

// Compose renders the full artifact. The build is all-or-nothing: any layout
// error returns a render failure and no bytes.
func (c *Composer) Compose(req *consent.Request, tr Traceability) ([]byte, error) {
	var out []byte
	err := withSignatureFile(req.Signature, func(signaturePath string) error {
		pdf := fpdf.New("P", "mm", "Letter", "")
		pdf.SetCreationDate(tr.IssuedAt)
		pdf.SetTitle(c.title, true)
		pdf.SetAuthor(c.institution, true)
		enc := pdf.UnicodeTranslatorFromDescriptor("")

		pdf.SetMargins(15, 30, 15)
		pdf.SetAutoPageBreak(true, 20)
		pdf.AliasNbPages("")
		pdf.SetHeaderFunc(func() { c.header(pdf, enc) })
		pdf.SetFooterFunc(func() { c.footer(pdf, enc) })
		pdf.AddPage()

		c.basicDataSection(pdf, enc, req)
		c.authorizationSections(pdf, enc, req, tr)
		c.signatureSection(pdf, enc, req, tr, signaturePath)

		if pdf.Err() {
			return dErrors.Wrap(dErrors.CodeRender, "document layout failed", pdf.Error())
		}

		var buf bytes.Buffer
		if err := pdf.Output(&buf); err != nil {
			return dErrors.Wrap(dErrors.CodeRender, "document output failed", err)
		}
		out = buf.Bytes()
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// header draws the institution mark and the document title on every page.
func (c *Composer) header(pdf *fpdf.Fpdf, enc func(string) string) {
	pdf.SetY(10)
	pdf.SetFont("Helvetica", "B", 12)
	pdf.SetTextColor(darkBlue[0], darkBlue[1], darkBlue[2])
	pdf.CellFormat(80, 8, enc(c.institution), "", 0, "L", false, 0, "")
	pdf.SetFont("Helvetica", "B", 13)
	pdf.CellFormat(0, 8, enc(c.title), "", 1, "R", false, 0, "")
	pdf.SetDrawColor(darkBlue[0], darkBlue[1], darkBlue[2])
	pdf.Line(15, 20, 201, 20)
}

// footer draws the slogan and the page number on every page.
func (c *Composer) footer(pdf *fpdf.Fpdf, enc func(string) string) {
	pdf.SetY(-15)
	pdf.SetFont("Helvetica", "B", 9)
	pdf.SetTextColor(darkBlue[0], darkBlue[1], darkBlue[2])
	pdf.CellFormat(90, 8, enc(c.slogan), "", 0, "L", false, 0, "")
	pdf.CellFormat(0, 8, enc(fmt.Sprintf("Página %d/{nb}", pdf.PageNo())), "", 0, "R", false, 0, "")
}

func (c *Composer) sectionTitle(pdf *fpdf.Fpdf, enc func(string) string, title string) {
	pdf.Ln(4)
	pdf.SetFont("Helvetica", "B", 13)
	pdf.SetTextColor(darkBlue[0], darkBlue[1], darkBlue[2])
	pdf.CellFormat(0, 9, enc(title), "", 1, "L", false, 0, "")
	pdf.Ln(1)
}

// basicDataSection renders the key/value identity table. Every row renders
// even when the value is empty, so the layout never varies with data.
func (c *Composer) basicDataSection(pdf *fpdf.Fpdf, enc func(string) string, req *consent.Request) {
	c.sectionTitle(pdf, enc, "1. DATOS BÁSICOS")

	var rows [][2]string
	if req.Kind == consent.SubjectLegalEntity {
		e := req.Entity
		rows = [][2]string{
			{"Razón Social:", e.LegalName},
			{"Nombre Comercial:", e.TradeName},
			{"NIT:", e.TaxID},
			{"Representante Legal:", e.RepName},
			{"Dirección:", e.Address},
			{"Ciudad:", e.City},
			{"Teléfono / Celular:", e.Landline + " / " + e.Mobile},
			{"Correo para Notificaciones:", e.Email},
		}
	} else {
		n := req.Natural
		rows = [][2]string{
			{"Nombre Completo:", n.FullName},
			{"No. Identificación:", n.IDNumber},
			{"Dirección:", n.Address},
			{"Teléfono / Celular:", n.Phone},
			{"Correo Electrónico:", n.Email},
		}
	}

	pdf.SetFont("Helvetica", "", 9)
	for _, row := range rows {
		pdf.SetFillColor(darkBlue[0], darkBlue[1], darkBlue[2])
		pdf.SetTextColor(255, 255, 255)
		pdf.SetDrawColor(grey[0], grey[1], grey[2])
		pdf.SetFont("Helvetica", "B", 9)
		pdf.CellFormat(56, 8, enc(row[0]), "1", 0, "L", true, 0, "")
		pdf.SetTextColor(0, 0, 0)
		pdf.SetFont("Helvetica", "", 9)
		pdf.CellFormat(0, 8, enc(row[1]), "1", 1, "L", false, 0, "")
	}
}

// authorizationSections renders the two fixed legal templates, justified to
// the page width. Pagination is automatic: overflow continues on the next
// page with header and footer preserved.
func (c *Composer) authorizationSections(pdf *fpdf.Fpdf, enc func(string) string, req *consent.Request, tr Traceability) {
	signer := req.SignerName()
	subject := req.SubjectName()
	id := req.IdentityNumber()

	c.sectionTitle(pdf, enc, "2. AUTORIZACIÓN HABEAS DATA")
	pdf.SetFont("Helvetica", "", 9)
	pdf.SetTextColor(0, 0, 0)
	pdf.MultiCell(0, 5, enc(habeasDataText(signer, subject, id, tr.Email)), "", "J", false)

	c.sectionTitle(pdf, enc, "3. AUTORIZACIÓN PARA EL TRATAMIENTO DE DATOS PERSONALES")
	pdf.SetFont("Helvetica", "", 9)
	pdf.MultiCell(0, 5, enc(dataProcessingText(signer, subject, id)), "", "J", false)
}

// signatureSection embeds the normalized signature image at a fixed aspect
// ratio beside the signer info block, then the traceability table.
func (c *Composer) signatureSection(pdf *fpdf.Fpdf, enc func(string) string, req *consent.Request, tr Traceability, signaturePath string) {
	c.sectionTitle(pdf, enc, "4. CONSTANCIA DE ACEPTACIÓN Y FIRMA DIGITAL")

	const imgW, imgH = 63.5, 25.4 // 2.5in x 1.0in
	if pdf.GetY()+imgH+40 > 250 {
		pdf.AddPage()
	}
	top := pdf.GetY()
	pdf.ImageOptions(signaturePath, 15, top, imgW, imgH, false,
		fpdf.ImageOptions{ImageType: "PNG"}, 0, "")
	pdf.Rect(15, top, imgW, imgH, "D")

	pdf.SetXY(85, top)
	pdf.SetFont("Helvetica", "", 9)
	info := fmt.Sprintf("Nombre: %s\nIdentificación: %s\nFecha de Firma: %s\nConsentimiento Vía: %s",
		req.SignerName(),
		req.SignerIdentity(),
		tr.IssuedAt.Format("2006-01-02 15:04:05"),
		tr.Channel,
	)
	pdf.MultiCell(0, 6, enc(info), "", "L", false)

	pdf.SetY(top + imgH + 8)
	traceRows := [][2]string{
		{"ID del Documento:", tr.DocumentID},
		{"Fecha y Hora:", tr.IssuedAt.Format("2006-01-02 15:04:05")},
		{"Consentimiento Vía:", tr.Channel},
		{"Correo Notificado:", tr.Email},
	}
	for _, row := range traceRows {
		pdf.SetFillColor(darkBlue[0], darkBlue[1], darkBlue[2])
		pdf.SetTextColor(255, 255, 255)
		pdf.SetDrawColor(grey[0], grey[1], grey[2])
		pdf.SetFont("Helvetica", "B", 9)
		pdf.CellFormat(56, 8, enc(row[0]), "1", 0, "L", true, 0, "")
		pdf.SetTextColor(0, 0, 0)
		pdf.SetFont("Helvetica", "", 9)
		pdf.CellFormat(0, 8, enc(row[1]), "1", 1, "L", false, 0, "")
	}
}

// withSignatureFile writes the signature PNG through a scoped temp file and
// guarantees cleanup on every exit path.
func withSignatureFile(data []byte, fn func(path string) error) error {
	f, err := os.CreateTemp("", "vincula-firma-*.png")
	if err != nil {
		return dErrors.Wrap(dErrors.CodeRender, "create signature temp file", err)
	}
	path := f.Name()
	defer func() {
		_ = os.Remove(path)
	}()

	if _, err := f.Write(data); err != nil {
		_ = f.Close()
		return dErrors.Wrap(dErrors.CodeRender, "write signature temp file", err)
	}
	if err := f.Close(); err != nil {
		return dErrors.Wrap(dErrors.CodeRender, "close signature temp file", err)
	}
	return fn(path)
}
