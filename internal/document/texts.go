package document

import "fmt"

// Fixed legal templates. The placeholders are the signer name, the
// subject/entity name, the NIT or cédula, and (for habeas data) the declared
// notification email. The wording is the institutional text and must not be
// reflowed or reworded in code.

func habeasDataText(signer, subject, id, email string) string {
	return fmt.Sprintf("Yo, %s, mayor de edad, identificado(a) como aparece al pie de mi firma, "+
		"actuando en nombre propio y/o en Representación Legal de %s, identificado con NIT %s. "+
		"En ejercicio de mi Derecho a la Libertad y Autodeterminación Informática, autorizo a Ferreinox S.A.S. BIC "+
		"o a la entidad que mi acreedor designe para representarlo o a su cesionario, endosatario o a quien ostente "+
		"en el futuro la calidad de acreedor, para que la información comercial, crediticia, financiera y de servicios "+
		"sea administrada y consultada por terceras personas autorizadas expresamente por la Ley 1266 de 2008. "+
		"Autorizo también para que la notificación a que hace referencia el Decreto 2952 del 6 de agosto de 2010 "+
		"en su artículo 2º, se pueda surtir a través de mensaje de datos y para ello suministro y declaro el siguiente "+
		"correo electrónico: %s. Certifico que los datos personales suministrados por mí, son veraces, completos, "+
		"exactos, actualizados, reales y comprobables.",
		signer, subject, id, email)
}

func dataProcessingText(signer, subject, id string) string {
	return fmt.Sprintf("Yo, %s, mayor de edad, identificado(a) como aparece al pie de mi firma, "+
		"actuando en nombre propio y/o en Representación Legal de %s, identificado con NIT %s, manifiesto que de "+
		"conformidad con la Política de Tratamiento de Datos Personales para Clientes, Proveedores, Colaboradores y "+
		"Ex colaboradores implementada por FERREINOX S.A.S. BIC., sociedad identificada con NIT. 800224617-8, la cual "+
		"puede ser encontrada en sus instalaciones o página Web www.ferreinox.co; y de acuerdo a la relación comercial "+
		"existente entre las partes, autorizo a FERREINOX S.A.S. BIC para tratar mis datos personales y usarlos con el "+
		"fin de enviar información de ventas, compras, comercial, publicitaria, facturas y documentos de cobro, pago, "+
		"ofertas, promociones, para ofrecer novedades, comunicar cambios y actualizaciones de información de la "+
		"compañía, actividades de mercadeo, para fines estadísticos o administrativos que resulten de la ejecución del "+
		"objeto social de FERREINOX S.A.S. BIC.",
		signer, subject, id)
}
