package consent

import "strings"

// Validate returns per-field messages for every required field of the active
// branch that is empty. A nil map means the request may leave the draft state
// (signature emptiness is checked separately by the signature package).
func (r *Request) Validate() map[string]string {
	fields := map[string]string{}
	switch r.Kind {
	case SubjectNaturalPerson:
		if r.Natural == nil {
			fields["natural"] = "datos de persona natural requeridos"
			break
		}
		requireAll(fields, map[string]string{
			"full_name":      r.Natural.FullName,
			"id_number":      r.Natural.IDNumber,
			"id_issue_place": r.Natural.IDIssuePlace,
			"birth_date":     r.Natural.BirthDate,
			"address":        r.Natural.Address,
			"city":           r.Natural.City,
			"phone":          r.Natural.Phone,
			"email":          r.Natural.Email,
		})
	case SubjectLegalEntity:
		if r.Entity == nil {
			fields["entity"] = "datos de persona jurídica requeridos"
			break
		}
		requireAll(fields, map[string]string{
			"legal_name":         r.Entity.LegalName,
			"trade_name":         r.Entity.TradeName,
			"tax_id":             r.Entity.TaxID,
			"address":            r.Entity.Address,
			"city":               r.Entity.City,
			"email":              r.Entity.Email,
			"rep_name":           r.Entity.RepName,
			"rep_id_number":      r.Entity.RepIDNumber,
			"rep_id_issue_place": r.Entity.RepIDIssuePlace,
		})
	default:
		fields["kind"] = "tipo de vinculación desconocido"
	}
	if len(fields) == 0 {
		return nil
	}
	return fields
}

func requireAll(fields map[string]string, required map[string]string) {
	for name, value := range required {
		if strings.TrimSpace(value) == "" {
			fields[name] = "campo obligatorio"
		}
	}
}
