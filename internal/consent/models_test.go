package consent

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validNatural() *Request {
	return &Request{
		Kind: SubjectNaturalPerson,
		Natural: &NaturalPerson{
			FullName:     "Ana Pérez",
			IDType:       IDTypeCC,
			IDNumber:     "123",
			IDIssuePlace: "Bogotá",
			BirthDate:    "1990-04-12",
			Address:      "Calle 1 # 2-3",
			City:         "Pereira",
			Phone:        "3001234567",
			Email:        "ana@x.co",
		},
	}
}

func validEntity() *Request {
	return &Request{
		Kind: SubjectLegalEntity,
		Entity: &LegalEntity{
			LegalName:       "Acme SAS",
			TradeName:       "Acme",
			TaxID:           "900111222",
			Address:         "Cra 10 # 20-30",
			City:            "Pereira",
			Landline:        "6063331111",
			Mobile:          "3109876543",
			Email:           "gerencia@acme.co",
			RepName:         "Carlos Ruiz",
			RepIDType:       IDTypeCC,
			RepIDNumber:     "456",
			RepIDIssuePlace: "Pereira",
		},
	}
}

func TestValidateNaturalComplete(t *testing.T) {
	assert.Nil(t, validNatural().Validate())
}

func TestValidateNaturalMissingFields(t *testing.T) {
	req := validNatural()
	req.Natural.Email = ""
	req.Natural.BirthDate = "  "

	fields := req.Validate()
	require.NotNil(t, fields)
	assert.Contains(t, fields, "email")
	assert.Contains(t, fields, "birth_date")
	assert.NotContains(t, fields, "full_name")
}

func TestValidateEntityComplete(t *testing.T) {
	assert.Nil(t, validEntity().Validate())
}

func TestValidateEntityOptionalContactsNotRequired(t *testing.T) {
	req := validEntity()
	req.Entity.Landline = ""
	req.Entity.Mobile = ""
	req.Entity.Purchasing = Contact{}
	req.Entity.Collections = Contact{}

	assert.Nil(t, req.Validate())
}

func TestValidateEntityMissingRepresentative(t *testing.T) {
	req := validEntity()
	req.Entity.RepName = ""
	req.Entity.RepIDNumber = ""

	fields := req.Validate()
	require.NotNil(t, fields)
	assert.Contains(t, fields, "rep_name")
	assert.Contains(t, fields, "rep_id_number")
}

func TestValidateMissingBranchStruct(t *testing.T) {
	req := &Request{Kind: SubjectNaturalPerson}
	assert.Contains(t, req.Validate(), "natural")

	req = &Request{Kind: SubjectLegalEntity}
	assert.Contains(t, req.Validate(), "entity")
}

func TestDerivedAccessors(t *testing.T) {
	nat := validNatural()
	assert.Equal(t, "Ana Pérez", nat.SignerName())
	assert.Equal(t, "Ana Pérez", nat.SubjectName())
	assert.Equal(t, "123", nat.IdentityNumber())
	assert.Equal(t, "C.C. No. 123 de Bogotá", nat.SignerIdentity())
	assert.Equal(t, "3001234567", nat.Phones())
	assert.Equal(t, "Persona Natural", nat.Kind.Label())

	ent := validEntity()
	assert.Equal(t, "Carlos Ruiz", ent.SignerName())
	assert.Equal(t, "Acme SAS", ent.SubjectName())
	assert.Equal(t, "900111222", ent.IdentityNumber())
	assert.Equal(t, "6063331111 / 3109876543", ent.Phones())
	assert.Equal(t, "Persona Jurídica", ent.Kind.Label())
}

func TestPhonesCollapsesBlankLandline(t *testing.T) {
	ent := validEntity()
	ent.Entity.Landline = "  "
	assert.Equal(t, "3109876543", ent.Phones())

	ent.Entity.Landline = "3109876543"
	assert.Equal(t, "3109876543", ent.Phones())
}
