package trace

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"vincula/internal/consent"
)

func TestRowLayoutIsStable(t *testing.T) {
	req := &consent.Request{
		Kind: consent.SubjectLegalEntity,
		Entity: &consent.LegalEntity{
			LegalName:       "Acme SAS",
			TradeName:       "Acme",
			TaxID:           "900111222",
			City:            "Pereira",
			Landline:        "606111",
			Mobile:          "310222",
			Email:           "gerencia@acme.co",
			RepName:         "Carlos Ruiz",
			RepIDType:       consent.IDTypeCC,
			RepIDNumber:     "456",
			RepIDIssuePlace: "Pereira",
			Purchasing:      consent.Contact{Name: "Lina", Email: "compras@acme.co", Mobile: "311"},
			Collections:     consent.Contact{Name: "Mario", Email: "cartera@acme.co", Mobile: "312"},
		},
	}
	issued := time.Date(2026, 3, 14, 15, 9, 26, 0, time.UTC)
	rec := NewRecord(req, "FER-20260314150926-900111222", issued, "482913", StatusSent)

	row := rec.Row()
	require.Len(t, row, Columns)
	assert.Equal(t, "2026-03-14 15:09:26", row[0])
	assert.Equal(t, "FER-20260314150926-900111222", row[1])
	assert.Equal(t, "Acme SAS", row[2])
	assert.Equal(t, "900111222", row[3])
	assert.Equal(t, "Carlos Ruiz", row[4])
	assert.Equal(t, "gerencia@acme.co", row[5])
	assert.Equal(t, "Pereira", row[6])
	assert.Equal(t, "606111 / 310222", row[7])
	assert.Equal(t, "Persona Jurídica", row[8])
	assert.Equal(t, StatusSent, row[9])
	assert.Equal(t, "482913", row[10])
	assert.Equal(t, []string{"Lina", "compras@acme.co", "311"}, row[11:14])
	assert.Equal(t, []string{"Mario", "cartera@acme.co", "312"}, row[14:17])
	// Birth-date column stays empty on the entity branch.
	assert.Equal(t, "", row[17])
}

func TestRowNaturalBranchFillsBirthDateOnly(t *testing.T) {
	req := &consent.Request{
		Kind: consent.SubjectNaturalPerson,
		Natural: &consent.NaturalPerson{
			FullName:     "Ana Pérez",
			IDType:       consent.IDTypeCC,
			IDNumber:     "123",
			IDIssuePlace: "Bogotá",
			BirthDate:    "1990-04-12",
			City:         "Pereira",
			Phone:        "3001234567",
			Email:        "ana@x.co",
		},
	}
	rec := NewRecord(req, "FER-20260314150926-123", time.Now(), "000001", StatusSent)

	row := rec.Row()
	require.Len(t, row, Columns)
	assert.Equal(t, "Ana Pérez", row[2])
	assert.Equal(t, "Ana Pérez", row[4])
	assert.Equal(t, "3001234567", row[7])
	assert.Equal(t, "Persona Natural", row[8])
	assert.Equal(t, []string{"", "", "", "", "", ""}, row[11:17])
	assert.Equal(t, "1990-04-12", row[17])
}

func TestErrorStatusIsSecondRowNotRewrite(t *testing.T) {
	rec := NewRecord(&consent.Request{
		Kind:    consent.SubjectNaturalPerson,
		Natural: &consent.NaturalPerson{FullName: "Ana", IDNumber: "1"},
	}, "FER-x-1", time.Now(), "111111", StatusErrorPrefix+"smtp dial timeout")

	assert.Equal(t, "Error: smtp dial timeout", rec.Status)
}
