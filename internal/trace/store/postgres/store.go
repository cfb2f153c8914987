package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"vincula/internal/trace"
	dErrors "vincula/pkg/domain-errors"
)

// Log implements trace.Log on an append-only PostgreSQL table. Rows are only
// ever inserted; there is no UPDATE or DELETE path.
type Log struct {
	db *sql.DB
}

// New creates a PostgreSQL traceability log.
func New(db *sql.DB) *Log {
	return &Log{db: db}
}

// Migrate creates the log table when it does not exist. Column order mirrors
// the versioned Record layout; new columns may only be appended.
func (l *Log) Migrate(ctx context.Context) error {
	_, err := l.db.ExecContext(ctx, `
		CREATE TABLE IF NOT EXISTS trace_log (
			id BIGSERIAL PRIMARY KEY,
			ts TEXT NOT NULL,
			document_id TEXT NOT NULL,
			subject_name TEXT NOT NULL,
			identity_number TEXT NOT NULL,
			signer_name TEXT NOT NULL,
			email TEXT NOT NULL,
			city TEXT NOT NULL,
			phones TEXT NOT NULL,
			subject_kind TEXT NOT NULL,
			status TEXT NOT NULL,
			verification_code TEXT NOT NULL,
			purchasing_name TEXT NOT NULL DEFAULT '',
			purchasing_email TEXT NOT NULL DEFAULT '',
			purchasing_mobile TEXT NOT NULL DEFAULT '',
			collections_name TEXT NOT NULL DEFAULT '',
			collections_email TEXT NOT NULL DEFAULT '',
			collections_mobile TEXT NOT NULL DEFAULT '',
			birth_date TEXT NOT NULL DEFAULT '',
			created_at TIMESTAMPTZ NOT NULL DEFAULT now()
		)
	`)
	if err != nil {
		return fmt.Errorf("migrate trace_log: %w", err)
	}
	return nil
}

func (l *Log) Append(ctx context.Context, rec trace.Record) error {
	_, err := l.db.ExecContext(ctx, `
		INSERT INTO trace_log (
			ts, document_id, subject_name, identity_number, signer_name,
			email, city, phones, subject_kind, status, verification_code,
			purchasing_name, purchasing_email, purchasing_mobile,
			collections_name, collections_email, collections_mobile, birth_date
		) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14,$15,$16,$17,$18)
	`,
		rec.Timestamp, rec.DocumentID, rec.SubjectName, rec.IdentityNumber, rec.SignerName,
		rec.Email, rec.City, rec.Phones, rec.SubjectKind, rec.Status, rec.VerificationCode,
		rec.PurchasingName, rec.PurchasingEmail, rec.PurchasingMobile,
		rec.CollectionsName, rec.CollectionsEmail, rec.CollectionsMobile, rec.BirthDate,
	)
	if err != nil {
		return dErrors.Wrap(dErrors.CodeAppend, "could not append trace row", err)
	}
	return nil
}

func (l *Log) List(ctx context.Context) ([]trace.Record, error) {
	rows, err := l.db.QueryContext(ctx, `
		SELECT ts, document_id, subject_name, identity_number, signer_name,
			email, city, phones, subject_kind, status, verification_code,
			purchasing_name, purchasing_email, purchasing_mobile,
			collections_name, collections_email, collections_mobile, birth_date
		FROM trace_log ORDER BY id
	`)
	if err != nil {
		return nil, fmt.Errorf("list trace rows: %w", err)
	}
	defer rows.Close()

	var out []trace.Record
	for rows.Next() {
		var rec trace.Record
		if err := rows.Scan(
			&rec.Timestamp, &rec.DocumentID, &rec.SubjectName, &rec.IdentityNumber, &rec.SignerName,
			&rec.Email, &rec.City, &rec.Phones, &rec.SubjectKind, &rec.Status, &rec.VerificationCode,
			&rec.PurchasingName, &rec.PurchasingEmail, &rec.PurchasingMobile,
			&rec.CollectionsName, &rec.CollectionsEmail, &rec.CollectionsMobile, &rec.BirthDate,
		); err != nil {
			return nil, fmt.Errorf("scan trace row: %w", err)
		}
		out = append(out, rec)
	}
	return out, rows.Err()
}
