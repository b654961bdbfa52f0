package identity

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"courier-print-service/internal/domain"
	"courier-print-service/internal/ports"
)

// Postgres-backed implementation of the IdentityStore port. Pairing writes
// happen out-of-band (see cmd/pairtool); the agent only reads the most
// recent pairing on each print.
type SQLIdentityStore struct{ DB *sql.DB }

func NewSQLIdentityStore(db *sql.DB) *SQLIdentityStore {
	return &SQLIdentityStore{DB: db}
}

// Load returns the most recently paired printer.
func (s *SQLIdentityStore) Load(ctx context.Context) (domain.PrinterIdentity, error) {
	if s.DB == nil {
		return domain.PrinterIdentity{}, errors.New("sql identity store: DB is nil")
	}

	query := `
	SELECT
		name,
		address
	FROM printer_pairings
	ORDER BY paired_at DESC
	LIMIT 1;
	`

	var identity domain.PrinterIdentity
	err := s.DB.QueryRowContext(ctx, query).Scan(&identity.Name, &identity.Address)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.PrinterIdentity{}, ports.ErrNoPairing
	}
	if err != nil {
		return domain.PrinterIdentity{}, fmt.Errorf("load pairing: query printer_pairings table: %w", err)
	}

	return identity, nil
}

// InitSchema creates the pairing table when missing.
func InitSchema(db *sql.DB) error {
	schema := `
	CREATE TABLE IF NOT EXISTS printer_pairings (
		address   TEXT PRIMARY KEY,
		name      TEXT NOT NULL,
		paired_at TIMESTAMPTZ NOT NULL DEFAULT now()
	);
	`
	if _, err := db.Exec(schema); err != nil {
		return fmt.Errorf("init schema: create printer_pairings table: %w", err)
	}
	return nil
}

// SavePairing records a pairing, replacing any previous record for the same
// address. This is the external "pair once" write, exposed for pairtool.
func SavePairing(ctx context.Context, db *sql.DB, identity domain.PrinterIdentity) error {
	if !identity.Configured() {
		return errors.New("save pairing: address must be non-empty")
	}

	query := `
	INSERT INTO printer_pairings (address, name, paired_at)
	VALUES ($1, $2, now())
	ON CONFLICT (address) DO UPDATE
	SET name = EXCLUDED.name,
		paired_at = EXCLUDED.paired_at;
	`
	if _, err := db.ExecContext(ctx, query, identity.Address, identity.Name); err != nil {
		return fmt.Errorf("save pairing for %q: %w", identity.Address, err)
	}
	return nil
}
