package ports

import (
	"context"
	"errors"

	"courier-print-service/internal/domain"
)

// No printer has been paired yet.
var ErrNoPairing = errors.New("no printer pairing stored")

// Port: read access to the persisted printer identity. Pairing writes the
// record once outside this subsystem; every print reads it back here.
type IdentityStore interface {
	// Load the current pairing, or ErrNoPairing when none exists.
	Load(ctx context.Context) (domain.PrinterIdentity, error)
}
