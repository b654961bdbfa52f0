package identity

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"courier-print-service/internal/domain"
	"courier-print-service/internal/ports"
)

// FileIdentityStore reads the pairing from a JSON file, for deployments
// without Postgres. The file is written by whatever performed the pairing;
// this store never writes it.
type FileIdentityStore struct{ Path string }

func NewFileIdentityStore(path string) *FileIdentityStore {
	return &FileIdentityStore{Path: path}
}

type pairingFile struct {
	Name    string `json:"name"`
	Address string `json:"address"`
}

func (s *FileIdentityStore) Load(ctx context.Context) (domain.PrinterIdentity, error) {
	raw, err := os.ReadFile(s.Path)
	if errors.Is(err, os.ErrNotExist) {
		return domain.PrinterIdentity{}, ports.ErrNoPairing
	}
	if err != nil {
		return domain.PrinterIdentity{}, fmt.Errorf("load pairing: read %q: %w", s.Path, err)
	}

	var p pairingFile
	if err := json.Unmarshal(raw, &p); err != nil {
		return domain.PrinterIdentity{}, fmt.Errorf("load pairing: parse %q: %w", s.Path, err)
	}

	if p.Address == "" {
		return domain.PrinterIdentity{}, ports.ErrNoPairing
	}

	return domain.PrinterIdentity{Name: p.Name, Address: p.Address}, nil
}
