package directory

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/QueryGate/pdp-go/internal/types"
)

// Document is the on-disk directory format: one JSON object holding the
// full user and role listings.
type Document struct {
	Users []types.User `json:"users"`
	Roles []types.Role `json:"roles"`
}

// LoadFile reads a directory document and builds a validated snapshot. Any
// malformed content is a load error; per spec a broken directory is an
// operator problem, never a per-request decision.
func LoadFile(path string) (*Snapshot, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read directory file: %w", err)
	}
	var doc Document
	if err := json.Unmarshal(b, &doc); err != nil {
		return nil, fmt.Errorf("parse directory file %s: %w", path, err)
	}
	snap, err := NewSnapshot(doc.Users, doc.Roles)
	if err != nil {
		return nil, fmt.Errorf("directory file %s: %w", path, err)
	}
	return snap, nil
}
