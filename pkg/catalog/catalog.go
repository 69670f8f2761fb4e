// Package catalog records generated dataset artifacts.
//
// A catalog is the index of a dataset run: one Record per generated
// image, carrying the parameters and a content hash so a dataset can be
// audited or regenerated later. Two backends are provided:
//   - file: append-only JSONL for local CLI runs
//   - mongo: MongoDB collection for shared dataset registries
package catalog

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"time"

	"github.com/google/uuid"
)

// Record describes one generated artifact.
type Record struct {
	// UID uniquely identifies this catalog entry, not the row id: the
	// same row can be regenerated many times across runs.
	UID string `json:"uid" bson:"uid"`

	// ID is the dataset row id the artifact was generated for.
	ID int `json:"id" bson:"id"`

	// Angle is the contact angle in degrees.
	Angle float64 `json:"angle" bson:"angle"`

	// Seed is the RNG seed actually used.
	Seed uint64 `json:"seed" bson:"seed"`

	// File is the artifact file name (droplet_{id}.png).
	File string `json:"file" bson:"file"`

	// SHA256 is the hex digest of the PNG bytes.
	SHA256 string `json:"sha256" bson:"sha256"`

	// CreatedAt is when the artifact was generated.
	CreatedAt time.Time `json:"created_at" bson:"created_at"`
}

// NewRecord builds a record for a generated artifact, hashing the PNG
// bytes and assigning a fresh UID.
func NewRecord(id int, angle float64, seed uint64, file string, png []byte) Record {
	sum := sha256.Sum256(png)
	return Record{
		UID:       uuid.NewString(),
		ID:        id,
		Angle:     angle,
		Seed:      seed,
		File:      file,
		SHA256:    hex.EncodeToString(sum[:]),
		CreatedAt: time.Now().UTC(),
	}
}

// Store is the interface for catalog storage backends.
type Store interface {
	// Append adds one record to the catalog.
	Append(ctx context.Context, rec Record) error

	// List returns all records, oldest first.
	List(ctx context.Context) ([]Record, error)

	// Close releases backend resources.
	Close(ctx context.Context) error
}
