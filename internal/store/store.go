// Package store reads and writes the single shared JSON document that is
// the entire user database. There is no versioning and no merge: Save
// replaces the whole document, so the last writer wins at document
// granularity.
package store

import (
	"context"
	"errors"

	"linkhub/internal/models"
)

var ErrUnavailable = errors.New("document store unavailable")

// DocumentStore is the whole-document contract. Load never fails: on any
// transport or status error it logs and returns an empty mapping, and
// callers proceed with what they got. Save reports failure so the caller
// can surface it, but nothing is retried or rolled back.
type DocumentStore interface {
	Load(ctx context.Context) map[string]*models.User
	Save(ctx context.Context, users map[string]*models.User) error
	Ping(ctx context.Context) error
}
