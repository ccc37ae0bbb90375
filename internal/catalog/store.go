// DalatGuide - Da Lat Tourism Recommendations and Travel Chat Assistant
// Copyright 2026 DalatGuide Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/dalatguide/dalatguide

// Package catalog supplies the place snapshot the engine consumes.
//
// The engine's contract is a synchronous read returning the fully
// materialized catalog; there is no cache and no invalidation protocol, the
// file is re-read on every request.
package catalog

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/goccy/go-json"

	"github.com/dalatguide/dalatguide/internal/engine"
)

// ErrEmptyCatalog indicates the catalog file decoded to zero places.
var ErrEmptyCatalog = errors.New("catalog: no places loaded")

// FileStore reads a JSON array of places from disk on every call.
type FileStore struct {
	path string
}

// NewFileStore creates a store backed by the given JSON file.
func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

// Places loads and decodes the catalog file. A missing or malformed file is
// a failed precondition surfaced to the caller; the engine is never invoked
// with a partial snapshot.
func (s *FileStore) Places(ctx context.Context) ([]engine.Place, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	data, err := os.ReadFile(s.path)
	if err != nil {
		return nil, fmt.Errorf("catalog: read %s: %w", s.path, err)
	}

	var places []engine.Place
	if err := json.Unmarshal(data, &places); err != nil {
		return nil, fmt.Errorf("catalog: decode %s: %w", s.path, err)
	}
	if len(places) == 0 {
		return nil, ErrEmptyCatalog
	}
	return places, nil
}

// StaticStore serves a fixed in-memory snapshot, for tests and demo mode.
type StaticStore struct {
	places []engine.Place
}

// NewStaticStore creates a store over the given slice.
func NewStaticStore(places []engine.Place) *StaticStore {
	return &StaticStore{places: places}
}

// Places returns the fixed snapshot.
func (s *StaticStore) Places(_ context.Context) ([]engine.Place, error) {
	if len(s.places) == 0 {
		return nil, ErrEmptyCatalog
	}
	return s.places, nil
}
