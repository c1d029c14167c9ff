package store

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"

	"github.com/lucy1234dev/server/internal/common"
	"github.com/lucy1234dev/server/internal/logging"
)

// Store owns one named document. All access goes through its mutex, so
// Update is a read-modify-write that cannot lose concurrent changes made
// through the same Store.
type Store[T any] struct {
	name    string
	backend Backend
	empty   func() T
	logger  logging.Logger
	mu      sync.Mutex
}

// New returns a Store for document name. empty builds the value used when
// the document is missing or unreadable.
func New[T any](name string, backend Backend, empty func() T, logger logging.Logger) *Store[T] {
	return &Store[T]{
		name:    name,
		backend: backend,
		empty:   empty,
		logger:  logger.With("module", "store", "store", name),
	}
}

func (s *Store[T]) Name() string { return s.name }

// Load returns the current document.
func (s *Store[T]) Load(ctx context.Context) (T, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.load(ctx)
}

// Save replaces the document.
func (s *Store[T]) Save(ctx context.Context, doc T) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.save(ctx, doc)
}

// Update loads the document, passes it to fn and saves what fn returns.
// When fn fails nothing is written and its error is returned as is.
func (s *Store[T]) Update(ctx context.Context, fn func(doc T) (T, error)) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	doc, err := s.load(ctx)
	if err != nil {
		return err
	}

	doc, err = fn(doc)
	if err != nil {
		return err
	}

	return s.save(ctx, doc)
}

func (s *Store[T]) load(ctx context.Context) (T, error) {
	data, err := s.backend.Read(ctx, s.name)
	if errors.Is(err, common.ErrorNotFound) {
		return s.empty(), nil
	}
	if err != nil {
		var zero T
		return zero, fmt.Errorf("%w: load %s: %w", common.ErrorInternal, s.name, err)
	}

	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		return s.empty(), nil
	}

	doc := s.empty()
	if err := json.Unmarshal(trimmed, &doc); err != nil {
		s.logger.Warn(ctx, "document is unreadable, starting from empty", "error", err)
		return s.empty(), nil
	}

	return doc, nil
}

func (s *Store[T]) save(ctx context.Context, doc T) error {
	data, err := Encode(doc)
	if err != nil {
		return fmt.Errorf("%w: encode %s: %w", common.ErrorInternal, s.name, err)
	}

	if err := s.backend.Write(ctx, s.name, data); err != nil {
		return fmt.Errorf("%w: save %s: %w", common.ErrorInternal, s.name, err)
	}

	s.logger.Debug(ctx, "document saved", "bytes", len(data))
	return nil
}

// Encode renders doc the way documents are stored: two-space indentation,
// UTF-8 text, no HTML escaping.
func Encode(doc any) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(doc); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
