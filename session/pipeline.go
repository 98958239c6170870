// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package session

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/danielhkuo/skills-matrix/auth"
	"github.com/danielhkuo/skills-matrix/models"
	"github.com/danielhkuo/skills-matrix/notify"
	"github.com/danielhkuo/skills-matrix/store"
	"github.com/danielhkuo/skills-matrix/validate"
)

var ErrPersistence = errors.New("failed to persist response")

// Store is the slice of the response store the pipeline needs.
type Store interface {
	Append(rec models.Response) error
	HasEmail(email string) (bool, error)
}

// Pipeline runs the submit transition: validate, persist, notify, reset.
type Pipeline struct {
	store       Store
	notifier    notify.Notifier
	exemptEmail string
}

func NewPipeline(st Store, notifier notify.Notifier, exemptEmail string) *Pipeline {
	return &Pipeline{store: st, notifier: notifier, exemptEmail: exemptEmail}
}

// Submit attempts to turn the session's allocation into a stored response.
//
// Any validation or persistence failure leaves the session in editing with
// the allocation untouched, so the submitter can correct and retry. On
// success the record is appended first, then notification is attempted
// (best effort), and only then is the ledger reset and the session moved
// to its terminal submitted state. The returned bool reports whether the
// notification went out.
func (p *Pipeline) Submit(s *Session, email, name string) (models.Response, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state == models.StateSubmitted {
		return models.Response{}, false, ErrAlreadySubmitted
	}

	snapshot := s.ledger.Snapshot()
	if err := validate.ForSubmit(snapshot, email, name, p.store, p.exemptEmail); err != nil {
		return models.Response{}, false, err
	}

	id, err := auth.GenerateResponseID()
	if err != nil {
		return models.Response{}, false, fmt.Errorf("failed to generate response ID: %w", err)
	}

	rec := models.Response{
		ID:        id,
		Timestamp: time.Now(),
		Email:     strings.TrimSpace(email),
		Name:      strings.TrimSpace(name),
		Points:    snapshot,
	}

	if err := p.store.Append(rec); err != nil {
		// The store re-checks uniqueness under its own lock; a concurrent
		// submit with the same email can fail here even though ForSubmit
		// passed above.
		if errors.Is(err, store.ErrDuplicateEmail) {
			return models.Response{}, false, fmt.Errorf("%w: %s", validate.ErrDuplicateSubmitter, rec.Email)
		}
		return models.Response{}, false, fmt.Errorf("%w: %v", ErrPersistence, err)
	}

	notified := true
	if err := p.notifier.Send(rec); err != nil {
		// The record is already durable; notification failure is non-fatal.
		slog.Warn("response notification failed", "response_id", rec.ID, "error", err)
		notified = false
	}

	s.ledger.Reset()
	s.state = models.StateSubmitted
	s.responseID = rec.ID

	slog.Info("response accepted", "response_id", rec.ID, "email", rec.Email)
	return rec, notified, nil
}
