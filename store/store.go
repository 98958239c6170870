// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import (
	"encoding/csv"
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/danielhkuo/skills-matrix/catalog"
	"github.com/danielhkuo/skills-matrix/models"
)

var (
	ErrDuplicateEmail = errors.New("a response from this email is already stored")
	ErrBadHeader      = errors.New("response file has an unrecognized header")
)

// Fixed leading columns; skill columns follow in catalog order.
var fixedColumns = []string{"response_id", "timestamp", "email", "name"}

// Store is the append-only, CSV-backed response store. The mutex is held
// across the duplicate check and the write, which is what makes email
// uniqueness hold under concurrent submitters.
type Store struct {
	mu          sync.Mutex
	path        string
	skills      []string // skill column order in the file
	emails      map[string]bool
	rows        int
	exemptEmail string
}

// Open opens or creates the response file at path. When the stored
// header's skill columns differ from the catalog, the file is rewritten
// with the union of both column sets (catalog order first, surviving
// extra columns after), missing values filled with 0.
func Open(path string, cat *catalog.Catalog, exemptEmail string) (*Store, error) {
	s := &Store{
		path:        path,
		skills:      cat.Names(),
		emails:      make(map[string]bool),
		exemptEmail: exemptEmail,
	}

	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		if err := s.writeAll(nil); err != nil {
			return nil, fmt.Errorf("failed to create response file: %w", err)
		}
		return s, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to open response file: %w", err)
	}

	// A zero-byte file (e.g. pre-created by touch or a crashed first run)
	// gets a header the same way a missing file does.
	if len(data) == 0 {
		if err := s.writeAll(nil); err != nil {
			return nil, fmt.Errorf("failed to initialize response file: %w", err)
		}
		return s, nil
	}

	header, records, err := parseFile(data)
	if err != nil {
		return nil, err
	}

	stored := header[len(fixedColumns):]
	if !sameColumns(stored, s.skills) {
		s.skills = unionColumns(s.skills, stored)
		if err := s.writeAll(records); err != nil {
			return nil, fmt.Errorf("failed to reconcile response file schema: %w", err)
		}
	}

	for _, rec := range records {
		s.emails[normalizeEmail(rec.Email)] = true
	}
	s.rows = len(records)

	return s, nil
}

// LoadAll returns every stored response in append order.
func (s *Store) LoadAll() ([]models.Response, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := os.ReadFile(s.path)
	if err != nil {
		return nil, fmt.Errorf("failed to read response file: %w", err)
	}
	_, records, err := parseFile(data)
	if err != nil {
		return nil, err
	}
	return records, nil
}

// Append durably adds one response. It fails with ErrDuplicateEmail when
// a non-exempt email is already present; the check and the write happen
// under the same lock.
func (s *Store) Append(rec models.Response) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	key := normalizeEmail(rec.Email)
	if s.emails[key] && key != normalizeEmail(s.exemptEmail) {
		return fmt.Errorf("%w: %s", ErrDuplicateEmail, rec.Email)
	}

	f, err := os.OpenFile(s.path, os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return fmt.Errorf("failed to open response file: %w", err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write(s.row(rec)); err != nil {
		return fmt.Errorf("failed to write response: %w", err)
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("failed to write response: %w", err)
	}
	if err := f.Sync(); err != nil {
		return fmt.Errorf("failed to sync response file: %w", err)
	}

	s.emails[key] = true
	s.rows++
	return nil
}

// HasEmail reports whether any stored response carries this email.
func (s *Store) HasEmail(email string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.emails[normalizeEmail(email)], nil
}

// Count returns the number of stored responses.
func (s *Store) Count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.rows
}

// Skills returns the file's skill column order.
func (s *Store) Skills() []string {
	out := make([]string, len(s.skills))
	copy(out, s.skills)
	return out
}

func (s *Store) header() []string {
	return append(append([]string{}, fixedColumns...), s.skills...)
}

func (s *Store) row(rec models.Response) []string {
	row := []string{
		rec.ID,
		rec.Timestamp.Format(time.RFC3339),
		rec.Email,
		rec.Name,
	}
	for _, skill := range s.skills {
		row = append(row, strconv.Itoa(rec.Points[skill]))
	}
	return row
}

// writeAll rewrites the whole file: header plus the given records mapped
// onto the current column set. Used at creation and schema reconciliation.
func (s *Store) writeAll(records []models.Response) error {
	f, err := os.Create(s.path)
	if err != nil {
		return err
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write(s.header()); err != nil {
		return err
	}
	for _, rec := range records {
		if err := w.Write(s.row(rec)); err != nil {
			return err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return err
	}
	return f.Sync()
}

func parseFile(data []byte) ([]string, []models.Response, error) {
	r := csv.NewReader(strings.NewReader(string(data)))
	rows, err := r.ReadAll()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to parse response file: %w", err)
	}
	if len(rows) == 0 {
		return nil, nil, ErrBadHeader
	}

	header := rows[0]
	if len(header) < len(fixedColumns) {
		return nil, nil, ErrBadHeader
	}
	for i, col := range fixedColumns {
		if header[i] != col {
			return nil, nil, fmt.Errorf("%w: column %d is %q, want %q", ErrBadHeader, i, header[i], col)
		}
	}
	skills := header[len(fixedColumns):]

	records := make([]models.Response, 0, len(rows)-1)
	for _, row := range rows[1:] {
		if len(row) != len(header) {
			return nil, nil, fmt.Errorf("%w: row has %d columns, want %d", ErrBadHeader, len(row), len(header))
		}
		ts, err := time.Parse(time.RFC3339, row[1])
		if err != nil {
			return nil, nil, fmt.Errorf("failed to parse timestamp %q: %w", row[1], err)
		}

		rec := models.Response{
			ID:        row[0],
			Timestamp: ts,
			Email:     row[2],
			Name:      row[3],
			Points:    make(map[string]int, len(skills)),
		}
		for i, skill := range skills {
			cell := row[len(fixedColumns)+i]
			if cell == "" {
				rec.Points[skill] = 0
				continue
			}
			v, err := strconv.Atoi(cell)
			if err != nil {
				return nil, nil, fmt.Errorf("failed to parse points for %q: %w", skill, err)
			}
			rec.Points[skill] = v
		}
		records = append(records, rec)
	}

	return header, records, nil
}

func sameColumns(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// unionColumns keeps catalog order first, then stored columns the
// catalog no longer knows about, in their stored order.
func unionColumns(cat, stored []string) []string {
	seen := make(map[string]bool, len(cat))
	out := make([]string, 0, len(cat)+len(stored))
	for _, c := range cat {
		seen[c] = true
		out = append(out, c)
	}
	for _, c := range stored {
		if !seen[c] {
			seen[c] = true
			out = append(out, c)
		}
	}
	return out
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
