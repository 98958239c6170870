// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package testutil

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/danielhkuo/skills-matrix/catalog"
	"github.com/danielhkuo/skills-matrix/cliparse"
	"github.com/danielhkuo/skills-matrix/store"
)

// TestSkills is the catalog used across handler tests. Nine skills at the
// per-skill cap fill the 90-point budget exactly.
var TestSkills = []string{"A", "B", "C", "D", "E", "F", "G", "H", "I"}

// TestCatalog builds the standard test catalog.
func TestCatalog(t *testing.T) *catalog.Catalog {
	t.Helper()

	cat, err := catalog.New(TestSkills)
	if err != nil {
		t.Fatalf("Failed to build test catalog: %v", err)
	}
	return cat
}

// SetupTestStore creates a fresh CSV response store in a temp directory.
func SetupTestStore(t *testing.T, cat *catalog.Catalog, exemptEmail string) *store.Store {
	t.Helper()

	path := filepath.Join(t.TempDir(), "responses.csv")
	st, err := store.Open(path, cat, exemptEmail)
	if err != nil {
		t.Fatalf("Failed to open test store: %v", err)
	}
	return st
}

// GetTestConfig returns a standard test configuration
func GetTestConfig() cliparse.Config {
	return cliparse.Config{
		Port:          8090,
		StorePath:     "responses.csv",
		AdminPassword: "test-admin-password",
		ExemptEmail:   "tester@example.com",
	}
}

// MakeRequest creates an HTTP test request
func MakeRequest(method, path string, body interface{}, headers map[string]string) *http.Request {
	var req *http.Request
	if body != nil {
		jsonBody, _ := json.Marshal(body)
		req = httptest.NewRequest(method, path, bytes.NewReader(jsonBody))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}

	for k, v := range headers {
		req.Header.Set(k, v)
	}

	return req
}

// AssertStatus checks that the response has the expected status code
func AssertStatus(t *testing.T, w *httptest.ResponseRecorder, expected int) {
	t.Helper()
	if w.Code != expected {
		t.Errorf("Expected status %d, got %d. Body: %s", expected, w.Code, w.Body.String())
	}
}

// AssertJSON decodes the response body into the provided struct
func AssertJSON(t *testing.T, w *httptest.ResponseRecorder, v interface{}) {
	t.Helper()
	if err := json.NewDecoder(w.Body).Decode(v); err != nil {
		t.Fatalf("Failed to decode JSON response: %v", err)
	}
}
