package notify

import (
	"strings"
	"testing"
	"time"

	"github.com/danielhkuo/skills-matrix/models"
)

func TestBuildMessage(t *testing.T) {
	rec := models.Response{
		ID:        "aabbccdd",
		Timestamp: time.Date(2025, 6, 1, 12, 30, 0, 0, time.UTC),
		Email:     "x@y.com",
		Name:      "Pat",
		Points:    map[string]int{"B": 0, "A": 10},
	}

	msg := string(buildMessage("form@example.com", "inbox@example.com", rec))

	for _, want := range []string{
		"From: form@example.com",
		"To: inbox@example.com",
		"Subject: Skills Matrix Response - 2025-06-01 12:30:00",
		"Response aabbccdd from Pat <x@y.com>",
		"A: 10",
		"B: 0",
	} {
		if !strings.Contains(msg, want) {
			t.Errorf("message missing %q:\n%s", want, msg)
		}
	}

	// Skills are listed in sorted order for stable output.
	if strings.Index(msg, "A: 10") > strings.Index(msg, "B: 0") {
		t.Error("skills not sorted in message body")
	}
}

func TestNoop(t *testing.T) {
	if err := (Noop{}).Send(models.Response{}); err != nil {
		t.Errorf("Noop.Send() error = %v, want nil", err)
	}
}
