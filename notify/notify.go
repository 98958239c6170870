// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package notify

import (
	"fmt"
	"net/smtp"
	"sort"
	"strings"
	"time"

	"github.com/danielhkuo/skills-matrix/models"
)

// Notifier delivers an accepted response to an outbound sink. Delivery is
// best effort: the response is already persisted by the time Send runs,
// and a failure never rolls it back.
type Notifier interface {
	Send(rec models.Response) error
}

// Noop is the notifier used when no SMTP settings are configured.
type Noop struct{}

func (Noop) Send(models.Response) error { return nil }

// SMTP sends each accepted response as a plain-text email.
type SMTP struct {
	Addr     string // host:port
	Username string
	Password string
	From     string
	To       string
}

func (n *SMTP) Send(rec models.Response) error {
	host := n.Addr
	if i := strings.IndexByte(host, ':'); i >= 0 {
		host = host[:i]
	}

	msg := buildMessage(n.From, n.To, rec)
	auth := smtp.PlainAuth("", n.Username, n.Password, host)
	if err := smtp.SendMail(n.Addr, auth, n.From, []string{n.To}, msg); err != nil {
		return fmt.Errorf("failed to send response notification: %w", err)
	}
	return nil
}

func buildMessage(from, to string, rec models.Response) []byte {
	var b strings.Builder
	fmt.Fprintf(&b, "From: %s\r\n", from)
	fmt.Fprintf(&b, "To: %s\r\n", to)
	fmt.Fprintf(&b, "Subject: Skills Matrix Response - %s\r\n", rec.Timestamp.Format(time.DateTime))
	b.WriteString("MIME-Version: 1.0\r\nContent-Type: text/plain; charset=utf-8\r\n\r\n")

	fmt.Fprintf(&b, "Response %s from %s <%s>\r\n\r\n", rec.ID, rec.Name, rec.Email)

	skills := make([]string, 0, len(rec.Points))
	for skill := range rec.Points {
		skills = append(skills, skill)
	}
	sort.Strings(skills)
	for _, skill := range skills {
		fmt.Fprintf(&b, "%s: %d\r\n", skill, rec.Points[skill])
	}

	return []byte(b.String())
}
