// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package notify delivers accepted responses to an outbound email sink.

Delivery runs strictly after the response is persisted, and failures are
non-fatal: the submission stands, the error is logged and surfaced as a
flag on the submit response. When SMTP is not configured, Noop is used.
*/
package notify
