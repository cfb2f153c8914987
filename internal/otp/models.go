package otp

import "time"

// Challenge is one issued verification code bound to a destination address.
// At most one challenge is active per session; issuing a new one supersedes
// the previous, so only the latest code is ever accepted. There is no
// wall-clock expiry: a code remains valid until superseded or the form is
// edited or restarted.
type Challenge struct {
	Code        string    `json:"code"`
	Destination string    `json:"destination"`
	IssuedAt    time.Time `json:"issued_at"`
}
