// Package notify defines the outbound notification collaborator. The
// workflow depends only on the Sender interface; SMTP wiring lives in the
// smtp subpackage and tests use the memory fake.
package notify

import "context"

// Attachment is an optional file carried by a message.
type Attachment struct {
	Filename string
	Content  []byte
}

// Message is one outbound email: OTP codes and the final document both go
// through this shape.
type Message struct {
	To         string
	Subject    string
	HTMLBody   string
	Attachment *Attachment
}

// Sender dispatches a message to its destination. Implementations own their
// timeouts; a returned error means the message was not delivered and the
// caller must fail closed.
type Sender interface {
	Send(ctx context.Context, msg Message) error
}
