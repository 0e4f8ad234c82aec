package interfaces

import "context"

// INotifier delivers plain-text email.
//
// Send reports delivery as a boolean. Missing credentials, timeouts and
// provider errors all come back as false; implementations never panic into the
// caller's flow.
type INotifier interface {
	Send(ctx context.Context, to, subject, body string) bool
}
