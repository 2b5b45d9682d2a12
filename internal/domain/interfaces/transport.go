package interfaces

import "context"

// Transport performs one JSON request against the backend. A non-nil in is
// encoded as the request body; a non-nil out receives the decoded response.
type Transport interface {
	Do(ctx context.Context, method, path string, in, out any) error
}
