// Package transport provides the HTTP implementation of domain.Transport used
// by the hero gateway.
//
// All requests are JSON over HTTP and accept a context for cancellation and
// deadlines. Bodies are encoded as JSON with a Content-Type header; responses
// are decoded into the caller's value. Non-2xx statuses and network failures
// are returned as *Error, whose message is what the gateway reports to the
// user.
package transport
