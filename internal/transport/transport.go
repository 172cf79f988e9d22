package transport

import "net/http"

// Doer is the minimal surface of *http.Client the request layer needs.
// Tests substitute their own implementation.
type Doer interface {
	Do(req *http.Request) (*http.Response, error)
}

// New returns the client shared by the whole invocation. No timeout is set:
// the process blocks until the transport gives up or the peer answers, and
// an interrupt cancels the in-flight request through its context.
func New() *http.Client {
	return &http.Client{}
}
