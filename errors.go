package transformrs

import "fmt"

// APIError reports an error payload returned by a provider, e.g. a JSON body
// with a "detail" or "error" key, or a non-2xx status carrying a message.
// It is recoverable: the HTTP exchange itself succeeded.
type APIError struct {
	Provider   Provider
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("%s returned an error (status %d): %s", e.Provider, e.StatusCode, e.Message)
	}
	return fmt.Sprintf("%s returned an error: %s", e.Provider, e.Message)
}

// MalformedResponseError reports a provider response whose shape did not
// match the documented schema: a missing field, a base64 payload that does
// not decode, or a body that is not valid JSON where JSON was required.
// Snippet holds a truncated view of the offending payload for debugging.
//
// Network responses are untrusted input, so every shape violation surfaces
// as this error value; the library never aborts on one.
type MalformedResponseError struct {
	Provider Provider
	Reason   string
	Snippet  string
}

func (e *MalformedResponseError) Error() string {
	if e.Snippet == "" {
		return fmt.Sprintf("malformed %s response: %s", e.Provider, e.Reason)
	}
	return fmt.Sprintf("malformed %s response: %s: %s", e.Provider, e.Reason, e.Snippet)
}

// UnsupportedOperationError reports that a provider is not part of the closed
// set supported by an operation, or that a configuration option has no
// equivalent in the provider's API. It signals a configuration mistake at the
// call site, not a runtime condition of the provider.
type UnsupportedOperationError struct {
	Provider  Provider
	Operation string
}

func (e *UnsupportedOperationError) Error() string {
	return fmt.Sprintf("%s does not support %s", e.Provider, e.Operation)
}
