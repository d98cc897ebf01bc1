package api

import "fmt"

// AuthError means the login endpoint rejected the credentials (or answered
// with any non-success status). The session store is never touched by the
// gateway on this path.
type AuthError struct {
	Status int
}

func (e *AuthError) Error() string {
	return fmt.Sprintf("login failed: http %d", e.Status)
}

func (e *AuthError) HTTPStatus() int { return e.Status }

// RequestError is any failed authenticated call. Status > 0 carries the
// HTTP status; Status == 0 means the request never got a response and Err
// holds the transport cause. Callers treat both the same way: the
// operation is over, nothing is retried, prior state stands.
type RequestError struct {
	Method string
	Path   string
	Status int
	Err    error
}

func (e *RequestError) Error() string {
	if e.Status == 0 {
		return fmt.Sprintf("%s %s: %v", e.Method, e.Path, e.Err)
	}
	return fmt.Sprintf("%s %s: http %d", e.Method, e.Path, e.Status)
}

func (e *RequestError) Unwrap() error { return e.Err }

func (e *RequestError) HTTPStatus() int { return e.Status }
