package backend

import "fmt"

// StatusError is returned when the backend answers with a non-2xx status.
// Message holds the backend's error string when the body carried one.
type StatusError struct {
	Code    int
	Status  string
	Message string
}

func (e *StatusError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("bad status: %s: %s", e.Status, e.Message)
	}
	return fmt.Sprintf("bad status: %s", e.Status)
}

// AppError is returned when the backend answers 2xx with success=false.
// Message is the backend's error string, shown to users verbatim.
type AppError struct {
	Message string
}

func (e *AppError) Error() string {
	return e.Message
}

func appError(msg, fallback string) *AppError {
	if msg == "" {
		msg = fallback
	}
	return &AppError{Message: msg}
}
