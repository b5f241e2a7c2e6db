package types

import "fmt"

// ConfigurationError is returned when a required input such as the access
// token is missing. It is always raised before any network activity.
type ConfigurationError struct {
	Err error
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("configuration error: %v", e.Err)
}

func (e *ConfigurationError) Unwrap() error { return e.Err }

// TransportError covers connection, TLS, timeout and body read failures of
// the advisory request.
type TransportError struct {
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("transport error: %v", e.Err)
}

func (e *TransportError) Unwrap() error { return e.Err }

// DeserializationError is returned when a response body does not match the
// expected success schema. Error-shaped upstream responses end up here too.
type DeserializationError struct {
	Err error
}

func (e *DeserializationError) Error() string {
	return fmt.Sprintf("deserialization error: %v", e.Err)
}

func (e *DeserializationError) Unwrap() error { return e.Err }
