// Package shared provides the response envelope used across every module
// and HTTP boundary of the pre-inspection platform.
package shared

// Response is the uniform success/error wrapper all modules return to
// callers. Treat constructed values as immutable.
type Response[T any] struct {
	IsSuccess bool   `json:"success"`
	Message   string `json:"message,omitempty"`
	Data      T      `json:"data,omitempty"`
}

// Success builds an envelope carrying data. It never fails.
func Success[T any](data T) Response[T] {
	return Response[T]{IsSuccess: true, Message: "Success", Data: data}
}

// Error builds a failure envelope. Data is left at its zero value and
// must not be dereferenced by callers. Message content is not validated,
// but callers should supply a non-empty diagnostic.
func Error[T any](message string) Response[T] {
	return Response[T]{IsSuccess: false, Message: message}
}
