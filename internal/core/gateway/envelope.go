package gateway

import (
	"encoding/json"
	"fmt"
)

// ErrorKind classifies a failed call.
type ErrorKind int

const (
	KindNone ErrorKind = iota
	KindConfig
	KindRequest
	KindNetwork
	KindApplication
)

func (k ErrorKind) String() string {
	switch k {
	case KindNone:
		return "none"
	case KindConfig:
		return "config"
	case KindRequest:
		return "request"
	case KindNetwork:
		return "network"
	case KindApplication:
		return "application"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

func (k ErrorKind) sentinel() error {
	switch k {
	case KindConfig:
		return ErrNotConfigured
	case KindRequest:
		return ErrRequest
	case KindNetwork:
		return ErrNetwork
	default:
		return ErrApplication
	}
}

// Response is the untyped result envelope. Exactly one of Data and Error is
// set. Status is the HTTP status when a response was received.
type Response struct {
	Data   json.RawMessage
	Error  string
	Status int
	Kind   ErrorKind
}

// Failed reports whether the call produced an error.
func (r Response) Failed() bool { return r.Error != "" }

// Err returns nil on success, otherwise an error wrapping the Kind's sentinel.
func (r Response) Err() error {
	if !r.Failed() {
		return nil
	}
	return fmt.Errorf("%w: %s", r.Kind.sentinel(), r.Error)
}

func failure(kind ErrorKind, status int, msg string) Response {
	return Response{Error: msg, Status: status, Kind: kind}
}

// Result is the typed result envelope returned by endpoint functions.
type Result[T any] struct {
	Data   *T
	Error  string
	Status int
	Kind   ErrorKind
}

// Failed reports whether the call produced an error.
func (r Result[T]) Failed() bool { return r.Error != "" }

// Err returns nil on success, otherwise an error wrapping the Kind's sentinel.
func (r Result[T]) Err() error {
	if !r.Failed() {
		return nil
	}
	return fmt.Errorf("%w: %s", r.Kind.sentinel(), r.Error)
}

// Decode converts a Response into a typed Result. A successful response whose
// body cannot be decoded into T becomes an application error.
func Decode[T any](r Response) Result[T] {
	if r.Failed() {
		return Result[T]{Error: r.Error, Status: r.Status, Kind: r.Kind}
	}
	var v T
	if len(r.Data) > 0 {
		if err := json.Unmarshal(r.Data, &v); err != nil {
			return Result[T]{
				Error:  fmt.Sprintf("decode response: %v", err),
				Status: r.Status,
				Kind:   KindApplication,
			}
		}
	}
	return Result[T]{Data: &v, Status: r.Status}
}
