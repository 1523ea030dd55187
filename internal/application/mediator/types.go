package mediator

import (
	"context"
)

// Request is a command or query sent through the mediator
type Request interface{}

// Response is whatever a handler returns for its request type
type Response interface{}

// RequestHandler handles one request type
type RequestHandler interface {
	Handle(ctx context.Context, request Request) (Response, error)
}

// HandlerFunc adapts a function to the handler chain
type HandlerFunc func(ctx context.Context, request Request) (Response, error)

// Middleware wraps handler execution, e.g. to time runs and count failures
type Middleware func(ctx context.Context, request Request, next HandlerFunc) (Response, error)
