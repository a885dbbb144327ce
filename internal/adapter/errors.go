package adapter

import "errors"

var (
	// ErrTransport wraps every network, timeout, or non-2xx outcome of a
	// master call. A timed-out call is a transport failure, never a silent
	// success.
	ErrTransport = errors.New("transport failure")

	// ErrUnknownRoute indicates a route name missing from the template
	// table.
	ErrUnknownRoute = errors.New("unknown route")
	// ErrUnboundPlaceholder indicates a template placeholder with no
	// parameter value.
	ErrUnboundPlaceholder = errors.New("unbound route placeholder")
	// ErrUnknownPlaceholder indicates a parameter that matches no
	// placeholder in the template.
	ErrUnknownPlaceholder = errors.New("unknown route placeholder")
)
