package adapter

import (
	"fmt"
	"net/url"
	"strings"
)

// Route is the symbolic name of one master endpoint. All paths are built
// through [BuildRoute] so that unknown routes and unbound placeholders are
// rejected before any request leaves the client.
type Route string

const (
	RouteTargets         Route = "targets"
	RouteLibraryFile     Route = "library_file"
	RouteConfig          Route = "config"
	RouteData            Route = "data"
	RouteDataEncrypted   Route = "data_encrypted"
	RouteCommand         Route = "command"
	RouteVerbose         Route = "verbose"
	RouteStream          Route = "stream"
	RouteFrequency       Route = "frequency"
	RouteTagWrite        Route = "tag_write"
	RouteTagWriteBatch   Route = "tag_write_batch"
	RouteKeyExchange     Route = "key_exchange"
	RouteReset           Route = "reset"
	RouteLoggingEnable   Route = "logging_enable"
	RouteLoggingDisable  Route = "logging_disable"
	RouteLoggingSessions Route = "logging_sessions"
	RouteLoggingData     Route = "logging_data"
)

// routeTemplates maps every route to its path template. Segments starting
// with ':' are placeholders bound by name at build time.
var routeTemplates = map[Route]string{
	RouteTargets:         "/api/targets",
	RouteLibraryFile:     "/api/library/:file",
	RouteConfig:          "/api/targets/:device/config",
	RouteData:            "/api/targets/:device/data",
	RouteDataEncrypted:   "/api/targets/:device/data/encrypted",
	RouteCommand:         "/api/targets/:device/command",
	RouteVerbose:         "/api/targets/:device/verbose",
	RouteStream:          "/api/targets/:device/stream",
	RouteFrequency:       "/api/targets/:device/frequency",
	RouteTagWrite:        "/api/targets/:device/tags",
	RouteTagWriteBatch:   "/api/targets/:device/tags/batch",
	RouteKeyExchange:     "/api/targets/:device/key",
	RouteReset:           "/api/targets/:device/reset",
	RouteLoggingEnable:   "/api/targets/:device/logging/enable",
	RouteLoggingDisable:  "/api/targets/:device/logging/disable",
	RouteLoggingSessions: "/api/targets/:device/logging/sessions",
	RouteLoggingData:     "/api/targets/:device/logging/sessions/:key",
}

// BuildRoute substitutes params into the named route's template and returns
// the resulting path. Every placeholder must be bound, every param must
// match a placeholder, and values may not be empty; violations are reported
// as errors rather than sent to the master.
func BuildRoute(route Route, params map[string]string) (string, error) {
	template, ok := routeTemplates[route]
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownRoute, route)
	}

	used := make(map[string]bool, len(params))
	segments := strings.Split(template, "/")
	for i, segment := range segments {
		if !strings.HasPrefix(segment, ":") {
			continue
		}

		name := segment[1:]
		value, ok := params[name]
		if !ok || value == "" {
			return "", fmt.Errorf("%w: %q in route %q", ErrUnboundPlaceholder, name, route)
		}
		segments[i] = url.PathEscape(value)
		used[name] = true
	}

	for name := range params {
		if !used[name] {
			return "", fmt.Errorf("%w: %q not in route %q", ErrUnknownPlaceholder, name, route)
		}
	}

	return strings.Join(segments, "/"), nil
}
