package adapter

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildRoute_NoPlaceholders(t *testing.T) {
	path, err := BuildRoute(RouteTargets, nil)
	require.NoError(t, err)
	assert.Equal(t, "/api/targets", path)
}

func TestBuildRoute_SubstitutesPlaceholders(t *testing.T) {
	path, err := BuildRoute(RouteData, map[string]string{"device": "plc-1"})
	require.NoError(t, err)
	assert.Equal(t, "/api/targets/plc-1/data", path)

	path, err = BuildRoute(RouteLoggingData, map[string]string{"device": "plc-1", "key": "abc123"})
	require.NoError(t, err)
	assert.Equal(t, "/api/targets/plc-1/logging/sessions/abc123", path)
}

func TestBuildRoute_EscapesValues(t *testing.T) {
	path, err := BuildRoute(RouteData, map[string]string{"device": "plc 1/х"})
	require.NoError(t, err)
	assert.NotContains(t, path, " ")
	assert.Equal(t, "/api/targets", path[:12])
}

func TestBuildRoute_UnknownRoute(t *testing.T) {
	_, err := BuildRoute(Route("nonsense"), nil)
	assert.ErrorIs(t, err, ErrUnknownRoute)
}

func TestBuildRoute_UnboundPlaceholder(t *testing.T) {
	_, err := BuildRoute(RouteData, nil)
	assert.ErrorIs(t, err, ErrUnboundPlaceholder)

	_, err = BuildRoute(RouteData, map[string]string{"device": ""})
	assert.ErrorIs(t, err, ErrUnboundPlaceholder)
}

func TestBuildRoute_UnknownPlaceholder(t *testing.T) {
	_, err := BuildRoute(RouteData, map[string]string{"device": "plc-1", "extra": "x"})
	assert.ErrorIs(t, err, ErrUnknownPlaceholder)
}

func TestBuildRoute_AllRoutesBuildable(t *testing.T) {
	params := map[string]string{"device": "d", "file": "f", "key": "k"}
	for route, template := range routeTemplates {
		needed := map[string]string{}
		for name, value := range params {
			if containsPlaceholder(template, name) {
				needed[name] = value
			}
		}
		_, err := BuildRoute(route, needed)
		assert.NoError(t, err, "route %s", route)
	}
}

func containsPlaceholder(template, name string) bool {
	for _, seg := range splitSegments(template) {
		if seg == ":"+name {
			return true
		}
	}
	return false
}

func splitSegments(template string) []string {
	var out []string
	start := 0
	for i := 0; i <= len(template); i++ {
		if i == len(template) || template[i] == '/' {
			out = append(out, template[start:i])
			start = i + 1
		}
	}
	return out
}
