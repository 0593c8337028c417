//go:build unit || e2e

package testutil

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
)

// Edit changes one field of a JSON request body.
type Edit func(body map[string]any)

// Payload renders v as the generic JSON object a client would send, then
// applies edits so validation cases can start from a valid request.
func Payload(t *testing.T, v any, edits ...Edit) map[string]any {
	t.Helper()

	raw, err := json.Marshal(v)
	require.NoError(t, err)

	var body map[string]any
	require.NoError(t, json.Unmarshal(raw, &body))

	for _, edit := range edits {
		edit(body)
	}
	return body
}

func Set(key string, value any) Edit {
	return func(body map[string]any) { body[key] = value }
}

func Drop(key string) Edit {
	return func(body map[string]any) { delete(body, key) }
}
