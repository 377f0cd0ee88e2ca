package testutils

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/phrazzld/teachkit/internal/api/shared"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// CreateTestServer creates a httptest server with the given handler.
// Automatically registers cleanup via t.Cleanup() so callers don't need to manually close the server.
func CreateTestServer(t *testing.T, handler http.Handler) *httptest.Server {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(func() {
		server.Close()
	})
	return server
}

// CleanupResponseBody registers a cleanup function to close the response body
// to prevent resource leaks.
func CleanupResponseBody(t *testing.T, resp *http.Response) {
	t.Helper()
	if resp != nil && resp.Body != nil {
		t.Cleanup(func() {
			if err := resp.Body.Close(); err != nil {
				t.Logf("Warning: failed to close response body: %v", err)
			}
		})
	}
}

// PostJSON sends body (marshalled unless it is already a string) to path on server.
func PostJSON(t *testing.T, server *httptest.Server, path string, body interface{}) *http.Response {
	t.Helper()

	var payload []byte
	switch b := body.(type) {
	case string:
		payload = []byte(b)
	default:
		var err error
		payload, err = json.Marshal(body)
		require.NoError(t, err, "Failed to marshal request body")
	}

	resp, err := http.Post(server.URL+path, "application/json", bytes.NewReader(payload))
	require.NoError(t, err, "Failed to execute POST %s", path)
	CleanupResponseBody(t, resp)
	return resp
}

// Get sends a GET request to path on server.
func Get(t *testing.T, server *httptest.Server, path string) *http.Response {
	t.Helper()

	resp, err := http.Get(server.URL + path)
	require.NoError(t, err, "Failed to execute GET %s", path)
	CleanupResponseBody(t, resp)
	return resp
}

// DecodeJSONResponse reads resp's body into v.
func DecodeJSONResponse(t *testing.T, resp *http.Response, v interface{}) {
	t.Helper()

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err, "Failed to read response body")
	require.NoError(t, json.Unmarshal(body, v), "Failed to unmarshal response: %s", string(body))
}

// AssertErrorResponse checks that a response contains an error with the expected status code and message.
func AssertErrorResponse(
	t *testing.T,
	resp *http.Response,
	expectedStatus int,
	expectedErrorMsgPart string,
) {
	t.Helper()

	assert.Equal(t, expectedStatus, resp.StatusCode,
		"Expected status code %d but got %d", expectedStatus, resp.StatusCode)

	var errResp shared.ErrorResponse
	DecodeJSONResponse(t, resp, &errResp)

	assert.Contains(t, errResp.Error, expectedErrorMsgPart,
		"Expected error message to contain %q but got %q", expectedErrorMsgPart, errResp.Error)
	assert.NotEmpty(t, errResp.TraceID, "Expected error response to carry a trace ID")
}
