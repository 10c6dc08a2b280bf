package testutil

import (
	"encoding/json"
	"io"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// AssertStatusCode verifies the HTTP response status code
func AssertStatusCode(t *testing.T, resp *http.Response, expected int) {
	t.Helper()
	assert.Equal(t, expected, resp.StatusCode, "unexpected status code")
}

// AssertJSONResponse decodes JSON response into v and verifies success
func AssertJSONResponse(t *testing.T, resp *http.Response, v interface{}) {
	t.Helper()

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err, "failed to read response body")

	err = json.Unmarshal(body, v)
	require.NoError(t, err, "failed to unmarshal response: %s", string(body))
}

// ErrorEnvelope matches the API error response shape
type ErrorEnvelope struct {
	Timestamp string            `json:"timestamp"`
	Status    int               `json:"status"`
	Error     string            `json:"error"`
	Errors    map[string]string `json:"errors"`
}

// AssertErrorResponse verifies the error envelope status and message
func AssertErrorResponse(t *testing.T, resp *http.Response, expectedStatus int, expectedMessage string) {
	t.Helper()

	assert.Equal(t, expectedStatus, resp.StatusCode, "unexpected status code")

	var envelope ErrorEnvelope
	AssertJSONResponse(t, resp, &envelope)
	assert.Equal(t, expectedStatus, envelope.Status, "envelope status mismatch")
	assert.Contains(t, envelope.Error, expectedMessage, "error message mismatch")
	assert.NotEmpty(t, envelope.Timestamp, "envelope timestamp missing")
}

// AssertFieldError verifies a validation envelope contains a message
// for the given field
func AssertFieldError(t *testing.T, resp *http.Response, field string) {
	t.Helper()

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode, "unexpected status code")

	var envelope ErrorEnvelope
	AssertJSONResponse(t, resp, &envelope)
	assert.Contains(t, envelope.Errors, field, "missing field error for %s", field)
}
