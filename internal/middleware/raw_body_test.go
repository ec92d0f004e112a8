package middleware

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRawBodyCapture(t *testing.T) {
	body := `{"aspect_type": "create", "object_id": 1}`

	var capturedBody []byte
	var captureOK bool
	var handlerBody []byte
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		capturedBody, captureOK = RawBodyFromContext(r.Context())
		var err error
		handlerBody, err = io.ReadAll(r.Body)
		require.NoError(t, err)
	})

	rr := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/strava/webhook", strings.NewReader(body))
	RawBodyCapture()(next).ServeHTTP(rr, req)

	assert.True(t, captureOK)
	assert.Equal(t, body, string(capturedBody))
	// body must still be readable downstream
	assert.Equal(t, body, string(handlerBody))
}

func TestRawBodyCapture_noBody(t *testing.T) {
	called := false
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
		_, ok := RawBodyFromContext(r.Context())
		assert.False(t, ok)
	})

	rr := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/strava/webhook", nil)
	req.Body = nil
	RawBodyCapture()(next).ServeHTTP(rr, req)

	assert.True(t, called)
}
