package middleware

import (
	"bytes"
	"context"
	"io"
	"net/http"

	log "github.com/sirupsen/logrus"
)

type rawBodyCtxKey struct{}

// RawBodyCapture reads and stores the unmodified request body bytes in the
// request context before any handler can decode them. Signature verification
// must run over the exact wire bytes: re-serializing a parsed body changes
// whitespace and key order and invalidates the signature.
func RawBodyCapture() func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.Body == nil {
				next.ServeHTTP(w, r)
				return
			}

			rawBody, err := io.ReadAll(r.Body)
			if err != nil {
				log.Errorf("raw body capture, read body: %s", err)
				http.Error(w, "failed to read request body", http.StatusBadRequest)
				return
			}
			_ = r.Body.Close()

			r.Body = io.NopCloser(bytes.NewReader(rawBody))
			ctx := context.WithValue(r.Context(), rawBodyCtxKey{}, rawBody)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// RawBodyFromContext returns the captured wire bytes of the request body.
func RawBodyFromContext(ctx context.Context) ([]byte, bool) {
	rawBody, ok := ctx.Value(rawBodyCtxKey{}).([]byte)
	return rawBody, ok
}
