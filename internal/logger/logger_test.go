package logger

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromCtx_AddsRequestID(t *testing.T) {
	ctx := WithRequestID(context.Background(), "req-123")
	assert.Equal(t, "req-123", RequestIDFrom(ctx))
	require.NotNil(t, FromCtx(ctx))
}

func TestFromCtx_NoRequestID(t *testing.T) {
	assert.Equal(t, "", RequestIDFrom(context.Background()))
	require.NotNil(t, FromCtx(context.Background()))
}

func TestRequestIDMiddleware(t *testing.T) {
	t.Run("GeneratesWhenMissing", func(t *testing.T) {
		var seen string
		h := RequestIDMiddleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			seen = RequestIDFrom(r.Context())
		}))

		w := httptest.NewRecorder()
		h.ServeHTTP(w, httptest.NewRequest("GET", "/", nil))

		assert.NotEmpty(t, seen)
		assert.Equal(t, seen, w.Header().Get("X-Request-ID"))
	})

	t.Run("PropagatesHeader", func(t *testing.T) {
		var seen string
		h := RequestIDMiddleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			seen = RequestIDFrom(r.Context())
		}))

		req := httptest.NewRequest("GET", "/", nil)
		req.Header.Set("X-Request-ID", "req-abc")
		h.ServeHTTP(httptest.NewRecorder(), req)

		assert.Equal(t, "req-abc", seen)
	})
}
