package middleware

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	deliverycontext "usuarios/internal/delivery/context"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRequestIDMiddleware_GeneratesID(t *testing.T) {
	mw := NewRequestIDMiddleware(slog.New(slog.NewTextHandler(io.Discard, nil)))

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/usuarios", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	var seenID string
	next := func(c echo.Context) error {
		seenID = deliverycontext.GetRequestIDFromContext(c.Request().Context())

		return nil
	}

	require.NoError(t, mw.Process(next)(c))

	_, err := uuid.Parse(seenID)
	assert.NoError(t, err)
	assert.Equal(t, seenID, rec.Header().Get(deliverycontext.HeaderXRequestID))
}

func TestRequestIDMiddleware_PropagatesIncomingID(t *testing.T) {
	mw := NewRequestIDMiddleware(slog.New(slog.NewTextHandler(io.Discard, nil)))

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/usuarios", nil)
	req.Header.Set(deliverycontext.HeaderXRequestID, "client-chosen-id")
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	var seenID string
	next := func(c echo.Context) error {
		seenID = deliverycontext.GetRequestIDFromContext(c.Request().Context())

		return nil
	}

	require.NoError(t, mw.Process(next)(c))

	assert.Equal(t, "client-chosen-id", seenID)
	assert.Equal(t, "client-chosen-id", rec.Header().Get(deliverycontext.HeaderXRequestID))
}
