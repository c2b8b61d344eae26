package api

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/spotwish/spotwish-api/internal/api/shared"
	"github.com/spotwish/spotwish-api/internal/service/auth"
	"github.com/spotwish/spotwish-api/internal/service/authz"
	"github.com/stretchr/testify/require"
)

// newJSONRequest builds a request with a JSON-encoded body.
func newJSONRequest(t *testing.T, method, target string, body interface{}) *http.Request {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}

	req := httptest.NewRequest(method, target, &buf)
	req.Header.Set("Content-Type", "application/json")
	return req
}

// withIdentity attaches an authenticated identity to the request, the way
// the auth middleware does.
func withIdentity(r *http.Request, identity authz.Identity) *http.Request {
	ctx := context.WithValue(r.Context(), shared.IdentityContextKey, &identity)
	return r.WithContext(ctx)
}

// withClaims attaches validated token claims to the request.
func withClaims(r *http.Request, claims *auth.Claims) *http.Request {
	ctx := context.WithValue(r.Context(), shared.ClaimsContextKey, claims)
	return r.WithContext(ctx)
}

// withURLParam injects a chi route parameter so handlers can be exercised
// without a full router.
func withURLParam(r *http.Request, key, value string) *http.Request {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add(key, value)
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}

// decodeBody decodes the recorded JSON response body into v.
func decodeBody(t *testing.T, rec *httptest.ResponseRecorder, v interface{}) {
	t.Helper()
	require.NoError(t, json.NewDecoder(rec.Body).Decode(v))
}

// testClaims returns claims for a token issued now for the given user.
func testClaims(userID uuid.UUID) *auth.Claims {
	now := time.Now().UTC()
	return &auth.Claims{
		UserID:    userID,
		Subject:   userID.String(),
		IssuedAt:  now,
		ExpiresAt: now.Add(time.Hour),
		ID:        uuid.New().String(),
	}
}
