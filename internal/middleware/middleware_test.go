package middleware

import (
	"bytes"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"

	"github.com/mmynk/roomiesync/internal/auth"
	"github.com/mmynk/roomiesync/internal/models"
)

func writeErr(w http.ResponseWriter, err error, code int) {
	http.Error(w, err.Error(), code)
}

func TestRequireAuth(t *testing.T) {
	jwtManager := auth.NewJWTManager("secret", time.Hour)
	token, err := jwtManager.Generate(models.SeedRoommates()[0])
	require.NoError(t, err)

	var seenID string
	var seenRole models.Role
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seenID = GetRoommateID(r.Context())
		seenRole = GetRole(r.Context())
		w.WriteHeader(http.StatusNoContent)
	})
	skip := func(r *http.Request) bool { return r.URL.Path == "/open" }
	h := RequireAuth(jwtManager, skip, writeErr)(next)

	tests := []struct {
		name     string
		path     string
		header   string
		want     int
		wantID   string
		wantRole models.Role
	}{
		{name: "missing token", path: "/api", want: http.StatusUnauthorized},
		{name: "not bearer", path: "/api", header: "Basic abc", want: http.StatusUnauthorized},
		{name: "bad token", path: "/api", header: "Bearer nope", want: http.StatusUnauthorized},
		{name: "valid token", path: "/api", header: "Bearer " + token, want: http.StatusNoContent, wantID: "1", wantRole: models.RoleAdmin},
		{name: "skipped route", path: "/open", want: http.StatusNoContent},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			seenID, seenRole = "", ""
			req := httptest.NewRequest(http.MethodGet, tt.path, nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			rec := httptest.NewRecorder()
			h.ServeHTTP(rec, req)
			require.Equal(t, tt.want, rec.Code)
			require.Equal(t, tt.wantID, seenID)
			require.Equal(t, tt.wantRole, seenRole)
		})
	}
}

func TestMetrics_Instrument(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewMetrics(reg)
	h := m.Instrument("/api/tasks", http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusCreated)
	}))

	for range 2 {
		h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodPost, "/api/tasks", nil))
	}

	require.Equal(t, 2.0, testutil.ToFloat64(m.requests.WithLabelValues("/api/tasks", "POST", "201")))
	require.Equal(t, 1, testutil.CollectAndCount(m.duration))
}

func TestCORS_Preflight(t *testing.T) {
	h := CORS(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("preflight reached the handler")
	}))
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodOptions, "/api/tasks", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	require.True(t, strings.Contains(rec.Header().Get("Access-Control-Allow-Methods"), "PUT"))
}

func TestLogging_RecordsAuthenticatedRoommate(t *testing.T) {
	var buf bytes.Buffer
	prev := slog.Default()
	slog.SetDefault(slog.New(slog.NewTextHandler(&buf, nil)))
	t.Cleanup(func() { slog.SetDefault(prev) })

	jwtManager := auth.NewJWTManager("secret", time.Hour)
	token, err := jwtManager.Generate(models.SeedRoommates()[1])
	require.NoError(t, err)

	ok := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})
	h := Logging(RequireAuth(jwtManager, nil, writeErr)(ok))

	req := httptest.NewRequest(http.MethodGet, "/api/tasks", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	h.ServeHTTP(httptest.NewRecorder(), req)

	require.Contains(t, buf.String(), "msg=\"Request completed\"")
	require.Contains(t, buf.String(), "roommate_id=2")
	require.Contains(t, buf.String(), "status=204")
}
