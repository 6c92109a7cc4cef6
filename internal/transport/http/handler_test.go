package httptransport_test

import (
	"io"
	"log/slog"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"scoring-api/internal/scoring/auth"
	"scoring-api/internal/scoring/service"
	"scoring-api/internal/scoring/store"
	httptransport "scoring-api/internal/transport/http"
	"scoring-api/pkg/testutil"
)

var testTime = time.Date(2024, 5, 17, 10, 30, 0, 0, time.Local)

func newRouter(t *testing.T) (http.Handler, *store.Memory) {
	t.Helper()

	memory := store.NewMemory()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	checker := auth.New("", "", auth.WithClock(func() time.Time { return testTime }))
	svc, err := service.New(memory, checker, service.WithLogger(logger))
	require.NoError(t, err)

	return httptransport.NewRouter(httptransport.NewHandler(svc, logger)), memory
}

func TestMethodSuccessEnvelope(t *testing.T) {
	router, memory := newRouter(t)
	memory.Seed(map[string]string{"i:1": `["books"]`, "i:2": `["travel"]`})

	req := testutil.NewJSONRequest(t, http.MethodPost, "/method", map[string]any{
		"account":   "horns&hoofs",
		"login":     "h&f",
		"token":     auth.UserToken("horns&hoofs", "h&f", ""),
		"method":    "clients_interests",
		"arguments": map[string]any{"client_ids": []int{1, 2}},
	})
	rr := testutil.DoRequest(router, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	body := testutil.DecodeJSON(t, rr)
	assert.Equal(t, float64(http.StatusOK), body["code"])
	assert.Equal(t, map[string]any{
		"1": []any{"books"},
		"2": []any{"travel"},
	}, body["response"])
	assert.NotContains(t, body, "error")
}

func TestMethodAdminScore(t *testing.T) {
	router, _ := newRouter(t)

	req := testutil.NewJSONRequest(t, http.MethodPost, "/method", map[string]any{
		"login":  "admin",
		"token":  auth.AdminToken("", testTime),
		"method": "online_score",
		"arguments": map[string]any{
			"birthday": "20.04.1970", "gender": 2,
		},
	})
	rr := testutil.DoRequest(router, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	body := testutil.DecodeJSON(t, rr)
	assert.Equal(t, map[string]any{"score": float64(42)}, body["response"])
}

func TestMethodValidationErrorEnvelope(t *testing.T) {
	router, _ := newRouter(t)

	req := testutil.NewJSONRequest(t, http.MethodPost, "/method", map[string]any{
		"account":   "horns&hoofs",
		"login":     "h&f",
		"token":     auth.UserToken("horns&hoofs", "h&f", ""),
		"method":    "clients_interests",
		"arguments": map[string]any{"client_ids": []int{}},
	})
	rr := testutil.DoRequest(router, req)

	assert.Equal(t, http.StatusUnprocessableEntity, rr.Code)
	body := testutil.DecodeJSON(t, rr)
	assert.Equal(t, "fields must not be empty: [client_ids]", body["error"])
	assert.Equal(t, float64(http.StatusUnprocessableEntity), body["code"])
}

func TestMethodForbiddenDefaultText(t *testing.T) {
	router, _ := newRouter(t)

	req := testutil.NewJSONRequest(t, http.MethodPost, "/method", map[string]any{
		"login": "h&f", "token": "bogus", "method": "online_score",
		"arguments": map[string]any{"email": "a@b", "phone": "79175002040"},
	})
	rr := testutil.DoRequest(router, req)

	assert.Equal(t, http.StatusForbidden, rr.Code)
	assert.Equal(t, "Forbidden", testutil.DecodeJSON(t, rr)["error"])
}

func TestMethodEmptyBody(t *testing.T) {
	router, _ := newRouter(t)

	rr := testutil.DoRequest(router,
		testutil.NewRequestWithBody(t, http.MethodPost, "/method", ""))

	assert.Equal(t, http.StatusUnprocessableEntity, rr.Code)
	assert.Equal(t, "Invalid Request", testutil.DecodeJSON(t, rr)["error"])
}

func TestMethodMalformedJSON(t *testing.T) {
	router, _ := newRouter(t)

	rr := testutil.DoRequest(router,
		testutil.NewRequestWithBody(t, http.MethodPost, "/method", "{not json"))

	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Equal(t, "Bad Request", testutil.DecodeJSON(t, rr)["error"])
}

func TestUnknownMethodName(t *testing.T) {
	router, _ := newRouter(t)

	req := testutil.NewJSONRequest(t, http.MethodPost, "/method", map[string]any{
		"account": "horns&hoofs", "login": "h&f",
		"token":     auth.UserToken("horns&hoofs", "h&f", ""),
		"method":    "horoscope",
		"arguments": map[string]any{},
	})
	rr := testutil.DoRequest(router, req)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestUnknownRoute(t *testing.T) {
	router, _ := newRouter(t)

	rr := testutil.DoRequest(router,
		testutil.NewRequestWithBody(t, http.MethodPost, "/other", "{}"))

	assert.Equal(t, http.StatusNotFound, rr.Code)
	assert.Equal(t, "Not Found", testutil.DecodeJSON(t, rr)["error"])
}

func TestMetricsEndpoint(t *testing.T) {
	router, _ := newRouter(t)

	rr := testutil.DoRequest(router,
		testutil.NewRequest(t, http.MethodGet, "/metrics"))

	assert.Equal(t, http.StatusOK, rr.Code)
}
