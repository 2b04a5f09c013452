package handlers_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rohanp2002/project-x-backend/internal/api/handlers"
	"github.com/rohanp2002/project-x-backend/internal/api/router"
	"github.com/rohanp2002/project-x-backend/internal/domain/quote"
	"github.com/rohanp2002/project-x-backend/internal/infra/cache"
	"github.com/rohanp2002/project-x-backend/internal/infra/memory"
	authservice "github.com/rohanp2002/project-x-backend/internal/service/auth"
	quoteservice "github.com/rohanp2002/project-x-backend/internal/service/quote"
)

// fakeSource counts upstream calls and serves a fixed price table.
type fakeSource struct {
	calls  int
	prices map[string]decimal.Decimal
}

func (f *fakeSource) FetchPrice(_ context.Context, symbol string) (decimal.Decimal, error) {
	f.calls++
	if p, ok := f.prices[symbol]; ok {
		return p, nil
	}
	return decimal.Zero, quote.ErrSymbolNotFound
}

func newTestRouter(source *fakeSource) *gin.Engine {
	gin.SetMode(gin.TestMode)

	quoteSvc := quoteservice.NewService(source, cache.NewMemoryStore(), 60*time.Second)
	authSvc := authservice.NewService(memory.NewUserRepository(), []byte("test-secret"), 60*time.Minute)

	return router.New(&router.Config{
		HealthHandler:    handlers.NewHealthHandler(nil, nil),
		StockHandler:     handlers.NewStockHandler(quoteSvc),
		WatchlistHandler: handlers.NewWatchlistHandler(memory.NewWatchlistRepository()),
		AuthHandler:      handlers.NewAuthHandler(authSvc),
		AllowedOrigins:   []string{"http://localhost:3000"},
	})
}

func doJSON(r *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)
	return rr
}

func doForm(r *gin.Engine, path string, form url.Values) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)
	return rr
}

func TestHealth(t *testing.T) {
	r := newTestRouter(&fakeSource{})

	rr := doJSON(r, http.MethodGet, "/", "")
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `{"status":"OK"}`, rr.Body.String())
}

func TestGetStock(t *testing.T) {
	source := &fakeSource{prices: map[string]decimal.Decimal{
		"AAPL": decimal.NewFromFloat(150.0),
	}}
	r := newTestRouter(source)

	rr := doJSON(r, http.MethodGet, "/stocks/aapl", "")
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `{"symbol":"AAPL","price":150.0}`, rr.Body.String())

	// Immediate repeat returns the identical payload from cache.
	rr2 := doJSON(r, http.MethodGet, "/stocks/AAPL", "")
	assert.Equal(t, http.StatusOK, rr2.Code)
	assert.JSONEq(t, rr.Body.String(), rr2.Body.String())
	assert.Equal(t, 1, source.calls, "second request must be served from cache")
}

func TestGetStock_UnknownSymbol(t *testing.T) {
	r := newTestRouter(&fakeSource{})

	rr := doJSON(r, http.MethodGet, "/stocks/NOPE", "")
	assert.Equal(t, http.StatusNotFound, rr.Code)
}

func TestWatchlistScenario(t *testing.T) {
	r := newTestRouter(&fakeSource{})

	rr := doJSON(r, http.MethodPost, "/watchlist/", `{"symbol":"aapl","note":"buy dip"}`)
	require.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `{"id":1,"symbol":"AAPL","note":"buy dip"}`, rr.Body.String())

	rr = doJSON(r, http.MethodGet, "/watchlist/", "")
	require.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `[{"id":1,"symbol":"AAPL","note":"buy dip"}]`, rr.Body.String())

	rr = doJSON(r, http.MethodDelete, "/watchlist/1", "")
	require.Equal(t, http.StatusNoContent, rr.Code)
	assert.Empty(t, rr.Body.String())

	rr = doJSON(r, http.MethodGet, "/watchlist/", "")
	require.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `[]`, rr.Body.String())

	// Deleting the same id again is still 204.
	rr = doJSON(r, http.MethodDelete, "/watchlist/1", "")
	assert.Equal(t, http.StatusNoContent, rr.Code)
}

func TestWatchlistCreate_Validation(t *testing.T) {
	r := newTestRouter(&fakeSource{})

	cases := map[string]string{
		"missing symbol":  `{"note":"no symbol"}`,
		"bad json":        `{not json`,
		"symbol too long": `{"symbol":"ABCDEFGHIJK"}`,
	}
	for name, body := range cases {
		t.Run(name, func(t *testing.T) {
			rr := doJSON(r, http.MethodPost, "/watchlist/", body)
			assert.Equal(t, http.StatusUnprocessableEntity, rr.Code)
		})
	}
}

func TestWatchlistDelete_NonNumericID(t *testing.T) {
	r := newTestRouter(&fakeSource{})

	rr := doJSON(r, http.MethodDelete, "/watchlist/abc", "")
	assert.Equal(t, http.StatusUnprocessableEntity, rr.Code)
}

func TestSignupAndToken(t *testing.T) {
	r := newTestRouter(&fakeSource{})

	creds := url.Values{"username": {"alice@example.com"}, "password": {"s3cret"}}

	rr := doForm(r, "/signup/", creds)
	require.Equal(t, http.StatusCreated, rr.Code)
	assert.JSONEq(t, `{"id":1,"email":"alice@example.com"}`, rr.Body.String())

	// Duplicate signup fails with 400.
	rr = doForm(r, "/signup/", creds)
	assert.Equal(t, http.StatusBadRequest, rr.Code)

	// Valid credentials issue a bearer token.
	rr = doForm(r, "/token", creds)
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), `"token_type":"bearer"`)
	assert.Contains(t, rr.Body.String(), `"access_token"`)

	// Wrong password is rejected without detail.
	bad := url.Values{"username": {"alice@example.com"}, "password": {"wrong"}}
	rr = doForm(r, "/token", bad)
	assert.Equal(t, http.StatusUnauthorized, rr.Code)
}

func TestSignup_MissingFields(t *testing.T) {
	r := newTestRouter(&fakeSource{})

	rr := doForm(r, "/signup/", url.Values{"username": {"alice@example.com"}})
	assert.Equal(t, http.StatusUnprocessableEntity, rr.Code)
}

func TestCORSPreflight(t *testing.T) {
	r := newTestRouter(&fakeSource{})

	req := httptest.NewRequest(http.MethodOptions, "/watchlist/", nil)
	req.Header.Set("Origin", "http://localhost:3000")
	req.Header.Set("Access-Control-Request-Method", "POST")
	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusNoContent, rr.Code)
	assert.Equal(t, "http://localhost:3000", rr.Header().Get("Access-Control-Allow-Origin"))
}
