package routers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/mufasadev/account-ledger/internal/di"
	"github.com/mufasadev/account-ledger/internal/domain/models"
	apperrors "github.com/mufasadev/account-ledger/internal/errors"
	"github.com/mufasadev/account-ledger/internal/infrastructure/seed"
	"github.com/mufasadev/account-ledger/internal/usecases/dtos"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRouter(t *testing.T) *chi.Mux {
	t.Helper()
	container, err := di.NewContainer(context.Background(), seed.NewStaticRepository([]models.SeedAccount{
		{ID: "acct-1", Credential: "key-1", Balance: decimal.NewFromInt(200), Currency: "PKR"},
		{ID: "acct-2", Credential: "key-2", Balance: decimal.NewFromInt(10), Currency: "USD"},
	}))
	require.NoError(t, err)
	return NewRouter(container)
}

func do(t *testing.T, router http.Handler, method, path, credential, body string) *httptest.ResponseRecorder {
	t.Helper()
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	if credential != "" {
		req.Header.Set("X-API-Key", credential)
	}
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&v))
	return v
}

func TestWelcomeAndPing(t *testing.T) {
	router := newTestRouter(t)

	rec := do(t, router, http.MethodGet, "/", "", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Welcome to the Banking API", decode[map[string]string](t, rec)["message"])

	rec = do(t, router, http.MethodGet, "/ping", "", "")
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestScenario(t *testing.T) {
	router := newTestRouter(t)

	rec := do(t, router, http.MethodGet, "/balance/", "key-1", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, dtos.BalanceDTO{User: "acct-1", Balance: "200.00", Currency: "PKR"}, decode[dtos.BalanceDTO](t, rec))

	rec = do(t, router, http.MethodPost, "/deposit/", "key-1", `{"amount": 50}`)
	require.Equal(t, http.StatusOK, rec.Code)
	receipt := decode[dtos.ReceiptDTO](t, rec)
	assert.Equal(t, "Deposit successful", receipt.Message)
	assert.Equal(t, "250.00", receipt.NewBalance)
	assert.Equal(t, "50.00", receipt.Amount)
	assert.NotEmpty(t, receipt.TransactionID)

	rec = do(t, router, http.MethodPost, "/withdraw/", "key-1", `{"amount": "300"}`)
	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "insufficient funds", decode[apperrors.HTTPError](t, rec).Message)

	rec = do(t, router, http.MethodGet, "/balance", "key-1", "")
	assert.Equal(t, "250.00", decode[dtos.BalanceDTO](t, rec).Balance)

	rec = do(t, router, http.MethodPost, "/withdraw", "key-1", `{"amount": "49.99"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	receipt = decode[dtos.ReceiptDTO](t, rec)
	assert.Equal(t, "Withdrawal successful", receipt.Message)
	assert.Equal(t, "200.01", receipt.NewBalance)
}

func TestBearerCredential(t *testing.T) {
	router := newTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/balance", nil)
	req.Header.Set("Authorization", "Bearer key-2")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, dtos.BalanceDTO{User: "acct-2", Balance: "10.00", Currency: "USD"}, decode[dtos.BalanceDTO](t, rec))
}

func TestUnauthenticated(t *testing.T) {
	router := newTestRouter(t)

	requests := []struct {
		method, path, body string
	}{
		{http.MethodGet, "/balance", ""},
		{http.MethodPost, "/deposit", `{"amount": 1}`},
		{http.MethodPost, "/withdraw", `{"amount": 1}`},
	}

	for _, r := range requests {
		for _, credential := range []string{"", "wrong-key"} {
			rec := do(t, router, r.method, r.path, credential, r.body)
			assert.Equal(t, http.StatusUnauthorized, rec.Code, "%s %s %q", r.method, r.path, credential)
			assert.Equal(t, apperrors.ErrInvalidCredential, decode[apperrors.HTTPError](t, rec).Message)
		}
	}

	rec := do(t, router, http.MethodGet, "/balance", "key-1", "")
	assert.Equal(t, "200.00", decode[dtos.BalanceDTO](t, rec).Balance)
}

func TestCredentialCheckedBeforeBody(t *testing.T) {
	router := newTestRouter(t)

	for _, path := range []string{"/deposit", "/withdraw"} {
		for _, body := range []string{`{"amount":`, `{}`, `not json`, `{"amount": 0}`} {
			for _, credential := range []string{"", "wrong-key"} {
				rec := do(t, router, http.MethodPost, path, credential, body)
				assert.Equal(t, http.StatusUnauthorized, rec.Code, "%s %q %q", path, credential, body)
				assert.Equal(t, apperrors.ErrInvalidCredential, decode[apperrors.HTTPError](t, rec).Message)
			}
		}
	}
}

func TestInvalidRequests(t *testing.T) {
	router := newTestRouter(t)

	cases := map[string]string{
		"zero":          `{"amount": 0}`,
		"negative":      `{"amount": -10}`,
		"too precise":   `{"amount": "0.001"}`,
		"not a number":  `{"amount": "ten"}`,
		"null":          `{"amount": null}`,
		"missing":       `{}`,
		"broken json":   `{"amount":`,
		"huge exponent": `{"amount": 1e400}`,
	}

	for name, body := range cases {
		t.Run(name, func(t *testing.T) {
			for _, path := range []string{"/deposit", "/withdraw"} {
				rec := do(t, router, http.MethodPost, path, "key-1", body)
				assert.Equal(t, http.StatusBadRequest, rec.Code, path)
			}
		})
	}

	rec := do(t, router, http.MethodGet, "/balance", "key-1", "")
	assert.Equal(t, "200.00", decode[dtos.BalanceDTO](t, rec).Balance)
}

func TestOversizedBody(t *testing.T) {
	router := newTestRouter(t)

	body := `{"amount": "1", "pad": "` + strings.Repeat("x", 2*maxBodyBytes) + `"}`
	rec := do(t, router, http.MethodPost, "/deposit", "key-1", body)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestConcurrentHTTPDeposits(t *testing.T) {
	const n = 200
	router := newTestRouter(t)

	var wg sync.WaitGroup
	wg.Add(n)
	for i := 0; i < n; i++ {
		go func() {
			defer wg.Done()
			rec := do(t, router, http.MethodPost, "/deposit", "key-2", `{"amount": "0.01"}`)
			assert.Equal(t, http.StatusOK, rec.Code)
		}()
	}
	wg.Wait()

	rec := do(t, router, http.MethodGet, "/balance", "key-2", "")
	assert.Equal(t, "12.00", decode[dtos.BalanceDTO](t, rec).Balance)
}
