package controllers_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/fireview/backend/internal/buildinfo"
	"github.com/fireview/backend/internal/config"
	"github.com/fireview/backend/internal/controllers"
	"github.com/fireview/backend/internal/firefly"
	"github.com/fireview/backend/web"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// upstream is a fake Firefly III API. It records the requests it served
// so tests can assert on endpoint selection and search queries.
type upstream struct {
	mu      sync.Mutex
	paths   []string
	queries []string

	responses map[string]string
}

func (u *upstream) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	u.mu.Lock()
	u.paths = append(u.paths, r.URL.Path)
	if q := r.URL.Query().Get("query"); q != "" {
		u.queries = append(u.queries, q)
	}
	u.mu.Unlock()

	if body, ok := u.responses[r.URL.Path]; ok {
		w.Write([]byte(body))
		return
	}

	// Endpoints without a fixture return an empty collection.
	w.Write([]byte(`{"data": []}`))
}

func (u *upstream) requested(path string) bool {
	u.mu.Lock()
	defer u.mu.Unlock()

	for _, p := range u.paths {
		if p == path {
			return true
		}
	}
	return false
}

func (u *upstream) searchQueries() []string {
	u.mu.Lock()
	defer u.mu.Unlock()

	out := make([]string, len(u.queries))
	copy(out, u.queries)
	return out
}

func newEngine(t *testing.T, u *upstream) *gin.Engine {
	t.Helper()

	server := httptest.NewServer(u)
	t.Cleanup(server.Close)

	cfg := &config.Config{
		Port:                 "8081",
		FireflyBaseURL:       server.URL,
		FireflyToken:         "test-token",
		FireflyTimeout:       5 * time.Second,
		ExcludedAccountTypes: []string{"initial-balance", "reconciliation"},
	}

	client := firefly.New(cfg.FireflyBaseURL, cfg.FireflyToken, cfg.FireflyTimeout)
	co := controllers.New(cfg, client, buildinfo.Info{
		Version:   "1.2.3",
		Commit:    "0123456789abcdef",
		BuildDate: "2024-06-01T12:00:00Z",
		StartTime: time.Now(),
	})

	templates, err := web.Templates()
	require.NoError(t, err)

	r := gin.New()
	r.SetHTMLTemplate(templates)
	r.GET("/", co.Overview)
	r.GET("/transactions", co.Transactions)
	r.GET("/version", co.Version)
	r.GET("/healthz", co.Healthz)

	return r
}

func get(t *testing.T, r *gin.Engine, target string) *httptest.ResponseRecorder {
	t.Helper()

	recorder := httptest.NewRecorder()
	request, err := http.NewRequest(http.MethodGet, target, nil)
	require.NoError(t, err)
	r.ServeHTTP(recorder, request)

	return recorder
}

const transactionsFixture = `{
	"data": [
		{
			"id": "41",
			"attributes": {
				"transactions": [
					{
						"amount": "-45.00",
						"date": "2024-02-10T00:00:00+01:00",
						"description": "Supermarket",
						"type": "withdrawal",
						"currency_code": "EUR",
						"currency_symbol": "€",
						"source_name": "Checking",
						"destination_name": "Supermarket",
						"category_name": "Groceries",
						"tags": ["food"]
					}
				]
			}
		}
	],
	"meta": {"pagination": {"total": 1, "current_page": 1, "total_pages": 1}}
}`

func TestOverviewRendersData(t *testing.T) {
	u := &upstream{responses: map[string]string{
		"/v1/transactions":          transactionsFixture,
		"/v1/budgets":               `{"data": [{"id": "1", "attributes": {"name": "Groceries budget", "currency_code": "EUR", "spent": [{"currency_code": "EUR", "sum": "-45.00"}]}}]}`,
		"/v1/insight/expense/total": `[{"difference": "-812.44", "currency_code": "EUR"}]`,
		"/v1/insight/income/total":  `[{"difference": "1500.00", "currency_code": "EUR"}]`,
	}}
	r := newEngine(t, u)

	response := get(t, r, "/?preset=month&month=2024-02")

	assert.Equal(t, http.StatusOK, response.Code)
	body := response.Body.String()

	assert.Contains(t, body, "February 2024")
	assert.Contains(t, body, "Supermarket")
	assert.Contains(t, body, "Groceries budget")
	assert.Contains(t, body, "812.44", "insight total drives the spent card")
	assert.Contains(t, body, "conic-gradient(")
	assert.NotContains(t, body, "Could not load data")

	assert.True(t, u.requested("/v1/budget-limits"))
	assert.True(t, u.requested("/v1/insight/income/total"))
}

func TestOverviewUpstreamFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"message": "Unauthenticated"}`, http.StatusUnauthorized)
	}))
	t.Cleanup(server.Close)

	cfg := &config.Config{FireflyBaseURL: server.URL, FireflyToken: "t", FireflyTimeout: time.Second}
	co := controllers.New(cfg, firefly.New(cfg.FireflyBaseURL, cfg.FireflyToken, cfg.FireflyTimeout), buildinfo.New())

	templates, err := web.Templates()
	require.NoError(t, err)
	r := gin.New()
	r.SetHTMLTemplate(templates)
	r.GET("/", co.Overview)

	response := get(t, r, "/")

	assert.Equal(t, http.StatusOK, response.Code, "upstream failures still render the page")
	assert.Contains(t, response.Body.String(), "Could not load data")
}

func TestTransactionsUsesListingWithoutFilters(t *testing.T) {
	u := &upstream{responses: map[string]string{
		"/v1/transactions": transactionsFixture,
	}}
	r := newEngine(t, u)

	response := get(t, r, "/transactions?preset=month&month=2024-02")

	assert.Equal(t, http.StatusOK, response.Code)
	assert.Contains(t, response.Body.String(), "Supermarket")

	assert.True(t, u.requested("/v1/transactions"))
	assert.False(t, u.requested("/v1/search/transactions"), "no filters means the plain listing")
}

func TestTransactionsSearchFanOut(t *testing.T) {
	u := &upstream{responses: map[string]string{
		"/v1/categories":          `{"data": [{"id": "5", "attributes": {"name": "Groceries"}}, {"id": "6", "attributes": {"name": "Eating out"}}]}`,
		"/v1/search/transactions": transactionsFixture,
	}}
	r := newEngine(t, u)

	response := get(t, r, "/transactions?preset=month&month=2024-02&categories=5,6&labels=food")

	assert.Equal(t, http.StatusOK, response.Code)
	assert.False(t, u.requested("/v1/transactions"), "filters go through search")

	queries := u.searchQueries()
	require.Len(t, queries, 2, "one query per category and label pair")

	joined := queries[0] + "\n" + queries[1]
	assert.Contains(t, joined, "category_is:Groceries")
	assert.Contains(t, joined, `category_is:"Eating out"`)
	assert.Contains(t, queries[0], "tag_is:food")
	assert.Contains(t, queries[1], "tag_is:food")

	// Both searches return the same entry, it renders as one row.
	assert.Equal(t, 1, strings.Count(response.Body.String(), "<td>Supermarket</td>"))
}

func TestTransactionsExcludesSystemAccounts(t *testing.T) {
	u := &upstream{responses: map[string]string{
		"/v1/accounts": `{"data": [
			{"id": "1", "attributes": {"name": "Checking", "type": "asset"}},
			{"id": "2", "attributes": {"name": "Opening balance account", "type": "initial-balance"}},
			{"id": "3", "attributes": {"name": "Reconciliation account", "type": "reconciliation"}}
		]}`,
	}}
	r := newEngine(t, u)

	response := get(t, r, "/transactions")

	body := response.Body.String()
	assert.Contains(t, body, "Checking")
	assert.NotContains(t, body, "Opening balance account")
	assert.NotContains(t, body, "Reconciliation account")
}

func TestVersionJSON(t *testing.T) {
	u := &upstream{}
	r := newEngine(t, u)

	response := get(t, r, "/version?format=json")

	assert.Equal(t, http.StatusOK, response.Code)
	assert.Contains(t, response.Header().Get("Content-Type"), "application/json")

	body := response.Body.String()
	assert.Contains(t, body, `"version":"1.2.3"`)
	assert.Contains(t, body, `"commit":"0123456789abcdef"`)
	assert.Contains(t, body, `"uptime"`)
}

func TestVersionHTML(t *testing.T) {
	u := &upstream{}
	r := newEngine(t, u)

	response := get(t, r, "/version")

	assert.Equal(t, http.StatusOK, response.Code)
	body := response.Body.String()
	assert.Contains(t, body, "1.2.3")
	assert.Contains(t, body, "01234567", "commit renders shortened")
}

func TestHealthz(t *testing.T) {
	u := &upstream{}
	r := newEngine(t, u)

	response := get(t, r, "/healthz")
	assert.Equal(t, http.StatusNoContent, response.Code)
}
