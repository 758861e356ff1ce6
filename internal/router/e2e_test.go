//go:build integration

package router_test

// End-to-end integration tests using real Postgres + Redis via testcontainers.
// Run with: go test -tags integration ./internal/router/... -v
//
// The environment is built once in TestMain because the database provider
// memoizes its handle process-wide; all tests share one Postgres and one
// Redis container and use distinct usernames and tag ids.
//
// Covered flows:
//   - login → create animal → list animals → delete
//   - transactions → financial summary aggregation over the wire
//   - tenant isolation between two users
//   - role enforcement on delete

import (
	"bytes"
	"context"
	"encoding/json"
	"log"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"ranchops/internal/config"
	"ranchops/internal/infra"
	"ranchops/internal/model"
	"ranchops/internal/router"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	tcPostgres "github.com/testcontainers/testcontainers-go/modules/postgres"
	tcRedis "github.com/testcontainers/testcontainers-go/modules/redis"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var (
	testServer *httptest.Server
	testDB     *gorm.DB
)

func TestMain(m *testing.M) {
	ctx := context.Background()

	pgC, err := tcPostgres.Run(ctx, "postgres:16-alpine",
		tcPostgres.WithDatabase("ranchops"),
		tcPostgres.WithUsername("ranchops"),
		tcPostgres.WithPassword("ranchops"),
		tcPostgres.BasicWaitStrategies(),
	)
	if err != nil {
		log.Fatalf("start postgres container: %v", err)
	}
	redisC, err := tcRedis.Run(ctx, "redis:7-alpine")
	if err != nil {
		log.Fatalf("start redis container: %v", err)
	}

	databaseURL, err := pgC.ConnectionString(ctx, "sslmode=disable")
	if err != nil {
		log.Fatalf("postgres connection string: %v", err)
	}
	redisURL, err := redisC.ConnectionString(ctx)
	if err != nil {
		log.Fatalf("redis connection string: %v", err)
	}

	storageDir, err := os.MkdirTemp("", "ranchops-reports")
	if err != nil {
		log.Fatalf("temp dir: %v", err)
	}

	cfg := &config.Config{
		Env:                "test",
		DBType:             "postgresql",
		DatabaseURL:        databaseURL,
		RedisURL:           redisURL,
		JWTSecret:          "e2e-secret",
		JWTExpirationHours: 1,
		JWTRefreshHours:    24,
		RateLimitPerMinute: 10000,
		ReportStoragePath:  storageDir,
	}

	testDB, err = infra.NewDatabase(cfg)
	if err != nil {
		log.Fatalf("database: %v", err)
	}
	rdb, err := infra.NewRedis(cfg.RedisURL)
	if err != nil {
		log.Fatalf("redis: %v", err)
	}

	testServer = httptest.NewServer(router.New(cfg, testDB, rdb))

	code := m.Run()

	testServer.Close()
	_ = redisC.Terminate(ctx)
	_ = pgC.Terminate(ctx)
	_ = os.RemoveAll(storageDir)
	os.Exit(code)
}

// ── Helpers ──────────────────────────────────────────────────────────────────

func jsonBody(t *testing.T, v any) *bytes.Buffer {
	t.Helper()
	b, err := json.Marshal(v)
	require.NoError(t, err)
	return bytes.NewBuffer(b)
}

func do(t *testing.T, method, path string, body *bytes.Buffer, token string) *http.Response {
	t.Helper()
	var req *http.Request
	var err error
	if body != nil {
		req, err = http.NewRequest(method, testServer.URL+path, body)
	} else {
		req, err = http.NewRequest(method, testServer.URL+path, nil)
	}
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp, err := testServer.Client().Do(req)
	require.NoError(t, err)
	return resp
}

func decodeJSON(t *testing.T, resp *http.Response, dest any) {
	t.Helper()
	defer resp.Body.Close()
	require.NoError(t, json.NewDecoder(resp.Body).Decode(dest))
}

func seedUser(t *testing.T, username, password, role string) {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	require.NoError(t, testDB.Create(&model.User{
		Username:     username,
		Name:         "E2E " + username,
		PasswordHash: string(hash),
		Role:         role,
		Active:       true,
	}).Error)
}

func login(t *testing.T, username, password string) string {
	t.Helper()
	resp := do(t, http.MethodPost, "/v1/auth/login",
		jsonBody(t, map[string]string{"username": username, "password": password}), "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var body struct {
		AccessToken string `json:"access_token"`
	}
	decodeJSON(t, resp, &body)
	require.NotEmpty(t, body.AccessToken)
	return body.AccessToken
}

// ── Tests ────────────────────────────────────────────────────────────────────

func TestE2EAnimalLifecycle(t *testing.T) {
	seedUser(t, "lifecycle-manager", "pasture123", "manager")
	token := login(t, "lifecycle-manager", "pasture123")

	resp := do(t, http.MethodPost, "/v1/animals", jsonBody(t, map[string]any{
		"tag_id":  "LIFE-001",
		"species": "cattle",
		"gender":  "female",
	}), token)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	var created struct {
		ID     string `json:"id"`
		Status string `json:"status"`
	}
	decodeJSON(t, resp, &created)
	assert.Equal(t, "active", created.Status)

	resp = do(t, http.MethodGet, "/v1/animals", nil, token)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var animals []map[string]any
	decodeJSON(t, resp, &animals)
	assert.Len(t, animals, 1)

	// Duplicate tag conflicts.
	resp = do(t, http.MethodPost, "/v1/animals", jsonBody(t, map[string]any{
		"tag_id":  "LIFE-001",
		"species": "cattle",
		"gender":  "male",
	}), token)
	resp.Body.Close()
	assert.Equal(t, http.StatusConflict, resp.StatusCode)

	// Manager can delete.
	resp = do(t, http.MethodDelete, "/v1/animals/"+created.ID, nil, token)
	resp.Body.Close()
	assert.Equal(t, http.StatusNoContent, resp.StatusCode)
}

func TestE2EFinancialSummary(t *testing.T) {
	seedUser(t, "summary-user", "pasture123", "user")
	token := login(t, "summary-user", "pasture123")

	for _, tx := range []map[string]any{
		{"type": "income", "category": "Sales", "amount": "100.00", "date": "2026-01-01"},
		{"type": "expense", "category": "Feed", "amount": "40.00", "date": "2026-01-01"},
		{"type": "income", "category": "Sales", "amount": "50.00", "date": "2026-01-05"},
	} {
		resp := do(t, http.MethodPost, "/v1/transactions", jsonBody(t, tx), token)
		require.Equal(t, http.StatusCreated, resp.StatusCode)
		resp.Body.Close()
	}

	resp := do(t, http.MethodGet,
		"/v1/financial-summary?start_date=2026-01-01&end_date=2026-01-31", nil, token)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var sum struct {
		TotalIncome      string `json:"total_income"`
		TotalExpenses    string `json:"total_expenses"`
		NetProfit        string `json:"net_profit"`
		IncomeByCategory []struct {
			Category string `json:"category"`
			Amount   string `json:"amount"`
		} `json:"income_by_category"`
	}
	decodeJSON(t, resp, &sum)
	assert.Equal(t, "150", sum.TotalIncome)
	assert.Equal(t, "40", sum.TotalExpenses)
	assert.Equal(t, "110", sum.NetProfit)
	require.Len(t, sum.IncomeByCategory, 1)
	assert.Equal(t, "Sales", sum.IncomeByCategory[0].Category)
}

func TestE2ETenantIsolation(t *testing.T) {
	seedUser(t, "iso-alice", "pasture123", "user")
	seedUser(t, "iso-bob", "pasture123", "user")
	aliceToken := login(t, "iso-alice", "pasture123")
	bobToken := login(t, "iso-bob", "pasture123")

	resp := do(t, http.MethodPost, "/v1/animals", jsonBody(t, map[string]any{
		"tag_id":  "ALICE-1",
		"species": "sheep",
		"gender":  "female",
	}), aliceToken)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	var created struct {
		ID string `json:"id"`
	}
	decodeJSON(t, resp, &created)

	// Bob cannot see Alice's animal by ID or in his list.
	resp = do(t, http.MethodGet, "/v1/animals/"+created.ID, nil, bobToken)
	resp.Body.Close()
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	resp = do(t, http.MethodGet, "/v1/animals", nil, bobToken)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var bobAnimals []map[string]any
	decodeJSON(t, resp, &bobAnimals)
	assert.Empty(t, bobAnimals)
}

func TestE2EDeleteRequiresElevatedRole(t *testing.T) {
	seedUser(t, "plain-user", "pasture123", "user")
	token := login(t, "plain-user", "pasture123")

	resp := do(t, http.MethodPost, "/v1/animals", jsonBody(t, map[string]any{
		"tag_id":  "PLAIN-001",
		"species": "goat",
		"gender":  "male",
	}), token)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	var created struct {
		ID string `json:"id"`
	}
	decodeJSON(t, resp, &created)

	resp = do(t, http.MethodDelete, "/v1/animals/"+created.ID, nil, token)
	resp.Body.Close()
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
}

func TestE2EHealthEndpointPublic(t *testing.T) {
	resp := do(t, http.MethodGet, "/health", nil, "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var body struct {
		OK bool `json:"ok"`
	}
	decodeJSON(t, resp, &body)
	assert.True(t, body.OK)
}
