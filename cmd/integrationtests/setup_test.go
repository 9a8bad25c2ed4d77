package integrationtests

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	auction "vehicle-auction/internal/auctionService"
	"vehicle-auction/internal/contract"
	"vehicle-auction/internal/ledger"
	"vehicle-auction/internal/repository"
	"vehicle-auction/internal/server"
	"vehicle-auction/services/auction/helpers"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

// SetupTestRouter initializes the router over a fresh in-memory ledger.
func SetupTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	repo := repository.NewEntityRepo(ledger.NewMemoryLedger())
	service := auction.NewAuctionService(repo)
	registry := contract.NewRegistry(service)
	return server.SetupRouter(registry)
}

// SetupSeededRouter initializes the router and seeds the ledger via initLedger.
func SetupSeededRouter(t *testing.T) *gin.Engine {
	t.Helper()
	router := SetupTestRouter(t)
	_, w := Invoke(t, router, contract.OpInitLedger)
	require.Equal(t, http.StatusOK, w.Code)
	return router
}

// Invoke posts an operation to /invoke and parses the response envelope.
func Invoke(t *testing.T, router *gin.Engine, function string, args ...string) (map[string]any, *httptest.ResponseRecorder) {
	t.Helper()

	if args == nil {
		args = []string{}
	}
	body, err := json.Marshal(helpers.InvokeRequest{Function: function, Args: args})
	require.NoError(t, err)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/invoke", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	var resp map[string]any
	if len(w.Body.Bytes()) > 0 {
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	}
	return resp, w
}

// QueryRecord fetches a record via GET /records/:key and returns its payload.
func QueryRecord(t *testing.T, router *gin.Engine, key string) (map[string]any, *httptest.ResponseRecorder) {
	t.Helper()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/records/"+key, nil)
	router.ServeHTTP(w, req)

	var resp map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))

	data, _ := resp["data"].(map[string]any)
	return data, w
}

// MemberBalance reads a member record and returns its balance.
func MemberBalance(t *testing.T, router *gin.Engine, key string) float64 {
	t.Helper()
	data, w := QueryRecord(t, router, key)
	require.Equal(t, http.StatusOK, w.Code)
	balance, ok := data["balance"].(float64)
	require.True(t, ok)
	return balance
}
