package handler

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"backend/internal/repository"
	"backend/internal/service"
	"backend/internal/store"
)

func newSalesRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	repo := repository.NewLedgerRepository(store.NewMemory())
	entryService := service.NewEntryService(repo, service.NewNotifier(repo, nil))

	router := gin.New()
	NewSalesHandler(entryService).RegisterRoutes(router.Group(""))
	return router
}

func postJSON(router *gin.Engine, path string, body string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)
	return w
}

func TestCreateAndListSales(t *testing.T) {
	router := newSalesRouter(t)

	w := postJSON(router, "/api/sales", `{
		"description": "gold ring",
		"weight": 5,
		"karat": "21",
		"customerName": "Mona",
		"finalPrice": 1000
	}`)
	require.Equal(t, http.StatusCreated, w.Code)

	var created struct {
		Data struct {
			ID          string      `json:"id"`
			Description string      `json:"description"`
			AmountPaid  json.Number `json:"amountPaid"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
	assert.NotEmpty(t, created.Data.ID)
	assert.Equal(t, "1000", created.Data.AmountPaid.String())

	w = httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/sales", nil))
	require.Equal(t, http.StatusOK, w.Code)

	var listed struct {
		Data struct {
			Entries []json.RawMessage `json:"entries"`
			Total   int               `json:"total"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &listed))
	assert.Equal(t, 1, listed.Data.Total)
	assert.Len(t, listed.Data.Entries, 1)
}

func TestCreateSaleRejectsInvalidPayload(t *testing.T) {
	router := newSalesRouter(t)

	w := postJSON(router, "/api/sales", `{"weight": 5, "finalPrice": 100}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	var body struct {
		Status string `json:"status"`
		Error  string `json:"error"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "error", body.Status)
	assert.NotEmpty(t, body.Error)
}

func TestUpdateSaleNotFound(t *testing.T) {
	router := newSalesRouter(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPut, "/api/sales/missing", bytes.NewBufferString(`{
		"description": "ring", "weight": 5, "finalPrice": 100
	}`))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestExportSalesTable(t *testing.T) {
	router := newSalesRouter(t)

	w := postJSON(router, "/api/sales", `{"description": "ring", "weight": 5, "finalPrice": 1000}`)
	require.Equal(t, http.StatusCreated, w.Code)

	w = httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/sales/export", nil))
	require.Equal(t, http.StatusOK, w.Code)

	var body struct {
		Data struct {
			Headers []string   `json:"headers"`
			Rows    [][]string `json:"rows"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Contains(t, body.Data.Headers, "Outstanding")
	require.Len(t, body.Data.Rows, 1)
	assert.Equal(t, "1000.00", body.Data.Rows[0][5])
}
