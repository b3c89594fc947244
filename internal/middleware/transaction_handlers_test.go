package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func transactionTestRouter(userID string) *gin.Engine {
	router := gin.New()
	group := router.Group("/", authStub(userID))
	group.POST("/transactions", CreateTransaction)
	group.GET("/transactions", GetUserTransactions)
	group.GET("/transactions/:id", GetTransaction)
	group.DELETE("/transactions/:id", DeleteTransaction)
	return router
}

func assetRow(id, ticker string) *sqlmock.Rows {
	return sqlmock.NewRows([]string{"id", "ticker", "name", "asset_type", "current_price", "last_update"}).
		AddRow(id, ticker, "Apple Inc", "STOCK", "150.00", time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC))
}

func transactionRow(id, userID string) *sqlmock.Rows {
	date := time.Date(2025, 1, 15, 0, 0, 0, 0, time.UTC)
	return sqlmock.NewRows([]string{
		"id", "user_id", "asset_id", "ticker", "name",
		"transaction_type", "quantity", "price", "date", "note", "created_at",
	}).AddRow(id, userID, "asset-1", "AAPL", "Apple Inc",
		"BUY", "10", "150.00", date, "", date)
}

func TestCreateTransaction_InvalidPayload(t *testing.T) {
	setupMockRepos(t)
	router := transactionTestRouter("user-1")

	// Cantidad negativa no pasa la validación
	body := `{"asset_id": "asset-1", "transaction_type": "BUY", "quantity": -5, "price": 100, "date": "2025-01-15T00:00:00Z"}`
	req := httptest.NewRequest(http.MethodPost, "/transactions", stringReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	assert.Equal(t, http.StatusBadRequest, resp.Code)
}

func TestCreateTransaction_UnknownAsset(t *testing.T) {
	mock := setupMockRepos(t)
	router := transactionTestRouter("user-1")

	mock.ExpectQuery(`SELECT id, ticker, name, asset_type, current_price, last_update`).
		WithArgs("no-existe").
		WillReturnRows(sqlmock.NewRows([]string{"id", "ticker", "name", "asset_type", "current_price", "last_update"}))

	body := `{"asset_id": "no-existe", "transaction_type": "BUY", "quantity": 10, "price": 150, "date": "2025-01-15T00:00:00Z"}`
	req := httptest.NewRequest(http.MethodPost, "/transactions", stringReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	assert.Equal(t, http.StatusBadRequest, resp.Code)
	assert.Contains(t, resp.Body.String(), "Activo no encontrado")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateTransaction_Success(t *testing.T) {
	mock := setupMockRepos(t)
	router := transactionTestRouter("user-1")

	mock.ExpectQuery(`SELECT id, ticker, name, asset_type, current_price, last_update`).
		WithArgs("asset-1").
		WillReturnRows(assetRow("asset-1", "AAPL"))
	mock.ExpectExec(`INSERT INTO transactions`).
		WithArgs(sqlmock.AnyArg(), "user-1", "asset-1", "BUY",
			sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg(), "promedio mensual").
		WillReturnResult(sqlmock.NewResult(0, 1))

	body := `{"asset_id": "asset-1", "transaction_type": "BUY", "quantity": 10, "price": 150.50, "date": "2025-01-15T00:00:00Z", "note": "promedio mensual"}`
	req := httptest.NewRequest(http.MethodPost, "/transactions", stringReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	require.Equal(t, http.StatusCreated, resp.Code)

	var created struct {
		Transaction struct {
			UserID     string  `json:"user_id"`
			TotalValue float64 `json:"total_value"`
		} `json:"transaction"`
	}
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &created))
	assert.Equal(t, "user-1", created.Transaction.UserID)
	assert.Equal(t, 1505.0, created.Transaction.TotalValue)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetUserTransactions_OK(t *testing.T) {
	mock := setupMockRepos(t)
	router := transactionTestRouter("user-1")

	mock.ExpectQuery(`FROM transactions t`).
		WithArgs("user-1").
		WillReturnRows(transactionRow("tx-1", "user-1"))

	req := httptest.NewRequest(http.MethodGet, "/transactions", nil)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	require.Equal(t, http.StatusOK, resp.Code)

	var transactions []map[string]interface{}
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &transactions))
	require.Len(t, transactions, 1)
	assert.Equal(t, "tx-1", transactions[0]["id"])
	assert.Equal(t, 1500.0, transactions[0]["total_value"])
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetTransaction_Forbidden(t *testing.T) {
	mock := setupMockRepos(t)
	router := transactionTestRouter("user-1")

	// La transacción pertenece a otro usuario
	mock.ExpectQuery(`FROM transactions t`).
		WithArgs("tx-ajena").
		WillReturnRows(transactionRow("tx-ajena", "user-2"))

	req := httptest.NewRequest(http.MethodGet, "/transactions/tx-ajena", nil)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	assert.Equal(t, http.StatusForbidden, resp.Code)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetTransaction_NotFound(t *testing.T) {
	mock := setupMockRepos(t)
	router := transactionTestRouter("user-1")

	mock.ExpectQuery(`FROM transactions t`).
		WithArgs("tx-fantasma").
		WillReturnRows(sqlmock.NewRows([]string{
			"id", "user_id", "asset_id", "ticker", "name",
			"transaction_type", "quantity", "price", "date", "note", "created_at",
		}))

	req := httptest.NewRequest(http.MethodGet, "/transactions/tx-fantasma", nil)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	assert.Equal(t, http.StatusNotFound, resp.Code)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDeleteTransaction_OK(t *testing.T) {
	mock := setupMockRepos(t)
	router := transactionTestRouter("user-1")

	mock.ExpectQuery(`FROM transactions t`).
		WithArgs("tx-1").
		WillReturnRows(transactionRow("tx-1", "user-1"))
	mock.ExpectExec(`DELETE FROM transactions`).
		WithArgs("tx-1", "user-1").
		WillReturnResult(sqlmock.NewResult(0, 1))

	req := httptest.NewRequest(http.MethodDelete, "/transactions/tx-1", nil)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	assert.Equal(t, http.StatusOK, resp.Code)
	assert.NoError(t, mock.ExpectationsWereMet())
}
