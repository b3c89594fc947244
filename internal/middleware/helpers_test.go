package middleware

import (
	"io"
	"os"
	"strings"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func stringReader(body string) io.Reader {
	return strings.NewReader(body)
}

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	decimal.MarshalJSONWithoutQuotes = true
	os.Exit(m.Run())
}

// setupMockRepos inicializa los repositorios de los handlers sobre una
// base de datos simulada
func setupMockRepos(t *testing.T) sqlmock.Sqlmock {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	InitRepositories(db)
	return mock
}

// authStub inyecta un usuario autenticado sin pasar por el JWT real
func authStub(userID string) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set("userId", userID)
		c.Next()
	}
}
