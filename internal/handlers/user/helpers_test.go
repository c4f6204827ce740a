package user_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	"velora_back_end/internal/database"
	"velora_back_end/internal/middleware"
	"velora_back_end/internal/routes"
)

func newRouter(t *testing.T) (*gin.Engine, sqlmock.Sqlmock) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	database.DB = db
	database.RedisClient = nil // cache désactivé en test

	middleware.InitSessionStore("test-secret")
	r := gin.New()
	r.Use(middleware.Sessions())
	routes.RegisterRoutes(r)
	return r, mock
}

func doReq(t *testing.T, r *gin.Engine, method, path, body string, cookies []*http.Cookie) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	for _, ck := range cookies {
		req.AddCookie(ck)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

// mergeCookies garde les cookies de la dernière réponse s'il y en a,
// sinon ceux déjà en main (toutes les réponses ne réécrivent pas la session).
func mergeCookies(prev []*http.Cookie, w *httptest.ResponseRecorder) []*http.Cookie {
	if fresh := w.Result().Cookies(); len(fresh) > 0 {
		return fresh
	}
	return prev
}
