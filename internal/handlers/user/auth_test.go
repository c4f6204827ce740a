package user_test

import (
	"database/sql"
	"net/http"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"velora_back_end/internal/utils"
)

const (
	qInsertUser = `^INSERT INTO users \(username, password\) VALUES \(\$1, \$2\) RETURNING id$`
	qSelectUser = `^SELECT id, username, password FROM users WHERE username = \$1$`
)

func TestSignup(t *testing.T) {
	r, mock := newRouter(t)

	mock.ExpectQuery(qInsertUser).
		WithArgs("alice", sqlmock.AnyArg()).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(7))

	w := doReq(t, r, http.MethodPost, "/signup", `{"username":"alice","password":"s3cret"}`, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"success":true}`, w.Body.String())
}

func TestSignupDuplicateUsername(t *testing.T) {
	r, mock := newRouter(t)

	mock.ExpectQuery(qInsertUser).
		WithArgs("alice", sqlmock.AnyArg()).
		WillReturnError(&pgconn.PgError{Code: "23505"})

	w := doReq(t, r, http.MethodPost, "/signup", `{"username":"alice","password":"s3cret"}`, nil)
	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestSignupMalformedBody(t *testing.T) {
	r, _ := newRouter(t)

	w := doReq(t, r, http.MethodPost, "/signup", `{"username":`, nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestLoginEstablishesSession(t *testing.T) {
	r, mock := newRouter(t)

	digest, err := utils.NewArgon2Hasher().Hash("s3cret")
	require.NoError(t, err)

	rows := sqlmock.NewRows([]string{"id", "username", "password"}).
		AddRow(7, "alice", digest)
	mock.ExpectQuery(qSelectUser).WithArgs("alice").WillReturnRows(rows)

	w := doReq(t, r, http.MethodPost, "/login", `{"username":"alice","password":"s3cret"}`, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"success":true}`, w.Body.String())

	cookies := w.Result().Cookies()
	require.NotEmpty(t, cookies)

	// La session porte maintenant user_id : /api/me répond
	mock.ExpectQuery(`^SELECT id, username FROM users WHERE id = \$1$`).
		WithArgs(int64(7)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "username"}).AddRow(7, "alice"))

	w = doReq(t, r, http.MethodGet, "/api/me", "", cookies)
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"userId":7,"username":"alice"}`, w.Body.String())
}

func TestLoginWrongPassword(t *testing.T) {
	r, mock := newRouter(t)

	digest, err := utils.NewArgon2Hasher().Hash("s3cret")
	require.NoError(t, err)

	rows := sqlmock.NewRows([]string{"id", "username", "password"}).
		AddRow(7, "alice", digest)
	mock.ExpectQuery(qSelectUser).WithArgs("alice").WillReturnRows(rows)

	w := doReq(t, r, http.MethodPost, "/login", `{"username":"alice","password":"mauvais"}`, nil)
	require.Equal(t, http.StatusUnauthorized, w.Code)
	assert.JSONEq(t, `{"success":false}`, w.Body.String())
}

func TestLoginUnknownUsername(t *testing.T) {
	r, mock := newRouter(t)

	mock.ExpectQuery(qSelectUser).WithArgs("ghost").WillReturnError(sql.ErrNoRows)

	// Même réponse que pour un mauvais mot de passe
	w := doReq(t, r, http.MethodPost, "/login", `{"username":"ghost","password":"s3cret"}`, nil)
	require.Equal(t, http.StatusUnauthorized, w.Code)
	assert.JSONEq(t, `{"success":false}`, w.Body.String())
}

func TestLogoutClearsSessionAndRedirects(t *testing.T) {
	r, mock := newRouter(t)

	digest, err := utils.NewArgon2Hasher().Hash("s3cret")
	require.NoError(t, err)

	rows := sqlmock.NewRows([]string{"id", "username", "password"}).
		AddRow(7, "alice", digest)
	mock.ExpectQuery(qSelectUser).WithArgs("alice").WillReturnRows(rows)

	w := doReq(t, r, http.MethodPost, "/login", `{"username":"alice","password":"s3cret"}`, nil)
	cookies := w.Result().Cookies()

	w = doReq(t, r, http.MethodGet, "/logout", "", cookies)
	require.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/", w.Header().Get("Location"))
	cookies = mergeCookies(cookies, w)

	w = doReq(t, r, http.MethodGet, "/api/me", "", cookies)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestMeAnonymous(t *testing.T) {
	r, _ := newRouter(t)

	w := doReq(t, r, http.MethodGet, "/api/me", "", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
