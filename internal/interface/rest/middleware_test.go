package rest

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"flightmate-service/internal/domain/entity"
	"flightmate-service/internal/infrastructure/auth"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJWTAuth_MissingTokenUnauthorized(t *testing.T) {
	tokens := auth.NewTokenManager("secret", time.Hour)
	users := newFakeUserRepo()

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	mw := JWTAuth(tokens, users)
	err := mw(func(c echo.Context) error { return nil })(c)

	var httpErr *echo.HTTPError
	require.ErrorAs(t, err, &httpErr)
	assert.Equal(t, http.StatusUnauthorized, httpErr.Code)
}

func TestJWTAuth_UnknownUserUnauthorized(t *testing.T) {
	tokens := auth.NewTokenManager("secret", time.Hour)
	users := newFakeUserRepo()

	raw, err := tokens.Issue(uuid.New())
	require.NoError(t, err)

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer "+raw)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	mw := JWTAuth(tokens, users)
	err = mw(func(c echo.Context) error { return nil })(c)

	var httpErr *echo.HTTPError
	require.ErrorAs(t, err, &httpErr)
	assert.Equal(t, http.StatusUnauthorized, httpErr.Code)
}

func TestJWTAuth_LoadsCurrentUser(t *testing.T) {
	tokens := auth.NewTokenManager("secret", time.Hour)
	user := &entity.User{ID: uuid.New(), SlackID: "U_ME", Name: "Me"}
	users := newFakeUserRepo(user)

	raw, err := tokens.Issue(user.ID)
	require.NoError(t, err)

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer "+raw)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	var got *entity.User
	mw := JWTAuth(tokens, users)
	err = mw(func(c echo.Context) error {
		got = CurrentUser(c)
		return nil
	})(c)

	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, user.ID, got.ID)
}
