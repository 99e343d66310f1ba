package rest

import (
	"net/http"

	"flightmate-service/internal/domain/repository"
	"flightmate-service/internal/infrastructure/auth"
	"flightmate-service/internal/infrastructure/oauth"
	"flightmate-service/pkg/logger"

	"github.com/labstack/echo/v4"
)

// TokenResponse is the bearer token returned after a successful sign-in
type TokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

// AuthHandler implements the Slack sign-in endpoints
type AuthHandler struct {
	oauth     *oauth.SlackOAuth
	messenger repository.MessengerRepository
	users     repository.UserRepository
	tokens    *auth.TokenManager
	logger    logger.Logger
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(
	oauth *oauth.SlackOAuth,
	messenger repository.MessengerRepository,
	users repository.UserRepository,
	tokens *auth.TokenManager,
	logger logger.Logger,
) *AuthHandler {
	return &AuthHandler{
		oauth:     oauth,
		messenger: messenger,
		users:     users,
		tokens:    tokens,
		logger:    logger,
	}
}

// SlackLogin initiates the Slack OAuth flow by redirecting the user
func (h *AuthHandler) SlackLogin(c echo.Context) error {
	return c.Redirect(http.StatusTemporaryRedirect, h.oauth.AuthURL("state"))
}

// SlackCallback exchanges the code for a user token, creates the user on
// first sighting and returns a session JWT
func (h *AuthHandler) SlackCallback(c echo.Context) error {
	code := c.QueryParam("code")
	if code == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "missing code parameter")
	}

	ctx := c.Request().Context()

	token, err := h.oauth.Exchange(ctx, code)
	if err != nil {
		h.logger.Error("Slack token exchange failed", "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "Slack token exchange failed.")
	}

	userToken, err := h.oauth.UserAccessToken(token)
	if err != nil {
		h.logger.Error("Slack token exchange missing user token", "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "Slack token exchange failed.")
	}

	identity, err := h.messenger.GetIdentity(ctx, userToken)
	if err != nil {
		h.logger.Error("Slack identity lookup failed", "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "Slack identity lookup failed.")
	}

	user, err := h.users.FindOrCreate(ctx, identity.SlackID, identity.Name)
	if err != nil {
		h.logger.Error("Failed to find or create user", "slackId", identity.SlackID, "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "failed to create user")
	}

	signed, err := h.tokens.Issue(user.ID)
	if err != nil {
		h.logger.Error("Failed to issue token", "userId", user.ID.String(), "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "failed to issue token")
	}

	h.logger.Info("User signed in", "userId", user.ID.String(), "slackId", user.SlackID)
	return c.JSON(http.StatusOK, TokenResponse{AccessToken: signed, TokenType: "bearer"})
}
