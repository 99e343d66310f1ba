package oauth

import (
	"context"
	"fmt"

	"flightmate-service/pkg/logger"

	"golang.org/x/oauth2"
	slackoauth "golang.org/x/oauth2/slack"
)

// Identity scopes requested for the signing-in user, separate from the bot
// scopes the workspace app installs with
const (
	userScopes = "identity.basic,identity.email,identity.team,identity.avatar"
	botScopes  = "chat:write,im:write"
)

// SlackOAuth handles the Slack OAuth v2 sign-in flow
type SlackOAuth struct {
	config *oauth2.Config
	logger logger.Logger
}

// NewSlackOAuth creates a new Slack OAuth handler
func NewSlackOAuth(clientID, clientSecret, redirectURL string, logger logger.Logger) *SlackOAuth {
	config := &oauth2.Config{
		ClientID:     clientID,
		ClientSecret: clientSecret,
		Endpoint:     slackoauth.Endpoint,
		RedirectURL:  redirectURL,
		Scopes:       []string{botScopes},
	}

	return &SlackOAuth{
		config: config,
		logger: logger,
	}
}

// AuthURL generates the URL the user is redirected to for authorization.
// Slack carries the signing-in user's scopes in a separate user_scope param.
func (o *SlackOAuth) AuthURL(state string) string {
	return o.config.AuthCodeURL(state, oauth2.SetAuthURLParam("user_scope", userScopes))
}

// Exchange exchanges an authorization code for a token
func (o *SlackOAuth) Exchange(ctx context.Context, code string) (*oauth2.Token, error) {
	token, err := o.config.Exchange(ctx, code)
	if err != nil {
		return nil, fmt.Errorf("failed to exchange code: %w", err)
	}
	o.logger.Info("Slack authorization code exchanged")
	return token, nil
}

// UserAccessToken pulls the signing-in user's token out of an OAuth v2
// response. Slack nests it under authed_user; the top-level token belongs to
// the bot.
func (o *SlackOAuth) UserAccessToken(token *oauth2.Token) (string, error) {
	if authed, ok := token.Extra("authed_user").(map[string]interface{}); ok {
		if userToken, ok := authed["access_token"].(string); ok && userToken != "" {
			return userToken, nil
		}
	}
	if token.AccessToken != "" {
		return token.AccessToken, nil
	}
	return "", fmt.Errorf("slack token exchange returned no user access token")
}
