package repository

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"flightmate-service/internal/domain/entity"
	"flightmate-service/internal/domain/repository"
	"flightmate-service/pkg/logger"
)

const defaultSlackBaseURL = "https://slack.com/api"

// SlackRepository handles Slack identity lookups and direct messages
type SlackRepository struct {
	logger   logger.Logger
	baseURL  string
	botToken string
	client   *http.Client
}

// NewSlackRepository creates a new Slack repository
func NewSlackRepository(botToken string, logger logger.Logger) repository.MessengerRepository {
	return &SlackRepository{
		logger:   logger,
		baseURL:  defaultSlackBaseURL,
		botToken: botToken,
		client:   &http.Client{Timeout: 30 * time.Second},
	}
}

// GetIdentity fetches the authed user's profile with their OAuth access token
func (r *SlackRepository) GetIdentity(ctx context.Context, userToken string) (*entity.SlackIdentity, error) {
	url := fmt.Sprintf("%s/users.identity", r.baseURL)
	req, err := http.NewRequestWithContext(ctx, "GET", url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create identity request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+userToken)

	resp, err := r.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch identity: %w", err)
	}
	defer resp.Body.Close()

	var response struct {
		OK   bool `json:"ok"`
		User struct {
			ID       string `json:"id"`
			Name     string `json:"name"`
			Image192 string `json:"image_192"`
		} `json:"user"`
		Error string `json:"error"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&response); err != nil {
		return nil, fmt.Errorf("failed to decode identity response: %w", err)
	}
	if !response.OK {
		return nil, fmt.Errorf("slack identity lookup failed: %s", response.Error)
	}

	return &entity.SlackIdentity{
		SlackID:  response.User.ID,
		Name:     response.User.Name,
		ImageURL: response.User.Image192,
	}, nil
}

// SendDirectMessage sends a DM to a Slack user via chat.postMessage
func (r *SlackRepository) SendDirectMessage(ctx context.Context, slackID, text string) error {
	if r.botToken == "" {
		r.logger.Warn("Slack bot token not set, skipping notification", "recipient", slackID)
		return nil
	}

	body := map[string]string{
		"channel": slackID,
		"text":    text,
	}
	jsonData, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("failed to marshal message: %w", err)
	}

	url := fmt.Sprintf("%s/chat.postMessage", r.baseURL)
	req, err := http.NewRequestWithContext(ctx, "POST", url, bytes.NewBuffer(jsonData))
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+r.botToken)
	req.Header.Set("Content-Type", "application/json")

	resp, err := r.client.Do(req)
	if err != nil {
		return fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()

	var response struct {
		OK    bool   `json:"ok"`
		Error string `json:"error"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&response); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	if !response.OK {
		return fmt.Errorf("slack returned error: %s", response.Error)
	}

	r.logger.Info("Slack DM sent", "recipient", slackID)
	return nil
}
