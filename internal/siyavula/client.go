package siyavula

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/lmbotha/lea/config"
	"github.com/lmbotha/lea/internal/interfaces"
	"github.com/lmbotha/lea/internal/models"
	"github.com/lmbotha/lea/pkg/helper"
)

// tokenRequest is the payload the Siyavula get-token endpoint expects.
type tokenRequest struct {
	Name       string `json:"name"`
	Password   string `json:"password"`
	Region     string `json:"region"`
	Curriculum string `json:"curriculum"`
}

// verifyRequest is the payload the Siyavula verify endpoint expects.
type verifyRequest struct {
	ClientToken string `json:"client_token"`
	UserToken   string `json:"user_token"`
}

// Client calls the Siyavula token API. It implements interfaces.TokenClient.
//
// Remote-reported failures (non-200 with a provider body) come back as a
// TokenResult with status "error" and a nil error. Transport failures,
// timeouts and unparseable bodies come back as a non-nil error so callers can
// distinguish a provider verdict from a failure to reach the provider.
type Client struct {
	authURL    string
	verifyURL  string
	httpClient *http.Client
	logger     interfaces.Logger
}

// NewClient creates a Siyavula API client from config. Outbound calls are
// bounded by the configured timeout (10s when unset); a call never hangs
// indefinitely.
func NewClient(cfg *config.SiyavulaConfig, logger interfaces.Logger) *Client {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Client{
		authURL:   cfg.AuthURL,
		verifyURL: cfg.VerifyURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		logger: logger,
	}
}

// RequestToken authenticates with the Siyavula API and retrieves tokens.
// On success the provider's response body is embedded verbatim under Tokens.
func (c *Client) RequestToken(ctx context.Context, username, password, region, curriculum string) (*models.TokenResult, error) {
	funcName := helper.GetFuncName()
	c.logger.Debug("Requesting Siyavula token", "func", funcName, "username", username, "region", region, "curriculum", curriculum)

	payload := tokenRequest{
		Name:       username,
		Password:   password,
		Region:     region,
		Curriculum: curriculum,
	}

	return c.post(ctx, c.authURL, payload, MsgAuthFailed)
}

// VerifyToken verifies a client/user token pair with the Siyavula API.
func (c *Client) VerifyToken(ctx context.Context, clientToken, userToken string) (*models.TokenResult, error) {
	funcName := helper.GetFuncName()
	c.logger.Debug("Verifying Siyavula token", "func", funcName)

	payload := verifyRequest{
		ClientToken: clientToken,
		UserToken:   userToken,
	}

	return c.post(ctx, c.verifyURL, payload, MsgVerifyFailed)
}

// post sends the payload to the given provider endpoint and normalizes the
// response into a TokenResult.
func (c *Client) post(ctx context.Context, url string, payload interface{}, genericMessage string) (*models.TokenResult, error) {
	funcName := helper.GetFuncName()

	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("failed to encode request payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Error("Siyavula request failed", "func", funcName, "url", url, "error", err)
		return nil, fmt.Errorf("siyavula request failed: %w", err)
	}
	defer func() {
		if cerr := resp.Body.Close(); cerr != nil {
			c.logger.Warn("Failed to close response body", "func", funcName, "error", cerr)
		}
	}()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}

	if resp.StatusCode == http.StatusOK {
		// The provider's schema is opaque; the body is passed through verbatim,
		// validated only as JSON.
		if !json.Valid(respBody) {
			c.logger.Error("Siyavula returned unparseable body", "func", funcName, "url", url)
			return nil, fmt.Errorf("siyavula returned unparseable body")
		}
		return &models.TokenResult{
			Status: models.TokenStatusSuccess,
			Tokens: json.RawMessage(respBody),
		}, nil
	}

	// Remote-reported error: surface the provider's message field if present.
	message := genericMessage
	var remote struct {
		Message string `json:"message"`
	}
	if err := json.Unmarshal(respBody, &remote); err == nil && remote.Message != "" {
		message = remote.Message
	}

	c.logger.Warn("Siyavula reported an error", "func", funcName, "url", url, "status", resp.StatusCode, "message", message)
	return &models.TokenResult{
		Status:       models.TokenStatusError,
		Message:      message,
		RemoteStatus: resp.StatusCode,
	}, nil
}
