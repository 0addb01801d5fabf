package adapter

import (
	"context"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"net/url"
	"strings"
	"sync"

	"github.com/go-resty/resty/v2"

	"github.com/mkarev/vault-sync/internal/config"
	"github.com/mkarev/vault-sync/internal/logger"
	"github.com/mkarev/vault-sync/internal/utils"
	"github.com/mkarev/vault-sync/models"
)

type httpServerAdapter struct {
	client *resty.Client

	hashKey string

	mu    sync.RWMutex
	token string

	logger *logger.Logger
}

// NewHTTPServerAdapter constructs an HTTP/REST implementation of [ServerAdapter].
// It normalises and validates the base URL from adapterCfg.ServerURL,
// configures the underlying resty client with the resolved base URL and request
// timeout, and initialises the shared HMAC hasher pool used for transport
// integrity hashes.
//
// Returns an error if adapterCfg.ServerURL is empty or cannot be parsed as a
// valid URL.
func NewHTTPServerAdapter(adapterCfg config.ClientAdapter, appCfg config.ClientApp, logger *logger.Logger) (ServerAdapter, error) {
	baseURL, err := normalizeBaseURL(adapterCfg.ServerURL)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter server url: %w", err)
	}

	client := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(adapterCfg.RequestTimeout)

	utils.InitHasherPool(appCfg.HashKey)

	return &httpServerAdapter{client: client, hashKey: appCfg.HashKey, logger: logger}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// SetToken implements [ServerAdapter]. It stores token (whitespace-trimmed) for
// use in the Authorization header of all subsequent authenticated requests.
func (h *httpServerAdapter) SetToken(token string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.token = strings.TrimSpace(token)
}

// Token implements [ServerAdapter].
func (h *httpServerAdapter) Token() string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.token
}

// Register implements [ServerAdapter]. It POSTs the client-derived credentials
// to POST /api/user/register and stores the bearer token from the response
// body via SetToken.
func (h *httpServerAdapter) Register(ctx context.Context, user models.User) (models.LoginResponse, error) {
	var result models.LoginResponse

	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(user).
		SetResult(&result).
		Post("/api/user/register")
	if err != nil {
		return models.LoginResponse{}, fmt.Errorf("register request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.LoginResponse{}, err
	}

	h.SetToken(result.Token)
	return result, nil
}

// RequestSalt implements [ServerAdapter]. It POSTs the login to
// POST /api/user/params and returns the per-account encryption salt. The salt
// is required to derive the KEK before the auth hash can be computed for Login.
func (h *httpServerAdapter) RequestSalt(ctx context.Context, login string) ([]byte, error) {
	var found models.User // only login and encryption salt

	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(models.User{Login: login}).
		SetResult(&found).
		Post("/api/user/params")
	if err != nil {
		return nil, fmt.Errorf("request salt request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	return found.EncryptionSalt, nil
}

// Login implements [ServerAdapter]. It POSTs the pre-computed auth hash to
// POST /api/user/login, stores the bearer token from the response body via
// SetToken and returns the full [models.LoginResponse] including the
// encrypted master key.
func (h *httpServerAdapter) Login(ctx context.Context, user models.User) (models.LoginResponse, error) {
	var result models.LoginResponse

	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(user).
		SetResult(&result).
		Post("/api/user/login")
	if err != nil {
		return models.LoginResponse{}, fmt.Errorf("login request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.LoginResponse{}, err
	}

	h.SetToken(result.Token)
	return result, nil
}

// Commit implements [ServerAdapter]. It computes a transport integrity hash
// over the request body, sets req.Length, and POSTs the batch to
// POST /api/sync/commit. Requires a valid bearer token. Returns [ErrConflict]
// (wrapped) on HTTP 409 and [ErrUnauthorized] (wrapped) on HTTP 401.
func (h *httpServerAdapter) Commit(ctx context.Context, req models.CommitRequest) (models.CommitResponse, error) {
	req.Length = len(req.Entries)

	body, err := json.Marshal(req)
	if err != nil {
		return models.CommitResponse{}, fmt.Errorf("encode commit request: %w", err)
	}

	var result models.CommitResponse

	resp, err := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetHeader(utils.HashHeader, hex.EncodeToString(utils.Hash(body))).
		SetBody(body).
		SetResult(&result).
		Post("/api/sync/commit")
	if err != nil {
		return models.CommitResponse{}, fmt.Errorf("commit request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.CommitResponse{}, err
	}

	return result, nil
}

func (h *httpServerAdapter) authedRequest(ctx context.Context) *resty.Request {
	req := h.client.R().SetContext(ctx)
	if token := h.Token(); token != "" {
		req.SetHeader("Authorization", "Bearer "+token)
	}
	return req
}
