package github

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"devcred-backend/internal/lib"
)

const (
	defaultAuthorizeURL = "https://github.com/login/oauth/authorize"
	defaultTokenURL     = "https://github.com/login/oauth/access_token"
	defaultAPIURL       = "https://api.github.com"
)

// OAuthClient drives the GitHub web application flow: building the
// authorize redirect, exchanging the callback code for an access token
// and resolving the token owner's profile.
type OAuthClient struct {
	clientID     string
	clientSecret string
	authorizeURL string
	tokenURL     string
	apiURL       string
	client       *http.Client
}

type OAuthOption func(*OAuthClient)

// WithEndpoints overrides the GitHub endpoints, used in tests.
func WithEndpoints(authorizeURL, tokenURL, apiURL string) OAuthOption {
	return func(c *OAuthClient) {
		c.authorizeURL = authorizeURL
		c.tokenURL = tokenURL
		c.apiURL = apiURL
	}
}

func NewOAuthClient(clientID, clientSecret string, opts ...OAuthOption) *OAuthClient {
	c := &OAuthClient{
		clientID:     clientID,
		clientSecret: clientSecret,
		authorizeURL: defaultAuthorizeURL,
		tokenURL:     defaultTokenURL,
		apiURL:       defaultAPIURL,
		client:       &http.Client{Timeout: 10 * time.Second},
	}
	for _, opt := range opts {
		opt(c)
	}

	return c
}

func (c *OAuthClient) AuthorizeURL(redirectURI string, scopes []string, state string) string {
	q := url.Values{}
	q.Set("client_id", c.clientID)
	q.Set("redirect_uri", redirectURI)
	q.Set("scope", strings.Join(scopes, " "))
	q.Set("state", state)

	return c.authorizeURL + "?" + q.Encode()
}

// ExchangeCode trades the one-time callback code for an access token.
func (c *OAuthClient) ExchangeCode(ctx context.Context, code string) (string, error) {
	const op = "github.OAuthClient.ExchangeCode"

	form := url.Values{}
	form.Set("client_id", c.clientID)
	form.Set("client_secret", c.clientSecret)
	form.Set("code", code)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.tokenURL, strings.NewReader(form.Encode()))
	if err != nil {
		return "", lib.Err(op, err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("Accept", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return "", lib.Err(op, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", lib.Err(op, fmt.Errorf("%w: token endpoint returned %d", ErrUpstream, resp.StatusCode))
	}

	var body struct {
		AccessToken      string `json:"access_token"`
		Error            string `json:"error"`
		ErrorDescription string `json:"error_description"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return "", lib.Err(op, err)
	}

	if body.Error != "" {
		return "", lib.Err(op, fmt.Errorf("%w: %s", ErrAuth, body.ErrorDescription))
	}
	if body.AccessToken == "" {
		return "", lib.Err(op, fmt.Errorf("%w: empty access token", ErrUpstream))
	}

	return body.AccessToken, nil
}

// Viewer is the token owner's public profile.
type Viewer struct {
	Login     string `json:"login"`
	ID        int64  `json:"id"`
	AvatarURL string `json:"avatar_url"`
	Name      string `json:"name"`
}

func (c *OAuthClient) FetchViewer(ctx context.Context, token string) (*Viewer, error) {
	const op = "github.OAuthClient.FetchViewer"

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.apiURL+"/user", nil)
	if err != nil {
		return nil, lib.Err(op, err)
	}
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("Accept", "application/vnd.github+json")

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, lib.Err(op, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden {
		return nil, lib.Err(op, ErrAuth)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, lib.Err(op, fmt.Errorf("%w: user endpoint returned %d", ErrUpstream, resp.StatusCode))
	}

	var viewer Viewer
	if err := json.NewDecoder(resp.Body).Decode(&viewer); err != nil {
		return nil, lib.Err(op, err)
	}

	return &viewer, nil
}
