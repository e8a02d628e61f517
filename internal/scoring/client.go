package scoring

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"
)

var ErrUnavailable = errors.New("scoring service unavailable")

// DefaultTimeout bounds the external model call.
const DefaultTimeout = 15 * time.Second

// FeaturePayload is the fixed feature vector the external model accepts.
// Field names are part of the model contract and must not change.
//
// Balance fields are float approximations for modeling purposes only; exact
// values travel through the system as decimal strings.
type FeaturePayload struct {
	TotalContributions        int     `json:"totalContributions"`
	PullRequests              int     `json:"pullRequests"`
	Issues                    int     `json:"issues"`
	RepositoriesContributedTo int     `json:"repositoriesContributedTo"`
	Followers                 int     `json:"followers"`
	Repositories              int     `json:"repositories"`
	EthBalance                float64 `json:"ethBalance"`
	TxCount                   uint64  `json:"txCount"`
	IsContractDeployer        bool    `json:"isContractDeployer"`
	ContractDeployments       int     `json:"contractDeployments"`
	TokenBalances             float64 `json:"tokenBalances"`
	NFTCount                  int     `json:"nftCount"`
	DAOVotes                  int     `json:"daoVotes"`
	HasNFTs                   bool    `json:"hasNFTs"`
}

// Client talks to the external scoring model.
type Client struct {
	url    string
	client *http.Client
}

func NewClient(url string, timeout time.Duration) *Client {
	if timeout == 0 {
		timeout = DefaultTimeout
	}
	return &Client{
		url:    url,
		client: &http.Client{Timeout: timeout},
	}
}

// Score submits the feature payload and returns the composite score, the sum
// of the two sub-scores the model reports. Any failure mode (timeout,
// non-2xx, malformed body) surfaces as ErrUnavailable; there is no local
// fallback score.
func (c *Client) Score(ctx context.Context, payload FeaturePayload) (float64, error) {
	const op = "scoring.Score"

	body, err := json.Marshal(payload)
	if err != nil {
		return 0, fmt.Errorf("%s: marshal payload: %w", op, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, bytes.NewReader(body))
	if err != nil {
		return 0, fmt.Errorf("%s: create request: %w", op, err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return 0, fmt.Errorf("%s: %w: %w", op, ErrUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return 0, fmt.Errorf("%s: %w: status %d", op, ErrUnavailable, resp.StatusCode)
	}

	var out struct {
		GithubScore  *float64 `json:"github_score"`
		OnchainScore *float64 `json:"onchain_score"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return 0, fmt.Errorf("%s: %w: decode response: %w", op, ErrUnavailable, err)
	}
	if out.GithubScore == nil || out.OnchainScore == nil {
		return 0, fmt.Errorf("%s: %w: incomplete response", op, ErrUnavailable)
	}

	return *out.GithubScore + *out.OnchainScore, nil
}
