package onchain

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"
)

// AlchemyClient counts NFTs owned by an address via the Alchemy NFT API.
type AlchemyClient struct {
	baseURL string
	apiKey  string
	client  *http.Client
}

func NewAlchemyClient(baseURL, apiKey string, timeout time.Duration) *AlchemyClient {
	return &AlchemyClient{
		baseURL: baseURL,
		apiKey:  apiKey,
		client:  &http.Client{Timeout: timeout},
	}
}

func (c *AlchemyClient) CountOwned(ctx context.Context, owner string) (int, error) {
	const op = "onchain.AlchemyClient.CountOwned"

	endpoint := fmt.Sprintf("%s/nft/v3/%s/getNFTsForOwner?owner=%s",
		c.baseURL, c.apiKey, url.QueryEscape(owner))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return 0, fmt.Errorf("%s: unexpected status %d", op, resp.StatusCode)
	}

	var body struct {
		OwnedNfts  []json.RawMessage `json:"ownedNfts"`
		TotalCount int               `json:"totalCount"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return 0, fmt.Errorf("%s: decode response: %w", op, err)
	}

	if body.TotalCount > 0 {
		return body.TotalCount, nil
	}
	return len(body.OwnedNfts), nil
}

// SnapshotClient counts governance votes cast by an address via the Snapshot
// hub GraphQL API.
type SnapshotClient struct {
	url    string
	client *http.Client
}

func NewSnapshotClient(url string, timeout time.Duration) *SnapshotClient {
	return &SnapshotClient{
		url:    url,
		client: &http.Client{Timeout: timeout},
	}
}

func (c *SnapshotClient) CountVotes(ctx context.Context, voter string) (int, error) {
	const op = "onchain.SnapshotClient.CountVotes"

	query := map[string]any{
		"query":     `query Votes($voter: String!) { votes(where: { voter: $voter }) { id } }`,
		"variables": map[string]any{"voter": voter},
	}
	body, err := json.Marshal(query)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, bytes.NewReader(body))
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return 0, fmt.Errorf("%s: unexpected status %d", op, resp.StatusCode)
	}

	var out struct {
		Data struct {
			Votes []json.RawMessage `json:"votes"`
		} `json:"data"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return 0, fmt.Errorf("%s: decode response: %w", op, err)
	}
	return len(out.Data.Votes), nil
}
