package github

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"
)

var (
	ErrAuth     = errors.New("github token rejected")
	ErrUpstream = errors.New("github api failure")
)

const contributorQuery = `
query($login: String!) {
  user(login: $login) {
    contributionsCollection {
      contributionCalendar {
        totalContributions
      }
      pullRequestContributionsByRepository(maxRepositories: 100) {
        repository { name }
        contributions(first: 100) {
          nodes {
            pullRequest { merged }
          }
        }
      }
    }
    pullRequests(first: 100, states: [OPEN, CLOSED, MERGED]) { totalCount }
    issues { totalCount }
    repositoriesContributedTo(contributionTypes: [COMMIT, PULL_REQUEST, ISSUE], first: 100) { totalCount }
    followers { totalCount }
    repositories(first: 5, orderBy: {field: STARGAZERS, direction: DESC}) {
      nodes {
        name
        stargazerCount
        forkCount
        updatedAt
      }
    }
  }
}`

// Client fetches contributor signals from the GitHub GraphQL API.
type Client struct {
	url    string
	client *http.Client
}

func NewClient(url string, timeout time.Duration) *Client {
	return &Client{
		url:    url,
		client: &http.Client{Timeout: timeout},
	}
}

type graphqlRequest struct {
	Query     string         `json:"query"`
	Variables map[string]any `json:"variables,omitempty"`
}

type graphqlResponse struct {
	Data struct {
		User *userNode `json:"user"`
	} `json:"data"`
	Errors []struct {
		Message string `json:"message"`
	} `json:"errors"`
}

type userNode struct {
	ContributionsCollection struct {
		ContributionCalendar struct {
			TotalContributions int `json:"totalContributions"`
		} `json:"contributionCalendar"`
		PullRequestContributionsByRepository []struct {
			Repository struct {
				Name string `json:"name"`
			} `json:"repository"`
			Contributions struct {
				Nodes []struct {
					PullRequest *struct {
						Merged bool `json:"merged"`
					} `json:"pullRequest"`
				} `json:"nodes"`
			} `json:"contributions"`
		} `json:"pullRequestContributionsByRepository"`
	} `json:"contributionsCollection"`
	PullRequests struct {
		TotalCount int `json:"totalCount"`
	} `json:"pullRequests"`
	Issues struct {
		TotalCount int `json:"totalCount"`
	} `json:"issues"`
	RepositoriesContributedTo struct {
		TotalCount int `json:"totalCount"`
	} `json:"repositoriesContributedTo"`
	Followers struct {
		TotalCount int `json:"totalCount"`
	} `json:"followers"`
	Repositories struct {
		Nodes []Repo `json:"nodes"`
	} `json:"repositories"`
}

// FetchContributorStats issues the combined contributor query for username.
//
// Single attempt: query-level errors and a missing user surface as
// ErrUpstream, a rejected token as ErrAuth.
func (c *Client) FetchContributorStats(ctx context.Context, token, username string) (*ContributorStats, error) {
	const op = "github.FetchContributorStats"

	body, err := json.Marshal(graphqlRequest{
		Query:     contributorQuery,
		Variables: map[string]any{"login": username},
	})
	if err != nil {
		return nil, fmt.Errorf("%s: marshal query: %w", op, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("%s: create request: %w", op, err)
	}
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%s: %w: %w", op, ErrUpstream, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden {
		return nil, fmt.Errorf("%s: %w: status %d", op, ErrAuth, resp.StatusCode)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%s: %w: status %d", op, ErrUpstream, resp.StatusCode)
	}

	var gqlResp graphqlResponse
	if err := json.NewDecoder(resp.Body).Decode(&gqlResp); err != nil {
		return nil, fmt.Errorf("%s: %w: decode response: %w", op, ErrUpstream, err)
	}
	if len(gqlResp.Errors) > 0 {
		return nil, fmt.Errorf("%s: %w: %s", op, ErrUpstream, gqlResp.Errors[0].Message)
	}
	if gqlResp.Data.User == nil {
		return nil, fmt.Errorf("%s: %w: user %q not found", op, ErrUpstream, username)
	}

	user := gqlResp.Data.User

	// MergedPRs is an aggregate recomputed here from the raw contribution
	// nodes rather than trusted from a single upstream field.
	merged := 0
	for _, repo := range user.ContributionsCollection.PullRequestContributionsByRepository {
		for _, node := range repo.Contributions.Nodes {
			if node.PullRequest != nil && node.PullRequest.Merged {
				merged++
			}
		}
	}

	topRepos := user.Repositories.Nodes
	if topRepos == nil {
		topRepos = []Repo{}
	}

	return &ContributorStats{
		TotalContributions: user.ContributionsCollection.ContributionCalendar.TotalContributions,
		MergedPRs:          merged,
		TotalPRs:           user.PullRequests.TotalCount,
		IssuesCreated:      user.Issues.TotalCount,
		ContributedRepos:   user.RepositoriesContributedTo.TotalCount,
		Followers:          user.Followers.TotalCount,
		TopRepos:           topRepos,
	}, nil
}
