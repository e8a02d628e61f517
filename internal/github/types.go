package github

import "time"

// ContributorStats is the aggregate contribution signal for one user.
//
// MergedPRs is recomputed client-side from contribution nodes and TotalPRs
// comes from a separate aggregate field; the two are paginated independently
// upstream and may disagree. Consumers must tolerate that.
type ContributorStats struct {
	TotalContributions int    `json:"totalContributions"`
	MergedPRs          int    `json:"mergedPRs"`
	TotalPRs           int    `json:"totalPRs"`
	IssuesCreated      int    `json:"issuesCreated"`
	ContributedRepos   int    `json:"contributedRepos"`
	Followers          int    `json:"followers"`
	TopRepos           []Repo `json:"topRepos"`
}

// Repo is one of the user's top repositories by star count.
type Repo struct {
	Name           string    `json:"name"`
	StargazerCount int       `json:"stargazerCount"`
	ForkCount      int       `json:"forkCount"`
	UpdatedAt      time.Time `json:"updatedAt"`
}
