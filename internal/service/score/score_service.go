package score

import (
	"context"
	"sync"

	"devcred-backend/internal/github"
	"devcred-backend/internal/http/api"
	"devcred-backend/internal/onchain"
	"devcred-backend/internal/scoring"

	"github.com/shopspring/decimal"
)

//go:generate go run github.com/vektra/mockery/v2@v2.53.5 --name=ContributorFetcher
type ContributorFetcher interface {
	FetchContributorStats(ctx context.Context, token, username string) (*github.ContributorStats, error)
}

//go:generate go run github.com/vektra/mockery/v2@v2.53.5 --name=OnchainFetcher
type OnchainFetcher interface {
	Fetch(ctx context.Context, address string) (*onchain.Stats, error)
}

//go:generate go run github.com/vektra/mockery/v2@v2.53.5 --name=ModelScorer
type ModelScorer interface {
	Score(ctx context.Context, payload scoring.FeaturePayload) (float64, error)
}

type ScoreService struct {
	contributors ContributorFetcher
	chain        OnchainFetcher
	scorer       ModelScorer
}

func NewScoreService(contributors ContributorFetcher, chain OnchainFetcher, scorer ModelScorer) *ScoreService {
	return &ScoreService{
		contributors: contributors,
		chain:        chain,
		scorer:       scorer,
	}
}

// Compose fetches both signals concurrently; both are required. With
// useExternal false the raw signals come back unmodified and composition is
// the caller's business. With useExternal true the fixed feature vector goes
// to the external model and only the composite score comes back.
func (s *ScoreService) Compose(ctx context.Context, token, username, address string, useExternal bool) (*api.SignalsResponse, *api.ModelScore, error) {
	var (
		wg sync.WaitGroup

		gh    *github.ContributorStats
		oc    *onchain.Stats
		ghErr error
		ocErr error
	)

	wg.Add(2)
	go func() {
		defer wg.Done()
		gh, ghErr = s.contributors.FetchContributorStats(ctx, token, username)
	}()
	go func() {
		defer wg.Done()
		oc, ocErr = s.chain.Fetch(ctx, address)
	}()
	wg.Wait()

	if ghErr != nil {
		return nil, nil, ghErr
	}
	if ocErr != nil {
		return nil, nil, ocErr
	}

	if !useExternal {
		return &api.SignalsResponse{GitHub: gh, Onchain: oc}, nil, nil
	}

	composite, err := s.scorer.Score(ctx, buildFeatures(gh, oc))
	if err != nil {
		return nil, nil, err
	}

	return nil, &api.ModelScore{Score: composite}, nil
}

// buildFeatures flattens both signals into the fixed model payload. Balances
// degrade to float approximations here and only here; the exact decimal
// strings stay untouched in the signal structs.
func buildFeatures(gh *github.ContributorStats, oc *onchain.Stats) scoring.FeaturePayload {
	return scoring.FeaturePayload{
		TotalContributions:        gh.TotalContributions,
		PullRequests:              gh.TotalPRs,
		Issues:                    gh.IssuesCreated,
		RepositoriesContributedTo: gh.ContributedRepos,
		Followers:                 gh.Followers,
		Repositories:              len(gh.TopRepos),
		EthBalance:                approxFloat(oc.EthBalance),
		TxCount:                   oc.TxCount,
		IsContractDeployer:        oc.IsContractDeployer,
		ContractDeployments:       oc.ContractDeployments,
		TokenBalances:             sumTokenBalances(oc.ERC20),
		NFTCount:                  oc.NFTCount,
		DAOVotes:                  oc.DAOVotes,
		HasNFTs:                   oc.HasNFTs,
	}
}

func sumTokenBalances(tokens []onchain.ERC20Token) float64 {
	sum := decimal.Zero
	for _, t := range tokens {
		d, err := decimal.NewFromString(t.Balance)
		if err != nil {
			continue
		}
		sum = sum.Add(d)
	}
	return sum.InexactFloat64()
}

func approxFloat(s string) float64 {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return 0
	}
	return d.InexactFloat64()
}
