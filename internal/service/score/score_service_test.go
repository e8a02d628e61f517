package score_test

import (
	"context"
	"errors"
	"testing"

	"devcred-backend/internal/github"
	"devcred-backend/internal/onchain"
	"devcred-backend/internal/scoring"
	"devcred-backend/internal/service/mocks"
	"devcred-backend/internal/service/score"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func sampleSignals() (*github.ContributorStats, *onchain.Stats) {
	gh := &github.ContributorStats{
		TotalContributions: 1000,
		MergedPRs:          6,
		TotalPRs:           10,
		IssuesCreated:      4,
		ContributedRepos:   3,
		Followers:          25,
		TopRepos:           []github.Repo{{Name: "a"}, {Name: "b"}},
	}
	oc := &onchain.Stats{
		Address:             "0x5aAeb6053F3E94C9b9A09f33669435E7Ef1BeAed",
		ChainID:             1,
		EthBalance:          "1.5",
		TxCount:             42,
		IsContractDeployer:  true,
		ContractDeployments: 1,
		ERC20: []onchain.ERC20Token{
			{Address: "0xa", Symbol: "USDC", Decimals: 6, Balance: "100.25"},
			{Address: "0xb", Symbol: "DAI", Decimals: 18, Balance: "0.75"},
		},
		NFTCount: 2,
		HasNFTs:  true,
		DAOVotes: 5,
	}
	return gh, oc
}

func TestCompose_PassThroughWithoutExternalModel(t *testing.T) {
	ctx := context.Background()
	gh, oc := sampleSignals()

	contributors := mocks.NewContributorFetcher(t)
	contributors.On("FetchContributorStats", ctx, "tok", "octocat").Return(gh, nil).Once()

	chain := mocks.NewOnchainFetcher(t)
	chain.On("Fetch", ctx, "0xabc").Return(oc, nil).Once()

	scorer := &mocks.ModelScorer{}

	service := score.NewScoreService(contributors, chain, scorer)
	signals, model, err := service.Compose(ctx, "tok", "octocat", "0xabc", false)
	require.NoError(t, err)

	assert.Nil(t, model)
	require.NotNil(t, signals)
	assert.Same(t, gh, signals.GitHub)
	assert.Same(t, oc, signals.Onchain)

	scorer.AssertNotCalled(t, "Score")
}

func TestCompose_ExternalModelBuildsFixedPayload(t *testing.T) {
	ctx := context.Background()
	gh, oc := sampleSignals()

	contributors := mocks.NewContributorFetcher(t)
	contributors.On("FetchContributorStats", ctx, "tok", "octocat").Return(gh, nil).Once()

	chain := mocks.NewOnchainFetcher(t)
	chain.On("Fetch", ctx, "0xabc").Return(oc, nil).Once()

	scorer := mocks.NewModelScorer(t)
	scorer.On("Score", ctx, mock.MatchedBy(func(p scoring.FeaturePayload) bool {
		return p.TotalContributions == 1000 &&
			p.PullRequests == 10 &&
			p.Issues == 4 &&
			p.RepositoriesContributedTo == 3 &&
			p.Followers == 25 &&
			p.Repositories == 2 &&
			p.EthBalance == 1.5 &&
			p.TxCount == 42 &&
			p.IsContractDeployer &&
			p.ContractDeployments == 1 &&
			p.TokenBalances == 101.0 &&
			p.NFTCount == 2 &&
			p.DAOVotes == 5 &&
			p.HasNFTs
	})).Return(86.75, nil).Once()

	service := score.NewScoreService(contributors, chain, scorer)
	signals, model, err := service.Compose(ctx, "tok", "octocat", "0xabc", true)
	require.NoError(t, err)

	assert.Nil(t, signals)
	require.NotNil(t, model)
	assert.Equal(t, 86.75, model.Score)
}

func TestCompose_ContributorFailurePropagates(t *testing.T) {
	ctx := context.Background()
	_, oc := sampleSignals()

	contributors := mocks.NewContributorFetcher(t)
	contributors.On("FetchContributorStats", ctx, "tok", "octocat").
		Return(nil, github.ErrUpstream).Once()

	chain := mocks.NewOnchainFetcher(t)
	chain.On("Fetch", ctx, "0xabc").Return(oc, nil).Once()

	service := score.NewScoreService(contributors, chain, &mocks.ModelScorer{})
	_, _, err := service.Compose(ctx, "tok", "octocat", "0xabc", false)
	assert.ErrorIs(t, err, github.ErrUpstream)
}

func TestCompose_OnchainFailurePropagates(t *testing.T) {
	ctx := context.Background()
	gh, _ := sampleSignals()

	contributors := mocks.NewContributorFetcher(t)
	contributors.On("FetchContributorStats", ctx, "tok", "octocat").Return(gh, nil).Once()

	chain := mocks.NewOnchainFetcher(t)
	chain.On("Fetch", ctx, "0xabc").Return(nil, onchain.ErrUpstream).Once()

	service := score.NewScoreService(contributors, chain, &mocks.ModelScorer{})
	_, _, err := service.Compose(ctx, "tok", "octocat", "0xabc", false)
	assert.ErrorIs(t, err, onchain.ErrUpstream)
}

func TestCompose_ScorerFailureNoFallback(t *testing.T) {
	ctx := context.Background()
	gh, oc := sampleSignals()

	contributors := mocks.NewContributorFetcher(t)
	contributors.On("FetchContributorStats", ctx, "tok", "octocat").Return(gh, nil).Once()

	chain := mocks.NewOnchainFetcher(t)
	chain.On("Fetch", ctx, "0xabc").Return(oc, nil).Once()

	scorer := mocks.NewModelScorer(t)
	scorer.On("Score", ctx, mock.AnythingOfType("scoring.FeaturePayload")).
		Return(0.0, scoring.ErrUnavailable).Once()

	service := score.NewScoreService(contributors, chain, scorer)
	signals, model, err := service.Compose(ctx, "tok", "octocat", "0xabc", true)
	assert.ErrorIs(t, err, scoring.ErrUnavailable)
	assert.Nil(t, signals)
	assert.Nil(t, model)
}

func TestCompose_UnparseableBalanceApproximatesZero(t *testing.T) {
	ctx := context.Background()
	gh, oc := sampleSignals()
	oc.EthBalance = "not-a-number"
	oc.ERC20 = []onchain.ERC20Token{{Balance: "garbage"}}

	contributors := mocks.NewContributorFetcher(t)
	contributors.On("FetchContributorStats", ctx, "tok", "octocat").Return(gh, nil).Once()

	chain := mocks.NewOnchainFetcher(t)
	chain.On("Fetch", ctx, "0xabc").Return(oc, nil).Once()

	scorer := mocks.NewModelScorer(t)
	scorer.On("Score", ctx, mock.MatchedBy(func(p scoring.FeaturePayload) bool {
		return p.EthBalance == 0 && p.TokenBalances == 0
	})).Return(1.0, nil).Once()

	service := score.NewScoreService(contributors, chain, scorer)
	_, model, err := service.Compose(ctx, "tok", "octocat", "0xabc", true)
	require.NoError(t, err)
	assert.Equal(t, 1.0, model.Score)
}

func TestCompose_BothFailuresPreferContributorError(t *testing.T) {
	ctx := context.Background()

	contributors := mocks.NewContributorFetcher(t)
	contributors.On("FetchContributorStats", ctx, "tok", "octocat").
		Return(nil, github.ErrAuth).Once()

	chain := mocks.NewOnchainFetcher(t)
	chain.On("Fetch", ctx, "0xabc").Return(nil, errors.New("rpc down")).Once()

	service := score.NewScoreService(contributors, chain, &mocks.ModelScorer{})
	_, _, err := service.Compose(ctx, "tok", "octocat", "0xabc", false)
	assert.ErrorIs(t, err, github.ErrAuth)
}
