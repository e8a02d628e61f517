package onchain

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math/big"
	"strings"
	"sync"

	"devcred-backend/internal/eth"
	"devcred-backend/internal/ethrpc"
	"devcred-backend/internal/lib/sl"
)

var ErrUpstream = errors.New("onchain data unavailable")

//go:generate go run github.com/vektra/mockery/v2@v2.53.5 --name=ChainClient
type ChainClient interface {
	ChainID(ctx context.Context) (int64, error)
	Balance(ctx context.Context, address string) (*big.Int, error)
	TransactionCount(ctx context.Context, address string) (uint64, error)
	Code(ctx context.Context, address string) (string, error)
	LookupName(ctx context.Context, address string) (string, error)
	ERC20Balance(ctx context.Context, token, owner string) (*big.Int, error)
	ERC20Decimals(ctx context.Context, token string) (uint8, error)
	ERC20Symbol(ctx context.Context, token string) (string, error)
}

//go:generate go run github.com/vektra/mockery/v2@v2.53.5 --name=NFTCounter
type NFTCounter interface {
	CountOwned(ctx context.Context, owner string) (int, error)
}

//go:generate go run github.com/vektra/mockery/v2@v2.53.5 --name=VoteCounter
type VoteCounter interface {
	CountVotes(ctx context.Context, voter string) (int, error)
}

// Fetcher aggregates on-chain signals for an address.
type Fetcher struct {
	log       *slog.Logger
	chain     ChainClient
	nft       NFTCounter
	votes     VoteCounter
	erc20List []string
}

func NewFetcher(log *slog.Logger, chain ChainClient, nft NFTCounter, votes VoteCounter, erc20List []string) *Fetcher {
	return &Fetcher{
		log:       log,
		chain:     chain,
		nft:       nft,
		votes:     votes,
		erc20List: erc20List,
	}
}

// coreStats is the required branch: if any field here can not be fetched the
// whole operation fails.
type coreStats struct {
	chainID int64
	balance *big.Int
	txCount uint64
	code    string
	name    string
}

// Fetch normalizes address and fans out to the RPC node, the configured token
// contracts, the NFT indexer and the vote indexer. The core branch is
// all-or-nothing; tokens, NFTs and votes degrade to empty defaults on failure.
func (f *Fetcher) Fetch(ctx context.Context, address string) (*Stats, error) {
	const op = "onchain.Fetch"

	address, err := eth.Normalize(address)
	if err != nil {
		return nil, err
	}

	var (
		wg   sync.WaitGroup
		core coreStats

		coreErr error
		tokens  []ERC20Token

		nftCount int
		daoVotes int
	)

	wg.Add(4)

	go func() {
		defer wg.Done()
		coreErr = f.fetchCore(ctx, address, &core)
	}()

	go func() {
		defer wg.Done()
		tokens = f.fetchTokens(ctx, address)
	}()

	go func() {
		defer wg.Done()
		n, err := f.nft.CountOwned(ctx, address)
		if err != nil {
			f.log.Warn("nft count fetch failed", sl.Err(err), slog.String("address", address))
			return
		}
		nftCount = n
	}()

	go func() {
		defer wg.Done()
		n, err := f.votes.CountVotes(ctx, strings.ToLower(address))
		if err != nil {
			f.log.Warn("dao votes fetch failed", sl.Err(err), slog.String("address", address))
			return
		}
		daoVotes = n
	}()

	wg.Wait()

	if coreErr != nil {
		return nil, fmt.Errorf("%s: %w: %w", op, ErrUpstream, coreErr)
	}

	isDeployer := core.code != "" && core.code != "0x"
	deployments := 0
	if isDeployer {
		deployments = 1
	}

	return &Stats{
		Address:             address,
		ChainID:             core.chainID,
		Name:                core.name,
		EthBalance:          ethrpc.FormatEther(core.balance),
		TxCount:             core.txCount,
		IsContractDeployer:  isDeployer,
		ContractDeployments: deployments,
		ERC20:               tokens,
		NFTCount:            nftCount,
		HasNFTs:             nftCount > 0,
		DAOVotes:            daoVotes,
	}, nil
}

// fetchCore runs the five required sub-calls concurrently and waits for all
// of them. The first error wins; completion order is irrelevant.
func (f *Fetcher) fetchCore(ctx context.Context, address string, out *coreStats) error {
	var wg sync.WaitGroup
	errs := make([]error, 5)

	wg.Add(5)
	go func() {
		defer wg.Done()
		out.chainID, errs[0] = f.chain.ChainID(ctx)
	}()
	go func() {
		defer wg.Done()
		out.balance, errs[1] = f.chain.Balance(ctx, address)
	}()
	go func() {
		defer wg.Done()
		out.txCount, errs[2] = f.chain.TransactionCount(ctx, address)
	}()
	go func() {
		defer wg.Done()
		out.code, errs[3] = f.chain.Code(ctx, address)
	}()
	go func() {
		defer wg.Done()
		out.name, errs[4] = f.chain.LookupName(ctx, address)
	}()
	wg.Wait()

	return errors.Join(errs...)
}

// fetchTokens resolves every configured token concurrently. A failing token is
// logged and omitted; the surviving tokens keep configuration order.
func (f *Fetcher) fetchTokens(ctx context.Context, owner string) []ERC20Token {
	results := make([]*ERC20Token, len(f.erc20List))

	var wg sync.WaitGroup
	for i, tokenAddr := range f.erc20List {
		i, tokenAddr := i, tokenAddr
		wg.Add(1)
		go func() {
			defer wg.Done()

			token, err := f.fetchToken(ctx, tokenAddr, owner)
			if err != nil {
				f.log.Warn("token fetch failed",
					sl.Err(err), slog.String("token", tokenAddr))
				return
			}
			results[i] = token
		}()
	}
	wg.Wait()

	tokens := make([]ERC20Token, 0, len(results))
	for _, t := range results {
		if t != nil {
			tokens = append(tokens, *t)
		}
	}
	return tokens
}

func (f *Fetcher) fetchToken(ctx context.Context, tokenAddr, owner string) (*ERC20Token, error) {
	var (
		wg       sync.WaitGroup
		balance  *big.Int
		decimals uint8
		symbol   string
	)
	errs := make([]error, 3)

	wg.Add(3)
	go func() {
		defer wg.Done()
		balance, errs[0] = f.chain.ERC20Balance(ctx, tokenAddr, owner)
	}()
	go func() {
		defer wg.Done()
		decimals, errs[1] = f.chain.ERC20Decimals(ctx, tokenAddr)
	}()
	go func() {
		defer wg.Done()
		symbol, errs[2] = f.chain.ERC20Symbol(ctx, tokenAddr)
	}()
	wg.Wait()

	if err := errors.Join(errs...); err != nil {
		return nil, err
	}

	return &ERC20Token{
		Address:  tokenAddr,
		Symbol:   symbol,
		Decimals: decimals,
		Balance:  ethrpc.FormatUnits(balance, decimals),
	}, nil
}
