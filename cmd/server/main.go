package main

import (
	"log/slog"
	"net/http"
	"os"

	"devcred-backend/internal/ethrpc"
	"devcred-backend/internal/github"
	"devcred-backend/internal/http/handlers"
	authh "devcred-backend/internal/http/handlers/auth"
	eah "devcred-backend/internal/http/handlers/earlyaccess"
	githubh "devcred-backend/internal/http/handlers/github"
	lbh "devcred-backend/internal/http/handlers/leaderboard"
	likesh "devcred-backend/internal/http/handlers/likes"
	onchainh "devcred-backend/internal/http/handlers/onchain"
	scoreh "devcred-backend/internal/http/handlers/score"
	mw "devcred-backend/internal/http/middleware"
	"devcred-backend/internal/lib/config"
	"devcred-backend/internal/lib/sl"
	"devcred-backend/internal/onchain"
	repo "devcred-backend/internal/repository"
	"devcred-backend/internal/scoring"
	"devcred-backend/internal/service/earlyaccess"
	"devcred-backend/internal/service/leaderboard"
	"devcred-backend/internal/service/likes"
	"devcred-backend/internal/service/score"

	trmsqlx "github.com/avito-tech/go-transaction-manager/drivers/sqlx/v2"
	"github.com/avito-tech/go-transaction-manager/trm/v2/manager"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/golang-migrate/migrate/v4"
	migratepg "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/jmoiron/sqlx"
	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
)

const (
	envLocal = "local"
	envProd  = "prod"
)

func main() {
	_ = godotenv.Load()

	cfg := config.MustLoad()

	log := setupLogger(cfg.Env)
	log.Info("Starting Developer Credibility Service", slog.String("env", cfg.Env))

	dsn := os.Getenv("DATABASE_URL")
	db, err := sqlx.Connect("postgres", dsn)
	if err != nil {
		slog.Error("failed to establish connection with database", sl.Err(err))
		os.Exit(1)
	}

	if err := runMigrations(db); err != nil {
		log.Error("failed to run migrations", sl.Err(err))
		os.Exit(1)
	}

	// initialization of go-transaction-manager
	trManager := manager.Must(trmsqlx.NewDefaultFactory(db))

	leaderboardRepo := repo.NewLeaderboardRepo(db, trmsqlx.DefaultCtxGetter)
	likesRepo := repo.NewLikesRepo(db, trmsqlx.DefaultCtxGetter)
	earlyAccessRepo := repo.NewEarlyAccessRepo(db, trmsqlx.DefaultCtxGetter)

	chainClient := ethrpc.NewClient(cfg.Chain.RPCHttpURL, ethrpc.WithTimeout(cfg.Chain.CallTimeout))
	nftClient := onchain.NewAlchemyClient(cfg.Chain.AlchemyBaseURL, cfg.Chain.AlchemyAPIKey, cfg.Chain.CallTimeout)
	votesClient := onchain.NewSnapshotClient(cfg.Chain.SnapshotURL, cfg.Chain.CallTimeout)
	fetcher := onchain.NewFetcher(log, chainClient, nftClient, votesClient, cfg.Chain.ERC20List)

	githubClient := github.NewClient(cfg.GitHub.GraphQLURL, cfg.GitHub.Timeout)
	oauthClient := github.NewOAuthClient(cfg.GitHub.ClientID, cfg.GitHub.ClientSecret)
	scoringClient := scoring.NewClient(cfg.Scoring.URL, cfg.Scoring.Timeout)

	leaderboardService := leaderboard.NewLeaderboardService(trManager, leaderboardRepo)
	likesService := likes.NewLikesService(trManager, likesRepo)
	earlyAccessService := earlyaccess.NewEarlyAccessService(earlyAccessRepo)
	scoreService := score.NewScoreService(githubClient, fetcher, scoringClient)

	leaderboardHandler := lbh.NewLeaderboardHandler(log, leaderboardService)
	likesHandler := likesh.NewLikesHandler(log, likesService)
	earlyAccessHandler := eah.NewEarlyAccessHandler(log, earlyAccessService)
	scoreHandler := scoreh.NewScoreHandler(log, scoreService)
	githubHandler := githubh.NewGithubHandler(log, githubClient)
	onchainHandler := onchainh.NewOnchainHandler(log, fetcher)
	authHandler := authh.NewAuthHandler(log, oauthClient, cfg)

	router := chi.NewRouter()

	router.Use(middleware.RequestID)
	router.Use(mw.New(log))
	router.Use(middleware.Recoverer)
	router.Use(middleware.URLFormat)
	log.Info("starting http server", slog.String("address", cfg.HTTPServer.Address))

	// public methods
	router.Get("/health", handlers.Healthcheck())

	router.Get("/auth/github", authHandler.Login)
	router.Get("/auth/github/callback", authHandler.Callback)
	router.Post("/auth/logout", authHandler.Logout)

	router.Get("/api/leaderboard", leaderboardHandler.Top)
	router.Post("/api/leaderboard", leaderboardHandler.Upsert)
	router.Get("/api/leaderboard/rank/{username}", leaderboardHandler.Rank)
	router.Get("/api/leaderboard/stats", leaderboardHandler.Stats)

	router.Post("/api/likes", likesHandler.Like)
	router.Get("/api/likes/counts", likesHandler.Counts)

	router.Post("/api/early-access", earlyAccessHandler.Register)
	router.Get("/api/onchain/stats/{address}", onchainHandler.Stats)

	// session-gated methods
	router.Group(func(r chi.Router) {
		r.Use(mw.Auth(cfg.Cookie.Name, cfg.Session.Secret))

		r.Post("/api/score", scoreHandler.Score)
		r.Get("/api/github/stats", githubHandler.Stats)
	})

	srv := &http.Server{
		Addr:         cfg.HTTPServer.Address,
		Handler:      router,
		ReadTimeout:  cfg.HTTPServer.ReadTimeout,
		WriteTimeout: cfg.HTTPServer.WriteTimeout,
		IdleTimeout:  cfg.HTTPServer.IdleTimeout,
	}

	if err := srv.ListenAndServe(); err != nil {
		log.Error("failed to start http server", sl.Err(err))
		os.Exit(1)
	}

	log.Error("http server stopped")
}

func runMigrations(db *sqlx.DB) error {
	driver, err := migratepg.WithInstance(db.DB, &migratepg.Config{})
	if err != nil {
		return err
	}

	m, err := migrate.NewWithDatabaseInstance("file://migrations", "postgres", driver)
	if err != nil {
		return err
	}

	if err := m.Up(); err != nil && err != migrate.ErrNoChange {
		return err
	}
	return nil
}

func setupLogger(env string) *slog.Logger {
	var log *slog.Logger
	switch env {
	case envLocal:
		log = slog.New(
			slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}),
		)
	case envProd:
		log = slog.New(
			slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}),
		)
	}
	return log
}
