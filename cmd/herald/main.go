package main

import (
	"context"

	"github.com/gulla0/ai-tweet-generator/internal/generator"
	"github.com/gulla0/ai-tweet-generator/internal/handlers"
	"github.com/gulla0/ai-tweet-generator/internal/lifecycle"
	"github.com/gulla0/ai-tweet-generator/internal/publisher"
	"github.com/gulla0/ai-tweet-generator/internal/store"
	"github.com/gulla0/ai-tweet-generator/pkg/auth"
	"github.com/gulla0/ai-tweet-generator/pkg/config"
	"github.com/gulla0/ai-tweet-generator/pkg/database"
	"github.com/gulla0/ai-tweet-generator/pkg/llm"
	"github.com/gulla0/ai-tweet-generator/pkg/logging"
	"github.com/gulla0/ai-tweet-generator/pkg/monitoring"
	"github.com/gulla0/ai-tweet-generator/pkg/server"
	"github.com/gulla0/ai-tweet-generator/pkg/version"
)

func main() {
	logger := logging.NewLoggerWithService("herald")
	config.LoadEnv(logger)

	port := config.GetEnv("PORT", "18080")
	jwtSecret := []byte(config.RequireEnv("JWT_SECRET"))
	operatorEmail := config.GetEnv("OPERATOR_EMAIL", "operator@example.com")
	operatorPassHash := config.RequireEnv("OPERATOR_PASSWORD_HASH")

	healthChecker := monitoring.NewHealthChecker("herald", version.Version)
	metricsCollector := monitoring.NewMetricsCollector("herald", version.Version, version.GitCommit)

	// Storage backend: JSON files by default, Postgres when configured.
	var transcripts store.TranscriptStore
	var tweets store.TweetStore
	switch backend := config.GetEnv("STORE_BACKEND", "file"); backend {
	case "postgres":
		dbConfig := database.DefaultConfig()
		dbConfig.URL = config.RequireEnv("DATABASE_URL")
		db := database.MustConnect(dbConfig, logger)
		defer db.Close()
		pg := store.NewPostgresStore(db)
		transcripts = pg.Transcripts()
		tweets = pg.Tweets()
		healthChecker.AddCheck("database", monitoring.DatabaseHealthCheck(db))
	case "file":
		dataDir := config.GetEnv("DATA_DIR", "./data")
		js := store.NewJSONStore(dataDir)
		transcripts = js.Transcripts()
		tweets = js.Tweets()
		healthChecker.AddCheck("data_dir", monitoring.DataDirHealthCheck(dataDir))
	default:
		logger.Fatalf("Unknown STORE_BACKEND %q", backend)
	}

	llmConfig := llm.LoadConfig()
	provider, err := llm.NewProvider(llmConfig)
	if err != nil {
		logger.Fatal(err.Error())
	}

	healthChecker.AddCheck("config", monitoring.ConfigurationHealthCheck(map[string]string{
		"LLM_API_KEY": llmConfig.APIKey,
		"LLM_MODEL":   llmConfig.Model,
	}))

	xClient := publisher.NewXClient(logger)
	manager := lifecycle.NewManager(tweets, xClient, logger)

	generationMetrics := &generator.Metrics{
		Generations: metricsCollector.NewCounter(
			"generations_total",
			"Tweet generation attempts by outcome",
			[]string{"outcome"},
		),
		TweetsCreated: metricsCollector.NewCounter(
			"generated_tweets_total",
			"Draft tweets created from transcripts",
			[]string{},
		).WithLabelValues(),
	}
	apiMetrics := &handlers.APIMetrics{
		TranscriptCreates: metricsCollector.NewCounter(
			"transcript_creates_total",
			"Transcript submissions by status",
			[]string{"status"},
		),
		TweetActions: metricsCollector.NewCounter(
			"tweet_actions_total",
			"Tweet lifecycle operations by action and status",
			[]string{"action", "status"},
		),
		CredentialChecks: metricsCollector.NewCounter(
			"credential_checks_total",
			"X credential validations by status",
			[]string{"status"},
		),
	}

	worker := generator.NewWorker(transcripts, manager, provider, logger, generationMetrics)
	workerCtx, cancelWorker := context.WithCancel(context.Background())
	worker.Start(workerCtx)
	defer func() {
		worker.Stop()
		cancelWorker()
	}()

	app := server.SetupServiceRouter(logger, "herald", healthChecker, metricsCollector)

	authHandler := handlers.NewAuthHandler(operatorEmail, operatorPassHash, jwtSecret, logger)
	transcriptHandler := handlers.NewTranscriptHandler(transcripts, tweets, worker, logger, apiMetrics)
	tweetHandler := handlers.NewTweetHandler(manager, logger, apiMetrics)
	credentialHandler := handlers.NewCredentialHandler(xClient, logger, apiMetrics)

	app.POST("/api/auth/login", authHandler.Login)
	app.POST("/api/credentials/validate", credentialHandler.Validate)

	protected := app.Group("/api")
	protected.Use(auth.OperatorAuthMiddleware(jwtSecret))
	{
		protected.POST("/transcripts", transcriptHandler.Create)
		protected.GET("/transcripts", transcriptHandler.List)
		protected.GET("/transcripts/:id", transcriptHandler.Get)
		protected.GET("/transcripts/:id/tweets", transcriptHandler.ListTweets)
		protected.PUT("/tweets/:id", tweetHandler.Edit)
		protected.POST("/tweets/:id/send", tweetHandler.Send)
		protected.POST("/tweets/:id/publish", tweetHandler.Publish)
		protected.DELETE("/tweets/:id", tweetHandler.Delete)
	}

	serverConfig := server.DefaultConfig("herald", port)
	if err := server.Start(serverConfig, app, logger); err != nil {
		logger.Fatal(err.Error())
	}
}
