package main

import (
	"fmt"
	"os"
	"time"

	"carbon-arbitrage/internal/api/handlers"
	"carbon-arbitrage/internal/api/middleware"
	"carbon-arbitrage/internal/arbitrage"
	"carbon-arbitrage/internal/config"
	"carbon-arbitrage/internal/data"
	"carbon-arbitrage/internal/engine"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

func main() {
	log := zerolog.New(os.Stderr).With().Timestamp().Str("component", "api").Logger()

	cfg := config.Default()
	if path := os.Getenv("CONFIG_FILE"); path != "" {
		loaded, err := config.Load(path)
		if err != nil {
			log.Fatal().Err(err).Str("path", path).Msg("load config")
		}
		cfg = loaded
	}
	if port := os.Getenv("API_PORT"); port != "" {
		cfg.Server.Port = port
	}

	store, err := cfg.Store()
	if err != nil {
		log.Fatal().Err(err).Msg("load scenario dataset")
	}
	log.Info().
		Strs("scenarios", store.Scenarios()).
		Strs("variables", store.Variables()).
		Msg("scenario store ready")

	calc := arbitrage.New(store, engine.New())
	results := data.NewResultStore(time.Duration(cfg.ResultTTL))

	if os.Getenv("API_ENV") == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	router.Use(middleware.Logger(log))
	router.Use(middleware.CORS())
	router.Use(middleware.ErrorHandler())

	arbitrageHandler := handlers.NewArbitrageHandler(cfg, calc, results, log)
	scenarioHandler := handlers.NewScenarioHandler(store)
	parameterHandler := handlers.NewParameterHandler(cfg.Defaults)

	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	api := router.Group("/api/v1")
	{
		api.POST("/arbitrage", arbitrageHandler.RunArbitrage)
		api.GET("/arbitrage/:id/ledger", arbitrageHandler.GetLedger)

		api.GET("/scenarios", scenarioHandler.ListScenarios)
		api.GET("/parameters", parameterHandler.ListParameters)
	}

	addr := fmt.Sprintf(":%s", cfg.Server.Port)
	log.Info().Str("addr", addr).Msg("starting API server")
	if err := router.Run(addr); err != nil {
		log.Fatal().Err(err).Msg("server exited")
	}
}
