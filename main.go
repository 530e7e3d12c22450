package main

import (
	"io"
	"os"

	"github.com/fireview/backend/internal/buildinfo"
	"github.com/fireview/backend/internal/config"
	"github.com/fireview/backend/internal/controllers"
	"github.com/fireview/backend/internal/firefly"
	"github.com/fireview/backend/internal/router"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	// gin uses debug as the default mode, we use release for
	// security reasons
	ginMode, ok := os.LookupEnv("GIN_MODE")
	if !ok {
		gin.SetMode("release")
	} else {
		gin.SetMode(ginMode)
	}

	// Log format can be explicitly set.
	// If it is not set, it defaults to human readable for development
	// and JSON for release
	logFormat, ok := os.LookupEnv("LOG_FORMAT")
	output := io.Writer(os.Stdout)
	if (!ok && gin.IsDebugging()) || (ok && logFormat == "human") {
		output = zerolog.ConsoleWriter{Out: os.Stdout}
	}

	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	if gin.IsDebugging() {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}
	log.Logger = log.Output(output).With().Timestamp().Logger()

	// A .env file is optional, the environment always wins
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Warn().Err(err).Msg("could not read .env file")
	}

	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		log.Fatal().Msg(err.Error())
	}

	client := firefly.New(cfg.FireflyBaseURL, cfg.FireflyToken, cfg.FireflyTimeout)
	build := buildinfo.New()

	r, teardown, err := router.Config()
	defer teardown()
	if err != nil {
		log.Fatal().Msg(err.Error())
	}

	router.AttachRoutes(controllers.New(cfg, client, build), r.Group("/"))

	log.Info().
		Str("version", build.Version).
		Str("commit", build.ShortCommit()).
		Str("upstream", cfg.FireflyBaseURL).
		Msg("dashboard startup complete")

	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatal().Msg(err.Error())
	}
}
