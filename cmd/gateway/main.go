package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	zerologlog "github.com/rs/zerolog/log"

	"github.com/mythiq/gateway/internal/app"
	"github.com/mythiq/gateway/internal/config"
)

const version = "v2.5.1"

func main() {
	var (
		showHelp    = flag.Bool("help", false, "Show help message")
		showVersion = flag.Bool("version", false, "Show version information")
		portFlag    = flag.String("port", "", "Port to listen on (overrides PORT env var)")
	)
	flag.BoolVar(showHelp, "h", false, "Show help message (shorthand)")
	flag.BoolVar(showVersion, "v", false, "Show version information (shorthand)")
	flag.Parse()

	if *showHelp {
		fmt.Printf(`Mythiq Gateway - modular introspection API

Usage: %s [options]

Options:
  -h, --help      Show this help message
  -v, --version   Show version information
  --port PORT     Port to listen on (default: 8080 or PORT env var)

Environment Variables:
  PORT                    Port to listen on (default: 8080)
  DEFAULT_PROVIDER        AI provider: "groq" or "openai" (default: groq)
  DEFAULT_MODEL           Model for the default provider (default: llama-3.3-70b-versatile)
  GROQ_API_KEY            Groq API key
  GROQ_BASE_URL           Custom Groq API base URL (optional)
  OPENAI_API_KEY          OpenAI API key
  OPENAI_BASE_URL         Custom OpenAI API base URL (optional)
  PROXY_TIMEOUT_SECONDS   Upstream call timeout (default: 90)

Examples:
  %s                  Start the gateway with default settings
  %s --port 3000      Start the gateway on port 3000
`, os.Args[0], os.Args[0], os.Args[0])
		return
	}

	if *showVersion {
		fmt.Printf("Mythiq Gateway %s\n", version)
		return
	}

	// zerolog setup (human-friendly console)
	zerolog.TimeFieldFormat = time.RFC3339
	cw := zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.RFC3339}
	zerologlog.Logger = zerologlog.Output(cw)

	gin.SetMode(gin.ReleaseMode)

	cfg := config.FromEnv()
	if *portFlag != "" {
		cfg.Port = *portFlag
	}

	engine, reg := app.Build(cfg)
	zerologlog.Info().
		Int("modules", len(reg.Outcomes())).
		Str("port", cfg.Port).
		Msg("gateway starting")

	if err := engine.Run("0.0.0.0:" + cfg.Port); err != nil {
		zerologlog.Fatal().Err(err).Msg("listen failed")
	}
}
