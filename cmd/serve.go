package cmd

import (
	"fmt"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"portfolio/internal/server"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the API server",
	Long:  `Start the portfolio API server with the specified configuration.`,
	RunE:  runServe,
}

// serveFlagKeys 命令行参数与配置项的对应关系
var serveFlagKeys = map[string]string{
	"host":               "server.host",
	"port":               "server.port",
	"mode":               "server.mode",
	"ai-provider":        "ai.provider",
	"ai-model":           "ai.model",
	"ai-api-key":         "ai.api_key",
	"ai-timeout":         "ai.timeout",
	"system-prompt-file": "relay.system_prompt_file",
	"allowed-origins":    "cors.allowed_origins",
	"log-level":          "log.level",
	"log-format":         "log.format",
}

func init() {
	rootCmd.AddCommand(serveCmd)

	flags := serveCmd.Flags()

	// Server
	flags.StringP("host", "H", "0.0.0.0", "server host")
	flags.IntP("port", "p", 8000, "server port (env: PORT)")
	flags.String("mode", "release", "server mode (debug/release/test)")

	// AI
	flags.String("ai-provider", "openrouter", "AI provider (openrouter/openai/azure/ark)")
	flags.String("ai-model", "mistralai/mistral-7b-instruct:free", "AI model name (env: OPENROUTER_MODEL)")
	flags.String("ai-api-key", "", "AI API key (recommend using env: OPENROUTER_API_KEY)")
	flags.Duration("ai-timeout", 30*time.Second, "upstream request timeout")

	// Relay
	flags.String("system-prompt-file", "", "file overriding the built-in resume prompt")
	flags.StringSlice("allowed-origins", []string{"*"}, "CORS allowed origins (env: ALLOWED_ORIGINS)")

	// Log
	flags.String("log-level", "info", "log level (trace/debug/info/warn/error/fatal)")
	flags.String("log-format", "console", "log format (json/console)")

	for name, key := range serveFlagKeys {
		_ = viper.BindPFlag(key, flags.Lookup(name))
	}
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg := GetConfig()

	// Validate config
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("config validation failed: %w", err)
	}

	// Create server
	srv, err := server.New(cfg)
	if err != nil {
		return fmt.Errorf("failed to create server: %w", err)
	}

	// Graceful shutdown
	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Start server
	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	log.Info().
		Str("addr", addr).
		Str("mode", cfg.Server.Mode).
		Bool("chat_configured", cfg.AI.Configured()).
		Msg("starting server")

	return srv.Run(ctx, addr)
}
