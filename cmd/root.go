package cmd

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"portfolio/internal/config"
	"portfolio/internal/pkg/logger"
)

var (
	cfgFile string
	cfg     *config.Config
)

var rootCmd = &cobra.Command{
	Use:   "portfolio",
	Short: "Portfolio - personal site backend",
	Long: `Portfolio serves the backend of a personal portfolio site.
It relays visitor questions to an LLM primed with the owner's resume and
exposes the portfolio project data.`,
	SilenceUsage: true,
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "",
		"config file (default: ./configs/config.yaml)")

	_ = viper.BindPFlag("config", rootCmd.PersistentFlags().Lookup("config"))
}

func initConfig() {
	// .env 不存在时忽略
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		fmt.Fprintf(os.Stderr, "Failed to load .env: %v\n", err)
	}

	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("config")
		viper.SetConfigType("yaml")
		viper.AddConfigPath("./configs")
		viper.AddConfigPath(".")
		viper.AddConfigPath("$HOME/.portfolio")
	}

	// 环境变量设置
	viper.SetEnvPrefix("PORTFOLIO")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()
	bindCompatEnv()

	// 设置默认值
	setDefaults()

	// 读取配置文件
	if err := viper.ReadInConfig(); err != nil {
		var configFileNotFoundError viper.ConfigFileNotFoundError
		if errors.As(err, &configFileNotFoundError) {
			fmt.Fprintln(os.Stderr, "No config file found, using defaults and environment variables")
		} else {
			fmt.Fprintf(os.Stderr, "Failed to read config: %v\n", err)
			os.Exit(1)
		}
	}

	// 反序列化到结构体
	cfg = &config.Config{}
	if err := viper.Unmarshal(cfg); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to unmarshal config: %v\n", err)
		os.Exit(1)
	}
	cfg.CORS.AllowedOrigins = splitOrigins(cfg.CORS.AllowedOrigins)

	// 初始化日志
	if err := logger.Init(&cfg.Log); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to init logger: %v\n", err)
		os.Exit(1)
	}

	log.Debug().Str("config_file", viper.ConfigFileUsed()).Msg("configuration loaded")
}

// bindCompatEnv 兼容部署环境里已有的变量名，PORTFOLIO_ 前缀的变量优先
func bindCompatEnv() {
	_ = viper.BindEnv("ai.api_key", "PORTFOLIO_AI_API_KEY", "OPENROUTER_API_KEY")
	_ = viper.BindEnv("ai.model", "PORTFOLIO_AI_MODEL", "OPENROUTER_MODEL")
	_ = viper.BindEnv("cors.allowed_origins", "PORTFOLIO_CORS_ALLOWED_ORIGINS", "ALLOWED_ORIGINS")
	_ = viper.BindEnv("server.port", "PORTFOLIO_SERVER_PORT", "PORT")
}

// splitOrigins 环境变量里的来源列表是逗号分隔的单个字符串
func splitOrigins(origins []string) []string {
	var out []string
	for _, o := range origins {
		for _, part := range strings.Split(o, ",") {
			if part = strings.TrimSpace(part); part != "" {
				out = append(out, part)
			}
		}
	}
	return out
}

func setDefaults() {
	// Server
	viper.SetDefault("server.host", "0.0.0.0")
	viper.SetDefault("server.port", 8000)
	viper.SetDefault("server.mode", "release")
	viper.SetDefault("server.read_timeout", "30s")
	viper.SetDefault("server.write_timeout", "40s")

	// AI
	viper.SetDefault("ai.provider", "openrouter")
	viper.SetDefault("ai.model", "mistralai/mistral-7b-instruct:free")
	viper.SetDefault("ai.base_url", "") // 为空时 openrouter 使用内置地址，ark 使用默认区域
	viper.SetDefault("ai.referer", "https://dikshantrajput.dev")
	viper.SetDefault("ai.title", "Dikshant Portfolio AI Chat")
	viper.SetDefault("ai.timeout", "30s")
	viper.SetDefault("ai.options.temperature", 0.7)
	viper.SetDefault("ai.options.max_tokens", 500)

	// Relay
	viper.SetDefault("relay.system_prompt_file", "")
	viper.SetDefault("relay.max_message_chars", 4000)
	viper.SetDefault("relay.max_body_bytes", 1<<20)

	// Log
	viper.SetDefault("log.level", "info")
	viper.SetDefault("log.format", "console")
	viper.SetDefault("log.output", "stdout")
	viper.SetDefault("log.time_format", "RFC3339")

	// CORS
	viper.SetDefault("cors.allowed_origins", []string{"*"})
}

// GetConfig returns the global configuration
func GetConfig() *config.Config {
	return cfg
}
