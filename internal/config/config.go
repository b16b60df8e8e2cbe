package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/hashicorp/go-multierror"
)

// Config 应用配置根结构
type Config struct {
	Server ServerConfig `mapstructure:"server"`
	AI     AIConfig     `mapstructure:"ai"`
	Relay  RelayConfig  `mapstructure:"relay"`
	Log    LogConfig    `mapstructure:"log"`
	CORS   CORSConfig   `mapstructure:"cors"`
}

// ServerConfig HTTP 服务器配置
type ServerConfig struct {
	Host         string        `mapstructure:"host"`
	Port         int           `mapstructure:"port"`
	Mode         string        `mapstructure:"mode"`
	ReadTimeout  time.Duration `mapstructure:"read_timeout"`
	WriteTimeout time.Duration `mapstructure:"write_timeout"`
}

// AIConfig 上游补全服务配置
type AIConfig struct {
	Provider string          `mapstructure:"provider"` // openrouter, openai, azure, ark
	APIKey   string          `mapstructure:"api_key"`
	Model    string          `mapstructure:"model"`
	BaseURL  string          `mapstructure:"base_url"`
	Referer  string          `mapstructure:"referer"` // OpenRouter HTTP-Referer
	Title    string          `mapstructure:"title"`   // OpenRouter X-Title
	Timeout  time.Duration   `mapstructure:"timeout"`
	Options  AIOptionsConfig `mapstructure:"options"`
}

// AIOptionsConfig AI 模型参数
type AIOptionsConfig struct {
	Temperature float64 `mapstructure:"temperature"`
	MaxTokens   int     `mapstructure:"max_tokens"`
}

// RelayConfig 对话中继配置
type RelayConfig struct {
	SystemPromptFile string `mapstructure:"system_prompt_file"` // 为空时使用内置简历提示词
	MaxMessageChars  int    `mapstructure:"max_message_chars"`
	MaxBodyBytes     int64  `mapstructure:"max_body_bytes"`
}

// LogConfig 日志配置 (Zerolog)
type LogConfig struct {
	Level      string `mapstructure:"level"`
	Format     string `mapstructure:"format"`
	Output     string `mapstructure:"output"`
	FilePath   string `mapstructure:"file_path"`
	TimeFormat string `mapstructure:"time_format"`
}

// CORSConfig 跨域配置
type CORSConfig struct {
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

// Configured 是否配置了上游 API Key
// 未配置时服务照常启动，但每次对话请求都会返回 503
func (c *AIConfig) Configured() bool {
	return c.APIKey != ""
}

var validProviders = map[string]bool{"openrouter": true, "openai": true, "azure": true, "ark": true}

// Validate 验证配置有效性，一次性返回所有问题
func (c *Config) Validate() error {
	var result *multierror.Error

	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		result = multierror.Append(result, errors.New("invalid server port"))
	}

	validModes := map[string]bool{"debug": true, "release": true, "test": true}
	if !validModes[c.Server.Mode] {
		result = multierror.Append(result, errors.New("invalid server mode, must be debug/release/test"))
	}

	if !validProviders[c.AI.Provider] {
		result = multierror.Append(result, fmt.Errorf("unsupported AI provider: %q", c.AI.Provider))
	}
	if c.AI.Model == "" {
		result = multierror.Append(result, errors.New("ai.model must not be empty"))
	}
	if c.AI.Timeout <= 0 {
		result = multierror.Append(result, errors.New("ai.timeout must be positive"))
	}
	// 写超时为 0 表示不限制
	if c.Server.WriteTimeout > 0 && c.AI.Timeout >= c.Server.WriteTimeout {
		result = multierror.Append(result, fmt.Errorf("ai.timeout (%s) must be shorter than server.write_timeout (%s)", c.AI.Timeout, c.Server.WriteTimeout))
	}
	if c.AI.Options.MaxTokens <= 0 {
		result = multierror.Append(result, errors.New("ai.options.max_tokens must be positive"))
	}
	if c.AI.Options.Temperature < 0 || c.AI.Options.Temperature > 2 {
		result = multierror.Append(result, errors.New("ai.options.temperature must be within [0, 2]"))
	}

	if c.Relay.MaxMessageChars <= 0 {
		result = multierror.Append(result, errors.New("relay.max_message_chars must be positive"))
	}
	if c.Relay.MaxBodyBytes <= 0 {
		result = multierror.Append(result, errors.New("relay.max_body_bytes must be positive"))
	}

	return result.ErrorOrNil()
}
