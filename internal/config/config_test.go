package config

import (
	"testing"
	"time"

	. "github.com/smartystreets/goconvey/convey"
)

func validConfig() *Config {
	return &Config{
		Server: ServerConfig{Host: "0.0.0.0", Port: 8000, Mode: "release"},
		AI: AIConfig{
			Provider: "openrouter",
			Model:    "mistralai/mistral-7b-instruct:free",
			Timeout:  30 * time.Second,
			Options:  AIOptionsConfig{Temperature: 0.7, MaxTokens: 500},
		},
		Relay: RelayConfig{MaxMessageChars: 4000, MaxBodyBytes: 1 << 20},
	}
}

func TestConfig_Validate(t *testing.T) {
	Convey("Validate 检查配置", t, func() {
		Convey("合法配置通过", func() {
			So(validConfig().Validate(), ShouldBeNil)
		})

		Convey("缺少 API Key 不视为配置错误", func() {
			cfg := validConfig()
			cfg.AI.APIKey = ""
			So(cfg.Validate(), ShouldBeNil)
			So(cfg.AI.Configured(), ShouldBeFalse)
		})

		Convey("多个错误一次性返回", func() {
			cfg := validConfig()
			cfg.Server.Port = 0
			cfg.Server.Mode = "prod"
			cfg.AI.Provider = "anthropic"

			err := cfg.Validate()
			So(err, ShouldNotBeNil)
			So(err.Error(), ShouldContainSubstring, "invalid server port")
			So(err.Error(), ShouldContainSubstring, "invalid server mode")
			So(err.Error(), ShouldContainSubstring, `unsupported AI provider: "anthropic"`)
		})

		Convey("非法的模型参数", func() {
			cfg := validConfig()
			cfg.AI.Options.Temperature = 3
			cfg.AI.Options.MaxTokens = 0
			cfg.AI.Timeout = 0

			err := cfg.Validate()
			So(err, ShouldNotBeNil)
			So(err.Error(), ShouldContainSubstring, "temperature")
			So(err.Error(), ShouldContainSubstring, "max_tokens")
			So(err.Error(), ShouldContainSubstring, "ai.timeout")
		})

		Convey("上游超时必须短于写超时", func() {
			cfg := validConfig()
			cfg.Server.WriteTimeout = 40 * time.Second
			So(cfg.Validate(), ShouldBeNil)

			cfg.AI.Timeout = 60 * time.Second
			err := cfg.Validate()
			So(err, ShouldNotBeNil)
			So(err.Error(), ShouldContainSubstring, "server.write_timeout")

			cfg.Server.WriteTimeout = 0
			So(cfg.Validate(), ShouldBeNil)
		})

		Convey("中继限制必须为正数", func() {
			cfg := validConfig()
			cfg.Relay.MaxMessageChars = 0
			cfg.Relay.MaxBodyBytes = -1

			err := cfg.Validate()
			So(err, ShouldNotBeNil)
			So(err.Error(), ShouldContainSubstring, "relay.max_message_chars")
			So(err.Error(), ShouldContainSubstring, "relay.max_body_bytes")
		})
	})
}
