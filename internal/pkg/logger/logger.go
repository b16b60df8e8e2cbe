package logger

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"portfolio/internal/config"
)

// Init 初始化全局日志
func Init(cfg *config.LogConfig) error {
	output, err := openOutput(cfg)
	if err != nil {
		return err
	}

	zerolog.SetGlobalLevel(parseLevel(cfg.Level))
	switch cfg.TimeFormat {
	case "Unix":
		zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	case "UnixMs":
		zerolog.TimeFieldFormat = zerolog.TimeFormatUnixMs
	default:
		zerolog.TimeFieldFormat = time.RFC3339
	}

	log.Logger = New(cfg, output)
	// 没有挂载请求 logger 的 context 回退到全局 logger
	zerolog.DefaultContextLogger = &log.Logger

	return nil
}

// New 按配置构造 logger，输出到 w
// 只设置实例级别，全局级别和时间格式由 Init 负责
func New(cfg *config.LogConfig, w io.Writer) zerolog.Logger {
	level := parseLevel(cfg.Level)

	// Console 格式 (开发环境友好)
	if cfg.Format == "console" {
		w = zerolog.ConsoleWriter{
			Out:        w,
			TimeFormat: time.RFC3339,
		}
	}

	return zerolog.New(w).Level(level).With().Timestamp().Caller().Logger()
}

func parseLevel(s string) zerolog.Level {
	level, err := zerolog.ParseLevel(s)
	if err != nil || s == "" {
		return zerolog.InfoLevel
	}
	return level
}

func openOutput(cfg *config.LogConfig) (io.Writer, error) {
	switch cfg.Output {
	case "", "stdout":
		return os.Stdout, nil
	case "stderr":
		return os.Stderr, nil
	case "file":
		if cfg.FilePath == "" {
			return nil, fmt.Errorf("log.file_path is required when log.output is file")
		}
		file, err := os.OpenFile(cfg.FilePath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o666)
		if err != nil {
			return nil, fmt.Errorf("open log file: %w", err)
		}
		return file, nil
	default:
		return nil, fmt.Errorf("unsupported log output: %q", cfg.Output)
	}
}

// WithRequestID 返回挂载了带 request_id 字段 logger 的 context
func WithRequestID(ctx context.Context, requestID string) context.Context {
	l := log.Logger.With().Str("request_id", requestID).Logger()
	return l.WithContext(ctx)
}

// Ctx 获取 context 中的 logger
func Ctx(ctx context.Context) *zerolog.Logger {
	return zerolog.Ctx(ctx)
}
