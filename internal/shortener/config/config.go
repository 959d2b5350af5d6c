package config

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	clientConfig "github.com/iurnickita/shortener-cli/internal/shortener/client/config"
	loggerConfig "github.com/iurnickita/shortener-cli/internal/shortener/logger/config"
)

type Config struct {
	Client clientConfig.Config
	Logger loggerConfig.Config
}

// GetConfig читает флаги, затем переменные окружения. Возвращает оставшиеся аргументы
func GetConfig(name string, args []string, output io.Writer) (Config, []string, error) {
	cfg := Config{}

	flags := flag.NewFlagSet(name, flag.ContinueOnError)
	flags.SetOutput(output)
	flags.StringVar(&cfg.Client.BaseAddr, "a", clientConfig.DefaultBaseAddr, "address of shortener service")
	flags.DurationVar(&cfg.Client.Timeout, "t", 0, "transport timeout, 0 - none")
	flags.StringVar(&cfg.Logger.LogLevel, "l", loggerConfig.DefaultLogLevel, "log level")
	if err := flags.Parse(args); err != nil {
		return cfg, nil, err
	}

	if envaddr := os.Getenv("SHORTENER_ADDRESS"); envaddr != "" {
		cfg.Client.BaseAddr = envaddr
	}
	if envtimeout := os.Getenv("SHORTENER_TIMEOUT"); envtimeout != "" {
		timeout, err := time.ParseDuration(envtimeout)
		if err != nil {
			return cfg, nil, fmt.Errorf("SHORTENER_TIMEOUT: %w", err)
		}
		cfg.Client.Timeout = timeout
	}
	if envlevel := os.Getenv("LOG_LEVEL"); envlevel != "" {
		cfg.Logger.LogLevel = envlevel
	}

	cfg.Client.BaseAddr = strings.TrimRight(cfg.Client.BaseAddr, "/")
	if !strings.HasPrefix(cfg.Client.BaseAddr, "http://") && !strings.HasPrefix(cfg.Client.BaseAddr, "https://") {
		cfg.Client.BaseAddr = "http://" + cfg.Client.BaseAddr
	}

	return cfg, flags.Args(), nil
}
