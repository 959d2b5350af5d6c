package config

import (
	"flag"
	"io"
	"os"
	"strings"

	loggerConfig "github.com/iurnickita/shortener-cli/internal/shortener/logger/config"
	handlersConfig "github.com/iurnickita/shortener-cli/internal/stubserver/handlers/config"
	repositoryConfig "github.com/iurnickita/shortener-cli/internal/stubserver/repository/config"
	serviceConfig "github.com/iurnickita/shortener-cli/internal/stubserver/service/config"
)

type Config struct {
	Handlers   handlersConfig.Config
	Service    serviceConfig.Config
	Repository repositoryConfig.Config
	Logger     loggerConfig.Config
}

func GetConfig(name string, args []string, output io.Writer) (Config, error) {
	cfg := Config{}

	flags := flag.NewFlagSet(name, flag.ContinueOnError)
	flags.SetOutput(output)
	flags.StringVar(&cfg.Handlers.ServerAddr, "a", handlersConfig.DefaultServerAddr, "address of HTTP server")
	flags.IntVar(&cfg.Service.MinLinkLength, "m", serviceConfig.DefaultMinLinkLength, "min link length, shorter links get 414")
	flags.StringVar(&cfg.Repository.StoreType, "s", repositoryConfig.StoreTypeVar, "store type: 0 - memory, 1 - file, 2 - database")
	flags.StringVar(&cfg.Repository.Filename, "f", repositoryConfig.DefaultFilename, "store file")
	flags.StringVar(&cfg.Repository.DBDsn, "d", "", "database DSN")
	flags.StringVar(&cfg.Logger.LogLevel, "l", "info", "log level")
	if err := flags.Parse(args); err != nil {
		return cfg, err
	}

	if envsrv := os.Getenv("SERVER_ADDRESS"); envsrv != "" {
		cfg.Handlers.ServerAddr = envsrv
	}
	if envdsn := os.Getenv("DATABASE_DSN"); envdsn != "" {
		cfg.Repository.DBDsn = envdsn
		cfg.Repository.StoreType = repositoryConfig.StoreTypeDB
	}
	if envlevel := os.Getenv("LOG_LEVEL"); envlevel != "" {
		cfg.Logger.LogLevel = envlevel
	}

	cfg.Handlers.ServerAddr = strings.TrimPrefix(cfg.Handlers.ServerAddr, "http://")
	cfg.Service.StrIDLength = serviceConfig.DefaultStrIDLength

	return cfg, nil
}
