// Заглушка сервиса сокращения ссылок для локальной проверки утилиты
package main

import (
	"log"
	"os"

	"github.com/iurnickita/shortener-cli/internal/shortener/logger"
	"github.com/iurnickita/shortener-cli/internal/stubserver/config"
	"github.com/iurnickita/shortener-cli/internal/stubserver/handlers"
	"github.com/iurnickita/shortener-cli/internal/stubserver/repository"
	"github.com/iurnickita/shortener-cli/internal/stubserver/service"
)

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	cfg, err := config.GetConfig(os.Args[0], os.Args[1:], os.Stderr)
	if err != nil {
		return err
	}

	zaplog, err := logger.NewZapLog(cfg.Logger)
	if err != nil {
		return err
	}
	defer zaplog.Sync()

	store, err := repository.NewStore(cfg.Repository)
	if err != nil {
		return err
	}
	defer store.Close()

	shortener := service.NewShortener(cfg.Service, store)

	return handlers.Serve(cfg.Handlers, shortener, zaplog)
}

// curl -v -d link=https://practicum.yandex.ru/ http://localhost:8080/api/add
// curl -v -d link=https://ya.ru/ http://localhost:8080/api/add/ya
// curl -v http://localhost:8080/api/stats/ya
