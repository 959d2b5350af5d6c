// Пакет service. Сервис заглушки: сокращение ссылок и статистика
package service

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/iurnickita/shortener-cli/internal/common/rand"
	"github.com/iurnickita/shortener-cli/internal/shortener/model"
	"github.com/iurnickita/shortener-cli/internal/stubserver/repository"
	"github.com/iurnickita/shortener-cli/internal/stubserver/service/config"
)

// Service - интерфейс сервиса
type Service interface {
	Add(ctx context.Context, url string) (repository.Link, error)              // Add сокращает ссылку со случайным strid
	AddWithID(ctx context.Context, url, strid string) (repository.Link, error) // AddWithID сокращает ссылку с заданным strid
	Stats(ctx context.Context, strid string) (repository.Link, error)          // Stats возвращает ссылку со счетчиком
	Follow(ctx context.Context, code string) (string, error)                   // Follow возвращает адрес перехода и считает клик
	Ping() error
}

// Ошибки пакета
var (
	ErrEmptyLink      = errors.New("empty link")
	ErrLinkTooShort   = errors.New("link too short")
	ErrUniqueIDFailed = errors.New("failed to generate unique string id")
)

// попыток сгенерировать свободный strid
const strIDAttempts = 5

// Shortener - Сервис сокращения URL
type Shortener struct {
	store repository.Repository
	cfg   config.Config
}

func NewShortener(cfg config.Config, store repository.Repository) *Shortener {
	if cfg.StrIDLength <= 0 {
		cfg.StrIDLength = config.DefaultStrIDLength
	}
	return &Shortener{
		store: store,
		cfg:   cfg,
	}
}

func (service *Shortener) Add(ctx context.Context, url string) (repository.Link, error) {
	if url == "" {
		return repository.Link{}, ErrEmptyLink
	}
	if len(url) < service.cfg.MinLinkLength {
		return repository.Link{}, fmt.Errorf("%w: %d < %d", ErrLinkTooShort, len(url), service.cfg.MinLinkLength)
	}

	for i := 0; i < strIDAttempts; i++ {
		link, err := service.store.Add(ctx, rand.String(service.cfg.StrIDLength), url)
		if errors.Is(err, repository.ErrStrIDTaken) {
			continue
		}
		return link, err
	}
	return repository.Link{}, ErrUniqueIDFailed
}

func (service *Shortener) AddWithID(ctx context.Context, url, strid string) (repository.Link, error) {
	if !model.ValidStrID(strid) {
		return repository.Link{}, fmt.Errorf("%w: %q", model.ErrInvalidStrID, strid)
	}
	if url == "" {
		return repository.Link{}, ErrEmptyLink
	}
	return service.store.Add(ctx, strid, url)
}

func (service *Shortener) Stats(ctx context.Context, strid string) (repository.Link, error) {
	return service.store.GetByStrID(ctx, strid)
}

// Follow принимает strid или ".<numid>"
func (service *Shortener) Follow(ctx context.Context, code string) (string, error) {
	var (
		link repository.Link
		err  error
	)
	if numcode, ok := strings.CutPrefix(code, "."); ok {
		numid, perr := strconv.ParseInt(numcode, 10, 64)
		if perr != nil {
			return "", fmt.Errorf("%w for key = %s", repository.ErrNotFound, code)
		}
		link, err = service.store.GetByNumID(ctx, numid)
	} else {
		link, err = service.store.GetByStrID(ctx, code)
	}
	if err != nil {
		return "", err
	}

	if err := service.store.Click(ctx, link.StrID); err != nil {
		return "", fmt.Errorf("failed to count click: %w", err)
	}
	return link.URL, nil
}

func (service *Shortener) Ping() error {
	return service.store.Ping()
}
