// Пакет repository. Хранилище ссылок заглушки сервиса
package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/iurnickita/shortener-cli/internal/stubserver/repository/config"
)

// Интерфейс

type Repository interface {
	Add(ctx context.Context, strid, url string) (Link, error) // Add сохраняет ссылку и присваивает числовой id
	GetByStrID(ctx context.Context, strid string) (Link, error)
	GetByNumID(ctx context.Context, numid int64) (Link, error)
	Click(ctx context.Context, strid string) error // Click увеличивает счетчик переходов
	Ping() error
	Close() error
}

// Link - сохраненная ссылка
type Link struct {
	NumID  int64  `json:"numid"`
	StrID  string `json:"strid"`
	URL    string `json:"url"`
	Clicks int64  `json:"clicks"`
}

// Ошибки пакета
var (
	ErrNotFound   = errors.New("data not found")
	ErrStrIDTaken = errors.New("string id already exists")
)

func newErrNotFound(key any) error {
	return fmt.Errorf("%w for key = %v", ErrNotFound, key)
}

func newErrStrIDTaken(strid string) error {
	return fmt.Errorf("%w: %s", ErrStrIDTaken, strid)
}

func NewStore(cfg config.Config) (Repository, error) {
	switch cfg.StoreType {
	case config.StoreTypeFile:
		if cfg.Filename != "" {
			return NewStoreFile(cfg)
		}
	case config.StoreTypeDB:
		if cfg.DBDsn != "" {
			return NewStoreDB(cfg)
		}
	}
	return NewStoreVar(cfg)
}
