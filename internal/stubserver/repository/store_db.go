package repository

import (
	"context"
	"database/sql"
	"errors"

	_ "github.com/jackc/pgx/v5/stdlib"

	"github.com/iurnickita/shortener-cli/internal/stubserver/repository/config"
)

// Реализация с хранением в базе данных

type StoreDB struct {
	database *sql.DB
}

func NewStoreDB(cfg config.Config) (*StoreDB, error) {
	db, err := sql.Open("pgx", cfg.DBDsn)
	if err != nil {
		return nil, err
	}
	store, err := newStoreDB(context.Background(), db)
	if err != nil {
		db.Close()
		return nil, err
	}
	return store, nil
}

func newStoreDB(ctx context.Context, db *sql.DB) (*StoreDB, error) {
	_, err := db.ExecContext(ctx,
		"CREATE TABLE IF NOT EXISTS links ("+
			" numid BIGSERIAL PRIMARY KEY,"+
			" strid VARCHAR (64) UNIQUE NOT NULL,"+
			" url TEXT NOT NULL,"+
			" clicks BIGINT NOT NULL DEFAULT 0"+
			" );")
	if err != nil {
		return nil, err
	}
	return &StoreDB{database: db}, nil
}

func (s *StoreDB) Add(ctx context.Context, strid, url string) (Link, error) {
	link := Link{StrID: strid, URL: url}
	row := s.database.QueryRowContext(ctx,
		"INSERT INTO links (strid, url)"+
			" VALUES ($1, $2)"+
			" ON CONFLICT (strid) DO NOTHING"+
			" RETURNING numid",
		strid, url)
	err := row.Scan(&link.NumID)
	if errors.Is(err, sql.ErrNoRows) {
		// конфликт: строка не вставлена
		return Link{}, newErrStrIDTaken(strid)
	}
	if err != nil {
		return Link{}, err
	}
	return link, nil
}

func (s *StoreDB) GetByStrID(ctx context.Context, strid string) (Link, error) {
	row := s.database.QueryRowContext(ctx,
		"SELECT numid, strid, url, clicks FROM links WHERE strid = $1",
		strid)
	return scanLink(row, strid)
}

func (s *StoreDB) GetByNumID(ctx context.Context, numid int64) (Link, error) {
	row := s.database.QueryRowContext(ctx,
		"SELECT numid, strid, url, clicks FROM links WHERE numid = $1",
		numid)
	return scanLink(row, numid)
}

func scanLink(row *sql.Row, key any) (Link, error) {
	var link Link
	err := row.Scan(&link.NumID, &link.StrID, &link.URL, &link.Clicks)
	if errors.Is(err, sql.ErrNoRows) {
		return Link{}, newErrNotFound(key)
	}
	if err != nil {
		return Link{}, err
	}
	return link, nil
}

func (s *StoreDB) Click(ctx context.Context, strid string) error {
	res, err := s.database.ExecContext(ctx,
		"UPDATE links SET clicks = clicks + 1 WHERE strid = $1",
		strid)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return newErrNotFound(strid)
	}
	return nil
}

func (s *StoreDB) Ping() error {
	return s.database.Ping()
}

func (s *StoreDB) Close() error {
	return s.database.Close()
}
