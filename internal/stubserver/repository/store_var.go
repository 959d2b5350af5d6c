package repository

import (
	"context"
	"sync"

	"github.com/iurnickita/shortener-cli/internal/stubserver/repository/config"
)

// Реализация с хранением в переменной

type StoreVar struct {
	mux   *sync.Mutex
	links map[string]*Link
	byNum map[int64]string
	seq   int64
}

func NewStoreVar(cfg config.Config) (*StoreVar, error) {
	return &StoreVar{
		mux:   &sync.Mutex{},
		links: make(map[string]*Link),
		byNum: make(map[int64]string),
	}, nil
}

func (s *StoreVar) Add(ctx context.Context, strid, url string) (Link, error) {
	s.mux.Lock()
	defer s.mux.Unlock()

	if _, ok := s.links[strid]; ok {
		return Link{}, newErrStrIDTaken(strid)
	}
	s.seq++
	link := &Link{NumID: s.seq, StrID: strid, URL: url}
	s.put(link)
	return *link, nil
}

// put кладет ссылку в мапы. Вызывается под блокировкой
func (s *StoreVar) put(link *Link) {
	s.links[link.StrID] = link
	s.byNum[link.NumID] = link.StrID
	if link.NumID > s.seq {
		s.seq = link.NumID
	}
}

func (s *StoreVar) GetByStrID(ctx context.Context, strid string) (Link, error) {
	s.mux.Lock()
	defer s.mux.Unlock()

	link, ok := s.links[strid]
	if !ok {
		return Link{}, newErrNotFound(strid)
	}
	return *link, nil
}

func (s *StoreVar) GetByNumID(ctx context.Context, numid int64) (Link, error) {
	s.mux.Lock()
	defer s.mux.Unlock()

	strid, ok := s.byNum[numid]
	if !ok {
		return Link{}, newErrNotFound(numid)
	}
	return *s.links[strid], nil
}

func (s *StoreVar) Click(ctx context.Context, strid string) error {
	_, err := s.click(strid)
	return err
}

func (s *StoreVar) click(strid string) (Link, error) {
	s.mux.Lock()
	defer s.mux.Unlock()

	link, ok := s.links[strid]
	if !ok {
		return Link{}, newErrNotFound(strid)
	}
	link.Clicks++
	return *link, nil
}

func (s *StoreVar) Ping() error {
	return nil
}

func (s *StoreVar) Close() error {
	return nil
}
