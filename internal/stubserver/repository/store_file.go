package repository

import (
	"bufio"
	"context"
	"encoding/json"
	"os"
	"sync"

	"github.com/iurnickita/shortener-cli/internal/stubserver/repository/config"
)

// Реализация с хранением в файле.
// Каждое изменение дописывается строкой JSON, при чтении побеждает последняя строка

type StoreFile struct {
	*StoreVar
	mux    *sync.Mutex
	file   *os.File
	writer *bufio.Writer
}

func NewStoreFile(cfg config.Config) (*StoreFile, error) {
	file, err := os.OpenFile(cfg.Filename, os.O_RDWR|os.O_CREATE|os.O_APPEND, 0666)
	if err != nil {
		return nil, err
	}

	vars, _ := NewStoreVar(cfg)

	// Наполнение мапы из файла
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		var link Link
		if err := json.Unmarshal(scanner.Bytes(), &link); err == nil && link.StrID != "" {
			vars.put(&link)
		}
	}
	if err := scanner.Err(); err != nil {
		file.Close()
		return nil, err
	}

	return &StoreFile{
		StoreVar: vars,
		mux:      &sync.Mutex{},
		file:     file,
		writer:   bufio.NewWriter(file),
	}, nil
}

func (s *StoreFile) Add(ctx context.Context, strid, url string) (Link, error) {
	link, err := s.StoreVar.Add(ctx, strid, url)
	if err != nil {
		return link, err
	}
	return link, s.write(link)
}

func (s *StoreFile) Click(ctx context.Context, strid string) error {
	link, err := s.StoreVar.click(strid)
	if err != nil {
		return err
	}
	return s.write(link)
}

func (s *StoreFile) write(link Link) error {
	s.mux.Lock()
	defer s.mux.Unlock()

	data, err := json.Marshal(&link)
	if err != nil {
		return err
	}

	// записываем в буфер
	if _, err := s.writer.Write(data); err != nil {
		return err
	}

	// добавляем перенос строки
	if err := s.writer.WriteByte('\n'); err != nil {
		return err
	}

	// записываем буфер в файл
	return s.writer.Flush()
}

func (s *StoreFile) Close() error {
	s.mux.Lock()
	defer s.mux.Unlock()

	if err := s.writer.Flush(); err != nil {
		return err
	}
	return s.file.Close()
}
