package config

import "time"

// DefaultBaseAddr адрес сервиса по умолчанию
const DefaultBaseAddr = "http://localhost:8080"

type Config struct {
	BaseAddr string
	// Таймаут транспорта. 0 - без ограничения
	Timeout time.Duration
}
