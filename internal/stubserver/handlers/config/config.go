package config

// DefaultServerAddr адрес заглушки по умолчанию совпадает с адресом, который ожидает клиент
const DefaultServerAddr = "localhost:8080"

type Config struct {
	ServerAddr string
}
