package config

// DefaultLogLevel уровень журнала по умолчанию. Вывод утилиты идет в stdout, журнал в stderr
const DefaultLogLevel = "warn"

type Config struct {
	LogLevel string
}
