package config

const (
	DefaultMinLinkLength = 10
	DefaultStrIDLength   = 6
)

type Config struct {
	// Ссылки короче отклоняются
	MinLinkLength int
	// Длина сгенерированного строкового идентификатора
	StrIDLength int
}
