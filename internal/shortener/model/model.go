// Пакет model. Модели данных
package model

import "errors"

// ShortLink - сокращенная ссылка, созданная сервером.
// NumID хранится в том виде, в каком его прислал сервер
type ShortLink struct {
	NumID string
	StrID string
}

// Stats - статистика сокращенной ссылки
type Stats struct {
	Clicks int64
	URL    string
}

// ErrInvalidStrID - строковый идентификатор содержит недопустимые символы
var ErrInvalidStrID = errors.New("invalid string id")

// StrIDAlphabet - описание допустимых символов для вывода пользователю
var StrIDAlphabet = []string{
	"latin letters (A-Z and a-z)",
	"minuses (-)",
	"underscores (_)",
	"numbers (0-9)",
}

// ValidStrID проверяет строковый идентификатор: только латиница, цифры, '-' и '_'
func ValidStrID(strid string) bool {
	if strid == "" {
		return false
	}
	for i := 0; i < len(strid); i++ {
		if !isStrIDByte(strid[i]) {
			return false
		}
	}
	return true
}

func isStrIDByte(c byte) bool {
	switch {
	case c >= 'a' && c <= 'z', c >= 'A' && c <= 'Z', c >= '0' && c <= '9':
		return true
	case c == '-', c == '_':
		return true
	}
	return false
}
