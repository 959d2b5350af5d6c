// Пакет rand. Случайные строковые идентификаторы
package rand

import "math/rand"

// Набор символов по умолчанию. Подмножество допустимых символов строкового идентификатора
const charset = "abcdefghijklmnopqrstuvwxyz" +
	"ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// StringWithCharset - случайная строка из заданного набора символов
func StringWithCharset(length int, charset string) string {
	b := make([]byte, length)
	for i := range b {
		b[i] = charset[rand.Intn(len(charset))]
	}
	return string(b)
}

// String - случайная строка из набора по умолчанию
func String(length int) string {
	return StringWithCharset(length, charset)
}
