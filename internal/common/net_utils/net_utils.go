// Пакет netutils содержит простые сетевые интсрументы
package netutils

import (
	"net"
)

// GetFreePort - получить свободный порт localhost.
// Порт закрыт к моменту возврата: подключение к нему завершится отказом
func GetFreePort() (int, error) {
	l, err := net.Listen("tcp", "localhost:0")
	if err != nil {
		return 0, err
	}
	defer l.Close()
	return l.Addr().(*net.TCPAddr).Port, nil
}
