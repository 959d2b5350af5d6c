// Пакет cli. Пакетная обработка аргументов командной строки
package cli

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/iurnickita/shortener-cli/internal/shortener/client"
	"github.com/iurnickita/shortener-cli/internal/shortener/model"
)

// ErrUnreachable - пакет прерван: сервис недоступен
var ErrUnreachable = errors.New("service unreachable")

// Shortener - операции клиента, нужные оболочке
type Shortener interface {
	Add(url string) (client.Result[model.ShortLink], error)
	AddWithID(url, strid string) (client.Result[model.ShortLink], error)
	Stats(strid string) (client.Result[model.Stats], error)
	BaseAddr() string
}

// Shell - оболочка утилиты
type Shell struct {
	shortener Shortener
	out       io.Writer
	name      string
}

// NewShell создает оболочку. name - имя команды для справки
func NewShell(shortener Shortener, out io.Writer, name string) *Shell {
	return &Shell{
		shortener: shortener,
		out:       out,
		name:      name,
	}
}

// SplitArg делит аргумент "<url>+<strid>" по первому '+'
func SplitArg(arg string) (url string, strid string, hasStrID bool) {
	return strings.Cut(arg, "+")
}

// Run обрабатывает аргументы. Возвращает ошибку, если пакет был прерван
func (s *Shell) Run(args []string) error {
	if len(args) == 0 {
		s.usage()
		return nil
	}

	if strings.ToLower(args[0]) == "stats" {
		return s.runStats(args[1:])
	}
	return s.runAdd(args)
}

func (s *Shell) usage() {
	fmt.Fprintln(s.out, "[!] No arguments given!")
	fmt.Fprintln(s.out, "<?> Help:")
	fmt.Fprintln(s.out, "The URLs are written in the `<url>(+<strid>)` format. The `+` is a separator.")
	fmt.Fprintf(s.out, "%s <urls>       | add every url listed\n", s.name)
	fmt.Fprintf(s.out, "%s stats <urls> | check stats of every url\n", s.name)
}

func (s *Shell) runAdd(args []string) error {
	for _, arg := range args {
		link, strid, hasStrID := SplitArg(arg)

		var (
			res client.Result[model.ShortLink]
			err error
		)
		if hasStrID {
			if !model.ValidStrID(strid) {
				s.invalidStrID(strid)
				continue
			}
			res, err = s.shortener.AddWithID(link, strid)
		} else {
			res, err = s.shortener.Add(link)
		}
		if err != nil {
			s.errorf("%s: %s", link, err)
			return err
		}

		switch res.Kind {
		case client.KindOK:
			host := s.shortener.BaseAddr()
			fmt.Fprintf(s.out, "%s:\n  - %s/%s\n  - %s/.%s\n", link, host, res.Value.StrID, host, res.Value.NumID)
		case client.KindRejected:
			s.rejected(link, strid, res.Reason)
		case client.KindUnreachable:
			s.unreachable()
			return fmt.Errorf("%w: %w", ErrUnreachable, res.Err)
		}
	}
	return nil
}

func (s *Shell) runStats(args []string) error {
	host := s.shortener.BaseAddr()
	for _, strid := range args {
		if !model.ValidStrID(strid) {
			s.invalidStrID(strid)
			continue
		}

		res, err := s.shortener.Stats(strid)
		if err != nil {
			s.errorf("%s/%s: %s", host, strid, err)
			return err
		}

		switch res.Kind {
		case client.KindOK:
			fmt.Fprintf(s.out, "%s/%s:\n  - %s\n  - %d clicks\n", host, strid, res.Value.URL, res.Value.Clicks)
		case client.KindRejected:
			s.rejected("", strid, res.Reason)
		case client.KindUnreachable:
			s.unreachable()
			return fmt.Errorf("%w: %w", ErrUnreachable, res.Err)
		}
	}
	return nil
}

func (s *Shell) rejected(link, strid string, reason client.Reason) {
	host := s.shortener.BaseAddr()
	switch reason {
	case client.ReasonTooShort:
		s.errorf("%s is too short to be shortened", link)
	case client.ReasonStridNotUnique:
		s.errorf("String ID `%s` already used", strid)
	case client.ReasonNotFound:
		s.errorf("%s/%s not found", host, strid)
	default:
		s.errorf("%s rejected: %s", host, reason)
	}
}

func (s *Shell) invalidStrID(strid string) {
	s.errorf("String ID `%s` invalid. A String ID must only contain:", strid)
	for _, line := range model.StrIDAlphabet {
		fmt.Fprintf(s.out, "  - %s\n", line)
	}
}

func (s *Shell) unreachable() {
	s.errorf("Offline or %s unreachable", s.shortener.BaseAddr())
}

func (s *Shell) errorf(format string, a ...any) {
	fmt.Fprintf(s.out, "[!] "+format+"\n", a...)
}
