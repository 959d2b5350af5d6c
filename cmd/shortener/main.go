package main

import (
	"errors"
	"flag"
	"io"
	"log"
	"os"
	"path/filepath"

	"github.com/iurnickita/shortener-cli/internal/shortener/cli"
	"github.com/iurnickita/shortener-cli/internal/shortener/client"
	"github.com/iurnickita/shortener-cli/internal/shortener/config"
	"github.com/iurnickita/shortener-cli/internal/shortener/logger"
)

func main() {
	if err := run(os.Args, os.Stdout, os.Stderr); err != nil {
		log.Fatal(err)
	}
}

func run(args []string, stdout, stderr io.Writer) error {
	name := filepath.Base(args[0])

	cfg, items, err := config.GetConfig(name, args[1:], stderr)
	if errors.Is(err, flag.ErrHelp) {
		return nil
	}
	if err != nil {
		return err
	}

	zaplog, err := logger.NewZapLog(cfg.Logger)
	if err != nil {
		return err
	}
	defer zaplog.Sync()

	c := client.NewClient(cfg.Client, zaplog)

	return cli.NewShell(c, stdout, name).Run(items)
}

// shortener https://practicum.yandex.ru/ https://ya.ru/+ya
// shortener stats ya
// shortener -a localhost:9090 -l debug https://ya.ru/
