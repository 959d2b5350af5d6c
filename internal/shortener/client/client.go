// Пакет client. Клиент удаленного сервиса сокращения ссылок
package client

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"sync"

	"github.com/go-resty/resty/v2"
	"go.uber.org/zap"

	"github.com/iurnickita/shortener-cli/internal/shortener/client/config"
	"github.com/iurnickita/shortener-cli/internal/shortener/model"
)

// Пути API
const (
	pathAdd      = "/api/add"
	pathAddStrID = "/api/add/{strid}"
	pathStats    = "/api/stats/{strid}"
)

// Client - клиент сервиса. Одна HTTP-сессия на все операции,
// одновременно выполняется не более одного запроса
type Client struct {
	mux    sync.Mutex
	rest   *resty.Client
	zaplog *zap.Logger
	base   string
}

// NewClient создает клиент
func NewClient(cfg config.Config, zaplog *zap.Logger) *Client {
	base := strings.TrimRight(cfg.BaseAddr, "/")

	rest := resty.New().
		SetBaseURL(base).
		SetRetryCount(0).
		SetLogger(zaplog.Sugar())
	if cfg.Timeout > 0 {
		rest.SetTimeout(cfg.Timeout)
	}
	rest.OnAfterResponse(func(_ *resty.Client, resp *resty.Response) error {
		zaplog.Debug("got HTTP response",
			zap.String("method", resp.Request.Method),
			zap.String("url", resp.Request.URL),
			zap.Int("code", resp.StatusCode()),
			zap.Duration("duration", resp.Time()),
		)
		return nil
	})

	return &Client{
		rest:   rest,
		zaplog: zaplog,
		base:   base,
	}
}

// BaseAddr адрес сервиса
func (c *Client) BaseAddr() string {
	return c.base
}

// Add сокращает ссылку. Строковый идентификатор назначает сервер
func (c *Client) Add(url string) (Result[model.ShortLink], error) {
	c.mux.Lock()
	defer c.mux.Unlock()

	resp, err := c.rest.R().
		SetFormData(map[string]string{"link": url}).
		Post(pathAdd)
	if err != nil {
		c.logUnreachable(pathAdd, err)
		return unreachable[model.ShortLink](err), nil
	}

	// сервис отвечает 414, если ссылка слишком короткая
	if resp.StatusCode() == http.StatusRequestURITooLong {
		return rejected[model.ShortLink](ReasonTooShort), nil
	}

	link, err := parseShortLink(resp.String())
	if err != nil {
		return Result[model.ShortLink]{}, err
	}
	return ok(link), nil
}

// AddWithID сокращает ссылку с заданным строковым идентификатором
func (c *Client) AddWithID(url, strid string) (Result[model.ShortLink], error) {
	if !model.ValidStrID(strid) {
		return Result[model.ShortLink]{}, fmt.Errorf("%w: %q", model.ErrInvalidStrID, strid)
	}

	c.mux.Lock()
	defer c.mux.Unlock()

	resp, err := c.rest.R().
		SetPathParam("strid", strid).
		SetFormData(map[string]string{"link": url}).
		Post(pathAddStrID)
	if err != nil {
		c.logUnreachable(pathAddStrID, err)
		return unreachable[model.ShortLink](err), nil
	}

	if resp.StatusCode() == http.StatusConflict {
		return rejected[model.ShortLink](ReasonStridNotUnique), nil
	}

	link, err := parseShortLink(resp.String())
	if err != nil {
		return Result[model.ShortLink]{}, err
	}
	return ok(link), nil
}

// Stats запрашивает статистику по строковому идентификатору
func (c *Client) Stats(strid string) (Result[model.Stats], error) {
	if !model.ValidStrID(strid) {
		return Result[model.Stats]{}, fmt.Errorf("%w: %q", model.ErrInvalidStrID, strid)
	}

	c.mux.Lock()
	defer c.mux.Unlock()

	resp, err := c.rest.R().
		SetPathParam("strid", strid).
		Get(pathStats)
	if err != nil {
		c.logUnreachable(pathStats, err)
		return unreachable[model.Stats](err), nil
	}

	if resp.StatusCode() == http.StatusNotFound {
		return rejected[model.Stats](ReasonNotFound), nil
	}

	stats, err := parseStats(resp.String())
	if err != nil {
		return Result[model.Stats]{}, err
	}
	return ok(stats), nil
}

func (c *Client) logUnreachable(path string, err error) {
	c.zaplog.Warn("service unreachable",
		zap.String("base", c.base),
		zap.String("path", path),
		zap.Error(err),
	)
}

// parseShortLink разбирает ответ вида "<numid> <strid>"
func parseShortLink(body string) (model.ShortLink, error) {
	fields := strings.Fields(body)
	if len(fields) < 1 {
		return model.ShortLink{}, fmt.Errorf("%w: expected NUMID", ErrProtocol)
	}
	if len(fields) < 2 {
		return model.ShortLink{}, fmt.Errorf("%w: expected STRID", ErrProtocol)
	}
	return model.ShortLink{
		NumID: fields[0],
		StrID: fields[1],
	}, nil
}

// parseStats разбирает ответ вида "<clicks> <url>". URL - весь остаток строки
func parseStats(body string) (model.Stats, error) {
	clicks, url, _ := strings.Cut(strings.TrimSpace(body), " ")
	if clicks == "" {
		return model.Stats{}, fmt.Errorf("%w: expected CLICKS", ErrProtocol)
	}
	n, err := strconv.ParseInt(clicks, 10, 64)
	if err != nil {
		return model.Stats{}, fmt.Errorf("%w: CLICKS %q is not a number", ErrProtocol, clicks)
	}
	url = strings.TrimSpace(url)
	if url == "" {
		return model.Stats{}, fmt.Errorf("%w: expected URL", ErrProtocol)
	}
	return model.Stats{
		Clicks: n,
		URL:    url,
	}, nil
}
