// Пакет handlers. HTTP-обработчики заглушки сервиса
package handlers

import (
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/iurnickita/shortener-cli/internal/shortener/logger"
	"github.com/iurnickita/shortener-cli/internal/shortener/model"
	"github.com/iurnickita/shortener-cli/internal/stubserver/handlers/config"
	"github.com/iurnickita/shortener-cli/internal/stubserver/repository"
	"github.com/iurnickita/shortener-cli/internal/stubserver/service"
)

func Serve(cfg config.Config, shortener service.Service, zaplog *zap.Logger) error {
	h := newHandlers(shortener, zaplog)

	srv := &http.Server{
		Addr:    cfg.ServerAddr,
		Handler: newRouter(h),
	}

	zaplog.Info("stub server started", zap.String("addr", cfg.ServerAddr))
	return srv.ListenAndServe()
}

// newRouter маршруты API
func newRouter(h *handlers) chi.Router {
	router := chi.NewRouter()
	router.Use(logger.RequestLogMdlw(h.zaplog))

	router.Post("/api/add", h.Add)
	router.Post("/api/add/{strid}", h.AddWithID)
	router.Get("/api/stats/{strid}", h.Stats)
	router.Get("/ping", h.Ping)
	router.Get("/{code}", h.Follow)

	return router
}

type handlers struct {
	shortener service.Service
	zaplog    *zap.Logger
}

func newHandlers(shortener service.Service, zaplog *zap.Logger) *handlers {
	return &handlers{
		shortener: shortener,
		zaplog:    zaplog,
	}
}

// NewHandler - готовый http.Handler заглушки
func NewHandler(shortener service.Service, zaplog *zap.Logger) http.Handler {
	return newRouter(newHandlers(shortener, zaplog))
}

func (h *handlers) Add(w http.ResponseWriter, r *http.Request) {
	link, err := h.shortener.Add(r.Context(), r.PostFormValue("link"))
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeLink(w, link)
}

func (h *handlers) AddWithID(w http.ResponseWriter, r *http.Request) {
	link, err := h.shortener.AddWithID(r.Context(), r.PostFormValue("link"), chi.URLParam(r, "strid"))
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeLink(w, link)
}

func (h *handlers) Stats(w http.ResponseWriter, r *http.Request) {
	link, err := h.shortener.Stats(r.Context(), chi.URLParam(r, "strid"))
	if err != nil {
		h.writeError(w, err)
		return
	}
	w.Header().Set("Content-Type", "text/plain")
	io.WriteString(w, fmt.Sprintf("%d %s", link.Clicks, link.URL))
}

func (h *handlers) Follow(w http.ResponseWriter, r *http.Request) {
	url, err := h.shortener.Follow(r.Context(), chi.URLParam(r, "code"))
	if err != nil {
		h.writeError(w, err)
		return
	}
	http.Redirect(w, r, url, http.StatusTemporaryRedirect)
}

func (h *handlers) Ping(w http.ResponseWriter, r *http.Request) {
	if err := h.shortener.Ping(); err != nil {
		h.writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusOK)
}

func (h *handlers) writeLink(w http.ResponseWriter, link repository.Link) {
	w.Header().Set("Content-Type", "text/plain")
	w.WriteHeader(http.StatusCreated)
	io.WriteString(w, fmt.Sprintf("%d %s", link.NumID, link.StrID))
}

// writeError переводит ошибку сервиса в код ответа
func (h *handlers) writeError(w http.ResponseWriter, err error) {
	var code int
	switch {
	case errors.Is(err, service.ErrLinkTooShort):
		// так отвечает настоящий сервис
		code = http.StatusRequestURITooLong
	case errors.Is(err, repository.ErrStrIDTaken):
		code = http.StatusConflict
	case errors.Is(err, repository.ErrNotFound):
		code = http.StatusNotFound
	case errors.Is(err, model.ErrInvalidStrID), errors.Is(err, service.ErrEmptyLink):
		code = http.StatusBadRequest
	default:
		h.zaplog.Error("request failed", zap.Error(err))
		code = http.StatusInternalServerError
	}
	http.Error(w, http.StatusText(code), code)
}
