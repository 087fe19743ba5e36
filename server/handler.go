package server

import (
	"bytes"
	"context"
	"errors"
	"io"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/kimd61/manga-prototype1/detail"
)

// StatusClientClosedRequest is reported when the client went away before the
// load finished. Nothing is rendered for it.
const StatusClientClosedRequest = 499

// DetailLoader loads a detail bundle for a manga id
type DetailLoader interface {
	LoadDetail(ctx context.Context, id string) (*detail.Bundle, error)
}

// PageRenderer renders bundles and error messages as HTML fragments
type PageRenderer interface {
	Render(w io.Writer, b *detail.Bundle) error
	RenderError(w io.Writer, msg string) error
}

// Handler serves manga detail pages
type Handler struct {
	loader   DetailLoader
	renderer PageRenderer
	logger   zerolog.Logger
}

// NewHandler creates a new detail page handler
func NewHandler(loader DetailLoader, renderer PageRenderer, logger zerolog.Logger) *Handler {
	return &Handler{
		loader:   loader,
		renderer: renderer,
		logger:   logger,
	}
}

// Register mounts the handler routes on e
func (h *Handler) Register(e *echo.Echo) {
	e.GET("/manga-detail", h.MangaDetail)
	e.GET("/healthz", h.Health)
}

// MangaDetail handles GET /manga-detail?id=N
func (h *Handler) MangaDetail(c echo.Context) error {
	id, err := detail.ParseID(c.QueryParam("id"))
	if err != nil {
		return h.renderError(c, http.StatusBadRequest, err)
	}

	// The request context is cancelled when the client goes away, which
	// stops the load and discards whatever it had fetched.
	bundle, err := h.loader.LoadDetail(c.Request().Context(), id)
	if err != nil {
		if errors.Is(err, context.Canceled) {
			h.logger.Info().Str("manga_id", id).Msg("Client closed request, discarding load")
			return c.NoContent(StatusClientClosedRequest)
		}
		h.logger.Error().Err(err).Str("manga_id", id).Msg("Failed to load manga details")
		return h.renderError(c, http.StatusBadGateway, err)
	}

	var buf bytes.Buffer
	if err := h.renderer.Render(&buf, bundle); err != nil {
		h.logger.Error().Err(err).Str("manga_id", id).Msg("Failed to render manga details")
		return h.renderError(c, http.StatusInternalServerError, err)
	}

	return c.HTMLBlob(http.StatusOK, buf.Bytes())
}

// Health handles GET /healthz
func (h *Handler) Health(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{
		"status": "ok",
	})
}

func (h *Handler) renderError(c echo.Context, status int, err error) error {
	var buf bytes.Buffer
	if rerr := h.renderer.RenderError(&buf, detail.UserMessage(err)); rerr != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, detail.UserMessage(err)).SetInternal(rerr)
	}
	return c.HTMLBlob(status, buf.Bytes())
}
