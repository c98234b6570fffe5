package rbac

import (
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"
)

// Handler is the admin surface of the actor
type Handler interface {
	Reset(c echo.Context) error
	Policies(c echo.Context) error
}

type handler struct {
	actor *Actor
}

// NewHandler is for wire.go
func NewHandler(actor *Actor) Handler {
	return &handler{actor}
}

// Reset reloads the policies from the stores
func (h *handler) Reset(c echo.Context) error {
	ctx, span := tracer.Start(c.Request().Context(), "RBAC.Handler.Reset")
	defer span.End()

	err := h.actor.Reset(ctx)
	if err != nil {
		span.RecordError(err)
		slog.ErrorContext(ctx, "manual reset failed", slog.String("error", err.Error()), slog.String("module", "rbac"))
		return c.JSON(http.StatusInternalServerError, echo.Map{"status": "error", "message": err.Error()})
	}

	return c.JSON(http.StatusOK, echo.Map{"status": "ok"})
}

// Policies returns the loaded facts and assignments
func (h *handler) Policies(c echo.Context) error {
	ctx, span := tracer.Start(c.Request().Context(), "RBAC.Handler.Policies")
	defer span.End()

	snapshot, err := h.actor.Snapshot(ctx)
	if err != nil {
		span.RecordError(err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"status": "error", "message": err.Error()})
	}

	return c.JSON(http.StatusOK, echo.Map{"status": "ok", "content": snapshot})
}
