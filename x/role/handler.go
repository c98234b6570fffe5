package role

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"

	"github.com/totegamma/rolegate/core"
	"github.com/totegamma/rolegate/x/sequencer"
)

// Handler is the interface for handling HTTP requests
type Handler interface {
	List(c echo.Context) error
	Get(c echo.Context) error
	Create(c echo.Context) error
	Update(c echo.Context) error
	Delete(c echo.Context) error
}

type handler struct {
	service   core.RoleService
	validator *validator.Validate
}

// NewHandler creates a new handler
func NewHandler(service core.RoleService) Handler {
	return &handler{
		service:   service,
		validator: validator.New(),
	}
}

type createRequest struct {
	Name        string           `json:"name" validate:"required"`
	Permissions []core.RouteItem `json:"permissions" validate:"dive"`
}

type updateRequest struct {
	Version     uint64           `json:"version"`
	Name        string           `json:"name" validate:"required"`
	Permissions []core.RouteItem `json:"permissions" validate:"dive"`
}

func queryInt(c echo.Context, name string) int64 {
	v, err := strconv.ParseInt(c.QueryParam(name), 10, 64)
	if err != nil {
		return 0
	}
	return v
}

func notFound(c echo.Context) error {
	return c.JSON(http.StatusNotFound, echo.Map{"status": "error", "message": core.NewErrorNotFound().Error()})
}

// List pages through the roles, or resolves the comma separated ids query when given
func (h *handler) List(c echo.Context) error {
	ctx, span := tracer.Start(c.Request().Context(), "Role.Handler.List")
	defer span.End()

	if query := c.QueryParam("ids"); query != "" {
		roles, missing, err := h.service.GetByIDs(ctx, strings.Split(query, ","))
		if err != nil {
			span.RecordError(err)
			return c.JSON(core.ErrorStatus(err), echo.Map{"status": "error", "message": err.Error()})
		}
		return c.JSON(http.StatusOK, echo.Map{"status": "ok", "content": roles, "missing": missing})
	}

	roles, err := h.service.List(ctx, queryInt(c, "page"), queryInt(c, "page_size"))
	if err != nil {
		span.RecordError(err)
		return c.JSON(core.ErrorStatus(err), echo.Map{"status": "error", "message": err.Error()})
	}

	return c.JSON(http.StatusOK, echo.Map{"status": "ok", "content": roles})
}

func (h *handler) Get(c echo.Context) error {
	ctx, span := tracer.Start(c.Request().Context(), "Role.Handler.Get")
	defer span.End()

	if !sequencer.IsSeemsID(c.Param("id")) {
		return notFound(c)
	}

	role, err := h.service.Get(ctx, c.Param("id"))
	if err != nil {
		span.RecordError(err)
		return c.JSON(core.ErrorStatus(err), echo.Map{"status": "error", "message": err.Error()})
	}

	return c.JSON(http.StatusOK, echo.Map{"status": "ok", "content": role})
}

func (h *handler) Create(c echo.Context) error {
	ctx, span := tracer.Start(c.Request().Context(), "Role.Handler.Create")
	defer span.End()

	var request createRequest
	if err := c.Bind(&request); err != nil {
		span.RecordError(err)
		return c.JSON(http.StatusBadRequest, echo.Map{"status": "error", "message": err.Error()})
	}
	if err := h.validator.Struct(request); err != nil {
		span.RecordError(err)
		return c.JSON(http.StatusBadRequest, echo.Map{"status": "error", "message": err.Error()})
	}

	created, err := h.service.Create(ctx, request.Name, request.Permissions)
	if err != nil {
		span.RecordError(err)
		return c.JSON(core.ErrorStatus(err), echo.Map{"status": "error", "message": err.Error()})
	}

	return c.JSON(http.StatusCreated, echo.Map{"status": "ok", "content": created})
}

func (h *handler) Update(c echo.Context) error {
	ctx, span := tracer.Start(c.Request().Context(), "Role.Handler.Update")
	defer span.End()

	if !sequencer.IsSeemsID(c.Param("id")) {
		return notFound(c)
	}

	var request updateRequest
	if err := c.Bind(&request); err != nil {
		span.RecordError(err)
		return c.JSON(http.StatusBadRequest, echo.Map{"status": "error", "message": err.Error()})
	}
	if err := h.validator.Struct(request); err != nil {
		span.RecordError(err)
		return c.JSON(http.StatusBadRequest, echo.Map{"status": "error", "message": err.Error()})
	}

	updated, err := h.service.Update(ctx, c.Param("id"), request.Version, request.Name, request.Permissions)
	if err != nil {
		span.RecordError(err)
		return c.JSON(core.ErrorStatus(err), echo.Map{"status": "error", "message": err.Error()})
	}

	return c.JSON(http.StatusOK, echo.Map{"status": "ok", "content": updated})
}

func (h *handler) Delete(c echo.Context) error {
	ctx, span := tracer.Start(c.Request().Context(), "Role.Handler.Delete")
	defer span.End()

	if !sequencer.IsSeemsID(c.Param("id")) {
		return notFound(c)
	}

	err := h.service.Delete(ctx, c.Param("id"))
	if err != nil {
		span.RecordError(err)
		return c.JSON(core.ErrorStatus(err), echo.Map{"status": "error", "message": err.Error()})
	}

	return c.JSON(http.StatusOK, echo.Map{"status": "ok"})
}
