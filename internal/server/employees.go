package server

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/UnknownOlympus/hestia/internal/lib/logger/sl"
	"github.com/UnknownOlympus/hestia/internal/models"
	"github.com/UnknownOlympus/hestia/internal/services/employees"
	"github.com/labstack/echo/v4"
)

// DeleteConfirmation is the body returned by a successful delete.
const DeleteConfirmation = "Employee deleted successfully"

// EmployeeService is the employee lifecycle consumed by the REST handlers.
type EmployeeService interface {
	CreateEmployee(ctx context.Context, employee models.Employee) (models.Employee, error)
	ListEmployees(ctx context.Context) ([]models.Employee, error)
	GetEmployeeByID(ctx context.Context, id int64) (models.Employee, bool, error)
	UpdateEmployee(ctx context.Context, id int64, patch models.EmployeePatch) (models.Employee, bool, error)
	DeleteEmployee(ctx context.Context, id int64) error
}

type EmployeeHandler struct {
	log *slog.Logger
	svc EmployeeService
}

type employeeRequest struct {
	FirstName string `json:"firstName" validate:"required"`
	LastName  string `json:"lastName"  validate:"required"`
	Email     string `json:"email"     validate:"required,email"`
}

type errorResponse struct {
	Error string `json:"error"`
}

func NewEmployeeHandler(log *slog.Logger, svc EmployeeService) *EmployeeHandler {
	return &EmployeeHandler{log: log.With(slog.String("division", "http")), svc: svc}
}

// Register mounts the employee routes on the resource root group.
func (h *EmployeeHandler) Register(group *echo.Group) {
	group.POST("", h.Create)
	group.GET("", h.List)
	group.GET("/:id", h.Get)
	group.PUT("/:id", h.Update)
	group.DELETE("/:id", h.Delete)
}

func (h *EmployeeHandler) Create(c echo.Context) error {
	const opn = "Handler.Create"

	req, err := bindEmployee(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
	}

	created, err := h.svc.CreateEmployee(c.Request().Context(), models.Employee{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
	})
	if err != nil {
		var dupErr *employees.DuplicateEmailError
		if errors.As(err, &dupErr) {
			return c.JSON(http.StatusConflict, errorResponse{Error: dupErr.Error()})
		}
		return h.internalError(c, opn, err)
	}

	return c.JSON(http.StatusCreated, created)
}

func (h *EmployeeHandler) List(c echo.Context) error {
	const opn = "Handler.List"

	list, err := h.svc.ListEmployees(c.Request().Context())
	if err != nil {
		return h.internalError(c, opn, err)
	}

	return c.JSON(http.StatusOK, list)
}

func (h *EmployeeHandler) Get(c echo.Context) error {
	const opn = "Handler.Get"

	id, err := parseID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
	}

	employee, found, err := h.svc.GetEmployeeByID(c.Request().Context(), id)
	if err != nil {
		return h.internalError(c, opn, err)
	}
	if !found {
		return c.NoContent(http.StatusNotFound)
	}

	return c.JSON(http.StatusOK, employee)
}

func (h *EmployeeHandler) Update(c echo.Context) error {
	const opn = "Handler.Update"

	id, err := parseID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
	}

	req, err := bindEmployee(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
	}

	ctx := c.Request().Context()

	_, found, err := h.svc.GetEmployeeByID(ctx, id)
	if err != nil {
		return h.internalError(c, opn, err)
	}
	if !found {
		return c.NoContent(http.StatusNotFound)
	}

	updated, found, err := h.svc.UpdateEmployee(ctx, id, models.EmployeePatch{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
	})
	if err != nil {
		return h.internalError(c, opn, err)
	}
	if !found {
		return c.NoContent(http.StatusNotFound)
	}

	return c.JSON(http.StatusOK, updated)
}

func (h *EmployeeHandler) Delete(c echo.Context) error {
	const opn = "Handler.Delete"

	id, err := parseID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
	}

	if err = h.svc.DeleteEmployee(c.Request().Context(), id); err != nil {
		return h.internalError(c, opn, err)
	}

	return c.String(http.StatusOK, DeleteConfirmation)
}

func (h *EmployeeHandler) internalError(c echo.Context, opn string, err error) error {
	h.log.ErrorContext(c.Request().Context(), "request failed", slog.String("op", opn), sl.Err(err))

	return c.JSON(http.StatusInternalServerError, errorResponse{Error: "internal server error"})
}

var (
	errInvalidID   = errors.New("invalid employee id")
	errInvalidBody = errors.New("invalid request body")
)

func parseID(c echo.Context) (int64, error) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return 0, errInvalidID
	}

	return id, nil
}

func bindEmployee(c echo.Context) (employeeRequest, error) {
	var req employeeRequest

	if err := c.Bind(&req); err != nil {
		return employeeRequest{}, errInvalidBody
	}

	if err := c.Validate(&req); err != nil {
		return employeeRequest{}, err
	}

	return req, nil
}
