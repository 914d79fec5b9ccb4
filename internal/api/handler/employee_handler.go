package handler

import (
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/peoplecore/hris-api/internal/core/domain"
	"github.com/peoplecore/hris-api/internal/core/ports"
)

// EmployeeHandler handles HTTP requests for the employee directory.
type EmployeeHandler struct {
	service ports.EmployeeService
}

func NewEmployeeHandler(service ports.EmployeeService) *EmployeeHandler {
	return &EmployeeHandler{service: service}
}

type createEmployeeRequest struct {
	EmployeeNumber string `json:"employee_number" validate:"required"`
	WorkEmail      string `json:"work_email"      validate:"required,email"`
	FirstName      string `json:"first_name"      validate:"required"`
	LastName       string `json:"last_name"       validate:"required"`
	Department     string `json:"department"`
	Position       string `json:"position"`
	ManagerID      string `json:"manager_id"`
	HireDate       string `json:"hire_date"` // YYYY-MM-DD, defaults to today
}

type listEmployeesResponse struct {
	Data       []*domain.Employee `json:"data"`
	Pagination paginationResponse `json:"pagination"`
}

// Create handles POST /v1/employees.
//
// @Summary      Create an employee record
// @Tags         employees
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createEmployeeRequest  true  "Employee details"
// @Success      201   {object}  domain.Employee
// @Failure      400   {object}  errorResponse
// @Failure      403   {object}  errorResponse
// @Failure      409   {object}  errorResponse
// @Router       /v1/employees [post]
func (h *EmployeeHandler) Create(c echo.Context) error {
	principal, err := ctxPrincipal(c)
	if err != nil {
		return err
	}

	var req createEmployeeRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	var hireDate time.Time
	if req.HireDate != "" {
		hireDate, err = time.Parse("2006-01-02", req.HireDate)
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "hire_date must be YYYY-MM-DD")
		}
	}

	created, err := h.service.CreateEmployee(c.Request().Context(), ports.CreateEmployeeInput{
		Principal:      principal,
		EmployeeNumber: req.EmployeeNumber,
		WorkEmail:      req.WorkEmail,
		FirstName:      req.FirstName,
		LastName:       req.LastName,
		Department:     req.Department,
		Position:       req.Position,
		ManagerID:      req.ManagerID,
		HireDate:       hireDate,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, created)
}

// Get handles GET /v1/employees/:id.
//
// @Summary      Get an employee record (own record or privileged)
// @Tags         employees
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Employee id"
// @Success      200  {object}  domain.Employee
// @Failure      403  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /v1/employees/{id} [get]
func (h *EmployeeHandler) Get(c echo.Context) error {
	principal, err := ctxPrincipal(c)
	if err != nil {
		return err
	}

	employee, err := h.service.GetEmployee(c.Request().Context(), ports.GetEmployeeInput{
		Principal:  principal,
		EmployeeID: c.Param("id"),
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, employee)
}

// List handles GET /v1/employees.
//
// @Summary      List employee records
// @Tags         employees
// @Produce      json
// @Security     BearerAuth
// @Param        status      query     string  false  "Filter by employment status"
// @Param        department  query     string  false  "Filter by department"
// @Param        limit       query     int     false  "Page size"
// @Param        offset      query     int     false  "Rows to skip"
// @Success      200         {object}  listEmployeesResponse
// @Failure      403         {object}  errorResponse
// @Router       /v1/employees [get]
func (h *EmployeeHandler) List(c echo.Context) error {
	principal, err := ctxPrincipal(c)
	if err != nil {
		return err
	}

	limit, _ := strconv.Atoi(c.QueryParam("limit"))
	offset, _ := strconv.Atoi(c.QueryParam("offset"))

	result, err := h.service.ListEmployees(c.Request().Context(), ports.ListEmployeesInput{
		Principal:  principal,
		Status:     c.QueryParam("status"),
		Department: c.QueryParam("department"),
		Limit:      limit,
		Offset:     offset,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, listEmployeesResponse{
		Data: result.Items,
		Pagination: paginationResponse{
			Total:  result.Total,
			Limit:  result.Limit,
			Offset: result.Offset,
		},
	})
}
