package handler

import (
	"agent-match/internal/pkg/response"
	"agent-match/internal/usecase"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"
)

type EmployeeHandler struct {
	uc usecase.EmployeeUsecase
}

type employeeResponse struct {
	ID               uuid.UUID `json:"id"`
	Name             string    `json:"name"`
	Role             string    `json:"role"`
	ExperienceYears  int       `json:"experience_years"`
	PerformanceScore int       `json:"performance_score"`
}

type createEmployeeRequest struct {
	Name             string `json:"name" validate:"required"`
	Role             string `json:"role"`
	ExperienceYears  int    `json:"experience_years" validate:"gte=0"`
	PerformanceScore int    `json:"performance_score" validate:"gte=0,lte=100"`
}

type assignSkillRequest struct {
	SkillID uuid.UUID `json:"skill_id" validate:"required"`
}

type assignCertificationRequest struct {
	CertificationID uuid.UUID `json:"certification_id" validate:"required"`
}

func NewEmployeeHandler(uc usecase.EmployeeUsecase) *EmployeeHandler {
	return &EmployeeHandler{uc: uc}
}

func (h *EmployeeHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	grp := r.Group("/employees")
	grp.Get("/", h.List)
	grp.Post("/", h.Create)
	grp.Post("/:employee_id/skills", h.AssignSkill)
	grp.Post("/:employee_id/certifications", h.AssignCertification)
}

func (h *EmployeeHandler) List(c fiber.Ctx) error {
	items, err := h.uc.ListEmployees(c.Context())
	if err != nil {
		return mapUsecaseError(err)
	}

	res := make([]employeeResponse, 0, len(items))
	for _, it := range items {
		res = append(res, employeeResponse(it))
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, res)
}

func (h *EmployeeHandler) Create(c fiber.Ctx) error {
	var req createEmployeeRequest
	if err := c.Bind().Body(&req); err != nil {
		return response.Error(c, fiber.StatusBadRequest, response.MessageBadRequest, nil)
	}
	if err := validate.Struct(req); err != nil {
		return response.Error(c, fiber.StatusBadRequest, err.Error(), nil)
	}

	created, err := h.uc.AddEmployee(c.Context(), usecase.AddEmployeeInput{
		Name:             req.Name,
		Role:             req.Role,
		ExperienceYears:  req.ExperienceYears,
		PerformanceScore: req.PerformanceScore,
	})
	if err != nil {
		return mapUsecaseError(err)
	}

	return response.Success(c, fiber.StatusCreated, "Employee created successfully", employeeResponse(created))
}

func (h *EmployeeHandler) AssignSkill(c fiber.Ctx) error {
	employeeID, err := uuid.Parse(c.Params("employee_id"))
	if err != nil {
		return response.Error(c, fiber.StatusBadRequest, response.MessageBadRequest, nil)
	}

	var req assignSkillRequest
	if err := c.Bind().Body(&req); err != nil {
		return response.Error(c, fiber.StatusBadRequest, response.MessageBadRequest, nil)
	}
	if err := validate.Struct(req); err != nil {
		return response.Error(c, fiber.StatusBadRequest, err.Error(), nil)
	}

	if err := h.uc.AssignSkill(c.Context(), employeeID, req.SkillID); err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, "Skill assigned successfully", nil)
}

func (h *EmployeeHandler) AssignCertification(c fiber.Ctx) error {
	employeeID, err := uuid.Parse(c.Params("employee_id"))
	if err != nil {
		return response.Error(c, fiber.StatusBadRequest, response.MessageBadRequest, nil)
	}

	var req assignCertificationRequest
	if err := c.Bind().Body(&req); err != nil {
		return response.Error(c, fiber.StatusBadRequest, response.MessageBadRequest, nil)
	}
	if err := validate.Struct(req); err != nil {
		return response.Error(c, fiber.StatusBadRequest, err.Error(), nil)
	}

	if err := h.uc.AssignCertification(c.Context(), employeeID, req.CertificationID); err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, "Certification assigned successfully", nil)
}
