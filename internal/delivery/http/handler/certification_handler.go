package handler

import (
	"agent-match/internal/pkg/response"
	"agent-match/internal/usecase"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"
)

type CertificationHandler struct {
	uc usecase.CertificationUsecase
}

type certificationResponse struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
}

type createCertificationRequest struct {
	Name string `json:"name" validate:"required"`
}

func NewCertificationHandler(uc usecase.CertificationUsecase) *CertificationHandler {
	return &CertificationHandler{uc: uc}
}

func (h *CertificationHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	grp := r.Group("/certifications")
	grp.Get("/", h.List)
	grp.Post("/", h.Create)
}

func (h *CertificationHandler) List(c fiber.Ctx) error {
	items, err := h.uc.ListCertifications(c.Context())
	if err != nil {
		return mapUsecaseError(err)
	}

	res := make([]certificationResponse, 0, len(items))
	for _, it := range items {
		res = append(res, certificationResponse{ID: it.ID, Name: it.Name})
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, res)
}

func (h *CertificationHandler) Create(c fiber.Ctx) error {
	var req createCertificationRequest
	if err := c.Bind().Body(&req); err != nil {
		return response.Error(c, fiber.StatusBadRequest, response.MessageBadRequest, nil)
	}
	if err := validate.Struct(req); err != nil {
		return response.Error(c, fiber.StatusBadRequest, err.Error(), nil)
	}

	created, err := h.uc.AddCertification(c.Context(), req.Name)
	if err != nil {
		return mapUsecaseError(err)
	}

	return response.Success(c, fiber.StatusOK, "Certification created successfully", certificationResponse{ID: created.ID, Name: created.Name})
}
