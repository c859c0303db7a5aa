package handler

import (
	"agent-match/internal/pkg/response"
	"agent-match/internal/usecase"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"
)

type ClientHandler struct {
	uc usecase.ClientUsecase
}

type clientResponse struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
}

type createClientRequest struct {
	Name string `json:"name" validate:"required"`
}

func NewClientHandler(uc usecase.ClientUsecase) *ClientHandler {
	return &ClientHandler{uc: uc}
}

func (h *ClientHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	grp := r.Group("/clients")
	grp.Get("/", h.List)
	grp.Post("/", h.Create)
}

func (h *ClientHandler) List(c fiber.Ctx) error {
	items, err := h.uc.ListClients(c.Context())
	if err != nil {
		return mapUsecaseError(err)
	}

	res := make([]clientResponse, 0, len(items))
	for _, it := range items {
		res = append(res, clientResponse{ID: it.ID, Name: it.Name})
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, res)
}

func (h *ClientHandler) Create(c fiber.Ctx) error {
	var req createClientRequest
	if err := c.Bind().Body(&req); err != nil {
		return response.Error(c, fiber.StatusBadRequest, response.MessageBadRequest, nil)
	}
	if err := validate.Struct(req); err != nil {
		return response.Error(c, fiber.StatusBadRequest, err.Error(), nil)
	}

	created, err := h.uc.AddClient(c.Context(), req.Name)
	if err != nil {
		return mapUsecaseError(err)
	}

	return response.Success(c, fiber.StatusCreated, "Client created successfully", clientResponse{ID: created.ID, Name: created.Name})
}
