package handler

import (
	"agent-match/internal/delivery/http/dto"
	"agent-match/internal/pkg/response"
	"agent-match/internal/usecase"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"
)

// MatchHandler exposes the two core operations: replacing a client's
// requirement set and ranking all agents against it.
type MatchHandler struct {
	requirements usecase.RequirementUsecase
	matching     usecase.MatchingUsecase
}

type saveRequirementsRequest struct {
	SkillIDs         []uuid.UUID `json:"skill_ids"`
	CertificationIDs []uuid.UUID `json:"certification_ids"`
}

func NewMatchHandler(requirements usecase.RequirementUsecase, matching usecase.MatchingUsecase) *MatchHandler {
	return &MatchHandler{requirements: requirements, matching: matching}
}

func (h *MatchHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}
	grp := r.Group("/clients")
	grp.Put("/:client_id/requirements", h.SaveRequirements)
	grp.Get("/:client_id/agents", h.RankAgents)
}

func (h *MatchHandler) SaveRequirements(c fiber.Ctx) error {
	clientID, err := uuid.Parse(c.Params("client_id"))
	if err != nil {
		return response.Error(c, fiber.StatusBadRequest, response.MessageBadRequest, nil)
	}

	var req saveRequirementsRequest
	if err := c.Bind().Body(&req); err != nil {
		return response.Error(c, fiber.StatusBadRequest, response.MessageBadRequest, nil)
	}

	if err := h.requirements.SaveRequirements(c.Context(), clientID, req.SkillIDs, req.CertificationIDs); err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, "Requirements saved successfully", nil)
}

func (h *MatchHandler) RankAgents(c fiber.Ctx) error {
	clientID, err := uuid.Parse(c.Params("client_id"))
	if err != nil {
		return response.Error(c, fiber.StatusBadRequest, response.MessageBadRequest, nil)
	}

	ranked, err := h.matching.RankAgents(c.Context(), clientID)
	if err != nil {
		return mapUsecaseError(err)
	}

	res := make([]dto.AgentMatchResponse, 0, len(ranked))
	for _, m := range ranked {
		res = append(res, dto.AgentMatchResponse{
			EmployeeID:            m.EmployeeID,
			Name:                  m.Name,
			Role:                  m.Role,
			ExperienceYears:       m.ExperienceYears,
			PerformanceScore:      m.PerformanceScore,
			MatchedSkills:         m.MatchedSkills,
			MatchedCertifications: m.MatchedCertifications,
			MatchScore:            m.MatchScore,
		})
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, res)
}
