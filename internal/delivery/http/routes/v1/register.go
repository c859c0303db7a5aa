package v1

import (
	"agent-match/internal/config"
	"agent-match/internal/database"
	"agent-match/internal/delivery/http/handler"
	"agent-match/internal/repository"
	"agent-match/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

func Register(r fiber.Router, cfg config.Config, db database.DB, cache usecase.RankingCache) {
	if r == nil {
		return
	}

	employeeRepo := repository.NewPostgresEmployeeRepository(db)
	skillRepo := repository.NewPostgresSkillRepository(db)
	certRepo := repository.NewPostgresCertificationRepository(db)
	clientRepo := repository.NewPostgresClientRepository(db)
	employeeSkillRepo := repository.NewPostgresEmployeeSkillRepository(db)
	employeeCertRepo := repository.NewPostgresEmployeeCertificationRepository(db)
	requirementRepo := repository.NewPostgresClientRequirementRepository(db)

	employeeUC := usecase.NewEmployeeUsecase(employeeRepo, skillRepo, certRepo, employeeSkillRepo, employeeCertRepo)
	skillUC := usecase.NewSkillUsecase(skillRepo)
	certUC := usecase.NewCertificationUsecase(certRepo)
	clientUC := usecase.NewClientUsecase(clientRepo)
	requirementUC := usecase.NewRequirementUsecase(clientRepo, skillRepo, certRepo, requirementRepo, cache)
	matchingUC := usecase.NewMatchingUsecase(
		clientRepo,
		employeeRepo,
		employeeSkillRepo,
		employeeCertRepo,
		requirementRepo,
		cache,
		cfg.Redis.RankingTTL,
	)

	handler.NewEmployeeHandler(employeeUC).RegisterRoutes(r)
	handler.NewSkillHandler(skillUC).RegisterRoutes(r)
	handler.NewCertificationHandler(certUC).RegisterRoutes(r)
	handler.NewClientHandler(clientUC).RegisterRoutes(r)
	handler.NewMatchHandler(requirementUC, matchingUC).RegisterRoutes(r)
}
