package dto

import "github.com/google/uuid"

type AgentMatchResponse struct {
	EmployeeID            uuid.UUID `json:"employee_id"`
	Name                  string    `json:"name"`
	Role                  string    `json:"role"`
	ExperienceYears       int       `json:"experience_years"`
	PerformanceScore      int       `json:"performance_score"`
	MatchedSkills         []string  `json:"matched_skills"`
	MatchedCertifications []string  `json:"matched_certifications"`
	MatchScore            int       `json:"match_score"`
}
