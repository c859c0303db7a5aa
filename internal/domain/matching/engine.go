package matching

import (
	"bytes"
	"sort"

	"github.com/google/uuid"
)

// Fixed scoring policy: a matched certification is worth twice a matched
// skill.
const (
	SkillPoints         = 10
	CertificationPoints = 20
)

type Agent struct {
	ID               uuid.UUID
	Name             string
	Role             string
	ExperienceYears  int
	PerformanceScore int
	SkillIDs         []uuid.UUID
	CertificationIDs []uuid.UUID
}

type RequirementSet struct {
	SkillIDs         []uuid.UUID
	CertificationIDs []uuid.UUID
}

func (r RequirementSet) Empty() bool {
	return len(r.SkillIDs) == 0 && len(r.CertificationIDs) == 0
}

type AgentMatch struct {
	EmployeeID            uuid.UUID
	Name                  string
	Role                  string
	ExperienceYears       int
	PerformanceScore      int
	MatchedSkills         []string
	MatchedCertifications []string
	MatchScore            int
}

// Rank scores every agent against the requirement set and returns all of
// them, best first. Skills and certifications are intersected independently
// so an agent with many associations can never cross-match or double-count a
// requirement. Agents with no overlap stay in the result at score zero.
//
// Order is descending by (match score, performance score, experience years),
// with id as the final tie-break so equal agents rank deterministically.
func Rank(agents []Agent, req RequirementSet, skillNames, certificationNames map[uuid.UUID]string) []AgentMatch {
	requiredSkills := idSet(req.SkillIDs)
	requiredCerts := idSet(req.CertificationIDs)

	out := make([]AgentMatch, 0, len(agents))
	for _, a := range agents {
		matchedSkills := intersectNames(a.SkillIDs, requiredSkills, skillNames)
		matchedCerts := intersectNames(a.CertificationIDs, requiredCerts, certificationNames)

		out = append(out, AgentMatch{
			EmployeeID:            a.ID,
			Name:                  a.Name,
			Role:                  a.Role,
			ExperienceYears:       a.ExperienceYears,
			PerformanceScore:      a.PerformanceScore,
			MatchedSkills:         matchedSkills,
			MatchedCertifications: matchedCerts,
			MatchScore:            SkillPoints*len(matchedSkills) + CertificationPoints*len(matchedCerts),
		})
	}

	sort.Slice(out, func(i, j int) bool {
		if out[i].MatchScore != out[j].MatchScore {
			return out[i].MatchScore > out[j].MatchScore
		}
		if out[i].PerformanceScore != out[j].PerformanceScore {
			return out[i].PerformanceScore > out[j].PerformanceScore
		}
		if out[i].ExperienceYears != out[j].ExperienceYears {
			return out[i].ExperienceYears > out[j].ExperienceYears
		}
		return bytes.Compare(out[i].EmployeeID[:], out[j].EmployeeID[:]) < 0
	})

	return out
}

func idSet(ids []uuid.UUID) map[uuid.UUID]struct{} {
	set := make(map[uuid.UUID]struct{}, len(ids))
	for _, id := range ids {
		if id == uuid.Nil {
			continue
		}
		set[id] = struct{}{}
	}
	return set
}

// intersectNames resolves possessed ids against the required set and returns
// the display names of the overlap, sorted, each id counted once.
func intersectNames(possessed []uuid.UUID, required map[uuid.UUID]struct{}, names map[uuid.UUID]string) []string {
	seen := make(map[uuid.UUID]struct{}, len(possessed))
	out := make([]string, 0)
	for _, id := range possessed {
		if _, dup := seen[id]; dup {
			continue
		}
		seen[id] = struct{}{}

		if _, ok := required[id]; !ok {
			continue
		}
		name, ok := names[id]
		if !ok {
			name = id.String()
		}
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}
