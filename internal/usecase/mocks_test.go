package usecase

import (
	"context"
	"encoding/json"
	"time"

	"agent-match/internal/repository"

	"github.com/google/uuid"
)

type fakeClientRepo struct {
	existing map[uuid.UUID]repository.Client
	err      error
}

func (f *fakeClientRepo) Create(_ context.Context, name string) (repository.Client, error) {
	if f.err != nil {
		return repository.Client{}, f.err
	}
	c := repository.Client{ID: uuid.New(), Name: name}
	if f.existing == nil {
		f.existing = map[uuid.UUID]repository.Client{}
	}
	f.existing[c.ID] = c
	return c, nil
}

func (f *fakeClientRepo) GetByID(_ context.Context, id uuid.UUID) (repository.Client, error) {
	if f.err != nil {
		return repository.Client{}, f.err
	}
	c, ok := f.existing[id]
	if !ok {
		return repository.Client{}, repository.ErrClientNotFound
	}
	return c, nil
}

func (f *fakeClientRepo) ExistsByID(_ context.Context, id uuid.UUID) (bool, error) {
	if f.err != nil {
		return false, f.err
	}
	_, ok := f.existing[id]
	return ok, nil
}

func (f *fakeClientRepo) ListAll(_ context.Context) ([]repository.Client, error) {
	if f.err != nil {
		return nil, f.err
	}
	out := make([]repository.Client, 0, len(f.existing))
	for _, c := range f.existing {
		out = append(out, c)
	}
	return out, nil
}

type fakeEmployeeRepo struct {
	items []repository.Employee
	err   error
}

func (f *fakeEmployeeRepo) Create(_ context.Context, e repository.Employee) (repository.Employee, error) {
	if f.err != nil {
		return repository.Employee{}, f.err
	}
	if e.ID == uuid.Nil {
		e.ID = uuid.New()
	}
	f.items = append(f.items, e)
	return e, nil
}

func (f *fakeEmployeeRepo) GetByID(_ context.Context, id uuid.UUID) (repository.Employee, error) {
	for _, e := range f.items {
		if e.ID == id {
			return e, nil
		}
	}
	return repository.Employee{}, repository.ErrEmployeeNotFound
}

func (f *fakeEmployeeRepo) ExistsByID(_ context.Context, id uuid.UUID) (bool, error) {
	if f.err != nil {
		return false, f.err
	}
	for _, e := range f.items {
		if e.ID == id {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeEmployeeRepo) ListAll(_ context.Context) ([]repository.Employee, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.items, nil
}

type fakeSkillRepo struct {
	skills map[uuid.UUID]string
	err    error
}

func (f *fakeSkillRepo) GetAllSkills(_ context.Context) ([]repository.Skill, error) {
	if f.err != nil {
		return nil, f.err
	}
	out := make([]repository.Skill, 0, len(f.skills))
	for id, name := range f.skills {
		out = append(out, repository.Skill{ID: id, Name: name})
	}
	return out, nil
}

func (f *fakeSkillRepo) UpsertByName(_ context.Context, name string) (repository.Skill, error) {
	if f.err != nil {
		return repository.Skill{}, f.err
	}
	for id, n := range f.skills {
		if n == name {
			return repository.Skill{ID: id, Name: n}, nil
		}
	}
	s := repository.Skill{ID: uuid.New(), Name: name}
	if f.skills == nil {
		f.skills = map[uuid.UUID]string{}
	}
	f.skills[s.ID] = s.Name
	return s, nil
}

func (f *fakeSkillRepo) ExistingIDs(_ context.Context, ids []uuid.UUID) (map[uuid.UUID]struct{}, error) {
	if f.err != nil {
		return nil, f.err
	}
	out := map[uuid.UUID]struct{}{}
	for _, id := range ids {
		if _, ok := f.skills[id]; ok {
			out[id] = struct{}{}
		}
	}
	return out, nil
}

type fakeCertRepo struct {
	certs map[uuid.UUID]string
	err   error
}

func (f *fakeCertRepo) GetAllCertifications(_ context.Context) ([]repository.Certification, error) {
	if f.err != nil {
		return nil, f.err
	}
	out := make([]repository.Certification, 0, len(f.certs))
	for id, name := range f.certs {
		out = append(out, repository.Certification{ID: id, Name: name})
	}
	return out, nil
}

func (f *fakeCertRepo) UpsertByName(_ context.Context, name string) (repository.Certification, error) {
	if f.err != nil {
		return repository.Certification{}, f.err
	}
	for id, n := range f.certs {
		if n == name {
			return repository.Certification{ID: id, Name: n}, nil
		}
	}
	c := repository.Certification{ID: uuid.New(), Name: name}
	if f.certs == nil {
		f.certs = map[uuid.UUID]string{}
	}
	f.certs[c.ID] = c.Name
	return c, nil
}

func (f *fakeCertRepo) ExistingIDs(_ context.Context, ids []uuid.UUID) (map[uuid.UUID]struct{}, error) {
	if f.err != nil {
		return nil, f.err
	}
	out := map[uuid.UUID]struct{}{}
	for _, id := range ids {
		if _, ok := f.certs[id]; ok {
			out[id] = struct{}{}
		}
	}
	return out, nil
}

type fakeEmployeeSkillRepo struct {
	assocs []repository.EmployeeSkill
	err    error
}

func (f *fakeEmployeeSkillRepo) Assign(_ context.Context, employeeID, skillID uuid.UUID) error {
	if f.err != nil {
		return f.err
	}
	for _, a := range f.assocs {
		if a.EmployeeID == employeeID && a.SkillID == skillID {
			return nil
		}
	}
	f.assocs = append(f.assocs, repository.EmployeeSkill{EmployeeID: employeeID, SkillID: skillID})
	return nil
}

func (f *fakeEmployeeSkillRepo) FindByEmployeeID(_ context.Context, employeeID uuid.UUID) ([]repository.EmployeeSkill, error) {
	out := make([]repository.EmployeeSkill, 0)
	for _, a := range f.assocs {
		if a.EmployeeID == employeeID {
			out = append(out, a)
		}
	}
	return out, nil
}

func (f *fakeEmployeeSkillRepo) ListAll(_ context.Context) ([]repository.EmployeeSkill, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.assocs, nil
}

type fakeEmployeeCertRepo struct {
	assocs []repository.EmployeeCertification
	err    error
}

func (f *fakeEmployeeCertRepo) Assign(_ context.Context, employeeID, certID uuid.UUID) error {
	if f.err != nil {
		return f.err
	}
	for _, a := range f.assocs {
		if a.EmployeeID == employeeID && a.CertificationID == certID {
			return nil
		}
	}
	f.assocs = append(f.assocs, repository.EmployeeCertification{EmployeeID: employeeID, CertificationID: certID})
	return nil
}

func (f *fakeEmployeeCertRepo) FindByEmployeeID(_ context.Context, employeeID uuid.UUID) ([]repository.EmployeeCertification, error) {
	out := make([]repository.EmployeeCertification, 0)
	for _, a := range f.assocs {
		if a.EmployeeID == employeeID {
			out = append(out, a)
		}
	}
	return out, nil
}

func (f *fakeEmployeeCertRepo) ListAll(_ context.Context) ([]repository.EmployeeCertification, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.assocs, nil
}

type fakeRequirementRepo struct {
	sets         map[uuid.UUID]repository.RequirementSet
	replaceCalls int
	err          error
}

func (f *fakeRequirementRepo) Replace(_ context.Context, clientID uuid.UUID, skillIDs, certIDs []uuid.UUID) error {
	if f.err != nil {
		return f.err
	}
	f.replaceCalls++
	if f.sets == nil {
		f.sets = map[uuid.UUID]repository.RequirementSet{}
	}
	f.sets[clientID] = repository.RequirementSet{
		SkillIDs:         append([]uuid.UUID(nil), skillIDs...),
		CertificationIDs: append([]uuid.UUID(nil), certIDs...),
	}
	return nil
}

func (f *fakeRequirementRepo) GetByClientID(_ context.Context, clientID uuid.UUID) (repository.RequirementSet, error) {
	if f.err != nil {
		return repository.RequirementSet{}, f.err
	}
	return f.sets[clientID], nil
}

type fakeRankingCache struct {
	store   map[string][]byte
	deletes []string
}

func (f *fakeRankingCache) GetJSON(_ context.Context, key string, out any) (bool, error) {
	b, ok := f.store[key]
	if !ok {
		return false, nil
	}
	if err := json.Unmarshal(b, out); err != nil {
		return false, err
	}
	return true, nil
}

func (f *fakeRankingCache) SetJSON(_ context.Context, key string, value any, _ time.Duration) error {
	b, err := json.Marshal(value)
	if err != nil {
		return err
	}
	if f.store == nil {
		f.store = map[string][]byte{}
	}
	f.store[key] = b
	return nil
}

func (f *fakeRankingCache) Delete(_ context.Context, key string) error {
	f.deletes = append(f.deletes, key)
	delete(f.store, key)
	return nil
}
