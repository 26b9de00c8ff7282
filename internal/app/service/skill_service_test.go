package service

import (
	"context"
	"errors"
	"testing"

	"portfolio_api/internal/common"
	"portfolio_api/internal/domain/model"
)

type fakeSkillRepo struct {
	skills map[string]*model.Skill
}

func newFakeSkillRepo() *fakeSkillRepo {
	return &fakeSkillRepo{skills: map[string]*model.Skill{}}
}

func (r *fakeSkillRepo) Create(ctx context.Context, skill *model.Skill) error {
	for _, s := range r.skills {
		if s.Name == skill.Name {
			return common.ErrConflict
		}
	}
	r.skills[skill.ID] = skill
	return nil
}

func (r *fakeSkillRepo) List(ctx context.Context) ([]model.Skill, error) {
	out := make([]model.Skill, 0, len(r.skills))
	for _, s := range r.skills {
		out = append(out, *s)
	}
	return out, nil
}

func (r *fakeSkillRepo) FindByID(ctx context.Context, id string) (*model.Skill, error) {
	s, ok := r.skills[id]
	if !ok {
		return nil, common.ErrNotFound
	}
	cp := *s
	return &cp, nil
}

func (r *fakeSkillRepo) Update(ctx context.Context, skill *model.Skill) error {
	for id, s := range r.skills {
		if id != skill.ID && s.Name == skill.Name {
			return common.ErrConflict
		}
	}
	if _, ok := r.skills[skill.ID]; !ok {
		return common.ErrNotFound
	}
	r.skills[skill.ID] = skill
	return nil
}

func (r *fakeSkillRepo) Delete(ctx context.Context, id string) error {
	if _, ok := r.skills[id]; !ok {
		return common.ErrNotFound
	}
	delete(r.skills, id)
	return nil
}

func TestSkillCreate_EnumDefaults(t *testing.T) {
	svc := NewSkillService(newFakeSkillRepo())

	skill, err := svc.Create(context.Background(), "admin-1", CreateSkillRequest{Name: "Go"})
	if err != nil {
		t.Fatalf("Create error: %v", err)
	}
	if skill.Category != model.SkillCategoryOther {
		t.Fatalf("expected default category, got %q", skill.Category)
	}
	if skill.Level != model.SkillLevelIntermediate {
		t.Fatalf("expected default level, got %q", skill.Level)
	}
}

func TestSkillCreate_InvalidEnums(t *testing.T) {
	svc := NewSkillService(newFakeSkillRepo())

	_, err := svc.Create(context.Background(), "admin-1", CreateSkillRequest{Name: "Go", Category: "cooking"})
	if !errors.Is(err, common.ErrValidation) {
		t.Fatalf("expected ErrValidation for unknown category, got %v", err)
	}
	_, err = svc.Create(context.Background(), "admin-1", CreateSkillRequest{Name: "Go", Level: "wizard"})
	if !errors.Is(err, common.ErrValidation) {
		t.Fatalf("expected ErrValidation for unknown level, got %v", err)
	}
}

func TestSkillCreate_MissingName(t *testing.T) {
	svc := NewSkillService(newFakeSkillRepo())

	if _, err := svc.Create(context.Background(), "admin-1", CreateSkillRequest{}); !errors.Is(err, common.ErrValidation) {
		t.Fatalf("expected ErrValidation, got %v", err)
	}
}

func TestSkillCreate_DuplicateName(t *testing.T) {
	svc := NewSkillService(newFakeSkillRepo())

	if _, err := svc.Create(context.Background(), "admin-1", CreateSkillRequest{Name: "Go"}); err != nil {
		t.Fatalf("first Create error: %v", err)
	}

	_, err := svc.Create(context.Background(), "admin-1", CreateSkillRequest{Name: "Go"})
	if !errors.Is(err, common.ErrBadRequest) {
		t.Fatalf("expected ErrBadRequest, got %v", err)
	}
	if err.Error() != "Skill already exists" {
		t.Fatalf("unexpected message: %q", err.Error())
	}
}

func TestSkillUpdate_Partial(t *testing.T) {
	svc := NewSkillService(newFakeSkillRepo())

	skill, err := svc.Create(context.Background(), "admin-1", CreateSkillRequest{
		Name:     "Go",
		Category: model.SkillCategoryBackend,
		Level:    model.SkillLevelAdvanced,
		Icon:     "go.svg",
	})
	if err != nil {
		t.Fatalf("Create error: %v", err)
	}

	level := model.SkillLevelExpert
	updated, err := svc.Update(context.Background(), skill.ID, UpdateSkillRequest{Level: &level})
	if err != nil {
		t.Fatalf("Update error: %v", err)
	}
	if updated.Level != model.SkillLevelExpert {
		t.Fatalf("level not updated: %q", updated.Level)
	}
	if updated.Category != model.SkillCategoryBackend || updated.Icon != "go.svg" {
		t.Fatalf("absent fields must stay untouched: %+v", updated)
	}
}

func TestSkillUpdate_InvalidEnum(t *testing.T) {
	svc := NewSkillService(newFakeSkillRepo())

	skill, err := svc.Create(context.Background(), "admin-1", CreateSkillRequest{Name: "Go"})
	if err != nil {
		t.Fatalf("Create error: %v", err)
	}

	bad := "wizard"
	if _, err := svc.Update(context.Background(), skill.ID, UpdateSkillRequest{Level: &bad}); !errors.Is(err, common.ErrValidation) {
		t.Fatalf("expected ErrValidation, got %v", err)
	}
}

func TestSkillGetByID_NotFound(t *testing.T) {
	svc := NewSkillService(newFakeSkillRepo())

	_, err := svc.GetByID(context.Background(), "missing")
	if !errors.Is(err, common.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	if err.Error() != "Skill not found" {
		t.Fatalf("unexpected message: %q", err.Error())
	}
}
