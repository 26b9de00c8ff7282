package service

import (
	"context"
	"errors"
	"testing"

	"portfolio_api/internal/common"
	"portfolio_api/internal/domain/model"
)

type fakeProjectRepo struct {
	projects map[string]*model.Project

	createErr error
	updateErr error
}

func newFakeProjectRepo() *fakeProjectRepo {
	return &fakeProjectRepo{projects: map[string]*model.Project{}}
}

func (r *fakeProjectRepo) Create(ctx context.Context, project *model.Project) error {
	if r.createErr != nil {
		return r.createErr
	}
	r.projects[project.ID] = project
	return nil
}

func (r *fakeProjectRepo) List(ctx context.Context) ([]model.Project, error) {
	out := make([]model.Project, 0, len(r.projects))
	for _, p := range r.projects {
		out = append(out, *p)
	}
	return out, nil
}

func (r *fakeProjectRepo) FindByID(ctx context.Context, id string) (*model.Project, error) {
	p, ok := r.projects[id]
	if !ok {
		return nil, common.ErrNotFound
	}
	cp := *p
	return &cp, nil
}

func (r *fakeProjectRepo) Update(ctx context.Context, project *model.Project) error {
	if r.updateErr != nil {
		return r.updateErr
	}
	if _, ok := r.projects[project.ID]; !ok {
		return common.ErrNotFound
	}
	r.projects[project.ID] = project
	return nil
}

func (r *fakeProjectRepo) Delete(ctx context.Context, id string) error {
	if _, ok := r.projects[id]; !ok {
		return common.ErrNotFound
	}
	delete(r.projects, id)
	return nil
}

func TestProjectCreate_SlugAndDefaults(t *testing.T) {
	repo := newFakeProjectRepo()
	svc := NewProjectService(repo)

	project, err := svc.Create(context.Background(), "admin-1", CreateProjectRequest{
		Title:        "My First Project!",
		Description:  "A demo",
		Technologies: []string{"Go", "PostgreSQL"},
	})
	if err != nil {
		t.Fatalf("Create error: %v", err)
	}
	if project.Slug != "my-first-project" {
		t.Fatalf("unexpected slug: %q", project.Slug)
	}
	if project.Image != model.DefaultProjectImage {
		t.Fatalf("expected default image, got %q", project.Image)
	}
	if project.CreatedBy != "admin-1" {
		t.Fatalf("unexpected creator: %q", project.CreatedBy)
	}
	if project.ID == "" {
		t.Fatal("expected generated ID")
	}
	if _, ok := repo.projects[project.ID]; !ok {
		t.Fatal("project must be persisted")
	}
}

func TestProjectCreate_Validation(t *testing.T) {
	svc := NewProjectService(newFakeProjectRepo())

	cases := []struct {
		name string
		req  CreateProjectRequest
	}{
		{"missing title", CreateProjectRequest{Description: "d", Technologies: []string{"Go"}}},
		{"missing description", CreateProjectRequest{Title: "t", Technologies: []string{"Go"}}},
		{"no technologies", CreateProjectRequest{Title: "t", Description: "d"}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := svc.Create(context.Background(), "admin-1", tc.req); !errors.Is(err, common.ErrValidation) {
				t.Fatalf("expected ErrValidation, got %v", err)
			}
		})
	}
}

func TestProjectUpdate_PartialAndSlugRefresh(t *testing.T) {
	repo := newFakeProjectRepo()
	svc := NewProjectService(repo)

	project, err := svc.Create(context.Background(), "admin-1", CreateProjectRequest{
		Title:        "Old Title",
		Description:  "old description",
		Technologies: []string{"Go"},
		Github:       "https://github.com/x/old",
	})
	if err != nil {
		t.Fatalf("Create error: %v", err)
	}

	newTitle := "Brand New Title"
	updated, err := svc.Update(context.Background(), project.ID, UpdateProjectRequest{Title: &newTitle})
	if err != nil {
		t.Fatalf("Update error: %v", err)
	}
	if updated.Title != newTitle {
		t.Fatalf("title not updated: %q", updated.Title)
	}
	if updated.Slug != "brand-new-title" {
		t.Fatalf("slug must follow the title: %q", updated.Slug)
	}
	if updated.Description != "old description" || updated.Github != "https://github.com/x/old" {
		t.Fatalf("absent fields must stay untouched: %+v", updated)
	}
}

func TestProjectUpdate_ExplicitZeroValues(t *testing.T) {
	repo := newFakeProjectRepo()
	svc := NewProjectService(repo)

	project, err := svc.Create(context.Background(), "admin-1", CreateProjectRequest{
		Title:        "T",
		Description:  "d",
		Technologies: []string{"Go"},
		Featured:     true,
		Order:        5,
	})
	if err != nil {
		t.Fatalf("Create error: %v", err)
	}

	featured := false
	order := 0
	updated, err := svc.Update(context.Background(), project.ID, UpdateProjectRequest{
		Featured: &featured,
		Order:    &order,
	})
	if err != nil {
		t.Fatalf("Update error: %v", err)
	}
	if updated.Featured || updated.Order != 0 {
		t.Fatalf("explicit zero values must be applied: %+v", updated)
	}
}

func TestProjectGetByID_NotFound(t *testing.T) {
	svc := NewProjectService(newFakeProjectRepo())

	_, err := svc.GetByID(context.Background(), "missing")
	if !errors.Is(err, common.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	if err.Error() != "Project not found" {
		t.Fatalf("unexpected message: %q", err.Error())
	}
}

func TestProjectDelete(t *testing.T) {
	repo := newFakeProjectRepo()
	svc := NewProjectService(repo)

	project, err := svc.Create(context.Background(), "admin-1", CreateProjectRequest{
		Title: "T", Description: "d", Technologies: []string{"Go"},
	})
	if err != nil {
		t.Fatalf("Create error: %v", err)
	}

	if err := svc.Delete(context.Background(), project.ID); err != nil {
		t.Fatalf("Delete error: %v", err)
	}
	if err := svc.Delete(context.Background(), project.ID); !errors.Is(err, common.ErrNotFound) {
		t.Fatalf("second delete must report ErrNotFound, got %v", err)
	}
}
