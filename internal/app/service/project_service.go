package service

import (
	"context"
	"fmt"

	"portfolio_api/internal/common"
	"portfolio_api/internal/domain/model"
	"portfolio_api/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/gosimple/slug"
)

type ProjectService struct {
	projectRepo repository.ProjectRepository
}

func NewProjectService(projectRepo repository.ProjectRepository) *ProjectService {
	return &ProjectService{projectRepo: projectRepo}
}

type CreateProjectRequest struct {
	Title        string   `json:"title"`
	Description  string   `json:"description"`
	Technologies []string `json:"technologies"`
	Image        string   `json:"image"`
	Github       string   `json:"github"`
	Live         string   `json:"live"`
	Featured     bool     `json:"featured"`
	Order        int      `json:"order"`
}

// UpdateProjectRequest uses pointers so absent fields are distinguishable
// from zero values: only present fields overwrite the stored project.
type UpdateProjectRequest struct {
	Title        *string   `json:"title"`
	Description  *string   `json:"description"`
	Technologies *[]string `json:"technologies"`
	Image        *string   `json:"image"`
	Github       *string   `json:"github"`
	Live         *string   `json:"live"`
	Featured     *bool     `json:"featured"`
	Order        *int      `json:"order"`
}

func (s *ProjectService) Create(ctx context.Context, userID string, req CreateProjectRequest) (*model.Project, error) {
	if req.Title == "" {
		return nil, common.NewError(common.ErrValidation, "Project title is required")
	}
	if req.Description == "" {
		return nil, common.NewError(common.ErrValidation, "Project description is required")
	}
	if len(req.Technologies) == 0 {
		return nil, common.NewError(common.ErrValidation, "At least one technology must be specified")
	}

	image := req.Image
	if image == "" {
		image = model.DefaultProjectImage
	}

	project := &model.Project{
		ID:           uuid.NewString(),
		Title:        req.Title,
		Slug:         slug.Make(req.Title),
		Description:  req.Description,
		Technologies: req.Technologies,
		Image:        image,
		Github:       req.Github,
		Live:         req.Live,
		Featured:     req.Featured,
		Order:        req.Order,
		CreatedBy:    userID,
	}

	if err := s.projectRepo.Create(ctx, project); err != nil {
		return nil, fmt.Errorf("failed to create project: %w", err)
	}
	return project, nil
}

func (s *ProjectService) List(ctx context.Context) ([]model.Project, error) {
	projects, err := s.projectRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list projects: %w", err)
	}
	return projects, nil
}

func (s *ProjectService) GetByID(ctx context.Context, id string) (*model.Project, error) {
	project, err := s.projectRepo.FindByID(ctx, id)
	if err != nil {
		if err == common.ErrNotFound {
			return nil, common.NewError(common.ErrNotFound, "Project not found")
		}
		return nil, fmt.Errorf("failed to fetch project: %w", err)
	}
	return project, nil
}

func (s *ProjectService) Update(ctx context.Context, id string, req UpdateProjectRequest) (*model.Project, error) {
	project, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Title != nil && *req.Title != "" {
		project.Title = *req.Title
		project.Slug = slug.Make(*req.Title)
	}
	if req.Description != nil {
		project.Description = *req.Description
	}
	if req.Technologies != nil {
		project.Technologies = *req.Technologies
	}
	if req.Image != nil {
		project.Image = *req.Image
	}
	if req.Github != nil {
		project.Github = *req.Github
	}
	if req.Live != nil {
		project.Live = *req.Live
	}
	if req.Featured != nil {
		project.Featured = *req.Featured
	}
	if req.Order != nil {
		project.Order = *req.Order
	}

	if err := s.projectRepo.Update(ctx, project); err != nil {
		return nil, fmt.Errorf("failed to update project: %w", err)
	}
	return project, nil
}

func (s *ProjectService) Delete(ctx context.Context, id string) error {
	if _, err := s.GetByID(ctx, id); err != nil {
		return err
	}
	if err := s.projectRepo.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete project: %w", err)
	}
	return nil
}
