package service

import (
	"context"
	"errors"
	"fmt"

	"portfolio_api/internal/common"
	"portfolio_api/internal/domain/model"
	"portfolio_api/internal/domain/repository"

	"github.com/google/uuid"
)

type SkillService struct {
	skillRepo repository.SkillRepository
}

func NewSkillService(skillRepo repository.SkillRepository) *SkillService {
	return &SkillService{skillRepo: skillRepo}
}

type CreateSkillRequest struct {
	Name     string `json:"name"`
	Category string `json:"category"`
	Level    string `json:"level"`
	Icon     string `json:"icon"`
	Order    int    `json:"order"`
}

type UpdateSkillRequest struct {
	Name     *string `json:"name"`
	Category *string `json:"category"`
	Level    *string `json:"level"`
	Icon     *string `json:"icon"`
	Order    *int    `json:"order"`
}

func (s *SkillService) Create(ctx context.Context, userID string, req CreateSkillRequest) (*model.Skill, error) {
	if req.Name == "" {
		return nil, common.NewError(common.ErrValidation, "Skill name is required")
	}

	// Absent enum fields get the schema defaults; present but unknown values
	// are rejected.
	category := req.Category
	if category == "" {
		category = model.SkillCategoryOther
	} else if !model.IsValidSkillCategory(category) {
		return nil, common.NewError(common.ErrValidation, "Invalid skill category")
	}
	level := req.Level
	if level == "" {
		level = model.SkillLevelIntermediate
	} else if !model.IsValidSkillLevel(level) {
		return nil, common.NewError(common.ErrValidation, "Invalid skill level")
	}

	skill := &model.Skill{
		ID:        uuid.NewString(),
		Name:      req.Name,
		Category:  category,
		Level:     level,
		Icon:      req.Icon,
		Order:     req.Order,
		CreatedBy: userID,
	}

	if err := s.skillRepo.Create(ctx, skill); err != nil {
		if errors.Is(err, common.ErrConflict) {
			return nil, common.NewError(common.ErrBadRequest, "Skill already exists")
		}
		return nil, fmt.Errorf("failed to create skill: %w", err)
	}
	return skill, nil
}

func (s *SkillService) List(ctx context.Context) ([]model.Skill, error) {
	skills, err := s.skillRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list skills: %w", err)
	}
	return skills, nil
}

func (s *SkillService) GetByID(ctx context.Context, id string) (*model.Skill, error) {
	skill, err := s.skillRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return nil, common.NewError(common.ErrNotFound, "Skill not found")
		}
		return nil, fmt.Errorf("failed to fetch skill: %w", err)
	}
	return skill, nil
}

func (s *SkillService) Update(ctx context.Context, id string, req UpdateSkillRequest) (*model.Skill, error) {
	skill, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil && *req.Name != "" {
		skill.Name = *req.Name
	}
	if req.Category != nil {
		if !model.IsValidSkillCategory(*req.Category) {
			return nil, common.NewError(common.ErrValidation, "Invalid skill category")
		}
		skill.Category = *req.Category
	}
	if req.Level != nil {
		if !model.IsValidSkillLevel(*req.Level) {
			return nil, common.NewError(common.ErrValidation, "Invalid skill level")
		}
		skill.Level = *req.Level
	}
	if req.Icon != nil {
		skill.Icon = *req.Icon
	}
	if req.Order != nil {
		skill.Order = *req.Order
	}

	if err := s.skillRepo.Update(ctx, skill); err != nil {
		if errors.Is(err, common.ErrConflict) {
			return nil, common.NewError(common.ErrBadRequest, "Skill already exists")
		}
		return nil, fmt.Errorf("failed to update skill: %w", err)
	}
	return skill, nil
}

func (s *SkillService) Delete(ctx context.Context, id string) error {
	if _, err := s.GetByID(ctx, id); err != nil {
		return err
	}
	if err := s.skillRepo.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete skill: %w", err)
	}
	return nil
}
