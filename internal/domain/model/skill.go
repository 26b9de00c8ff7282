package model

import "time"

const (
	SkillCategoryFrontend = "Frontend"
	SkillCategoryBackend  = "Backend"
	SkillCategoryDatabase = "Database"
	SkillCategoryTools    = "Tools"
	SkillCategoryOther    = "Other"

	SkillLevelBeginner     = "Beginner"
	SkillLevelIntermediate = "Intermediate"
	SkillLevelAdvanced     = "Advanced"
	SkillLevelExpert       = "Expert"
)

type Skill struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Category  string    `json:"category"`
	Level     string    `json:"level"`
	Icon      string    `json:"icon"`
	Order     int       `json:"order"`
	CreatedBy string    `json:"createdBy"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func IsValidSkillCategory(c string) bool {
	switch c {
	case SkillCategoryFrontend, SkillCategoryBackend, SkillCategoryDatabase, SkillCategoryTools, SkillCategoryOther:
		return true
	}
	return false
}

func IsValidSkillLevel(l string) bool {
	switch l {
	case SkillLevelBeginner, SkillLevelIntermediate, SkillLevelAdvanced, SkillLevelExpert:
		return true
	}
	return false
}
