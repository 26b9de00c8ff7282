package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"portfolio_api/internal/common"
	"portfolio_api/internal/domain/model"

	"github.com/jackc/pgx/v5/pgconn"
)

type SkillRepository interface {
	Create(ctx context.Context, skill *model.Skill) error
	FindByID(ctx context.Context, id string) (*model.Skill, error)
	List(ctx context.Context) ([]model.Skill, error)
	Update(ctx context.Context, skill *model.Skill) error
	Delete(ctx context.Context, id string) error
}

type pgSkillRepository struct {
	db *sql.DB
}

func NewPgSkillRepository(db *sql.DB) SkillRepository {
	return &pgSkillRepository{db: db}
}

const skillColumns = `id, name, category, level, icon, sort_order, created_by, created_at, updated_at`

func scanSkill(row interface{ Scan(...interface{}) error }) (*model.Skill, error) {
	s := &model.Skill{}
	err := row.Scan(
		&s.ID, &s.Name, &s.Category, &s.Level, &s.Icon, &s.Order, &s.CreatedBy,
		&s.CreatedAt, &s.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return s, nil
}

func (r *pgSkillRepository) Create(ctx context.Context, skill *model.Skill) error {
	query := `INSERT INTO skills (id, name, category, level, icon, sort_order, created_by)
	          VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.db.ExecContext(ctx, query,
		skill.ID, skill.Name, skill.Category, skill.Level, skill.Icon, skill.Order, skill.CreatedBy)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" { // Unique constraint violation
			return fmt.Errorf("skill with given name already exists: %w", common.ErrConflict)
		}
		return fmt.Errorf("pgSkillRepository.Create: %w", err)
	}
	return nil
}

func (r *pgSkillRepository) FindByID(ctx context.Context, id string) (*model.Skill, error) {
	query := `SELECT ` + skillColumns + ` FROM skills WHERE id = $1`
	skill, err := scanSkill(r.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrNotFound
		}
		return nil, fmt.Errorf("pgSkillRepository.FindByID: %w", err)
	}
	return skill, nil
}

// List returns all skills grouped by category, then display order.
func (r *pgSkillRepository) List(ctx context.Context) ([]model.Skill, error) {
	query := `SELECT ` + skillColumns + ` FROM skills ORDER BY category ASC, sort_order ASC`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("pgSkillRepository.List: %w", err)
	}
	defer rows.Close()

	skills := []model.Skill{}
	for rows.Next() {
		skill, err := scanSkill(rows)
		if err != nil {
			return nil, fmt.Errorf("pgSkillRepository.List: %w", err)
		}
		skills = append(skills, *skill)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("pgSkillRepository.List: %w", err)
	}
	return skills, nil
}

func (r *pgSkillRepository) Update(ctx context.Context, skill *model.Skill) error {
	query := `UPDATE skills
	          SET name = $2, category = $3, level = $4, icon = $5, sort_order = $6, updated_at = NOW()
	          WHERE id = $1`
	res, err := r.db.ExecContext(ctx, query,
		skill.ID, skill.Name, skill.Category, skill.Level, skill.Icon, skill.Order)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return fmt.Errorf("skill with given name already exists: %w", common.ErrConflict)
		}
		return fmt.Errorf("pgSkillRepository.Update: %w", err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return common.ErrNotFound
	}
	return nil
}

func (r *pgSkillRepository) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM skills WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("pgSkillRepository.Delete: %w", err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return common.ErrNotFound
	}
	return nil
}
