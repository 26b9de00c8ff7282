package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"portfolio_api/internal/common"
	"portfolio_api/internal/domain/model"
)

type ProjectRepository interface {
	Create(ctx context.Context, project *model.Project) error
	FindByID(ctx context.Context, id string) (*model.Project, error)
	List(ctx context.Context) ([]model.Project, error)
	Update(ctx context.Context, project *model.Project) error
	Delete(ctx context.Context, id string) error
}

type pgProjectRepository struct {
	db *sql.DB
}

func NewPgProjectRepository(db *sql.DB) ProjectRepository {
	return &pgProjectRepository{db: db}
}

const projectColumns = `id, title, slug, description, technologies, image, github, live, featured, sort_order, created_by, created_at, updated_at`

func scanProject(row interface{ Scan(...interface{}) error }) (*model.Project, error) {
	p := &model.Project{}
	var techJSON []byte
	err := row.Scan(
		&p.ID, &p.Title, &p.Slug, &p.Description, &techJSON, &p.Image, &p.Github,
		&p.Live, &p.Featured, &p.Order, &p.CreatedBy, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	if len(techJSON) > 0 {
		if err := json.Unmarshal(techJSON, &p.Technologies); err != nil {
			return nil, fmt.Errorf("scanProject: decode technologies: %w", err)
		}
	}
	return p, nil
}

func (r *pgProjectRepository) Create(ctx context.Context, project *model.Project) error {
	techJSON, err := json.Marshal(project.Technologies)
	if err != nil {
		return fmt.Errorf("pgProjectRepository.Create: encode technologies: %w", err)
	}
	query := `INSERT INTO projects (id, title, slug, description, technologies, image, github, live, featured, sort_order, created_by)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`
	_, err = r.db.ExecContext(ctx, query,
		project.ID, project.Title, project.Slug, project.Description, techJSON,
		project.Image, project.Github, project.Live, project.Featured, project.Order, project.CreatedBy)
	if err != nil {
		return fmt.Errorf("pgProjectRepository.Create: %w", err)
	}
	return nil
}

func (r *pgProjectRepository) FindByID(ctx context.Context, id string) (*model.Project, error) {
	query := `SELECT ` + projectColumns + ` FROM projects WHERE id = $1`
	project, err := scanProject(r.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrNotFound
		}
		return nil, fmt.Errorf("pgProjectRepository.FindByID: %w", err)
	}
	return project, nil
}

// List returns all projects in display order: explicit sort order first,
// newest first within the same order.
func (r *pgProjectRepository) List(ctx context.Context) ([]model.Project, error) {
	query := `SELECT ` + projectColumns + ` FROM projects ORDER BY sort_order ASC, created_at DESC`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("pgProjectRepository.List: %w", err)
	}
	defer rows.Close()

	projects := []model.Project{}
	for rows.Next() {
		project, err := scanProject(rows)
		if err != nil {
			return nil, fmt.Errorf("pgProjectRepository.List: %w", err)
		}
		projects = append(projects, *project)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("pgProjectRepository.List: %w", err)
	}
	return projects, nil
}

func (r *pgProjectRepository) Update(ctx context.Context, project *model.Project) error {
	techJSON, err := json.Marshal(project.Technologies)
	if err != nil {
		return fmt.Errorf("pgProjectRepository.Update: encode technologies: %w", err)
	}
	query := `UPDATE projects
	          SET title = $2, slug = $3, description = $4, technologies = $5, image = $6,
	              github = $7, live = $8, featured = $9, sort_order = $10, updated_at = NOW()
	          WHERE id = $1`
	res, err := r.db.ExecContext(ctx, query,
		project.ID, project.Title, project.Slug, project.Description, techJSON,
		project.Image, project.Github, project.Live, project.Featured, project.Order)
	if err != nil {
		return fmt.Errorf("pgProjectRepository.Update: %w", err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return common.ErrNotFound
	}
	return nil
}

func (r *pgProjectRepository) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM projects WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("pgProjectRepository.Delete: %w", err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return common.ErrNotFound
	}
	return nil
}
