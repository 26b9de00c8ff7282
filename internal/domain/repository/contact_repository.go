package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"portfolio_api/internal/common"
	"portfolio_api/internal/domain/model"
)

// ContactRepository persists contact form submissions. The collection is
// append-only: messages are never updated or deleted through the API.
type ContactRepository interface {
	Create(ctx context.Context, msg *model.ContactMessage) error
	FindByID(ctx context.Context, id string) (*model.ContactMessage, error)
	List(ctx context.Context) ([]model.ContactMessage, error)
}

type pgContactRepository struct {
	db *sql.DB
}

func NewPgContactRepository(db *sql.DB) ContactRepository {
	return &pgContactRepository{db: db}
}

func (r *pgContactRepository) Create(ctx context.Context, msg *model.ContactMessage) error {
	query := `INSERT INTO contact_messages (id, name, email, message, status)
	          VALUES ($1, $2, $3, $4, $5)`
	_, err := r.db.ExecContext(ctx, query, msg.ID, msg.Name, msg.Email, msg.Message, msg.Status)
	if err != nil {
		return fmt.Errorf("pgContactRepository.Create: %w", err)
	}
	return nil
}

func (r *pgContactRepository) FindByID(ctx context.Context, id string) (*model.ContactMessage, error) {
	query := `SELECT id, name, email, message, status, created_at
	          FROM contact_messages WHERE id = $1`
	m := &model.ContactMessage{}
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&m.ID, &m.Name, &m.Email, &m.Message, &m.Status, &m.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrNotFound
		}
		return nil, fmt.Errorf("pgContactRepository.FindByID: %w", err)
	}
	return m, nil
}

func (r *pgContactRepository) List(ctx context.Context) ([]model.ContactMessage, error) {
	query := `SELECT id, name, email, message, status, created_at
	          FROM contact_messages ORDER BY created_at DESC`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("pgContactRepository.List: %w", err)
	}
	defer rows.Close()

	messages := []model.ContactMessage{}
	for rows.Next() {
		var m model.ContactMessage
		if err := rows.Scan(&m.ID, &m.Name, &m.Email, &m.Message, &m.Status, &m.CreatedAt); err != nil {
			return nil, fmt.Errorf("pgContactRepository.List: %w", err)
		}
		messages = append(messages, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("pgContactRepository.List: %w", err)
	}
	return messages, nil
}
