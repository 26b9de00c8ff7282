package service

import (
	"context"
	"fmt"
	"log"
	"regexp"
	"time"

	"portfolio_api/internal/common"
	"portfolio_api/internal/domain/model"
	"portfolio_api/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

var emailPattern = regexp.MustCompile(`^\w+([.-]?\w+)*@\w+([.-]?\w+)*(\.\w{2,3})+$`)

type ContactService struct {
	contactRepo repository.ContactRepository
	rdb         *redis.Client
	queueName   string
}

func NewContactService(contactRepo repository.ContactRepository, rdb *redis.Client, queueName string) *ContactService {
	return &ContactService{contactRepo: contactRepo, rdb: rdb, queueName: queueName}
}

type SubmitContactRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Message string `json:"message"`
}

// Submit persists the message and hands its ID to the mail queue. The
// notification email is delivered asynchronously; a queue failure is logged
// but does not fail the submission, since the message itself is already
// stored.
func (s *ContactService) Submit(ctx context.Context, req SubmitContactRequest) (*model.ContactMessage, error) {
	if req.Name == "" || req.Email == "" || req.Message == "" {
		return nil, common.NewError(common.ErrBadRequest, "Please provide all required fields")
	}
	if !emailPattern.MatchString(req.Email) {
		return nil, common.NewError(common.ErrBadRequest, "Please provide a valid email address")
	}

	msg := &model.ContactMessage{
		ID:        uuid.NewString(),
		Name:      req.Name,
		Email:     req.Email,
		Message:   req.Message,
		Status:    model.MessageStatusUnread,
		CreatedAt: time.Now(),
	}

	if err := s.contactRepo.Create(ctx, msg); err != nil {
		return nil, fmt.Errorf("failed to store contact message: %w", err)
	}

	if s.rdb != nil {
		if err := s.rdb.RPush(ctx, s.queueName, msg.ID).Err(); err != nil {
			log.Printf("ERROR: Failed to enqueue mail job for message %s: %v", msg.ID, err)
		}
	}

	return msg, nil
}

func (s *ContactService) List(ctx context.Context) ([]model.ContactMessage, error) {
	messages, err := s.contactRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list contact messages: %w", err)
	}
	return messages, nil
}
