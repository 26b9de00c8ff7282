package service

import (
	"context"
	"errors"
	"testing"

	"portfolio_api/internal/common"
	"portfolio_api/internal/domain/model"
)

type fakeContactRepo struct {
	messages  []*model.ContactMessage
	createErr error
}

func (r *fakeContactRepo) Create(ctx context.Context, msg *model.ContactMessage) error {
	if r.createErr != nil {
		return r.createErr
	}
	r.messages = append(r.messages, msg)
	return nil
}

func (r *fakeContactRepo) FindByID(ctx context.Context, id string) (*model.ContactMessage, error) {
	for _, m := range r.messages {
		if m.ID == id {
			cp := *m
			return &cp, nil
		}
	}
	return nil, common.ErrNotFound
}

func (r *fakeContactRepo) List(ctx context.Context) ([]model.ContactMessage, error) {
	out := make([]model.ContactMessage, 0, len(r.messages))
	for i := len(r.messages) - 1; i >= 0; i-- {
		out = append(out, *r.messages[i])
	}
	return out, nil
}

// The nil Redis client covers deployments without a queue: submissions must
// still be stored.
func TestContactSubmit_WithoutQueue(t *testing.T) {
	repo := &fakeContactRepo{}
	svc := NewContactService(repo, nil, "contact_mail_queue")

	msg, err := svc.Submit(context.Background(), SubmitContactRequest{
		Name:    "Visitor",
		Email:   "visitor@example.com",
		Message: "Hello there",
	})
	if err != nil {
		t.Fatalf("Submit error: %v", err)
	}
	if msg.ID == "" {
		t.Fatal("expected generated ID")
	}
	if msg.Status != model.MessageStatusUnread {
		t.Fatalf("new messages must start unread, got %q", msg.Status)
	}
	if len(repo.messages) != 1 {
		t.Fatalf("expected 1 stored message, got %d", len(repo.messages))
	}
}

func TestContactSubmit_MissingFields(t *testing.T) {
	svc := NewContactService(&fakeContactRepo{}, nil, "q")

	for _, req := range []SubmitContactRequest{
		{},
		{Name: "n", Email: "a@b.com"},
		{Name: "n", Message: "m"},
		{Email: "a@b.com", Message: "m"},
	} {
		_, err := svc.Submit(context.Background(), req)
		if !errors.Is(err, common.ErrBadRequest) {
			t.Fatalf("expected ErrBadRequest for %+v, got %v", req, err)
		}
		if err.Error() != "Please provide all required fields" {
			t.Fatalf("unexpected message: %q", err.Error())
		}
	}
}

func TestContactSubmit_EmailFormat(t *testing.T) {
	svc := NewContactService(&fakeContactRepo{}, nil, "q")

	invalid := []string{"plainaddress", "@no-local.com", "no-at.com", "a@b", "a b@c.com"}
	for _, email := range invalid {
		_, err := svc.Submit(context.Background(), SubmitContactRequest{
			Name: "n", Email: email, Message: "m",
		})
		if !errors.Is(err, common.ErrBadRequest) {
			t.Fatalf("expected ErrBadRequest for %q, got %v", email, err)
		}
		if err.Error() != "Please provide a valid email address" {
			t.Fatalf("unexpected message for %q: %q", email, err.Error())
		}
	}

	valid := []string{"a@b.com", "first.last@sub.domain.org", "tag-user@my-host.io"}
	for _, email := range valid {
		if _, err := svc.Submit(context.Background(), SubmitContactRequest{
			Name: "n", Email: email, Message: "m",
		}); err != nil {
			t.Fatalf("expected success for %q, got %v", email, err)
		}
	}
}

func TestContactSubmit_StorageFailure(t *testing.T) {
	repo := &fakeContactRepo{createErr: errors.New("disk full")}
	svc := NewContactService(repo, nil, "q")

	if _, err := svc.Submit(context.Background(), SubmitContactRequest{
		Name: "n", Email: "a@b.com", Message: "m",
	}); err == nil {
		t.Fatal("expected error when storage fails")
	}
}

func TestContactList_NewestFirst(t *testing.T) {
	repo := &fakeContactRepo{}
	svc := NewContactService(repo, nil, "q")

	for _, name := range []string{"first", "second", "third"} {
		if _, err := svc.Submit(context.Background(), SubmitContactRequest{
			Name: name, Email: "a@b.com", Message: "m",
		}); err != nil {
			t.Fatalf("Submit error: %v", err)
		}
	}

	messages, err := svc.List(context.Background())
	if err != nil {
		t.Fatalf("List error: %v", err)
	}
	if len(messages) != 3 {
		t.Fatalf("expected 3 messages, got %d", len(messages))
	}
	if messages[0].Name != "third" || messages[2].Name != "first" {
		t.Fatalf("expected newest first, got %q..%q", messages[0].Name, messages[2].Name)
	}
}
