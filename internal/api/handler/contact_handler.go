package handler

import (
	"encoding/json"
	"net/http"

	"portfolio_api/internal/api/middleware"
	"portfolio_api/internal/app/service"
	"portfolio_api/internal/common"
	"portfolio_api/internal/domain/model"

	"github.com/go-chi/chi/v5"
)

type ContactHandler struct {
	contactService *service.ContactService
	authenticate   func(http.Handler) http.Handler
}

func NewContactHandler(contactService *service.ContactService, authenticate func(http.Handler) http.Handler) *ContactHandler {
	return &ContactHandler{contactService: contactService, authenticate: authenticate}
}

func (h *ContactHandler) RegisterRoutes(r chi.Router) {
	r.Post("/", h.submit)

	// The inbox is private to the admin.
	r.Group(func(adminRouter chi.Router) {
		adminRouter.Use(h.authenticate)
		adminRouter.Use(middleware.AdminOnly)
		adminRouter.Get("/", h.listMessages)
	})
}

func (h *ContactHandler) submit(w http.ResponseWriter, r *http.Request) {
	var req service.SubmitContactRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		common.RespondWithError(w, http.StatusBadRequest, "Invalid request payload: "+err.Error())
		return
	}

	msg, err := h.contactService.Submit(r.Context(), req)
	if err != nil {
		respondError(w, err)
		return
	}

	type submitResponse struct {
		Success bool   `json:"success"`
		Message string `json:"message"`
		Data    struct {
			ID    string `json:"id"`
			Name  string `json:"name"`
			Email string `json:"email"`
		} `json:"data"`
	}
	resp := submitResponse{
		Success: true,
		Message: "Message sent successfully! I will get back to you soon.",
	}
	resp.Data.ID = msg.ID
	resp.Data.Name = msg.Name
	resp.Data.Email = msg.Email
	common.RespondWithJSON(w, http.StatusCreated, resp)
}

func (h *ContactHandler) listMessages(w http.ResponseWriter, r *http.Request) {
	messages, err := h.contactService.List(r.Context())
	if err != nil {
		respondError(w, err)
		return
	}

	type listResponse struct {
		Success  bool                   `json:"success"`
		Count    int                    `json:"count"`
		Messages []model.ContactMessage `json:"messages"`
	}
	common.RespondWithJSON(w, http.StatusOK, listResponse{
		Success:  true,
		Count:    len(messages),
		Messages: messages,
	})
}
