package handler

import (
	"net/http"
	"time"

	"portfolio_api/internal/common"
)

// MetaHandler serves the unauthenticated index and health endpoints.
type MetaHandler struct{}

func NewMetaHandler() *MetaHandler {
	return &MetaHandler{}
}

func (h *MetaHandler) Root(w http.ResponseWriter, r *http.Request) {
	common.RespondWithJSON(w, http.StatusOK, map[string]interface{}{
		"success":       true,
		"message":       "Portfolio Backend API",
		"version":       "1.0.0",
		"documentation": "/api",
		"status":        "Server is running",
		"timestamp":     time.Now().Format(time.RFC3339),
	})
}

func (h *MetaHandler) Health(w http.ResponseWriter, r *http.Request) {
	common.RespondWithJSON(w, http.StatusOK, map[string]interface{}{
		"success":   true,
		"message":   "API is running",
		"timestamp": time.Now().Format(time.RFC3339),
		"version":   "1.0.0",
	})
}

func (h *MetaHandler) Index(w http.ResponseWriter, r *http.Request) {
	common.RespondWithJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"message": "Portfolio API",
		"version": "1.0.0",
		"endpoints": map[string]interface{}{
			"auth": map[string]string{
				"login":          "POST /api/auth/login",
				"logout":         "POST /api/auth/logout",
				"me":             "GET /api/auth/me",
				"update":         "PUT /api/auth/update",
				"changePassword": "POST /api/auth/change-password",
				"adminProfile":   "GET /api/auth/admin-profile",
			},
			"projects": map[string]string{
				"getAll": "GET /api/projects",
				"getOne": "GET /api/projects/{id}",
				"create": "POST /api/projects (Admin)",
				"update": "PUT /api/projects/{id} (Admin)",
				"delete": "DELETE /api/projects/{id} (Admin)",
			},
			"skills": map[string]string{
				"getAll": "GET /api/skills",
				"getOne": "GET /api/skills/{id}",
				"create": "POST /api/skills (Admin)",
				"update": "PUT /api/skills/{id} (Admin)",
				"delete": "DELETE /api/skills/{id} (Admin)",
			},
			"contact": map[string]string{
				"submit": "POST /api/contact",
				"getAll": "GET /api/contact (Admin)",
			},
		},
	})
}
