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

type ProjectHandler struct {
	projectService *service.ProjectService
	authenticate   func(http.Handler) http.Handler
}

func NewProjectHandler(projectService *service.ProjectService, authenticate func(http.Handler) http.Handler) *ProjectHandler {
	return &ProjectHandler{projectService: projectService, authenticate: authenticate}
}

func (h *ProjectHandler) RegisterRoutes(r chi.Router) {
	r.Get("/", h.listProjects)
	r.Get("/{projectID}", h.getProject)

	r.Group(func(adminRouter chi.Router) {
		adminRouter.Use(h.authenticate)
		adminRouter.Use(middleware.AdminOnly)
		adminRouter.Post("/", h.createProject)
		adminRouter.Put("/{projectID}", h.updateProject)
		adminRouter.Delete("/{projectID}", h.deleteProject)
	})
}

type projectListResponse struct {
	Success  bool            `json:"success"`
	Count    int             `json:"count"`
	Projects []model.Project `json:"projects"`
}

type projectResponse struct {
	Success bool          `json:"success"`
	Message string        `json:"message,omitempty"`
	Project model.Project `json:"project"`
}

func (h *ProjectHandler) listProjects(w http.ResponseWriter, r *http.Request) {
	projects, err := h.projectService.List(r.Context())
	if err != nil {
		respondError(w, err)
		return
	}
	common.RespondWithJSON(w, http.StatusOK, projectListResponse{
		Success:  true,
		Count:    len(projects),
		Projects: projects,
	})
}

func (h *ProjectHandler) getProject(w http.ResponseWriter, r *http.Request) {
	project, err := h.projectService.GetByID(r.Context(), chi.URLParam(r, "projectID"))
	if err != nil {
		respondError(w, err)
		return
	}
	common.RespondWithJSON(w, http.StatusOK, projectResponse{Success: true, Project: *project})
}

func (h *ProjectHandler) createProject(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.UserFromContext(r.Context())
	if !ok {
		common.RespondWithError(w, http.StatusUnauthorized, "Access denied. No token provided.")
		return
	}

	var req service.CreateProjectRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		common.RespondWithError(w, http.StatusBadRequest, "Invalid request payload: "+err.Error())
		return
	}

	project, err := h.projectService.Create(r.Context(), user.ID, req)
	if err != nil {
		respondError(w, err)
		return
	}
	common.RespondWithJSON(w, http.StatusCreated, projectResponse{
		Success: true,
		Message: "Project created successfully",
		Project: *project,
	})
}

func (h *ProjectHandler) updateProject(w http.ResponseWriter, r *http.Request) {
	var req service.UpdateProjectRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		common.RespondWithError(w, http.StatusBadRequest, "Invalid request payload: "+err.Error())
		return
	}

	project, err := h.projectService.Update(r.Context(), chi.URLParam(r, "projectID"), req)
	if err != nil {
		respondError(w, err)
		return
	}
	common.RespondWithJSON(w, http.StatusOK, projectResponse{
		Success: true,
		Message: "Project updated successfully",
		Project: *project,
	})
}

func (h *ProjectHandler) deleteProject(w http.ResponseWriter, r *http.Request) {
	if err := h.projectService.Delete(r.Context(), chi.URLParam(r, "projectID")); err != nil {
		respondError(w, err)
		return
	}
	common.RespondWithJSON(w, http.StatusOK, messageResponse{
		Success: true,
		Message: "Project deleted successfully",
	})
}
