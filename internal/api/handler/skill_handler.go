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

type SkillHandler struct {
	skillService *service.SkillService
	authenticate func(http.Handler) http.Handler
}

func NewSkillHandler(skillService *service.SkillService, authenticate func(http.Handler) http.Handler) *SkillHandler {
	return &SkillHandler{skillService: skillService, authenticate: authenticate}
}

func (h *SkillHandler) RegisterRoutes(r chi.Router) {
	r.Get("/", h.listSkills)
	r.Get("/{skillID}", h.getSkill)

	r.Group(func(adminRouter chi.Router) {
		adminRouter.Use(h.authenticate)
		adminRouter.Use(middleware.AdminOnly)
		adminRouter.Post("/", h.createSkill)
		adminRouter.Put("/{skillID}", h.updateSkill)
		adminRouter.Delete("/{skillID}", h.deleteSkill)
	})
}

type skillListResponse struct {
	Success bool          `json:"success"`
	Count   int           `json:"count"`
	Skills  []model.Skill `json:"skills"`
}

type skillResponse struct {
	Success bool        `json:"success"`
	Message string      `json:"message,omitempty"`
	Skill   model.Skill `json:"skill"`
}

func (h *SkillHandler) listSkills(w http.ResponseWriter, r *http.Request) {
	skills, err := h.skillService.List(r.Context())
	if err != nil {
		respondError(w, err)
		return
	}
	common.RespondWithJSON(w, http.StatusOK, skillListResponse{
		Success: true,
		Count:   len(skills),
		Skills:  skills,
	})
}

func (h *SkillHandler) getSkill(w http.ResponseWriter, r *http.Request) {
	skill, err := h.skillService.GetByID(r.Context(), chi.URLParam(r, "skillID"))
	if err != nil {
		respondError(w, err)
		return
	}
	common.RespondWithJSON(w, http.StatusOK, skillResponse{Success: true, Skill: *skill})
}

func (h *SkillHandler) createSkill(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.UserFromContext(r.Context())
	if !ok {
		common.RespondWithError(w, http.StatusUnauthorized, "Access denied. No token provided.")
		return
	}

	var req service.CreateSkillRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		common.RespondWithError(w, http.StatusBadRequest, "Invalid request payload: "+err.Error())
		return
	}

	skill, err := h.skillService.Create(r.Context(), user.ID, req)
	if err != nil {
		respondError(w, err)
		return
	}
	common.RespondWithJSON(w, http.StatusCreated, skillResponse{
		Success: true,
		Message: "Skill added successfully",
		Skill:   *skill,
	})
}

func (h *SkillHandler) updateSkill(w http.ResponseWriter, r *http.Request) {
	var req service.UpdateSkillRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		common.RespondWithError(w, http.StatusBadRequest, "Invalid request payload: "+err.Error())
		return
	}

	skill, err := h.skillService.Update(r.Context(), chi.URLParam(r, "skillID"), req)
	if err != nil {
		respondError(w, err)
		return
	}
	common.RespondWithJSON(w, http.StatusOK, skillResponse{
		Success: true,
		Message: "Skill updated successfully",
		Skill:   *skill,
	})
}

func (h *SkillHandler) deleteSkill(w http.ResponseWriter, r *http.Request) {
	if err := h.skillService.Delete(r.Context(), chi.URLParam(r, "skillID")); err != nil {
		respondError(w, err)
		return
	}
	common.RespondWithJSON(w, http.StatusOK, messageResponse{
		Success: true,
		Message: "Skill deleted successfully",
	})
}
