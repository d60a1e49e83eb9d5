package api

import (
	"net/http"

	"github.com/phrazzld/folio-api/internal/api/shared"
	"github.com/phrazzld/folio-api/internal/generation"
	"github.com/phrazzld/folio-api/internal/platform/logger"
	"github.com/phrazzld/folio-api/internal/service"
)

// AIHandler handles the AI content routes.
type AIHandler struct {
	enhanceService service.EnhanceService
}

// NewAIHandler creates a new AIHandler
func NewAIHandler(enhanceService service.EnhanceService) *AIHandler {
	return &AIHandler{enhanceService: enhanceService}
}

// Enhance handles POST /api/ai/enhance requests
func (h *AIHandler) Enhance(w http.ResponseWriter, r *http.Request) {
	var req EnhanceRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	task, err := generation.ParseEnhanceTask(req.Type)
	if err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, shared.CodeValidationError, "type must be one of: about, project, description")
		return
	}

	result, err := h.enhanceService.Enhance(r.Context(), task, req.Text)
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}

	if result.Fallback {
		logger.FromContext(r.Context()).Info("served degraded enhancement", "task", task)
	}

	shared.RespondWithData(w, r, http.StatusOK, EnhanceResponse{
		Original: result.Original,
		Enhanced: result.Enhanced,
		Fallback: result.Fallback,
	})
}

// Skills handles POST /api/ai/skills requests
func (h *AIHandler) Skills(w http.ResponseWriter, r *http.Request) {
	var req SkillsRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	result, err := h.enhanceService.GenerateSkills(r.Context(), req.Prompt, req.ExistingSkills)
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}

	skills := result.Skills
	if skills == nil {
		skills = []string{}
	}

	shared.RespondWithData(w, r, http.StatusOK, SkillsResponse{
		Prompt:   result.Prompt,
		Skills:   skills,
		Count:    len(skills),
		Fallback: result.Fallback,
	})
}

// Status handles GET /api/ai/status requests
func (h *AIHandler) Status(w http.ResponseWriter, r *http.Request) {
	status := h.enhanceService.Status(r.Context())

	shared.RespondWithData(w, r, http.StatusOK, StatusResponse{
		Configured:      status.Configured,
		Provider:        status.Provider,
		Model:           status.Model,
		AvailableModels: status.AvailableModels,
		Features:        status.Features,
	})
}

// decodeAndValidate reads the JSON body into v and checks its tags. On
// failure it writes a 400 response and returns false.
func decodeAndValidate(w http.ResponseWriter, r *http.Request, v any) bool {
	if err := shared.DecodeJSON(w, r, v); err != nil {
		shared.RespondWithErrorAndLog(w, r, http.StatusBadRequest, shared.CodeValidationError, "Invalid request format", err)
		return false
	}
	if err := shared.ValidateRequest(v); err != nil {
		shared.RespondWithErrorAndLog(w, r, http.StatusBadRequest, shared.CodeValidationError, shared.ValidationMessage(err), err)
		return false
	}
	return true
}
