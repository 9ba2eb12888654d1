package httptransport

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"resume-tailor-service/internal/service"
)

type Handler struct {
	appSvc *service.ApplicationService
}

func NewHandler(appSvc *service.ApplicationService) *Handler {
	return &Handler{appSvc: appSvc}
}

type createApplicationDTO struct {
	ResumeContent    string  `json:"resumeContent"`
	JobDescription   string  `json:"jobDescription"`
	OriginalFileName *string `json:"originalFileName,omitempty"`
}

type generateContentDTO struct {
	ResumeContent  string `json:"resumeContent"`
	JobDescription string `json:"jobDescription"`
}

// CreateApplication godoc
// @Summary Create a job application
// @Description Persists the record with status=pending and starts background content generation. The response does not wait for generation.
// @Tags job-applications
// @Accept json
// @Produce json
// @Param request body createApplicationDTO true "application payload"
// @Success 201 {object} envelope
// @Failure 400 {object} envelope
// @Failure 500 {object} envelope
// @Router /job-applications [post]
func (h *Handler) CreateApplication(w http.ResponseWriter, r *http.Request) {
	var dto createApplicationDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		writeErr(w, http.StatusBadRequest, "invalid json", err.Error())
		return
	}

	app, err := h.appSvc.Create(r.Context(), service.CreateApplicationRequest{
		ResumeContent:    dto.ResumeContent,
		JobDescription:   dto.JobDescription,
		OriginalFileName: dto.OriginalFileName,
	})
	if err != nil {
		var verr *service.ValidationError
		if errors.As(err, &verr) {
			writeErr(w, http.StatusBadRequest, verr.Msg, "")
			return
		}
		writeErr(w, http.StatusInternalServerError, "internal server error", err.Error())
		return
	}

	writeData(w, http.StatusCreated, app, "job application created successfully")
}

// GenerateContent godoc
// @Summary Generate content without persisting
// @Description Runs both generation calls and returns the texts directly. Nothing is stored.
// @Tags job-applications
// @Accept json
// @Produce json
// @Param request body generateContentDTO true "generation payload"
// @Success 200 {object} envelope
// @Failure 400 {object} envelope
// @Failure 500 {object} envelope
// @Router /job-applications/generate [post]
func (h *Handler) GenerateContent(w http.ResponseWriter, r *http.Request) {
	var dto generateContentDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		writeErr(w, http.StatusBadRequest, "invalid json", err.Error())
		return
	}

	content, err := h.appSvc.Generate(r.Context(), dto.ResumeContent, dto.JobDescription)
	if err != nil {
		var verr *service.ValidationError
		if errors.As(err, &verr) {
			writeErr(w, http.StatusBadRequest, verr.Msg, "")
			return
		}
		writeErr(w, http.StatusInternalServerError, "failed to generate content", err.Error())
		return
	}

	writeData(w, http.StatusOK, content, "content generated successfully")
}

// GetApplicationStatus godoc
// @Summary Get application status
// @Description Polling endpoint: returns status, generated texts when present, and updatedAt.
// @Tags job-applications
// @Produce json
// @Param id path string true "application id (uuid)"
// @Success 200 {object} envelope
// @Failure 400 {object} envelope
// @Failure 404 {object} envelope
// @Router /job-applications/{id}/status [get]
func (h *Handler) GetApplicationStatus(w http.ResponseWriter, r *http.Request) {
	id, ok := h.parseID(w, r)
	if !ok {
		return
	}

	status, err := h.appSvc.Status(r.Context(), id)
	if err != nil {
		h.writeLookupErr(w, err)
		return
	}

	writeData(w, http.StatusOK, status, "")
}

// GetApplication godoc
// @Summary Get application by id
// @Tags job-applications
// @Produce json
// @Param id path string true "application id (uuid)"
// @Success 200 {object} envelope
// @Failure 400 {object} envelope
// @Failure 404 {object} envelope
// @Router /job-applications/{id} [get]
func (h *Handler) GetApplication(w http.ResponseWriter, r *http.Request) {
	id, ok := h.parseID(w, r)
	if !ok {
		return
	}

	app, err := h.appSvc.Get(r.Context(), id)
	if err != nil {
		h.writeLookupErr(w, err)
		return
	}

	writeData(w, http.StatusOK, app, "")
}

// ListApplications godoc
// @Summary List applications
// @Description Newest first, with pagination metadata.
// @Tags job-applications
// @Produce json
// @Param page query int false "page (default 1)"
// @Param limit query int false "page size (default 10)"
// @Success 200 {object} envelope
// @Failure 500 {object} envelope
// @Router /job-applications [get]
func (h *Handler) ListApplications(w http.ResponseWriter, r *http.Request) {
	page := queryInt(r, "page", service.DefaultPage)
	limit := queryInt(r, "limit", service.DefaultLimit)

	result, err := h.appSvc.List(r.Context(), page, limit)
	if err != nil {
		writeErr(w, http.StatusInternalServerError, "internal server error", err.Error())
		return
	}

	writeList(w, result.Applications, result.Pagination)
}

// DeleteApplication godoc
// @Summary Delete application
// @Tags job-applications
// @Produce json
// @Param id path string true "application id (uuid)"
// @Success 200 {object} envelope
// @Failure 400 {object} envelope
// @Failure 404 {object} envelope
// @Router /job-applications/{id} [delete]
func (h *Handler) DeleteApplication(w http.ResponseWriter, r *http.Request) {
	id, ok := h.parseID(w, r)
	if !ok {
		return
	}

	if err := h.appSvc.Delete(r.Context(), id); err != nil {
		h.writeLookupErr(w, err)
		return
	}

	writeData(w, http.StatusOK, nil, "job application deleted successfully")
}

func (h *Handler) parseID(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeErr(w, http.StatusBadRequest, "invalid id", "")
		return uuid.Nil, false
	}
	return id, true
}

func (h *Handler) writeLookupErr(w http.ResponseWriter, err error) {
	if errors.Is(err, service.ErrNotFound) {
		writeErr(w, http.StatusNotFound, "job application not found", "")
		return
	}
	writeErr(w, http.StatusInternalServerError, "internal server error", err.Error())
}

func queryInt(r *http.Request, key string, def int) int {
	v := r.URL.Query().Get(key)
	if v == "" {
		return def
	}
	i, err := strconv.Atoi(v)
	if err != nil {
		return def
	}
	return i
}
