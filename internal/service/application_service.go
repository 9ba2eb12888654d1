package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/google/uuid"

	"resume-tailor-service/internal/entity"
	"resume-tailor-service/internal/generator"
	"resume-tailor-service/internal/repository/postgresql"
)

var ErrNotFound = errors.New("job application not found")

// ValidationError is a client-fault input error. It never leaves side
// effects behind.
type ValidationError struct {
	Msg string
}

func (e *ValidationError) Error() string { return e.Msg }

func validationErrorf(format string, args ...any) error {
	return &ValidationError{Msg: fmt.Sprintf(format, args...)}
}

// Record store port (implementation: postgresql.ApplicationRepository)
type ApplicationRepository interface {
	Create(ctx context.Context, resumeContent, jobDescription string, originalFileName *string) (*entity.JobApplication, error)
	GetByID(ctx context.Context, id uuid.UUID) (*entity.JobApplication, error)
	List(ctx context.Context, limit, offset int) ([]*entity.JobApplication, error)
	Count(ctx context.Context) (int, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// Content generator port (implementation: generator.Client)
type ContentGenerator interface {
	GenerateBoth(ctx context.Context, resumeContent, jobDescription string) (*generator.Content, error)
}

// GenerationTask carries everything background generation needs. Inputs are
// captured at dispatch time, not re-read from the store.
type GenerationTask struct {
	ID             uuid.UUID
	ResumeContent  string
	JobDescription string
}

// Dispatcher hands a task to the background worker pool without blocking on
// the generation itself.
type Dispatcher interface {
	Submit(task GenerationTask) error
}

type ApplicationService struct {
	repo       ApplicationRepository
	gen        ContentGenerator
	dispatcher Dispatcher
}

func NewApplicationService(repo ApplicationRepository, gen ContentGenerator, dispatcher Dispatcher) *ApplicationService {
	return &ApplicationService{repo: repo, gen: gen, dispatcher: dispatcher}
}

type CreateApplicationRequest struct {
	ResumeContent    string
	JobDescription   string
	OriginalFileName *string
}

func validateInputs(resumeContent, jobDescription string) error {
	if strings.TrimSpace(resumeContent) == "" || strings.TrimSpace(jobDescription) == "" {
		return validationErrorf("resume content and job description are required")
	}
	if len(resumeContent) > entity.MaxResumeContentLen {
		return validationErrorf("resume content cannot exceed %d characters", entity.MaxResumeContentLen)
	}
	if len(jobDescription) > entity.MaxJobDescriptionLen {
		return validationErrorf("job description cannot exceed %d characters", entity.MaxJobDescriptionLen)
	}
	return nil
}

// Create persists a pending record and dispatches background generation for
// it. The returned record never waits on generation.
func (s *ApplicationService) Create(ctx context.Context, req CreateApplicationRequest) (*entity.JobApplication, error) {
	if err := validateInputs(req.ResumeContent, req.JobDescription); err != nil {
		return nil, err
	}
	if req.OriginalFileName != nil && len(*req.OriginalFileName) > entity.MaxOriginalFileNameLen {
		return nil, validationErrorf("file name cannot exceed %d characters", entity.MaxOriginalFileNameLen)
	}

	app, err := s.repo.Create(ctx, req.ResumeContent, req.JobDescription, req.OriginalFileName)
	if err != nil {
		return nil, fmt.Errorf("create job application: %w", err)
	}

	if err := s.dispatcher.Submit(GenerationTask{
		ID:             app.ID,
		ResumeContent:  app.ResumeContent,
		JobDescription: app.JobDescription,
	}); err != nil {
		// Record stays pending; no retry.
		log.Printf("[service] id=%s dispatch error=%v", app.ID, err)
	}

	return app, nil
}

// Generate runs both generation calls without persisting anything.
func (s *ApplicationService) Generate(ctx context.Context, resumeContent, jobDescription string) (*generator.Content, error) {
	if err := validateInputs(resumeContent, jobDescription); err != nil {
		return nil, err
	}
	content, err := s.gen.GenerateBoth(ctx, resumeContent, jobDescription)
	if err != nil {
		return nil, fmt.Errorf("generate content: %w", err)
	}
	return content, nil
}

// StatusProjection is the polling contract: the latest persisted state,
// nothing cached in front of the store.
type StatusProjection struct {
	Status          entity.Status `json:"status"`
	TailoredSummary *string       `json:"tailoredSummary,omitempty"`
	CoverLetter     *string       `json:"coverLetter,omitempty"`
	UpdatedAt       time.Time     `json:"updatedAt"`
}

func (s *ApplicationService) Status(ctx context.Context, id uuid.UUID) (*StatusProjection, error) {
	app, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, mapNotFound(err)
	}
	return &StatusProjection{
		Status:          app.Status,
		TailoredSummary: app.TailoredSummary,
		CoverLetter:     app.CoverLetter,
		UpdatedAt:       app.UpdatedAt,
	}, nil
}

func (s *ApplicationService) Get(ctx context.Context, id uuid.UUID) (*entity.JobApplication, error) {
	app, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, mapNotFound(err)
	}
	return app, nil
}

func (s *ApplicationService) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return mapNotFound(err)
	}
	return nil
}

const (
	DefaultPage  = 1
	DefaultLimit = 10
)

type Pagination struct {
	Page  int `json:"page"`
	Limit int `json:"limit"`
	Total int `json:"total"`
	Pages int `json:"pages"`
}

type ListResult struct {
	Applications []*entity.JobApplication
	Pagination   Pagination
}

// List returns records ordered by creation time descending. No upper bound
// on limit is enforced here.
func (s *ApplicationService) List(ctx context.Context, page, limit int) (*ListResult, error) {
	if page < 1 {
		page = DefaultPage
	}
	if limit < 1 {
		limit = DefaultLimit
	}
	skip := (page - 1) * limit

	apps, err := s.repo.List(ctx, limit, skip)
	if err != nil {
		return nil, fmt.Errorf("list job applications: %w", err)
	}
	total, err := s.repo.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("count job applications: %w", err)
	}

	return &ListResult{
		Applications: apps,
		Pagination: Pagination{
			Page:  page,
			Limit: limit,
			Total: total,
			Pages: (total + limit - 1) / limit,
		},
	}, nil
}

func mapNotFound(err error) error {
	if errors.Is(err, postgresql.ErrNotFound) {
		return ErrNotFound
	}
	return err
}
