package service_test

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"

	"resume-tailor-service/internal/entity"
	"resume-tailor-service/internal/generator"
	"resume-tailor-service/internal/repository/postgresql"
	"resume-tailor-service/internal/service"
)

type fakeRepo struct {
	createCalled int
	lastResume   string
	lastJobDesc  string
	createID     uuid.UUID
	createErr    error

	getApp *entity.JobApplication
	getErr error

	listApps  []*entity.JobApplication
	lastLimit int
	lastSkip  int
	total     int

	deleteErr error
}

func (r *fakeRepo) Create(ctx context.Context, resumeContent, jobDescription string, originalFileName *string) (*entity.JobApplication, error) {
	r.createCalled++
	r.lastResume = resumeContent
	r.lastJobDesc = jobDescription
	if r.createErr != nil {
		return nil, r.createErr
	}
	now := time.Now().UTC()
	return &entity.JobApplication{
		ID:               r.createID,
		ResumeContent:    resumeContent,
		JobDescription:   jobDescription,
		OriginalFileName: originalFileName,
		Status:           entity.StatusPending,
		CreatedAt:        now,
		UpdatedAt:        now,
	}, nil
}

func (r *fakeRepo) GetByID(ctx context.Context, id uuid.UUID) (*entity.JobApplication, error) {
	if r.getErr != nil {
		return nil, r.getErr
	}
	return r.getApp, nil
}

func (r *fakeRepo) List(ctx context.Context, limit, offset int) ([]*entity.JobApplication, error) {
	r.lastLimit = limit
	r.lastSkip = offset
	return r.listApps, nil
}

func (r *fakeRepo) Count(ctx context.Context) (int, error) { return r.total, nil }

func (r *fakeRepo) Delete(ctx context.Context, id uuid.UUID) error { return r.deleteErr }

type fakeGenerator struct {
	called  int
	content *generator.Content
	err     error
}

func (g *fakeGenerator) GenerateBoth(ctx context.Context, resumeContent, jobDescription string) (*generator.Content, error) {
	g.called++
	if g.err != nil {
		return nil, g.err
	}
	return g.content, nil
}

type fakeDispatcher struct {
	tasks     []service.GenerationTask
	submitErr error
}

func (d *fakeDispatcher) Submit(task service.GenerationTask) error {
	d.tasks = append(d.tasks, task)
	return d.submitErr
}

func TestApplicationService_Create_RejectsMissingFields(t *testing.T) {
	ctx := context.Background()

	for _, tc := range []struct {
		name    string
		resume  string
		jobDesc string
	}{
		{"empty resume", "", "some job description"},
		{"empty job description", "some resume", ""},
		{"whitespace resume", "   \n", "some job description"},
	} {
		t.Run(tc.name, func(t *testing.T) {
			repo := &fakeRepo{}
			dispatcher := &fakeDispatcher{}
			svc := service.NewApplicationService(repo, &fakeGenerator{}, dispatcher)

			_, err := svc.Create(ctx, service.CreateApplicationRequest{
				ResumeContent:  tc.resume,
				JobDescription: tc.jobDesc,
			})

			var verr *service.ValidationError
			if !errors.As(err, &verr) {
				t.Fatalf("expected ValidationError, got %v", err)
			}
			if repo.createCalled != 0 {
				t.Fatalf("expected store untouched, create called %d times", repo.createCalled)
			}
			if len(dispatcher.tasks) != 0 {
				t.Fatalf("expected no task dispatched, got %d", len(dispatcher.tasks))
			}
		})
	}
}

func TestApplicationService_Create_RejectsOversizedInput(t *testing.T) {
	ctx := context.Background()
	repo := &fakeRepo{}
	svc := service.NewApplicationService(repo, &fakeGenerator{}, &fakeDispatcher{})

	_, err := svc.Create(ctx, service.CreateApplicationRequest{
		ResumeContent:  strings.Repeat("a", entity.MaxResumeContentLen+1),
		JobDescription: "job description",
	})

	var verr *service.ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
	if repo.createCalled != 0 {
		t.Fatalf("expected store untouched, create called %d times", repo.createCalled)
	}
}

func TestApplicationService_Create_StartsPendingAndDispatchesOneTask(t *testing.T) {
	ctx := context.Background()
	id := uuid.MustParse("11111111-1111-1111-1111-111111111111")

	repo := &fakeRepo{createID: id}
	dispatcher := &fakeDispatcher{}
	svc := service.NewApplicationService(repo, &fakeGenerator{}, dispatcher)

	app, err := svc.Create(ctx, service.CreateApplicationRequest{
		ResumeContent:  "resume text",
		JobDescription: "job text",
	})
	if err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}

	if app.Status != entity.StatusPending {
		t.Fatalf("expected status=pending, got %s", app.Status)
	}
	if app.TailoredSummary != nil || app.CoverLetter != nil {
		t.Fatalf("expected no generated texts on a fresh record")
	}

	if len(dispatcher.tasks) != 1 {
		t.Fatalf("expected exactly one dispatched task, got %d", len(dispatcher.tasks))
	}
	task := dispatcher.tasks[0]
	if task.ID != id || task.ResumeContent != "resume text" || task.JobDescription != "job text" {
		t.Fatalf("task inputs not captured at dispatch: %#v", task)
	}
}

func TestApplicationService_Create_DispatchFailureStillReturnsRecord(t *testing.T) {
	ctx := context.Background()
	id := uuid.MustParse("22222222-2222-2222-2222-222222222222")

	repo := &fakeRepo{createID: id}
	dispatcher := &fakeDispatcher{submitErr: errors.New("pool stopped")}
	svc := service.NewApplicationService(repo, &fakeGenerator{}, dispatcher)

	app, err := svc.Create(ctx, service.CreateApplicationRequest{
		ResumeContent:  "resume text",
		JobDescription: "job text",
	})
	if err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
	if app.Status != entity.StatusPending {
		t.Fatalf("expected status=pending, got %s", app.Status)
	}
}

func TestApplicationService_Generate_DoesNotTouchStore(t *testing.T) {
	ctx := context.Background()

	repo := &fakeRepo{}
	gen := &fakeGenerator{content: &generator.Content{
		TailoredSummary: "a summary",
		CoverLetter:     "a letter",
	}}
	svc := service.NewApplicationService(repo, gen, &fakeDispatcher{})

	content, err := svc.Generate(ctx, "resume text", "job text")
	if err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
	if content.TailoredSummary != "a summary" || content.CoverLetter != "a letter" {
		t.Fatalf("unexpected content: %#v", content)
	}
	if repo.createCalled != 0 {
		t.Fatalf("expected store untouched, create called %d times", repo.createCalled)
	}
}

func TestApplicationService_Generate_PropagatesGenerationError(t *testing.T) {
	ctx := context.Background()

	gen := &fakeGenerator{err: errors.New("provider down")}
	svc := service.NewApplicationService(&fakeRepo{}, gen, &fakeDispatcher{})

	_, err := svc.Generate(ctx, "resume text", "job text")
	if err == nil {
		t.Fatal("expected error")
	}
	var verr *service.ValidationError
	if errors.As(err, &verr) {
		t.Fatalf("generation failure must not be a validation error: %v", err)
	}
}

func TestApplicationService_List_PaginationMath(t *testing.T) {
	ctx := context.Background()

	apps := make([]*entity.JobApplication, 5)
	for i := range apps {
		apps[i] = &entity.JobApplication{ID: uuid.New(), Status: entity.StatusPending}
	}
	repo := &fakeRepo{listApps: apps, total: 25}
	svc := service.NewApplicationService(repo, &fakeGenerator{}, &fakeDispatcher{})

	result, err := svc.List(ctx, 3, 10)
	if err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}

	if repo.lastLimit != 10 || repo.lastSkip != 20 {
		t.Fatalf("expected limit=10 skip=20, got limit=%d skip=%d", repo.lastLimit, repo.lastSkip)
	}
	if len(result.Applications) != 5 {
		t.Fatalf("expected 5 records, got %d", len(result.Applications))
	}

	pg := result.Pagination
	if pg.Page != 3 || pg.Limit != 10 || pg.Total != 25 || pg.Pages != 3 {
		t.Fatalf("unexpected pagination: %#v", pg)
	}
}

func TestApplicationService_List_Defaults(t *testing.T) {
	ctx := context.Background()
	repo := &fakeRepo{}
	svc := service.NewApplicationService(repo, &fakeGenerator{}, &fakeDispatcher{})

	result, err := svc.List(ctx, 0, -5)
	if err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
	if repo.lastLimit != service.DefaultLimit || repo.lastSkip != 0 {
		t.Fatalf("expected defaults limit=%d skip=0, got limit=%d skip=%d",
			service.DefaultLimit, repo.lastLimit, repo.lastSkip)
	}
	if result.Pagination.Pages != 0 {
		t.Fatalf("expected pages=0 for empty store, got %d", result.Pagination.Pages)
	}
}

func TestApplicationService_Status_NotFound(t *testing.T) {
	ctx := context.Background()
	repo := &fakeRepo{getErr: postgresql.ErrNotFound}
	svc := service.NewApplicationService(repo, &fakeGenerator{}, &fakeDispatcher{})

	_, err := svc.Status(ctx, uuid.New())
	if !errors.Is(err, service.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestApplicationService_Status_Projection(t *testing.T) {
	ctx := context.Background()
	summary := "a summary"
	letter := "a letter"
	updated := time.Now().UTC()

	repo := &fakeRepo{getApp: &entity.JobApplication{
		ID:              uuid.New(),
		ResumeContent:   "resume",
		JobDescription:  "job",
		TailoredSummary: &summary,
		CoverLetter:     &letter,
		Status:          entity.StatusCompleted,
		UpdatedAt:       updated,
	}}
	svc := service.NewApplicationService(repo, &fakeGenerator{}, &fakeDispatcher{})

	status, err := svc.Status(ctx, uuid.New())
	if err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
	if status.Status != entity.StatusCompleted {
		t.Fatalf("expected status=completed, got %s", status.Status)
	}
	if status.TailoredSummary == nil || *status.TailoredSummary != summary {
		t.Fatalf("expected summary in projection")
	}
	if status.CoverLetter == nil || *status.CoverLetter != letter {
		t.Fatalf("expected cover letter in projection")
	}
	if !status.UpdatedAt.Equal(updated) {
		t.Fatalf("expected updatedAt passthrough")
	}
}

func TestApplicationService_Delete_NotFound(t *testing.T) {
	ctx := context.Background()
	repo := &fakeRepo{deleteErr: postgresql.ErrNotFound}
	svc := service.NewApplicationService(repo, &fakeGenerator{}, &fakeDispatcher{})

	if err := svc.Delete(ctx, uuid.New()); !errors.Is(err, service.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}
