package worker

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/google/uuid"

	"resume-tailor-service/internal/entity"
	"resume-tailor-service/internal/generator"
	"resume-tailor-service/internal/repository/postgresql"
	"resume-tailor-service/internal/service"
)

type ApplicationRepo interface {
	SetStatus(ctx context.Context, id uuid.UUID, status entity.Status) error
	SetGenerated(ctx context.Context, id uuid.UUID, tailoredSummary, coverLetter string) error
	SetFailed(ctx context.Context, id uuid.UUID) error
}

type Generator interface {
	GenerateBoth(ctx context.Context, resumeContent, jobDescription string) (*generator.Content, error)
}

// Processor runs one generation task end to end: mark processing, generate
// both texts, then a single terminal write (completed with both texts, or
// failed with neither).
type Processor struct {
	repo    ApplicationRepo
	gen     Generator
	timeout time.Duration
}

func NewProcessor(repo ApplicationRepo, gen Generator, timeout time.Duration) *Processor {
	return &Processor{repo: repo, gen: gen, timeout: timeout}
}

func (p *Processor) Process(ctx context.Context, task service.GenerationTask) error {
	start := time.Now()
	id := task.ID

	// Status writes must survive a generation timeout, or a timed-out task
	// could never record its failed state.
	writeCtx := context.WithoutCancel(ctx)

	genCtx := ctx
	if p.timeout > 0 {
		var cancel context.CancelFunc
		genCtx, cancel = context.WithTimeout(ctx, p.timeout)
		defer cancel()
	}

	if err := p.repo.SetStatus(writeCtx, id, entity.StatusProcessing); err != nil {
		if errors.Is(err, postgresql.ErrNotFound) {
			// Deleted before the task ran.
			log.Printf("[worker] id=%s status=skipped record_gone", id)
			return nil
		}
		log.Printf("[worker] id=%s set_status=processing error=%v", id, err)
		return err
	}

	content, genErr := p.gen.GenerateBoth(genCtx, task.ResumeContent, task.JobDescription)
	if genErr != nil {
		switch err := p.repo.SetFailed(writeCtx, id); {
		case errors.Is(err, postgresql.ErrNotFound):
			log.Printf("[worker] id=%s status=skipped record_gone", id)
		case err != nil:
			log.Printf("[worker] id=%s set_status=failed error=%v", id, err)
		default:
			log.Printf("[worker] id=%s status=failed duration_ms=%d error=%v",
				id, time.Since(start).Milliseconds(), genErr,
			)
		}
		return genErr
	}

	if err := p.repo.SetGenerated(writeCtx, id, content.TailoredSummary, content.CoverLetter); err != nil {
		if errors.Is(err, postgresql.ErrNotFound) {
			// Deleted mid-flight; drop the output.
			log.Printf("[worker] id=%s status=skipped record_gone", id)
			return nil
		}
		log.Printf("[worker] id=%s set_generated error=%v", id, err)
		return err
	}

	log.Printf("[worker] id=%s status=completed duration_ms=%d",
		id, time.Since(start).Milliseconds(),
	)
	return nil
}
