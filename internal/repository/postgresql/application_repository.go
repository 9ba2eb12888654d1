package postgresql

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"resume-tailor-service/internal/entity"
)

var ErrNotFound = errors.New("not found")

type ApplicationRepository struct {
	pool *pgxpool.Pool
}

func NewApplicationRepository(pool *pgxpool.Pool) *ApplicationRepository {
	return &ApplicationRepository{pool: pool}
}

const applicationColumns = `
id, resume_content, job_description, tailored_summary, cover_letter,
original_file_name, status, created_at, updated_at`

func scanApplication(row pgx.Row) (*entity.JobApplication, error) {
	var (
		app        entity.JobApplication
		statusText string
	)
	if err := row.Scan(
		&app.ID,
		&app.ResumeContent,
		&app.JobDescription,
		&app.TailoredSummary,
		&app.CoverLetter,
		&app.OriginalFileName,
		&statusText,
		&app.CreatedAt,
		&app.UpdatedAt,
	); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	app.Status = entity.Status(statusText)
	return &app, nil
}

func (r *ApplicationRepository) Create(ctx context.Context, resumeContent, jobDescription string, originalFileName *string) (*entity.JobApplication, error) {
	const q = `
INSERT INTO job_applications (resume_content, job_description, original_file_name, status)
VALUES ($1, $2, $3, 'pending')
RETURNING ` + applicationColumns + `;`

	return scanApplication(r.pool.QueryRow(ctx, q, resumeContent, jobDescription, originalFileName))
}

func (r *ApplicationRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.JobApplication, error) {
	const q = `
SELECT ` + applicationColumns + `
FROM job_applications
WHERE id = $1;`

	return scanApplication(r.pool.QueryRow(ctx, q, id))
}

// List returns records ordered by creation time, newest first.
func (r *ApplicationRepository) List(ctx context.Context, limit, offset int) ([]*entity.JobApplication, error) {
	const q = `
SELECT ` + applicationColumns + `
FROM job_applications
ORDER BY created_at DESC
LIMIT $1 OFFSET $2;`

	rows, err := r.pool.Query(ctx, q, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	apps := make([]*entity.JobApplication, 0, limit)
	for rows.Next() {
		app, err := scanApplication(rows)
		if err != nil {
			return nil, err
		}
		apps = append(apps, app)
	}
	return apps, rows.Err()
}

func (r *ApplicationRepository) Count(ctx context.Context) (int, error) {
	var total int
	if err := r.pool.QueryRow(ctx, `SELECT count(*) FROM job_applications;`).Scan(&total); err != nil {
		return 0, err
	}
	return total, nil
}

func (r *ApplicationRepository) SetStatus(ctx context.Context, id uuid.UUID, status entity.Status) error {
	const q = `UPDATE job_applications SET status=$2, updated_at=now() WHERE id=$1;`

	tag, err := r.pool.Exec(ctx, q, id, string(status))
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

// SetGenerated stores both generated texts and the completed status in a
// single update, so a poller never observes one text without the other.
func (r *ApplicationRepository) SetGenerated(ctx context.Context, id uuid.UUID, tailoredSummary, coverLetter string) error {
	const q = `
UPDATE job_applications
SET status='completed', tailored_summary=$2, cover_letter=$3, updated_at=now()
WHERE id=$1;`

	tag, err := r.pool.Exec(ctx, q, id, tailoredSummary, coverLetter)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *ApplicationRepository) SetFailed(ctx context.Context, id uuid.UUID) error {
	const q = `
UPDATE job_applications
SET status='failed', tailored_summary=NULL, cover_letter=NULL, updated_at=now()
WHERE id=$1;`

	tag, err := r.pool.Exec(ctx, q, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *ApplicationRepository) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM job_applications WHERE id=$1;`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
