package entity

import (
	"time"

	"github.com/google/uuid"
)

type Status string

const (
	StatusPending    Status = "pending"
	StatusProcessing Status = "processing"
	StatusCompleted  Status = "completed"
	StatusFailed     Status = "failed"
)

// Length bounds enforced at write time. Input over a bound is rejected,
// never truncated.
const (
	MaxResumeContentLen    = 50000
	MaxJobDescriptionLen   = 10000
	MaxTailoredSummaryLen  = 2000
	MaxCoverLetterLen      = 5000
	MaxOriginalFileNameLen = 255
)

// JobApplication is a stored job-application record. TailoredSummary and
// CoverLetter are set together when background generation completes, or
// stay nil on failure.
type JobApplication struct {
	ID               uuid.UUID `json:"id"`
	ResumeContent    string    `json:"resumeContent"`
	JobDescription   string    `json:"jobDescription"`
	TailoredSummary  *string   `json:"tailoredSummary,omitempty"`
	CoverLetter      *string   `json:"coverLetter,omitempty"`
	OriginalFileName *string   `json:"originalFileName,omitempty"`
	Status           Status    `json:"status"`
	CreatedAt        time.Time `json:"createdAt"`
	UpdatedAt        time.Time `json:"updatedAt"`
}
