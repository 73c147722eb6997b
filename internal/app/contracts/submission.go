package contracts

import (
	"context"

	"github.com/cperault/clinical-screener-backend/internal/app/models"
	"github.com/cperault/clinical-screener-backend/internal/pkg/dto/requests"
	"github.com/cperault/clinical-screener-backend/internal/pkg/dto/responses"
)

// SubmissionTxClient is a checked-out transaction handle. It is owned by a
// single in-flight submission and must be finished with exactly one Commit or
// Rollback; Rollback after a successful Commit is a no-op.
type SubmissionTxClient interface {
	FindSubmissionBySessionID(ctx context.Context, sessionID string) (*models.Submission, error)
	InsertSubmission(ctx context.Context, sessionID string, clinicianNotes *string) (string, error)
	InsertAnswer(ctx context.Context, submissionID, questionID string, value int) error
	Commit() error
	Rollback() error
}

// SubmissionRepository is the persistence gateway for submissions and their
// answers. It never interprets business rules.
type SubmissionRepository interface {
	FindAllAnswers(ctx context.Context) ([]models.Answer, error)
	BeginTx(ctx context.Context) (SubmissionTxClient, error)
}

type SubmissionUsecase interface {
	GetAllAnswers(ctx context.Context) ([]models.Answer, error)
	ProcessScreenerSubmission(ctx context.Context, request *requests.CreateScreenerSubmission) (*responses.ScreenerResult, error)
}
