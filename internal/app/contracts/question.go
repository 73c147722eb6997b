package contracts

import (
	"context"

	"github.com/cperault/clinical-screener-backend/internal/app/models"
)

// QuestionRepository is the read-only gateway to the question catalog.
type QuestionRepository interface {
	// FindAll returns every catalog question with its resolved domain, in
	// stable catalog order.
	FindAll(ctx context.Context) ([]models.Question, error)
	// FindDomainsByQuestionIDs batch-resolves question ids to domain names.
	// Unknown ids are simply absent from the returned map.
	FindDomainsByQuestionIDs(ctx context.Context, questionIDs []string) (map[string]string, error)
}

type QuestionUsecase interface {
	GetAllQuestions(ctx context.Context) ([]models.Question, error)
}
