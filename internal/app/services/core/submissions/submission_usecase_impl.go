package submissions

import (
	"context"

	"github.com/cperault/clinical-screener-backend/internal/app/contracts"
	"github.com/cperault/clinical-screener-backend/internal/app/models"
	"github.com/cperault/clinical-screener-backend/internal/pkg/constvars"
	"github.com/cperault/clinical-screener-backend/internal/pkg/dto/requests"
	"github.com/cperault/clinical-screener-backend/internal/pkg/dto/responses"
	"github.com/cperault/clinical-screener-backend/internal/pkg/exceptions"
	"go.uber.org/zap"
)

type submissionUsecase struct {
	SubmissionRepository contracts.SubmissionRepository
	QuestionUsecase      contracts.QuestionUsecase
	ScoringService       contracts.ScoringService
	Log                  *zap.Logger
}

func NewSubmissionUsecase(
	submissionRepository contracts.SubmissionRepository,
	questionUsecase contracts.QuestionUsecase,
	scoringService contracts.ScoringService,
	logger *zap.Logger,
) contracts.SubmissionUsecase {
	return &submissionUsecase{
		SubmissionRepository: submissionRepository,
		QuestionUsecase:      questionUsecase,
		ScoringService:       scoringService,
		Log:                  logger,
	}
}

func (uc *submissionUsecase) GetAllAnswers(ctx context.Context) ([]models.Answer, error) {
	return uc.SubmissionRepository.FindAllAnswers(ctx)
}

// ProcessScreenerSubmission validates a completed answer set against the
// question catalog, persists the submission and its answers atomically, and
// returns the triggered assessments. Exactly one submission may exist per
// session; the in-transaction existence check plus the session_id unique
// constraint guarantee that two racing submissions end with one success and
// one rejection.
func (uc *submissionUsecase) ProcessScreenerSubmission(ctx context.Context, request *requests.CreateScreenerSubmission) (*responses.ScreenerResult, error) {
	if request.SessionID == "" {
		return nil, exceptions.ErrScreenerMissingSessionID(nil)
	}

	if len(request.Answers) == 0 {
		return nil, exceptions.ErrScreenerAnswersEmpty(nil)
	}

	for _, answer := range request.Answers {
		if answer.QuestionID == "" || answer.Value == nil || *answer.Value < 0 || *answer.Value > 4 {
			return nil, exceptions.ErrScreenerAnswerOutOfRange(nil)
		}
	}

	allQuestions, err := uc.QuestionUsecase.GetAllQuestions(ctx)
	if err != nil {
		return nil, err
	}

	answeredQuestionIDs := make(map[string]bool, len(request.Answers))
	for _, answer := range request.Answers {
		answeredQuestionIDs[answer.QuestionID] = true
	}

	// Catalog order keeps the missing-question list deterministic.
	var missingQuestionIDs []string
	for _, question := range allQuestions {
		if !answeredQuestionIDs[question.QuestionID] {
			missingQuestionIDs = append(missingQuestionIDs, question.QuestionID)
		}
	}
	if len(missingQuestionIDs) > 0 {
		return nil, exceptions.ErrScreenerMissingAnswers(missingQuestionIDs)
	}

	tx, err := uc.SubmissionRepository.BeginTx(ctx)
	if err != nil {
		return nil, err
	}

	committed := false
	defer func() {
		if committed {
			return
		}
		if rollbackErr := tx.Rollback(); rollbackErr != nil {
			uc.Log.Error("submissionUsecase.ProcessScreenerSubmission rollback failed",
				zap.String(constvars.LoggingSessionIDKey, request.SessionID),
				zap.Error(rollbackErr),
			)
		}
	}()

	existingSubmission, err := tx.FindSubmissionBySessionID(ctx, request.SessionID)
	if err != nil {
		return nil, err
	}
	if existingSubmission != nil {
		return nil, exceptions.ErrScreenerAlreadyCompleted(nil)
	}

	submissionID, err := tx.InsertSubmission(ctx, request.SessionID, request.ClinicianNotes)
	if err != nil {
		return nil, err
	}

	for _, answer := range request.Answers {
		if err := tx.InsertAnswer(ctx, submissionID, answer.QuestionID, *answer.Value); err != nil {
			return nil, err
		}
	}

	// Scoring happens inside the transaction boundary: a submission must
	// never be stored without a computable result set.
	results, err := uc.ScoringService.CalculateResults(ctx, request.Answers)
	if err != nil {
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, err
	}
	committed = true

	uc.Log.Info("submissionUsecase.ProcessScreenerSubmission completed",
		zap.String(constvars.LoggingSessionIDKey, request.SessionID),
		zap.String("submission_id", submissionID),
		zap.Strings("results", results),
	)

	return &responses.ScreenerResult{
		SubmissionID: submissionID,
		Results:      results,
	}, nil
}
