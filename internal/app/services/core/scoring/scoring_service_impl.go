package scoring

import (
	"context"

	"github.com/cperault/clinical-screener-backend/internal/app/contracts"
	"github.com/cperault/clinical-screener-backend/internal/app/models"
	"github.com/cperault/clinical-screener-backend/internal/pkg/dto/requests"
	"github.com/cperault/clinical-screener-backend/internal/pkg/exceptions"
	"go.uber.org/zap"
)

// Per-domain score thresholds and the follow-up assessment each domain
// triggers when its cumulative score meets the threshold. Two domains may
// share an assessment; the result list is deduplicated.
var (
	domainThresholds = map[string]int{
		models.DomainDepression:   2,
		models.DomainAnxiety:      2,
		models.DomainMania:        2,
		models.DomainSubstanceUse: 1,
	}

	domainAssessments = map[string]string{
		models.DomainDepression:   "PHQ-9",
		models.DomainAnxiety:      "PHQ-9",
		models.DomainMania:        "ASRM",
		models.DomainSubstanceUse: "ASSIST",
	}
)

type scoringService struct {
	QuestionRepository contracts.QuestionRepository
	Log                *zap.Logger
}

func NewScoringService(questionRepository contracts.QuestionRepository, logger *zap.Logger) contracts.ScoringService {
	return &scoringService{
		QuestionRepository: questionRepository,
		Log:                logger,
	}
}

// CalculateResults aggregates answer values per clinical domain and returns
// the triggered assessment names. Any resolution failure is reported as a
// single opaque scoring error.
func (s *scoringService) CalculateResults(ctx context.Context, answers []requests.ScreenerAnswer) ([]string, error) {
	domainScores, err := s.calculateDomainScores(ctx, answers)
	if err != nil {
		s.Log.Error("scoringService.CalculateResults failed to aggregate domain scores",
			zap.Error(err),
		)
		return nil, exceptions.ErrScreenerScoringFailed(err)
	}

	return determineAssessments(domainScores), nil
}

func (s *scoringService) calculateDomainScores(ctx context.Context, answers []requests.ScreenerAnswer) (map[string]int, error) {
	questionIDs := make([]string, 0, len(answers))
	for _, answer := range answers {
		questionIDs = append(questionIDs, answer.QuestionID)
	}

	domainsByQuestionID, err := s.QuestionRepository.FindDomainsByQuestionIDs(ctx, questionIDs)
	if err != nil {
		return nil, err
	}

	domainScores := make(map[string]int)
	for _, answer := range answers {
		domain, ok := domainsByQuestionID[answer.QuestionID]
		if !ok {
			// Unresolvable questions are skipped; upstream validation already
			// guarantees catalog membership.
			continue
		}
		if answer.Value != nil {
			domainScores[domain] += *answer.Value
		}
	}

	return domainScores, nil
}

func determineAssessments(domainScores map[string]int) []string {
	results := make([]string, 0, len(domainScores))
	seen := make(map[string]bool)

	for _, domain := range models.DomainScoringOrder {
		score, ok := domainScores[domain]
		if !ok {
			continue
		}
		if score >= domainThresholds[domain] {
			assessment := domainAssessments[domain]
			if !seen[assessment] {
				seen[assessment] = true
				results = append(results, assessment)
			}
		}
	}

	return results
}
