package scoring

import (
	"context"
	"errors"
	"testing"

	"github.com/cperault/clinical-screener-backend/internal/app/models"
	"github.com/cperault/clinical-screener-backend/internal/pkg/constvars"
	"github.com/cperault/clinical-screener-backend/internal/pkg/dto/requests"
	"github.com/cperault/clinical-screener-backend/internal/pkg/exceptions"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"
)

type MockQuestionRepository struct {
	mock.Mock
}

func (m *MockQuestionRepository) FindAll(ctx context.Context) ([]models.Question, error) {
	args := m.Called(ctx)
	if questions := args.Get(0); questions != nil {
		return questions.([]models.Question), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockQuestionRepository) FindDomainsByQuestionIDs(ctx context.Context, questionIDs []string) (map[string]string, error) {
	args := m.Called(ctx, questionIDs)
	if domains := args.Get(0); domains != nil {
		return domains.(map[string]string), args.Error(1)
	}
	return nil, args.Error(1)
}

var screenerDomainMap = map[string]string{
	"question_a": models.DomainDepression,
	"question_b": models.DomainDepression,
	"question_c": models.DomainMania,
	"question_d": models.DomainMania,
	"question_e": models.DomainAnxiety,
	"question_f": models.DomainAnxiety,
	"question_g": models.DomainAnxiety,
	"question_h": models.DomainSubstanceUse,
}

func answer(questionID string, value int) requests.ScreenerAnswer {
	return requests.ScreenerAnswer{QuestionID: questionID, Value: &value}
}

func TestScoringService_CalculateResults(t *testing.T) {
	logger := zap.NewNop()

	t.Run("returns every triggered assessment exactly once", func(t *testing.T) {
		mockRepo := new(MockQuestionRepository)
		mockRepo.On("FindDomainsByQuestionIDs", mock.Anything, mock.Anything).Return(screenerDomainMap, nil)

		service := NewScoringService(mockRepo, logger)

		// depression 3, mania 7, anxiety 3, substance_use 3: all four
		// thresholds met, PHQ-9 shared by depression and anxiety.
		answers := []requests.ScreenerAnswer{
			answer("question_a", 1),
			answer("question_b", 2),
			answer("question_c", 3),
			answer("question_d", 4),
			answer("question_e", 0),
			answer("question_f", 1),
			answer("question_g", 2),
			answer("question_h", 3),
		}

		results, err := service.CalculateResults(context.Background(), answers)

		assert.NoError(t, err)
		assert.Equal(t, []string{"PHQ-9", "ASRM", "ASSIST"}, results)
	})

	t.Run("returns empty slice when no threshold is met", func(t *testing.T) {
		mockRepo := new(MockQuestionRepository)
		mockRepo.On("FindDomainsByQuestionIDs", mock.Anything, mock.Anything).Return(screenerDomainMap, nil)

		service := NewScoringService(mockRepo, logger)

		answers := []requests.ScreenerAnswer{
			answer("question_a", 0),
			answer("question_b", 0),
			answer("question_c", 0),
			answer("question_d", 0),
			answer("question_e", 0),
			answer("question_f", 0),
			answer("question_g", 0),
			answer("question_h", 0),
		}

		results, err := service.CalculateResults(context.Background(), answers)

		assert.NoError(t, err)
		assert.NotNil(t, results)
		assert.Empty(t, results)
	})

	t.Run("triggers a single domain independently", func(t *testing.T) {
		mockRepo := new(MockQuestionRepository)
		mockRepo.On("FindDomainsByQuestionIDs", mock.Anything, mock.Anything).Return(screenerDomainMap, nil)

		service := NewScoringService(mockRepo, logger)

		// substance_use has threshold 1, everything else stays below.
		answers := []requests.ScreenerAnswer{
			answer("question_a", 1),
			answer("question_h", 1),
		}

		results, err := service.CalculateResults(context.Background(), answers)

		assert.NoError(t, err)
		assert.Equal(t, []string{"ASSIST"}, results)
	})

	t.Run("skips answers whose domain cannot be resolved", func(t *testing.T) {
		mockRepo := new(MockQuestionRepository)
		mockRepo.On("FindDomainsByQuestionIDs", mock.Anything, mock.Anything).Return(map[string]string{
			"question_h": models.DomainSubstanceUse,
		}, nil)

		service := NewScoringService(mockRepo, logger)

		answers := []requests.ScreenerAnswer{
			answer("question_unknown", 4),
			answer("question_h", 3),
		}

		results, err := service.CalculateResults(context.Background(), answers)

		assert.NoError(t, err)
		assert.Equal(t, []string{"ASSIST"}, results)
	})

	t.Run("wraps resolution failures into an opaque scoring error", func(t *testing.T) {
		mockRepo := new(MockQuestionRepository)
		mockRepo.On("FindDomainsByQuestionIDs", mock.Anything, mock.Anything).Return(nil, errors.New("connection refused"))

		service := NewScoringService(mockRepo, logger)

		results, err := service.CalculateResults(context.Background(), []requests.ScreenerAnswer{
			answer("question_a", 1),
		})

		assert.Nil(t, results)
		assert.Error(t, err)

		var customErr *exceptions.CustomError
		assert.ErrorAs(t, err, &customErr)
		assert.Equal(t, constvars.StatusInternalServerError, customErr.StatusCode)
		assert.Equal(t, constvars.ErrClientCannotCalculateScores, customErr.ClientMessage)
	})
}
