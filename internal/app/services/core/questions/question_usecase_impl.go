package questions

import (
	"context"
	"time"

	"github.com/cperault/clinical-screener-backend/internal/app/config"
	"github.com/cperault/clinical-screener-backend/internal/app/contracts"
	"github.com/cperault/clinical-screener-backend/internal/app/models"
	"github.com/cperault/clinical-screener-backend/internal/pkg/exceptions"
	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

const questionCatalogCacheKey = "screener:questions"

type questionUsecase struct {
	QuestionRepository contracts.QuestionRepository
	RedisRepository    contracts.RedisRepository
	InternalConfig     *config.InternalConfig
	Log                *zap.Logger
}

func NewQuestionUsecase(
	questionRepository contracts.QuestionRepository,
	redisRepository contracts.RedisRepository,
	internalConfig *config.InternalConfig,
	logger *zap.Logger,
) contracts.QuestionUsecase {
	return &questionUsecase{
		QuestionRepository: questionRepository,
		RedisRepository:    redisRepository,
		InternalConfig:     internalConfig,
		Log:                logger,
	}
}

// GetAllQuestions serves the catalog from redis when a cached copy exists and
// falls back to postgres otherwise. Cache failures are logged and ignored so
// the catalog read path stays available without redis.
func (uc *questionUsecase) GetAllQuestions(ctx context.Context) ([]models.Question, error) {
	cached, err := uc.RedisRepository.Get(ctx, questionCatalogCacheKey)
	if err != nil {
		uc.Log.Warn("questionUsecase.GetAllQuestions cache read failed",
			zap.Error(err),
		)
	}

	if cached != "" {
		var questions []models.Question
		if err := json.Unmarshal([]byte(cached), &questions); err == nil {
			return questions, nil
		}
		uc.Log.Warn("questionUsecase.GetAllQuestions cached catalog is malformed, refetching",
			zap.Error(exceptions.ErrCannotUnmarshalJSON(err)),
		)
	}

	questions, err := uc.QuestionRepository.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	expiry := time.Duration(uc.InternalConfig.App.QuestionCacheExpiryTimeInMinutes) * time.Minute
	if err := uc.RedisRepository.Set(ctx, questionCatalogCacheKey, questions, expiry); err != nil {
		uc.Log.Warn("questionUsecase.GetAllQuestions cache write failed",
			zap.Error(err),
		)
	}

	return questions, nil
}
