package screeners

import (
	"context"
	"os"
	"sync"

	"github.com/cperault/clinical-screener-backend/internal/app/config"
	"github.com/cperault/clinical-screener-backend/internal/app/contracts"
	"github.com/cperault/clinical-screener-backend/internal/app/models"
	"github.com/cperault/clinical-screener-backend/internal/pkg/exceptions"
	"github.com/goccy/go-json"
)

type screenerUsecase struct {
	InternalConfig *config.InternalConfig

	mu       sync.Mutex
	screener *models.Screener
}

func NewScreenerUsecase(internalConfig *config.InternalConfig) contracts.ScreenerUsecase {
	return &screenerUsecase{
		InternalConfig: internalConfig,
	}
}

// GetScreener serves the static screener document. The file is read once on
// first use and kept in memory; a failed read is retried on the next call.
func (uc *screenerUsecase) GetScreener(ctx context.Context) (*models.Screener, error) {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	if uc.screener != nil {
		return uc.screener, nil
	}

	data, err := os.ReadFile(uc.InternalConfig.App.ScreenerContentPath)
	if err != nil {
		return nil, exceptions.ErrScreenerContentUnavailable(err)
	}

	var screener models.Screener
	if err := json.Unmarshal(data, &screener); err != nil {
		return nil, exceptions.ErrScreenerContentInvalid(err)
	}

	uc.screener = &screener
	return uc.screener, nil
}
