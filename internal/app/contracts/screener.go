package contracts

import (
	"context"

	"github.com/cperault/clinical-screener-backend/internal/app/models"
)

type ScreenerUsecase interface {
	GetScreener(ctx context.Context) (*models.Screener, error)
}
