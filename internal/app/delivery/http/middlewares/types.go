package middlewares

import (
	"github.com/cperault/clinical-screener-backend/internal/app/config"
	"go.uber.org/zap"
)

type Middlewares struct {
	Log            *zap.Logger
	InternalConfig *config.InternalConfig
}
