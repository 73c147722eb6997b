package controllers

import (
	"net/http"
	"sync"

	"github.com/cperault/clinical-screener-backend/internal/app/contracts"
	"github.com/cperault/clinical-screener-backend/internal/pkg/constvars"
	"github.com/cperault/clinical-screener-backend/internal/pkg/exceptions"
	"github.com/cperault/clinical-screener-backend/internal/pkg/utils"
	"go.uber.org/zap"
)

type ScreenerController struct {
	Log             *zap.Logger
	ScreenerUsecase contracts.ScreenerUsecase
}

var (
	screenerControllerInstance *ScreenerController
	onceScreenerController     sync.Once
)

func NewScreenerController(logger *zap.Logger, screenerUsecase contracts.ScreenerUsecase) *ScreenerController {
	onceScreenerController.Do(func() {
		instance := &ScreenerController{
			Log:             logger,
			ScreenerUsecase: screenerUsecase,
		}
		screenerControllerInstance = instance
	})
	return screenerControllerInstance
}

func (ctrl *ScreenerController) GetScreener(w http.ResponseWriter, r *http.Request) {
	requestID, ok := r.Context().Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	if !ok || requestID == "" {
		ctrl.Log.Error("ScreenerController.GetScreener requestID not found in context")
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrMissingRequestID(nil))
		return
	}
	ctrl.Log.Info("ScreenerController.GetScreener called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	screener, err := ctrl.ScreenerUsecase.GetScreener(r.Context())
	if err != nil {
		ctrl.Log.Error("ScreenerController.GetScreener error from usecase",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.SuccessGetScreener, screener)
}
