package controllers

import (
	"context"
	"net/http"
	"sync"
	"time"

	"github.com/cperault/clinical-screener-backend/internal/app/contracts"
	"github.com/cperault/clinical-screener-backend/internal/pkg/constvars"
	"github.com/cperault/clinical-screener-backend/internal/pkg/dto/requests"
	"github.com/cperault/clinical-screener-backend/internal/pkg/exceptions"
	"github.com/cperault/clinical-screener-backend/internal/pkg/utils"
	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

type SubmissionController struct {
	Log               *zap.Logger
	SubmissionUsecase contracts.SubmissionUsecase
}

var (
	submissionControllerInstance *SubmissionController
	onceSubmissionController     sync.Once
)

func NewSubmissionController(logger *zap.Logger, submissionUsecase contracts.SubmissionUsecase) *SubmissionController {
	onceSubmissionController.Do(func() {
		instance := &SubmissionController{
			Log:               logger,
			SubmissionUsecase: submissionUsecase,
		}
		submissionControllerInstance = instance
	})
	return submissionControllerInstance
}

func (ctrl *SubmissionController) GetAllAnswers(w http.ResponseWriter, r *http.Request) {
	requestID, ok := r.Context().Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	if !ok || requestID == "" {
		ctrl.Log.Error("SubmissionController.GetAllAnswers requestID not found in context")
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrMissingRequestID(nil))
		return
	}
	ctrl.Log.Info("SubmissionController.GetAllAnswers called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	answers, err := ctrl.SubmissionUsecase.GetAllAnswers(ctx)
	if err != nil {
		ctrl.Log.Error("SubmissionController.GetAllAnswers error from usecase",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.SuccessGetAnswers, answers)
}

func (ctrl *SubmissionController) ProcessScreenerSubmission(w http.ResponseWriter, r *http.Request) {
	requestID, ok := r.Context().Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	if !ok || requestID == "" {
		ctrl.Log.Error("SubmissionController.ProcessScreenerSubmission requestID not found in context")
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrMissingRequestID(nil))
		return
	}
	ctrl.Log.Info("SubmissionController.ProcessScreenerSubmission called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	request := new(requests.CreateScreenerSubmission)
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		ctrl.Log.Error("SubmissionController.ProcessScreenerSubmission error decoding JSON",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}

	if err := utils.ValidateStruct(request); err != nil {
		ctrl.Log.Error("SubmissionController.ProcessScreenerSubmission validation failed",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrScreenerRequestInvalid(err))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	response, err := ctrl.SubmissionUsecase.ProcessScreenerSubmission(ctx, request)
	if err != nil {
		ctrl.Log.Error("SubmissionController.ProcessScreenerSubmission error from usecase",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingSessionIDKey, request.SessionID),
			zap.Error(err),
		)
		if err == context.DeadlineExceeded {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusCreated, constvars.SuccessProcessedScreener, response)
}
