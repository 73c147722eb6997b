package controllers

import (
	"context"
	"net/http"
	"sync"
	"time"

	"github.com/cperault/clinical-screener-backend/internal/app/contracts"
	"github.com/cperault/clinical-screener-backend/internal/pkg/constvars"
	"github.com/cperault/clinical-screener-backend/internal/pkg/exceptions"
	"github.com/cperault/clinical-screener-backend/internal/pkg/utils"
	"go.uber.org/zap"
)

type QuestionController struct {
	Log             *zap.Logger
	QuestionUsecase contracts.QuestionUsecase
}

var (
	questionControllerInstance *QuestionController
	onceQuestionController     sync.Once
)

func NewQuestionController(logger *zap.Logger, questionUsecase contracts.QuestionUsecase) *QuestionController {
	onceQuestionController.Do(func() {
		instance := &QuestionController{
			Log:             logger,
			QuestionUsecase: questionUsecase,
		}
		questionControllerInstance = instance
	})
	return questionControllerInstance
}

func (ctrl *QuestionController) GetAllQuestions(w http.ResponseWriter, r *http.Request) {
	requestID, ok := r.Context().Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	if !ok || requestID == "" {
		ctrl.Log.Error("QuestionController.GetAllQuestions requestID not found in context")
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrMissingRequestID(nil))
		return
	}
	ctrl.Log.Info("QuestionController.GetAllQuestions called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	questions, err := ctrl.QuestionUsecase.GetAllQuestions(ctx)
	if err != nil {
		ctrl.Log.Error("QuestionController.GetAllQuestions error from usecase",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		if err == context.DeadlineExceeded {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.SuccessGetQuestions, questions)
}
