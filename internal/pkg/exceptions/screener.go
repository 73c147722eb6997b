package exceptions

import (
	"errors"
	"fmt"
	"strings"

	"github.com/cperault/clinical-screener-backend/internal/pkg/constvars"
	"github.com/go-playground/validator/v10"
)

var (
	ErrScreenerMissingSessionID = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusBadRequest, constvars.ErrClientMissingSessionID, constvars.ErrDevInvalidInput)
	}
	ErrScreenerAnswersEmpty = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusBadRequest, constvars.ErrClientAnswersEmpty, constvars.ErrDevInvalidInput)
	}
	ErrScreenerAnswerOutOfRange = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusBadRequest, constvars.ErrClientAnswerOutOfRange, constvars.ErrDevInvalidInput)
	}
	ErrScreenerAlreadyCompleted = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusBadRequest, constvars.ErrClientScreenerCompleted, constvars.ErrDevSessionAlreadySubmitted)
	}
	ErrScreenerScoringFailed = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientCannotCalculateScores, constvars.ErrDevScoringFailed)
	}
	ErrScreenerContentUnavailable = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevScreenerContentNotFound)
	}
	ErrScreenerContentInvalid = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevScreenerContentInvalid)
	}
)

// ErrScreenerRequestInvalid translates a struct validation failure on the
// submission payload into the matching screener client message.
func ErrScreenerRequestInvalid(err error) *CustomError {
	var validationErrors validator.ValidationErrors
	if errors.As(err, &validationErrors) && len(validationErrors) > 0 {
		switch validationErrors[0].Field() {
		case "SessionID":
			return ErrScreenerMissingSessionID(err)
		case "Answers":
			return ErrScreenerAnswersEmpty(err)
		case "QuestionID", "Value":
			return ErrScreenerAnswerOutOfRange(err)
		}
	}
	return ErrInputValidation(err)
}

// ErrScreenerMissingAnswers lists the catalog questions the submission left
// unanswered, in catalog order.
func ErrScreenerMissingAnswers(missingQuestionIDs []string) *CustomError {
	message := fmt.Sprintf(constvars.ErrClientMissingAnswersFormat, strings.Join(missingQuestionIDs, ", "))
	return BuildNewCustomError(nil, constvars.StatusBadRequest, message, constvars.ErrDevInvalidInput)
}
