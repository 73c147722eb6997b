package constvars

const (
	SuccessGetQuestions       = "Successfully retrieved questions"
	SuccessGetAnswers         = "Successfully retrieved answers"
	SuccessGetScreener        = "Successfully retrieved screener"
	SuccessProcessedScreener  = "Screener processed successfully"
	SuccessHealthCheckMessage = "OK"
)
