package constvars

// Client-facing messages. The screener messages are part of the API contract
// consumed by the frontend, so their wording is fixed.
const (
	ErrClientSomethingWrongWithApplication = "Something went wrong with the application, please try again later"
	ErrClientCannotProcessRequest          = "Cannot process request"
	ErrClientServerLongRespond             = "Server took too long to respond, please try again later"

	ErrClientMissingSessionID      = "Missing session_id"
	ErrClientAnswersEmpty          = "Answers must be a non-empty array"
	ErrClientAnswerOutOfRange      = "Each answer must have a question_id and value between 0 and 4"
	ErrClientMissingAnswersFormat  = "Missing answers for questions: %s"
	ErrClientScreenerCompleted     = "This screener has already been completed. Please contact your clinician for further assistance."
	ErrClientCannotCalculateScores = "Failed to calculate assessment results"
)

// Developer-facing messages, logged but never returned to clients.
const (
	ErrDevCannotParseJSON         = "Cannot parse JSON request body"
	ErrDevValidationFailed        = "Request validation failed"
	ErrDevMissingRequestID        = "Request ID not found in request context"
	ErrDevPostgresQueryData       = "Postgres failed to query data"
	ErrDevPostgresScanData        = "Postgres failed to scan row data"
	ErrDevPostgresInsertData      = "Postgres failed to insert data"
	ErrDevPostgresBeginTx         = "Postgres failed to begin transaction"
	ErrDevPostgresCommitTx        = "Postgres failed to commit transaction"
	ErrDevPostgresDuplicateKey    = "Postgres unique constraint violation"
	ErrDevRedisGet                = "Redis failed to get key"
	ErrDevRedisSet                = "Redis failed to set key"
	ErrDevRedisDelete             = "Redis failed to delete key"
	ErrDevScreenerContentNotFound = "Screener content file could not be read"
	ErrDevScreenerContentInvalid  = "Screener content file could not be parsed"
	ErrDevScoringFailed           = "Scoring engine failed to resolve domain scores"
	ErrDevSessionAlreadySubmitted = "Submission already exists for session"
	ErrDevInvalidInput            = "Invalid input"
)
