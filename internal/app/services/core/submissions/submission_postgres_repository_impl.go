package submissions

import (
	"context"
	"database/sql"
	"errors"

	"github.com/cperault/clinical-screener-backend/internal/app/contracts"
	"github.com/cperault/clinical-screener-backend/internal/app/models"
	"github.com/cperault/clinical-screener-backend/internal/pkg/exceptions"
	"github.com/cperault/clinical-screener-backend/internal/pkg/queries"
)

type submissionPostgresRepository struct {
	DB *sql.DB
}

func NewSubmissionPostgresRepository(db *sql.DB) contracts.SubmissionRepository {
	return &submissionPostgresRepository{
		DB: db,
	}
}

func (repo *submissionPostgresRepository) FindAllAnswers(ctx context.Context) ([]models.Answer, error) {
	rows, err := repo.DB.QueryContext(ctx, queries.GetAllAnswers)
	if err != nil {
		return nil, exceptions.ErrPostgresDBQueryData(err)
	}
	defer rows.Close()

	var answers []models.Answer
	for rows.Next() {
		var model models.Answer
		if err := rows.Scan(
			&model.ID,
			&model.SubmissionID,
			&model.QuestionID,
			&model.Value,
			&model.CreatedAt,
		); err != nil {
			return nil, exceptions.ErrPostgresDBScanData(err)
		}
		answers = append(answers, model)
	}

	if err := rows.Err(); err != nil {
		return nil, exceptions.ErrPostgresDBQueryData(err)
	}

	return answers, nil
}

func (repo *submissionPostgresRepository) BeginTx(ctx context.Context) (contracts.SubmissionTxClient, error) {
	tx, err := repo.DB.BeginTx(ctx, nil)
	if err != nil {
		return nil, exceptions.ErrPostgresDBBeginTx(err)
	}
	return &submissionTxClient{tx: tx}, nil
}

// submissionTxClient wraps one *sql.Tx. Finishing the transaction twice is
// harmless: database/sql returns sql.ErrTxDone, which Rollback swallows.
type submissionTxClient struct {
	tx *sql.Tx
}

func (c *submissionTxClient) FindSubmissionBySessionID(ctx context.Context, sessionID string) (*models.Submission, error) {
	var submission models.Submission
	err := c.tx.QueryRowContext(ctx, queries.GetSubmissionBySessionID, sessionID).Scan(&submission.ID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, exceptions.ErrPostgresDBQueryData(err)
	}
	submission.SessionID = sessionID
	return &submission, nil
}

func (c *submissionTxClient) InsertSubmission(ctx context.Context, sessionID string, clinicianNotes *string) (string, error) {
	var notes sql.NullString
	if clinicianNotes != nil {
		notes = sql.NullString{String: *clinicianNotes, Valid: true}
	}

	var submissionID string
	err := c.tx.QueryRowContext(ctx, queries.InsertSubmission, sessionID, notes).Scan(&submissionID)
	if err != nil {
		if exceptions.IsUniqueViolation(err) {
			// The unique constraint on session_id is the final authority for
			// duplicate submissions; a race loser lands here.
			return "", exceptions.ErrScreenerAlreadyCompleted(err)
		}
		return "", exceptions.ErrPostgresDBInsertData(err)
	}
	return submissionID, nil
}

func (c *submissionTxClient) InsertAnswer(ctx context.Context, submissionID, questionID string, value int) error {
	if _, err := c.tx.ExecContext(ctx, queries.InsertAnswer, submissionID, questionID, value); err != nil {
		return exceptions.ErrPostgresDBInsertData(err)
	}
	return nil
}

func (c *submissionTxClient) Commit() error {
	if err := c.tx.Commit(); err != nil {
		return exceptions.ErrPostgresDBCommitTx(err)
	}
	return nil
}

func (c *submissionTxClient) Rollback() error {
	err := c.tx.Rollback()
	if err != nil && !errors.Is(err, sql.ErrTxDone) {
		return err
	}
	return nil
}
