package questions

import (
	"context"
	"database/sql"

	"github.com/cperault/clinical-screener-backend/internal/app/contracts"
	"github.com/cperault/clinical-screener-backend/internal/app/models"
	"github.com/cperault/clinical-screener-backend/internal/pkg/exceptions"
	"github.com/cperault/clinical-screener-backend/internal/pkg/queries"
	"github.com/lib/pq"
)

type questionPostgresRepository struct {
	DB *sql.DB
}

func NewQuestionPostgresRepository(db *sql.DB) contracts.QuestionRepository {
	return &questionPostgresRepository{
		DB: db,
	}
}

func (repo *questionPostgresRepository) FindAll(ctx context.Context) ([]models.Question, error) {
	rows, err := repo.DB.QueryContext(ctx, queries.GetAllQuestions)
	if err != nil {
		return nil, exceptions.ErrPostgresDBQueryData(err)
	}
	defer rows.Close()

	var questions []models.Question
	for rows.Next() {
		var model models.Question
		if err := rows.Scan(
			&model.QuestionID,
			&model.Title,
			&model.Domain,
		); err != nil {
			return nil, exceptions.ErrPostgresDBScanData(err)
		}
		questions = append(questions, model)
	}

	if err := rows.Err(); err != nil {
		return nil, exceptions.ErrPostgresDBQueryData(err)
	}

	return questions, nil
}

func (repo *questionPostgresRepository) FindDomainsByQuestionIDs(ctx context.Context, questionIDs []string) (map[string]string, error) {
	rows, err := repo.DB.QueryContext(ctx, queries.GetDomainsByQuestionIDs, pq.Array(questionIDs))
	if err != nil {
		return nil, exceptions.ErrPostgresDBQueryData(err)
	}
	defer rows.Close()

	domainsByQuestionID := make(map[string]string, len(questionIDs))
	for rows.Next() {
		var questionID, domain string
		if err := rows.Scan(&questionID, &domain); err != nil {
			return nil, exceptions.ErrPostgresDBScanData(err)
		}
		domainsByQuestionID[questionID] = domain
	}

	if err := rows.Err(); err != nil {
		return nil, exceptions.ErrPostgresDBQueryData(err)
	}

	return domainsByQuestionID, nil
}
