package screeners

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/cperault/clinical-screener-backend/internal/app/config"
	"github.com/cperault/clinical-screener-backend/internal/pkg/exceptions"
	"github.com/stretchr/testify/assert"
)

const screenerFixture = `{
	"id": "abcd-1234",
	"name": "BPDS",
	"disorder": "Cross-Cutting",
	"full_name": "Blueprint Diagnostic Screener",
	"content": {
		"display_name": "BDS",
		"sections": [
			{
				"type": "standard",
				"title": "During the past TWO (2) WEEKS, how much (or how often) have you been bothered by the following problems?",
				"answers": [
					{"title": "Not at all", "value": 0},
					{"title": "Rare, less than a day or two", "value": 1}
				],
				"questions": [
					{"question_id": "question_a", "title": "Little interest or pleasure in doing things?"},
					{"question_id": "question_b", "title": "Feeling down, depressed, or hopeless?"}
				]
			}
		]
	}
}`

func configWithContentPath(path string) *config.InternalConfig {
	return &config.InternalConfig{
		App: config.App{
			ScreenerContentPath: path,
		},
	}
}

func TestScreenerUsecase_GetScreener(t *testing.T) {
	t.Run("loads and parses the screener document", func(t *testing.T) {
		contentPath := filepath.Join(t.TempDir(), "screener.json")
		assert.NoError(t, os.WriteFile(contentPath, []byte(screenerFixture), 0o644))

		usecase := NewScreenerUsecase(configWithContentPath(contentPath))

		screener, err := usecase.GetScreener(context.Background())

		assert.NoError(t, err)
		assert.Equal(t, "abcd-1234", screener.ID)
		assert.Equal(t, "BPDS", screener.Name)
		assert.Equal(t, "BDS", screener.Content.DisplayName)
		assert.Len(t, screener.Content.Sections, 1)
		assert.Len(t, screener.Content.Sections[0].Questions, 2)
		assert.Equal(t, "question_a", screener.Content.Sections[0].Questions[0].QuestionID)
	})

	t.Run("serves the cached document after the file is gone", func(t *testing.T) {
		contentPath := filepath.Join(t.TempDir(), "screener.json")
		assert.NoError(t, os.WriteFile(contentPath, []byte(screenerFixture), 0o644))

		usecase := NewScreenerUsecase(configWithContentPath(contentPath))

		first, err := usecase.GetScreener(context.Background())
		assert.NoError(t, err)

		assert.NoError(t, os.Remove(contentPath))

		second, err := usecase.GetScreener(context.Background())
		assert.NoError(t, err)
		assert.Same(t, first, second)
	})

	t.Run("reports a missing file and recovers once it appears", func(t *testing.T) {
		contentPath := filepath.Join(t.TempDir(), "screener.json")

		usecase := NewScreenerUsecase(configWithContentPath(contentPath))

		screener, err := usecase.GetScreener(context.Background())
		assert.Nil(t, screener)

		var customErr *exceptions.CustomError
		assert.ErrorAs(t, err, &customErr)
		assert.Equal(t, 500, customErr.StatusCode)

		assert.NoError(t, os.WriteFile(contentPath, []byte(screenerFixture), 0o644))

		screener, err = usecase.GetScreener(context.Background())
		assert.NoError(t, err)
		assert.Equal(t, "abcd-1234", screener.ID)
	})

	t.Run("rejects a malformed document", func(t *testing.T) {
		contentPath := filepath.Join(t.TempDir(), "screener.json")
		assert.NoError(t, os.WriteFile(contentPath, []byte(`{"id": `), 0o644))

		usecase := NewScreenerUsecase(configWithContentPath(contentPath))

		screener, err := usecase.GetScreener(context.Background())
		assert.Nil(t, screener)

		var customErr *exceptions.CustomError
		assert.ErrorAs(t, err, &customErr)
		assert.Equal(t, 500, customErr.StatusCode)
	})
}
