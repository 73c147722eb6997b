package main

import (
	"database/sql"
	"log"
	"os"
	"path/filepath"

	"github.com/cperault/clinical-screener-backend/internal/app/config"
	"github.com/cperault/clinical-screener-backend/internal/app/drivers/database"
	"github.com/goccy/go-json"
	migrate "github.com/rubenv/sql-migrate"
)

type seedQuestion struct {
	QuestionID string `json:"question_id"`
	Title      string `json:"title"`
}

type seedQuestionsFile struct {
	Questions []seedQuestion `json:"questions"`
}

func main() {
	driverConfig := config.NewDriverConfig()
	db := database.NewPostgresDB(driverConfig)
	defer db.Close()

	runMigrations(db)
	seedCatalog(db)
}

func runMigrations(db *sql.DB) {
	wd, err := os.Getwd()
	if err != nil {
		log.Fatalf("Error getting working directory: %v", err)
	}

	migrations := &migrate.FileMigrationSource{
		Dir: filepath.Join(wd, "internal/migration"),
	}

	n, err := migrate.Exec(db, "postgres", migrations, migrate.Up)
	if err != nil {
		log.Fatalf("Error executing migration: %v", err)
	}

	log.Printf("Applied %d migrations!\n", n)
}

// seedCatalog loads the question catalog and its domain assignments from the
// data files. Reruns are safe: existing rows are left untouched.
func seedCatalog(db *sql.DB) {
	questionsData, err := os.ReadFile("data/questions.json")
	if err != nil {
		log.Fatalf("Error reading questions data: %v", err)
	}

	domainMapData, err := os.ReadFile("data/domain_map.json")
	if err != nil {
		log.Fatalf("Error reading domain map data: %v", err)
	}

	var questionsFile seedQuestionsFile
	if err := json.Unmarshal(questionsData, &questionsFile); err != nil {
		log.Fatalf("Error parsing questions data: %v", err)
	}

	var domainMap map[string]string
	if err := json.Unmarshal(domainMapData, &domainMap); err != nil {
		log.Fatalf("Error parsing domain map data: %v", err)
	}

	domainIDs := make(map[string]int)
	for _, domainName := range domainMap {
		if _, seeded := domainIDs[domainName]; seeded {
			continue
		}

		var domainID int
		err := db.QueryRow(
			`INSERT INTO domains (name) VALUES ($1) ON CONFLICT (name) DO NOTHING RETURNING id`,
			domainName,
		).Scan(&domainID)
		if err == sql.ErrNoRows {
			err = db.QueryRow(`SELECT id FROM domains WHERE name = $1`, domainName).Scan(&domainID)
		}
		if err != nil {
			log.Fatalf("Error seeding domain %q: %v", domainName, err)
		}
		domainIDs[domainName] = domainID
	}

	for _, question := range questionsFile.Questions {
		domainName, ok := domainMap[question.QuestionID]
		if !ok {
			log.Fatalf("Question %q has no domain assignment", question.QuestionID)
		}

		_, err := db.Exec(
			`INSERT INTO questions (question_id, title, domain_id) VALUES ($1, $2, $3)
			 ON CONFLICT (question_id) DO NOTHING`,
			question.QuestionID, question.Title, domainIDs[domainName],
		)
		if err != nil {
			log.Fatalf("Error seeding question %q: %v", question.QuestionID, err)
		}
	}

	log.Println("Database seeded successfully")
}
