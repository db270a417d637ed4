package database

import (
	"context"
	"fmt"

	"github.com/yutsuc/fsnd-trivia-api/internal/models"

	"gorm.io/gorm"
)

var seedCategories = []models.Category{
	{ID: 1, Type: "Science"},
	{ID: 2, Type: "Art"},
	{ID: 3, Type: "Geography"},
	{ID: 4, Type: "History"},
	{ID: 5, Type: "Entertainment"},
	{ID: 6, Type: "Sports"},
}

var seedQuestions = []models.Question{
	{ID: 2, Text: "What movie earned Tom Hanks his third straight Oscar nomination, in 1996?", Answer: "Apollo 13", CategoryID: 5, Difficulty: 4},
	{ID: 4, Text: "What actor did author Anne Rice first denounce, then praise in the role of her beloved Lestat?", Answer: "Tom Cruise", CategoryID: 5, Difficulty: 4},
	{ID: 5, Text: "Whose autobiography is entitled 'I Know Why the Caged Bird Sings'?", Answer: "Maya Angelou", CategoryID: 4, Difficulty: 2},
	{ID: 6, Text: "What was the title of the 1990 fantasy directed by Tim Burton about a young man with multi-bladed appendages?", Answer: "Edward Scissorhands", CategoryID: 5, Difficulty: 3},
	{ID: 9, Text: "What boxer's original name is Cassius Clay?", Answer: "Muhammad Ali", CategoryID: 4, Difficulty: 1},
	{ID: 10, Text: "Which is the only team to play in every soccer World Cup tournament?", Answer: "Brazil", CategoryID: 6, Difficulty: 3},
	{ID: 11, Text: "Which country won the first ever soccer World Cup in 1930?", Answer: "Uruguay", CategoryID: 6, Difficulty: 4},
	{ID: 12, Text: "Who invented Peanut Butter?", Answer: "George Washington Carver", CategoryID: 4, Difficulty: 2},
	{ID: 13, Text: "What is the largest lake in Africa?", Answer: "Lake Victoria", CategoryID: 3, Difficulty: 2},
	{ID: 14, Text: "In which royal palace would you find the Hall of Mirrors?", Answer: "The Palace of Versailles", CategoryID: 3, Difficulty: 3},
	{ID: 15, Text: "The Taj Mahal is located in which Indian city?", Answer: "Agra", CategoryID: 3, Difficulty: 2},
	{ID: 16, Text: "Which Dutch graphic artist–initials M C was a creator of optical illusions?", Answer: "Escher", CategoryID: 2, Difficulty: 1},
	{ID: 17, Text: "La Giaconda is better known as what?", Answer: "Mona Lisa", CategoryID: 2, Difficulty: 3},
	{ID: 18, Text: "How many paintings did Van Gogh sell in his lifetime?", Answer: "One", CategoryID: 2, Difficulty: 4},
	{ID: 19, Text: "Which American artist was a pioneer of Abstract Expressionism, and a leading exponent of action painting?", Answer: "Jackson Pollock", CategoryID: 2, Difficulty: 2},
	{ID: 20, Text: "What is the heaviest organ in the human body?", Answer: "The Liver", CategoryID: 1, Difficulty: 4},
	{ID: 21, Text: "Who discovered penicillin?", Answer: "Alexander Fleming", CategoryID: 1, Difficulty: 3},
	{ID: 22, Text: "Hematology is a branch of medicine involving the study of what?", Answer: "Blood", CategoryID: 1, Difficulty: 4},
	{ID: 23, Text: "Which dung beetle was worshipped by the ancient Egyptians?", Answer: "Scarab", CategoryID: 4, Difficulty: 4},
}

// Seed loads the reference categories and questions. Tables that already hold
// rows are left untouched, so Seed is safe to run on every start.
func Seed(ctx context.Context, db *gorm.DB) error {
	return db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := seedTable(tx, "categories", cloneSlice(seedCategories)); err != nil {
			return fmt.Errorf("seed categories: %w", err)
		}
		if err := seedTable(tx, "questions", cloneSlice(seedQuestions)); err != nil {
			return fmt.Errorf("seed questions: %w", err)
		}
		return nil
	})
}

func seedTable[T any](tx *gorm.DB, table string, rows []T) error {
	var count int64
	if err := tx.Table(table).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}
	if err := tx.Create(&rows).Error; err != nil {
		return err
	}

	// Rows were inserted with explicit ids; move the postgres sequence past them.
	if tx.Dialector.Name() == "postgres" {
		if err := tx.Exec(fmt.Sprintf(
			"SELECT setval(pg_get_serial_sequence('%[1]s', 'id'), (SELECT MAX(id) FROM %[1]s))", table,
		)).Error; err != nil {
			return err
		}
	}
	return nil
}

// cloneSlice keeps the package-level fixture free of the values gorm writes back.
func cloneSlice[T any](in []T) []T {
	return append([]T(nil), in...)
}
