package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/yutsuc/fsnd-trivia-api/internal/models"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

var ErrQuestionNotFound = errors.New("question not found")

type QuestionService struct {
	db     *gorm.DB
	logger *zap.Logger
}

func NewQuestionService(db *gorm.DB, logger *zap.Logger) *QuestionService {
	return &QuestionService{db: db, logger: logger}
}

type QuestionInput struct {
	Text       string
	Answer     string
	CategoryID uint
	Difficulty int
}

// List returns every question ordered by id.
func (s *QuestionService) List(ctx context.Context) ([]models.Question, error) {
	var questions []models.Question
	if err := s.db.WithContext(ctx).Order("id ASC").Find(&questions).Error; err != nil {
		return nil, fmt.Errorf("list questions: %w", err)
	}
	return questions, nil
}

func (s *QuestionService) ListByCategory(ctx context.Context, categoryID uint) ([]models.Question, error) {
	var questions []models.Question
	err := s.db.WithContext(ctx).
		Where("category = ?", categoryID).
		Order("id ASC").
		Find(&questions).Error
	if err != nil {
		return nil, fmt.Errorf("list questions of category %d: %w", categoryID, err)
	}
	return questions, nil
}

// Search returns the questions whose text contains term, ignoring case.
// LIKE wildcards in term match literally.
func (s *QuestionService) Search(ctx context.Context, term string) ([]models.Question, error) {
	if s.db.Dialector.Name() != "postgres" {
		return s.searchFolded(ctx, term)
	}

	var questions []models.Question
	err := s.db.WithContext(ctx).
		Where(`question ILIKE ? ESCAPE '\'`, "%"+escapeLike(term)+"%").
		Order("id ASC").
		Find(&questions).Error
	if err != nil {
		return nil, fmt.Errorf("search questions: %w", err)
	}
	return questions, nil
}

// searchFolded matches in Go. SQLite's LOWER and LIKE only fold ASCII.
func (s *QuestionService) searchFolded(ctx context.Context, term string) ([]models.Question, error) {
	all, err := s.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("search questions: %w", err)
	}

	needle := strings.ToLower(term)
	questions := make([]models.Question, 0)
	for _, q := range all {
		if strings.Contains(strings.ToLower(q.Text), needle) {
			questions = append(questions, q)
		}
	}
	return questions, nil
}

func (s *QuestionService) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := s.db.WithContext(ctx).Model(&models.Question{}).Count(&count).Error; err != nil {
		return 0, fmt.Errorf("count questions: %w", err)
	}
	return count, nil
}

// Create stores a new question. The category id is stored as given; it is not
// checked against the categories table.
func (s *QuestionService) Create(ctx context.Context, input QuestionInput) (*models.Question, error) {
	question := models.Question{
		Text:       input.Text,
		Answer:     input.Answer,
		CategoryID: input.CategoryID,
		Difficulty: input.Difficulty,
	}
	if err := s.db.WithContext(ctx).Create(&question).Error; err != nil {
		s.logger.Error("failed to create question", zap.Error(err))
		return nil, fmt.Errorf("create question: %w", err)
	}
	return &question, nil
}

// Delete removes a question. A missing id, including one removed by a
// concurrent request, reports ErrQuestionNotFound.
func (s *QuestionService) Delete(ctx context.Context, id uint) error {
	result := s.db.WithContext(ctx).Delete(&models.Question{}, id)
	if result.Error != nil {
		s.logger.Error("failed to delete question", zap.Uint("question_id", id), zap.Error(result.Error))
		return fmt.Errorf("delete question %d: %w", id, result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrQuestionNotFound
	}
	return nil
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func escapeLike(s string) string {
	return likeEscaper.Replace(s)
}
