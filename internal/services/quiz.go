package services

import (
	"context"
	"errors"
	"fmt"
	"math/rand/v2"

	"github.com/yutsuc/fsnd-trivia-api/internal/models"

	"gorm.io/gorm"
)

// ErrNoQuestionsLeft means every candidate question has already been played.
var ErrNoQuestionsLeft = errors.New("no questions left")

type QuizService struct {
	db         *gorm.DB
	categories *CategoryService
	intn       func(n int) int
}

type QuizOption func(*QuizService)

// WithIntn replaces the random source used to pick a question. intn must
// return a value in [0, n) and be safe for concurrent use.
func WithIntn(intn func(n int) int) QuizOption {
	return func(s *QuizService) {
		s.intn = intn
	}
}

func NewQuizService(db *gorm.DB, categories *CategoryService, opts ...QuizOption) *QuizService {
	s := &QuizService{db: db, categories: categories, intn: rand.IntN}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// NextQuestion picks a random question that is not in previous. A categoryID
// of zero draws from every category.
func (s *QuizService) NextQuestion(ctx context.Context, categoryID uint, previous []uint) (*models.Question, error) {
	query := s.db.WithContext(ctx).Model(&models.Question{})

	if categoryID != 0 {
		if _, err := s.categories.Get(ctx, categoryID); err != nil {
			return nil, err
		}
		query = query.Where("category = ?", categoryID)
	}
	if len(previous) > 0 {
		query = query.Where("id NOT IN ?", previous)
	}

	var pool []models.Question
	if err := query.Order("id ASC").Find(&pool).Error; err != nil {
		return nil, fmt.Errorf("load quiz pool: %w", err)
	}
	if len(pool) == 0 {
		return nil, ErrNoQuestionsLeft
	}

	return &pool[s.intn(len(pool))], nil
}
