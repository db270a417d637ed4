package handlers

import "github.com/yutsuc/fsnd-trivia-api/internal/models"

// Type aliases so swag can resolve models in annotations.
type Category = models.Category
type Question = models.Question

// emptyObject renders as {} for the placeholder current category.
type emptyObject struct{}

type SuccessResponse struct {
	Success bool `json:"success" example:"true"`
}

type CategoriesResponse struct {
	Success    bool            `json:"success" example:"true"`
	Categories map[uint]string `json:"categories"`
}

type QuestionPageResponse struct {
	Success         bool            `json:"success" example:"true"`
	Questions       []Question      `json:"questions"`
	TotalQuestions  int             `json:"total_questions" example:"19"`
	Categories      map[uint]string `json:"categories"`
	CurrentCategory emptyObject     `json:"current_category" swaggertype:"object"`
}

type SearchResponse struct {
	Success         bool        `json:"success" example:"true"`
	Questions       []Question  `json:"questions"`
	TotalQuestions  int         `json:"total_questions" example:"2"`
	CurrentCategory emptyObject `json:"current_category" swaggertype:"object"`
}

type CategoryQuestionsResponse struct {
	Success         bool       `json:"success" example:"true"`
	Questions       []Question `json:"questions"`
	TotalQuestions  int        `json:"total_questions" example:"3"`
	CurrentCategory Category   `json:"current_category"`
}

type DeleteResponse struct {
	Success    bool `json:"success" example:"true"`
	QuestionID uint `json:"question_id" example:"2"`
}

type QuizResponse struct {
	Success  bool      `json:"success" example:"true"`
	Question *Question `json:"question,omitempty"`
}
