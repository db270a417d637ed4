package handlers

import (
	"errors"
	"net/http"

	"github.com/yutsuc/fsnd-trivia-api/internal/services"

	"github.com/gin-gonic/gin"
)

type QuizHandler struct {
	quiz *services.QuizService
}

func NewQuizHandler(quiz *services.QuizService) *QuizHandler {
	return &QuizHandler{quiz: quiz}
}

// NextQuestion godoc
// @Summary      Pick the next quiz question
// @Description  A random question not yet played. Category id 0 plays every category. The question is omitted once all are played.
// @Tags         quizzes
// @Accept       json
// @Produce      json
// @Param        request body QuizRequest true "Quiz state"
// @Success      200 {object} QuizResponse
// @Failure      400 {object} ErrorResponse
// @Router       /api/quizzes [post]
func (h *QuizHandler) NextQuestion(c *gin.Context) {
	var req QuizRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c)
		return
	}

	categoryID := int(*req.QuizCategory.ID)
	if categoryID < 0 {
		badRequest(c)
		return
	}

	question, err := h.quiz.NextQuestion(c.Request.Context(), uint(categoryID), req.previous())
	switch {
	case errors.Is(err, services.ErrNoQuestionsLeft):
		c.JSON(http.StatusOK, QuizResponse{Success: true})
	case errors.Is(err, services.ErrCategoryNotFound):
		badRequest(c)
	case err != nil:
		internalError(c, err)
	default:
		c.JSON(http.StatusOK, QuizResponse{Success: true, Question: question})
	}
}
