package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/yutsuc/fsnd-trivia-api/internal/pagination"
	"github.com/yutsuc/fsnd-trivia-api/internal/services"

	"github.com/gin-gonic/gin"
)

type QuestionHandler struct {
	questions  *services.QuestionService
	categories *services.CategoryService
}

func NewQuestionHandler(questions *services.QuestionService, categories *services.CategoryService) *QuestionHandler {
	return &QuestionHandler{questions: questions, categories: categories}
}

// ListQuestions godoc
// @Summary      List questions
// @Description  Questions ordered by id, ten per page. Pages past the end are empty.
// @Tags         questions
// @Produce      json
// @Param        page query int false "Page number" default(1)
// @Success      200 {object} QuestionPageResponse
// @Failure      500 {object} ErrorResponse
// @Router       /api/questions [get]
func (h *QuestionHandler) ListQuestions(c *gin.Context) {
	ctx := c.Request.Context()

	questions, err := h.questions.List(ctx)
	if err != nil {
		internalError(c, err)
		return
	}

	types, err := h.categories.Types(ctx)
	if err != nil {
		internalError(c, err)
		return
	}

	c.JSON(http.StatusOK, QuestionPageResponse{
		Success:        true,
		Questions:      pagination.Page(questions, pagination.FromQuery(c.Query("page"))),
		TotalQuestions: len(questions),
		Categories:     types,
	})
}

// CreateOrSearchQuestions godoc
// @Summary      Create a question or search questions
// @Description  A body with searchTerm searches question text case-insensitively; any other body creates a question.
// @Tags         questions
// @Accept       json
// @Produce      json
// @Param        request body CreateQuestionRequest true "New question, or {\"searchTerm\": \"...\"}"
// @Param        page    query int false "Page of search results" default(1)
// @Success      200 {object} SearchResponse
// @Failure      400 {object} ErrorResponse
// @Failure      422 {object} ErrorResponse
// @Router       /api/questions [post]
func (h *QuestionHandler) CreateOrSearchQuestions(c *gin.Context) {
	var body map[string]any
	if err := c.ShouldBindJSON(&body); err != nil || body == nil {
		badRequest(c)
		return
	}

	req, err := decodeQuestionRequest(body)
	if err != nil {
		var verr *ValidationError
		if errors.As(err, &verr) && verr.Status == http.StatusBadRequest {
			badRequest(c)
			return
		}
		unprocessable(c, err)
		return
	}

	switch req := req.(type) {
	case SearchQuestionsRequest:
		h.search(c, req)
	case CreateQuestionRequest:
		h.create(c, req)
	}
}

func (h *QuestionHandler) search(c *gin.Context, req SearchQuestionsRequest) {
	questions, err := h.questions.Search(c.Request.Context(), req.SearchTerm)
	if err != nil {
		internalError(c, err)
		return
	}

	c.JSON(http.StatusOK, SearchResponse{
		Success:        true,
		Questions:      pagination.Page(questions, pagination.FromQuery(c.Query("page"))),
		TotalQuestions: len(questions),
	})
}

func (h *QuestionHandler) create(c *gin.Context, req CreateQuestionRequest) {
	if _, err := h.questions.Create(c.Request.Context(), req.input()); err != nil {
		unprocessable(c, err)
		return
	}

	c.JSON(http.StatusOK, SuccessResponse{Success: true})
}

// DeleteQuestion godoc
// @Summary      Delete a question
// @Tags         questions
// @Produce      json
// @Param        id path int true "Question ID"
// @Success      200 {object} DeleteResponse
// @Failure      422 {object} ErrorResponse
// @Router       /api/questions/{id} [delete]
func (h *QuestionHandler) DeleteQuestion(c *gin.Context) {
	questionID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		unprocessable(c, nil)
		return
	}

	err = h.questions.Delete(c.Request.Context(), uint(questionID))
	if errors.Is(err, services.ErrQuestionNotFound) {
		unprocessable(c, nil)
		return
	}
	if err != nil {
		unprocessable(c, err)
		return
	}

	c.JSON(http.StatusOK, DeleteResponse{Success: true, QuestionID: uint(questionID)})
}
