package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/yutsuc/fsnd-trivia-api/internal/pagination"
	"github.com/yutsuc/fsnd-trivia-api/internal/services"

	"github.com/gin-gonic/gin"
)

type CategoryHandler struct {
	categories *services.CategoryService
	questions  *services.QuestionService
}

func NewCategoryHandler(categories *services.CategoryService, questions *services.QuestionService) *CategoryHandler {
	return &CategoryHandler{categories: categories, questions: questions}
}

// ListCategories godoc
// @Summary      List categories
// @Description  Every category as an id to type mapping. An empty store is a success with an empty mapping.
// @Tags         categories
// @Produce      json
// @Success      200 {object} CategoriesResponse
// @Failure      500 {object} ErrorResponse
// @Router       /api/categories [get]
func (h *CategoryHandler) ListCategories(c *gin.Context) {
	types, err := h.categories.Types(c.Request.Context())
	if err != nil {
		internalError(c, err)
		return
	}

	c.JSON(http.StatusOK, CategoriesResponse{Success: true, Categories: types})
}

// ListCategoryQuestions godoc
// @Summary      List questions of a category
// @Tags         categories
// @Produce      json
// @Param        id   path  int true  "Category ID"
// @Param        page query int false "Page number" default(1)
// @Success      200 {object} CategoryQuestionsResponse
// @Failure      404 {object} ErrorResponse
// @Router       /api/categories/{id}/questions [get]
func (h *CategoryHandler) ListCategoryQuestions(c *gin.Context) {
	categoryID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		notFound(c)
		return
	}

	ctx := c.Request.Context()
	category, err := h.categories.Get(ctx, uint(categoryID))
	if errors.Is(err, services.ErrCategoryNotFound) {
		notFound(c)
		return
	}
	if err != nil {
		internalError(c, err)
		return
	}

	questions, err := h.questions.ListByCategory(ctx, category.ID)
	if err != nil {
		internalError(c, err)
		return
	}

	c.JSON(http.StatusOK, CategoryQuestionsResponse{
		Success:         true,
		Questions:       pagination.Page(questions, pagination.FromQuery(c.Query("page"))),
		TotalQuestions:  len(questions),
		CurrentCategory: *category,
	})
}
