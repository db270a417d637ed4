package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/cast"

	"github.com/yutsuc/fsnd-trivia-api/internal/services"
)

var validate = validator.New()

// ValidationError rejects a request before it reaches a service. Status is
// the HTTP status the handler answers with.
type ValidationError struct {
	Status int
	Reason string
}

func (e *ValidationError) Error() string {
	return e.Reason
}

func invalid(status int, format string, args ...any) *ValidationError {
	return &ValidationError{Status: status, Reason: fmt.Sprintf(format, args...)}
}

// questionRequest is either SearchQuestionsRequest or CreateQuestionRequest.
type questionRequest interface {
	questionRequest()
}

type SearchQuestionsRequest struct {
	SearchTerm string `json:"searchTerm" example:"title"`
}

type CreateQuestionRequest struct {
	Question   string `json:"question" validate:"required" example:"What is the acceleration of gravity?"`
	Answer     string `json:"answer" validate:"required" example:"9.81 m/s2"`
	Difficulty int    `json:"difficulty" example:"3"`
	Category   uint   `json:"category" example:"1"`
}

func (SearchQuestionsRequest) questionRequest() {}
func (CreateQuestionRequest) questionRequest() {}

func (r CreateQuestionRequest) input() services.QuestionInput {
	return services.QuestionInput{
		Text:       r.Question,
		Answer:     r.Answer,
		CategoryID: r.Category,
		Difficulty: r.Difficulty,
	}
}

// decodeQuestionRequest picks the request variant by the presence of the
// searchTerm key. A present but empty or non-string term is a bad request;
// create payloads that fail coercion are unprocessable.
func decodeQuestionRequest(body map[string]any) (questionRequest, error) {
	if raw, ok := body["searchTerm"]; ok {
		term, isString := raw.(string)
		if !isString || term == "" {
			return nil, invalid(http.StatusBadRequest, "searchTerm must be a non-empty string")
		}
		return SearchQuestionsRequest{SearchTerm: term}, nil
	}

	var req CreateQuestionRequest
	var err error
	if req.Question, err = stringField(body, "question"); err != nil {
		return nil, err
	}
	if req.Answer, err = stringField(body, "answer"); err != nil {
		return nil, err
	}
	if req.Difficulty, err = intField(body, "difficulty"); err != nil {
		return nil, err
	}
	category, err := intField(body, "category")
	if err != nil {
		return nil, err
	}
	if category < 0 {
		return nil, invalid(http.StatusUnprocessableEntity, "category must not be negative")
	}
	req.Category = uint(category)

	if err := validate.Struct(req); err != nil {
		return nil, invalid(http.StatusUnprocessableEntity, "invalid question: %v", err)
	}
	return req, nil
}

func stringField(body map[string]any, key string) (string, error) {
	raw, ok := body[key]
	if !ok || raw == nil {
		return "", invalid(http.StatusUnprocessableEntity, "%s is required", key)
	}
	s, ok := raw.(string)
	if !ok {
		return "", invalid(http.StatusUnprocessableEntity, "%s must be a string", key)
	}
	return s, nil
}

func intField(body map[string]any, key string) (int, error) {
	raw, ok := body[key]
	if !ok || raw == nil {
		return 0, invalid(http.StatusUnprocessableEntity, "%s is required", key)
	}
	n, err := toInt(raw)
	if err != nil {
		return 0, invalid(http.StatusUnprocessableEntity, "%s: %v", key, err)
	}
	return n, nil
}

var (
	errNotInteger = errors.New("not an integer")
	errOutOfRange = errors.New("integer out of range")
)

// toInt accepts JSON numbers and base-10 numeric strings, surrounding spaces
// allowed. Fractional numbers are truncated. Values must fit the 32-bit
// integer columns.
func toInt(v any) (int, error) {
	switch t := v.(type) {
	case float64:
		if math.IsNaN(t) || t <= math.MinInt32-1 || t >= math.MaxInt32+1 {
			return 0, errOutOfRange
		}
		return cast.ToIntE(t)
	case string:
		n, err := strconv.ParseInt(strings.TrimSpace(t), 10, 32)
		if errors.Is(err, strconv.ErrRange) {
			return 0, errOutOfRange
		}
		if err != nil {
			return 0, errNotInteger
		}
		return int(n), nil
	default:
		return 0, errNotInteger
	}
}

// looseInt decodes a JSON number or numeric string, as sent by clients that
// key categories by their string id.
type looseInt int

func (n *looseInt) UnmarshalJSON(b []byte) error {
	var v any
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}
	i, err := toInt(v)
	if err != nil {
		return fmt.Errorf("%s: %w", b, err)
	}
	*n = looseInt(i)
	return nil
}

type QuizCategory struct {
	ID   *looseInt `json:"id" binding:"required" swaggertype:"integer" example:"1"`
	Type string    `json:"type" example:"Science"`
}

type QuizRequest struct {
	QuizCategory      *QuizCategory `json:"quiz_category" binding:"required"`
	PreviousQuestions []looseInt    `json:"previous_questions" swaggertype:"array,integer"`
}

// previous returns the played question ids. Negative ids cannot exist and are
// dropped.
func (r QuizRequest) previous() []uint {
	out := make([]uint, 0, len(r.PreviousQuestions))
	for _, id := range r.PreviousQuestions {
		if id >= 0 {
			out = append(out, uint(id))
		}
	}
	return out
}
