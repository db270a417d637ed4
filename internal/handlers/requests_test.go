package handlers

import (
	"encoding/json"
	"math"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decodeBody(t *testing.T, raw string) map[string]any {
	t.Helper()
	var body map[string]any
	require.NoError(t, json.Unmarshal([]byte(raw), &body))
	return body
}

func TestDecodeSearchRequest(t *testing.T) {
	req, err := decodeQuestionRequest(decodeBody(t, `{"searchTerm": "title", "question": "ignored"}`))
	require.NoError(t, err)
	assert.Equal(t, SearchQuestionsRequest{SearchTerm: "title"}, req)
}

func TestDecodeSearchRequestRejectsEmptyTerm(t *testing.T) {
	for _, raw := range []string{`{"searchTerm": ""}`, `{"searchTerm": null}`, `{"searchTerm": 3}`} {
		_, err := decodeQuestionRequest(decodeBody(t, raw))

		var verr *ValidationError
		require.ErrorAs(t, err, &verr, raw)
		assert.Equal(t, http.StatusBadRequest, verr.Status, raw)
	}
}

func TestDecodeCreateRequest(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want CreateQuestionRequest
	}{
		{
			name: "numbers",
			raw:  `{"question": "Q?", "answer": "A", "difficulty": 3, "category": 1}`,
			want: CreateQuestionRequest{Question: "Q?", Answer: "A", Difficulty: 3, Category: 1},
		},
		{
			name: "numeric strings",
			raw:  `{"question": "Q?", "answer": "A", "difficulty": "4", "category": "2"}`,
			want: CreateQuestionRequest{Question: "Q?", Answer: "A", Difficulty: 4, Category: 2},
		},
		{
			name: "fraction truncated",
			raw:  `{"question": "Q?", "answer": "A", "difficulty": 2.7, "category": 6}`,
			want: CreateQuestionRequest{Question: "Q?", Answer: "A", Difficulty: 2, Category: 6},
		},
		{
			name: "leading zero is decimal",
			raw:  `{"question": "Q?", "answer": "A", "difficulty": "010", "category": "05"}`,
			want: CreateQuestionRequest{Question: "Q?", Answer: "A", Difficulty: 10, Category: 5},
		},
		{
			name: "surrounding spaces",
			raw:  `{"question": "Q?", "answer": "A", "difficulty": " 3", "category": "+1 "}`,
			want: CreateQuestionRequest{Question: "Q?", Answer: "A", Difficulty: 3, Category: 1},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req, err := decodeQuestionRequest(decodeBody(t, tt.raw))
			require.NoError(t, err)
			assert.Equal(t, tt.want, req)
		})
	}
}

func TestDecodeCreateRequestUnprocessable(t *testing.T) {
	tests := []string{
		`{}`,
		`{"question": "Q?", "answer": "A", "difficulty": "Three", "category": 1}`,
		`{"question": "Q?", "answer": "A", "difficulty": "", "category": 1}`,
		`{"question": "Q?", "answer": "A", "difficulty": true, "category": 1}`,
		`{"question": "Q?", "answer": "A", "difficulty": 3}`,
		`{"question": "Q?", "answer": "A", "difficulty": 3, "category": -4}`,
		`{"question": "Q?", "difficulty": 3, "category": 1}`,
		`{"question": 7, "answer": "A", "difficulty": 3, "category": 1}`,
		`{"question": "", "answer": "A", "difficulty": 3, "category": 1}`,
		`{"question": "Q?", "answer": "A", "difficulty": "0x1F", "category": 1}`,
		`{"question": "Q?", "answer": "A", "difficulty": "0b11", "category": 1}`,
		`{"question": "Q?", "answer": "A", "difficulty": "1_0", "category": 1}`,
		`{"question": "Q?", "answer": "A", "difficulty": "3.0", "category": 1}`,
		`{"question": "Q?", "answer": "A", "difficulty": 1e30, "category": 1}`,
		`{"question": "Q?", "answer": "A", "difficulty": "99999999999", "category": 1}`,
		`{"question": "Q?", "answer": "A", "difficulty": 3, "category": 2147483648}`,
	}

	for _, raw := range tests {
		_, err := decodeQuestionRequest(decodeBody(t, raw))

		var verr *ValidationError
		require.ErrorAs(t, err, &verr, raw)
		assert.Equal(t, http.StatusUnprocessableEntity, verr.Status, raw)
	}
}

func TestQuizRequestDecoding(t *testing.T) {
	var req QuizRequest
	raw := `{"quiz_category": {"id": "2", "type": "Art"}, "previous_questions": [16, "17", -1]}`
	require.NoError(t, json.Unmarshal([]byte(raw), &req))

	require.NotNil(t, req.QuizCategory)
	require.NotNil(t, req.QuizCategory.ID)
	assert.Equal(t, looseInt(2), *req.QuizCategory.ID)
	assert.Equal(t, []uint{16, 17}, req.previous())
}

func TestQuizRequestLeadingZeroIsDecimal(t *testing.T) {
	var req QuizRequest
	require.NoError(t, json.Unmarshal([]byte(`{"quiz_category": {"id": "010"}}`), &req))
	assert.Equal(t, looseInt(10), *req.QuizCategory.ID)
}

func TestQuizRequestRejectsNonInteger(t *testing.T) {
	for _, id := range []string{`"science"`, `"0x8"`, `1e30`} {
		var req QuizRequest
		err := json.Unmarshal([]byte(`{"quiz_category": {"id": `+id+`}}`), &req)
		assert.Error(t, err, id)
	}
}

func TestToInt(t *testing.T) {
	tests := []struct {
		in      any
		want    int
		wantErr error
	}{
		{in: float64(7), want: 7},
		{in: 2.9, want: 2},
		{in: -2.9, want: -2},
		{in: float64(math.MaxInt32), want: math.MaxInt32},
		{in: "010", want: 10},
		{in: " 42 ", want: 42},
		{in: "-3", want: -3},
		{in: float64(math.MaxInt32) + 1, wantErr: errOutOfRange},
		{in: 1e30, wantErr: errOutOfRange},
		{in: "2147483648", wantErr: errOutOfRange},
		{in: "0x1F", wantErr: errNotInteger},
		{in: "0o17", wantErr: errNotInteger},
		{in: "1_000", wantErr: errNotInteger},
		{in: "", wantErr: errNotInteger},
		{in: true, wantErr: errNotInteger},
	}

	for _, tt := range tests {
		got, err := toInt(tt.in)
		if tt.wantErr != nil {
			assert.ErrorIs(t, err, tt.wantErr, "%v", tt.in)
			continue
		}
		require.NoError(t, err, "%v", tt.in)
		assert.Equal(t, tt.want, got, "%v", tt.in)
	}
}
