package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"pracademy/internal/errors"
	"pracademy/internal/model"
)

func newTestContext(t *testing.T, method, target, body string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()
	e := echo.New()
	e.Validator = newTestValidator()

	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestTutorialHandler_GetInvalidID(t *testing.T) {
	mockService := new(MockTutorialService)
	h := NewTutorialHandler(mockService)

	c, _ := newTestContext(t, http.MethodGet, "/api/tutorials/abc", "")
	c.SetParamNames("id")
	c.SetParamValues("abc")

	err := h.Get(c)

	httpErr, ok := err.(*echo.HTTPError)
	require.True(t, ok)
	assert.Equal(t, http.StatusBadRequest, httpErr.Code)
	resp, ok := httpErr.Message.(errors.ErrorResponse)
	require.True(t, ok)
	assert.Equal(t, "INVALID_ID", resp.Code)
	mockService.AssertNotCalled(t, "Get")
}

func TestTutorialHandler_GetMissing(t *testing.T) {
	mockService := new(MockTutorialService)
	mockService.On("Get", mock.Anything, uint(42)).Return(nil, errors.ErrTutorialNotFound)
	h := NewTutorialHandler(mockService)

	c, _ := newTestContext(t, http.MethodGet, "/api/tutorials/42", "")
	c.SetParamNames("id")
	c.SetParamValues("42")

	err := h.Get(c)

	httpErr, ok := err.(*echo.HTTPError)
	require.True(t, ok)
	assert.Equal(t, http.StatusNotFound, httpErr.Code)
	mockService.AssertExpectations(t)
}

func TestTutorialHandler_GetSuccess(t *testing.T) {
	mockService := new(MockTutorialService)
	mockService.On("Get", mock.Anything, uint(1)).
		Return(&model.Tutorial{ID: 1, Title: "생성형 AI 이해하기", Views: 12}, nil)
	h := NewTutorialHandler(mockService)

	c, rec := newTestContext(t, http.MethodGet, "/api/tutorials/1", "")
	c.SetParamNames("id")
	c.SetParamValues("1")

	require.NoError(t, h.Get(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "생성형 AI 이해하기", body["title"])
	assert.Equal(t, float64(12), body["views"])
}

func TestTutorialHandler_CreateValidation(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{
			name: "missing videoUrl",
			body: `{"title":"제목","category":"기초","difficulty":"초급"}`,
		},
		{
			name: "missing title",
			body: `{"videoUrl":"https://cdn.example.com/a.mp4","category":"기초","difficulty":"초급"}`,
		},
		{
			name: "negative duration",
			body: `{"title":"제목","videoUrl":"https://cdn.example.com/a.mp4","category":"기초","difficulty":"초급","duration":-5}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService := new(MockTutorialService)
			h := NewTutorialHandler(mockService)

			c, _ := newTestContext(t, http.MethodPost, "/api/tutorials", tt.body)
			err := h.Create(c)

			httpErr, ok := err.(*echo.HTTPError)
			require.True(t, ok)
			assert.Equal(t, http.StatusBadRequest, httpErr.Code)
			mockService.AssertNotCalled(t, "Create")
		})
	}
}

func TestTutorialHandler_CreateDefaultsPublished(t *testing.T) {
	mockService := new(MockTutorialService)
	mockService.On("Create", mock.Anything, mock.MatchedBy(func(tu *model.Tutorial) bool {
		return tu.Published && tu.Title == "제목"
	})).Return(nil)
	h := NewTutorialHandler(mockService)

	body := `{"title":"제목","videoUrl":"https://cdn.example.com/a.mp4","category":"기초","difficulty":"초급"}`
	c, rec := newTestContext(t, http.MethodPost, "/api/tutorials", body)

	require.NoError(t, h.Create(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	mockService.AssertExpectations(t)
}

func TestTutorialHandler_Delete(t *testing.T) {
	mockService := new(MockTutorialService)
	mockService.On("Delete", mock.Anything, uint(3)).Return(nil)
	h := NewTutorialHandler(mockService)

	c, rec := newTestContext(t, http.MethodDelete, "/api/tutorials/3", "")
	c.SetParamNames("id")
	c.SetParamValues("3")

	require.NoError(t, h.Delete(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	var body MessageResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "튜토리얼이 삭제되었습니다.", body.Message)
	mockService.AssertExpectations(t)
}
