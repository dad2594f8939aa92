package handlers_test

import (
	"bytes"
	"io"
	"mime/multipart"
	"net/http"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"langy/internal/model"
)

func TestWordHandler_GetWords(t *testing.T) {
	userID := uuid.New()
	categoryID := uuid.New()

	testCases := []struct {
		name      string
		path      string
		setupMock func(app *testApp)
		expect    httpResponseExpectations
		wantCount int
	}{
		{
			name: "正常系: デフォルトのlimitで取得",
			path: "/api/v1/words",
			setupMock: func(app *testApp) {
				app.vocabulary.On("ListWords", mock.Anything, userID, model.WordListFilter{Limit: 50}).
					Return([]*model.VocabularyEntry{{WordID: uuid.New(), Original: "hello", Translation: "hola"}}, nil).Once()
			},
			expect:    httpResponseExpectations{ExpectedCode: http.StatusOK},
			wantCount: 1,
		},
		{
			name: "正常系: カテゴリとlimitで絞り込み",
			path: "/api/v1/words?category_id=" + categoryID.String() + "&limit=10",
			setupMock: func(app *testApp) {
				app.vocabulary.On("ListWords", mock.Anything, userID, model.WordListFilter{CategoryID: &categoryID, Limit: 10}).
					Return(nil, nil).Once()
			},
			expect:    httpResponseExpectations{ExpectedCode: http.StatusOK},
			wantCount: 0,
		},
		{
			name:   "異常系: limitが範囲外",
			path:   "/api/v1/words?limit=0",
			expect: httpResponseExpectations{ExpectedCode: http.StatusBadRequest, ExpectedErrorCode: "VALIDATION_ERROR"},
		},
		{
			name:   "異常系: category_idがUUIDでない",
			path:   "/api/v1/words?category_id=abc",
			expect: httpResponseExpectations{ExpectedCode: http.StatusBadRequest, ExpectedErrorCode: "VALIDATION_ERROR"},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			app := newTestApp(t)
			if tc.setupMock != nil {
				tc.setupMock(app)
			}
			_, body := sendRequest(t, app.server, httpRequestDetails{
				Method:  http.MethodGet,
				Path:    tc.path,
				Headers: userHeader(userID),
			}, tc.expect)

			if tc.expect.ExpectedCode == http.StatusOK {
				var words []*model.VocabularyEntry
				decodeBody(t, body, &words)
				assert.NotNil(t, words)
				assert.Len(t, words, tc.wantCount)
			}
		})
	}
}

func TestWordHandler_PostWord(t *testing.T) {
	userID := uuid.New()
	validReq := model.CreateWordRequest{Original: "cat", Translation: "gato", TargetLanguage: "es"}

	testCases := []struct {
		name      string
		body      interface{}
		setupMock func(app *testApp)
		expect    httpResponseExpectations
	}{
		{
			name: "正常系: 単語を登録",
			body: validReq,
			setupMock: func(app *testApp) {
				app.vocabulary.On("AddWord", mock.Anything, userID, &validReq).
					Return(&model.VocabularyEntry{WordID: uuid.New(), Original: "cat", Translation: "gato"}, nil).Once()
			},
			expect: httpResponseExpectations{ExpectedCode: http.StatusCreated},
		},
		{
			name:   "異常系: 訳語なし",
			body:   model.CreateWordRequest{Original: "cat", TargetLanguage: "es"},
			expect: httpResponseExpectations{ExpectedCode: http.StatusBadRequest, ExpectedErrorCode: "VALIDATION_ERROR"},
		},
		{
			name:   "異常系: 未対応の言語",
			body:   model.CreateWordRequest{Original: "cat", Translation: "gato", TargetLanguage: "tlh"},
			expect: httpResponseExpectations{ExpectedCode: http.StatusBadRequest, ExpectedErrorCode: "VALIDATION_ERROR"},
		},
		{
			name: "異常系: 重複で409",
			body: validReq,
			setupMock: func(app *testApp) {
				app.vocabulary.On("AddWord", mock.Anything, userID, mock.Anything).
					Return(nil, model.NewAppError("DUPLICATE_WORD", "Word already exists.", "original", model.ErrConflict)).Once()
			},
			expect: httpResponseExpectations{ExpectedCode: http.StatusConflict, ExpectedErrorCode: "DUPLICATE_WORD"},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			app := newTestApp(t)
			if tc.setupMock != nil {
				tc.setupMock(app)
			}
			sendRequest(t, app.server, httpRequestDetails{
				Method:  http.MethodPost,
				Path:    "/api/v1/words",
				Body:    tc.body,
				Headers: userHeader(userID),
			}, tc.expect)
		})
	}
}

func TestWordHandler_PatchAndDelete(t *testing.T) {
	userID := uuid.New()
	wordID := uuid.New()

	t.Run("正常系: 訳語を更新", func(t *testing.T) {
		app := newTestApp(t)
		translation := "gatito"
		app.vocabulary.On("PatchWord", mock.Anything, userID, wordID, &model.PatchWordRequest{Translation: &translation}).
			Return(&model.VocabularyEntry{WordID: wordID, Translation: translation}, nil).Once()

		_, body := sendRequest(t, app.server, httpRequestDetails{
			Method:  http.MethodPatch,
			Path:    "/api/v1/words/" + wordID.String(),
			Body:    model.PatchWordRequest{Translation: &translation},
			Headers: userHeader(userID),
		}, httpResponseExpectations{ExpectedCode: http.StatusOK})

		var word model.VocabularyEntry
		decodeBody(t, body, &word)
		assert.Equal(t, "gatito", word.Translation)
	})

	t.Run("異常系: word_idが不正", func(t *testing.T) {
		app := newTestApp(t)
		sendRequest(t, app.server, httpRequestDetails{
			Method:  http.MethodPatch,
			Path:    "/api/v1/words/not-a-uuid",
			Body:    map[string]string{"translation": "x"},
			Headers: userHeader(userID),
		}, httpResponseExpectations{ExpectedCode: http.StatusBadRequest, ExpectedErrorCode: "INVALID_WORD_ID"})
	})

	t.Run("正常系: 削除で204", func(t *testing.T) {
		app := newTestApp(t)
		app.vocabulary.On("DeleteWord", mock.Anything, userID, wordID).Return(nil).Once()

		sendRequest(t, app.server, httpRequestDetails{
			Method:  http.MethodDelete,
			Path:    "/api/v1/words/" + wordID.String(),
			Headers: userHeader(userID),
		}, httpResponseExpectations{ExpectedCode: http.StatusNoContent})
	})

	t.Run("異常系: 他人の単語は404", func(t *testing.T) {
		app := newTestApp(t)
		app.vocabulary.On("DeleteWord", mock.Anything, userID, wordID).
			Return(model.NewAppError("WORD_NOT_FOUND", "Word not found.", "", model.ErrNotFound)).Once()

		sendRequest(t, app.server, httpRequestDetails{
			Method:  http.MethodDelete,
			Path:    "/api/v1/words/" + wordID.String(),
			Headers: userHeader(userID),
		}, httpResponseExpectations{ExpectedCode: http.StatusNotFound, ExpectedErrorCode: "WORD_NOT_FOUND"})
	})
}

// multipartBody は field にファイルを1つ載せた multipart ボディを返します
func multipartBody(t *testing.T, field, filename, content string) (string, string) {
	t.Helper()
	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	part, err := writer.CreateFormFile(field, filename)
	require.NoError(t, err)
	_, err = io.WriteString(part, content)
	require.NoError(t, err)
	require.NoError(t, writer.Close())
	return buf.String(), writer.FormDataContentType()
}

func TestWordHandler_ImportWords(t *testing.T) {
	userID := uuid.New()
	csvContent := "original,translation\nhello,hola\n"

	t.Run("正常系: CSVを取り込む", func(t *testing.T) {
		app := newTestApp(t)
		body, contentType := multipartBody(t, "file", "words.csv", csvContent)

		app.vocabulary.On("ImportWords", mock.Anything, userID, mock.Anything, "words.csv").
			Run(func(args mock.Arguments) {
				data, err := io.ReadAll(args.Get(2).(io.Reader))
				require.NoError(t, err)
				assert.Equal(t, csvContent, string(data))
			}).
			Return(&model.ImportResult{TotalProcessed: 1, Created: 1, Errors: []string{}}, nil).Once()

		headers := userHeader(userID)
		headers["Content-Type"] = contentType
		_, respBody := sendRequest(t, app.server, httpRequestDetails{
			Method:  http.MethodPost,
			Path:    "/api/v1/words/import",
			Body:    body,
			Headers: headers,
		}, httpResponseExpectations{ExpectedCode: http.StatusOK})

		var result model.ImportResult
		decodeBody(t, respBody, &result)
		assert.Equal(t, 1, result.Created)
	})

	t.Run("異常系: fileフィールドなし", func(t *testing.T) {
		app := newTestApp(t)
		body, contentType := multipartBody(t, "upload", "words.csv", csvContent)

		headers := userHeader(userID)
		headers["Content-Type"] = contentType
		sendRequest(t, app.server, httpRequestDetails{
			Method:  http.MethodPost,
			Path:    "/api/v1/words/import",
			Body:    body,
			Headers: headers,
		}, httpResponseExpectations{ExpectedCode: http.StatusBadRequest, ExpectedErrorCode: "FILE_REQUIRED"})
	})

	t.Run("異常系: multipartでない", func(t *testing.T) {
		app := newTestApp(t)
		sendRequest(t, app.server, httpRequestDetails{
			Method:  http.MethodPost,
			Path:    "/api/v1/words/import",
			Body:    map[string]string{"file": "x"},
			Headers: userHeader(userID),
		}, httpResponseExpectations{ExpectedCode: http.StatusBadRequest, ExpectedErrorCode: "INVALID_REQUEST_BODY"})
	})

	t.Run("異常系: 未対応の拡張子", func(t *testing.T) {
		app := newTestApp(t)
		body, contentType := multipartBody(t, "file", "words.txt", "hello")
		app.vocabulary.On("ImportWords", mock.Anything, userID, mock.Anything, "words.txt").
			Return(nil, model.NewAppError("UNSUPPORTED_FILE", "Only CSV and XLSX files are supported.", "file", model.ErrInvalidInput)).Once()

		headers := userHeader(userID)
		headers["Content-Type"] = contentType
		sendRequest(t, app.server, httpRequestDetails{
			Method:  http.MethodPost,
			Path:    "/api/v1/words/import",
			Body:    body,
			Headers: headers,
		}, httpResponseExpectations{ExpectedCode: http.StatusBadRequest, ExpectedErrorCode: "UNSUPPORTED_FILE"})
	})
}

func TestCategoryHandler_GetCategories(t *testing.T) {
	app := newTestApp(t)
	userID := uuid.New()
	app.vocabulary.On("ListCategories", mock.Anything).
		Return([]*model.Category{{CategoryID: uuid.New(), Name: "Animals"}, {CategoryID: uuid.New(), Name: "Food"}}, nil).Once()

	_, body := sendRequest(t, app.server, httpRequestDetails{
		Method:  http.MethodGet,
		Path:    "/api/v1/categories",
		Headers: userHeader(userID),
	}, httpResponseExpectations{ExpectedCode: http.StatusOK})

	var categories []*model.Category
	decodeBody(t, body, &categories)
	require.Len(t, categories, 2)
	assert.Equal(t, "Animals", categories[0].Name)
}
