package handlers

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"langy/internal/config"
	"langy/internal/middleware"
	"langy/internal/model"
	"langy/internal/service"
	"langy/internal/webutil"
)

// アップロードファイルの上限 (10MB)
const maxUploadBytes = 10 << 20

type WordHandler struct {
	service service.VocabularyService
	cfg     *config.Config
}

func NewWordHandler(s service.VocabularyService, cfg *config.Config) *WordHandler {
	return &WordHandler{service: s, cfg: cfg}
}

// GetWords は単語一覧を返します。category_id と limit で絞り込める
func (h *WordHandler) GetWords(w http.ResponseWriter, r *http.Request) {
	logger := middleware.GetLogger(r.Context())

	userID, ok := requireUser(w, r)
	if !ok {
		return
	}

	limit, err := webutil.ParseLimit(r, h.cfg.App.WordsLimit, config.MaxWordsLimit)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}
	filter := model.WordListFilter{Limit: limit}

	if raw := r.URL.Query().Get("category_id"); raw != "" {
		categoryID, err := uuid.Parse(raw)
		if err != nil {
			webutil.HandleError(w, logger, model.NewAppError("VALIDATION_ERROR", "category_id must be a valid UUID.", "category_id", model.ErrInvalidInput))
			return
		}
		filter.CategoryID = &categoryID
	}

	words, err := h.service.ListWords(r.Context(), userID, filter)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}
	if words == nil {
		words = []*model.VocabularyEntry{}
	}

	logger.Info("Words listed", "count", len(words))
	webutil.RespondWithJSON(w, http.StatusOK, words, logger)
}

// PostWord は単語を1件登録します
func (h *WordHandler) PostWord(w http.ResponseWriter, r *http.Request) {
	logger := middleware.GetLogger(r.Context())

	userID, ok := requireUser(w, r)
	if !ok {
		return
	}

	var req model.CreateWordRequest
	if err := webutil.DecodeAndValidate(r, &req); err != nil {
		logger.Warn("Invalid word request", "error", err)
		webutil.HandleError(w, logger, err)
		return
	}

	word, err := h.service.AddWord(r.Context(), userID, &req)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	logger.Info("Word added", "word_id", word.WordID)
	webutil.RespondWithJSON(w, http.StatusCreated, word, logger)
}

func (h *WordHandler) PatchWord(w http.ResponseWriter, r *http.Request) {
	logger := middleware.GetLogger(r.Context())

	userID, ok := requireUser(w, r)
	if !ok {
		return
	}
	wordID, err := parseWordID(r)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	var req model.PatchWordRequest
	if err := webutil.DecodeAndValidate(r, &req); err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	word, err := h.service.PatchWord(r.Context(), userID, wordID, &req)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}
	webutil.RespondWithJSON(w, http.StatusOK, word, logger)
}

func (h *WordHandler) DeleteWord(w http.ResponseWriter, r *http.Request) {
	logger := middleware.GetLogger(r.Context())

	userID, ok := requireUser(w, r)
	if !ok {
		return
	}
	wordID, err := parseWordID(r)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	if err := h.service.DeleteWord(r.Context(), userID, wordID); err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	logger.Info("Word deleted", "word_id", wordID)
	w.WriteHeader(http.StatusNoContent)
}

// ImportWords は multipart の file フィールドで受け取った CSV / XLSX を取り込みます
func (h *WordHandler) ImportWords(w http.ResponseWriter, r *http.Request) {
	logger := middleware.GetLogger(r.Context())

	userID, ok := requireUser(w, r)
	if !ok {
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, maxUploadBytes)
	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		logger.Warn("Failed to parse multipart form", "error", err)
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			webutil.HandleError(w, logger, model.NewAppError("FILE_TOO_LARGE", "File must be 10MB or smaller.", "file", model.ErrInvalidInput))
			return
		}
		webutil.HandleError(w, logger, model.NewAppError("INVALID_REQUEST_BODY", "Request must be multipart/form-data.", "", model.ErrInvalidInput))
		return
	}
	defer r.MultipartForm.RemoveAll()

	file, header, err := r.FormFile("file")
	if err != nil {
		webutil.HandleError(w, logger, model.NewAppError("FILE_REQUIRED", "No file uploaded.", "file", model.ErrInvalidInput))
		return
	}
	defer file.Close()

	logger = logger.With("filename", header.Filename, "size", header.Size)
	result, err := h.service.ImportWords(r.Context(), userID, file, header.Filename)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	logger.Info("Words imported", "created", result.Created, "skipped", result.Skipped, "errors", len(result.Errors))
	webutil.RespondWithJSON(w, http.StatusOK, result, logger)
}

func parseWordID(r *http.Request) (uuid.UUID, error) {
	wordID, err := uuid.Parse(chi.URLParam(r, "word_id"))
	if err != nil {
		return uuid.Nil, model.NewAppError("INVALID_WORD_ID", "word_id must be a valid UUID.", "word_id", model.ErrInvalidInput)
	}
	return wordID, nil
}
