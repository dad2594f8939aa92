package handlers

import (
	"net/http"

	"langy/internal/config"
	"langy/internal/middleware"
	"langy/internal/model"
	"langy/internal/service"
	"langy/internal/webutil"
)

type QuizHandler struct {
	service service.QuizService
	cfg     *config.Config
}

func NewQuizHandler(s service.QuizService, cfg *config.Config) *QuizHandler {
	return &QuizHandler{service: s, cfg: cfg}
}

// Generate はクイズを生成します。ボディは省略可
func (h *QuizHandler) Generate(w http.ResponseWriter, r *http.Request) {
	logger := middleware.GetLogger(r.Context())

	userID, ok := requireUser(w, r)
	if !ok {
		return
	}

	var req model.GenerateQuizRequest
	if r.ContentLength != 0 {
		if err := webutil.DecodeAndValidate(r, &req); err != nil {
			webutil.HandleError(w, logger, err)
			return
		}
	}

	resp, err := h.service.Generate(r.Context(), userID, &req)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}
	webutil.RespondWithJSON(w, http.StatusOK, resp, logger)
}

// Submit は1問分の回答を記録し、習熟度の変化を返します
func (h *QuizHandler) Submit(w http.ResponseWriter, r *http.Request) {
	logger := middleware.GetLogger(r.Context())

	userID, ok := requireUser(w, r)
	if !ok {
		return
	}

	var req model.SubmitQuizRequest
	if err := webutil.DecodeAndValidate(r, &req); err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	resp, err := h.service.SubmitAnswer(r.Context(), userID, &req)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}
	webutil.RespondWithJSON(w, http.StatusOK, resp, logger)
}

// Results は回答履歴をセッション単位で返します
func (h *QuizHandler) Results(w http.ResponseWriter, r *http.Request) {
	logger := middleware.GetLogger(r.Context())

	userID, ok := requireUser(w, r)
	if !ok {
		return
	}

	limit, err := webutil.ParseLimit(r, h.cfg.App.HistoryLimit, config.MaxHistoryLimit)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	resp, err := h.service.History(r.Context(), userID, limit)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}
	webutil.RespondWithJSON(w, http.StatusOK, resp, logger)
}
