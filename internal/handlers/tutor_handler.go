package handlers

import (
	"net/http"

	"langy/internal/middleware"
	"langy/internal/model"
	"langy/internal/service"
	"langy/internal/webutil"
)

type TutorHandler struct {
	service service.TutorService
}

func NewTutorHandler(s service.TutorService) *TutorHandler {
	return &TutorHandler{service: s}
}

// ContextualSentence は単語を使った例文を生成します
func (h *TutorHandler) ContextualSentence(w http.ResponseWriter, r *http.Request) {
	logger := middleware.GetLogger(r.Context())

	if _, ok := requireUser(w, r); !ok {
		return
	}

	var req model.ContextualSentenceRequest
	if err := webutil.DecodeAndValidate(r, &req); err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	resp, err := h.service.ContextualSentence(r.Context(), &req)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}
	webutil.RespondWithJSON(w, http.StatusOK, resp, logger)
}

// Feedback は作文を添削し、練習ログに記録します
func (h *TutorHandler) Feedback(w http.ResponseWriter, r *http.Request) {
	logger := middleware.GetLogger(r.Context())

	userID, ok := requireUser(w, r)
	if !ok {
		return
	}

	var req model.FeedbackRequest
	if err := webutil.DecodeAndValidate(r, &req); err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	resp, err := h.service.Feedback(r.Context(), userID, &req)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	logger.Info("Feedback generated", "score", resp.Score)
	webutil.RespondWithJSON(w, http.StatusOK, resp, logger)
}
