package handlers

import (
	"net/http"

	"langy/internal/middleware"
	"langy/internal/model"
	"langy/internal/service"
	"langy/internal/webutil"
)

type TranslateHandler struct {
	service service.TranslationService
}

func NewTranslateHandler(s service.TranslationService) *TranslateHandler {
	return &TranslateHandler{service: s}
}

// Translate は単語を翻訳し、指定があれば単語帳にも追加します
func (h *TranslateHandler) Translate(w http.ResponseWriter, r *http.Request) {
	logger := middleware.GetLogger(r.Context())

	userID, ok := requireUser(w, r)
	if !ok {
		return
	}

	var req model.TranslateRequest
	if err := webutil.DecodeAndValidate(r, &req); err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	resp, err := h.service.Translate(r.Context(), userID, &req)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	logger.Info("Word translated", "target_language", req.TargetLanguage, "added", resp.Word != nil)
	webutil.RespondWithJSON(w, http.StatusOK, resp, logger)
}
