package handlers

import (
	"net/http"

	"langy/internal/middleware"
	"langy/internal/model"
	"langy/internal/service"
	"langy/internal/webutil"
)

type CategoryHandler struct {
	service service.VocabularyService
}

func NewCategoryHandler(s service.VocabularyService) *CategoryHandler {
	return &CategoryHandler{service: s}
}

// GetCategories はカテゴリの一覧を名前順で返します
func (h *CategoryHandler) GetCategories(w http.ResponseWriter, r *http.Request) {
	logger := middleware.GetLogger(r.Context())

	categories, err := h.service.ListCategories(r.Context())
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}
	if categories == nil {
		categories = []*model.Category{}
	}
	webutil.RespondWithJSON(w, http.StatusOK, categories, logger)
}
