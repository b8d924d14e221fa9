package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/mpetrenko/blog-api/internal/logger"
	"github.com/mpetrenko/blog-api/internal/models"
)

// ArticleLister defines the interface that the service must implement.
type ArticleLister interface {
	List(ctx context.Context) ([]models.ArticleDB, error)
}

// ArticleListResponse represents the article listing response
// swagger:model ArticleListResponse
type ArticleListResponse struct {
	// Success flag
	// default: true
	Success bool `json:"success"`

	// Number of articles
	// default: 1
	Count int `json:"count"`

	// Articles
	Data []models.ArticleDB `json:"data"`
}

// NewListArticlesHandler returns an HTTP handler listing all articles.
// @Summary List articles
// @Description Returns all articles, newest first. No authentication required.
// @Tags articles
// @Produce json
// @Success 200 {object} handlers.ArticleListResponse "Articles"
// @Failure 500 {object} handlers.ArticleErrorResponse "Server error"
// @Router /articles [get]
func NewListArticlesHandler(svc ArticleLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")

		articles, err := svc.List(r.Context())
		if err != nil {
			logger.Log.Errorw("internal server error", "err", err)
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(ArticleErrorResponse{
				Message: "Server error",
			})
			return
		}

		if articles == nil {
			articles = []models.ArticleDB{}
		}

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(ArticleListResponse{
			Success: true,
			Count:   len(articles),
			Data:    articles,
		})
	}
}
