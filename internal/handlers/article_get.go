package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/mpetrenko/blog-api/internal/logger"
	"github.com/mpetrenko/blog-api/internal/models"
	"github.com/mpetrenko/blog-api/internal/services"
)

// ArticleGetter defines the interface that the service must implement.
type ArticleGetter interface {
	Get(ctx context.Context, id int64) (*models.ArticleDB, error)
}

// ArticleGetResponse represents a single-article response
// swagger:model ArticleGetResponse
type ArticleGetResponse struct {
	// Success flag
	// default: true
	Success bool `json:"success"`

	// Article
	Data *models.ArticleDB `json:"data"`
}

// parseArticleID reads the article id from the URL. A non-numeric id is
// treated the same as an unknown one.
func parseArticleID(r *http.Request) (int64, error) {
	return strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
}

// NewGetArticleHandler returns an HTTP handler for fetching one article.
// @Summary Get an article
// @Description Returns a single article by id. No authentication required.
// @Tags articles
// @Produce json
// @Param id path int true "Article id"
// @Success 200 {object} handlers.ArticleGetResponse "Article"
// @Failure 404 {object} handlers.ArticleErrorResponse "Article not found"
// @Failure 500 {object} handlers.ArticleErrorResponse "Server error"
// @Router /articles/{id} [get]
func NewGetArticleHandler(svc ArticleGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")

		id, err := parseArticleID(r)
		if err != nil {
			w.WriteHeader(http.StatusNotFound)
			json.NewEncoder(w).Encode(ArticleErrorResponse{
				Message: "Article not found",
			})
			return
		}

		article, err := svc.Get(r.Context(), id)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrArticleNotFound):
				w.WriteHeader(http.StatusNotFound)
				json.NewEncoder(w).Encode(ArticleErrorResponse{
					Message: "Article not found",
				})
			default:
				logger.Log.Errorw("internal server error", "err", err)
				w.WriteHeader(http.StatusInternalServerError)
				json.NewEncoder(w).Encode(ArticleErrorResponse{
					Message: "Server error",
				})
			}
			return
		}

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(ArticleGetResponse{
			Success: true,
			Data:    article,
		})
	}
}
