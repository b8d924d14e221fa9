package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/mpetrenko/blog-api/internal/logger"
	"github.com/mpetrenko/blog-api/internal/middlewares"
	"github.com/mpetrenko/blog-api/internal/services"
)

// ArticleDeleter defines the interface that the service must implement.
type ArticleDeleter interface {
	Delete(ctx context.Context, actorID, articleID int64) error
}

// ArticleDeleteResponse represents a successful article deletion response
// swagger:model ArticleDeleteResponse
type ArticleDeleteResponse struct {
	// Success flag
	// default: true
	Success bool `json:"success"`

	// Success message
	// default: Article deleted successfully
	Message string `json:"message"`
}

// NewDeleteArticleHandler returns an HTTP handler for deleting an article.
// Only the article's author may delete it. Deletion is permanent.
// @Summary Delete an article
// @Description Deletes the article permanently. Requires authentication and ownership.
// @Tags articles
// @Produce json
// @Param id path int true "Article id"
// @Success 200 {object} handlers.ArticleDeleteResponse "Article deleted"
// @Failure 401 {object} handlers.ArticleErrorResponse "Unauthorized"
// @Failure 403 {object} handlers.ArticleErrorResponse "Not the author"
// @Failure 404 {object} handlers.ArticleErrorResponse "Article not found"
// @Failure 500 {object} handlers.ArticleErrorResponse "Server error"
// @Router /articles/{id} [delete]
// @Security BearerAuth
func NewDeleteArticleHandler(svc ArticleDeleter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")

		claims := middlewares.GetClaimsFromContext(r.Context())
		if claims == nil {
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(ArticleErrorResponse{
				Message: "Unauthorized",
			})
			return
		}

		id, err := parseArticleID(r)
		if err != nil {
			w.WriteHeader(http.StatusNotFound)
			json.NewEncoder(w).Encode(ArticleErrorResponse{
				Message: "Article not found",
			})
			return
		}

		err = svc.Delete(r.Context(), claims.UserID, id)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrArticleNotFound):
				w.WriteHeader(http.StatusNotFound)
				json.NewEncoder(w).Encode(ArticleErrorResponse{
					Message: "Article not found",
				})
			case errors.Is(err, services.ErrNotArticleAuthor):
				w.WriteHeader(http.StatusForbidden)
				json.NewEncoder(w).Encode(ArticleErrorResponse{
					Message: "Not the author",
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
		json.NewEncoder(w).Encode(ArticleDeleteResponse{
			Success: true,
			Message: "Article deleted successfully",
		})
	}
}
