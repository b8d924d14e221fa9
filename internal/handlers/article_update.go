package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/mpetrenko/blog-api/internal/logger"
	"github.com/mpetrenko/blog-api/internal/middlewares"
	"github.com/mpetrenko/blog-api/internal/models"
	"github.com/mpetrenko/blog-api/internal/services"
)

// ArticleUpdater defines the interface that the service must implement.
type ArticleUpdater interface {
	Update(ctx context.Context, actorID, articleID int64, title, content, category string, tags models.Tags) error
}

// ArticleUpdateResponse represents a successful article update response
// swagger:model ArticleUpdateResponse
type ArticleUpdateResponse struct {
	// Success flag
	// default: true
	Success bool `json:"success"`

	// Success message
	// default: Article updated successfully
	Message string `json:"message"`
}

// NewUpdateArticleHandler returns an HTTP handler for updating an article.
// Only the article's author may update it.
// @Summary Update an article
// @Description Rewrites the article's content fields. Requires authentication and ownership.
// @Tags articles
// @Accept json
// @Produce json
// @Param id path int true "Article id"
// @Param articleRequest body handlers.ArticleRequest true "Article update request"
// @Success 200 {object} handlers.ArticleUpdateResponse "Article updated"
// @Failure 400 {object} handlers.ArticleErrorResponse "Missing title or content / invalid request"
// @Failure 401 {object} handlers.ArticleErrorResponse "Unauthorized"
// @Failure 403 {object} handlers.ArticleErrorResponse "Not the author"
// @Failure 404 {object} handlers.ArticleErrorResponse "Article not found"
// @Failure 500 {object} handlers.ArticleErrorResponse "Server error"
// @Router /articles/{id} [put]
// @Security BearerAuth
func NewUpdateArticleHandler(svc ArticleUpdater) http.HandlerFunc {
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

		var req ArticleRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(ArticleErrorResponse{
				Message: "Invalid request body",
			})
			return
		}

		err = svc.Update(r.Context(), claims.UserID, id, req.Title, req.Content, req.Category, req.Tags)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrEmptyArticleFields):
				w.WriteHeader(http.StatusBadRequest)
				json.NewEncoder(w).Encode(ArticleErrorResponse{
					Message: "Title and content are required",
				})
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
		json.NewEncoder(w).Encode(ArticleUpdateResponse{
			Success: true,
			Message: "Article updated successfully",
		})
	}
}
