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

// ArticleCreator defines the interface that the service must implement.
type ArticleCreator interface {
	Create(ctx context.Context, actorID int64, title, content, category string, tags models.Tags) (int64, error)
}

// ArticleRequest represents the JSON body for creating or updating an article
// swagger:model ArticleRequest
type ArticleRequest struct {
	// Title
	// required: true
	// default: My first article
	Title string `json:"title"`

	// Content
	// required: true
	// default: Long article body...
	Content string `json:"content"`

	// Category
	// default: tech
	Category string `json:"category"`

	// Tags
	// default: ["go","backend"]
	Tags models.Tags `json:"tags"`
}

// ArticleCreateResponse represents a successful article creation response
// swagger:model ArticleCreateResponse
type ArticleCreateResponse struct {
	// Success flag
	// default: true
	Success bool `json:"success"`

	// Success message
	// default: Article created successfully
	Message string `json:"message"`

	// Id of the created article
	// default: 1
	ArticleID int64 `json:"articleId"`
}

// ArticleErrorResponse represents an error response for article operations
// swagger:model ArticleErrorResponse
type ArticleErrorResponse struct {
	// Success flag
	// default: false
	Success bool `json:"success"`

	// Error message
	// default: Article not found
	Message string `json:"message"`
}

// NewCreateArticleHandler returns an HTTP handler for creating an article.
// The author is always the authenticated actor; the body cannot name one.
// @Summary Create an article
// @Description Creates an article owned by the authenticated user. The summary is derived from the content.
// @Tags articles
// @Accept json
// @Produce json
// @Param articleRequest body handlers.ArticleRequest true "Article create request"
// @Success 201 {object} handlers.ArticleCreateResponse "Article created"
// @Failure 400 {object} handlers.ArticleErrorResponse "Missing title or content / invalid request"
// @Failure 401 {object} handlers.ArticleErrorResponse "Unauthorized"
// @Failure 500 {object} handlers.ArticleErrorResponse "Server error"
// @Router /articles [post]
// @Security BearerAuth
func NewCreateArticleHandler(svc ArticleCreator) http.HandlerFunc {
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

		var req ArticleRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(ArticleErrorResponse{
				Message: "Invalid request body",
			})
			return
		}

		id, err := svc.Create(r.Context(), claims.UserID, req.Title, req.Content, req.Category, req.Tags)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrEmptyArticleFields):
				w.WriteHeader(http.StatusBadRequest)
				json.NewEncoder(w).Encode(ArticleErrorResponse{
					Message: "Title and content are required",
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

		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(ArticleCreateResponse{
			Success:   true,
			Message:   "Article created successfully",
			ArticleID: id,
		})
	}
}
