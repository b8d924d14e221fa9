package repositories

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/jmoiron/sqlx"
	"github.com/mpetrenko/blog-api/internal/logger"
	"github.com/mpetrenko/blog-api/internal/models"
)

// ArticleReadRepository handles article lookups.
type ArticleReadRepository struct {
	db *sqlx.DB
}

func NewArticleReadRepository(db *sqlx.DB) *ArticleReadRepository {
	return &ArticleReadRepository{db: db}
}

// GetByID returns the article with the given id, or nil if none exists.
func (r *ArticleReadRepository) GetByID(ctx context.Context, id int64) (*models.ArticleDB, error) {
	const query = `
		SELECT id, author_id, title, content, summary, category, tags, created_at, updated_at
		FROM articles
		WHERE id = $1
	`

	var article models.ArticleDB
	err := r.db.GetContext(ctx, &article, query, id)

	logger.Log.Infow("article read",
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{id},
		"error", err,
	)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	return &article, nil
}

// List returns all articles, newest first.
func (r *ArticleReadRepository) List(ctx context.Context) ([]models.ArticleDB, error) {
	const query = `
		SELECT id, author_id, title, content, summary, category, tags, created_at, updated_at
		FROM articles
		ORDER BY created_at DESC
	`

	var articles []models.ArticleDB
	err := r.db.SelectContext(ctx, &articles, query)

	logger.Log.Infow("article list",
		"query", strings.Join(strings.Fields(query), " "),
		"count", len(articles),
		"error", err,
	)

	return articles, err
}

// GetAuthorID returns the author id of the given article, or nil if the
// article does not exist.
func (r *ArticleReadRepository) GetAuthorID(ctx context.Context, articleID int64) (*int64, error) {
	const query = `
		SELECT author_id
		FROM articles
		WHERE id = $1
	`

	var authorID int64
	err := r.db.GetContext(ctx, &authorID, query, articleID)

	logger.Log.Infow("article author read",
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{articleID},
		"result", authorID,
		"error", err,
	)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	return &authorID, nil
}

// ArticleWriteRepository handles article mutations.
type ArticleWriteRepository struct {
	db *sqlx.DB
}

func NewArticleWriteRepository(db *sqlx.DB) *ArticleWriteRepository {
	return &ArticleWriteRepository{db: db}
}

// Save inserts a new article and returns the id assigned by the store.
func (r *ArticleWriteRepository) Save(ctx context.Context, authorID int64, title, content, summary, category string, tags models.Tags) (int64, error) {
	const query = `
		INSERT INTO articles (author_id, title, content, summary, category, tags, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, NOW(), NOW())
		RETURNING id
	`
	args := []any{authorID, title, content, summary, category, tags}

	var id int64
	err := r.db.GetContext(ctx, &id, query, args...)

	logger.Log.Infow("article write",
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{authorID, title, category},
		"result", id,
		"error", err,
	)

	return id, err
}

// Update rewrites the content fields of an article. The author id is never
// touched by updates.
func (r *ArticleWriteRepository) Update(ctx context.Context, id int64, title, content, summary, category string, tags models.Tags) (int64, error) {
	const query = `
		UPDATE articles
		SET title = $2, content = $3, summary = $4, category = $5, tags = $6, updated_at = NOW()
		WHERE id = $1
	`
	args := []any{id, title, content, summary, category, tags}

	res, err := r.db.ExecContext(ctx, query, args...)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}

	logger.Log.Infow("article update",
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{id, title, category},
		"result", rowsAffected,
		"error", err,
	)

	return rowsAffected, err
}

// Delete removes an article permanently.
func (r *ArticleWriteRepository) Delete(ctx context.Context, id int64) (int64, error) {
	const query = `
		DELETE FROM articles
		WHERE id = $1
	`

	res, err := r.db.ExecContext(ctx, query, id)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}

	logger.Log.Infow("article delete",
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{id},
		"result", rowsAffected,
		"error", err,
	)

	return rowsAffected, err
}
