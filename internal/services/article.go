package services

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/mpetrenko/blog-api/internal/logger"
	"github.com/mpetrenko/blog-api/internal/models"
	"github.com/segmentio/kafka-go"
)

var (
	// ErrEmptyArticleFields is returned when a create or update is missing title or content.
	ErrEmptyArticleFields = errors.New("title and content are required")
	// ErrArticleNotFound is returned when the referenced article does not exist.
	ErrArticleNotFound = errors.New("article not found")
	// ErrNotArticleAuthor is returned when the actor is not the article's author.
	ErrNotArticleAuthor = errors.New("not the author")
)

// Event names published to the article events topic.
const (
	EventArticleCreated = "created"
	EventArticleUpdated = "updated"
	EventArticleDeleted = "deleted"
)

// ArticleReader defines read operations for articles.
type ArticleReader interface {
	GetByID(ctx context.Context, id int64) (*models.ArticleDB, error)       // Returns nil if absent
	List(ctx context.Context) ([]models.ArticleDB, error)                   // All articles, newest first
	GetAuthorID(ctx context.Context, articleID int64) (*int64, error)       // Returns nil if absent
}

// ArticleWriter defines write operations for articles.
type ArticleWriter interface {
	Save(ctx context.Context, authorID int64, title, content, summary, category string, tags models.Tags) (int64, error)
	Update(ctx context.Context, id int64, title, content, summary, category string, tags models.Tags) (int64, error)
	Delete(ctx context.Context, id int64) (int64, error)
}

// KafkaWriter defines a Kafka writer abstraction.
type KafkaWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error // Writes messages to Kafka
	Close() error                                                   // Closes the Kafka writer
}

// ArticleService handles article CRUD, the ownership gate and event publishing.
type ArticleService struct {
	reader      ArticleReader
	writer      ArticleWriter
	kafkaWriter KafkaWriter
}

// NewArticleService creates a new ArticleService.
func NewArticleService(reader ArticleReader, writer ArticleWriter, kafkaWriter KafkaWriter) *ArticleService {
	return &ArticleService{
		reader:      reader,
		writer:      writer,
		kafkaWriter: kafkaWriter,
	}
}

// publishEvent publishes an article lifecycle event, fire-and-forget.
func (svc *ArticleService) publishEvent(ctx context.Context, event string, articleID, authorID int64) {
	if svc.kafkaWriter == nil {
		logger.Log.Debugw("Kafka writer not configured, skipping publishing", "event", event, "article_id", articleID)
		return
	}

	evt := models.ArticleEvent{
		EventID:   uuid.NewString(),
		Event:     event,
		ArticleID: articleID,
		AuthorID:  authorID,
		Timestamp: time.Now().Unix(),
	}

	data, err := json.Marshal(evt)
	if err != nil {
		logger.Log.Errorw("failed to marshal article event", "event_id", evt.EventID, "error", err)
		return
	}

	msg := kafka.Message{
		Key:   []byte(evt.EventID),
		Value: data,
	}

	if err := svc.kafkaWriter.WriteMessages(ctx, msg); err != nil {
		logger.Log.Errorw("failed to publish article event", "event_id", evt.EventID, "error", err)
	} else {
		logger.Log.Infow("article event published", "event_id", evt.EventID, "event", event, "article_id", articleID)
	}
}

// Create inserts a new article owned by the actor. The author id always
// comes from the authenticated actor, never from the request body.
func (svc *ArticleService) Create(ctx context.Context, actorID int64, title, content, category string, tags models.Tags) (int64, error) {
	if title == "" || content == "" {
		return 0, ErrEmptyArticleFields
	}

	id, err := svc.writer.Save(ctx, actorID, title, content, models.Summarize(content), category, tags)
	if err != nil {
		logger.Log.Errorw("failed to save article", "author_id", actorID, "error", err)
		return 0, err
	}

	svc.publishEvent(ctx, EventArticleCreated, id, actorID)
	return id, nil
}

// List returns all articles.
func (svc *ArticleService) List(ctx context.Context) ([]models.ArticleDB, error) {
	articles, err := svc.reader.List(ctx)
	if err != nil {
		logger.Log.Errorw("failed to list articles", "error", err)
		return nil, err
	}
	return articles, nil
}

// Get returns a single article by id.
func (svc *ArticleService) Get(ctx context.Context, id int64) (*models.ArticleDB, error) {
	article, err := svc.reader.GetByID(ctx, id)
	if err != nil {
		logger.Log.Errorw("failed to get article", "article_id", id, "error", err)
		return nil, err
	}
	if article == nil {
		return nil, ErrArticleNotFound
	}
	return article, nil
}

// authorize is the ownership gate: the existence check runs before the
// ownership comparison, so a nonexistent article is reported as not found,
// never as forbidden. The comparison is exact int64 equality.
func (svc *ArticleService) authorize(ctx context.Context, actorID, articleID int64) error {
	authorID, err := svc.reader.GetAuthorID(ctx, articleID)
	if err != nil {
		logger.Log.Errorw("failed to get article author", "article_id", articleID, "error", err)
		return err
	}
	if authorID == nil {
		return ErrArticleNotFound
	}
	if *authorID != actorID {
		logger.Log.Infow("ownership check failed", "article_id", articleID, "author_id", *authorID, "actor_id", actorID)
		return ErrNotArticleAuthor
	}
	return nil
}

// Update rewrites an article's content fields. Only the author may update;
// the author id itself is immutable.
func (svc *ArticleService) Update(ctx context.Context, actorID, articleID int64, title, content, category string, tags models.Tags) error {
	if title == "" || content == "" {
		return ErrEmptyArticleFields
	}

	if err := svc.authorize(ctx, actorID, articleID); err != nil {
		return err
	}

	rows, err := svc.writer.Update(ctx, articleID, title, content, models.Summarize(content), category, tags)
	if err != nil {
		logger.Log.Errorw("failed to update article", "article_id", articleID, "error", err)
		return err
	}
	if rows == 0 {
		// Deleted between the gate and the update.
		return ErrArticleNotFound
	}

	svc.publishEvent(ctx, EventArticleUpdated, articleID, actorID)
	return nil
}

// Delete removes an article permanently. Only the author may delete.
func (svc *ArticleService) Delete(ctx context.Context, actorID, articleID int64) error {
	if err := svc.authorize(ctx, actorID, articleID); err != nil {
		return err
	}

	rows, err := svc.writer.Delete(ctx, articleID)
	if err != nil {
		logger.Log.Errorw("failed to delete article", "article_id", articleID, "error", err)
		return err
	}
	if rows == 0 {
		return ErrArticleNotFound
	}

	svc.publishEvent(ctx, EventArticleDeleted, articleID, actorID)
	return nil
}
