package models

// ArticleEvent is published to the article events topic after a successful
// create, update or delete.
type ArticleEvent struct {
	EventID   string `json:"event_id"`
	Event     string `json:"event"` // created, updated or deleted
	ArticleID int64  `json:"article_id"`
	AuthorID  int64  `json:"author_id"`
	Timestamp int64  `json:"timestamp"`
}
