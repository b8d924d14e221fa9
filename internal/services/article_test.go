package services_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/mpetrenko/blog-api/internal/models"
	"github.com/mpetrenko/blog-api/internal/services"
	"github.com/stretchr/testify/assert"
)

func int64Ptr(v int64) *int64 { return &v }

func TestArticleService_Create(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	tests := []struct {
		name      string
		actorID   int64
		title     string
		content   string
		writerErr error
		wantID    int64
		wantErr   error
	}{
		{
			name:    "success",
			actorID: 5,
			title:   "First post",
			content: "hello world",
			wantID:  11,
		},
		{
			name:    "missing title",
			actorID: 5,
			title:   "",
			content: "hello",
			wantErr: services.ErrEmptyArticleFields,
		},
		{
			name:    "missing content",
			actorID: 5,
			title:   "First post",
			content: "",
			wantErr: services.ErrEmptyArticleFields,
		},
		{
			name:      "writer error",
			actorID:   5,
			title:     "First post",
			content:   "hello",
			writerErr: errors.New("db error"),
			wantErr:   errors.New("db error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockReader := services.NewMockArticleReader(ctrl)
			mockWriter := services.NewMockArticleWriter(ctrl)
			mockKafka := services.NewMockKafkaWriter(ctrl)

			svc := services.NewArticleService(mockReader, mockWriter, mockKafka)

			if tt.title != "" && tt.content != "" {
				mockWriter.EXPECT().
					Save(gomock.Any(), tt.actorID, tt.title, tt.content, tt.content, "tech", models.Tags{"go"}).
					Return(tt.wantID, tt.writerErr)

				if tt.writerErr == nil {
					mockKafka.EXPECT().
						WriteMessages(gomock.Any(), gomock.Any()).
						Return(nil)
				}
			}

			id, err := svc.Create(context.Background(), tt.actorID, tt.title, tt.content, "tech", models.Tags{"go"})
			if tt.wantErr != nil {
				assert.EqualError(t, err, tt.wantErr.Error())
				assert.Zero(t, id)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.wantID, id)
			}
		})
	}
}

func TestArticleService_Create_DerivesSummary(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockReader := services.NewMockArticleReader(ctrl)
	mockWriter := services.NewMockArticleWriter(ctrl)

	// nil kafka writer: publishing is skipped, creation still succeeds
	svc := services.NewArticleService(mockReader, mockWriter, nil)

	content := strings.Repeat("x", models.SummaryLength+50)
	wantSummary := strings.Repeat("x", models.SummaryLength) + "..."

	mockWriter.EXPECT().
		Save(gomock.Any(), int64(5), "Long read", content, wantSummary, "", models.Tags(nil)).
		Return(int64(1), nil)

	id, err := svc.Create(context.Background(), 5, "Long read", content, "", nil)
	assert.NoError(t, err)
	assert.Equal(t, int64(1), id)
}

func TestArticleService_Get(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockReader := services.NewMockArticleReader(ctrl)
	mockWriter := services.NewMockArticleWriter(ctrl)

	svc := services.NewArticleService(mockReader, mockWriter, nil)
	ctx := context.Background()

	t.Run("found", func(t *testing.T) {
		mockReader.EXPECT().
			GetByID(gomock.Any(), int64(3)).
			Return(&models.ArticleDB{ID: 3, AuthorID: 5, Title: "hi"}, nil)

		article, err := svc.Get(ctx, 3)
		assert.NoError(t, err)
		assert.Equal(t, int64(3), article.ID)
	})

	t.Run("not found", func(t *testing.T) {
		mockReader.EXPECT().
			GetByID(gomock.Any(), int64(99)).
			Return(nil, nil)

		article, err := svc.Get(ctx, 99)
		assert.ErrorIs(t, err, services.ErrArticleNotFound)
		assert.Nil(t, article)
	})

	t.Run("reader error", func(t *testing.T) {
		mockReader.EXPECT().
			GetByID(gomock.Any(), int64(1)).
			Return(nil, errors.New("db error"))

		article, err := svc.Get(ctx, 1)
		assert.EqualError(t, err, "db error")
		assert.Nil(t, article)
	})
}

func TestArticleService_List(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockReader := services.NewMockArticleReader(ctrl)
	mockWriter := services.NewMockArticleWriter(ctrl)

	svc := services.NewArticleService(mockReader, mockWriter, nil)

	want := []models.ArticleDB{{ID: 2, Title: "b"}, {ID: 1, Title: "a"}}
	mockReader.EXPECT().
		List(gomock.Any()).
		Return(want, nil)

	articles, err := svc.List(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, want, articles)
}

func TestArticleService_Update_OwnershipGate(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	tests := []struct {
		name      string
		actorID   int64
		authorID  *int64
		lookupErr error
		wantErr   error
	}{
		{
			name:     "actor is the author",
			actorID:  5,
			authorID: int64Ptr(5),
		},
		{
			name:     "actor is not the author",
			actorID:  6,
			authorID: int64Ptr(5),
			wantErr:  services.ErrNotArticleAuthor,
		},
		{
			name:    "article does not exist",
			actorID: 5,
			wantErr: services.ErrArticleNotFound,
		},
		{
			name:      "lookup error",
			actorID:   5,
			lookupErr: errors.New("db error"),
			wantErr:   errors.New("db error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockReader := services.NewMockArticleReader(ctrl)
			mockWriter := services.NewMockArticleWriter(ctrl)
			mockKafka := services.NewMockKafkaWriter(ctrl)

			svc := services.NewArticleService(mockReader, mockWriter, mockKafka)

			mockReader.EXPECT().
				GetAuthorID(gomock.Any(), int64(10)).
				Return(tt.authorID, tt.lookupErr)

			if tt.wantErr == nil {
				mockWriter.EXPECT().
					Update(gomock.Any(), int64(10), "t", "c", "c", "cat", models.Tags(nil)).
					Return(int64(1), nil)
				mockKafka.EXPECT().
					WriteMessages(gomock.Any(), gomock.Any()).
					Return(nil)
			}

			err := svc.Update(context.Background(), tt.actorID, 10, "t", "c", "cat", nil)
			if tt.wantErr != nil {
				assert.EqualError(t, err, tt.wantErr.Error())
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestArticleService_Update_EmptyFields(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockReader := services.NewMockArticleReader(ctrl)
	mockWriter := services.NewMockArticleWriter(ctrl)

	svc := services.NewArticleService(mockReader, mockWriter, nil)

	err := svc.Update(context.Background(), 5, 10, "", "content", "", nil)
	assert.ErrorIs(t, err, services.ErrEmptyArticleFields)
}

func TestArticleService_Delete(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	tests := []struct {
		name      string
		actorID   int64
		authorID  *int64
		deleteErr error
		rows      int64
		wantErr   error
	}{
		{
			name:     "success",
			actorID:  5,
			authorID: int64Ptr(5),
			rows:     1,
		},
		{
			name:     "not the author",
			actorID:  6,
			authorID: int64Ptr(5),
			wantErr:  services.ErrNotArticleAuthor,
		},
		{
			name:    "not found",
			actorID: 5,
			wantErr: services.ErrArticleNotFound,
		},
		{
			name:      "delete error",
			actorID:   5,
			authorID:  int64Ptr(5),
			deleteErr: errors.New("db error"),
			wantErr:   errors.New("db error"),
		},
		{
			name:     "gone between gate and delete",
			actorID:  5,
			authorID: int64Ptr(5),
			rows:     0,
			wantErr:  services.ErrArticleNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockReader := services.NewMockArticleReader(ctrl)
			mockWriter := services.NewMockArticleWriter(ctrl)
			mockKafka := services.NewMockKafkaWriter(ctrl)

			svc := services.NewArticleService(mockReader, mockWriter, mockKafka)

			mockReader.EXPECT().
				GetAuthorID(gomock.Any(), int64(10)).
				Return(tt.authorID, nil)

			if tt.authorID != nil && *tt.authorID == tt.actorID {
				mockWriter.EXPECT().
					Delete(gomock.Any(), int64(10)).
					Return(tt.rows, tt.deleteErr)

				if tt.deleteErr == nil && tt.rows > 0 {
					mockKafka.EXPECT().
						WriteMessages(gomock.Any(), gomock.Any()).
						Return(nil)
				}
			}

			err := svc.Delete(context.Background(), tt.actorID, 10)
			if tt.wantErr != nil {
				assert.EqualError(t, err, tt.wantErr.Error())
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

// A failing event publish never fails the operation.
func TestArticleService_PublishFailureIsNonFatal(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockReader := services.NewMockArticleReader(ctrl)
	mockWriter := services.NewMockArticleWriter(ctrl)
	mockKafka := services.NewMockKafkaWriter(ctrl)

	svc := services.NewArticleService(mockReader, mockWriter, mockKafka)

	mockWriter.EXPECT().
		Save(gomock.Any(), int64(5), "t", "c", "c", "", models.Tags(nil)).
		Return(int64(1), nil)
	mockKafka.EXPECT().
		WriteMessages(gomock.Any(), gomock.Any()).
		Return(errors.New("broker down"))

	id, err := svc.Create(context.Background(), 5, "t", "c", "", nil)
	assert.NoError(t, err)
	assert.Equal(t, int64(1), id)
}
