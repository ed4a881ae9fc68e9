package posts

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/DarshanchGIT/wordverse/internal/common"
	"github.com/DarshanchGIT/wordverse/internal/server/models"
)

func newMockDB(t *testing.T) (*PostgresRepository, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New error: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return NewPostgresRepository(db), mock
}

func TestCreate_ReturnsCreatedAt(t *testing.T) {
	repo, mock := newMockDB(t)

	created := time.Date(2025, 1, 2, 3, 4, 5, 0, time.UTC)
	mock.ExpectQuery("INSERT INTO posts").
		WithArgs("p1", "u1", "Title", "Body").
		WillReturnRows(sqlmock.NewRows([]string{"created_at"}).AddRow(created))

	post, err := repo.Create(context.Background(), &models.Post{
		ID: "p1", AuthorID: "u1", Title: "Title", Content: "Body",
	})
	if err != nil {
		t.Fatalf("Create error: %v", err)
	}
	if !post.CreatedAt.Equal(created) {
		t.Fatalf("CreatedAt = %v, want %v", post.CreatedAt, created)
	}
}

func TestGetByID_NotFound(t *testing.T) {
	repo, mock := newMockDB(t)

	mock.ExpectQuery("SELECT p.id").
		WithArgs("nope").
		WillReturnRows(sqlmock.NewRows([]string{"id", "author_id", "title", "content", "created_at", "name", "upvotes"}))

	_, err := repo.GetByID(context.Background(), "nope")
	if !errors.Is(err, common.ErrorNotFound) {
		t.Fatalf("want ErrorNotFound, got %v", err)
	}
}

func TestList_JoinsAuthorAndCount(t *testing.T) {
	repo, mock := newMockDB(t)

	rows := sqlmock.NewRows([]string{"id", "author_id", "title", "content", "created_at", "name", "upvotes"}).
		AddRow("p1", "u1", "One", "x", time.Now(), "Ann", int64(3)).
		AddRow("p2", "u2", "Two", "y", time.Now(), "Bob", int64(0))
	mock.ExpectQuery("SELECT p.id").WillReturnRows(rows)

	got, err := repo.List(context.Background())
	if err != nil {
		t.Fatalf("List error: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("len = %d, want 2", len(got))
	}
	if got[0].AuthorName != "Ann" || got[0].Upvotes != 3 {
		t.Fatalf("unexpected first row: %+v", got[0])
	}
}

func TestExists(t *testing.T) {
	repo, mock := newMockDB(t)

	mock.ExpectQuery("SELECT EXISTS").
		WithArgs("p1").
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(true))

	ok, err := repo.Exists(context.Background(), "p1")
	if err != nil {
		t.Fatalf("Exists error: %v", err)
	}
	if !ok {
		t.Fatalf("Exists = false, want true")
	}
}
