package votes

import (
	"context"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/DarshanchGIT/wordverse/internal/server/models"
)

func newMockRepo(t *testing.T) (*PostgresRepository, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New error: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return NewPostgresRepository(db), mock
}

func TestGet_NoRowMeansNone(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectQuery("SELECT direction FROM votes").
		WithArgs("u1", "p1").
		WillReturnRows(sqlmock.NewRows([]string{"direction"}))

	dir, err := repo.Get(context.Background(), "u1", "p1")
	if err != nil {
		t.Fatalf("Get error: %v", err)
	}
	if dir != models.VoteNone {
		t.Fatalf("direction = %q, want none", dir)
	}
}

func TestGet_ExistingRow(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectQuery("SELECT direction FROM votes").
		WithArgs("u1", "p1").
		WillReturnRows(sqlmock.NewRows([]string{"direction"}).AddRow("up"))

	dir, err := repo.Get(context.Background(), "u1", "p1")
	if err != nil {
		t.Fatalf("Get error: %v", err)
	}
	if dir != models.VoteUp {
		t.Fatalf("direction = %q, want up", dir)
	}
}

func TestGet_BackendError(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectQuery("SELECT direction FROM votes").
		WillReturnError(errors.New("connection refused"))

	_, err := repo.Get(context.Background(), "u1", "p1")
	if err == nil {
		t.Fatalf("expected error for backend failure")
	}
}

func TestUpsert(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectExec("INSERT INTO votes").
		WithArgs("u1", "p1", models.VoteUp).
		WillReturnResult(sqlmock.NewResult(0, 1))

	if err := repo.Upsert(context.Background(), "u1", "p1", models.VoteUp); err != nil {
		t.Fatalf("Upsert error: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("sql expectations: %v", err)
	}
}

func TestCountForPost(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectQuery(`SELECT COUNT\(\*\) FROM votes`).
		WithArgs("p1").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(int64(6)))

	count, err := repo.CountForPost(context.Background(), "p1")
	if err != nil {
		t.Fatalf("CountForPost error: %v", err)
	}
	if count != 6 {
		t.Fatalf("count = %d, want 6", count)
	}
}
