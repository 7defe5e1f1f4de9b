// infrastructure/persistence/postgres/post_repository_test.go
package postgres

import (
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
)

func TestDecrementLikesStopsAtZero(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewPostRepository(db)

	postID := uuid.New()

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta(
		`UPDATE "posts" SET "likes"=likes - 1 WHERE id = $1 AND likes > 0`)).
		WithArgs(postID).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectCommit()

	if err := repo.DecrementLikes(postID); err != nil {
		t.Fatalf("decrement likes: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("expectations: %v", err)
	}
}
