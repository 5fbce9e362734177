package profiles

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"

	"resume-parser/internal/parse"
)

func TestPGRepoCreateMarshalsResult(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	repo := &PGRepo{DB: db}
	profile := Profile{
		ID:         "profile-1",
		UserID:     "user-1",
		DocumentID: "doc-1",
		FileType:   "pdf",
		Result:     parse.Result{Meta: parse.Meta{FileType: "pdf", SHA256: "abc"}},
		Warnings:   2,
		CreatedAt:  time.Now().UTC(),
	}

	mock.ExpectExec("INSERT INTO profiles").
		WithArgs(
			profile.ID,
			profile.UserID,
			profile.DocumentID,
			profile.FileType,
			sqlmock.AnyArg(), // result JSONB
			profile.Warnings,
			profile.CreatedAt,
		).
		WillReturnResult(sqlmock.NewResult(1, 1))

	if err := repo.Create(context.Background(), profile); err != nil {
		t.Fatalf("Create: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("ExpectationsWereMet: %v", err)
	}
}

func TestPGRepoGetByIDUnmarshalsResult(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	repo := &PGRepo{DB: db}

	result := parse.Result{Meta: parse.Meta{FileType: "docx", SHA256: "deadbeef"}}
	resultJSON, err := json.Marshal(result)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}

	createdAt := time.Now().UTC()
	rows := sqlmock.NewRows([]string{"id", "user_id", "document_id", "file_type", "result", "warnings", "created_at"}).
		AddRow("profile-1", "user-1", "doc-1", "docx", resultJSON, 1, createdAt)

	mock.ExpectQuery("SELECT id, user_id, document_id, file_type, result, warnings, created_at").
		WithArgs("user-1", "profile-1").
		WillReturnRows(rows)

	got, err := repo.GetByID(context.Background(), "user-1", "profile-1")
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if got.ID != "profile-1" || got.FileType != "docx" {
		t.Fatalf("unexpected profile: %+v", got)
	}
	if got.Result.Meta.SHA256 != "deadbeef" {
		t.Fatalf("result not unmarshaled: %+v", got.Result.Meta)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("ExpectationsWereMet: %v", err)
	}
}

func TestPGRepoGetByIDNotFound(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	repo := &PGRepo{DB: db}
	mock.ExpectQuery("SELECT id, user_id, document_id, file_type, result, warnings, created_at").
		WithArgs("user-1", "missing").
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	if _, err := repo.GetByID(context.Background(), "user-1", "missing"); err != ErrNotFound {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("ExpectationsWereMet: %v", err)
	}
}
