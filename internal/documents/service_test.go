package documents

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	localstore "resume-parser/internal/shared/storage/object/local"
	"resume-parser/internal/shared/util"
)

func newTestService(t *testing.T) *Service {
	t.Helper()
	return &Service{
		Store:           localstore.New(t.TempDir()),
		Repo:            NewMemoryRepo(),
		StorageProvider: "local",
	}
}

func TestServiceUploadRoundTrip(t *testing.T) {
	svc := newTestService(t)
	payload := []byte("Jane Doe\njane@example.com")

	doc, err := svc.Upload(context.Background(), "user-1", "resume.txt", bytes.NewReader(payload))
	if err != nil {
		t.Fatalf("Upload: %v", err)
	}
	if doc.ID == "" {
		t.Fatal("document ID should be assigned")
	}
	if doc.SizeBytes != int64(len(payload)) {
		t.Fatalf("size: expected %d, got %d", len(payload), doc.SizeBytes)
	}
	if doc.Checksum != util.Checksum(payload) {
		t.Fatalf("checksum mismatch: %q", doc.Checksum)
	}

	got, data, err := svc.Open(context.Background(), "user-1", doc.ID)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	if got.ID != doc.ID {
		t.Fatalf("opened wrong document: %+v", got)
	}
	if !bytes.Equal(data, payload) {
		t.Fatalf("payload mismatch: %q", data)
	}
}

func TestServiceUploadValidatesInput(t *testing.T) {
	svc := newTestService(t)
	if _, err := svc.Upload(context.Background(), "", "resume.txt", strings.NewReader("x")); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
	if _, err := svc.Upload(context.Background(), "user-1", "", strings.NewReader("x")); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestServiceCurrentReturnsNewest(t *testing.T) {
	svc := newTestService(t)

	first, err := svc.Upload(context.Background(), "user-1", "old.txt", strings.NewReader("old"))
	if err != nil {
		t.Fatalf("Upload old: %v", err)
	}
	second, err := svc.Upload(context.Background(), "user-1", "new.txt", strings.NewReader("new"))
	if err != nil {
		t.Fatalf("Upload new: %v", err)
	}

	current, err := svc.Current(context.Background(), "user-1")
	if err != nil {
		t.Fatalf("Current: %v", err)
	}
	if current.ID != second.ID {
		t.Fatalf("expected newest document %q, got %q", second.ID, current.ID)
	}
	if current.ID == first.ID {
		t.Fatal("current should not be the older upload")
	}
}

func TestServiceCurrentNotFound(t *testing.T) {
	svc := newTestService(t)
	if _, err := svc.Current(context.Background(), "user-1"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestServiceOpenUnknownDocument(t *testing.T) {
	svc := newTestService(t)
	if _, _, err := svc.Open(context.Background(), "user-1", "missing"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestServiceListIsolatesUsers(t *testing.T) {
	svc := newTestService(t)
	if _, err := svc.Upload(context.Background(), "user-1", "a.txt", strings.NewReader("a")); err != nil {
		t.Fatalf("Upload: %v", err)
	}
	if _, err := svc.Upload(context.Background(), "user-2", "b.txt", strings.NewReader("b")); err != nil {
		t.Fatalf("Upload: %v", err)
	}

	docs, err := svc.List(context.Background(), "user-1", 10, 0)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(docs) != 1 || docs[0].UserID != "user-1" {
		t.Fatalf("expected only user-1 documents, got %+v", docs)
	}
}
