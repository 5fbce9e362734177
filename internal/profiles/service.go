package profiles

import (
	"context"
	"time"

	"github.com/google/uuid"

	"resume-parser/internal/documents"
	"resume-parser/internal/parse"
	"resume-parser/internal/shared/metrics"
	"resume-parser/internal/shared/telemetry"
)

// DocumentOpener loads stored document bytes for a user.
type DocumentOpener interface {
	Open(ctx context.Context, userID, documentID string) (documents.Document, []byte, error)
}

// Service runs the parse pipeline over stored or uploaded documents and
// persists the results.
type Service struct {
	Repo      Repo
	Documents DocumentOpener
	Pipeline  *parse.Pipeline
}

// Create parses a previously uploaded document and stores the profile.
func (s *Service) Create(ctx context.Context, userID, documentID string) (Profile, error) {
	if userID == "" || documentID == "" {
		return Profile{}, ErrInvalidInput
	}

	doc, data, err := s.Documents.Open(ctx, userID, documentID)
	if err != nil {
		return Profile{}, err
	}

	result, err := s.runPipeline(ctx, data, doc.OriginalFilename)
	if err != nil {
		return Profile{}, err
	}

	profile := Profile{
		ID:         uuid.NewString(),
		UserID:     userID,
		DocumentID: doc.ID,
		FileType:   result.Meta.FileType,
		Result:     result,
		Warnings:   len(result.Warnings),
		CreatedAt:  time.Now().UTC(),
	}

	if err := s.Repo.Create(ctx, profile); err != nil {
		return Profile{}, err
	}
	return profile, nil
}

// Preview parses raw bytes without persisting anything. It is used by the
// stateless preview endpoint.
func (s *Service) Preview(ctx context.Context, fileName string, data []byte) (parse.Result, error) {
	return s.runPipeline(ctx, data, fileName)
}

// Get returns a stored profile for a user.
func (s *Service) Get(ctx context.Context, userID, profileID string) (Profile, error) {
	if userID == "" || profileID == "" {
		return Profile{}, ErrInvalidInput
	}
	return s.Repo.GetByID(ctx, userID, profileID)
}

// List returns stored profiles for a user, newest first.
func (s *Service) List(ctx context.Context, userID string, limit, offset int) ([]Profile, error) {
	if userID == "" {
		return nil, ErrInvalidInput
	}
	return s.Repo.ListByUser(ctx, userID, limit, offset)
}

func (s *Service) runPipeline(ctx context.Context, data []byte, fileName string) (parse.Result, error) {
	metrics.IncParseStarted()
	started := time.Now()

	result, err := s.Pipeline.Run(ctx, data, fileName)

	elapsedMs := float64(time.Since(started)) / float64(time.Millisecond)
	metrics.ObserveParseDurationMs(elapsedMs)

	if err != nil {
		metrics.IncParseFailed()
		telemetry.Error("parse failed", map[string]any{
			"error":       err.Error(),
			"duration_ms": elapsedMs,
		})
		return result, err
	}

	metrics.IncParseCompleted()
	telemetry.Info("parse completed", map[string]any{
		"file_type":   result.Meta.FileType,
		"warnings":    len(result.Warnings),
		"duration_ms": elapsedMs,
	})
	return result, nil
}
