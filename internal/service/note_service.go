package service

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"github.com/phrazzld/nursenote-api/internal/domain"
	"github.com/phrazzld/nursenote-api/internal/generation"
	"github.com/phrazzld/nursenote-api/internal/platform/logger"
	"github.com/phrazzld/nursenote-api/internal/prompt"
	"github.com/phrazzld/nursenote-api/internal/soap"
)

// ErrNilGenerator is returned by NewNoteService when no generator is given.
var ErrNilGenerator = errors.New("generator cannot be nil")

// NoteService turns a nurse's visit input into documentation text.
type NoteService interface {
	// GenerateNote validates the note, builds the documentation prompt and
	// returns the provider's text. Invalid input never reaches the provider.
	GenerateNote(ctx context.Context, note domain.VisitNote) (*domain.GenerationResult, error)

	// GenerateStructuredNote does the same as GenerateNote and also splits
	// the text into SOAP and care plan sections.
	GenerateStructuredNote(ctx context.Context, note domain.VisitNote) (*StructuredNote, error)
}

// StructuredNote is generated text together with its parsed sections.
type StructuredNote struct {
	Result   *domain.GenerationResult
	Document soap.Document
}

// noteServiceImpl implements the NoteService interface
type noteServiceImpl struct {
	generator generation.Generator
	logger    *slog.Logger
}

// NewNoteService creates a NoteService backed by generator.
// It returns an error if generator is nil.
func NewNoteService(generator generation.Generator, log *slog.Logger) (NoteService, error) {
	if generator == nil {
		return nil, ErrNilGenerator
	}

	if log == nil {
		log = slog.Default()
	}

	return &noteServiceImpl{
		generator: generator,
		logger:    log.With("component", "note_service"),
	}, nil
}

// GenerateNote implements NoteService.
func (s *noteServiceImpl) GenerateNote(
	ctx context.Context,
	note domain.VisitNote,
) (*domain.GenerationResult, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	note = note.Normalized()
	if err := note.Validate(); err != nil {
		log.InfoContext(ctx, "visit note rejected",
			"reason", domain.KindOf(err).String(),
			"has_visit_info", note.Visit != nil)
		return nil, err
	}

	p := prompt.Build(note)

	log.DebugContext(ctx, "generating visit documentation",
		"prompt_length", len(p.Text),
		"has_visit_info", note.Visit != nil)

	result, err := s.generator.Generate(ctx, p)
	if err != nil {
		return nil, asServiceError(err)
	}
	if result == nil || strings.TrimSpace(result.Text) == "" {
		return nil, domain.NewProviderError("empty response", generation.ErrEmptyResponse)
	}

	return result, nil
}

// GenerateStructuredNote implements NoteService.
func (s *noteServiceImpl) GenerateStructuredNote(
	ctx context.Context,
	note domain.VisitNote,
) (*StructuredNote, error) {
	result, err := s.GenerateNote(ctx, note)
	if err != nil {
		return nil, err
	}

	doc := soap.Parse(result.Text)
	if doc.IsEmpty() {
		logger.FromContextOrDefault(ctx, s.logger).WarnContext(ctx,
			"generated text has no recognisable sections",
			"output_length", len(result.Text))
	}

	return &StructuredNote{Result: result, Document: doc}, nil
}

// asServiceError guarantees that a generator failure carries a provider or
// unexpected kind.
func asServiceError(err error) error {
	switch domain.KindOf(err) {
	case domain.KindProvider:
		return err
	case domain.KindUnexpected:
		var de *domain.Error
		if errors.As(err, &de) {
			return err
		}
	}
	return domain.NewUnexpectedError("generation failed", err)
}
