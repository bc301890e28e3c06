package prompt

import (
	"bytes"
	"embed"
	"fmt"
	"strings"
	"text/template"

	"github.com/phrazzld/nursenote-api/internal/domain"
)

// SystemInstruction is the role instruction sent ahead of every prompt.
const SystemInstruction = "You are an AI assistant specialized in psychiatric home-visit nursing documentation."

//go:embed templates/*.tmpl
var templateFS embed.FS

var visitNoteTemplate = template.Must(
	template.New("visit_note.tmpl").
		Funcs(template.FuncMap{"join": strings.Join}).
		ParseFS(templateFS, "templates/visit_note.tmpl"),
)

// Build renders the visit note into the fixed documentation prompt.
//
// Every field is trimmed before substitution. Build performs no validation
// and accepts any input, including a note whose fields are all empty; the
// same note always produces the same prompt.
func Build(note domain.VisitNote) domain.Prompt {
	data := note.Normalized()

	var buf bytes.Buffer
	if err := visitNoteTemplate.Execute(&buf, data); err != nil {
		// The template is parsed at init and only reads string fields, so an
		// execution error means the embedded template itself is broken.
		panic(fmt.Sprintf("prompt: execute visit note template: %v", err))
	}

	return domain.Prompt{
		System: SystemInstruction,
		Text:   buf.String(),
	}
}
