package domain

import (
	"strings"
	"unicode/utf8"
)

// MaxFieldLength is the maximum number of characters accepted in any single
// free-text field of a visit note.
const MaxFieldLength = 8000

// Caller-facing validation messages.
const (
	MsgSubjectiveOrObjectiveRequired = "SまたはOのいずれか一方は必須です。"
	MsgFieldTooLong                  = "入力が長すぎます。"
)

// VisitNote is the nurse's structured input for one home visit.
type VisitNote struct {
	// ChiefComplaint is a short summary line (主訴). Optional.
	ChiefComplaint string

	// Subjective holds the service user's own words (S).
	Subjective string

	// Objective holds the nurse's observations (O).
	Objective string

	// Visit carries visit metadata for the extended request schema.
	// It is nil for the basic schema.
	Visit *VisitInfo
}

// VisitInfo describes when and by whom a visit was made.
type VisitInfo struct {
	UserName  string
	Diagnosis string
	Nurses    []string
	VisitDate string
	StartTime string
	EndTime   string
}

// Normalized returns a copy of the note with every text field trimmed and
// blank nurse names dropped.
func (n VisitNote) Normalized() VisitNote {
	out := VisitNote{
		ChiefComplaint: strings.TrimSpace(n.ChiefComplaint),
		Subjective:     strings.TrimSpace(n.Subjective),
		Objective:      strings.TrimSpace(n.Objective),
	}
	if n.Visit != nil {
		v := VisitInfo{
			UserName:  strings.TrimSpace(n.Visit.UserName),
			Diagnosis: strings.TrimSpace(n.Visit.Diagnosis),
			VisitDate: strings.TrimSpace(n.Visit.VisitDate),
			StartTime: strings.TrimSpace(n.Visit.StartTime),
			EndTime:   strings.TrimSpace(n.Visit.EndTime),
		}
		for _, name := range n.Visit.Nurses {
			if name = strings.TrimSpace(name); name != "" {
				v.Nurses = append(v.Nurses, name)
			}
		}
		out.Visit = &v
	}
	return out
}

// Validate checks the note invariants: at least one of S or O must contain
// non-whitespace text, and no field may exceed MaxFieldLength characters.
// It returns a validation *Error.
func (n VisitNote) Validate() error {
	if strings.TrimSpace(n.Subjective) == "" && strings.TrimSpace(n.Objective) == "" {
		return NewValidationError(MsgSubjectiveOrObjectiveRequired)
	}

	for _, field := range []string{n.ChiefComplaint, n.Subjective, n.Objective} {
		if utf8.RuneCountInString(field) > MaxFieldLength {
			return NewValidationError(MsgFieldTooLong)
		}
	}

	return nil
}

// Prompt is the fully rendered input for the generation provider.
type Prompt struct {
	// System is the role instruction sent ahead of the user text.
	System string

	// Text is the user prompt with the visit note substituted in.
	Text string
}

// GenerationResult is the documentation text returned by the provider.
type GenerationResult struct {
	Text     string
	Provider string
	Model    string
}
