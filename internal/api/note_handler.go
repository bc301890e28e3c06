package api

import (
	"net/http"

	"github.com/phrazzld/nursenote-api/internal/api/shared"
	"github.com/phrazzld/nursenote-api/internal/domain"
	"github.com/phrazzld/nursenote-api/internal/service"
)

// NoteHandler handles documentation generation requests
type NoteHandler struct {
	noteService service.NoteService
}

// NewNoteHandler creates a new NoteHandler
func NewNoteHandler(noteService service.NoteService) *NoteHandler {
	return &NoteHandler{noteService: noteService}
}

// Generate handles POST /generate requests
func (h *NoteHandler) Generate(w http.ResponseWriter, r *http.Request) {
	var req GenerateRequest
	if !decodeRequest(w, r, &req) {
		return
	}

	result, err := h.noteService.GenerateNote(r.Context(), req.ToVisitNote())
	if err != nil {
		respondWithServiceError(w, r, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, GenerateResponse{Output: result.Text})
}

// GenerateV2 handles POST /v2/generate requests
func (h *NoteHandler) GenerateV2(w http.ResponseWriter, r *http.Request) {
	var req GenerateV2Request
	if !decodeRequest(w, r, &req) {
		return
	}

	if err := shared.ValidateRequest(req); err != nil {
		shared.RespondWithErrorAndLog(w, r, http.StatusBadRequest, SanitizeValidationError(err), err)
		return
	}

	structured, err := h.noteService.GenerateStructuredNote(r.Context(), req.ToVisitNote())
	if err != nil {
		respondWithServiceError(w, r, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, GenerateV2Response{
		Output: structured.Result.Text,
		SOAP:   structured.Document.SOAP,
		Plan:   structured.Document.Plan,
	})
}

// decodeRequest decodes the body into v, writing the error response and
// returning false when it cannot.
func decodeRequest(w http.ResponseWriter, r *http.Request, v interface{}) bool {
	err := shared.DecodeJSON(w, r, v)
	if err == nil {
		return true
	}

	if shared.IsBodyTooLarge(err) {
		shared.RespondWithErrorAndLog(w, r, http.StatusRequestEntityTooLarge, MsgRequestTooLarge, err)
		return false
	}

	shared.RespondWithErrorAndLog(w, r, http.StatusBadRequest, MsgInvalidRequest, err)
	return false
}

func respondWithServiceError(w http.ResponseWriter, r *http.Request, err error) {
	status := MapErrorToStatusCode(err)
	message := GetSafeErrorMessage(err)

	// Validation errors carry no cause worth logging beyond the message.
	if domain.KindOf(err) == domain.KindValidation {
		shared.RespondWithError(w, r, status, message)
		return
	}

	shared.RespondWithErrorAndLog(w, r, status, message, err)
}
