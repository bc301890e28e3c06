package api

import (
	"github.com/phrazzld/nursenote-api/internal/domain"
	"github.com/phrazzld/nursenote-api/internal/soap"
)

// GenerateRequest is the body of POST /generate. Every field is optional;
// the S-or-O rule is enforced by the domain.
type GenerateRequest struct {
	ChiefComplaint string `json:"chief_complaint"`
	S              string `json:"s"`
	O              string `json:"o"`
}

// ToVisitNote converts the request to the domain input.
func (r GenerateRequest) ToVisitNote() domain.VisitNote {
	return domain.VisitNote{
		ChiefComplaint: r.ChiefComplaint,
		Subjective:     r.S,
		Objective:      r.O,
	}
}

// GenerateV2Request is the body of POST /v2/generate: the visit note plus
// visit metadata.
type GenerateV2Request struct {
	UserName       string   `json:"userName"       validate:"max=100"`
	Diagnosis      string   `json:"diagnosis"      validate:"max=200"`
	Nurses         []string `json:"nurses"         validate:"max=10,dive,max=100"`
	VisitDate      string   `json:"visitDate"      validate:"omitempty,datetime=2006-01-02"`
	StartTime      string   `json:"startTime"      validate:"omitempty,datetime=15:04"`
	EndTime        string   `json:"endTime"        validate:"omitempty,datetime=15:04"`
	ChiefComplaint string   `json:"chiefComplaint"`
	SText          string   `json:"sText"`
	OText          string   `json:"oText"`
}

// ToVisitNote converts the request to the domain input.
func (r GenerateV2Request) ToVisitNote() domain.VisitNote {
	return domain.VisitNote{
		ChiefComplaint: r.ChiefComplaint,
		Subjective:     r.SText,
		Objective:      r.OText,
		Visit: &domain.VisitInfo{
			UserName:  r.UserName,
			Diagnosis: r.Diagnosis,
			Nurses:    r.Nurses,
			VisitDate: r.VisitDate,
			StartTime: r.StartTime,
			EndTime:   r.EndTime,
		},
	}
}

// GenerateResponse is the success body of POST /generate.
type GenerateResponse struct {
	Output string `json:"output"`
}

// GenerateV2Response is the success body of POST /v2/generate.
type GenerateV2Response struct {
	Output string           `json:"output"`
	SOAP   soap.SOAP        `json:"soap"`
	Plan   soap.NursingPlan `json:"plan"`
}

// HealthResponse is the body of GET /health.
type HealthResponse struct {
	Status string `json:"status"`
}
