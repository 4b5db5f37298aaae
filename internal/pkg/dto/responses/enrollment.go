package responses

import (
	"continuity-engine/internal/app/models"
	"time"
)

type Enrollment struct {
	ID                 string    `json:"id"`
	PatientID          string    `json:"patient_id"`
	SuggestionID       string    `json:"suggestion_id"`
	ProgramType        string    `json:"program_type"`
	BillingProgramCode string    `json:"billing_program_code"`
	CPTCode            string    `json:"cpt_code,omitempty"`
	Status             string    `json:"status"`
	EnrolledBy         string    `json:"enrolled_by"`
	CreatedAt          time.Time `json:"created_at"`
}

func NewEnrollmentList(enrollmentModels []models.Enrollment) []Enrollment {
	enrollments := make([]Enrollment, 0, len(enrollmentModels))
	for _, model := range enrollmentModels {
		enrollments = append(enrollments, Enrollment{
			ID:                 model.ID,
			PatientID:          model.PatientID,
			SuggestionID:       model.SuggestionID,
			ProgramType:        model.ProgramType,
			BillingProgramCode: model.BillingProgramCode,
			CPTCode:            model.CPTCode,
			Status:             model.Status,
			EnrolledBy:         model.EnrolledBy,
			CreatedAt:          model.CreatedAt,
		})
	}
	return enrollments
}
