package domain

import (
	"context"
	"time"

	"candidate-search-backend/pkg/result"

	"github.com/google/uuid"
)

// CandidateProfile shares its key with the owning user.
type CandidateProfile struct {
	UserID                  uuid.UUID `json:"user_id"`
	CurrentJobTitle         string    `json:"current_job_title" validate:"max=100"`
	DesiredJobTitle         string    `json:"desired_job_title" validate:"required,max=100"`
	City                    string    `json:"city" validate:"max=100"`
	Country                 string    `json:"country" validate:"max=50"`
	DesiredSalary           float64   `json:"desired_salary" validate:"gte=0"`
	SalaryCurrency          Currency  `json:"salary_currency"`
	EmploymentType          EmploymentType `json:"employment_type"`
	WorkModel               WorkModel      `json:"work_model"`
	WorkSchedule            WorkSchedule   `json:"work_schedule"`
	Summary                 string    `json:"summary,omitempty" validate:"max=2000"`
	IsActivelyLooking       bool      `json:"is_actively_looking"`
	TotalYearsOfExperience  int       `json:"total_years_of_experience" validate:"gte=0"`
	IsReadyToRelocate       bool      `json:"is_ready_to_relocate"`
	IsReadyForBusinessTrips bool      `json:"is_ready_for_business_trips"`
	Citizenship             string    `json:"citizenship,omitempty" validate:"max=50"`
	Keywords                []string  `json:"keywords"`
	LastActivity            time.Time `json:"last_activity"`
}

type CandidateExperience struct {
	ID          uuid.UUID  `json:"id"`
	JobTitle    string     `json:"job_title" validate:"required,max=100"`
	CompanyName string     `json:"company_name" validate:"required,max=100"`
	City        string     `json:"city,omitempty" validate:"max=100"`
	StartDate   time.Time  `json:"start_date"`
	EndDate     *time.Time `json:"end_date,omitempty"`
	IsCurrent   bool       `json:"is_current"`
	Description string     `json:"description,omitempty"`
}

type CandidateEducation struct {
	ID              uuid.UUID  `json:"id"`
	InstitutionName string     `json:"institution_name" validate:"required,max=100"`
	Degree          string     `json:"degree" validate:"required,max=100"`
	FieldOfStudy    string     `json:"field_of_study" validate:"required,max=100"`
	StartDate       time.Time  `json:"start_date"`
	EndDate         *time.Time `json:"end_date,omitempty"`
	Grade           string     `json:"grade,omitempty" validate:"max=50"`
}

type CandidateSkill struct {
	ID                uuid.UUID `json:"id"`
	SkillName         string    `json:"skill_name" validate:"required,max=100"`
	Level             int       `json:"level" validate:"min=1,max=10"`
	YearsOfExperience *int      `json:"years_of_experience,omitempty"`
}

type CandidateLanguage struct {
	ID               uuid.UUID     `json:"id"`
	LanguageName     string        `json:"language_name" validate:"required,max=50"`
	ProficiencyLevel LanguageLevel `json:"proficiency_level"`
}

type TestResult struct {
	ID             uuid.UUID    `json:"id"`
	TestName       string       `json:"test_name" validate:"required,max=100"`
	Category       TestCategory `json:"category"`
	Score          float64      `json:"score"`
	ScoreUnit      ScoreUnit    `json:"score_unit"`
	CompletionDate time.Time    `json:"completion_date"`
}

// SkillValidation links a self-reported skill to a corroborating test result.
type SkillValidation struct {
	CandidateSkillID uuid.UUID `json:"candidate_skill_id"`
	TestResultID     uuid.UUID `json:"test_result_id"`
	IsSuccessful     bool      `json:"is_successful"`
	ValidatedAt      time.Time `json:"validated_at"`
}

type PsychometricResult struct {
	ID             uuid.UUID      `json:"id"`
	AssessmentType AssessmentType `json:"assessment_type"`
	ResultCode     string         `json:"result_code" validate:"required,max=50"`
	Description    string         `json:"description,omitempty"`
	CompletionDate time.Time      `json:"completion_date"`
}

// CandidateDetails is the profile with every owned collection loaded.
type CandidateDetails struct {
	Profile       CandidateProfile     `json:"profile"`
	Experiences   []CandidateExperience `json:"experiences"`
	Educations    []CandidateEducation  `json:"educations"`
	Skills        []CandidateSkill      `json:"skills"`
	Languages     []CandidateLanguage   `json:"languages"`
	TestResults   []TestResult          `json:"test_results"`
	Psychometrics []PsychometricResult  `json:"psychometrics"`
}

type CandidateRepository interface {
	GetByUserID(ctx context.Context, userID uuid.UUID) (*CandidateDetails, error)
	// Upsert replaces the core profile row and the owned collections in a
	// single transaction. The owner key never changes.
	Upsert(ctx context.Context, details *CandidateDetails) error
	AddSkillValidation(ctx context.Context, v *SkillValidation) error
}

type CandidateProfileService interface {
	GetByUserID(ctx context.Context, userID uuid.UUID) result.Result[CandidateDetails]
	Upsert(ctx context.Context, userID uuid.UUID, details CandidateDetails) result.Result[CandidateDetails]
	ValidateSkill(ctx context.Context, userID uuid.UUID, v SkillValidation) result.Empty
}
