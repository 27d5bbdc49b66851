package postgres

import (
	"context"
	"errors"
	"fmt"

	"candidate-search-backend/internal/domain"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/lib/pq"
)

type candidateRepository struct {
	db *pgxpool.Pool
}

func NewCandidateRepository(db *pgxpool.Pool) domain.CandidateRepository {
	return &candidateRepository{db: db}
}

func (r *candidateRepository) GetByUserID(ctx context.Context, userID uuid.UUID) (*domain.CandidateDetails, error) {
	query := `
		SELECT user_id, current_job_title, desired_job_title, city, country,
		       desired_salary, salary_currency, employment_type, work_model, work_schedule,
		       COALESCE(summary, ''), is_actively_looking, total_years_of_experience,
		       is_ready_to_relocate, is_ready_for_business_trips, COALESCE(citizenship, ''),
		       keywords, last_activity
		FROM candidate_profiles WHERE user_id = $1`

	var p domain.CandidateProfile
	var keywords []string

	err := r.db.QueryRow(ctx, query, userID).Scan(
		&p.UserID, &p.CurrentJobTitle, &p.DesiredJobTitle, &p.City, &p.Country,
		&p.DesiredSalary, &p.SalaryCurrency, &p.EmploymentType, &p.WorkModel, &p.WorkSchedule,
		&p.Summary, &p.IsActivelyLooking, &p.TotalYearsOfExperience,
		&p.IsReadyToRelocate, &p.IsReadyForBusinessTrips, &p.Citizenship,
		pq.Array(&keywords), &p.LastActivity,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	p.Keywords = keywords

	details := &domain.CandidateDetails{
		Profile:       p,
		Experiences:   []domain.CandidateExperience{},
		Educations:    []domain.CandidateEducation{},
		Skills:        []domain.CandidateSkill{},
		Languages:     []domain.CandidateLanguage{},
		TestResults:   []domain.TestResult{},
		Psychometrics: []domain.PsychometricResult{},
	}

	if err := r.loadCollections(ctx, userID, details); err != nil {
		return nil, err
	}
	return details, nil
}

func (r *candidateRepository) loadCollections(ctx context.Context, userID uuid.UUID, details *domain.CandidateDetails) error {
	expQuery := `SELECT id, job_title, company_name, COALESCE(city, ''), start_date, end_date,
	             is_current, COALESCE(description, '')
	             FROM candidate_experiences WHERE candidate_profile_id = $1 ORDER BY start_date DESC`
	rows, err := r.db.Query(ctx, expQuery, userID)
	if err != nil {
		return fmt.Errorf("failed to fetch experiences: %w", err)
	}
	for rows.Next() {
		var e domain.CandidateExperience
		if err := rows.Scan(&e.ID, &e.JobTitle, &e.CompanyName, &e.City, &e.StartDate, &e.EndDate, &e.IsCurrent, &e.Description); err != nil {
			rows.Close()
			return err
		}
		details.Experiences = append(details.Experiences, e)
	}
	rows.Close()

	eduQuery := `SELECT id, institution_name, degree, field_of_study, start_date, end_date, COALESCE(grade, '')
	             FROM candidate_educations WHERE candidate_profile_id = $1 ORDER BY start_date DESC`
	rows, err = r.db.Query(ctx, eduQuery, userID)
	if err != nil {
		return fmt.Errorf("failed to fetch educations: %w", err)
	}
	for rows.Next() {
		var e domain.CandidateEducation
		if err := rows.Scan(&e.ID, &e.InstitutionName, &e.Degree, &e.FieldOfStudy, &e.StartDate, &e.EndDate, &e.Grade); err != nil {
			rows.Close()
			return err
		}
		details.Educations = append(details.Educations, e)
	}
	rows.Close()

	skillQuery := `SELECT id, skill_name, level, years_of_experience
	               FROM candidate_skills WHERE candidate_profile_id = $1 ORDER BY level DESC, skill_name`
	rows, err = r.db.Query(ctx, skillQuery, userID)
	if err != nil {
		return fmt.Errorf("failed to fetch skills: %w", err)
	}
	for rows.Next() {
		var s domain.CandidateSkill
		if err := rows.Scan(&s.ID, &s.SkillName, &s.Level, &s.YearsOfExperience); err != nil {
			rows.Close()
			return err
		}
		details.Skills = append(details.Skills, s)
	}
	rows.Close()

	langQuery := `SELECT id, language_name, proficiency_level
	              FROM candidate_languages WHERE candidate_profile_id = $1 ORDER BY language_name`
	rows, err = r.db.Query(ctx, langQuery, userID)
	if err != nil {
		return fmt.Errorf("failed to fetch languages: %w", err)
	}
	for rows.Next() {
		var l domain.CandidateLanguage
		if err := rows.Scan(&l.ID, &l.LanguageName, &l.ProficiencyLevel); err != nil {
			rows.Close()
			return err
		}
		details.Languages = append(details.Languages, l)
	}
	rows.Close()

	testQuery := `SELECT id, test_name, category, score, score_unit, completion_date
	              FROM test_results WHERE candidate_profile_id = $1 ORDER BY completion_date DESC`
	rows, err = r.db.Query(ctx, testQuery, userID)
	if err != nil {
		return fmt.Errorf("failed to fetch test results: %w", err)
	}
	for rows.Next() {
		var t domain.TestResult
		if err := rows.Scan(&t.ID, &t.TestName, &t.Category, &t.Score, &t.ScoreUnit, &t.CompletionDate); err != nil {
			rows.Close()
			return err
		}
		details.TestResults = append(details.TestResults, t)
	}
	rows.Close()

	psyQuery := `SELECT id, assessment_type, result_code, COALESCE(description, ''), completion_date
	             FROM psychometric_results WHERE candidate_profile_id = $1 ORDER BY completion_date DESC`
	rows, err = r.db.Query(ctx, psyQuery, userID)
	if err != nil {
		return fmt.Errorf("failed to fetch psychometrics: %w", err)
	}
	for rows.Next() {
		var p domain.PsychometricResult
		if err := rows.Scan(&p.ID, &p.AssessmentType, &p.ResultCode, &p.Description, &p.CompletionDate); err != nil {
			rows.Close()
			return err
		}
		details.Psychometrics = append(details.Psychometrics, p)
	}
	rows.Close()

	return nil
}

// Upsert replaces the profile row and the owned collections wholesale inside
// one transaction. Collection rows get fresh server-side ids on every write.
func (r *candidateRepository) Upsert(ctx context.Context, details *domain.CandidateDetails) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	p := &details.Profile
	if p.UserID == uuid.Nil {
		return errors.New("user_id is required")
	}

	profileQuery := `
		INSERT INTO candidate_profiles (
			user_id, current_job_title, desired_job_title, city, country,
			desired_salary, salary_currency, employment_type, work_model, work_schedule,
			summary, is_actively_looking, total_years_of_experience,
			is_ready_to_relocate, is_ready_for_business_trips, citizenship, keywords, last_activity
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, NOW())
		ON CONFLICT (user_id) DO UPDATE SET
			current_job_title = EXCLUDED.current_job_title,
			desired_job_title = EXCLUDED.desired_job_title,
			city = EXCLUDED.city,
			country = EXCLUDED.country,
			desired_salary = EXCLUDED.desired_salary,
			salary_currency = EXCLUDED.salary_currency,
			employment_type = EXCLUDED.employment_type,
			work_model = EXCLUDED.work_model,
			work_schedule = EXCLUDED.work_schedule,
			summary = EXCLUDED.summary,
			is_actively_looking = EXCLUDED.is_actively_looking,
			total_years_of_experience = EXCLUDED.total_years_of_experience,
			is_ready_to_relocate = EXCLUDED.is_ready_to_relocate,
			is_ready_for_business_trips = EXCLUDED.is_ready_for_business_trips,
			citizenship = EXCLUDED.citizenship,
			keywords = EXCLUDED.keywords,
			last_activity = NOW()`

	_, err = tx.Exec(ctx, profileQuery,
		p.UserID, p.CurrentJobTitle, p.DesiredJobTitle, p.City, p.Country,
		p.DesiredSalary, p.SalaryCurrency, p.EmploymentType, p.WorkModel, p.WorkSchedule,
		p.Summary, p.IsActivelyLooking, p.TotalYearsOfExperience,
		p.IsReadyToRelocate, p.IsReadyForBusinessTrips, p.Citizenship, pq.Array(p.Keywords),
	)
	if err != nil {
		return fmt.Errorf("failed to upsert profile: %w", err)
	}

	tables := []string{
		"candidate_experiences", "candidate_educations", "candidate_skills",
		"candidate_languages", "test_results", "psychometric_results",
	}
	for _, table := range tables {
		if _, err := tx.Exec(ctx, `DELETE FROM `+table+` WHERE candidate_profile_id = $1`, p.UserID); err != nil {
			return fmt.Errorf("failed to clear %s: %w", table, err)
		}
	}

	expInsert := `INSERT INTO candidate_experiences
		(id, candidate_profile_id, job_title, company_name, city, start_date, end_date, is_current, description)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	for i := range details.Experiences {
		e := &details.Experiences[i]
		e.ID = uuid.New()
		if _, err := tx.Exec(ctx, expInsert, e.ID, p.UserID, e.JobTitle, e.CompanyName, e.City, e.StartDate, e.EndDate, e.IsCurrent, e.Description); err != nil {
			return fmt.Errorf("failed to insert experience: %w", err)
		}
	}

	eduInsert := `INSERT INTO candidate_educations
		(id, candidate_profile_id, institution_name, degree, field_of_study, start_date, end_date, grade)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	for i := range details.Educations {
		e := &details.Educations[i]
		e.ID = uuid.New()
		if _, err := tx.Exec(ctx, eduInsert, e.ID, p.UserID, e.InstitutionName, e.Degree, e.FieldOfStudy, e.StartDate, e.EndDate, e.Grade); err != nil {
			return fmt.Errorf("failed to insert education: %w", err)
		}
	}

	skillInsert := `INSERT INTO candidate_skills
		(id, candidate_profile_id, skill_name, level, years_of_experience)
		VALUES ($1, $2, $3, $4, $5)`
	for i := range details.Skills {
		s := &details.Skills[i]
		s.ID = uuid.New()
		if _, err := tx.Exec(ctx, skillInsert, s.ID, p.UserID, s.SkillName, s.Level, s.YearsOfExperience); err != nil {
			return fmt.Errorf("failed to insert skill: %w", err)
		}
	}

	langInsert := `INSERT INTO candidate_languages
		(id, candidate_profile_id, language_name, proficiency_level)
		VALUES ($1, $2, $3, $4)`
	for i := range details.Languages {
		l := &details.Languages[i]
		l.ID = uuid.New()
		if _, err := tx.Exec(ctx, langInsert, l.ID, p.UserID, l.LanguageName, l.ProficiencyLevel); err != nil {
			return fmt.Errorf("failed to insert language: %w", err)
		}
	}

	testInsert := `INSERT INTO test_results
		(id, candidate_profile_id, test_name, category, score, score_unit, completion_date)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	for i := range details.TestResults {
		t := &details.TestResults[i]
		t.ID = uuid.New()
		if _, err := tx.Exec(ctx, testInsert, t.ID, p.UserID, t.TestName, t.Category, t.Score, t.ScoreUnit, t.CompletionDate); err != nil {
			return fmt.Errorf("failed to insert test result: %w", err)
		}
	}

	psyInsert := `INSERT INTO psychometric_results
		(id, candidate_profile_id, assessment_type, result_code, description, completion_date)
		VALUES ($1, $2, $3, $4, $5, $6)`
	for i := range details.Psychometrics {
		psy := &details.Psychometrics[i]
		psy.ID = uuid.New()
		if _, err := tx.Exec(ctx, psyInsert, psy.ID, p.UserID, psy.AssessmentType, psy.ResultCode, psy.Description, psy.CompletionDate); err != nil {
			return fmt.Errorf("failed to insert psychometric result: %w", err)
		}
	}

	return tx.Commit(ctx)
}

func (r *candidateRepository) AddSkillValidation(ctx context.Context, v *domain.SkillValidation) error {
	query := `INSERT INTO skill_validations (candidate_skill_id, test_result_id, is_successful, validated_at)
	          VALUES ($1, $2, $3, $4)
	          ON CONFLICT (candidate_skill_id, test_result_id) DO UPDATE SET
	              is_successful = EXCLUDED.is_successful,
	              validated_at = EXCLUDED.validated_at`
	_, err := r.db.Exec(ctx, query, v.CandidateSkillID, v.TestResultID, v.IsSuccessful, v.ValidatedAt)
	return err
}
