package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/careerfinder/career-finder/internal/model"
)

// ApplicationRepo encapsulates all database queries against the
// applications table. Reads join the vacancy and the applicant so
// callers get the full detail row in one round trip, including the
// vacancy's employer_id for ownership checks.
type ApplicationRepo struct {
	db *sql.DB
}

func NewApplicationRepo(db *sql.DB) *ApplicationRepo {
	return &ApplicationRepo{db: db}
}

const applicationSelect = `SELECT
		a.id, a.vacancy_id, v.title, v.company_name,
		a.applicant_id, CONCAT_WS(' ', u.first_name, u.last_name) AS applicant_name, u.email,
		COALESCE(a.cover_letter, ''), a.status, a.applied_at, a.updated_at,
		v.employer_id
	FROM applications a
	JOIN vacancies v ON v.id = a.vacancy_id
	JOIN users u     ON u.id = a.applicant_id`

// Create inserts an application. applied_at and updated_at must already
// be set by the caller; applied_at is never touched again. A duplicate
// (vacancy_id, applicant_id) pair surfaces as ErrAlreadyApplied via the
// unique key, which also closes the race between two concurrent
// submissions that both passed the existence check.
func (r *ApplicationRepo) Create(ctx context.Context, a *model.Application) error {
	const q = `INSERT INTO applications
		(vacancy_id, applicant_id, cover_letter, status, applied_at, updated_at)
		VALUES (?,?,?,?,?,?)`
	res, err := r.db.ExecContext(ctx, q,
		a.VacancyID, a.ApplicantID, a.CoverLetter, string(a.Status), a.AppliedAt, a.UpdatedAt)
	if err != nil {
		if isDuplicateKey(err) {
			return ErrAlreadyApplied
		}
		return err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	a.ID = uint64(id)
	return nil
}

// ExistsForVacancyAndApplicant reports whether the pair already has an
// application.
func (r *ApplicationRepo) ExistsForVacancyAndApplicant(ctx context.Context, vacancyID, applicantID uint64) (bool, error) {
	var one int
	err := r.db.QueryRowContext(ctx,
		"SELECT 1 FROM applications WHERE vacancy_id=? AND applicant_id=? LIMIT 1",
		vacancyID, applicantID).Scan(&one)
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

// GetByID fetches one application with its joined detail.
func (r *ApplicationRepo) GetByID(ctx context.Context, id uint64) (*model.ApplicationDetail, error) {
	var d model.ApplicationDetail
	var status string
	err := r.db.QueryRowContext(ctx, applicationSelect+" WHERE a.id = ?", id).Scan(
		&d.ID, &d.VacancyID, &d.VacancyTitle, &d.CompanyName,
		&d.ApplicantID, &d.ApplicantName, &d.ApplicantEmail,
		&d.CoverLetter, &status, &d.AppliedAt, &d.UpdatedAt,
		&d.VacancyEmployerID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrApplicationNotFound
		}
		return nil, err
	}
	d.Status = model.ApplicationStatus(status)
	return &d, nil
}

// ListByApplicant returns the applicant's applications, newest first.
func (r *ApplicationRepo) ListByApplicant(ctx context.Context, applicantID uint64) ([]*model.ApplicationDetail, error) {
	return r.list(ctx,
		applicationSelect+" WHERE a.applicant_id = ? ORDER BY a.applied_at DESC", applicantID)
}

// ListByVacancy returns a vacancy's applications, newest first.
func (r *ApplicationRepo) ListByVacancy(ctx context.Context, vacancyID uint64) ([]*model.ApplicationDetail, error) {
	return r.list(ctx,
		applicationSelect+" WHERE a.vacancy_id = ? ORDER BY a.applied_at DESC", vacancyID)
}

// ListByEmployer returns applications across every vacancy the employer
// owns, newest first.
func (r *ApplicationRepo) ListByEmployer(ctx context.Context, employerID uint64) ([]*model.ApplicationDetail, error) {
	return r.list(ctx,
		applicationSelect+" WHERE v.employer_id = ? ORDER BY a.applied_at DESC", employerID)
}

// UpdateStatus sets the status and refreshes updated_at; applied_at is
// left alone. Zero affected rows means the application is gone.
func (r *ApplicationRepo) UpdateStatus(ctx context.Context, id uint64, status model.ApplicationStatus) error {
	res, err := r.db.ExecContext(ctx,
		"UPDATE applications SET status=?, updated_at=NOW() WHERE id=?",
		string(status), id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		// MySQL reports zero affected rows when the new values equal the
		// old ones, so confirm absence before reporting not found.
		exists, err := r.existsByID(ctx, id)
		if err != nil {
			return err
		}
		if !exists {
			return ErrApplicationNotFound
		}
	}
	return nil
}

func (r *ApplicationRepo) existsByID(ctx context.Context, id uint64) (bool, error) {
	var one int
	err := r.db.QueryRowContext(ctx,
		"SELECT 1 FROM applications WHERE id=? LIMIT 1", id).Scan(&one)
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

func (r *ApplicationRepo) list(ctx context.Context, q string, args ...any) ([]*model.ApplicationDetail, error) {
	rows, err := r.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []*model.ApplicationDetail{}
	for rows.Next() {
		d := new(model.ApplicationDetail)
		var status string
		if err := rows.Scan(
			&d.ID, &d.VacancyID, &d.VacancyTitle, &d.CompanyName,
			&d.ApplicantID, &d.ApplicantName, &d.ApplicantEmail,
			&d.CoverLetter, &status, &d.AppliedAt, &d.UpdatedAt,
			&d.VacancyEmployerID,
		); err != nil {
			return nil, err
		}
		d.Status = model.ApplicationStatus(status)
		out = append(out, d)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}
