package repository

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/careerfinder/career-finder/internal/model"
)

// VacancyRepo encapsulates all database queries against the vacancies
// table. Every read joins the users table so responses can carry the
// employer's display name without a second query.
type VacancyRepo struct {
	db *sql.DB
}

func NewVacancyRepo(db *sql.DB) *VacancyRepo {
	return &VacancyRepo{db: db}
}

const vacancySelect = `SELECT
		v.id, v.title, v.description, v.company_name, v.company_logo,
		v.location, v.salary, v.employment_type, v.experience_level,
		v.skills, v.contact_email, v.website, v.is_active, v.employer_id,
		CONCAT_WS(' ', u.first_name, u.last_name) AS employer_name,
		v.created_at, v.updated_at, v.expires_at
	FROM vacancies v
	JOIN users u ON u.id = v.employer_id`

// Create inserts a vacancy. Timestamps (created_at, updated_at,
// expires_at) must already be set by the caller; the one-month expiry
// is derived from created_at exactly once, at creation.
func (r *VacancyRepo) Create(ctx context.Context, v *model.Vacancy) error {
	const q = `INSERT INTO vacancies
		(title, description, company_name, company_logo, location, salary,
		 employment_type, experience_level, skills, contact_email, website,
		 is_active, employer_id, created_at, updated_at, expires_at)
		VALUES (?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?)`
	res, err := r.db.ExecContext(ctx, q,
		v.Title, v.Description, v.CompanyName, v.CompanyLogo, v.Location, v.Salary,
		string(v.EmploymentType), string(v.ExperienceLevel), v.Skills, v.ContactEmail, v.Website,
		v.IsActive, v.EmployerID, v.CreatedAt, v.UpdatedAt, v.ExpiresAt)
	if err != nil {
		return err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	v.ID = uint64(id)
	return nil
}

// Update rewrites the mutable columns of a vacancy. employer_id,
// created_at and expires_at are deliberately absent from the SET list.
func (r *VacancyRepo) Update(ctx context.Context, v *model.Vacancy) error {
	const q = `UPDATE vacancies SET
		title=?, description=?, company_name=?, company_logo=?, location=?,
		salary=?, employment_type=?, experience_level=?, skills=?,
		contact_email=?, website=?, is_active=?, updated_at=?
		WHERE id=?`
	_, err := r.db.ExecContext(ctx, q,
		v.Title, v.Description, v.CompanyName, v.CompanyLogo, v.Location,
		v.Salary, string(v.EmploymentType), string(v.ExperienceLevel), v.Skills,
		v.ContactEmail, v.Website, v.IsActive, v.UpdatedAt, v.ID)
	return err
}

// Delete removes a vacancy outright. Dependent applications go with it
// via the schema's ON DELETE CASCADE.
func (r *VacancyRepo) Delete(ctx context.Context, id uint64) error {
	res, err := r.db.ExecContext(ctx, "DELETE FROM vacancies WHERE id=?", id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrVacancyNotFound
	}
	return nil
}

// GetByID fetches a vacancy by id regardless of its active flag.
func (r *VacancyRepo) GetByID(ctx context.Context, id uint64) (*model.Vacancy, error) {
	var v model.Vacancy
	if err := scanVacancy(r.db.QueryRowContext(ctx, vacancySelect+" WHERE v.id = ?", id), &v); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrVacancyNotFound
		}
		return nil, err
	}
	return &v, nil
}

// ListActive returns all visible vacancies, newest first.
func (r *VacancyRepo) ListActive(ctx context.Context) ([]*model.Vacancy, error) {
	return r.list(ctx, vacancySelect+" WHERE v.is_active = 1 ORDER BY v.created_at DESC")
}

// ListByEmployer returns every vacancy owned by the employer, active or
// not, newest first.
func (r *VacancyRepo) ListByEmployer(ctx context.Context, employerID uint64) ([]*model.Vacancy, error) {
	return r.list(ctx,
		vacancySelect+" WHERE v.employer_id = ? ORDER BY v.created_at DESC", employerID)
}

// Search returns active vacancies whose title, description, company
// name or skills contain the query, case-insensitively. The match is OR
// across fields: any one containing the query qualifies.
func (r *VacancyRepo) Search(ctx context.Context, query string) ([]*model.Vacancy, error) {
	needle := "%" + strings.ToLower(strings.TrimSpace(query)) + "%"
	const cond = ` WHERE v.is_active = 1 AND (
		LOWER(v.title) LIKE ? OR
		LOWER(v.description) LIKE ? OR
		LOWER(v.company_name) LIKE ? OR
		LOWER(v.skills) LIKE ?)
		ORDER BY v.created_at DESC`
	return r.list(ctx, vacancySelect+cond, needle, needle, needle, needle)
}

// Filter returns active vacancies narrowed by at most one dimension.
// When several are supplied only the first non-empty one applies, in
// the order location, employmentType, experienceLevel; the rest are
// silently ignored. With none supplied it falls back to ListActive.
func (r *VacancyRepo) Filter(ctx context.Context, location string, employmentType model.EmploymentType, experienceLevel model.ExperienceLevel) ([]*model.Vacancy, error) {
	switch {
	case strings.TrimSpace(location) != "":
		needle := "%" + strings.ToLower(strings.TrimSpace(location)) + "%"
		return r.list(ctx,
			vacancySelect+" WHERE v.is_active = 1 AND LOWER(v.location) LIKE ? ORDER BY v.created_at DESC",
			needle)
	case employmentType != "":
		return r.list(ctx,
			vacancySelect+" WHERE v.is_active = 1 AND v.employment_type = ? ORDER BY v.created_at DESC",
			string(employmentType))
	case experienceLevel != "":
		return r.list(ctx,
			vacancySelect+" WHERE v.is_active = 1 AND v.experience_level = ? ORDER BY v.created_at DESC",
			string(experienceLevel))
	default:
		return r.ListActive(ctx)
	}
}

// CountActive returns the number of visible vacancies.
func (r *VacancyRepo) CountActive(ctx context.Context) (int64, error) {
	var n int64
	err := r.db.QueryRowContext(ctx,
		"SELECT COUNT(*) FROM vacancies WHERE is_active = 1").Scan(&n)
	return n, err
}

func (r *VacancyRepo) list(ctx context.Context, q string, args ...any) ([]*model.Vacancy, error) {
	rows, err := r.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []*model.Vacancy{}
	for rows.Next() {
		v := new(model.Vacancy)
		if err := scanVacancy(rows, v); err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// rowScanner is satisfied by both *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanVacancy(row rowScanner, v *model.Vacancy) error {
	var employment, experience string
	if err := row.Scan(
		&v.ID, &v.Title, &v.Description, &v.CompanyName, &v.CompanyLogo,
		&v.Location, &v.Salary, &employment, &experience,
		&v.Skills, &v.ContactEmail, &v.Website, &v.IsActive, &v.EmployerID,
		&v.EmployerName,
		&v.CreatedAt, &v.UpdatedAt, &v.ExpiresAt,
	); err != nil {
		return err
	}
	v.EmploymentType = model.EmploymentType(employment)
	v.ExperienceLevel = model.ExperienceLevel(experience)
	return nil
}
