package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/erenyil/enrollhub/internal/app/models"
	"github.com/erenyil/enrollhub/internal/pkg/apperrors"
	"github.com/erenyil/enrollhub/internal/pkg/dberrors"
)

const studentColumns = `
	id, first_name, middle_name, last_name, email, birthday, address,
	parent_full_name, relationship, parent_phone, parent_email,
	parent_occupation, parent_workplace, parent_address, alternate_contact,
	school_name_graduated, date_enrolled, last_updated
`

// StudentRepository handles database operations for student enrollment records
type StudentRepository struct {
	db *pgxpool.Pool
}

// NewStudentRepository creates a new student repository
func NewStudentRepository(db *pgxpool.Pool) *StudentRepository {
	return &StudentRepository{
		db: db,
	}
}

func scanStudent(row pgx.Row) (*models.Student, error) {
	var student models.Student
	err := row.Scan(
		&student.ID,
		&student.FirstName,
		&student.MiddleName,
		&student.LastName,
		&student.Email,
		&student.Birthday,
		&student.Address,
		&student.ParentFullName,
		&student.Relationship,
		&student.ParentPhone,
		&student.ParentEmail,
		&student.ParentOccupation,
		&student.ParentWorkplace,
		&student.ParentAddress,
		&student.AlternateContact,
		&student.SchoolNameGraduated,
		&student.DateEnrolled,
		&student.LastUpdated,
	)
	if err != nil {
		return nil, err
	}
	return &student, nil
}

func collectStudents(rows pgx.Rows) ([]*models.Student, error) {
	defer rows.Close()

	var students []*models.Student
	for rows.Next() {
		student, err := scanStudent(rows)
		if err != nil {
			return nil, err
		}
		students = append(students, student)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}
	return students, nil
}

// Create inserts a new enrollment record. date_enrolled and last_updated are
// assigned by the database and read back into the model.
func (r *StudentRepository) Create(ctx context.Context, student *models.Student) error {
	query := `
		INSERT INTO students (
			first_name, middle_name, last_name, email, birthday, address,
			parent_full_name, relationship, parent_phone, parent_email,
			parent_occupation, parent_workplace, parent_address, alternate_contact,
			school_name_graduated
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)
		RETURNING id, date_enrolled, last_updated
	`

	err := r.db.QueryRow(ctx, query,
		student.FirstName,
		student.MiddleName,
		student.LastName,
		student.Email,
		student.Birthday,
		student.Address,
		student.ParentFullName,
		student.Relationship,
		student.ParentPhone,
		student.ParentEmail,
		student.ParentOccupation,
		student.ParentWorkplace,
		student.ParentAddress,
		student.AlternateContact,
		student.SchoolNameGraduated,
	).Scan(&student.ID, &student.DateEnrolled, &student.LastUpdated)
	if err != nil {
		if dberrors.IsDuplicateConstraintError(err, "students_email_key") {
			return apperrors.ErrEmailAlreadyExists
		}
		return fmt.Errorf("error creating student: %w", err)
	}

	return nil
}

// GetByID retrieves an enrollment record by ID
func (r *StudentRepository) GetByID(ctx context.Context, id int64) (*models.Student, error) {
	query := `SELECT ` + studentColumns + ` FROM students WHERE id = $1`

	student, err := scanStudent(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrStudentNotFound
		}
		return nil, fmt.Errorf("error retrieving student: %w", err)
	}

	return student, nil
}

// GetAll retrieves all enrollment records, newest first
func (r *StudentRepository) GetAll(ctx context.Context) ([]*models.Student, error) {
	query := `SELECT ` + studentColumns + ` FROM students ORDER BY date_enrolled DESC`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("error listing students: %w", err)
	}

	return collectStudents(rows)
}

// Search performs a case-insensitive substring match against first name,
// last name, email and graduated school name.
func (r *StudentRepository) Search(ctx context.Context, query string) ([]*models.Student, error) {
	sql := `SELECT ` + studentColumns + `
		FROM students
		WHERE first_name ILIKE $1
		   OR last_name ILIKE $1
		   OR email ILIKE $1
		   OR school_name_graduated ILIKE $1`

	rows, err := r.db.Query(ctx, sql, "%"+query+"%")
	if err != nil {
		return nil, fmt.Errorf("error searching students: %w", err)
	}

	return collectStudents(rows)
}

// EmailTaken reports whether the email belongs to a record other than
// excludeID. Pass excludeID 0 for new enrollments.
func (r *StudentRepository) EmailTaken(ctx context.Context, email string, excludeID int64) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM students WHERE email = $1 AND id <> $2)`,
		email, excludeID).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("error checking email existence: %w", err)
	}
	return exists, nil
}

// Update persists changes to an existing record and refreshes last_updated.
// date_enrolled is intentionally untouched.
func (r *StudentRepository) Update(ctx context.Context, student *models.Student) error {
	query := `
		UPDATE students SET
			first_name = $1, middle_name = $2, last_name = $3, email = $4,
			birthday = $5, address = $6, parent_full_name = $7, relationship = $8,
			parent_phone = $9, parent_email = $10, parent_occupation = $11,
			parent_workplace = $12, parent_address = $13, alternate_contact = $14,
			school_name_graduated = $15, last_updated = NOW()
		WHERE id = $16
		RETURNING last_updated
	`

	err := r.db.QueryRow(ctx, query,
		student.FirstName,
		student.MiddleName,
		student.LastName,
		student.Email,
		student.Birthday,
		student.Address,
		student.ParentFullName,
		student.Relationship,
		student.ParentPhone,
		student.ParentEmail,
		student.ParentOccupation,
		student.ParentWorkplace,
		student.ParentAddress,
		student.AlternateContact,
		student.SchoolNameGraduated,
		student.ID,
	).Scan(&student.LastUpdated)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return apperrors.ErrStudentNotFound
		}
		if dberrors.IsDuplicateConstraintError(err, "students_email_key") {
			return apperrors.ErrEmailAlreadyExists
		}
		return fmt.Errorf("error updating student: %w", err)
	}

	return nil
}

// Delete removes an enrollment record permanently
func (r *StudentRepository) Delete(ctx context.Context, id int64) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM students WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("error deleting student: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrStudentNotFound
	}
	return nil
}

// Count returns the total number of enrollment records
func (r *StudentRepository) Count(ctx context.Context) (int, error) {
	var count int
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM students`).Scan(&count); err != nil {
		return 0, fmt.Errorf("error counting students: %w", err)
	}
	return count, nil
}
