package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/rs/zerolog"

	"github.com/erenyil/enrollhub/internal/app/models"
	"github.com/erenyil/enrollhub/internal/pkg/apperrors"
)

// StudentStore is the persistence surface the student service depends on.
type StudentStore interface {
	Create(ctx context.Context, student *models.Student) error
	GetByID(ctx context.Context, id int64) (*models.Student, error)
	GetAll(ctx context.Context) ([]*models.Student, error)
	Search(ctx context.Context, query string) ([]*models.Student, error)
	EmailTaken(ctx context.Context, email string, excludeID int64) (bool, error)
	Update(ctx context.Context, student *models.Student) error
	Delete(ctx context.Context, id int64) error
}

// StudentService handles enrollment record operations
type StudentService interface {
	Enroll(ctx context.Context, student *models.Student) error
	Get(ctx context.Context, id int64) (*models.Student, error)
	List(ctx context.Context) ([]*models.Student, int, error)
	Update(ctx context.Context, id int64, student *models.Student) (*models.Student, error)
	Delete(ctx context.Context, id int64) error
	Search(ctx context.Context, query string) ([]*models.Student, int, error)
}

type studentService struct {
	studentRepo StudentStore
	logger      zerolog.Logger
}

// NewStudentService creates a new student service instance
func NewStudentService(studentRepo StudentStore, logger zerolog.Logger) StudentService {
	return &studentService{
		studentRepo: studentRepo,
		logger:      logger,
	}
}

// Enroll persists a new enrollment record. The email uniqueness pre-check is
// a best-effort convenience; the unique constraint in the store is the
// authoritative backstop and surfaces as the same error.
func (s *studentService) Enroll(ctx context.Context, student *models.Student) error {
	student.Email = strings.TrimSpace(student.Email)

	taken, err := s.studentRepo.EmailTaken(ctx, student.Email, 0)
	if err != nil {
		return fmt.Errorf("error checking email: %w", err)
	}
	if taken {
		return apperrors.ErrEmailAlreadyExists
	}

	if err := s.studentRepo.Create(ctx, student); err != nil {
		return err
	}

	s.logger.Info().Int64("studentId", student.ID).Str("email", student.Email).Msg("Student enrolled")
	return nil
}

// Get retrieves a single enrollment record
func (s *studentService) Get(ctx context.Context, id int64) (*models.Student, error) {
	if id <= 0 {
		return nil, apperrors.ErrStudentNotFound
	}
	return s.studentRepo.GetByID(ctx, id)
}

// List returns all enrollment records newest-first along with the total count
func (s *studentService) List(ctx context.Context) ([]*models.Student, int, error) {
	students, err := s.studentRepo.GetAll(ctx)
	if err != nil {
		return nil, 0, err
	}
	return students, len(students), nil
}

// Update persists changes to an existing record. The record keeps its own
// email without tripping the uniqueness check.
func (s *studentService) Update(ctx context.Context, id int64, student *models.Student) (*models.Student, error) {
	existing, err := s.studentRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	student.Email = strings.TrimSpace(student.Email)

	taken, err := s.studentRepo.EmailTaken(ctx, student.Email, id)
	if err != nil {
		return nil, fmt.Errorf("error checking email: %w", err)
	}
	if taken {
		return nil, apperrors.ErrEmailAlreadyExists
	}

	student.ID = existing.ID
	student.DateEnrolled = existing.DateEnrolled
	if err := s.studentRepo.Update(ctx, student); err != nil {
		return nil, err
	}

	s.logger.Info().Int64("studentId", student.ID).Msg("Student record updated")
	return student, nil
}

// Delete removes an enrollment record permanently
func (s *studentService) Delete(ctx context.Context, id int64) error {
	if err := s.studentRepo.Delete(ctx, id); err != nil {
		return err
	}

	s.logger.Info().Int64("studentId", id).Msg("Student record deleted")
	return nil
}

// Search matches records by substring across name, email and school fields.
// An empty query returns an empty result set without touching the store.
func (s *studentService) Search(ctx context.Context, query string) ([]*models.Student, int, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, 0, nil
	}

	students, err := s.studentRepo.Search(ctx, query)
	if err != nil {
		return nil, 0, err
	}
	return students, len(students), nil
}
