package services

import (
	"context"
	"strings"
	"time"

	"github.com/erenyil/enrollhub/internal/app/models"
	"github.com/erenyil/enrollhub/internal/pkg/apperrors"
)

// mockStudentStore is an in-memory StudentStore for service tests.
type mockStudentStore struct {
	students map[int64]*models.Student
	nextID   int64
	err      error // when set, every call fails with it
}

func newMockStudentStore() *mockStudentStore {
	return &mockStudentStore{
		students: make(map[int64]*models.Student),
		nextID:   1,
	}
}

func (m *mockStudentStore) Create(_ context.Context, student *models.Student) error {
	if m.err != nil {
		return m.err
	}
	student.ID = m.nextID
	m.nextID++
	now := time.Now()
	student.DateEnrolled = now
	student.LastUpdated = now
	copied := *student
	m.students[student.ID] = &copied
	return nil
}

func (m *mockStudentStore) GetByID(_ context.Context, id int64) (*models.Student, error) {
	if m.err != nil {
		return nil, m.err
	}
	student, ok := m.students[id]
	if !ok {
		return nil, apperrors.ErrStudentNotFound
	}
	copied := *student
	return &copied, nil
}

func (m *mockStudentStore) GetAll(_ context.Context) ([]*models.Student, error) {
	if m.err != nil {
		return nil, m.err
	}
	result := make([]*models.Student, 0, len(m.students))
	for _, student := range m.students {
		copied := *student
		result = append(result, &copied)
	}
	// Newest first, matching the store's ordering.
	for i := 0; i < len(result); i++ {
		for j := i + 1; j < len(result); j++ {
			if result[j].DateEnrolled.After(result[i].DateEnrolled) {
				result[i], result[j] = result[j], result[i]
			}
		}
	}
	return result, nil
}

func (m *mockStudentStore) Search(_ context.Context, query string) ([]*models.Student, error) {
	if m.err != nil {
		return nil, m.err
	}
	needle := strings.ToLower(query)
	var result []*models.Student
	for _, student := range m.students {
		haystack := strings.ToLower(strings.Join([]string{
			student.FirstName, student.LastName, student.Email, student.SchoolNameGraduated,
		}, " "))
		if strings.Contains(haystack, needle) {
			copied := *student
			result = append(result, &copied)
		}
	}
	return result, nil
}

func (m *mockStudentStore) EmailTaken(_ context.Context, email string, excludeID int64) (bool, error) {
	if m.err != nil {
		return false, m.err
	}
	for _, student := range m.students {
		if strings.EqualFold(student.Email, email) && student.ID != excludeID {
			return true, nil
		}
	}
	return false, nil
}

func (m *mockStudentStore) Update(_ context.Context, student *models.Student) error {
	if m.err != nil {
		return m.err
	}
	existing, ok := m.students[student.ID]
	if !ok {
		return apperrors.ErrStudentNotFound
	}
	student.DateEnrolled = existing.DateEnrolled
	student.LastUpdated = time.Now()
	copied := *student
	m.students[student.ID] = &copied
	return nil
}

func (m *mockStudentStore) Delete(_ context.Context, id int64) error {
	if m.err != nil {
		return m.err
	}
	if _, ok := m.students[id]; !ok {
		return apperrors.ErrStudentNotFound
	}
	delete(m.students, id)
	return nil
}

// mockUserStore is an in-memory UserStore for auth service tests.
type mockUserStore struct {
	users       map[int64]*models.User
	permissions map[int64]map[string]bool
	lastLogins  int
	loginErr    error // returned by UpdateLastLogin when set
}

func newMockUserStore() *mockUserStore {
	return &mockUserStore{
		users:       make(map[int64]*models.User),
		permissions: make(map[int64]map[string]bool),
	}
}

func (m *mockUserStore) add(user *models.User) {
	copied := *user
	m.users[user.ID] = &copied
}

func (m *mockUserStore) grant(userID int64, codename string) {
	if m.permissions[userID] == nil {
		m.permissions[userID] = make(map[string]bool)
	}
	m.permissions[userID][codename] = true
}

func (m *mockUserStore) GetByID(_ context.Context, id int64) (*models.User, error) {
	user, ok := m.users[id]
	if !ok {
		return nil, apperrors.ErrUserNotFound
	}
	copied := *user
	return &copied, nil
}

func (m *mockUserStore) GetByUsername(_ context.Context, username string) (*models.User, error) {
	for _, user := range m.users {
		if user.Username == username {
			copied := *user
			return &copied, nil
		}
	}
	return nil, apperrors.ErrUserNotFound
}

func (m *mockUserStore) UpdateLastLogin(_ context.Context, userID int64) error {
	if m.loginErr != nil {
		return m.loginErr
	}
	m.lastLogins++
	return nil
}

func (m *mockUserStore) HasPermission(_ context.Context, userID int64, codename string) (bool, error) {
	return m.permissions[userID][codename], nil
}
