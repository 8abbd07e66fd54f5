package controllers

import (
	"context"
	"errors"
	"html/template"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/erenyil/enrollhub/internal/app/models"
	"github.com/erenyil/enrollhub/internal/pkg/apperrors"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// newTestEngine builds a router with the real templates so handlers that
// re-render pages can be exercised end to end.
func newTestEngine() *gin.Engine {
	router := gin.New()
	router.SetFuncMap(template.FuncMap{
		"date":     func(t time.Time) string { return t.Format("Jan 2, 2006") },
		"datetime": func(t time.Time) string { return t.Format("Jan 2, 2006 15:04") },
	})
	router.LoadHTMLGlob("../../../web/templates/*.html")
	return router
}

// fakeStudentService is an in-memory StudentService for handler tests.
type fakeStudentService struct {
	students map[int64]*models.Student
	nextID   int64
	err      error
}

func newFakeStudentService() *fakeStudentService {
	return &fakeStudentService{
		students: make(map[int64]*models.Student),
		nextID:   1,
	}
}

func (f *fakeStudentService) Enroll(_ context.Context, student *models.Student) error {
	if f.err != nil {
		return f.err
	}
	for _, existing := range f.students {
		if existing.Email == student.Email {
			return apperrors.ErrEmailAlreadyExists
		}
	}
	student.ID = f.nextID
	f.nextID++
	now := time.Now()
	student.DateEnrolled = now
	student.LastUpdated = now
	f.students[student.ID] = student
	return nil
}

func (f *fakeStudentService) Get(_ context.Context, id int64) (*models.Student, error) {
	if f.err != nil {
		return nil, f.err
	}
	student, ok := f.students[id]
	if !ok {
		return nil, apperrors.ErrStudentNotFound
	}
	return student, nil
}

func (f *fakeStudentService) List(_ context.Context) ([]*models.Student, int, error) {
	if f.err != nil {
		return nil, 0, f.err
	}
	result := make([]*models.Student, 0, len(f.students))
	for _, student := range f.students {
		result = append(result, student)
	}
	return result, len(result), nil
}

func (f *fakeStudentService) Update(_ context.Context, id int64, student *models.Student) (*models.Student, error) {
	existing, ok := f.students[id]
	if !ok {
		return nil, apperrors.ErrStudentNotFound
	}
	for otherID, other := range f.students {
		if otherID != id && other.Email == student.Email {
			return nil, apperrors.ErrEmailAlreadyExists
		}
	}
	student.ID = id
	student.DateEnrolled = existing.DateEnrolled
	student.LastUpdated = time.Now()
	f.students[id] = student
	return student, nil
}

func (f *fakeStudentService) Delete(_ context.Context, id int64) error {
	if _, ok := f.students[id]; !ok {
		return apperrors.ErrStudentNotFound
	}
	delete(f.students, id)
	return nil
}

func (f *fakeStudentService) Search(_ context.Context, query string) ([]*models.Student, int, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, 0, nil
	}
	needle := strings.ToLower(query)
	var result []*models.Student
	for _, student := range f.students {
		haystack := strings.ToLower(student.FirstName + " " + student.LastName + " " + student.Email + " " + student.SchoolNameGraduated)
		if strings.Contains(haystack, needle) {
			result = append(result, student)
		}
	}
	return result, len(result), nil
}

// fakeAuthService authenticates a single fixed account.
type fakeAuthService struct {
	user     *models.User
	password string
}

func (f *fakeAuthService) Login(_ context.Context, username, password string) (*models.User, error) {
	if f.user == nil || username != f.user.Username || password != f.password {
		return nil, apperrors.ErrInvalidCredentials
	}
	return f.user, nil
}

func (f *fakeAuthService) IsModerator(_ context.Context, userID int64) (bool, error) {
	if f.user == nil || userID != f.user.ID {
		return false, nil
	}
	return true, nil
}

func seedStudent(f *fakeStudentService, email string) *models.Student {
	student := &models.Student{
		FirstName:           "John",
		LastName:            "Doe",
		Email:               email,
		Birthday:            time.Date(2008, 5, 20, 0, 0, 0, 0, time.UTC),
		Address:             "123 Main St",
		ParentFullName:      "Jane Doe",
		Relationship:        "Mother",
		ParentPhone:         "555-0100",
		SchoolNameGraduated: "Lincoln Elementary",
	}
	if err := f.Enroll(context.Background(), student); err != nil {
		panic(err)
	}
	return student
}

func validEnrollForm(email string) url.Values {
	return url.Values{
		"first_name":            {"John"},
		"last_name":             {"Doe"},
		"email":                 {email},
		"birthday":              {"2008-05-20"},
		"address":               {"123 Main St"},
		"parent_full_name":      {"Jane Doe"},
		"relationship":          {"Mother"},
		"parent_phone":          {"555-0100"},
		"school_name_graduated": {"Lincoln Elementary"},
	}
}

func postForm(router *gin.Engine, path string, form url.Values) *httptest.ResponseRecorder {
	request := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	request.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, request)
	return recorder
}

func get(router *gin.Engine, path string) *httptest.ResponseRecorder {
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, path, nil))
	return recorder
}

var errBoom = errors.New("boom")
