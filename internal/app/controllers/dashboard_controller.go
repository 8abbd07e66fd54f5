package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/erenyil/enrollhub/internal/app/models"
	"github.com/erenyil/enrollhub/internal/app/models/dto"
	"github.com/erenyil/enrollhub/internal/app/services"
	"github.com/erenyil/enrollhub/internal/middleware"
	"github.com/erenyil/enrollhub/internal/pkg/apperrors"
	"github.com/erenyil/enrollhub/internal/pkg/flash"
	"github.com/erenyil/enrollhub/internal/pkg/forms"
)

// DashboardController serves the moderator pages: listing, detail, update,
// delete and search.
type DashboardController struct {
	studentService services.StudentService
}

// NewDashboardController creates a new DashboardController
func NewDashboardController(studentService services.StudentService) *DashboardController {
	return &DashboardController{
		studentService: studentService,
	}
}

// Dashboard lists all enrollment records, newest first, with the total count
func (ctrl *DashboardController) Dashboard(c *gin.Context) {
	students, total, err := ctrl.studentService.List(c.Request.Context())
	if err != nil {
		middleware.HandlePageError(c, err)
		return
	}

	render(c, http.StatusOK, "dashboard.html", gin.H{
		"title":         "Dashboard",
		"students":      students,
		"totalStudents": total,
	})
}

// StudentDetail displays a single enrollment record
func (ctrl *DashboardController) StudentDetail(c *gin.Context) {
	student, ok := ctrl.loadStudent(c)
	if !ok {
		return
	}

	render(c, http.StatusOK, "student_detail.html", gin.H{
		"title":   student.FullName(),
		"student": student,
	})
}

// ShowUpdateForm displays the update form pre-filled with the record
func (ctrl *DashboardController) ShowUpdateForm(c *gin.Context) {
	student, ok := ctrl.loadStudent(c)
	if !ok {
		return
	}

	render(c, http.StatusOK, "student_update.html", gin.H{
		"title":   "Update " + student.FullName(),
		"student": student,
		"form":    dto.StudentFormFromModel(student),
		"errors":  forms.Errors{},
	})
}

// UpdateStudent persists changes to a record. date_enrolled is preserved and
// last_updated refreshed by the persistence layer.
func (ctrl *DashboardController) UpdateStudent(c *gin.Context) {
	student, ok := ctrl.loadStudent(c)
	if !ok {
		return
	}

	var form dto.StudentForm
	if err := c.ShouldBind(&form); err != nil {
		ctrl.renderUpdateErrors(c, student, &form, forms.FromBindingError(err))
		return
	}

	updated, err := ctrl.studentService.Update(c.Request.Context(), student.ID, form.ToModel())
	if err != nil {
		if errors.Is(err, apperrors.ErrEmailAlreadyExists) {
			formErrors := forms.Errors{}
			formErrors.Add("email", "This email is already registered in our system.")
			ctrl.renderUpdateErrors(c, student, &form, formErrors)
			return
		}
		middleware.HandlePageError(c, err)
		return
	}

	flash.Success(c, "Information for "+updated.FullName()+" updated successfully!")
	c.Redirect(http.StatusSeeOther, "/dashboard/student/"+strconv.FormatInt(updated.ID, 10)+"/")
}

// ConfirmDelete displays the delete confirmation page
func (ctrl *DashboardController) ConfirmDelete(c *gin.Context) {
	student, ok := ctrl.loadStudent(c)
	if !ok {
		return
	}

	render(c, http.StatusOK, "student_delete.html", gin.H{
		"title":   "Delete " + student.FullName(),
		"student": student,
	})
}

// DeleteStudent removes a record permanently and returns to the dashboard
func (ctrl *DashboardController) DeleteStudent(c *gin.Context) {
	student, ok := ctrl.loadStudent(c)
	if !ok {
		return
	}

	if err := ctrl.studentService.Delete(c.Request.Context(), student.ID); err != nil {
		middleware.HandlePageError(c, err)
		return
	}

	flash.Success(c, student.FullName()+" has been removed from the system.")
	c.Redirect(http.StatusSeeOther, "/dashboard/")
}

// Search matches records case-insensitively against name, email and school.
// An empty query renders an empty result set with zero count.
func (ctrl *DashboardController) Search(c *gin.Context) {
	query := c.Query("q")

	students, total, err := ctrl.studentService.Search(c.Request.Context(), query)
	if err != nil {
		middleware.HandlePageError(c, err)
		return
	}

	render(c, http.StatusOK, "search.html", gin.H{
		"title":        "Search Results",
		"students":     students,
		"query":        query,
		"totalResults": total,
	})
}

// loadStudent resolves the :id route parameter to a record, rendering the
// 404 page when the id is malformed or unknown.
func (ctrl *DashboardController) loadStudent(c *gin.Context) (*models.Student, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		middleware.HandlePageError(c, apperrors.ErrStudentNotFound)
		return nil, false
	}

	student, err := ctrl.studentService.Get(c.Request.Context(), id)
	if err != nil {
		middleware.HandlePageError(c, err)
		return nil, false
	}
	return student, true
}

func (ctrl *DashboardController) renderUpdateErrors(c *gin.Context, student *models.Student, form *dto.StudentForm, formErrors forms.Errors) {
	flash.Error(c, "Please correct the errors below.")
	render(c, http.StatusOK, "student_update.html", gin.H{
		"title":   "Update " + student.FullName(),
		"student": student,
		"form":    form,
		"errors":  formErrors,
	})
}
