package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/erenyil/enrollhub/internal/app/models/dto"
	"github.com/erenyil/enrollhub/internal/app/services"
	"github.com/erenyil/enrollhub/internal/middleware"
	"github.com/erenyil/enrollhub/internal/pkg/apperrors"
	"github.com/erenyil/enrollhub/internal/pkg/flash"
	"github.com/erenyil/enrollhub/internal/pkg/forms"
)

// EnrollmentController serves the public pages: landing, enrollment form and
// confirmation.
type EnrollmentController struct {
	studentService services.StudentService
}

// NewEnrollmentController creates a new EnrollmentController
func NewEnrollmentController(studentService services.StudentService) *EnrollmentController {
	return &EnrollmentController{
		studentService: studentService,
	}
}

// Index displays the landing page
func (ctrl *EnrollmentController) Index(c *gin.Context) {
	render(c, http.StatusOK, "index.html", gin.H{
		"title": "Student Enrollment System",
	})
}

// ShowEnrollForm displays an empty enrollment form
func (ctrl *EnrollmentController) ShowEnrollForm(c *gin.Context) {
	render(c, http.StatusOK, "enroll.html", gin.H{
		"title":  "Enroll",
		"form":   &dto.StudentForm{},
		"errors": forms.Errors{},
	})
}

// Enroll handles the enrollment form submission. Validation failures
// re-render the form with inline field errors; success redirects to the
// confirmation page.
func (ctrl *EnrollmentController) Enroll(c *gin.Context) {
	var form dto.StudentForm
	if err := c.ShouldBind(&form); err != nil {
		ctrl.renderFormErrors(c, &form, forms.FromBindingError(err))
		return
	}

	student := form.ToModel()
	if err := ctrl.studentService.Enroll(c.Request.Context(), student); err != nil {
		if errors.Is(err, apperrors.ErrEmailAlreadyExists) {
			formErrors := forms.Errors{}
			formErrors.Add("email", "This email is already registered in our system.")
			ctrl.renderFormErrors(c, &form, formErrors)
			return
		}
		middleware.HandlePageError(c, err)
		return
	}

	flash.Success(c, "Student enrolled successfully!")
	c.Redirect(http.StatusSeeOther, "/enrollment-success/")
}

// EnrollmentSuccess displays the post-enrollment confirmation page
func (ctrl *EnrollmentController) EnrollmentSuccess(c *gin.Context) {
	render(c, http.StatusOK, "enrollment_success.html", gin.H{
		"title": "Enrollment Successful",
	})
}

func (ctrl *EnrollmentController) renderFormErrors(c *gin.Context, form *dto.StudentForm, formErrors forms.Errors) {
	flash.Error(c, "Please correct the errors below.")
	render(c, http.StatusOK, "enroll.html", gin.H{
		"title":  "Enroll",
		"form":   form,
		"errors": formErrors,
	})
}
