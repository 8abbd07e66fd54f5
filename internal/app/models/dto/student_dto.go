package dto

import (
	"time"

	"github.com/erenyil/enrollhub/internal/app/models"
)

// StudentForm carries the enrollment form fields for both create and update.
// Binding tags mirror the column constraints; optional fields accept the
// empty string.
type StudentForm struct {
	FirstName  string    `form:"first_name" binding:"required,max=100"`
	MiddleName string    `form:"middle_name" binding:"omitempty,max=100"`
	LastName   string    `form:"last_name" binding:"required,max=100"`
	Email      string    `form:"email" binding:"required,email,max=254"`
	Birthday   time.Time `form:"birthday" time_format:"2006-01-02" binding:"required"`
	Address    string    `form:"address" binding:"required"`

	ParentFullName   string `form:"parent_full_name" binding:"required,max=200"`
	Relationship     string `form:"relationship" binding:"required,max=100"`
	ParentPhone      string `form:"parent_phone" binding:"required,max=50"`
	ParentEmail      string `form:"parent_email" binding:"omitempty,email,max=254"`
	ParentOccupation string `form:"parent_occupation" binding:"omitempty,max=200"`
	ParentWorkplace  string `form:"parent_workplace" binding:"omitempty,max=200"`
	ParentAddress    string `form:"parent_address"`
	AlternateContact string `form:"alternate_contact" binding:"omitempty,max=200"`

	SchoolNameGraduated string `form:"school_name_graduated" binding:"required,max=200"`
}

// ToModel builds a student record from the form values. Metadata fields are
// left for the persistence layer to assign.
func (f *StudentForm) ToModel() *models.Student {
	return &models.Student{
		FirstName:           f.FirstName,
		MiddleName:          f.MiddleName,
		LastName:            f.LastName,
		Email:               f.Email,
		Birthday:            f.Birthday,
		Address:             f.Address,
		ParentFullName:      f.ParentFullName,
		Relationship:        f.Relationship,
		ParentPhone:         f.ParentPhone,
		ParentEmail:         f.ParentEmail,
		ParentOccupation:    f.ParentOccupation,
		ParentWorkplace:     f.ParentWorkplace,
		ParentAddress:       f.ParentAddress,
		AlternateContact:    f.AlternateContact,
		SchoolNameGraduated: f.SchoolNameGraduated,
	}
}

// StudentFormFromModel pre-fills the form with an existing record for the
// update page.
func StudentFormFromModel(student *models.Student) *StudentForm {
	return &StudentForm{
		FirstName:           student.FirstName,
		MiddleName:          student.MiddleName,
		LastName:            student.LastName,
		Email:               student.Email,
		Birthday:            student.Birthday,
		Address:             student.Address,
		ParentFullName:      student.ParentFullName,
		Relationship:        student.Relationship,
		ParentPhone:         student.ParentPhone,
		ParentEmail:         student.ParentEmail,
		ParentOccupation:    student.ParentOccupation,
		ParentWorkplace:     student.ParentWorkplace,
		ParentAddress:       student.ParentAddress,
		AlternateContact:    student.AlternateContact,
		SchoolNameGraduated: student.SchoolNameGraduated,
	}
}

// BirthdayValue renders the birthday in HTML date-input format, empty when
// unset.
func (f *StudentForm) BirthdayValue() string {
	if f.Birthday.IsZero() {
		return ""
	}
	return f.Birthday.Format("2006-01-02")
}
