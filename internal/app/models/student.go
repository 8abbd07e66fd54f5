package models

import (
	"strings"
	"time"
)

// Student defines the enrollment record model based on the 'students' table
type Student struct {
	ID         int64  `json:"id" db:"id"`
	FirstName  string `json:"firstName" db:"first_name"`
	MiddleName string `json:"middleName,omitempty" db:"middle_name"` // Optional
	LastName   string `json:"lastName" db:"last_name"`
	Email      string `json:"email" db:"email"` // Unique across all records

	Birthday time.Time `json:"birthday" db:"birthday"`
	Address  string    `json:"address" db:"address"`

	// Parent/guardian information
	ParentFullName   string `json:"parentFullName" db:"parent_full_name"`
	Relationship     string `json:"relationship" db:"relationship"`
	ParentPhone      string `json:"parentPhone" db:"parent_phone"`
	ParentEmail      string `json:"parentEmail,omitempty" db:"parent_email"`           // Optional
	ParentOccupation string `json:"parentOccupation,omitempty" db:"parent_occupation"` // Optional
	ParentWorkplace  string `json:"parentWorkplace,omitempty" db:"parent_workplace"`   // Optional
	ParentAddress    string `json:"parentAddress,omitempty" db:"parent_address"`       // Optional
	AlternateContact string `json:"alternateContact,omitempty" db:"alternate_contact"` // Optional

	SchoolNameGraduated string `json:"schoolNameGraduated" db:"school_name_graduated"`

	// Metadata. DateEnrolled is set once at creation and never changes;
	// LastUpdated is refreshed on every mutation.
	DateEnrolled time.Time `json:"dateEnrolled" db:"date_enrolled"`
	LastUpdated  time.Time `json:"lastUpdated" db:"last_updated"`
}

// FullName returns the student's display name, skipping the middle name when empty.
func (s *Student) FullName() string {
	if strings.TrimSpace(s.MiddleName) != "" {
		return s.FirstName + " " + s.MiddleName + " " + s.LastName
	}
	return s.FirstName + " " + s.LastName
}

func (s *Student) String() string {
	return s.FirstName + " " + s.LastName
}
