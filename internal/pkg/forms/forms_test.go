package forms

import (
	"errors"
	"testing"

	"github.com/go-playground/validator/v10"
)

type sampleForm struct {
	FirstName string `validate:"required,max=100"`
	Email     string `validate:"required,email"`
	Nickname  string `validate:"omitempty,min=3"`
}

func TestErrorsAddKeepsFirst(t *testing.T) {
	formErrors := Errors{}
	formErrors.Add("email", "first message")
	formErrors.Add("email", "second message")

	if got := formErrors.Get("email"); got != "first message" {
		t.Errorf("Get(email) = %q, want the first message", got)
	}
	if !formErrors.Has() {
		t.Error("Has() = false after Add")
	}
	if got := formErrors.Get("missing"); got != "" {
		t.Errorf("Get(missing) = %q, want empty", got)
	}
}

func TestFromBindingErrorValidation(t *testing.T) {
	validate := validator.New()
	err := validate.Struct(sampleForm{Email: "not-an-email", Nickname: "ab"})
	if err == nil {
		t.Fatal("expected validation to fail")
	}

	formErrors := FromBindingError(err)

	if got := formErrors.Get("first_name"); got != "This field is required." {
		t.Errorf("first_name message = %q", got)
	}
	if got := formErrors.Get("email"); got != "Enter a valid email address." {
		t.Errorf("email message = %q", got)
	}
	if got := formErrors.Get("nickname"); got != "Ensure this value has at least 3 characters." {
		t.Errorf("nickname message = %q", got)
	}
}

func TestFromBindingErrorMaxLength(t *testing.T) {
	validate := validator.New()
	long := make([]byte, 120)
	for i := range long {
		long[i] = 'a'
	}
	err := validate.Struct(sampleForm{FirstName: string(long), Email: "ok@example.com"})
	if err == nil {
		t.Fatal("expected validation to fail")
	}

	formErrors := FromBindingError(err)
	if got := formErrors.Get("first_name"); got != "Ensure this value has at most 100 characters." {
		t.Errorf("first_name message = %q", got)
	}
}

func TestFromBindingErrorDateParse(t *testing.T) {
	err := errors.New(`parsing time "not-a-date" as "2006-01-02": cannot parse "not-a-date" as "2006"`)

	formErrors := FromBindingError(err)
	if got := formErrors.Get("birthday"); got != "Enter a valid date." {
		t.Errorf("birthday message = %q", got)
	}
}

func TestFromBindingErrorFallback(t *testing.T) {
	formErrors := FromBindingError(errors.New("unexpected EOF"))

	if got := formErrors.Get("__all__"); got != "Please correct the errors below." {
		t.Errorf("__all__ message = %q", got)
	}
}

func TestSnakeCase(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"FirstName", "first_name"},
		{"Email", "email"},
		{"SchoolNameGraduated", "school_name_graduated"},
		{"ParentFullName", "parent_full_name"},
	}
	for _, tt := range tests {
		if got := snakeCase(tt.in); got != tt.want {
			t.Errorf("snakeCase(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
