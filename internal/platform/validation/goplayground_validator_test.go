package validation_test

import (
	"testing"

	"github.com/pantherbooks/identity/internal/platform/validation"
)

func TestGoPlaygroundValidator_ValidateStruct(t *testing.T) {
	t.Parallel()

	var tests = []struct {
		name     string
		given    any
		field    string
		hasError bool
		errMsg   string
	}{
		{"Required field is present", struct {
			Name string `validate:"required"`
		}{Name: "Pounce"}, "Name", false, ""},
		{"Required field is missing", struct {
			Name string `validate:"required"`
		}{}, "Name", true, "Name is required"},
		{"Invalid email", struct {
			Email string `validate:"required,email"`
		}{Email: "not-an-email"}, "Email", true, "Email must be a valid email address"},
		{"Code too short", struct {
			Code string `validate:"required,len=6,numeric"`
		}{Code: "123"}, "Code", true, "Code must be exactly 6 characters long"},
		{"Field name from json tag", struct {
			Email string `json:"email,omitempty" validate:"required"`
		}{}, "email", true, "email is required"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			v := validation.NewGoPlaygroundValidator()

			errs := v.ValidateStruct(tt.given)
			if errs != nil && !tt.hasError {
				t.Errorf("v.ValidateStruct(%v) = %v\nwant: %v", tt.given, errs, nil)
			}

			gotMsg, wantMsg := errs[tt.field], tt.errMsg
			if gotMsg != wantMsg {
				t.Errorf("errs[%s] = %q\nwant: %q", tt.field, gotMsg, wantMsg)
			}
		})
	}
}
