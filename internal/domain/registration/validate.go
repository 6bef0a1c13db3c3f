package registration

import (
	"github.com/go-playground/validator/v10"
)

// Regions is the fixed set of USRA regions a school can register under.
var Regions = []string{"Central", "Eastern", "Northern", "Western"}

// AdminRoles is the fixed set of representative roles.
var AdminRoles = []string{
	"Head Teacher",
	"Deputy Head Teacher",
	"Director of Studies",
	"Games Teacher",
	"Sports Coordinator",
	"Coach",
}

// EducationLevels is the fixed set of representative education levels.
var EducationLevels = []string{
	"Certificate",
	"Diploma",
	"Bachelor's Degree",
	"Master's Degree",
	"Doctorate",
}

// MinPasswordLength is the minimum account password length.
const MinPasswordLength = 8

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterValidation("usra_region", oneOf(Regions))
	v.RegisterValidation("admin_role", oneOf(AdminRoles))
	v.RegisterValidation("education_level", oneOf(EducationLevels))
	return v
}

func oneOf(allowed []string) validator.Func {
	return func(fl validator.FieldLevel) bool {
		value := fl.Field().String()
		for _, a := range allowed {
			if value == a {
				return true
			}
		}
		return false
	}
}

// stepOneForm carries the School Info fields gated at step 1.
type stepOneForm struct {
	SchoolName    string `validate:"required"`
	OfficeContact string `validate:"required"`
	Region        string `validate:"required,usra_region"`
	District      string `validate:"required"`
}

// stepTwoForm carries the Admin Info fields gated at step 2.
type stepTwoForm struct {
	AdminName       string `validate:"required"`
	AdminContact    string `validate:"required"`
	AdminEmail      string `validate:"required,email"`
	AdminRole       string `validate:"required,admin_role"`
	AdminEducation  string `validate:"required,education_level"`
	Password        string `validate:"required,min=8"`
	ConfirmPassword string `validate:"omitempty,eqfield=Password"`
}

// fieldKeys maps struct field names to the form keys surfaced to the page.
var fieldKeys = map[string]string{
	"SchoolName":      "school_name",
	"OfficeContact":   "office_contact",
	"Region":          "region",
	"District":        "district",
	"AdminName":       "admin_name",
	"AdminContact":    "admin_contact",
	"AdminEmail":      "admin_email",
	"AdminRole":       "admin_role",
	"AdminEducation":  "admin_education",
	"Password":        "admin_password",
	"ConfirmPassword": "admin_confirm_password",
}

// fieldMessages maps "formKey/tag" to the message shown for that failure.
var fieldMessages = map[string]string{
	"school_name/required":            "School name is required",
	"office_contact/required":         "School contact is required",
	"region/required":                 "Select a region",
	"region/usra_region":              "Select a valid region",
	"district/required":               "District is required",
	"admin_name/required":             "Full name is required",
	"admin_contact/required":          "Contact number is required",
	"admin_email/required":            "Email address is required",
	"admin_email/email":               "Enter a valid email address",
	"admin_role/required":             "Select a role",
	"admin_role/admin_role":           "Select a valid role",
	"admin_education/required":        "Select an education level",
	"admin_education/education_level": "Select a valid education level",
	"admin_password/required":         "Password is required",
	"admin_password/min":              "Password must be at least 8 characters",
	"admin_confirm_password/eqfield":  "Passwords do not match",
}

// Attachment error messages, keyed by slot.
const (
	msgBadgeRequired = "School badge is required"
	msgPhotoRequired = "Profile photo is required"
)

// ValidateStep checks the draft against the constraints of one wizard step and
// returns a map from form key to message for every failing field. An empty map
// means the step is valid and a forward transition is permitted.
// PRE: step is StepSchoolInfo or StepAdminInfo (other steps validate vacuously)
// POST: Returns a non-nil map; no side effects, no I/O
func ValidateStep(d *Draft, step Step) map[string]string {
	errs := make(map[string]string)
	switch step {
	case StepSchoolInfo:
		collectFieldErrors(errs, validate.Struct(stepOneForm{
			SchoolName:    d.SchoolName,
			OfficeContact: d.OfficeContact,
			Region:        d.Region,
			District:      d.District,
		}))
		if d.Badge == nil {
			errs[SlotSchoolBadge] = msgBadgeRequired
		}
	case StepAdminInfo:
		collectFieldErrors(errs, validate.Struct(stepTwoForm{
			AdminName:       d.AdminName,
			AdminContact:    d.AdminContact,
			AdminEmail:      d.AdminEmail,
			AdminRole:       d.AdminRole,
			AdminEducation:  d.AdminEducation,
			Password:        d.Password,
			ConfirmPassword: d.ConfirmPassword,
		}))
		if d.Photo == nil {
			errs[SlotAdminPhoto] = msgPhotoRequired
		}
	}
	return errs
}

func collectFieldErrors(errs map[string]string, err error) {
	if err == nil {
		return
	}
	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return
	}
	for _, fe := range verrs {
		key, known := fieldKeys[fe.StructField()]
		if !known {
			continue
		}
		msg := fieldMessages[key+"/"+fe.Tag()]
		if msg == "" {
			msg = "This field is invalid"
		}
		errs[key] = msg
	}
}
