package validation

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Custom validation tags
const (
	TagHeroName    = "heroname"
	TagMonsterName = "monstername"
)

// Name rules
const (
	MaxHeroApostrophes  = 2
	heroNameConstraints = "required,min=2,max=40," + TagHeroName
	monsterConstraints  = "required,min=2,max=40," + TagMonsterName
)

var (
	heroNamePattern    = regexp.MustCompile(`^[A-Z][A-Za-z' :]*$`)
	monsterNamePattern = regexp.MustCompile(`^[A-Z][A-Za-z0-9' ]*$`)
)

// Validator wraps the validator instance
type Validator struct {
	validate *validator.Validate
}

// New creates a validator with the name rules registered
func New() *Validator {
	v := validator.New()

	_ = v.RegisterValidation(TagHeroName, validateHeroName)
	_ = v.RegisterValidation(TagMonsterName, validateMonsterName)

	return &Validator{validate: v}
}

// ValidateStruct validates a struct using tags
func (v *Validator) ValidateStruct(s interface{}) error {
	return v.validate.Struct(s)
}

// HeroName reports whether name is a well-formed hero name.
func (v *Validator) HeroName(name string) bool {
	return v.validate.Var(name, heroNameConstraints) == nil
}

// MonsterName reports whether name is a well-formed monster name.
func (v *Validator) MonsterName(name string) bool {
	return v.validate.Var(name, monsterConstraints) == nil
}

// validateHeroName: capital first letter, letters, spaces, at most two apostrophes,
// and every colon followed by a space.
func validateHeroName(fl validator.FieldLevel) bool {
	name := fl.Field().String()
	if !heroNamePattern.MatchString(name) {
		return false
	}
	if strings.Count(name, "'") > MaxHeroApostrophes {
		return false
	}
	for i := 0; i < len(name); i++ {
		if name[i] == ':' && (i+1 == len(name) || name[i+1] != ' ') {
			return false
		}
	}
	return true
}

func validateMonsterName(fl validator.FieldLevel) bool {
	return monsterNamePattern.MatchString(fl.Field().String())
}

// FormatValidationError formats validation errors into a field -> message map
func FormatValidationError(err error) map[string]string {
	if err == nil {
		return nil
	}

	errs := make(map[string]string)

	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		errs["error"] = err.Error()
		return errs
	}

	for _, e := range validationErrors {
		field := strings.ToLower(e.Field())
		switch e.Tag() {
		case "required":
			errs[field] = "This field is required"
		case "oneof":
			errs[field] = fmt.Sprintf("Must be one of: %s", e.Param())
		case "max":
			errs[field] = fmt.Sprintf("Must be at most %s", e.Param())
		case "min":
			errs[field] = fmt.Sprintf("Must be at least %s", e.Param())
		case TagHeroName, TagMonsterName:
			errs[field] = "Invalid name"
		default:
			errs[field] = "Invalid value"
		}
	}

	return errs
}
