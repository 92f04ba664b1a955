package config

import (
	"fmt"
	"sort"
	"strings"

	"github.com/osse101/skirmish/internal/validation"
)

var structValidator = validation.New()

// Validate checks the bounds declared on Config's fields
func Validate(cfg *Config) error {
	err := structValidator.ValidateStruct(cfg)
	if err == nil {
		return nil
	}

	fields := validation.FormatValidationError(err)
	problems := make([]string, 0, len(fields))
	for field, msg := range fields {
		problems = append(problems, fmt.Sprintf("%s: %s", field, msg))
	}
	sort.Strings(problems)

	return fmt.Errorf("%s: %s", ErrMsgInvalidConfig, strings.Join(problems, "; "))
}
