package validation

import (
	"fmt"
	"reflect"
	"regexp"
	"strings"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/yigit/injurydesk/internal/app/models"
)

// Validation rule patterns
var (
	// Email validation pattern
	EmailPattern = `^[a-z0-9._%+\-]+@[a-z0-9.\-]+\.[a-z]{2,}$`

	// Password min length
	PasswordMinLength = 8

	// Name validation min/max length
	NameMinLength = 2
	NameMaxLength = 100

	// Scale bounds for recovery log scores
	ScaleMin = 0
	ScaleMax = 10
)

// CompiledPatterns caches compiled regex patterns
var CompiledPatterns = struct {
	Email *regexp.Regexp
}{
	Email: regexp.MustCompile(EmailPattern),
}

// ValidEmail reports whether s looks like an email address after lowercasing
func ValidEmail(s string) bool {
	return CompiledPatterns.Email.MatchString(strings.ToLower(strings.TrimSpace(s)))
}

// Domain rules available as struct tags
var rules = map[string]validator.Func{
	"severity": func(fl validator.FieldLevel) bool {
		return models.Severity(fl.Field().String()).Valid()
	},
	"injurystatus": func(fl validator.FieldLevel) bool {
		return models.InjuryStatus(fl.Field().String()).Valid()
	},
	"signuprole": func(fl validator.FieldLevel) bool {
		// admins are seeded, never self-registered
		role := models.RoleType(fl.Field().String())
		return role == models.RoleStudent || role == models.RolePractitioner
	},
}

// Register installs the domain rules and reports JSON field names in errors
func Register(v *validator.Validate) error {
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return field.Name
		}
		return name
	})
	for tag, fn := range rules {
		if err := v.RegisterValidation(tag, fn); err != nil {
			return fmt.Errorf("failed to register %q rule: %w", tag, err)
		}
	}
	return nil
}

// RegisterWithGin installs the rules on gin's binding validator
func RegisterWithGin() error {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return fmt.Errorf("unexpected gin validator engine %T", binding.Validator.Engine())
	}
	return Register(v)
}
