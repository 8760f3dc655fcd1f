package config

import (
	"regexp"
	"sync"

	"github.com/alexisbeaulieu97/jiva/internal/disclosure"
	"github.com/alexisbeaulieu97/jiva/internal/effect"
	"github.com/alexisbeaulieu97/jiva/internal/ui/components"
	"github.com/go-playground/validator/v10"
)

var (
	validatorOnce sync.Once
	validateInst  *validator.Validate

	semverPattern  = regexp.MustCompile(`^\d+\.\d+\.\d+(?:-[0-9A-Za-z-.]+)?(?:\+[0-9A-Za-z-.]+)?$`)
	panelIDPattern = regexp.MustCompile(`^[a-z0-9][a-z0-9_-]*$`)
)

// validatorInstance configures and returns the shared validator instance used across the config package.
func validatorInstance() *validator.Validate {
	validatorOnce.Do(func() {
		v := validator.New()

		_ = v.RegisterValidation("semver", func(fl validator.FieldLevel) bool {
			return semverPattern.MatchString(fl.Field().String())
		})

		// Empty values are accepted by the tags below; defaults fill them.
		_ = v.RegisterValidation("panel_id", func(fl validator.FieldLevel) bool {
			id := fl.Field().String()
			return id == "" || panelIDPattern.MatchString(id)
		})

		_ = v.RegisterValidation("policy", func(fl validator.FieldLevel) bool {
			_, err := disclosure.ParsePolicy(fl.Field().String())
			return err == nil
		})

		_ = v.RegisterValidation("effect", func(fl validator.FieldLevel) bool {
			name := fl.Field().String()
			if name == "" {
				return true
			}
			_, ok := effect.ByName(name)
			return ok
		})

		_ = v.RegisterValidation("size", func(fl validator.FieldLevel) bool {
			_, err := components.ParseSize(fl.Field().String())
			return err == nil
		})

		_ = v.RegisterValidation("variant", func(fl validator.FieldLevel) bool {
			_, err := components.ParseButtonVariant(fl.Field().String())
			return err == nil
		})

		validateInst = v
	})

	return validateInst
}

// GetValidator returns a configured validator instance for use outside the config package.
func GetValidator() *validator.Validate {
	return validatorInstance()
}
