package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"

	jivaerrors "github.com/alexisbeaulieu97/jiva/pkg/errors"
)

// ValidateConfig performs structural and cross-field validation on an entire configuration.
func ValidateConfig(cfg *Config) error {
	if cfg == nil {
		return jivaerrors.NewValidationError("config", "configuration is nil", nil)
	}

	if err := validatorInstance().Struct(cfg); err != nil {
		return convertValidationError(err)
	}

	for i := range cfg.Collapses {
		if err := validateCollapse(&cfg.Collapses[i], fmt.Sprintf("collapses[%d]", i)); err != nil {
			return err
		}
	}

	return nil
}

// validateCollapse rejects explicit ids that repeat among siblings, the
// same rule panel composition enforces, so a bad file fails at load time.
func validateCollapse(c *Collapse, field string) error {
	seen := make(map[string]int, len(c.Items))
	for i, item := range c.Items {
		itemField := fmt.Sprintf("%s.items[%d]", field, i)
		if item.ID != "" {
			if first, ok := seen[item.ID]; ok {
				return jivaerrors.NewValidationError(itemField+".id",
					fmt.Sprintf("duplicate panel id %q (first used by items[%d])", item.ID, first), nil)
			}
			seen[item.ID] = i
		}
		if item.Nested != nil {
			if err := validateCollapse(item.Nested, itemField+".nested"); err != nil {
				return err
			}
		}
	}
	return nil
}

func convertValidationError(err error) error {
	if err == nil {
		return nil
	}

	var ves validator.ValidationErrors
	if errors.As(err, &ves) && len(ves) > 0 {
		ve := ves[0]
		field := yamlishFieldName(ve)
		msg := fmt.Sprintf("%s failed validation for tag '%s'", field, ve.Tag())
		return jivaerrors.NewValidationError(field, msg, err)
	}

	return jivaerrors.NewValidationError("config", err.Error(), err)
}

// yamlishFieldName lowercases the struct namespace and drops the root type,
// so "Config.Buttons[0].Label" reads "buttons[0].label".
func yamlishFieldName(fe validator.FieldError) string {
	parts := strings.Split(fe.StructNamespace(), ".")
	if len(parts) > 1 {
		parts = parts[1:]
	}
	for i, part := range parts {
		parts[i] = strings.ToLower(part)
	}
	return strings.Join(parts, ".")
}
