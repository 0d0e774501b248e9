package validation

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
)

// Settings: brand validation rules. Every field is optional; a nil limit
// (or an empty word list) disables that check.
type Settings struct {
	MaxTextLength  *int     `json:"maxTextLength,omitempty" yaml:"max_text_length,omitempty" validate:"omitempty,min=0"`
	BlockedWords   []string `json:"blockedWords,omitempty" yaml:"blocked_words,omitempty"`
	MinImageWidth  *float64 `json:"minImageWidth,omitempty" yaml:"min_image_width,omitempty" validate:"omitempty,min=0"`
	MinImageHeight *float64 `json:"minImageHeight,omitempty" yaml:"min_image_height,omitempty" validate:"omitempty,min=0"`
	MaxImageWidth  *float64 `json:"maxImageWidth,omitempty" yaml:"max_image_width,omitempty" validate:"omitempty,min=0"`
	MaxImageHeight *float64 `json:"maxImageHeight,omitempty" yaml:"max_image_height,omitempty" validate:"omitempty,min=0"`
	MaxComplexity  *float64 `json:"maxComplexity,omitempty" yaml:"max_complexity,omitempty" validate:"omitempty,min=0"`
}

var settingsValidator = validator.New(validator.WithRequiredStructEnabled())

// Validate: rejects negative limits
func (s Settings) Validate() error {
	err := settingsValidator.Struct(s)
	if err == nil {
		return nil
	}

	var validationErrors validator.ValidationErrors
	if errors.As(err, &validationErrors) && len(validationErrors) > 0 {
		fe := validationErrors[0]
		return fmt.Errorf("validation settings: '%s' must not be negative", fe.Field())
	}
	return fmt.Errorf("validation settings: %w", err)
}

// Int: helper for optional integer limits
func Int(v int) *int { return &v }

// Float: helper for optional numeric limits
func Float(v float64) *float64 { return &v }
