package zone

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/microcosm-cc/bluemonday"
)

// minPolygonValues: 3 coordinate pairs
const minPolygonValues = 6

// Schema: structural validation of zone records and sanitizing of their labels
type Schema struct {
	validate  *validator.Validate
	sanitizer *bluemonday.Policy
}

func NewSchema() *Schema {
	v := validator.New(validator.WithRequiredStructEnabled())

	// report json names ('type', 'points') instead of Go field names
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return fld.Name
		}
		return name
	})
	v.RegisterStructValidation(polygonStructLevel, Zone{})

	return &Schema{
		validate:  v,
		sanitizer: bluemonday.StrictPolicy(),
	}
}

// Check: validates a zone record. Errors wrap ErrUnknownZoneType,
// ErrInvalidZoneGeometry or ErrMissingZoneID.
func (s *Schema) Check(z Zone) error {
	err := s.validate.Struct(z)
	if err == nil {
		return nil
	}

	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return fmt.Errorf("%w: %v", ErrInvalidZoneGeometry, err)
	}

	// type problems win over geometry: geometry is meaningless for an unknown type
	for _, fe := range validationErrors {
		if fe.Field() == "type" {
			return fmt.Errorf("%w: %q", ErrUnknownZoneType, z.Type)
		}
	}

	fe := validationErrors[0]
	if fe.Field() == "id" {
		return fmt.Errorf("%w: %s", ErrMissingZoneID, formatSingleError(fe))
	}
	return fmt.Errorf("%w: %s", ErrInvalidZoneGeometry, formatSingleError(fe))
}

// Label: zone name with any markup stripped
func (s *Schema) Label(name string) string {
	return strings.TrimSpace(s.sanitizer.Sanitize(name))
}

// polygonStructLevel: polygon zones need at least 3 coordinate pairs
func polygonStructLevel(sl validator.StructLevel) {
	z := sl.Current().Interface().(Zone)
	if z.Type != TypePolygon {
		return
	}
	if n := len(z.Shape.Points); n < minPolygonValues || n%2 != 0 {
		sl.ReportError(z.Shape.Points, "points", "Points", "polygon", fmt.Sprint(n))
	}
}

// formatSingleError formats a single validation error with common cases
func formatSingleError(err validator.FieldError) string {
	field := err.Field()

	switch err.Tag() {
	case "required":
		return fmt.Sprintf("'%s' is required", field)
	case "min", "max":
		return fmt.Sprintf("'%s' value out of allowed range", field)
	case "polygon":
		return fmt.Sprintf("'%s' needs at least 3 coordinate pairs, got %s values", field, err.Param())
	default:
		return fmt.Sprintf("'%s' is invalid", field)
	}
}
