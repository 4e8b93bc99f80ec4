package neuroview

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
)

// validate checks the struct tags on Dataset and Config. It caches struct
// metadata, so one instance is shared.
var validate = validator.New()

// validationError turns the first field error reported by validate into a
// short message. Other errors pass through unchanged.
func validationError(err error) error {
	var errs validator.ValidationErrors
	if !errors.As(err, &errs) || len(errs) == 0 {
		return err
	}
	e := errs[0]
	switch e.Tag() {
	case "required":
		if e.Field() == "ID" {
			return fmt.Errorf("%s: missing id", e.Namespace())
		}
		return fmt.Errorf("%s: field is required", e.Namespace())
	case "min":
		if e.Field() == "Models" {
			return errors.New("no models")
		}
		return fmt.Errorf("%s: must be at least %s", e.Namespace(), e.Param())
	case "oneof":
		return fmt.Errorf("%s: %q is not one of [%s]", e.Namespace(), e.Value(), e.Param())
	case "gte", "lt":
		return fmt.Errorf("%s: %v out of range (%s %s)", e.Namespace(), e.Value(), e.Tag(), e.Param())
	default:
		return fmt.Errorf("%s: validation failed (%s)", e.Namespace(), e.Tag())
	}
}
