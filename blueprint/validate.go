package blueprint

import (
	"fmt"

	"github.com/go-playground/validator/v10"
)

// validate is shared; validator.Validate caches struct metadata and is safe
// for concurrent use.
var validate = validator.New()

// Validate checks field constraints: ID ≥ 1 and every cost component ≥ 0.
// The returned error wraps ErrInvalidBlueprint.
func (b *Blueprint) Validate() error {
	if err := validate.Struct(b); err != nil {
		return fmt.Errorf("%w %d: %v", ErrInvalidBlueprint, b.ID, err)
	}

	return nil
}
