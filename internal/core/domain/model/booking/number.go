package booking

import (
	"fmt"
	"regexp"
	"time"

	"booking/internal/pkg/errs"
)

var bookingNumberPattern = regexp.MustCompile(`^BOOK-\d{8}-\d{3}$`)

// Number is the human-readable booking identifier, BOOK-YYYYMMDD-NNN. The
// date is the UTC creation date and NNN is a zero-padded sequence that
// restarts at 001 every calendar day.
type Number struct {
	value string
}

// NewNumber builds the number for the n-th booking of the given day, where
// createdSoFar is how many bookings that UTC calendar day already holds.
func NewNumber(createdAt time.Time, createdSoFar int64) (Number, error) {
	if createdSoFar < 0 {
		return Number{}, errs.NewValueIsInvalidError("created-so-far count")
	}
	return Number{
		value: fmt.Sprintf("BOOK-%s-%03d", createdAt.UTC().Format("20060102"), createdSoFar+1),
	}, nil
}

// NumberFromString restores a persisted booking number, validating its shape.
func NumberFromString(v string) (Number, error) {
	if !bookingNumberPattern.MatchString(v) {
		return Number{}, errs.NewValueIsInvalidError(fmt.Sprintf("booking number %q", v))
	}
	return Number{value: v}, nil
}

// String returns the BOOK-YYYYMMDD-NNN form.
func (n Number) String() string {
	return n.value
}

// Validate rejects the zero value.
func (n Number) Validate() error {
	if n.value == "" {
		return errs.NewValueIsRequiredError("booking number must be created via NewNumber or NumberFromString")
	}
	return nil
}
