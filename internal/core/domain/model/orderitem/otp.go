package orderitem

import (
	"fmt"
	"math/rand/v2"

	"booking/internal/pkg/errs"
)

const (
	jobOTPMin = 1000
	jobOTPMax = 9999
)

// JobOTP is a 4-digit one-time code gating the start-job and end-job actions.
// A pair is drawn once when the item is created and never regenerated: the
// customer reads the code to the partner on site, proving physical presence.
type JobOTP struct {
	value string
}

// NewJobOTP draws a fresh code uniformly from [1000, 9999].
func NewJobOTP() JobOTP {
	return JobOTP{
		value: fmt.Sprintf("%d", jobOTPMin+rand.IntN(jobOTPMax-jobOTPMin+1)), //nolint:gosec // not a secret token, a spoken code
	}
}

// JobOTPFromString restores a persisted code, validating the 4-digit form.
func JobOTPFromString(v string) (JobOTP, error) {
	if v == "" {
		return JobOTP{}, errs.NewValueIsRequiredError("job OTP")
	}
	if len(v) != 4 {
		return JobOTP{}, errs.NewValueIsInvalidError(fmt.Sprintf("job OTP %q", v))
	}
	for _, r := range v {
		if r < '0' || r > '9' {
			return JobOTP{}, errs.NewValueIsInvalidError(fmt.Sprintf("job OTP %q", v))
		}
	}
	return JobOTP{value: v}, nil
}

// String returns the 4-digit code.
func (o JobOTP) String() string {
	return o.value
}

// Matches reports whether the presented code equals this one.
func (o JobOTP) Matches(presented string) bool {
	return o.value != "" && o.value == presented
}

// Validate ensures the OTP was constructed, not zero-valued.
func (o JobOTP) Validate() error {
	if o.value == "" {
		return errs.NewValueIsRequiredError("job OTP must be created via NewJobOTP or JobOTPFromString")
	}
	return nil
}
