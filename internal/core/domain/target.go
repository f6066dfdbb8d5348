package domain

import (
	"errors"

	"go.trai.ch/zerr"
)

// TargetListingPreviewLines is how many lines of the target listing are logged when the
// requested target is rejected.
const TargetListingPreviewLines = 20

// FirstViable tries candidates in order and returns the first one try accepts.
// When every candidate is rejected the returned error wraps ErrNoViableTarget together
// with each rejection.
func FirstViable(candidates []string, try func(target string) error) (string, error) {
	var errs error
	for _, candidate := range candidates {
		err := try(candidate)
		if err == nil {
			return candidate, nil
		}
		errs = errors.Join(errs, zerr.With(zerr.Wrap(err, "target rejected"), "target", candidate))
	}
	return "", errors.Join(ErrNoViableTarget, errs)
}
