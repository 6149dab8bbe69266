package errs

import (
	"fmt"
	"strings"

	"github.com/pkg/errors"
)

var (
	ErrConfiguration   = errors.New("invalid configuration")
	ErrFieldResolution = errors.New("protein change field not found")
	ErrJoinIntegrity   = errors.New("gene missing from gene totals")
)

// ConfigurationError is raised before any processing when a selector
// holds more than one value or a value outside its enumerated set.
type ConfigurationError struct {
	Field   string
	Values  []string
	Allowed []string
}

func (e *ConfigurationError) Error() string {
	if len(e.Values) > 1 {
		return fmt.Sprintf("%s: expected exactly one value for %s, got %q", ErrConfiguration, e.Field, e.Values)
	}
	return fmt.Sprintf("%s: %s must be one of [%s], got %q",
		ErrConfiguration, e.Field, strings.Join(e.Allowed, ", "), strings.Join(e.Values, ","))
}

func (e *ConfigurationError) Is(target error) bool { return target == ErrConfiguration }

type FieldResolutionError struct {
	Requested  string
	Candidates []string
	Available  []string
}

func (e *FieldResolutionError) Error() string {
	tried := e.Candidates
	if e.Requested != "" {
		tried = append([]string{e.Requested}, e.Candidates...)
	}
	return fmt.Sprintf("%s: tried [%s]; available columns: [%s]",
		ErrFieldResolution, strings.Join(tried, ", "), strings.Join(e.Available, ", "))
}

func (e *FieldResolutionError) Is(target error) bool { return target == ErrFieldResolution }

type JoinIntegrityError struct {
	Genes []string
}

func (e *JoinIntegrityError) Error() string {
	return fmt.Sprintf("%s: [%s]", ErrJoinIntegrity, strings.Join(e.Genes, ", "))
}

func (e *JoinIntegrityError) Is(target error) bool { return target == ErrJoinIntegrity }

// IsUserError reports whether err stems from caller input rather than
// from the data or the backends.
func IsUserError(err error) bool {
	return errors.Is(err, ErrConfiguration) || errors.Is(err, ErrFieldResolution)
}
