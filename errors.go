package moogo

import (
	"errors"
	"fmt"

	"github.com/hupe1980/moogo/config"
	"github.com/hupe1980/moogo/distance"
	"github.com/hupe1980/moogo/ingest"
	"github.com/hupe1980/moogo/internal/eaf"
	"github.com/hupe1980/moogo/internal/indicator"
	"github.com/hupe1980/moogo/internal/normalise"
	"github.com/hupe1980/moogo/pointset"
)

// ErrConfiguration is matched by every *ConfigurationError.
var ErrConfiguration = errors.New("invalid configuration")

// ConfigurationError indicates structurally invalid arguments: mismatched
// dimensions, a bad range, a non-positive exponent, an ill-formed direction vector
// or invalid set numbering.
//
// The original underlying error can be accessed via errors.Unwrap.
type ConfigurationError struct {
	Op    string
	cause error
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("%s: %v: %v", e.Op, ErrConfiguration, e.cause)
}

func (e *ConfigurationError) Unwrap() error { return e.cause }

// Is reports whether target is ErrConfiguration.
func (e *ConfigurationError) Is(target error) bool { return target == ErrConfiguration }

// InputDataError describes malformed external data found while reading a dataset.
type InputDataError = ingest.Error

// InputDataKind classifies an InputDataError.
type InputDataKind = ingest.Kind

const (
	EmptyInput            = ingest.EmptyInput
	WrongInitialDimension = ingest.WrongInitialDimension
	FileOpen              = ingest.FileOpen
	Conversion            = ingest.Conversion
	ColumnCount           = ingest.ColumnCount
)

var configurationErrors = []error{
	pointset.ErrBadShape,
	pointset.ErrDimensionMismatch,
	pointset.ErrInvalidSetID,
	pointset.ErrEmpty,
	indicator.ErrInvalidExponent,
	indicator.ErrNonPositive,
	normalise.ErrInvalidRange,
	normalise.ErrTooFewObjectives,
	eaf.ErrUnsupportedDimension,
	eaf.ErrInvalidPercentile,
	distance.ErrUnknownMetric,
	config.ErrInvalid,
}

func translateError(op string, err error) error {
	if err == nil {
		return nil
	}

	// Already translated, or ingestion failures which pass through unchanged.
	var ce *ConfigurationError
	if errors.As(err, &ce) {
		return err
	}
	var ie *InputDataError
	if errors.As(err, &ie) {
		return err
	}

	for _, sentinel := range configurationErrors {
		if errors.Is(err, sentinel) {
			return &ConfigurationError{Op: op, cause: err}
		}
	}
	return err
}
