package entry

import "time"

// Status classifies how a parameter value came to be.
type Status string

const (
	// StatusEstablished marks an immutable external constant backed by a
	// citation. Once written, only another established source may replace it.
	StatusEstablished Status = "ESTABLISHED"
	// StatusGeometric marks a value fixed by combinatorial geometry.
	StatusGeometric Status = "GEOMETRIC"
	// StatusDerived marks a value computed from other stored values. This is
	// the default for producer writes.
	StatusDerived Status = "DERIVED"
	// StatusPredicted marks a value the theory predicts ahead of measurement.
	StatusPredicted Status = "PREDICTED"
	// StatusCalibrated marks a value tuned against data.
	StatusCalibrated Status = "CALIBRATED"
)

// KnownStatuses lists every valid parameter status, in declaration order.
var KnownStatuses = []Status{
	StatusEstablished,
	StatusGeometric,
	StatusDerived,
	StatusPredicted,
	StatusCalibrated,
}

// BoundType gives the comparison semantics of an experimental reference.
type BoundType string

const (
	// BoundMeasured compares against a measured central value.
	BoundMeasured BoundType = "measured"
	// BoundCentral compares against a quoted central value.
	BoundCentral BoundType = "central_value"
	// BoundUpper is a one-sided upper limit: theory must lie below it.
	BoundUpper BoundType = "upper"
	// BoundLower is a one-sided lower limit: theory must lie above it.
	BoundLower BoundType = "lower"
	// BoundRange is an allowed interval quoted without a single central
	// value; it is classified the same way as a measured value.
	BoundRange BoundType = "range"
)

// ValidationStatus is the pass/fail classification of a theory value against
// its experimental reference.
type ValidationStatus string

const (
	ValidationPass     ValidationStatus = "PASS"
	ValidationMarginal ValidationStatus = "MARGINAL"
	ValidationTension  ValidationStatus = "TENSION"
	ValidationFail     ValidationStatus = "FAIL"
	ValidationNoData   ValidationStatus = "NO_DATA"
)

// Experiment is the experimental reference attached to a parameter.
type Experiment struct {
	// Value is the experimental reference value (central value or bound).
	Value float64
	// Uncertainty is the 1-sigma experimental uncertainty, when quoted.
	Uncertainty *float64
	// Source is the citation for the reference, e.g. "PDG2024".
	Source string
	// Bound selects the comparison semantics.
	Bound BoundType
}

// Validation is the computed comparison result stored alongside a parameter.
type Validation struct {
	// Sigma is the deviation in units of experimental uncertainty, or the
	// relative margin for one-sided bounds. Nil when no comparison was
	// possible.
	Sigma *float64
	// Status is the classification of the deviation.
	Status ValidationStatus
}

// Parameter is one registry record: a value, where it came from, and how it
// compares to experiment.
type Parameter struct {
	// Path is the unique dotted identifier, e.g. "gauge.M_GUT".
	Path string
	// Value is the stored value: float64, bool, string, or an integer kind.
	Value any
	// Source identifies the producer that wrote the value, or an
	// "ESTABLISHED:<citation>" marker for external constants.
	Source string
	// Uncertainty is the theoretical uncertainty on Value, when known.
	Uncertainty *float64
	// Status classifies the value's origin.
	Status Status
	// CreatedAt is the wall-clock time of the first write to this path.
	CreatedAt time.Time
	// Metadata carries free-form producer annotations (units, notes).
	Metadata map[string]any
	// Experiment is the experimental reference block, when supplied.
	Experiment *Experiment
	// Validation is computed by the registry on every write: NO_DATA when no
	// comparison was possible, the classified deviation otherwise.
	Validation *Validation
}

// Clone returns a deep copy of the record that shares no map or pointer with
// the receiver. The store hands these out so callers cannot mutate its
// internals through a returned record.
func (p Parameter) Clone() Parameter {
	out := p
	if p.Uncertainty != nil {
		u := *p.Uncertainty
		out.Uncertainty = &u
	}
	if p.Metadata != nil {
		out.Metadata = make(map[string]any, len(p.Metadata))
		for k, v := range p.Metadata {
			out.Metadata[k] = v
		}
	}
	if p.Experiment != nil {
		e := *p.Experiment
		if e.Uncertainty != nil {
			u := *e.Uncertainty
			e.Uncertainty = &u
		}
		out.Experiment = &e
	}
	if p.Validation != nil {
		v := *p.Validation
		if v.Sigma != nil {
			s := *v.Sigma
			v.Sigma = &s
		}
		out.Validation = &v
	}
	return out
}

// Mismatch records a non-established overwrite that differed from the prior
// value by more than RelTolerance. The write itself proceeds; the record is
// append-only evidence for later inspection.
type Mismatch struct {
	// ID uniquely identifies the record.
	ID string
	// Path is the parameter path that was overwritten.
	Path string
	// OldValue and OldSource describe the superseded entry.
	OldValue  any
	OldSource string
	// NewValue and NewSource describe the write that superseded it.
	NewValue  any
	NewSource string
	// Time is when the overwrite happened.
	Time time.Time
}
