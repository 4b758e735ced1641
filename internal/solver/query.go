package solver

// QuantKind is the outermost quantifier form of a principle body.
type QuantKind int

const (
	QuantForall QuantKind = iota
	QuantExists
)

func (k QuantKind) String() string {
	if k == QuantExists {
		return "exists"
	}
	return "forall"
}

// Verdict is the interpreted outcome of one solver run.
type Verdict int

const (
	VerdictValid Verdict = iota
	VerdictInvalid
	VerdictWitness
	VerdictNoWitness
)

func (v Verdict) String() string {
	switch v {
	case VerdictValid:
		return "valid"
	case VerdictInvalid:
		return "invalid"
	case VerdictWitness:
		return "witness found"
	case VerdictNoWitness:
		return "no witness"
	default:
		return "unknown"
	}
}

// Holds reports whether the verdict counts as success for exit codes
// and reporting.
func (v Verdict) Holds() bool {
	return v == VerdictValid || v == VerdictWitness
}

// Interpretation maps each raw solver answer to a verdict. Getting
// this mapping wrong silently inverts every result, so it is built in
// exactly one place, Polarity, and carried alongside the query text.
type Interpretation struct {
	OnSat   Verdict
	OnUnsat Verdict

	// ModelIsCounterexample distinguishes a sat model that refutes a
	// universal claim from one that witnesses an existential.
	ModelIsCounterexample bool
}

// Polarity returns the interpretation for a quantifier kind. A
// universal claim is checked by asserting its negation: unsat means no
// refutation exists, so the claim is valid, and a sat model is a
// counterexample. An existential claim is asserted directly: a sat
// model is a witness and unsat means none exists.
func Polarity(kind QuantKind) Interpretation {
	if kind == QuantExists {
		return Interpretation{
			OnSat:   VerdictWitness,
			OnUnsat: VerdictNoWitness,
		}
	}
	return Interpretation{
		OnSat:                 VerdictInvalid,
		OnUnsat:               VerdictValid,
		ModelIsCounterexample: true,
	}
}

// Query is a complete SMT-LIB script plus the rule for reading the
// solver's answer.
type Query struct {
	Principle string
	Kind      QuantKind
	Text      string
	Interp    Interpretation
}
