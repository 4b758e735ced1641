package errors

// Error codes for the stele compiler.
// These codes are used in error messages and documentation to provide
// consistent error identification across the toolchain.
//
// Error code ranges:
// E0001-E0099: Semantic analysis errors
// E0100-E0199: Scanner and parser errors
// E0300-E0399: Resolution errors
// E0400-E0499: Hierarchy errors
// E0500-E0599: Temporal errors
// E0600-E0699: Verification errors
const (
	// E0001: Symbol resolution errors
	ErrorUndefinedSymbol = "E0001"

	// E0002: Duplicate definitions within one scope frame
	ErrorDuplicateDefinition = "E0002"

	// E0003: Type compatibility errors
	ErrorTypeMismatch = "E0003"

	// E0004: Struct field access errors
	ErrorFieldNotFound = "E0004"

	// E0005: Generic instantiation arity errors
	ErrorGenericArity = "E0005"

	// E0006: BoundedInt range errors (low > high)
	ErrorBoundedIntRange = "E0006"

	// E0007: Unknown or malformed annotation errors
	ErrorInvalidAnnotation = "E0007"

	// E0008: Citation format errors
	ErrorInvalidCitation = "E0008"

	// E0009: Temporal type argument errors
	ErrorInvalidTemporal = "E0009"

	// E0010: Date literals that do not name a real calendar day
	ErrorInvalidDate = "E0010"

	// Scanner/parser errors
	ErrorScan  = "E0100"
	ErrorParse = "E0101"

	// Resolution errors
	ErrorUnresolvedReference = "E0300"
	ErrorExtendsCycle        = "E0301"
	ErrorUnknownParent       = "E0302"

	// Hierarchy errors
	ErrorHierarchyCycle      = "E0400"
	ErrorDanglingSubordinate = "E0401"
	ErrorLevelInversion      = "E0402"
	ErrorUnknownLevel        = "E0403"

	// Temporal errors
	ErrorInvertedValidity    = "E0500"
	ErrorExpiredSunset       = "E0501"
	ErrorRetroactiveConflict = "E0502"

	// Verification errors
	ErrorSolverInvocation = "E0600"
)
