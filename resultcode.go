package wpm

// ResultCode classifies the outcome of FindBestPerfectMatching, mirroring
// the taxonomy a caller would need even though idiomatic Go callers will
// usually just check the returned error.
type ResultCode int

const (
	// Success indicates the solve and the constraint evolution both
	// completed normally.
	Success ResultCode = iota
	// InvalidGraph indicates a parse failure or structural inconsistency
	// in the input text: missing id, duplicate id, id out of range,
	// self-edge, or an ill-formed token. Recoverable; the caller may
	// retry with corrected input.
	InvalidGraph
	// MatchingFailure indicates no perfect matching exists on the input
	// graph. Recoverable only by altering the constraints.
	MatchingFailure
	// InvalidMatching indicates an internal invariant was violated. This
	// should never occur in a correct implementation; treat it as a bug.
	InvalidMatching
	// KnownException indicates a caught domain error with a diagnostic
	// message attached to the returned error.
	KnownException
	// UnknownException indicates an unexpected condition escaped every
	// inner handler.
	UnknownException
)

func (rc ResultCode) String() string {
	switch rc {
	case Success:
		return "Success"
	case InvalidGraph:
		return "InvalidGraph"
	case MatchingFailure:
		return "MatchingFailure"
	case InvalidMatching:
		return "InvalidMatching"
	case KnownException:
		return "KnownException"
	case UnknownException:
		return "UnknownException"
	default:
		return "Unknown"
	}
}
