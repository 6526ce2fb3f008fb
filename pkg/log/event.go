package log

import "time"

// Event represents a single dispatch operation performed by the
// accessor. CBOR encoding uses integer keys for compactness.
type Event struct {
	// Timestamp when the operation completed (nanosecond precision).
	Timestamp time.Time `cbor:"1,keyasint"`

	// Op is the dispatch operation performed.
	Op Operation `cbor:"2,keyasint"`

	// Interface is the interface name the device was addressed under.
	Interface string `cbor:"3,keyasint,omitempty"`

	// Member is the property or method name dispatched to.
	Member string `cbor:"4,keyasint,omitempty"`

	// Outcome classifies how the operation ended.
	Outcome Outcome `cbor:"5,keyasint"`

	// Convention is the naming convention that served the call
	// (ConventionNone when no convention matched).
	Convention Convention `cbor:"6,keyasint,omitempty"`

	// Async indicates the device returned a pending result that was
	// awaited before the operation completed.
	Async bool `cbor:"7,keyasint,omitempty"`

	// Elapsed is the total operation duration, including any await.
	Elapsed time.Duration `cbor:"8,keyasint,omitempty"`

	// Detail carries the error message for failed operations.
	Detail string `cbor:"9,keyasint,omitempty"`
}

// Operation identifies a dispatch operation.
type Operation uint8

const (
	// OpGet is a property read.
	OpGet Operation = 0
	// OpSet is a property write.
	OpSet Operation = 1
	// OpInvoke is a method invocation.
	OpInvoke Operation = 2
	// OpAddListener is a property listener registration.
	OpAddListener Operation = 3
	// OpRemoveListener is a property listener removal.
	OpRemoveListener Operation = 4
)

// String returns the operation name.
func (o Operation) String() string {
	switch o {
	case OpGet:
		return "GET"
	case OpSet:
		return "SET"
	case OpInvoke:
		return "INVOKE"
	case OpAddListener:
		return "ADD_LISTENER"
	case OpRemoveListener:
		return "REMOVE_LISTENER"
	default:
		return "UNKNOWN"
	}
}

// Outcome classifies how a dispatch operation ended.
type Outcome uint8

const (
	// OutcomeOK indicates the operation succeeded.
	OutcomeOK Outcome = 0
	// OutcomeInvalidArgument indicates malformed call inputs.
	OutcomeInvalidArgument Outcome = 1
	// OutcomeNotImplemented indicates the device lacks the member
	// under every attempted convention.
	OutcomeNotImplemented Outcome = 2
	// OutcomeError indicates a device-side failure.
	OutcomeError Outcome = 3
)

// String returns the outcome name.
func (o Outcome) String() string {
	switch o {
	case OutcomeOK:
		return "OK"
	case OutcomeInvalidArgument:
		return "INVALID_ARGUMENT"
	case OutcomeNotImplemented:
		return "NOT_IMPLEMENTED"
	case OutcomeError:
		return "ERROR"
	default:
		return "UNKNOWN"
	}
}

// Convention identifies which member-naming convention served a call.
type Convention uint8

const (
	// ConventionNone indicates no convention matched.
	ConventionNone Convention = 0
	// ConventionDirect is a direct value slot on the view.
	ConventionDirect Convention = 1
	// ConventionSync is a get<Name>/set<Name> callable.
	ConventionSync Convention = 2
	// ConventionAsync is a get<Name>Async/set<Name>Async callable.
	ConventionAsync Convention = 3
	// ConventionMethod is a method addressed by exact name.
	ConventionMethod Convention = 4
	// ConventionNotifier is the view's event-subscription capability.
	ConventionNotifier Convention = 5
)

// String returns the convention name.
func (c Convention) String() string {
	switch c {
	case ConventionNone:
		return "NONE"
	case ConventionDirect:
		return "DIRECT"
	case ConventionSync:
		return "SYNC"
	case ConventionAsync:
		return "ASYNC"
	case ConventionMethod:
		return "METHOD"
	case ConventionNotifier:
		return "NOTIFIER"
	default:
		return "UNKNOWN"
	}
}
