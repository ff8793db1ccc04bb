package domain

import "go.trai.ch/zerr"

// Operation is one of the three top-level cache operations.
type Operation string

const (
	// OperationFetch downloads the first available archive from a list of candidate URLs.
	OperationFetch Operation = "fetch"
	// OperationAdd registers paths, extracts the fetched archive into them and records a baseline.
	OperationAdd Operation = "add"
	// OperationPush packs and uploads tracked paths when their content changed.
	OperationPush Operation = "push"
)

// Operations lists every supported operation in dispatch order.
func Operations() []Operation {
	return []Operation{OperationFetch, OperationAdd, OperationPush}
}

// ParseOperation maps a command name onto the closed set of operations.
func ParseOperation(name string) (Operation, error) {
	switch op := Operation(name); op {
	case OperationFetch, OperationAdd, OperationPush:
		return op, nil
	default:
		return "", zerr.With(zerr.Wrap(ErrUnknownOperation, "cannot dispatch"), "operation", name)
	}
}

// ValidateArgs checks the argument count an operation requires.
func (o Operation) ValidateArgs(args []string) error {
	valid := false
	switch o {
	case OperationFetch, OperationAdd:
		valid = len(args) > 0
	case OperationPush:
		valid = len(args) == 1
	default:
		return zerr.With(zerr.Wrap(ErrUnknownOperation, "cannot dispatch"), "operation", string(o))
	}
	if !valid {
		err := zerr.With(zerr.Wrap(ErrInvalidArguments, "wrong number of arguments"), "operation", string(o))
		return zerr.With(err, "args", len(args))
	}
	return nil
}

func (o Operation) String() string {
	return string(o)
}
