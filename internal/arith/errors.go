package arith

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidOperator   = errors.New("invalid operator")
	ErrMalformedSequence = errors.New("malformed sequence")
	ErrInvalidExpr       = errors.New("invalid expression")
)

// OperatorError is returned when a node or an item carries an operator that
// is not valid where it appears.
type OperatorError struct {
	where string
	op    Operator
}

// NewOperatorError creates a new invalid operator error
func NewOperatorError(where string, op Operator) error {
	return &OperatorError{where, op}
}

func (err *OperatorError) Error() string {
	return fmt.Sprintf(
		"[%s] Error: invalid operator '%s'.",
		err.where,
		err.op,
	)
}

func (err *OperatorError) Operator() Operator {
	return err.op
}

func (err *OperatorError) Unwrap() error {
	return ErrInvalidOperator
}

// SequenceError is returned when a flattened sequence does not describe
// exactly one value. A negative position means the end of the sequence.
type SequenceError struct {
	pos     int
	message string
}

// NewSequenceError creates a new malformed sequence error
func NewSequenceError(pos int, message string) error {
	return &SequenceError{pos, message}
}

func (err *SequenceError) Error() string {
	if err.pos < 0 {
		return fmt.Sprintf("[end] Error: %s", err.message)
	}
	return fmt.Sprintf(
		"[item %d] Error: %s",
		err.pos,
		err.message,
	)
}

func (err *SequenceError) Unwrap() error {
	return ErrMalformedSequence
}

// ItemError is returned when an item cannot be encoded or decoded. A
// negative position means a single item outside of a sequence.
type ItemError struct {
	pos     int
	message string
}

// NewItemError creates a new item codec error
func NewItemError(pos int, message string) error {
	return &ItemError{pos, message}
}

func (err *ItemError) Error() string {
	if err.pos < 0 {
		return fmt.Sprintf("[item] Error: %s", err.message)
	}
	return fmt.Sprintf(
		"[item %d] Error: %s",
		err.pos,
		err.message,
	)
}

func (err *ItemError) Unwrap() error {
	return ErrMalformedSequence
}

// ExprError is returned when a tree has a missing node.
type ExprError struct {
	message string
}

func NewExprError(message string) error {
	return &ExprError{message}
}

func (err *ExprError) Error() string {
	return fmt.Sprintf("Error: %s", err.message)
}

func (err *ExprError) Unwrap() error {
	return ErrInvalidExpr
}
