package arith

import (
	"fmt"

	log "github.com/sirupsen/logrus"
)

type operandStack []float64

func (s *operandStack) push(v float64) {
	*s = append(*s, v)
}

func (s *operandStack) pop() (float64, bool) {
	n := len(*s)
	if n == 0 {
		return 0, false
	}
	v := (*s)[n-1]
	*s = (*s)[:n-1]
	return v, true
}

// StackEvaluator computes the value of flattened items with an operand stack.
// It only promises a result for items produced by Flatten from a valid tree,
// other sequences are rejected when they underflow or leave extra operands.
type StackEvaluator struct {
	logger log.FieldLogger
}

func NewStackEvaluator(logger log.FieldLogger) *StackEvaluator {
	if logger == nil {
		logger = log.StandardLogger()
	}
	return &StackEvaluator{logger}
}

// EvaluateFlattened returns the value described by items.
func EvaluateFlattened(items []ExprItem) (float64, error) {
	return NewStackEvaluator(nil).Evaluate(items)
}

// EvaluateTree flattens expr then evaluates the items. The result is the same
// as Evaluate(expr).
func EvaluateTree(expr Expr) (float64, error) {
	items, err := Flatten(expr)
	if err != nil {
		return 0, err
	}
	return EvaluateFlattened(items)
}

func (se *StackEvaluator) Evaluate(items []ExprItem) (float64, error) {
	trace := debugEnabled(se.logger)
	stack := make(operandStack, 0, len(items))
	for pos, item := range items {
		switch item.kind {
		case ValueKind:
			stack.push(item.value)
		case OperatorKind:
			if err := se.apply(&stack, pos, item.op); err != nil {
				return 0, err
			}
		default:
			return 0, NewSequenceError(pos, "Item is neither a value nor an operator.")
		}
		if trace {
			se.logger.WithFields(log.Fields{
				"pos":   pos,
				"item":  item.String(),
				"depth": len(stack),
			}).Debug("Applied item")
		}
	}

	if len(stack) != 1 {
		return 0, NewSequenceError(-1, "Expected exactly one value on the stack.")
	}
	return stack[0], nil
}

func (se *StackEvaluator) apply(stack *operandStack, pos int, op Operator) error {
	switch {
	case op.IsBinary():
		// The right operand was pushed last.
		rhs, ok := stack.pop()
		if !ok {
			return NewSequenceError(pos, "Not enough operands.")
		}
		lhs, ok := stack.pop()
		if !ok {
			return NewSequenceError(pos, "Not enough operands.")
		}
		result, _ := applyBinary(op, lhs, rhs)
		stack.push(result)
	case op.IsUnary():
		val, ok := stack.pop()
		if !ok {
			return NewSequenceError(pos, "Not enough operands.")
		}
		result, _ := applyUnary(op, val)
		stack.push(result)
	default:
		return NewOperatorError(fmt.Sprintf("item %d", pos), op)
	}
	return nil
}

// debugEnabled reports whether logger would keep debug entries. Loggers other
// than logrus' own are assumed to keep them.
func debugEnabled(logger log.FieldLogger) bool {
	switch l := logger.(type) {
	case *log.Logger:
		return l.IsLevelEnabled(log.DebugLevel)
	case *log.Entry:
		return l.Logger.IsLevelEnabled(log.DebugLevel)
	}
	return true
}
