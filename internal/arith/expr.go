package arith

// Expr is a node of an arithmetic expression tree. The set of nodes is closed,
// only NumberExpr, UnaryExpr and BinaryExpr implement it.
type Expr interface {
	isExpr()
}

// ExprVisitor is implemented by every algorithm that walks a tree. Each
// algorithm picks the type R of its own result.
type ExprVisitor[R any] interface {
	VisitNumberExpr(expr *NumberExpr) (R, error)
	VisitUnaryExpr(expr *UnaryExpr) (R, error)
	VisitBinaryExpr(expr *BinaryExpr) (R, error)
}

// Accept calls the method of visitor that matches the variant of expr.
func Accept[R any](expr Expr, visitor ExprVisitor[R]) (R, error) {
	switch e := expr.(type) {
	case *NumberExpr:
		if e != nil {
			return visitor.VisitNumberExpr(e)
		}
	case *UnaryExpr:
		if e != nil {
			return visitor.VisitUnaryExpr(e)
		}
	case *BinaryExpr:
		if e != nil {
			return visitor.VisitBinaryExpr(e)
		}
	}
	var zero R
	return zero, NewExprError("Missing expression.")
}

// NumberExpr is a numeric literal. Its value can be replaced in place, every
// tree holding the node sees the new value on its next evaluation. Callers
// must not call Set while another goroutine evaluates a tree holding the node.
type NumberExpr struct {
	value float64
}

func NewNumberExpr(value float64) *NumberExpr {
	return &NumberExpr{value}
}

func (expr *NumberExpr) Get() float64 {
	return expr.value
}

func (expr *NumberExpr) Set(value float64) {
	expr.value = value
}

func (*NumberExpr) isExpr() {}

// UnaryExpr applies UnaryPlus or UnaryMinus to a single operand.
type UnaryExpr struct {
	op   Operator
	expr Expr
}

func NewUnaryExpr(op Operator, expr Expr) *UnaryExpr {
	return &UnaryExpr{op, expr}
}

func (expr *UnaryExpr) Operator() Operator {
	return expr.op
}

func (expr *UnaryExpr) Operand() Expr {
	return expr.expr
}

func (*UnaryExpr) isExpr() {}

// BinaryExpr applies Plus, Minus, Multiply or Divide to two operands.
type BinaryExpr struct {
	op    Operator
	left  Expr
	right Expr
}

func NewBinaryExpr(op Operator, left Expr, right Expr) *BinaryExpr {
	return &BinaryExpr{op, left, right}
}

func (expr *BinaryExpr) Operator() Operator {
	return expr.op
}

func (expr *BinaryExpr) Left() Expr {
	return expr.left
}

func (expr *BinaryExpr) Right() Expr {
	return expr.right
}

func (*BinaryExpr) isExpr() {}

// Validate walks the whole tree and returns the first node that cannot be
// evaluated, either a missing child or an operator of the wrong kind.
func Validate(expr Expr) error {
	_, err := Accept[struct{}](expr, validator{})
	return err
}

type validator struct{}

func (v validator) VisitNumberExpr(expr *NumberExpr) (struct{}, error) {
	return struct{}{}, nil
}

func (v validator) VisitUnaryExpr(expr *UnaryExpr) (struct{}, error) {
	if !expr.op.IsUnary() {
		return struct{}{}, NewOperatorError("unary", expr.op)
	}
	return Accept[struct{}](expr.expr, v)
}

func (v validator) VisitBinaryExpr(expr *BinaryExpr) (struct{}, error) {
	if !expr.op.IsBinary() {
		return struct{}{}, NewOperatorError("binary", expr.op)
	}
	if _, err := Accept[struct{}](expr.left, v); err != nil {
		return struct{}{}, err
	}
	return Accept[struct{}](expr.right, v)
}
