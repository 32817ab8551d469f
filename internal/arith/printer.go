package arith

import (
	"fmt"
	"io"
	"strconv"
	"strings"
)

var binaryTokens = map[Operator]string{
	Plus:     " + ",
	Minus:    " - ",
	Multiply: " x ",
	Divide:   " / ",
}

var unaryTokens = map[Operator]string{
	UnaryPlus:  "+",
	UnaryMinus: "-",
}

// RpnPrinter writes a tree in reverse Polish notation, one token per line.
// Tokens are written as soon as they are visited.
type RpnPrinter struct {
	output io.Writer
}

func NewRpnPrinter(output io.Writer) *RpnPrinter {
	return &RpnPrinter{output}
}

// Print writes the tokens of expr to the printer's output.
func (printer *RpnPrinter) Print(expr Expr) error {
	_, err := Accept[struct{}](expr, printer)
	return err
}

func (printer *RpnPrinter) VisitNumberExpr(expr *NumberExpr) (struct{}, error) {
	return printer.emit(formatNumber(expr.Get()))
}

func (printer *RpnPrinter) VisitBinaryExpr(expr *BinaryExpr) (struct{}, error) {
	if _, err := Accept[struct{}](expr.left, printer); err != nil {
		return struct{}{}, err
	}
	if _, err := Accept[struct{}](expr.right, printer); err != nil {
		return struct{}{}, err
	}
	tok, ok := binaryTokens[expr.op]
	if !ok {
		return struct{}{}, NewOperatorError("binary", expr.op)
	}
	return printer.emit(tok)
}

func (printer *RpnPrinter) VisitUnaryExpr(expr *UnaryExpr) (struct{}, error) {
	if _, err := Accept[struct{}](expr.expr, printer); err != nil {
		return struct{}{}, err
	}
	tok, ok := unaryTokens[expr.op]
	if !ok {
		return struct{}{}, NewOperatorError("unary", expr.op)
	}
	return printer.emit(tok)
}

func (printer *RpnPrinter) emit(tok string) (struct{}, error) {
	_, err := fmt.Fprintln(printer.output, tok)
	return struct{}{}, err
}

// Render returns the lines RpnPrinter would write for expr. Nothing is
// returned if the tree holds an invalid operator.
func Render(expr Expr) ([]string, error) {
	var out strings.Builder
	if err := NewRpnPrinter(&out).Print(expr); err != nil {
		return nil, err
	}
	lines := strings.Split(out.String(), "\n")
	return lines[:len(lines)-1], nil
}

func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
