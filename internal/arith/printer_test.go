package arith

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRenderExpr(t *testing.T) {
	testCases := []struct {
		expr  Expr
		lines []string
	}{
		{num(3.14), []string{"3.14"}},
		{num(4294967296), []string{"4294967296"}},
		{bin(Plus, num(10), num(20)), []string{"10", "20", " + "}},
		{bin(Minus, num(10), num(4)), []string{"10", "4", " - "}},
		{bin(Multiply, num(2), num(3)), []string{"2", "3", " x "}},
		{bin(Divide, num(20), num(4)), []string{"20", "4", " / "}},
		{un(UnaryMinus, num(5)), []string{"5", "-"}},
		{un(UnaryPlus, num(5)), []string{"5", "+"}},
		{
			composedTree(),
			[]string{"10", "4", " - ", "2", "-", " / ", "3", "1.5", "+", " + ", " x "},
		},
	}

	assert := assert.New(t)
	for _, tc := range testCases {
		lines, err := Render(tc.expr)
		assert.NoError(err)
		assert.Equal(tc.lines, lines)
	}
}

func TestPrintWritesInOrder(t *testing.T) {
	assert := assert.New(t)

	var out strings.Builder
	printer := NewRpnPrinter(&out)
	assert.NoError(printer.Print(bin(Minus, num(1), un(UnaryMinus, num(2)))))
	assert.Equal("1\n2\n-\n - \n", out.String())
}

func TestPrintInvalidOperator(t *testing.T) {
	assert := assert.New(t)

	expr := bin(Illegal, num(1), num(2))
	var out strings.Builder
	err := NewRpnPrinter(&out).Print(expr)
	assert.True(errors.Is(err, ErrInvalidOperator), "%v", err)
	// Operands are emitted before the operator is checked.
	assert.Equal("1\n2\n", out.String())

	lines, err := Render(expr)
	assert.Error(err)
	assert.Nil(lines)

	_, err = Render(un(Divide, num(1)))
	assert.True(errors.Is(err, ErrInvalidOperator), "%v", err)
}

type failingWriter struct{}

func (failingWriter) Write(p []byte) (int, error) {
	return 0, errors.New("disk full")
}

func TestPrintWriteError(t *testing.T) {
	assert := assert.New(t)

	err := NewRpnPrinter(failingWriter{}).Print(bin(Plus, num(1), num(2)))
	assert.EqualError(err, "disk full")
}
