// Package arith holds two small integer helpers and the primitives they are
// built from. Overflow wraps as ordinary Go int arithmetic.
package arith

// Add returns a + b.
func Add(a, b int) int {
	return a + b
}

// Multiply returns a * b.
func Multiply(a, b int) int {
	return a * b
}

// SumOfSquares returns x² + y².
func SumOfSquares(x, y int) int {
	return Add(Multiply(x, x), Multiply(y, y))
}

// SquareOfSum returns (x + y)².
func SquareOfSum(x, y int) int {
	sum := Add(x, y)
	return Multiply(sum, sum)
}
