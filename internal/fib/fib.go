// Package fib computes Fibonacci numbers.
package fib

import (
	"fmt"
	"math/big"
)

// PreconditionError is the panic value raised when Fib is called with n < 1.
type PreconditionError struct {
	N int
}

func (e *PreconditionError) Error() string {
	return fmt.Sprintf("fib: n must be >= 1, got %d", e.N)
}

// Fib returns the n-th Fibonacci number, with Fib(1) = Fib(2) = 1.
// It panics with a *PreconditionError if n < 1.
func Fib(n int) *big.Int {
	if n < 1 {
		panic(&PreconditionError{N: n})
	}

	a, b := big.NewInt(0), big.NewInt(1)
	for i := 1; i < n; i++ {
		a.Add(a, b)
		a, b = b, a
	}
	return b
}
