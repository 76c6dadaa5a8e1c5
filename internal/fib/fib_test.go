package fib

import (
	"errors"
	"testing"
	"time"
)

func TestFib(t *testing.T) {
	tests := []struct {
		n    int
		want int64
	}{
		{1, 1},
		{2, 1},
		{3, 2},
		{4, 3},
		{5, 5},
		{6, 8},
		{7, 13},
		{8, 21},
		{9, 34},
		{10, 55},
		{12, 144},
		{15, 610},
		{20, 6765},
	}

	for _, tt := range tests {
		if got := Fib(tt.n); got.Int64() != tt.want {
			t.Errorf("Fib(%d) = %s, want %d", tt.n, got, tt.want)
		}
	}
}

func TestFibRecurrence(t *testing.T) {
	for n := 3; n <= 90; n++ {
		a, b, c := Fib(n-2), Fib(n-1), Fib(n)
		if sum := a.Add(a, b); sum.Cmp(c) != 0 {
			t.Fatalf("Fib(%d) = %s, want Fib(%d)+Fib(%d) = %s", n, c, n-1, n-2, sum)
		}
	}
}

func TestFibLarge(t *testing.T) {
	start := time.Now()
	got := Fib(100)
	elapsed := time.Since(start)

	if got.Sign() <= 0 {
		t.Fatalf("Fib(100) = %s, want positive", got)
	}
	if want := "354224848179261915075"; got.String() != want {
		t.Errorf("Fib(100) = %s, want %s", got, want)
	}
	if elapsed >= time.Second {
		t.Errorf("Fib(100) took %v", elapsed)
	}
}

func TestFibPrecondition(t *testing.T) {
	for _, n := range []int{0, -1, -10} {
		func() {
			defer func() {
				r := recover()
				if r == nil {
					t.Errorf("Fib(%d) did not panic", n)
					return
				}
				err, ok := r.(error)
				if !ok {
					t.Fatalf("Fib(%d) panicked with %T, want error", n, r)
				}
				var pe *PreconditionError
				if !errors.As(err, &pe) {
					t.Fatalf("Fib(%d) panicked with %v, want *PreconditionError", n, err)
				}
				if pe.N != n {
					t.Errorf("PreconditionError.N = %d, want %d", pe.N, n)
				}
			}()
			Fib(n)
		}()
	}
}
