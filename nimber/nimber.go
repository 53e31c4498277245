package nimber

import "fmt"

// Nimber is a non-negative integer, the Grundy value *n of an impartial
// game. The zero value is *0.
type Nimber int

// Zero is *0, the value of a position with no moves.
const Zero Nimber = 0

// New returns the nimber *n. Panics with ErrNegative if n < 0: a
// programmer error, since Sprague-Grundy values are never negative.
func New(n int) Nimber {
	if n < 0 {
		panic(ErrNegative)
	}
	return Nimber(n)
}

// Add returns *a + *b = *(a XOR b), the nimber sum.
func Add(a, b Nimber) Nimber {
	return Nimber(int(a) ^ int(b))
}

// Eq reports whether a and b are the same nimber.
func Eq(a, b Nimber) bool { return a == b }

// Int returns the underlying Grundy number.
func (n Nimber) Int() int { return int(n) }

// String renders *n, or "0" for *0.
func (n Nimber) String() string {
	if n == 0 {
		return "0"
	}
	return fmt.Sprintf("*%d", int(n))
}

// Mex returns the minimum excludant of a finite set of non-negative
// integers: the least non-negative integer not present in s. Used to
// compute the Sprague-Grundy value of a position from the Grundy values
// of its options.
func Mex(s []Nimber) Nimber {
	present := make(map[int]struct{}, len(s))
	for _, n := range s {
		present[int(n)] = struct{}{}
	}
	for m := 0; ; m++ {
		if _, ok := present[m]; !ok {
			return Nimber(m)
		}
	}
}
