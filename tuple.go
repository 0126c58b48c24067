package results

// Pair represents a tuple of two values.
type Pair[A, B any] struct {
	First  A
	Second B
}

// NewPair creates a new Pair.
func NewPair[A, B any](first A, second B) Pair[A, B] {
	return Pair[A, B]{First: first, Second: second}
}

// Unpack returns the pair's values.
func (p Pair[A, B]) Unpack() (A, B) {
	return p.First, p.Second
}

// Swap returns a new Pair with swapped elements.
func (p Pair[A, B]) Swap() Pair[B, A] {
	return Pair[B, A]{First: p.Second, Second: p.First}
}

// Zip combines two slices into a slice of Pairs.
func Zip[A, B any](as []A, bs []B) []Pair[A, B] {
	minLen := min(len(as), len(bs))
	result := make([]Pair[A, B], minLen)
	for i := 0; i < minLen; i++ {
		result[i] = NewPair(as[i], bs[i])
	}
	return result
}

// Unzip splits a slice of Pairs into two slices.
func Unzip[A, B any](pairs []Pair[A, B]) ([]A, []B) {
	as := make([]A, len(pairs))
	bs := make([]B, len(pairs))
	for i, p := range pairs {
		as[i] = p.First
		bs[i] = p.Second
	}
	return as, bs
}

// ZipOption combines two Options into an Option of a Pair. The result
// is present only when both inputs are.
func ZipOption[A, B any](a Option[A], b Option[B]) Option[Pair[A, B]] {
	if a.present && b.present {
		return Some(NewPair(a.value, b.value))
	}
	return None[Pair[A, B]]()
}
