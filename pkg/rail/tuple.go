package rail

// Pair is the success shape of combining two independent results.
type Pair[A, B any] struct {
	First  A
	Second B
}

// Triple is the success shape of combining three independent results.
type Triple[A, B, C any] struct {
	First  A
	Second B
	Third  C
}

func NewPair[A, B any](a A, b B) Pair[A, B] {
	return Pair[A, B]{First: a, Second: b}
}

func NewTriple[A, B, C any](a A, b B, c C) Triple[A, B, C] {
	return Triple[A, B, C]{First: a, Second: b, Third: c}
}
