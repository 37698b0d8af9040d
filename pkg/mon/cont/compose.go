package cont

// Compose returns a continuation running a then b on each side.
func Compose[A, B, C, RA, RB, RC any](a Continuation[A, B, RA, RB], b Continuation[B, C, RB, RC]) Continuation[A, C, RA, RC] {
	return Continuation[A, C, RA, RC]{
		onLeft: func(v A) C {
			return b.onLeft(a.onLeft(v))
		},
		onRight: func(v RA) RC {
			return b.onRight(a.onRight(v))
		},
	}
}

// Then composes a with a plain function on the left side.
func Then[A, B, C, RA, RB any](a Continuation[A, B, RA, RB], f func(B) C) Continuation[A, C, RA, RB] {
	return Compose(a, LeftOnly[RB](f))
}

// ComposeAll folds same-typed continuations left to right. With no arguments
// it returns Identity.
func ComposeAll[T, R any](cs ...Continuation[T, T, R, R]) Continuation[T, T, R, R] {
	acc := Identity[T, R]()
	for _, c := range cs {
		acc = Compose(acc, c)
	}
	return acc
}
