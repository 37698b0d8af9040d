package fix

type selfApply[A, B any] func(selfApply[A, B]) func(A) B

// Y returns the fixed point of f: a function g with g == f(g). It lets a
// function recurse without referring to itself by name.
func Y[A, B any](f func(func(A) B) func(A) B) func(A) B {
	u := func(x selfApply[A, B]) func(A) B {
		return f(func(a A) B {
			return x(x)(a)
		})
	}
	return u(u)
}
