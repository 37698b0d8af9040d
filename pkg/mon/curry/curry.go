// Package curry converts between multi-argument functions and chains of
// single-argument functions.
package curry

func Curry2[A, B, Out any](f func(A, B) Out) func(A) func(B) Out {
	return func(a A) func(B) Out {
		return func(b B) Out {
			return f(a, b)
		}
	}
}

func Curry3[A, B, C, Out any](f func(A, B, C) Out) func(A) func(B) func(C) Out {
	return func(a A) func(B) func(C) Out {
		return Curry2(func(b B, c C) Out {
			return f(a, b, c)
		})
	}
}

func Curry4[A, B, C, D, Out any](f func(A, B, C, D) Out) func(A) func(B) func(C) func(D) Out {
	return func(a A) func(B) func(C) func(D) Out {
		return Curry3(func(b B, c C, d D) Out {
			return f(a, b, c, d)
		})
	}
}

func Uncurry2[A, B, Out any](f func(A) func(B) Out) func(A, B) Out {
	return func(a A, b B) Out {
		return f(a)(b)
	}
}

func Uncurry3[A, B, C, Out any](f func(A) func(B) func(C) Out) func(A, B, C) Out {
	return func(a A, b B, c C) Out {
		return f(a)(b)(c)
	}
}

func Uncurry4[A, B, C, D, Out any](f func(A) func(B) func(C) func(D) Out) func(A, B, C, D) Out {
	return func(a A, b B, c C, d D) Out {
		return f(a)(b)(c)(d)
	}
}

// Partial fixes the first argument of f.
func Partial[A, B, Out any](f func(A, B) Out, a A) func(B) Out {
	return Curry2(f)(a)
}

// Flip swaps the arguments of f.
func Flip[A, B, Out any](f func(A, B) Out) func(B, A) Out {
	return func(b B, a A) Out {
		return f(a, b)
	}
}
