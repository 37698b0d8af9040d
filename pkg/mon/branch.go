package mon

import "fmt"

type side uint8

const (
	neither side = iota
	leftSide
	rightSide
)

// Branch holds exactly one of a left or a right value. The zero Branch holds
// neither and is invalid; it is only produced by declaring a variable.
type Branch[L, R any] struct {
	left  L
	right R
	side  side
}

func Left[L, R any](l L) Branch[L, R] {
	return Branch[L, R]{left: l, side: leftSide}
}

func Right[L, R any](r R) Branch[L, R] {
	return Branch[L, R]{right: r, side: rightSide}
}

// NewBranch builds a Branch from optional sides. Exactly one must be non-nil.
func NewBranch[L, R any](l *L, r *R) (Branch[L, R], error) {
	switch {
	case l != nil && r == nil:
		return Left[L, R](*l), nil
	case l == nil && r != nil:
		return Right[L](*r), nil
	default:
		return Branch[L, R]{}, ErrBranchExclusive
	}
}

func (b Branch[L, R]) HasLeft() bool {
	return b.side == leftSide
}

func (b Branch[L, R]) HasRight() bool {
	return b.side == rightSide
}

func (b Branch[L, R]) Valid() bool {
	return b.side != neither
}

// LeftValue panics if b has no left value.
func (b Branch[L, R]) LeftValue() L {
	if b.side != leftSide {
		invalidAccess(KindBranch, "left")
	}
	return b.left
}

// RightValue panics if b has no right value.
func (b Branch[L, R]) RightValue() R {
	if b.side != rightSide {
		invalidAccess(KindBranch, "right")
	}
	return b.right
}

func (b Branch[L, R]) LeftOr(d L) L {
	if b.side == leftSide {
		return b.left
	}
	return d
}

func (b Branch[L, R]) LeftOrEval(thunk func() L) L {
	if b.side == leftSide {
		return b.left
	}
	return thunk()
}

func (b Branch[L, R]) RightOr(d R) R {
	if b.side == rightSide {
		return b.right
	}
	return d
}

func (b Branch[L, R]) RightOrEval(thunk func() R) R {
	if b.side == rightSide {
		return b.right
	}
	return thunk()
}

// Swap exchanges the sides.
func (b Branch[L, R]) Swap() Branch[R, L] {
	switch b.side {
	case leftSide:
		return Right[R](b.left)
	case rightSide:
		return Left[R, L](b.right)
	default:
		return Branch[R, L]{}
	}
}

func (b Branch[L, R]) Kind() Kind {
	return KindBranch
}

func (b Branch[L, R]) Populated() bool {
	return b.side != neither
}

func (b Branch[L, R]) String() string {
	switch b.side {
	case leftSide:
		return fmt.Sprintf("Branch(left=%v)", b.left)
	case rightSide:
		return fmt.Sprintf("Branch(right=%v)", b.right)
	default:
		return "Branch(invalid)"
	}
}

func (Branch[L, R]) variant() {}

// DropRight keeps the left side as an Optional.
func DropRight[L, R any](b Branch[L, R]) Optional[L] {
	if b.side == leftSide {
		return Some(b.left)
	}
	return None[L]()
}

// DropLeft keeps the right side as an Optional.
func DropLeft[L, R any](b Branch[L, R]) Optional[R] {
	if b.side == rightSide {
		return Some(b.right)
	}
	return None[R]()
}
