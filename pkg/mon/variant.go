package mon

// Kind is the discriminant of a result variant.
type Kind uint8

const (
	KindPresent Kind = iota + 1
	KindOptional
	KindBranch
)

func (k Kind) String() string {
	switch k {
	case KindPresent:
		return "present"
	case KindOptional:
		return "optional"
	case KindBranch:
		return "branch"
	default:
		return "unknown"
	}
}

// Variant is implemented by Present, Optional and Branch only.
type Variant interface {
	Kind() Kind
	// Populated reports whether the variant carries a value. A Present is
	// always populated, a Branch is populated when valid.
	Populated() bool
	variant()
}

// KindOf classifies v through its discriminant.
func KindOf(v any) (Kind, bool) {
	if mv, ok := v.(Variant); ok {
		return mv.Kind(), true
	}
	return 0, false
}

// IsVariant reports whether v is one of the three result variants.
func IsVariant(v any) bool {
	_, ok := KindOf(v)
	return ok
}
