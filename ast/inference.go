package ast

// TypeInference is the slot a resolver pass fills in on every typed node.
// It is embedded by value, so it is always present even before resolution.
//
// All three fields are references: they are never traversed as children and
// a clone only redirects them when the referenced node was cloned too.
type TypeInference struct {
	// Declaration is where the node's name was declared.
	Declaration Declaration
	// TargetType is the resolved type.
	TargetType Type
	// ExpectedType is the type the surrounding context asks for.
	ExpectedType Type
}

func (ti *TypeInference) IsResolved() bool {
	return !isNil(ti.TargetType)
}

// Reset clears the slot so a resolver can run again.
func (ti *TypeInference) Reset() {
	*ti = TypeInference{}
}

// ResolveType returns the resolved type of t, or t itself when nothing has
// been resolved yet.
func ResolveType(t Type) Type {
	if isNil(t) {
		return t
	}
	if target := t.TypeInference().TargetType; !isNil(target) {
		return target
	}
	return t
}

// TargetTypeOf returns the resolved type of a typed node, or nil.
func TargetTypeOf(n Typed) Type {
	if isNil(n) {
		return nil
	}
	target := n.TypeInference().TargetType
	if isNil(target) {
		return nil
	}
	return target
}
