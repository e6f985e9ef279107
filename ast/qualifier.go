package ast

import (
	"strings"
)

type flag struct {
	Key     string
	Display string
	Post    bool
}

// Qualifier is a composite enum: an ordered set of atomic flags such as
// const, uniform or in. An atomic qualifier has a Key and a set holding just
// itself; compositions built with And, Or and Xor have no Key.
//
// Qualifiers are values. The flag set is never modified after construction,
// so copies can share it.
type Qualifier struct {
	Meta
	Key       string
	exclusive bool
	values    *orderedSet[flag]
}

// QualifierNone is the empty composition.
var QualifierNone = Qualifier{}

var (
	QualifierConst         = newQualifier("const", false)
	QualifierUniform       = newQualifier("uniform", false)
	QualifierStatic        = newQualifier("static", false)
	QualifierExtern        = newQualifier("extern", false)
	QualifierShared        = newQualifier("shared", false)
	QualifierGroupShared   = newQualifier("groupshared", false)
	QualifierVolatile      = newQualifier("volatile", false)
	QualifierPrecise       = newQualifier("precise", false)
	QualifierInline        = newQualifier("inline", false)
	QualifierRowMajor      = newQualifier("row_major", false)
	QualifierColumnMajor   = newQualifier("column_major", false)
	QualifierLinear        = newQualifier("linear", false)
	QualifierCentroid      = newQualifier("centroid", false)
	QualifierNoInterp      = newQualifier("nointerpolation", false)
	QualifierNoPerspective = newQualifier("noperspective", false)
	QualifierSample        = newQualifier("sample", false)

	QualifierIn    = newQualifier("in", false)
	QualifierOut   = newQualifier("out", false)
	QualifierInOut = newQualifier("inout", false)
)

func newQualifier(key string, post bool) Qualifier {
	return NewCompositeEnum(key, key, true, post)
}

// NewCompositeEnum builds an atomic value. Non-flag enums (isFlag false) only
// compare equal to other non-flag values.
func NewCompositeEnum(key, display string, isFlag, post bool) Qualifier {
	return Qualifier{
		Key:       key,
		exclusive: !isFlag,
		values:    newOrderedSet(flag{Key: key, Display: display, Post: post}),
	}
}

// Semantic is a post qualifier such as ": SV_Position".
func Semantic(name string) Qualifier {
	return NewCompositeEnum("semantic:"+name, ": "+name, true, true)
}

// RegisterLocation is a post qualifier such as ": register(t0)".
func RegisterLocation(register string) Qualifier {
	return NewCompositeEnum("register:"+register, ": register("+register+")", true, true)
}

// PackOffset is a post qualifier such as ": packoffset(c0)".
func PackOffset(offset string) Qualifier {
	return NewCompositeEnum("packoffset:"+offset, ": packoffset("+offset+")", true, true)
}

func (q *Qualifier) Kind() NodeKind    { return KindQualifier }
func (q *Qualifier) Childrens() []Node { return nil }

func (q Qualifier) IsFlag() bool { return !q.exclusive }
func (q Qualifier) IsNone() bool { return q.values.len() == 0 }

// IsPost reports whether every flag renders after the declared name.
func (q Qualifier) IsPost() bool {
	if q.IsNone() {
		return false
	}
	for _, f := range q.values.values() {
		if !f.Post {
			return false
		}
	}
	return true
}

func (q Qualifier) compose(values *orderedSet[flag]) Qualifier {
	return Qualifier{exclusive: q.exclusive, values: values}
}

func (q Qualifier) And(other Qualifier) Qualifier {
	return q.compose(q.values.intersect(other.values))
}

func (q Qualifier) Or(other Qualifier) Qualifier {
	return q.compose(q.values.union(other.values))
}

func (q Qualifier) Xor(other Qualifier) Qualifier {
	return q.compose(q.values.symmetricDifference(other.values))
}

// Contains reports whether every flag of other is set in q.
func (q Qualifier) Contains(other Qualifier) bool {
	return other.values.isSubsetOf(q.values)
}

func (q Qualifier) Equals(other Qualifier) bool {
	if q.Key != "" && q.Key == other.Key {
		return true
	}
	if q.exclusive != other.exclusive {
		return false
	}
	return q.values.setEquals(other.values)
}

// Flags returns the atomic qualifiers in insertion order.
func (q Qualifier) Flags() []Qualifier {
	flags := make([]Qualifier, 0, q.values.len())
	for _, f := range q.values.values() {
		flags = append(flags, NewCompositeEnum(f.Key, f.Display, !q.exclusive, f.Post))
	}
	return flags
}

func (q Qualifier) render(post bool) string {
	var parts []string
	for _, f := range q.values.values() {
		if f.Post == post {
			parts = append(parts, f.Display)
		}
	}
	return strings.Join(parts, " ")
}

// PreString renders the flags written before the type.
func (q Qualifier) PreString() string { return q.render(false) }

// PostString renders the flags written after the name.
func (q Qualifier) PostString() string { return q.render(true) }

func (q Qualifier) String() string {
	parts := make([]string, 0, q.values.len())
	for _, f := range q.values.values() {
		parts = append(parts, f.Display)
	}
	return strings.Join(parts, " ")
}
