package ast

import (
	"strings"

	"github.com/pontaoski/shaderast/errors"
	"github.com/ztrue/tracerr"
)

// Registry knows the builtin names a front end resolves without a
// declaration: scalar, vector, matrix and object types, and qualifier
// keywords. The zero value is not usable; use NewRegistry.
type Registry struct {
	objects    []*ObjectType
	qualifiers map[string]Qualifier
	order      []string
}

// NewRegistry returns a registry holding the builtin types and qualifiers.
func NewRegistry() *Registry {
	r := &Registry{qualifiers: make(map[string]Qualifier)}
	for _, o := range ObjectTypes {
		r.RegisterObjectType(o)
	}
	for _, q := range []Qualifier{
		QualifierConst, QualifierUniform, QualifierStatic, QualifierExtern,
		QualifierShared, QualifierGroupShared, QualifierVolatile, QualifierPrecise,
		QualifierInline, QualifierRowMajor, QualifierColumnMajor,
		QualifierLinear, QualifierCentroid, QualifierNoInterp,
		QualifierNoPerspective, QualifierSample,
		QualifierIn, QualifierOut, QualifierInOut,
	} {
		r.addQualifier(q.Key, q)
	}
	return r
}

// DefaultRegistry holds the builtins and whatever the configuration added.
var DefaultRegistry = NewRegistry()

// RegisterObjectType adds or replaces an object type. A type already known
// under the same primary name is replaced.
func (r *Registry) RegisterObjectType(o *ObjectType) {
	for i, existing := range r.objects {
		if existing.NameText() == o.NameText() {
			r.objects[i] = o
			plog.Debugf("replaced object type %s", o.NameText())
			return
		}
	}
	r.objects = append(r.objects, o)
	plog.Tracef("registered object type %s %v", o.NameText(), o.AlternativeNames)
}

// RegisterQualifier adds an atomic qualifier keyword. Post qualifiers are
// rendered after the declared name.
func (r *Registry) RegisterQualifier(key string, post bool) (Qualifier, error) {
	if key == "" || strings.ContainsAny(key, " \t\n") {
		return QualifierNone, tracerr.Wrap(errors.InvalidArgument{What: "qualifier key", Text: key})
	}
	q := newQualifier(key, post)
	r.addQualifier(key, q)
	plog.Tracef("registered qualifier %s (post %v)", key, post)
	return q, nil
}

func (r *Registry) addQualifier(key string, q Qualifier) {
	if _, ok := r.qualifiers[key]; !ok {
		r.order = append(r.order, key)
	}
	r.qualifiers[key] = q
}

// ObjectTypes returns the registered object types in registration order.
func (r *Registry) ObjectTypes() []*ObjectType {
	return append([]*ObjectType(nil), r.objects...)
}

// QualifierKeys returns the registered qualifier keywords in registration
// order.
func (r *Registry) QualifierKeys() []string {
	return append([]string(nil), r.order...)
}

// ParseQualifier maps a single keyword to its qualifier.
func (r *Registry) ParseQualifier(text string) (Qualifier, error) {
	if q, ok := r.qualifiers[text]; ok {
		return q, nil
	}
	return QualifierNone, tracerr.Wrap(errors.InvalidArgument{What: "qualifier", Text: text})
}

// ParseQualifiers parses each keyword and composes them in order.
func (r *Registry) ParseQualifiers(tokens ...string) (Qualifier, error) {
	result := QualifierNone
	for _, tok := range tokens {
		q, err := r.ParseQualifier(tok)
		if err != nil {
			return QualifierNone, err
		}
		result = result.Or(q)
	}
	return result, nil
}

// LookupType finds a builtin type by name: a scalar, a flat vector or matrix
// spelling such as float3 or float4x4, or an object type or one of its
// aliases. The returned node is always fresh, so the caller may attach it to
// a tree and fill in its inference slot.
func (r *Registry) LookupType(name string) (Type, bool) {
	for _, s := range Scalars {
		if s.NameText() == name {
			return s.clone(), true
		}
	}
	if t, ok := flatTypeName(name); ok {
		return t, true
	}
	for _, o := range r.objects {
		if o.IsNamed(name) {
			return o.clone(), true
		}
	}
	return nil, false
}

// ParseType is LookupType reporting an unknown name as an error.
func (r *Registry) ParseType(name string) (Type, error) {
	if t, ok := r.LookupType(name); ok {
		return t, nil
	}
	return nil, tracerr.Wrap(errors.InvalidArgument{What: "type name", Text: name})
}

// ParseQualifier parses a keyword with DefaultRegistry.
func ParseQualifier(text string) (Qualifier, error) {
	return DefaultRegistry.ParseQualifier(text)
}
