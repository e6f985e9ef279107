package ast

import (
	"strings"

	"github.com/pontaoski/shaderast/errors"
	"github.com/ztrue/tracerr"
)

// Variable declares a name of some type: a local, a global, a struct field
// or, through Parameter, a method parameter.
//
// Type is owned, but several variables declared together (float a, b;) may
// share one type node.
type Variable struct {
	Meta
	Attributes   []*AttributeDeclaration
	Qualifiers   Qualifier
	Type         Type
	Name         *Identifier
	InitialValue Expression
	Inference    TypeInference
}

func NewVariable(t Type, name string) *Variable {
	return &Variable{Type: t, Name: NewIdentifier(name)}
}

func (v *Variable) Kind() NodeKind                 { return KindVariable }
func (v *Variable) TypeInference() *TypeInference { return &v.Inference }
func (v *Variable) DeclarationName() *Identifier  { return v.Name }

func (v *Variable) Childrens() []Node {
	return v.childrens()
}

func (v *Variable) childrens() []Node {
	var nodes []Node
	for _, a := range v.Attributes {
		nodes = appendNodes(nodes, a)
	}
	if !v.Qualifiers.IsNone() {
		nodes = append(nodes, &v.Qualifiers)
	}
	return appendNodes(nodes, v.Type, v.Name, v.InitialValue)
}

func (v *Variable) String() string {
	var parts []string
	for _, a := range v.Attributes {
		parts = append(parts, a.String())
	}
	if pre := v.Qualifiers.PreString(); pre != "" {
		parts = append(parts, pre)
	}
	parts = append(parts, typeText(v.Type), v.Name.String())
	if post := v.Qualifiers.PostString(); post != "" {
		parts = append(parts, post)
	}
	if !isNil(v.InitialValue) {
		parts = append(parts, "=", v.InitialValue.String())
	}
	return strings.Join(parts, " ")
}

// Method is implemented by MethodDeclaration and MethodDefinition.
type Method interface {
	Declaration
	Signature() *MethodDeclaration
}

// Parameter is a method parameter. DeclaringMethod points back at the method
// it belongs to; it is set by UpdateParameters and is not a child.
type Parameter struct {
	Variable
	DeclaringMethod Method
}

func NewParameter(t Type, name string) *Parameter {
	return &Parameter{Variable: Variable{Type: t, Name: NewIdentifier(name)}}
}

func (p *Parameter) Kind() NodeKind { return KindParameter }

// MethodDeclaration is a method signature. ParameterConstraints maps the
// name of a generic parameter type to the predicate a substitution for it
// must satisfy.
type MethodDeclaration struct {
	Meta
	Attributes           []*AttributeDeclaration
	Qualifiers           Qualifier
	ReturnType           Type
	Name                 *Identifier
	Parameters           []*Parameter
	ParameterConstraints map[string]func(Type) bool
	Inference            TypeInference
}

// NewMethodDeclaration builds a declaration and links its parameters back
// to it.
func NewMethodDeclaration(returnType Type, name string, parameters ...*Parameter) *MethodDeclaration {
	m := &MethodDeclaration{ReturnType: returnType, Name: NewIdentifier(name), Parameters: parameters}
	m.UpdateParameters()
	return m
}

func (m *MethodDeclaration) Kind() NodeKind                 { return KindMethodDeclaration }
func (m *MethodDeclaration) TypeInference() *TypeInference { return &m.Inference }
func (m *MethodDeclaration) DeclarationName() *Identifier  { return m.Name }
func (m *MethodDeclaration) Signature() *MethodDeclaration { return m }

func (m *MethodDeclaration) Childrens() []Node {
	return m.childrens()
}

func (m *MethodDeclaration) childrens() []Node {
	var nodes []Node
	for _, a := range m.Attributes {
		nodes = appendNodes(nodes, a)
	}
	nodes = appendNodes(nodes, m.ReturnType, m.Name)
	for _, p := range m.Parameters {
		nodes = appendNodes(nodes, p)
	}
	if !m.Qualifiers.IsNone() {
		nodes = append(nodes, &m.Qualifiers)
	}
	return nodes
}

// UpdateParameters points every parameter's DeclaringMethod at m. Call it
// after changing Parameters.
func (m *MethodDeclaration) UpdateParameters() {
	linkParameters(m.Parameters, m)
}

func linkParameters(parameters []*Parameter, owner Method) {
	for _, p := range parameters {
		if p != nil {
			p.DeclaringMethod = owner
		}
	}
}

// IsSameSignature reports whether other has the same name and the same
// resolved parameter types in the same order.
func (m *MethodDeclaration) IsSameSignature(other *MethodDeclaration) bool {
	if other == nil || !m.Name.Equals(other.Name) || len(m.Parameters) != len(other.Parameters) {
		return false
	}
	for i, p := range m.Parameters {
		if !TypesEqual(ResolveType(p.Type), ResolveType(other.Parameters[i].Type)) {
			return false
		}
	}
	return true
}

// IsSameSignatureAsInvocation reports whether call invokes m. Arguments
// must already carry a resolved target type; an unresolved argument is no
// match.
func (m *MethodDeclaration) IsSameSignatureAsInvocation(call *MethodInvocationExpression) bool {
	if call == nil {
		return false
	}
	name := call.MethodName()
	if name == nil || !m.Name.Equals(name) || len(m.Parameters) != len(call.Arguments) {
		return false
	}
	for i, arg := range call.Arguments {
		target := TargetTypeOf(arg)
		if target == nil {
			return false
		}
		if !TypesEqual(ResolveType(m.Parameters[i].Type), target) {
			return false
		}
	}
	return true
}

// CheckConstraint applies the constraint registered for parameter to
// candidate. A parameter without a constraint is never satisfied.
func (m *MethodDeclaration) CheckConstraint(parameter *GenericParameterType, candidate Type) bool {
	if parameter == nil || isNil(candidate) {
		return false
	}
	check, ok := m.ParameterConstraints[parameter.NameText()]
	if !ok || check == nil {
		return false
	}
	return check(candidate)
}

// ValidateSubstitution is CheckConstraint for callers that want an error
// to report.
func (m *MethodDeclaration) ValidateSubstitution(parameter *GenericParameterType, candidate Type) error {
	if m.CheckConstraint(parameter, candidate) {
		return nil
	}
	var name string
	if parameter != nil {
		name = parameter.NameText()
	}
	return tracerr.Wrap(errors.UnsatisfiedConstraint{Parameter: name, Candidate: typeText(candidate)})
}

// SetConstraint registers the predicate for a generic parameter name.
func (m *MethodDeclaration) SetConstraint(name string, check func(Type) bool) {
	if m.ParameterConstraints == nil {
		m.ParameterConstraints = make(map[string]func(Type) bool)
	}
	m.ParameterConstraints[name] = check
}

// Parameter finds a parameter by name.
func (m *MethodDeclaration) Parameter(name string) *Parameter {
	for _, p := range m.Parameters {
		if p.Name.String() == name {
			return p
		}
	}
	return nil
}

func (m *MethodDeclaration) String() string {
	return m.header() + ";"
}

func (m *MethodDeclaration) header() string {
	var sb strings.Builder
	for _, a := range m.Attributes {
		sb.WriteString(a.String())
		sb.WriteString(" ")
	}
	if pre := m.Qualifiers.PreString(); pre != "" {
		sb.WriteString(pre)
		sb.WriteString(" ")
	}
	sb.WriteString(typeText(m.ReturnType))
	sb.WriteString(" ")
	sb.WriteString(m.Name.String())
	sb.WriteString("(")
	params := make([]string, 0, len(m.Parameters))
	for _, p := range m.Parameters {
		params = append(params, p.String())
	}
	sb.WriteString(strings.Join(params, ", "))
	sb.WriteString(")")
	if post := m.Qualifiers.PostString(); post != "" {
		sb.WriteString(" ")
		sb.WriteString(post)
	}
	return sb.String()
}

// MethodDefinition is a method with a body. Declaration is the forward
// declaration it implements, if there is a separate one.
type MethodDefinition struct {
	MethodDeclaration
	Body        *StatementList
	Declaration Method
}

func NewMethodDefinition(returnType Type, name string, parameters ...*Parameter) *MethodDefinition {
	d := &MethodDefinition{Body: &StatementList{}}
	d.ReturnType = returnType
	d.Name = NewIdentifier(name)
	d.Parameters = parameters
	d.UpdateParameters()
	return d
}

func (d *MethodDefinition) Kind() NodeKind { return KindMethodDefinition }

func (d *MethodDefinition) Childrens() []Node {
	return appendNodes(d.childrens(), d.Body)
}

// UpdateParameters points every parameter's DeclaringMethod at d.
func (d *MethodDefinition) UpdateParameters() {
	linkParameters(d.Parameters, d)
}

// DeclarationOf returns the forward declaration d implements, or d itself.
func (d *MethodDefinition) DeclarationOf() Method {
	if !isNil(d.Declaration) {
		return d.Declaration
	}
	return d
}

func (d *MethodDefinition) String() string {
	if d.Body == nil || len(d.Body.Statements) == 0 {
		return d.header() + " {}"
	}
	return d.header() + " { " + d.Body.String() + " }"
}
