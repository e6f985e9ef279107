package ast

// CloneContext remembers which nodes were already copied, so that a node
// reached twice is copied once and every reference to it is redirected to
// the same copy. A context may outlive a single DeepClone call to preserve
// sharing across several calls.
//
// A context only grows unless entries are removed with Remove.
type CloneContext struct {
	indices   map[Node]int
	originals []Node
	copies    []Node
}

// NewCloneContext returns an empty context, or one pre-seeded with the
// entries of parent when parent is not nil. The parent is not modified by
// later clones.
func NewCloneContext(parent *CloneContext) *CloneContext {
	ctx := &CloneContext{indices: make(map[Node]int)}
	if parent != nil {
		for k, v := range parent.indices {
			ctx.indices[k] = v
		}
		ctx.originals = append([]Node(nil), parent.originals...)
		ctx.copies = append([]Node(nil), parent.copies...)
	}
	return ctx
}

// Len returns the number of registered nodes.
func (ctx *CloneContext) Len() int {
	return len(ctx.originals)
}

// Lookup returns what original is mapped to.
func (ctx *CloneContext) Lookup(original Node) (Node, bool) {
	i, ok := ctx.indices[original]
	if !ok {
		return nil, false
	}
	return ctx.copies[i], true
}

func (ctx *CloneContext) add(original, cp Node) {
	ctx.indices[original] = len(ctx.originals)
	ctx.originals = append(ctx.originals, original)
	ctx.copies = append(ctx.copies, cp)
}

// Remove forgets original. The last entry takes over its slot.
func (ctx *CloneContext) Remove(original Node) bool {
	i, ok := ctx.indices[original]
	if !ok {
		return false
	}
	last := len(ctx.originals) - 1
	if i != last {
		ctx.originals[i] = ctx.originals[last]
		ctx.copies[i] = ctx.copies[last]
		ctx.indices[ctx.originals[i]] = i
	}
	ctx.originals[last] = nil
	ctx.copies[last] = nil
	ctx.originals = ctx.originals[:last]
	ctx.copies = ctx.copies[:last]
	delete(ctx.indices, original)
	plog.Tracef("removed %s from clone context, %d entries left", original.Kind(), last)
	return true
}

// DeepClone copies root and everything it owns. Nodes reachable more than
// once are copied once, so sharing inside the tree survives. References
// held in TypeInference slots, Parameter.DeclaringMethod and
// MethodDefinition.Declaration are redirected to the copy when the
// referenced node was copied too, and left alone otherwise.
//
// ctx may be nil for a one-off clone. Nodes already registered in ctx are
// not copied again; the registered value is used instead.
func DeepClone[T Node](root T, ctx *CloneContext) T {
	if isNil(root) {
		return root
	}
	if ctx == nil {
		ctx = NewCloneContext(nil)
	}
	c := &cloner{ctx: ctx}
	before := ctx.Len()
	cp := c.node(root).(T)
	c.fixup()
	plog.Debugf("cloned %s: %d new nodes, %d in context", root.Kind(), ctx.Len()-before, ctx.Len())
	return cp
}

// DeepCollect registers root and everything it owns in ctx, each mapped to
// itself. Later clones with ctx keep referring to these nodes instead of
// copying them.
func DeepCollect(root Node, ctx *CloneContext) {
	before := ctx.Len()
	for n := range DescendantsAndSelf(root) {
		if _, ok := n.(*Qualifier); ok {
			continue
		}
		if _, seen := ctx.indices[n]; !seen {
			ctx.add(n, n)
		}
	}
	plog.Debugf("collected %d nodes under %s", ctx.Len()-before, root.Kind())
}

type cloner struct {
	ctx        *CloneContext
	inferences []*TypeInference
	parameters []*Parameter
	methods    []*MethodDefinition
}

// shallow copies x, registers the copy and gives it its own tag map. The
// copy still points at x's children.
func shallow[T any, P interface {
	*T
	Node
}](c *cloner, x P) P {
	cp := P(new(T))
	*cp = *x
	c.ctx.add(x, cp)
	cp.meta().copyTags()
	return cp
}

func cloneAs[T Node](c *cloner, n T) T {
	if isNil(n) {
		return n
	}
	return c.node(n).(T)
}

func cloneSlice[T Node](c *cloner, nodes []T) []T {
	if nodes == nil {
		return nil
	}
	out := make([]T, len(nodes))
	for i, n := range nodes {
		out[i] = cloneAs(c, n)
	}
	return out
}

func (c *cloner) typeBase(t *TypeBase) {
	t.Attributes = cloneSlice(c, t.Attributes)
	t.Name = cloneAs(c, t.Name)
	t.Qualifiers.copyTags()
	c.inferences = append(c.inferences, &t.Inference)
}

func (c *cloner) genericBase(g *GenericBase) {
	c.typeBase(&g.TypeBase)
	g.Parameters = cloneSlice(c, g.Parameters)
	g.ParameterTypes = append([]ParameterKind(nil), g.ParameterTypes...)
}

func (c *cloner) variable(v *Variable) {
	v.Attributes = cloneSlice(c, v.Attributes)
	v.Qualifiers.copyTags()
	v.Type = cloneAs(c, v.Type)
	v.Name = cloneAs(c, v.Name)
	v.InitialValue = cloneAs(c, v.InitialValue)
	c.inferences = append(c.inferences, &v.Inference)
}

func (c *cloner) method(m *MethodDeclaration) {
	m.Attributes = cloneSlice(c, m.Attributes)
	m.ReturnType = cloneAs(c, m.ReturnType)
	m.Name = cloneAs(c, m.Name)
	m.Parameters = cloneSlice(c, m.Parameters)
	m.Qualifiers.copyTags()
	if m.ParameterConstraints != nil {
		constraints := make(map[string]func(Type) bool, len(m.ParameterConstraints))
		for k, v := range m.ParameterConstraints {
			constraints[k] = v
		}
		m.ParameterConstraints = constraints
	}
	c.inferences = append(c.inferences, &m.Inference)
}

func (c *cloner) expression(e *ExpressionBase) {
	c.inferences = append(c.inferences, &e.Inference)
}

func (c *cloner) statement(s *StatementBase) {
	s.Attributes = cloneSlice(c, s.Attributes)
}

func (c *cloner) node(n Node) Node {
	if cp, ok := c.ctx.Lookup(n); ok {
		return cp
	}
	switch x := n.(type) {
	case *Identifier:
		return shallow(c, x)
	case *Literal:
		return shallow(c, x)
	case *Qualifier:
		return shallow(c, x)
	case *AttributeDeclaration:
		cp := shallow(c, x)
		cp.Name = cloneAs(c, x.Name)
		cp.Parameters = cloneSlice(c, x.Parameters)
		return cp
	case *Shader:
		cp := shallow(c, x)
		cp.Declarations = cloneSlice(c, x.Declarations)
		return cp

	case *ScalarType:
		cp := shallow(c, x)
		c.typeBase(&cp.TypeBase)
		return cp
	case *VectorType:
		cp := shallow(c, x)
		c.genericBase(&cp.GenericBase)
		return cp
	case *MatrixType:
		cp := shallow(c, x)
		c.genericBase(&cp.GenericBase)
		return cp
	case *GenericType:
		cp := shallow(c, x)
		c.genericBase(&cp.GenericBase)
		return cp
	case *ArrayType:
		cp := shallow(c, x)
		c.typeBase(&cp.TypeBase)
		cp.ElementType = cloneAs(c, x.ElementType)
		cp.Dimensions = cloneSlice(c, x.Dimensions)
		return cp
	case *StructType:
		cp := shallow(c, x)
		c.typeBase(&cp.TypeBase)
		cp.Fields = cloneSlice(c, x.Fields)
		return cp
	case *ObjectType:
		cp := shallow(c, x)
		c.typeBase(&cp.TypeBase)
		cp.AlternativeNames = append([]string(nil), x.AlternativeNames...)
		return cp
	case *GenericParameterType:
		cp := shallow(c, x)
		c.typeBase(&cp.TypeBase)
		return cp
	case *TypeName:
		cp := shallow(c, x)
		c.typeBase(&cp.TypeBase)
		return cp

	case *Variable:
		cp := shallow(c, x)
		c.variable(cp)
		return cp
	case *Parameter:
		cp := shallow(c, x)
		c.variable(&cp.Variable)
		c.parameters = append(c.parameters, cp)
		return cp
	case *MethodDeclaration:
		cp := shallow(c, x)
		c.method(cp)
		return cp
	case *MethodDefinition:
		cp := shallow(c, x)
		c.method(&cp.MethodDeclaration)
		cp.Body = cloneAs(c, x.Body)
		c.methods = append(c.methods, cp)
		return cp

	case *LiteralExpression:
		cp := shallow(c, x)
		c.expression(&cp.ExpressionBase)
		cp.Literal = cloneAs(c, x.Literal)
		return cp
	case *VariableReferenceExpression:
		cp := shallow(c, x)
		c.expression(&cp.ExpressionBase)
		cp.Name = cloneAs(c, x.Name)
		return cp
	case *TypeReferenceExpression:
		cp := shallow(c, x)
		c.expression(&cp.ExpressionBase)
		cp.Type = cloneAs(c, x.Type)
		return cp
	case *MemberReferenceExpression:
		cp := shallow(c, x)
		c.expression(&cp.ExpressionBase)
		cp.Target = cloneAs(c, x.Target)
		cp.Member = cloneAs(c, x.Member)
		return cp
	case *IndexerExpression:
		cp := shallow(c, x)
		c.expression(&cp.ExpressionBase)
		cp.Target = cloneAs(c, x.Target)
		cp.Index = cloneAs(c, x.Index)
		return cp
	case *MethodInvocationExpression:
		cp := shallow(c, x)
		c.expression(&cp.ExpressionBase)
		cp.Target = cloneAs(c, x.Target)
		cp.Arguments = cloneSlice(c, x.Arguments)
		return cp
	case *BinaryExpression:
		cp := shallow(c, x)
		c.expression(&cp.ExpressionBase)
		cp.Left = cloneAs(c, x.Left)
		cp.Right = cloneAs(c, x.Right)
		return cp
	case *UnaryExpression:
		cp := shallow(c, x)
		c.expression(&cp.ExpressionBase)
		cp.Expression = cloneAs(c, x.Expression)
		return cp
	case *AssignmentExpression:
		cp := shallow(c, x)
		c.expression(&cp.ExpressionBase)
		cp.Target = cloneAs(c, x.Target)
		cp.Value = cloneAs(c, x.Value)
		return cp
	case *ConditionalExpression:
		cp := shallow(c, x)
		c.expression(&cp.ExpressionBase)
		cp.Condition = cloneAs(c, x.Condition)
		cp.Left = cloneAs(c, x.Left)
		cp.Right = cloneAs(c, x.Right)
		return cp
	case *ParenthesizedExpression:
		cp := shallow(c, x)
		c.expression(&cp.ExpressionBase)
		cp.Content = cloneAs(c, x.Content)
		return cp
	case *CastExpression:
		cp := shallow(c, x)
		c.expression(&cp.ExpressionBase)
		cp.Target = cloneAs(c, x.Target)
		cp.From = cloneAs(c, x.From)
		return cp
	case *ArrayInitializerExpression:
		cp := shallow(c, x)
		c.expression(&cp.ExpressionBase)
		cp.Items = cloneSlice(c, x.Items)
		return cp
	case *ExpressionList:
		cp := shallow(c, x)
		c.expression(&cp.ExpressionBase)
		cp.Expressions = cloneSlice(c, x.Expressions)
		return cp
	case *KeywordExpression:
		cp := shallow(c, x)
		c.expression(&cp.ExpressionBase)
		cp.Name = cloneAs(c, x.Name)
		return cp
	case *EmptyExpression:
		cp := shallow(c, x)
		c.expression(&cp.ExpressionBase)
		return cp

	case *StatementList:
		cp := shallow(c, x)
		c.statement(&cp.StatementBase)
		cp.Statements = cloneSlice(c, x.Statements)
		return cp
	case *BlockStatement:
		cp := shallow(c, x)
		c.statement(&cp.StatementBase)
		cp.Statements = cloneSlice(c, x.Statements)
		return cp
	case *DeclarationStatement:
		cp := shallow(c, x)
		c.statement(&cp.StatementBase)
		cp.Content = cloneAs(c, x.Content)
		return cp
	case *ExpressionStatement:
		cp := shallow(c, x)
		c.statement(&cp.StatementBase)
		cp.Expression = cloneAs(c, x.Expression)
		return cp
	case *ReturnStatement:
		cp := shallow(c, x)
		c.statement(&cp.StatementBase)
		cp.Value = cloneAs(c, x.Value)
		return cp
	case *IfStatement:
		cp := shallow(c, x)
		c.statement(&cp.StatementBase)
		cp.Condition = cloneAs(c, x.Condition)
		cp.Then = cloneAs(c, x.Then)
		cp.Else = cloneAs(c, x.Else)
		return cp
	case *ForStatement:
		cp := shallow(c, x)
		c.statement(&cp.StatementBase)
		cp.Start = cloneAs(c, x.Start)
		cp.Condition = cloneAs(c, x.Condition)
		cp.Next = cloneAs(c, x.Next)
		cp.Body = cloneAs(c, x.Body)
		return cp
	case *WhileStatement:
		cp := shallow(c, x)
		c.statement(&cp.StatementBase)
		cp.Condition = cloneAs(c, x.Condition)
		cp.Statement = cloneAs(c, x.Statement)
		return cp
	case *SwitchStatement:
		cp := shallow(c, x)
		c.statement(&cp.StatementBase)
		cp.Condition = cloneAs(c, x.Condition)
		cp.Groups = cloneSlice(c, x.Groups)
		return cp
	case *SwitchCaseGroup:
		cp := shallow(c, x)
		cp.Cases = cloneSlice(c, x.Cases)
		cp.Statements = cloneAs(c, x.Statements)
		return cp
	case *CaseStatement:
		cp := shallow(c, x)
		c.statement(&cp.StatementBase)
		cp.Case = cloneAs(c, x.Case)
		return cp
	case *EmptyStatement:
		cp := shallow(c, x)
		c.statement(&cp.StatementBase)
		return cp
	}
	plog.Debugf("not cloning node of unknown type %T, sharing it", n)
	c.ctx.add(n, n)
	return n
}

// fixup redirects the references collected during the copy.
func (c *cloner) fixup() {
	for _, ti := range c.inferences {
		ti.Declaration = remap(c.ctx, ti.Declaration)
		ti.TargetType = remap(c.ctx, ti.TargetType)
		ti.ExpectedType = remap(c.ctx, ti.ExpectedType)
	}
	for _, p := range c.parameters {
		p.DeclaringMethod = remap(c.ctx, p.DeclaringMethod)
	}
	for _, m := range c.methods {
		m.Declaration = remap(c.ctx, m.Declaration)
	}
}

func remap[T Node](ctx *CloneContext, n T) T {
	if isNil(n) {
		return n
	}
	if cp, ok := ctx.Lookup(n); ok {
		if t, ok := cp.(T); ok {
			return t
		}
	}
	return n
}
