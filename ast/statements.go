package ast

import (
	"strings"
)

// Statement is implemented by every statement node.
type Statement interface {
	Node
	stmtNode()
}

// StatementBase is embedded by every statement.
type StatementBase struct {
	Meta
	Attributes []*AttributeDeclaration
}

func (s *StatementBase) stmtNode() {}

func (s *StatementBase) childrens() []Node {
	var nodes []Node
	for _, a := range s.Attributes {
		nodes = appendNodes(nodes, a)
	}
	return nodes
}

func (s *StatementBase) attributesText() string {
	var sb strings.Builder
	for _, a := range s.Attributes {
		sb.WriteString(a.String())
		sb.WriteString(" ")
	}
	return sb.String()
}

// StatementList is a flat run of statements without braces.
type StatementList struct {
	StatementBase
	Statements []Statement
}

func (s *StatementList) Kind() NodeKind { return KindStatementList }
func (s *StatementList) Childrens() []Node {
	return appendStatements(s.childrens(), s.Statements)
}
func (s *StatementList) String() string { return statementsText(s.Statements) }

type BlockStatement struct {
	StatementBase
	Statements []Statement
}

func NewBlockStatement(statements ...Statement) *BlockStatement {
	return &BlockStatement{Statements: statements}
}

func (s *BlockStatement) Kind() NodeKind { return KindBlockStatement }
func (s *BlockStatement) Childrens() []Node {
	return appendStatements(s.childrens(), s.Statements)
}
func (s *BlockStatement) String() string {
	if len(s.Statements) == 0 {
		return s.attributesText() + "{}"
	}
	return s.attributesText() + "{ " + statementsText(s.Statements) + " }"
}

// DeclarationStatement wraps a local declaration, usually a Variable.
type DeclarationStatement struct {
	StatementBase
	Content Node
}

func (s *DeclarationStatement) Kind() NodeKind { return KindDeclarationStatement }
func (s *DeclarationStatement) Childrens() []Node {
	return appendNodes(s.childrens(), s.Content)
}
func (s *DeclarationStatement) String() string {
	return s.attributesText() + nodeText(s.Content) + ";"
}

type ExpressionStatement struct {
	StatementBase
	Expression Expression
}

func NewExpressionStatement(e Expression) *ExpressionStatement {
	return &ExpressionStatement{Expression: e}
}

func (s *ExpressionStatement) Kind() NodeKind { return KindExpressionStatement }
func (s *ExpressionStatement) Childrens() []Node {
	return appendNodes(s.childrens(), s.Expression)
}
func (s *ExpressionStatement) String() string {
	return s.attributesText() + nodeText(s.Expression) + ";"
}

type ReturnStatement struct {
	StatementBase
	Value Expression
}

func (s *ReturnStatement) Kind() NodeKind { return KindReturnStatement }
func (s *ReturnStatement) Childrens() []Node {
	return appendNodes(s.childrens(), s.Value)
}
func (s *ReturnStatement) String() string {
	if isNil(s.Value) {
		return s.attributesText() + "return;"
	}
	return s.attributesText() + "return " + s.Value.String() + ";"
}

type IfStatement struct {
	StatementBase
	Condition Expression
	Then      Statement
	Else      Statement
}

func (s *IfStatement) Kind() NodeKind { return KindIfStatement }
func (s *IfStatement) Childrens() []Node {
	return appendNodes(s.childrens(), s.Condition, s.Then, s.Else)
}
func (s *IfStatement) String() string {
	text := s.attributesText() + "if (" + nodeText(s.Condition) + ") " + nodeText(s.Then)
	if !isNil(s.Else) {
		text += " else " + s.Else.String()
	}
	return text
}

type ForStatement struct {
	StatementBase
	Start     Statement
	Condition Expression
	Next      Expression
	Body      Statement
}

func (s *ForStatement) Kind() NodeKind { return KindForStatement }
func (s *ForStatement) Childrens() []Node {
	return appendNodes(s.childrens(), s.Start, s.Condition, s.Next, s.Body)
}
func (s *ForStatement) String() string {
	start := nodeText(s.Start)
	if start == "" {
		start = ";"
	}
	return s.attributesText() + "for (" + start + " " + nodeText(s.Condition) + "; " + nodeText(s.Next) + ") " + nodeText(s.Body)
}

type WhileStatement struct {
	StatementBase
	Condition Expression
	Statement Statement
	IsDoWhile bool
}

func (s *WhileStatement) Kind() NodeKind { return KindWhileStatement }
func (s *WhileStatement) Childrens() []Node {
	return appendNodes(s.childrens(), s.Condition, s.Statement)
}
func (s *WhileStatement) String() string {
	if s.IsDoWhile {
		return s.attributesText() + "do " + nodeText(s.Statement) + " while (" + nodeText(s.Condition) + ");"
	}
	return s.attributesText() + "while (" + nodeText(s.Condition) + ") " + nodeText(s.Statement)
}

type SwitchStatement struct {
	StatementBase
	Condition Expression
	Groups    []*SwitchCaseGroup
}

func (s *SwitchStatement) Kind() NodeKind { return KindSwitchStatement }
func (s *SwitchStatement) Childrens() []Node {
	nodes := appendNodes(s.childrens(), s.Condition)
	for _, g := range s.Groups {
		nodes = appendNodes(nodes, g)
	}
	return nodes
}
func (s *SwitchStatement) String() string {
	parts := make([]string, 0, len(s.Groups))
	for _, g := range s.Groups {
		parts = append(parts, g.String())
	}
	return s.attributesText() + "switch (" + nodeText(s.Condition) + ") { " + strings.Join(parts, " ") + " }"
}

// SwitchCaseGroup is one or more case labels sharing a body.
type SwitchCaseGroup struct {
	Meta
	Cases      []*CaseStatement
	Statements *StatementList
}

func (g *SwitchCaseGroup) Kind() NodeKind { return KindSwitchCaseGroup }
func (g *SwitchCaseGroup) Childrens() []Node {
	var nodes []Node
	for _, c := range g.Cases {
		nodes = appendNodes(nodes, c)
	}
	return appendNodes(nodes, g.Statements)
}
func (g *SwitchCaseGroup) String() string {
	parts := make([]string, 0, len(g.Cases)+1)
	for _, c := range g.Cases {
		parts = append(parts, c.String())
	}
	if g.Statements != nil {
		parts = append(parts, g.Statements.String())
	}
	return strings.Join(parts, " ")
}

// CaseStatement is a case label; a nil Case is the default label.
type CaseStatement struct {
	StatementBase
	Case Expression
}

func (s *CaseStatement) Kind() NodeKind { return KindCaseStatement }
func (s *CaseStatement) Childrens() []Node {
	return appendNodes(s.childrens(), s.Case)
}
func (s *CaseStatement) IsDefault() bool { return isNil(s.Case) }
func (s *CaseStatement) String() string {
	if s.IsDefault() {
		return "default:"
	}
	return "case " + s.Case.String() + ":"
}

type EmptyStatement struct {
	StatementBase
}

func (s *EmptyStatement) Kind() NodeKind    { return KindEmptyStatement }
func (s *EmptyStatement) Childrens() []Node { return s.childrens() }
func (s *EmptyStatement) String() string    { return ";" }

func appendStatements(nodes []Node, statements []Statement) []Node {
	for _, st := range statements {
		nodes = appendNodes(nodes, st)
	}
	return nodes
}

func statementsText(statements []Statement) string {
	parts := make([]string, 0, len(statements))
	for _, st := range statements {
		if !isNil(st) {
			parts = append(parts, st.String())
		}
	}
	return strings.Join(parts, " ")
}
