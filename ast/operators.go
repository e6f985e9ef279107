package ast

import (
	"github.com/pontaoski/shaderast/errors"
	"github.com/ztrue/tracerr"
)

type BinaryOperator int

const (
	BinaryNone BinaryOperator = iota
	BinaryMultiply
	BinaryDivide
	BinaryModulo
	BinaryPlus
	BinaryMinus
	BinaryLeftShift
	BinaryRightShift
	BinaryLess
	BinaryGreater
	BinaryLessEqual
	BinaryGreaterEqual
	BinaryEqual
	BinaryNotEqual
	BinaryBitwiseAnd
	BinaryBitwiseXor
	BinaryBitwiseOr
	BinaryLogicalAnd
	BinaryLogicalOr
)

var binaryOperatorText = map[BinaryOperator]string{
	BinaryMultiply:     "*",
	BinaryDivide:       "/",
	BinaryModulo:       "%",
	BinaryPlus:         "+",
	BinaryMinus:        "-",
	BinaryLeftShift:    "<<",
	BinaryRightShift:   ">>",
	BinaryLess:         "<",
	BinaryGreater:      ">",
	BinaryLessEqual:    "<=",
	BinaryGreaterEqual: ">=",
	BinaryEqual:        "==",
	BinaryNotEqual:     "!=",
	BinaryBitwiseAnd:   "&",
	BinaryBitwiseXor:   "^",
	BinaryBitwiseOr:    "|",
	BinaryLogicalAnd:   "&&",
	BinaryLogicalOr:    "||",
}

func (o BinaryOperator) String() string {
	return binaryOperatorText[o]
}

// IsComparison reports whether the operator yields a bool per component.
func (o BinaryOperator) IsComparison() bool {
	return o >= BinaryLess && o <= BinaryNotEqual
}

func (o BinaryOperator) IsLogical() bool {
	return o == BinaryLogicalAnd || o == BinaryLogicalOr
}

func ParseBinaryOperator(text string) (BinaryOperator, error) {
	for op, s := range binaryOperatorText {
		if s == text {
			return op, nil
		}
	}
	return BinaryNone, tracerr.Wrap(errors.InvalidArgument{What: "binary operator", Text: text})
}

type UnaryOperator int

const (
	UnaryNone UnaryOperator = iota
	UnaryLogicalNot
	UnaryBitwiseNot
	UnaryMinus
	UnaryPlus
	UnaryPreIncrement
	UnaryPreDecrement
	UnaryPostIncrement
	UnaryPostDecrement
)

var unaryOperatorText = map[UnaryOperator]string{
	UnaryLogicalNot:    "!",
	UnaryBitwiseNot:    "~",
	UnaryMinus:         "-",
	UnaryPlus:          "+",
	UnaryPreIncrement:  "++",
	UnaryPreDecrement:  "--",
	UnaryPostIncrement: "++",
	UnaryPostDecrement: "--",
}

func (o UnaryOperator) String() string {
	return unaryOperatorText[o]
}

func (o UnaryOperator) IsPostfix() bool {
	return o == UnaryPostIncrement || o == UnaryPostDecrement
}

// ParseUnaryOperator parses a prefix operator, or a postfix one when postfix
// is set. Only ++ and -- exist in postfix form.
func ParseUnaryOperator(text string, postfix bool) (UnaryOperator, error) {
	switch {
	case postfix && text == "++":
		return UnaryPostIncrement, nil
	case postfix && text == "--":
		return UnaryPostDecrement, nil
	case postfix:
		return UnaryNone, tracerr.Wrap(errors.InvalidArgument{What: "postfix operator", Text: text})
	}
	for op, s := range unaryOperatorText {
		if s == text && !op.IsPostfix() {
			return op, nil
		}
	}
	return UnaryNone, tracerr.Wrap(errors.InvalidArgument{What: "unary operator", Text: text})
}

type AssignmentOperator int

const (
	AssignmentDefault AssignmentOperator = iota
	AssignmentAddition
	AssignmentSubtraction
	AssignmentMultiplication
	AssignmentDivision
	AssignmentModulo
	AssignmentBitwiseAnd
	AssignmentBitwiseOr
	AssignmentBitwiseXor
	AssignmentBitwiseShiftLeft
	AssignmentBitwiseShiftRight
)

var assignmentOperatorText = map[AssignmentOperator]string{
	AssignmentDefault:           "=",
	AssignmentAddition:          "+=",
	AssignmentSubtraction:       "-=",
	AssignmentMultiplication:    "*=",
	AssignmentDivision:          "/=",
	AssignmentModulo:            "%=",
	AssignmentBitwiseAnd:        "&=",
	AssignmentBitwiseOr:         "|=",
	AssignmentBitwiseXor:        "^=",
	AssignmentBitwiseShiftLeft:  "<<=",
	AssignmentBitwiseShiftRight: ">>=",
}

func (o AssignmentOperator) String() string {
	return assignmentOperatorText[o]
}

func ParseAssignmentOperator(text string) (AssignmentOperator, error) {
	for op, s := range assignmentOperatorText {
		if s == text {
			return op, nil
		}
	}
	return AssignmentDefault, tracerr.Wrap(errors.InvalidArgument{What: "assignment operator", Text: text})
}
