// Command kindgen generates the node kind enumeration of package ast.
//
//	kindgen <in.def> <out.go> <package>
//
// The input declares one or more enumerations:
//
//	enum NodeKind prefix Kind = Invalid | Identifier | Literal ;
//
// Each becomes an int type, a constant per case named prefix+case, and a
// String method. The first case is the fallback name for unknown values.
package main

import (
	"fmt"
	"io/ioutil"
	"os"
	"path/filepath"

	"github.com/alecthomas/participle"

	. "github.com/dave/jennifer/jen"
)

type EnumDecls struct {
	Enums []*Enum `@@*`
}

type Enum struct {
	Name   string   `"enum" @Ident`
	Prefix string   `( "prefix" @Ident )? "="`
	Cases  []string `@Ident ( "|" @Ident )* ";"`
}

func (e *Enum) namesVar() string {
	return string(e.Name[0]|0x20) + e.Name[1:] + "Names"
}

func GenerateEnums(source, pkgname string, t *EnumDecls) string {
	f := NewFile(pkgname)
	f.HeaderComment(fmt.Sprintf("Code generated by kindgen from %s. DO NOT EDIT.", source))

	for _, e := range t.Enums {
		f.Type().Id(e.Name).Int()

		f.Const().DefsFunc(func(g *Group) {
			for i, c := range e.Cases {
				if i == 0 {
					g.Id(e.Prefix + c).Id(e.Name).Op("=").Iota()
				} else {
					g.Id(e.Prefix + c)
				}
			}
		})

		f.Var().Id(e.namesVar()).Op("=").Map(Id(e.Name)).String().Values(DictFunc(func(d Dict) {
			for _, c := range e.Cases {
				d[Id(e.Prefix+c)] = Lit(c)
			}
		}))

		f.Func().Params(Id("k").Id(e.Name)).Id("String").Params().String().Block(
			If(List(Id("name"), Id("ok")).Op(":=").Id(e.namesVar()).Index(Id("k")), Id("ok")).Block(
				Return(Id("name")),
			),
			Return(Lit(e.Cases[0])),
		)
	}

	return fmt.Sprintf("%#v", f)
}

func main() {
	if len(os.Args) != 4 {
		fmt.Fprintln(os.Stderr, "usage: kindgen <in.def> <out.go> <package>")
		os.Exit(2)
	}
	parser := participle.MustBuild(&EnumDecls{})

	in := os.Args[1]
	out := os.Args[2]
	pkgname := os.Args[3]

	inData, err := ioutil.ReadFile(in)
	if err != nil {
		panic(err)
	}

	decls := EnumDecls{}
	err = parser.ParseBytes(inData, &decls)
	if err != nil {
		panic(err)
	}

	err = ioutil.WriteFile(out, []byte(GenerateEnums(filepath.Base(in), pkgname, &decls)), 0644)
	if err != nil {
		panic(err)
	}
}
