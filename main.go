package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/alecthomas/repr"
	"github.com/coreos/pkg/capnslog"
	"github.com/pontaoski/shaderast/ast"
	"github.com/pontaoski/shaderast/config"
	"github.com/pontaoski/shaderast/errors"
	"github.com/urfave/cli/v2"
	"github.com/ztrue/tracerr"
)

var plog = capnslog.NewPackageLogger("github.com/pontaoski/shaderast", "main")

func setup(c *cli.Context) error {
	conf, err := config.Load(c.String("config"))
	if err != nil {
		return err
	}
	level := conf.LogLevel
	if c.IsSet("log-level") {
		level = c.String("log-level")
	}
	if err := config.SetupLogging(level, c.Bool("debug")); err != nil {
		return err
	}
	return conf.Apply(ast.DefaultRegistry)
}

// parseSignature parses name(type, type, ...) into a declaration.
func parseSignature(r *ast.Registry, text string) (*ast.MethodDeclaration, error) {
	open := strings.Index(text, "(")
	if open <= 0 || !strings.HasSuffix(text, ")") {
		return nil, tracerr.Wrap(errors.InvalidArgument{What: "signature", Text: text})
	}
	name := strings.TrimSpace(text[:open])
	var params []*ast.Parameter
	if inner := strings.TrimSpace(text[open+1 : len(text)-1]); inner != "" {
		for i, field := range strings.Split(inner, ",") {
			typ, err := r.ParseType(strings.TrimSpace(field))
			if err != nil {
				return nil, err
			}
			params = append(params, ast.NewParameter(typ, fmt.Sprintf("p%d", i)))
		}
	}
	return ast.NewMethodDeclaration(ast.Void, name, params...), nil
}

// invocation builds a call of name whose arguments are already resolved to
// the given types.
func invocation(r *ast.Registry, name string, argTypes []string) (*ast.MethodInvocationExpression, error) {
	var args []ast.Expression
	for i, text := range argTypes {
		typ, err := r.ParseType(text)
		if err != nil {
			return nil, err
		}
		arg := ast.NewVariableReference(fmt.Sprintf("a%d", i))
		arg.Inference.TargetType = typ
		args = append(args, arg)
	}
	return ast.NewMethodInvocation(ast.NewVariableReference(name), args...), nil
}

func parseOperator(text string) (string, error) {
	if op, err := ast.ParseBinaryOperator(text); err == nil {
		return fmt.Sprintf("binary %s", op), nil
	}
	if op, err := ast.ParseAssignmentOperator(text); err == nil {
		return fmt.Sprintf("assignment %s", op), nil
	}
	if op, err := ast.ParseUnaryOperator(text, false); err == nil {
		return fmt.Sprintf("unary %s", op), nil
	}
	return "", tracerr.Wrap(errors.InvalidArgument{What: "operator", Text: text})
}

func main() {
	app := &cli.App{
		Name:  "shaderast",
		Usage: "inspect the shader type model",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "config",
				Value: config.DefaultPath,
			},
			&cli.StringFlag{
				Name:  "log-level",
				Value: "INFO",
			},
			&cli.BoolFlag{
				Name:  "debug",
				Value: false,
			},
		},
		Before: setup,
		ExitErrHandler: func(context *cli.Context, err error) {
			if code := report(err); code != 0 {
				os.Exit(code)
			}
		},
		Commands: []*cli.Command{
			{
				Name:  "builtins",
				Usage: "list the builtin types",
				Flags: []cli.Flag{
					&cli.BoolFlag{
						Name:  "dump",
						Value: false,
					},
				},
				Action: func(c *cli.Context) error {
					var types []ast.Type
					for _, s := range ast.Scalars {
						types = append(types, s)
					}
					types = append(types, ast.NewVectorType(ast.Float, 4), ast.NewMatrixType(ast.Float, 4, 4))
					for _, o := range ast.DefaultRegistry.ObjectTypes() {
						types = append(types, o)
					}

					for _, t := range types {
						if c.Bool("dump") {
							repr.Println(ast.Outline(t))
							continue
						}
						switch x := t.(type) {
						case *ast.VectorType:
							fmt.Printf("%s\t%s\n", x, x.ToNonGenericType())
						case *ast.MatrixType:
							fmt.Printf("%s\t%s\n", x, x.ToNonGenericType())
						case *ast.ObjectType:
							fmt.Printf("%s\t%s\n", x, strings.Join(x.AlternativeNames, " "))
						default:
							fmt.Println(x)
						}
					}
					plog.Infof("%d builtin types", len(types))
					return nil
				},
			},
			{
				Name:      "qualifiers",
				Usage:     "compose qualifier keywords",
				ArgsUsage: "<keyword>...",
				Action: func(c *cli.Context) error {
					q, err := ast.DefaultRegistry.ParseQualifiers(c.Args().Slice()...)
					if err != nil {
						return err
					}
					fmt.Printf("pre:  %s\npost: %s\n", q.PreString(), q.PostString())
					return nil
				},
			},
			{
				Name:      "operator",
				Usage:     "parse an operator",
				ArgsUsage: "<text>",
				Action: func(c *cli.Context) error {
					desc, err := parseOperator(c.Args().First())
					if err != nil {
						return err
					}
					fmt.Println(desc)
					return nil
				},
			},
			{
				Name:      "signature",
				Usage:     "match a declaration against a call with resolved arguments",
				ArgsUsage: "<name(type, ...)> <argument type>...",
				Action: func(c *cli.Context) error {
					decl, err := parseSignature(ast.DefaultRegistry, c.Args().First())
					if err != nil {
						return err
					}
					call, err := invocation(ast.DefaultRegistry, decl.Name.String(), c.Args().Tail())
					if err != nil {
						return err
					}
					if decl.IsSameSignatureAsInvocation(call) {
						fmt.Printf("%s matches %s\n", decl, call)
					} else {
						fmt.Printf("%s does not match %s\n", decl, call)
					}
					return nil
				},
			},
		},
	}

	os.Exit(report(app.Run(os.Args)))
}

// report prints err with its stack trace and returns the exit code.
func report(err error) int {
	if err == nil {
		return 0
	}
	tracerr.PrintSourceColor(err)
	return 1
}
