package interp

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/arnavsurve/mica/internal/interp/ast"
	"github.com/arnavsurve/mica/internal/interp/evaluator"
	"github.com/arnavsurve/mica/internal/interp/lexer"
	"github.com/arnavsurve/mica/internal/interp/object"
	"github.com/arnavsurve/mica/internal/interp/parser"
)

// Parse lexes and parses a source buffer into a program.
func Parse(src string) (*ast.Program, error) {
	lex := lexer.NewLexer(src)
	p := parser.NewParser(lex)
	return p.ParseProgram()
}

// Interpret parses and evaluates a source buffer against a fresh
// environment, writing Print output to out. It returns the value of the
// last statement.
func Interpret(src string, out io.Writer) (object.Object, error) {
	prog, err := Parse(src)
	if err != nil {
		return nil, err
	}
	ev := evaluator.New(out)
	return ev.Eval(prog)
}

// RunFile interprets a .mica source file.
func RunFile(srcPath string, out io.Writer) (object.Object, error) {
	if err := validateExtension(srcPath); err != nil {
		return nil, err
	}

	content, err := readSource(srcPath)
	if err != nil {
		return nil, err
	}

	return Interpret(content, out)
}

func validateExtension(path string) error {
	if filepath.Ext(path) != ".mica" {
		return fmt.Errorf("source must have .mica extension")
	}
	return nil
}

func readSource(path string) (string, error) {
	b, err := os.ReadFile(path)
	return string(b), err
}
