package parser

import (
	"fmt"
	"strconv"

	"github.com/arnavsurve/mica/internal/interp/ast"
	"github.com/arnavsurve/mica/internal/interp/lexer"
	"github.com/arnavsurve/mica/internal/interp/token"
)

// Error is a syntax error carrying the offending token. Parsing halts at
// the first error; no partial program is returned.
type Error struct {
	Tok token.Token
	Msg string
}

func (e *Error) Error() string {
	if e.Tok.Type == token.TokenEOF {
		return fmt.Sprintf("syntax error: %s, got end of input", e.Msg)
	}
	return fmt.Sprintf("syntax error: %s, got %s %q", e.Msg, e.Tok.Type, e.Tok.Literal)
}

// Tokens that may continue an expression as a binary operator. The grammar
// is precedence-flat: the right operand is always a full expression, so
// chains associate to the right.
var binaryOperators = map[token.TokenType]bool{
	token.TokenPlus:     true,
	token.TokenMinus:    true,
	token.TokenAsterisk: true,
	token.TokenSlash:    true,
	token.TokenPercent:  true,
	token.TokenEq:       true,
	token.TokenNotEq:    true,
	token.TokenLt:       true,
	token.TokenGt:       true,
	token.TokenLe:       true,
	token.TokenGe:       true,
	token.TokenAnd:      true,
	token.TokenOr:       true,
	token.TokenXor:      true,
}

type Parser struct {
	l       *lexer.Lexer
	curTok  token.Token
	peekTok token.Token
}

func NewParser(l *lexer.Lexer) *Parser {
	p := &Parser{l: l}
	// Prime curTok and peekTok.
	p.nextToken()
	p.nextToken()
	return p
}

// --- Token Handling ---
func (p *Parser) nextToken() {
	p.curTok = p.peekTok
	p.peekTok = p.l.NextToken()
}

func (p *Parser) expectPeek(tt token.TokenType) bool {
	if p.peekTok.Type == tt {
		p.nextToken()
		return true
	}
	return false
}

func (p *Parser) errorf(tok token.Token, format string, args ...any) *Error {
	return &Error{Tok: tok, Msg: fmt.Sprintf(format, args...)}
}

// --- Program Parsing ---

// ParseProgram parses one statement per line until end of input. Every
// statement must terminate at an end-of-line or end-of-input token.
func (p *Parser) ParseProgram() (*ast.Program, error) {
	program := &ast.Program{Statements: []ast.Statement{}}

	for p.curTok.Type != token.TokenEOF {
		stmt, err := p.parseStatement()
		if err != nil {
			return nil, err
		}
		program.Statements = append(program.Statements, stmt)

		if p.curTok.Type != token.TokenEOL && p.curTok.Type != token.TokenEOF {
			return nil, p.errorf(p.curTok, "unexpected token after statement")
		}
		p.nextToken()
	}

	return program, nil
}

func (p *Parser) parseStatement() (ast.Statement, error) {
	switch p.curTok.Type {
	case token.TokenConst:
		return p.parseConstStatement()
	case token.TokenPrint:
		return p.parseCallStatement()
	default:
		// Blank or comment-only line. The caller's loop verifies the
		// line terminator and advances.
		return &ast.EmptyStatement{}, nil
	}
}

// parseConstStatement -> const <ident> = <expression>
func (p *Parser) parseConstStatement() (ast.Statement, error) {
	stmt := &ast.ConstStatement{Token: p.curTok}

	p.nextToken()
	if p.curTok.Type != token.TokenIdent {
		return nil, p.errorf(p.curTok, "expected identifier after %q", stmt.Token.Literal)
	}
	stmt.Name = &ast.Identifier{Token: p.curTok, Value: p.curTok.Literal}

	if !p.expectPeek(token.TokenAssign) {
		return nil, p.errorf(p.peekTok, "expected %q after binding name", "=")
	}

	p.nextToken()
	value, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	stmt.Value = value

	return stmt, nil
}

// parseCallStatement -> Print <expression> (, <expression>)*
// The argument list is never empty; arguments stop at the first token
// after an expression that is not a comma.
func (p *Parser) parseCallStatement() (ast.Statement, error) {
	stmt := &ast.CallStatement{Token: p.curTok, Name: p.curTok.Literal}

	p.nextToken()
	for {
		arg, err := p.parseExpression()
		if err != nil {
			return nil, err
		}
		stmt.Arguments = append(stmt.Arguments, arg)

		if p.curTok.Type != token.TokenComma {
			break
		}
		p.nextToken()
	}

	return stmt, nil
}

// parseExpression parses a full expression. On return curTok is the first
// token after the expression.
func (p *Parser) parseExpression() (ast.Expression, error) {
	switch p.curTok.Type {
	case token.TokenMinus, token.TokenPlus, token.TokenBang:
		// Prefix operator; the operand is a full expression.
		tok := p.curTok
		p.nextToken()
		operand, err := p.parseExpression()
		if err != nil {
			return nil, err
		}
		return &ast.UnaryExpression{Token: tok, Operator: tok.Literal, Operand: operand}, nil
	}

	left, err := p.parsePrimary()
	if err != nil {
		return nil, err
	}
	p.nextToken()

	if binaryOperators[p.curTok.Type] {
		return p.parseBinaryExpression(left)
	}
	return left, nil
}

func (p *Parser) parsePrimary() (ast.Expression, error) {
	switch p.curTok.Type {
	case token.TokenIdent:
		return &ast.Identifier{Token: p.curTok, Value: p.curTok.Literal}, nil
	case token.TokenInt:
		return p.parseIntegerLiteral()
	case token.TokenTrue, token.TokenFalse:
		return &ast.BooleanLiteral{Token: p.curTok, Value: p.curTok.Type == token.TokenTrue}, nil
	case token.TokenLParen:
		return p.parseGroupedExpression()
	default:
		return nil, p.errorf(p.curTok, "unexpected token at start of expression")
	}
}

func (p *Parser) parseIntegerLiteral() (ast.Expression, error) {
	val, err := strconv.ParseInt(p.curTok.Literal, 10, 32)
	if err != nil {
		return nil, p.errorf(p.curTok, "integer literal out of range")
	}
	return &ast.IntegerLiteral{Token: p.curTok, Value: int32(val)}, nil
}

// parseGroupedExpression -> ( <expression> )
// On return curTok is the closing parenthesis; the caller advances past it.
func (p *Parser) parseGroupedExpression() (ast.Expression, error) {
	p.nextToken()
	expr, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	if p.curTok.Type != token.TokenRParen {
		return nil, p.errorf(p.curTok, "expected %q to close grouped expression", ")")
	}
	return expr, nil
}

func (p *Parser) parseBinaryExpression(left ast.Expression) (ast.Expression, error) {
	tok := p.curTok
	p.nextToken()
	right, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	return &ast.BinaryExpression{Token: tok, Left: left, Operator: tok.Literal, Right: right}, nil
}
