package lexer

import (
	"testing"

	"github.com/arnavsurve/mica/internal/interp/token"
)

func TestNextToken(t *testing.T) {
	input := "# bindings\n" +
		"const x = 10 - 3\n" +
		"Print x, (1 + 2), true\n" +
		"const ok = 1 <= 2 and false\n" +
		"const y = -4 % 3 != 5 * 2 / 1\n" +
		"const z = x >= y or x == y xor !ok\n"

	tests := []struct {
		expectedType    token.TokenType
		expectedLiteral string
	}{
		{token.TokenEOL, "\n"}, // comment-only line still yields its EOL

		{token.TokenConst, "const"},
		{token.TokenIdent, "x"},
		{token.TokenAssign, "="},
		{token.TokenInt, "10"},
		{token.TokenMinus, "-"},
		{token.TokenInt, "3"},
		{token.TokenEOL, "\n"},

		{token.TokenPrint, "Print"},
		{token.TokenIdent, "x"},
		{token.TokenComma, ","},
		{token.TokenLParen, "("},
		{token.TokenInt, "1"},
		{token.TokenPlus, "+"},
		{token.TokenInt, "2"},
		{token.TokenRParen, ")"},
		{token.TokenComma, ","},
		{token.TokenTrue, "true"},
		{token.TokenEOL, "\n"},

		{token.TokenConst, "const"},
		{token.TokenIdent, "ok"},
		{token.TokenAssign, "="},
		{token.TokenInt, "1"},
		{token.TokenLe, "<="},
		{token.TokenInt, "2"},
		{token.TokenAnd, "and"},
		{token.TokenFalse, "false"},
		{token.TokenEOL, "\n"},

		{token.TokenConst, "const"},
		{token.TokenIdent, "y"},
		{token.TokenAssign, "="},
		{token.TokenMinus, "-"},
		{token.TokenInt, "4"},
		{token.TokenPercent, "%"},
		{token.TokenInt, "3"},
		{token.TokenNotEq, "!="},
		{token.TokenInt, "5"},
		{token.TokenAsterisk, "*"},
		{token.TokenInt, "2"},
		{token.TokenSlash, "/"},
		{token.TokenInt, "1"},
		{token.TokenEOL, "\n"},

		{token.TokenConst, "const"},
		{token.TokenIdent, "z"},
		{token.TokenAssign, "="},
		{token.TokenIdent, "x"},
		{token.TokenGe, ">="},
		{token.TokenIdent, "y"},
		{token.TokenOr, "or"},
		{token.TokenIdent, "x"},
		{token.TokenEq, "=="},
		{token.TokenIdent, "y"},
		{token.TokenXor, "xor"},
		{token.TokenBang, "!"},
		{token.TokenIdent, "ok"},
		{token.TokenEOL, "\n"},

		{token.TokenEOF, ""},
	}

	l := NewLexer(input)
	for i, tt := range tests {
		tok := l.NextToken()
		if tok.Type != tt.expectedType {
			t.Fatalf("tests[%d] wrong token type. expected=%q, got=%q (literal %q)",
				i, tt.expectedType, tok.Type, tok.Literal)
		}
		if tok.Literal != tt.expectedLiteral {
			t.Fatalf("tests[%d] wrong literal. expected=%q, got=%q",
				i, tt.expectedLiteral, tok.Literal)
		}
	}
}

func TestTrailingCommentWithoutNewline(t *testing.T) {
	l := NewLexer("const x = 1 # one")

	want := []token.TokenType{
		token.TokenConst, token.TokenIdent, token.TokenAssign, token.TokenInt,
		token.TokenEOF,
	}
	for i, wt := range want {
		tok := l.NextToken()
		if tok.Type != wt {
			t.Fatalf("token[%d] expected=%q, got=%q", i, wt, tok.Type)
		}
	}
}

func TestEOFIsSticky(t *testing.T) {
	l := NewLexer("")
	for i := 0; i < 3; i++ {
		if tok := l.NextToken(); tok.Type != token.TokenEOF {
			t.Fatalf("call %d expected EOF, got=%q", i, tok.Type)
		}
	}
}

func TestIllegalCharacter(t *testing.T) {
	l := NewLexer("const x = 1 @ 2")
	var got []token.TokenType
	for {
		tok := l.NextToken()
		got = append(got, tok.Type)
		if tok.Type == token.TokenEOF {
			break
		}
	}

	found := false
	for _, tt := range got {
		if tt == token.TokenIllegal {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected an ILLEGAL token in %v", got)
	}
}
