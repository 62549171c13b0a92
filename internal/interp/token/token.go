package token

type TokenType string

const (
	// Single character tokens
	TokenLParen   TokenType = "LPAREN"   // (
	TokenRParen   TokenType = "RPAREN"   // )
	TokenAssign   TokenType = "ASSIGN"   // =
	TokenPlus     TokenType = "PLUS"     // +
	TokenMinus    TokenType = "MINUS"    // -
	TokenAsterisk TokenType = "ASTERISK" // *
	TokenSlash    TokenType = "SLASH"    // /
	TokenPercent  TokenType = "PERCENT"  // %
	TokenBang     TokenType = "BANG"     // !
	TokenComma    TokenType = "COMMA"    // ,

	// Comparison operators
	TokenEq    TokenType = "EQ"     // ==
	TokenNotEq TokenType = "NOT_EQ" // !=
	TokenLt    TokenType = "LT"     // <
	TokenGt    TokenType = "GT"     // >
	TokenLe    TokenType = "LE"     // <=
	TokenGe    TokenType = "GE"     // >=

	// Keywords
	TokenConst TokenType = "CONST" // const
	TokenPrint TokenType = "PRINT" // Print built-in
	TokenAnd   TokenType = "AND"   // and
	TokenOr    TokenType = "OR"    // or
	TokenXor   TokenType = "XOR"   // xor
	TokenTrue  TokenType = "TRUE"  // true
	TokenFalse TokenType = "FALSE" // false

	// Literals & Identifiers
	TokenInt   TokenType = "INT"   // 43
	TokenIdent TokenType = "IDENT" // Identifier (e.g. variable name)

	// Special
	TokenEOL     TokenType = "EOL" // end of line
	TokenEOF     TokenType = "EOF"
	TokenIllegal TokenType = "ILLEGAL"
)

type Token struct {
	Type    TokenType
	Literal string
}

var keywords = map[string]TokenType{
	"const": TokenConst,
	"Print": TokenPrint,
	"and":   TokenAnd,
	"or":    TokenOr,
	"xor":   TokenXor,
	"true":  TokenTrue,
	"false": TokenFalse,
}

// LookupIdent maps reserved words to their keyword token type; everything
// else is an identifier.
func LookupIdent(ident string) TokenType {
	if tt, ok := keywords[ident]; ok {
		return tt
	}
	return TokenIdent
}
