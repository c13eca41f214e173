package lexer

import (
	"fmt"
	"github.com/mjkoch/sprig/token"
	"testing"
)

func TestNextToken(t *testing.T) {
	t.Run("Basic Test", func(t *testing.T) {
		input := `=+(){},;`

		tests := []struct {
			expectedType    token.TokenType
			expectedLiteral string
		}{
			{token.ASSIGN, "="},
			{token.PLUS, "+"},
			{token.LPAREN, "("},
			{token.RPAREN, ")"},
			{token.LBRACE, "{"},
			{token.RBRACE, "}"},
			{token.COMMA, ","},
			{token.SEMICOLON, ";"},
			{token.EOF, ""},
		}

		l := New(input)

		for i, tt := range tests {
			tok := l.NextToken()
			fmt.Printf("%#v\n", tok)

			if tok.Type != tt.expectedType {
				t.Fatalf("test[%d] - token type wrong. got %q wanted %q", i, tok.Type, tt.expectedType)
			}

			if tok.Literal != tt.expectedLiteral {
				t.Fatalf("test[%d] - literal wrong. got %q wanted %q", i, tok.Literal, tt.expectedLiteral)
			}
		}
	})

	t.Run("Syntax Test", func(t *testing.T) {
		input := `let five = 5;
let ten = 10;
   let add = fn(x, y) {
     x + y;
};
   let result = add(five, ten);
   `
		tests := []struct {
			expectedType    token.TokenType
			expectedLiteral string
		}{
			{token.LET, "let"},
			{token.IDENT, "five"},
			{token.ASSIGN, "="},
			{token.INT, "5"},
			{token.SEMICOLON, ";"},
			{token.LET, "let"},
			{token.IDENT, "ten"},
			{token.ASSIGN, "="},
			{token.INT, "10"},
			{token.SEMICOLON, ";"},
			{token.LET, "let"},
			{token.IDENT, "add"},
			{token.ASSIGN, "="},
			{token.FUNCTION, "fn"},
			{token.LPAREN, "("},
			{token.IDENT, "x"},
			{token.COMMA, ","},
			{token.IDENT, "y"},
			{token.RPAREN, ")"},
			{token.LBRACE, "{"},
			{token.IDENT, "x"},
			{token.PLUS, "+"},
			{token.IDENT, "y"},
			{token.SEMICOLON, ";"},
			{token.RBRACE, "}"},
			{token.SEMICOLON, ";"},
			{token.LET, "let"},
			{token.IDENT, "result"},
			{token.ASSIGN, "="},
			{token.IDENT, "add"},
			{token.LPAREN, "("},
			{token.IDENT, "five"},
			{token.COMMA, ","},
			{token.IDENT, "ten"},
			{token.RPAREN, ")"},
			{token.SEMICOLON, ";"},
			{token.EOF, ""},
		}

		l := New(input)

		for i, tt := range tests {
			tok := l.NextToken()
			fmt.Printf("%#v\n", tok)

			if tok.Type != tt.expectedType {
				t.Fatalf("test[%d] - token type wrong. got %q wanted %q", i, tok.Type, tt.expectedType)
			}

			if tok.Literal != tt.expectedLiteral {
				t.Fatalf("test[%d] - literal wrong. got %q wanted %q", i, tok.Literal, tt.expectedLiteral)
			}
		}

	})

	t.Run("Extended Operators And Keywords", func(t *testing.T) {
		input := `!-/*5;
5 < 10 > 5;

if (5 < 10) {
	return true;
} else {
	return false;
}

10 == 10;
10 != 9;
`
		tests := []struct {
			expectedType    token.TokenType
			expectedLiteral string
		}{
			{token.BANG, "!"},
			{token.MINUS, "-"},
			{token.SLASH, "/"},
			{token.ASTERISK, "*"},
			{token.INT, "5"},
			{token.SEMICOLON, ";"},
			{token.INT, "5"},
			{token.LT, "<"},
			{token.INT, "10"},
			{token.GT, ">"},
			{token.INT, "5"},
			{token.SEMICOLON, ";"},
			{token.IF, "if"},
			{token.LPAREN, "("},
			{token.INT, "5"},
			{token.LT, "<"},
			{token.INT, "10"},
			{token.RPAREN, ")"},
			{token.LBRACE, "{"},
			{token.RETURN, "return"},
			{token.TRUE, "true"},
			{token.SEMICOLON, ";"},
			{token.RBRACE, "}"},
			{token.ELSE, "else"},
			{token.LBRACE, "{"},
			{token.RETURN, "return"},
			{token.FALSE, "false"},
			{token.SEMICOLON, ";"},
			{token.RBRACE, "}"},
			{token.INT, "10"},
			{token.EQ, "=="},
			{token.INT, "10"},
			{token.SEMICOLON, ";"},
			{token.INT, "10"},
			{token.NOT_EQ, "!="},
			{token.INT, "9"},
			{token.SEMICOLON, ";"},
			{token.EOF, ""},
		}

		l := New(input)

		for i, tt := range tests {
			tok := l.NextToken()

			if tok.Type != tt.expectedType {
				t.Fatalf("test[%d] - token type wrong. got %q wanted %q", i, tok.Type, tt.expectedType)
			}

			if tok.Literal != tt.expectedLiteral {
				t.Fatalf("test[%d] - literal wrong. got %q wanted %q", i, tok.Literal, tt.expectedLiteral)
			}
		}
	})

	t.Run("Illegal Characters And Overflow", func(t *testing.T) {
		input := `@ # 18446744073709551615`

		l := New(input)

		tok := l.NextToken()
		if tok.Type != token.ILLEGAL || tok.Literal != "@" {
			t.Fatalf("expected ILLEGAL '@', got %q %q", tok.Type, tok.Literal)
		}

		tok = l.NextToken()
		if tok.Type != token.ILLEGAL || tok.Literal != "#" {
			t.Fatalf("expected ILLEGAL '#', got %q %q", tok.Type, tok.Literal)
		}

		tok = l.NextToken()
		if tok.Type != token.ILLEGAL {
			t.Fatalf("expected overflowing literal to lex as ILLEGAL, got %q %q", tok.Type, tok.Literal)
		}
	})

	t.Run("EOF Is Sticky", func(t *testing.T) {
		l := New("")

		first := l.NextToken()
		second := l.NextToken()

		if first.Type != token.EOF || second.Type != token.EOF {
			t.Fatalf("expected repeated EOF, got %q then %q", first.Type, second.Type)
		}
	})
}
