package dsl

import (
	"strings"
	"unicode"

	"github.com/teranos/ddgen/model"
)

type tokenKind int

const (
	tokEOF tokenKind = iota
	tokIdent
	tokKeyword
	tokPunct
)

func (k tokenKind) String() string {
	switch k {
	case tokEOF:
		return "end of file"
	case tokIdent:
		return "identifier"
	case tokKeyword:
		return "keyword"
	case tokPunct:
		return "symbol"
	}
	return "token"
}

type token struct {
	kind  tokenKind
	value string
	pos   model.Position
}

var keywords = map[string]bool{
	"package":     true,
	"datatype":    true,
	"entity":      true,
	"extends":     true,
	"enum":        true,
	"many":        true,
	"nonNullable": true,
}

// IsKeyword reports whether value is reserved by the language
func IsKeyword(value string) bool {
	return keywords[value]
}

const punctuation = "{}:=|,."

// lex splits source into tokens, dropping whitespace and comments.
// The returned slice always ends with a tokEOF token.
func lex(source string) ([]token, error) {
	runes := []rune(source)
	pt := newPositionTracker()
	var tokens []token

	i := 0
	next := func() rune {
		r := runes[i]
		i++
		pt.advance(r)
		return r
	}
	peek := func(offset int) rune {
		if i+offset < len(runes) {
			return runes[i+offset]
		}
		return 0
	}

	for i < len(runes) {
		r := runes[i]
		start := pt.mark()

		switch {
		case unicode.IsSpace(r):
			next()

		case r == '/' && peek(1) == '/':
			for i < len(runes) && runes[i] != '\n' {
				next()
			}

		case r == '/' && peek(1) == '*':
			next()
			next()
			closed := false
			for i < len(runes) {
				if runes[i] == '*' && peek(1) == '/' {
					next()
					next()
					closed = true
					break
				}
				next()
			}
			if !closed {
				return nil, newSyntaxError(start, "unterminated block comment").
					WithSuggestion("close the comment with */")
			}

		case isIdentStart(r):
			begin := i
			for i < len(runes) && isIdentPart(runes[i]) {
				next()
			}
			value := string(runes[begin:i])
			kind := tokIdent
			if keywords[value] {
				kind = tokKeyword
			}
			tokens = append(tokens, token{kind: kind, value: value, pos: start})

		case r == '^' && isIdentStart(peek(1)):
			// ^name escapes a keyword used as an identifier
			next()
			begin := i
			for i < len(runes) && isIdentPart(runes[i]) {
				next()
			}
			tokens = append(tokens, token{kind: tokIdent, value: string(runes[begin:i]), pos: start})

		case strings.ContainsRune(punctuation, r):
			next()
			tokens = append(tokens, token{kind: tokPunct, value: string(r), pos: start})

		default:
			return nil, newSyntaxError(start, "unexpected character").WithToken(string(r))
		}
	}

	tokens = append(tokens, token{kind: tokEOF, pos: pt.mark()})
	return tokens, nil
}

func isIdentStart(r rune) bool {
	return r == '_' || (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z')
}

func isIdentPart(r rune) bool {
	return isIdentStart(r) || (r >= '0' && r <= '9')
}
