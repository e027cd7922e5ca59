package dsl

import (
	"strings"

	"github.com/teranos/ddgen/model"
)

// Parse reads one document of the textual model language. References in the
// result are unresolved; run Link to resolve them.
func Parse(source string) (*model.Definitions, error) {
	tokens, err := lex(source)
	if err != nil {
		return nil, err
	}

	p := &parser{tokens: tokens}
	elements, err := p.parseElements(false)
	if err != nil {
		return nil, err
	}
	return &model.Definitions{Elements: elements}, nil
}

type parser struct {
	tokens []token
	pos    int
}

func (p *parser) peek() token {
	return p.tokens[p.pos]
}

func (p *parser) advance() token {
	tok := p.tokens[p.pos]
	if tok.kind != tokEOF {
		p.pos++
	}
	return tok
}

func (p *parser) isPunct(value string) bool {
	tok := p.peek()
	return tok.kind == tokPunct && tok.value == value
}

func (p *parser) isKeyword(value string) bool {
	tok := p.peek()
	return tok.kind == tokKeyword && tok.value == value
}

func (p *parser) expectPunct(value string) (token, error) {
	if !p.isPunct(value) {
		return token{}, p.unexpected("expected '" + value + "'")
	}
	return p.advance(), nil
}

func (p *parser) expectIdent(what string) (token, error) {
	tok := p.peek()
	if tok.kind != tokIdent {
		err := p.unexpected("expected " + what)
		if tok.kind == tokKeyword {
			err.WithSuggestion("escape keywords used as names with ^, e.g. ^" + tok.value)
		}
		return token{}, err
	}
	return p.advance(), nil
}

func (p *parser) unexpected(message string) *ParseError {
	tok := p.peek()
	err := newSyntaxError(tok.pos, "%s", message)
	if tok.kind == tokEOF {
		return err.WithToken(tok.kind.String())
	}
	return err.WithToken(tok.value)
}

// parseElements reads elements until end of input, or until '}' when nested.
func (p *parser) parseElements(nested bool) ([]model.Element, error) {
	var elements []model.Element
	for {
		tok := p.peek()
		if tok.kind == tokEOF {
			if nested {
				return nil, p.unexpected("expected '}'")
			}
			return elements, nil
		}
		if nested && p.isPunct("}") {
			return elements, nil
		}

		el, err := p.parseElement()
		if err != nil {
			return nil, err
		}
		elements = append(elements, el)
	}
}

func (p *parser) parseElement() (model.Element, error) {
	tok := p.peek()
	if tok.kind == tokKeyword {
		switch tok.value {
		case "package":
			return p.parsePackage()
		case "datatype":
			return p.parseDataType()
		case "entity":
			return p.parseEntity()
		case "enum":
			return p.parseEnum()
		}
	}
	return nil, p.unexpected("expected 'package', 'datatype', 'entity' or 'enum'")
}

// package a.b { elements }
func (p *parser) parsePackage() (*model.Package, error) {
	start := p.advance().pos
	name, _, err := p.parseQualifiedName("package name")
	if err != nil {
		return nil, err
	}
	if _, err := p.expectPunct("{"); err != nil {
		return nil, err
	}
	elements, err := p.parseElements(true)
	if err != nil {
		return nil, err
	}
	p.advance() // }

	return &model.Package{Name: name, Elements: elements, Pos: start}, nil
}

// datatype X [= A | B]
func (p *parser) parseDataType() (*model.DataType, error) {
	start := p.advance().pos
	name, err := p.expectIdent("datatype name")
	if err != nil {
		return nil, err
	}

	dt := model.NewDataType(name.value)
	dt.Pos = start
	if !p.isPunct("=") {
		return dt, nil
	}
	p.advance()

	for {
		ref, err := p.parseRef("union member")
		if err != nil {
			return nil, err
		}
		dt.Members = append(dt.Members, ref)
		if !p.isPunct("|") {
			return dt, nil
		}
		p.advance()
	}
}

// entity X [extends Y] { features }
func (p *parser) parseEntity() (*model.Entity, error) {
	start := p.advance().pos
	name, err := p.expectIdent("entity name")
	if err != nil {
		return nil, err
	}

	entity := &model.Entity{Name: name.value, Pos: start}
	if p.isKeyword("extends") {
		p.advance()
		ref, err := p.parseRef("supertype")
		if err != nil {
			return nil, err
		}
		entity.SuperType = &ref
	}

	if _, err := p.expectPunct("{"); err != nil {
		return nil, err
	}
	for !p.isPunct("}") {
		feature, err := p.parseFeature()
		if err != nil {
			return nil, err
		}
		entity.Features = append(entity.Features, feature)
	}
	p.advance() // }

	return entity, nil
}

// [many] [nonNullable] name: Type
func (p *parser) parseFeature() (*model.Feature, error) {
	feature := &model.Feature{Pos: p.peek().pos}
	for {
		switch {
		case p.isKeyword("many") && !feature.Many:
			feature.Many = true
			p.advance()
			continue
		case p.isKeyword("nonNullable") && !feature.NonNullable:
			feature.NonNullable = true
			p.advance()
			continue
		}
		break
	}

	if p.peek().kind == tokEOF {
		return nil, p.unexpected("expected '}'")
	}
	name, err := p.expectIdent("feature name")
	if err != nil {
		return nil, err
	}
	feature.Name = name.value

	if _, err := p.expectPunct(":"); err != nil {
		return nil, err
	}
	feature.Type, err = p.parseRef("feature type")
	if err != nil {
		return nil, err
	}
	return feature, nil
}

// enum X { A, B, }
func (p *parser) parseEnum() (*model.Enum, error) {
	start := p.advance().pos
	name, err := p.expectIdent("enum name")
	if err != nil {
		return nil, err
	}
	if _, err := p.expectPunct("{"); err != nil {
		return nil, err
	}

	enum := &model.Enum{Name: name.value, Pos: start}
	for !p.isPunct("}") {
		lit, err := p.expectIdent("enum literal")
		if err != nil {
			return nil, err
		}
		enum.Literals = append(enum.Literals, &model.EnumLiteral{Name: lit.value, Pos: lit.pos})

		if p.isPunct(",") {
			p.advance()
			continue
		}
		if !p.isPunct("}") {
			return nil, p.unexpected("expected ',' or '}'")
		}
	}
	p.advance() // }

	return enum, nil
}

func (p *parser) parseRef(what string) (model.Ref, error) {
	text, pos, err := p.parseQualifiedName(what)
	if err != nil {
		return model.Ref{}, err
	}
	return model.Ref{Text: text, Pos: pos}, nil
}

// QualifiedName: ID ('.' ID)*
func (p *parser) parseQualifiedName(what string) (string, model.Position, error) {
	first, err := p.expectIdent(what)
	if err != nil {
		return "", model.Position{}, err
	}

	parts := []string{first.value}
	for p.isPunct(".") {
		p.advance()
		next, err := p.expectIdent(what)
		if err != nil {
			return "", model.Position{}, err
		}
		parts = append(parts, next.value)
	}
	return strings.Join(parts, "."), first.pos, nil
}
