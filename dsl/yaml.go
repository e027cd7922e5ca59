package dsl

import (
	"bytes"
	"encoding/json"
	"io"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/teranos/ddgen/errors"
	"github.com/teranos/ddgen/model"
)

// YAML form of a model:
//
//	elements:
//	  - package: foo.bar
//	    elements:
//	      - datatype: Id
//	        members: [string, number]
//	      - entity: Person
//	        extends: Base
//	        features:
//	          - {name: id, type: Id, nonNullable: true}
//	      - enum: Color
//	        literals: [RED, GREEN]
type yamlDocument struct {
	Elements []yamlElement `yaml:"elements" json:"elements"`
}

type yamlElement struct {
	Package  string        `yaml:"package,omitempty" json:"package,omitempty"`
	DataType string        `yaml:"datatype,omitempty" json:"datatype,omitempty"`
	Entity   string        `yaml:"entity,omitempty" json:"entity,omitempty"`
	Enum     string        `yaml:"enum,omitempty" json:"enum,omitempty"`
	Elements []yamlElement `yaml:"elements,omitempty" json:"elements,omitempty"`
	Members  []string      `yaml:"members,omitempty" json:"members,omitempty"`
	Extends  string        `yaml:"extends,omitempty" json:"extends,omitempty"`
	Features []yamlFeature `yaml:"features,omitempty" json:"features,omitempty"`
	Literals []string      `yaml:"literals,omitempty" json:"literals,omitempty"`

	pos model.Position
}

type yamlFeature struct {
	Name        string `yaml:"name" json:"name"`
	Type        string `yaml:"type" json:"type"`
	Many        bool   `yaml:"many,omitempty" json:"many,omitempty"`
	NonNullable bool   `yaml:"nonNullable,omitempty" json:"nonNullable,omitempty"`
}

var yamlElementKeys = map[string]bool{
	"package": true, "datatype": true, "entity": true, "enum": true,
	"elements": true, "members": true, "extends": true, "features": true, "literals": true,
}

// UnmarshalYAML records the element position and rejects unknown keys.
func (e *yamlElement) UnmarshalYAML(value *yaml.Node) error {
	pos := model.Position{Line: value.Line, Column: value.Column}
	if value.Kind == yaml.MappingNode {
		for i := 0; i+1 < len(value.Content); i += 2 {
			key := value.Content[i]
			if !yamlElementKeys[key.Value] {
				return newSyntaxError(model.Position{Line: key.Line, Column: key.Column},
					"unknown element key %q", key.Value)
			}
		}
	}

	type plain yamlElement
	var decoded plain
	if err := value.Decode(&decoded); err != nil {
		return err
	}
	*e = yamlElement(decoded)
	e.pos = pos
	return nil
}

// ParseYAML decodes a YAML model document. References in the result are unresolved.
func ParseYAML(data []byte) (*model.Definitions, error) {
	var doc yamlDocument
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&doc); err != nil {
		var perr *ParseError
		if errors.As(err, &perr) {
			return nil, perr
		}
		if errors.Is(err, io.EOF) {
			return &model.Definitions{}, nil
		}
		return nil, newSyntaxError(model.Position{}, "%s", strings.TrimPrefix(err.Error(), "yaml: "))
	}

	elements, err := fromYAML(doc.Elements)
	if err != nil {
		return nil, err
	}
	return &model.Definitions{Elements: elements}, nil
}

func fromYAML(in []yamlElement) ([]model.Element, error) {
	elements := make([]model.Element, 0, len(in))
	for _, y := range in {
		el, err := y.toElement()
		if err != nil {
			return nil, err
		}
		elements = append(elements, el)
	}
	return elements, nil
}

func (y yamlElement) kinds() []string {
	var kinds []string
	for kind, name := range map[string]string{
		"package": y.Package, "datatype": y.DataType, "entity": y.Entity, "enum": y.Enum,
	} {
		if name != "" {
			kinds = append(kinds, kind)
		}
	}
	sort.Strings(kinds)
	return kinds
}

func (y yamlElement) toElement() (model.Element, error) {
	kinds := y.kinds()
	if len(kinds) != 1 {
		return nil, newSyntaxError(y.pos, "element must have exactly one of package, datatype, entity or enum (found %d)", len(kinds)).
			WithToken(strings.Join(kinds, ", "))
	}

	switch kinds[0] {
	case "package":
		elements, err := fromYAML(y.Elements)
		if err != nil {
			return nil, err
		}
		return &model.Package{Name: y.Package, Elements: elements, Pos: y.pos}, nil

	case "datatype":
		dt := model.NewDataType(y.DataType)
		dt.Pos = y.pos
		for _, m := range y.Members {
			dt.Members = append(dt.Members, model.Ref{Text: m, Pos: y.pos})
		}
		return dt, nil

	case "entity":
		entity := &model.Entity{Name: y.Entity, Pos: y.pos}
		if y.Extends != "" {
			ref := model.Ref{Text: y.Extends, Pos: y.pos}
			entity.SuperType = &ref
		}
		for _, f := range y.Features {
			if f.Name == "" || f.Type == "" {
				return nil, newSyntaxError(y.pos, "feature of entity %s needs a name and a type", y.Entity)
			}
			entity.Features = append(entity.Features, &model.Feature{
				Name:        f.Name,
				Type:        model.Ref{Text: f.Type, Pos: y.pos},
				Many:        f.Many,
				NonNullable: f.NonNullable,
				Pos:         y.pos,
			})
		}
		return entity, nil

	default:
		enum := &model.Enum{Name: y.Enum, Pos: y.pos}
		for _, lit := range y.Literals {
			enum.Literals = append(enum.Literals, &model.EnumLiteral{Name: lit, Pos: y.pos})
		}
		return enum, nil
	}
}

// MarshalYAML renders a model in the YAML form accepted by ParseYAML.
// References are written as originally spelled.
func MarshalYAML(defs *model.Definitions) ([]byte, error) {
	doc := yamlDocument{Elements: toYAML(defs.Elements)}
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(doc); err != nil {
		return nil, errors.Wrap(err, "failed to encode model as YAML")
	}
	if err := enc.Close(); err != nil {
		return nil, errors.Wrap(err, "failed to encode model as YAML")
	}
	return buf.Bytes(), nil
}

// MarshalJSON renders a model as JSON with the same structure as MarshalYAML.
func MarshalJSON(defs *model.Definitions) ([]byte, error) {
	data, err := json.MarshalIndent(yamlDocument{Elements: toYAML(defs.Elements)}, "", "  ")
	if err != nil {
		return nil, errors.Wrap(err, "failed to encode model as JSON")
	}
	return append(data, '\n'), nil
}

func toYAML(elements []model.Element) []yamlElement {
	out := make([]yamlElement, 0, len(elements))
	for _, el := range elements {
		switch t := el.(type) {
		case *model.Package:
			out = append(out, yamlElement{Package: t.Name, Elements: toYAML(t.Elements)})
		case *model.DataType:
			y := yamlElement{DataType: t.Name}
			for _, m := range t.Members {
				y.Members = append(y.Members, m.Text)
			}
			out = append(out, y)
		case *model.Entity:
			y := yamlElement{Entity: t.Name}
			if t.SuperType != nil {
				y.Extends = t.SuperType.Text
			}
			for _, f := range t.Features {
				y.Features = append(y.Features, yamlFeature{
					Name: f.Name, Type: f.Type.Text, Many: f.Many, NonNullable: f.NonNullable,
				})
			}
			out = append(out, y)
		case *model.Enum:
			out = append(out, yamlElement{Enum: t.Name, Literals: t.LiteralNames()})
		}
	}
	return out
}
