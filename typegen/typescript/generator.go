// Package typescript renders a domain model as a single TypeScript module.
//
// Entities become interfaces carrying a `$type` discriminant that lists the
// entity and all of its subtypes, paired with a create<Name> factory. Unions
// and enums become type aliases. Package nesting is flattened away.
package typescript

import (
	"fmt"
	"strings"

	"github.com/teranos/ddgen/model"
	"github.com/teranos/ddgen/typegen"
	"github.com/teranos/ddgen/typegen/util"
)

const indent = "    "

// defaultBaseName names the module when the model has no source file
const defaultBaseName = "definitions"

// TypeMapping maps builtin primitives to TypeScript types
var TypeMapping = map[model.Primitive]string{
	model.PrimitiveBoolean: "boolean",
	model.PrimitiveByte:    "number",
	model.PrimitiveShort:   "number",
	model.PrimitiveInt:     "number",
	model.PrimitiveLong:    "number",
	model.PrimitiveFloat:   "number",
	model.PrimitiveDouble:  "number",
	model.PrimitiveNumber:  "number",
	model.PrimitiveChar:    "string",
	model.PrimitiveString:  "string",
}

var typeConfig = &util.TypeConfig{
	ArrayFormat: util.SuffixArray,
	Builtins:    TypeMapping,
}

// Generator implements typegen.Generator for TypeScript
type Generator struct{}

// NewGenerator creates a new TypeScript generator
func NewGenerator() *Generator {
	return &Generator{}
}

// Language returns "ts"
func (g *Generator) Language() string {
	return "ts"
}

// Label returns "TypeScript definitions"
func (g *Generator) Label() string {
	return "TypeScript definitions"
}

// Root returns "": the module is written directly into the destination
func (g *Generator) Root(typegen.Options) string {
	return ""
}

// Generate renders the whole model into <basename>.ts
func (g *Generator) Generate(defs *model.Definitions, _ *typegen.Analysis, opts typegen.Options) ([]typegen.Artifact, error) {
	name := typegen.OutputName(opts.Source)
	if name == "" || name == "." {
		name = defaultBaseName
	}
	return []typegen.Artifact{typegen.File(name+".ts", GenerateFile(defs))}, nil
}

// GenerateFile renders every type in flattened order, declarations separated
// by a blank line. Builtin and member-less DataTypes produce nothing.
func GenerateFile(defs *model.Definitions) string {
	subtypes := typegen.Subtypes(defs)

	var decls []string
	for _, t := range model.Flatten(defs) {
		switch t := t.(type) {
		case *model.Entity:
			decls = append(decls, GenerateInterface(t, subtypes[t]))
		case *model.DataType:
			if t.Primitive.Builtin() || !t.IsUnion() {
				continue
			}
			decls = append(decls, GenerateUnionType(t))
		case *model.Enum:
			decls = append(decls, GenerateEnumType(t))
		}
	}
	return strings.Join(decls, "\n")
}

// GenerateInterface renders an entity interface and its factory function.
// subtypes become additional arms of the $type discriminant.
func GenerateInterface(e *model.Entity, subtypes []*model.Entity) string {
	var b strings.Builder

	b.WriteString("export interface " + e.Name)
	if super := e.Super(); super != nil {
		b.WriteString(" extends " + super.Name)
	}
	b.WriteString(" {\n")

	discriminants := []string{e.Name}
	for _, sub := range subtypes {
		discriminants = append(discriminants, sub.Name)
	}
	fmt.Fprintf(&b, "%s$type: %s;\n", indent, util.QuotedUnion(discriminants))

	for _, f := range e.Features {
		optional := "?"
		if f.NonNullable {
			optional = ""
		}
		fmt.Fprintf(&b, "%s%s%s: %s;\n", indent, f.Name, optional, util.FeatureType(f, typeConfig))
	}
	b.WriteString("}\n\n")

	fmt.Fprintf(&b, "export function create%s(data: Omit<%s, '$type'>): %s {\n", e.Name, e.Name, e.Name)
	fmt.Fprintf(&b, "%sreturn {\n", indent)
	fmt.Fprintf(&b, "%s%s$type: '%s', ...data\n", indent, indent, e.Name)
	fmt.Fprintf(&b, "%s}\n", indent)
	b.WriteString("}\n")
	return b.String()
}

// GenerateUnionType renders a union DataType as a type alias. Members that
// map to the same TypeScript type appear once.
func GenerateUnionType(dt *model.DataType) string {
	var arms []string
	seen := make(map[string]bool)
	for _, m := range dt.Members {
		arm := util.TypeName(m, typeConfig)
		if seen[arm] {
			continue
		}
		seen[arm] = true
		arms = append(arms, arm)
	}
	return fmt.Sprintf("export type %s = %s;\n", dt.Name, strings.Join(arms, " | "))
}

// GenerateEnumType renders an enum as a union of string literals
func GenerateEnumType(e *model.Enum) string {
	literals := util.QuotedUnion(e.LiteralNames())
	if literals == "" {
		literals = "never"
	}
	return fmt.Sprintf("export type %s = %s;\n", e.Name, literals)
}
