// Package java renders a domain model as Java sources: one file per type,
// directories mirroring the package nesting.
//
// Unions become marker interfaces that their member entities implement. A
// feature typed by a union with primitive alias members is stored as Object
// and gets one setter overload and one As-getter per alias.
package java

import (
	"fmt"
	"strings"

	"github.com/teranos/ddgen/model"
	"github.com/teranos/ddgen/typegen"
	"github.com/teranos/ddgen/typegen/util"
)

const indent = "    "

// boxedTypes maps primitives to the Java reference types used for fields,
// parameters and alias overloads
var boxedTypes = map[model.Primitive]string{
	model.PrimitiveBoolean: "Boolean",
	model.PrimitiveByte:    "Byte",
	model.PrimitiveChar:    "Character",
	model.PrimitiveShort:   "Short",
	model.PrimitiveInt:     "Integer",
	model.PrimitiveLong:    "Long",
	model.PrimitiveFloat:   "Float",
	model.PrimitiveDouble:  "Double",
	model.PrimitiveNumber:  "Number",
	model.PrimitiveString:  "String",
	model.PrimitiveObject:  "Object",
}

var typeConfig = &util.TypeConfig{
	ArrayFormat: util.SuffixArray,
	Builtins:    boxedTypes,
}

// Generator implements typegen.Generator for Java
type Generator struct{}

// NewGenerator creates a new Java generator
func NewGenerator() *Generator {
	return &Generator{}
}

// Language returns "java"
func (g *Generator) Language() string {
	return "java"
}

// Label returns "Java classes"
func (g *Generator) Label() string {
	return "Java classes"
}

// Root returns the directory of the root package, "" for the default package
func (g *Generator) Root(opts typegen.Options) string {
	return strings.Join(model.PackagePath(nil, opts.RootPackage), "/")
}

// Generate renders every non-builtin type into <package dirs>/<Name>.java.
// Directory artifacts precede the files beneath them.
func (g *Generator) Generate(defs *model.Definitions, analysis *typegen.Analysis, opts typegen.Options) ([]typegen.Artifact, error) {
	root := model.PackagePath(nil, opts.RootPackage)

	var artifacts []typegen.Artifact
	if len(root) > 0 {
		artifacts = append(artifacts, typegen.Dir(strings.Join(root, "/")))
	}

	err := model.Walk(defs, func(path []string, el model.Element) error {
		pkg := append(append([]string{}, root...), path...)

		var body string
		switch t := el.(type) {
		case *model.Package:
			artifacts = append(artifacts, typegen.Dir(strings.Join(model.PackagePath(pkg, t.Name), "/")))
			return nil
		case *model.DataType:
			if t.Primitive.Builtin() {
				return nil
			}
			body = GenerateInterface(t)
		case *model.Entity:
			body = GenerateClass(t, analysis)
		case *model.Enum:
			body = GenerateEnum(t)
		default:
			return nil
		}

		file := el.ElementName() + ".java"
		if len(pkg) > 0 {
			file = strings.Join(pkg, "/") + "/" + file
		}
		artifacts = append(artifacts, typegen.File(file, GenerateFile(strings.Join(pkg, "."), body)))
		return nil
	})
	if err != nil {
		return nil, err
	}
	return artifacts, nil
}

// GenerateFile prefixes a type declaration with its package line. The line
// is written for the default package too, as "package ;".
func GenerateFile(packageName, body string) string {
	return "package " + packageName + ";\n\n" + body
}

// GenerateInterface renders a DataType as a marker interface
func GenerateInterface(dt *model.DataType) string {
	return fmt.Sprintf("public interface %s {\n}\n", dt.Name)
}

// GenerateEnum renders an Enum with no-argument constants and a private constructor
func GenerateEnum(e *model.Enum) string {
	var b strings.Builder
	fmt.Fprintf(&b, "public enum %s {\n", e.Name)

	if len(e.Literals) == 0 {
		b.WriteString(indent + ";\n")
	}
	for i, lit := range e.Literals {
		sep := ","
		if i == len(e.Literals)-1 {
			sep = ";"
		}
		fmt.Fprintf(&b, "%s%s()%s\n", indent, lit.Name, sep)
	}

	fmt.Fprintf(&b, "\n%sprivate %s() {\n%s}\n", indent, e.Name, indent)
	b.WriteString("}\n")
	return b.String()
}

// GenerateClass renders an Entity: fields first, then per feature its setters
// followed by its getters.
func GenerateClass(e *model.Entity, analysis *typegen.Analysis) string {
	var b strings.Builder
	b.WriteString("public class " + e.Name)
	if super := e.Super(); super != nil {
		b.WriteString(" extends " + super.Name)
	}
	if unions := analysis.ImplementsOf(e); len(unions) > 0 {
		names := make([]string, len(unions))
		for i, u := range unions {
			names[i] = u.Name
		}
		b.WriteString(" implements " + strings.Join(names, ", "))
	}
	b.WriteString(" {\n")

	features := make([]*featureAccessors, len(e.Features))
	for i, f := range e.Features {
		features[i] = newFeatureAccessors(f, analysis)
		fmt.Fprintf(&b, "%sprivate %s %s;\n", indent, features[i].fieldType(), f.Name)
	}

	for _, fa := range features {
		for _, m := range fa.methods() {
			b.WriteString("\n")
			b.WriteString(m)
		}
	}

	b.WriteString("}\n")
	return b.String()
}
