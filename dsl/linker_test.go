package dsl

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/teranos/ddgen/model"
)

func parseDoc(t *testing.T, path, source string) *Document {
	t.Helper()
	defs, err := Parse(source)
	require.NoError(t, err)
	return &Document{Path: path, Definitions: defs}
}

func findType(t *testing.T, defs *model.Definitions, name string) model.Type {
	t.Helper()
	for _, typ := range model.Flatten(defs) {
		if typ.TypeName() == name {
			return typ
		}
	}
	t.Fatalf("type %s not found", name)
	return nil
}

func TestLink_Sample(t *testing.T) {
	doc := parseDoc(t, "sample.ddef", sampleModel)
	Link(doc)
	assert.Empty(t, doc.Diagnostics)

	id := findType(t, doc.Definitions, "Id").(*model.DataType)
	assert.Same(t, findType(t, doc.Definitions, "string"), id.Members[0].Target)
	assert.Same(t, findType(t, doc.Definitions, "number"), id.Members[1].Target)

	e2 := findType(t, doc.Definitions, "E2").(*model.Entity)
	assert.Same(t, findType(t, doc.Definitions, "E1"), e2.Super())
	assert.Same(t, e2, e2.Features[0].Type.Target, "self reference")
	assert.Same(t, id, e2.Features[3].Type.Target, "fully qualified reference")
}

func TestLink_InnermostScopeWins(t *testing.T) {
	doc := parseDoc(t, "scopes.ddef", `
datatype Name
package outer {
    datatype Name
    package inner {
        datatype Name
        entity A { n: Name }
    }
    entity B { n: Name }
}
entity C { n: Name }
`)
	Link(doc)
	require.Empty(t, doc.Diagnostics)

	var names []*model.DataType
	for _, dt := range model.DataTypes(doc.Definitions) {
		names = append(names, dt)
	}
	require.Len(t, names, 3)
	global, outer, inner := names[0], names[1], names[2]

	a := findType(t, doc.Definitions, "A").(*model.Entity)
	b := findType(t, doc.Definitions, "B").(*model.Entity)
	c := findType(t, doc.Definitions, "C").(*model.Entity)
	assert.Same(t, inner, a.Features[0].Type.Target)
	assert.Same(t, outer, b.Features[0].Type.Target)
	assert.Same(t, global, c.Features[0].Type.Target)
}

func TestLink_Unresolved(t *testing.T) {
	doc := parseDoc(t, "broken.ddef", `
datatype U = Missing | string
datatype string
entity A extends Nowhere { x: Gone }
`)
	Link(doc)

	u := findType(t, doc.Definitions, "U").(*model.DataType)
	assert.False(t, u.Members[0].Resolved())
	assert.True(t, u.Members[1].Resolved())

	a := findType(t, doc.Definitions, "A").(*model.Entity)
	assert.Nil(t, a.Super())
	assert.False(t, a.Features[0].Type.Resolved())

	require.Len(t, doc.Diagnostics, 3)
	for _, diag := range doc.Diagnostics {
		assert.Equal(t, KindLinking, diag.Kind)
		assert.True(t, diag.IsWarning())
		assert.Equal(t, "broken.ddef", diag.File)
	}
	assert.Equal(t, "Could not resolve reference to Type named 'Missing'.", doc.Diagnostics[0].Message)
	assert.Equal(t, "Could not resolve reference to Entity named 'Nowhere'.", doc.Diagnostics[1].Message)
	assert.Equal(t, "Could not resolve reference to Type named 'Gone'.", doc.Diagnostics[2].Message)
}

func TestLink_SuperTypeMustBeEntity(t *testing.T) {
	doc := parseDoc(t, "super.ddef", "datatype Base\nentity A extends Base {}")
	Link(doc)

	a := findType(t, doc.Definitions, "A").(*model.Entity)
	assert.False(t, a.SuperType.Resolved())
	require.Len(t, doc.Diagnostics, 1)
}

func TestLink_AcrossDocuments(t *testing.T) {
	extends := parseDoc(t, "extends.ddef", "entity SomeEntity extends SuperEntity {}")
	super := parseDoc(t, "super.ddef", "entity SuperEntity {}")

	Link(extends, super)
	assert.Empty(t, extends.Diagnostics)

	some := findType(t, extends.Definitions, "SomeEntity").(*model.Entity)
	assert.Same(t, findType(t, super.Definitions, "SuperEntity"), some.Super())
}

func TestLink_Duplicates(t *testing.T) {
	doc := parseDoc(t, "dup.ddef", "entity A {}\nentity A {}\nentity B extends A {}")
	Link(doc)

	require.Len(t, doc.Diagnostics, 1)
	assert.Contains(t, doc.Diagnostics[0].Message, "Duplicate type name 'A'")
	assert.Equal(t, 2, doc.Diagnostics[0].Pos.Line)

	b := findType(t, doc.Definitions, "B").(*model.Entity)
	assert.Same(t, doc.Definitions.Elements[0], b.Super())
}

func TestCheck_TypeStartsWithCapital(t *testing.T) {
	doc := parseDoc(t, "caps.ddef", "entity person {}\nentity Person {}\nenum color { RED }\ndatatype _x")
	Check(doc)

	require.Len(t, doc.Diagnostics, 2)
	for _, diag := range doc.Diagnostics {
		assert.Equal(t, "Type name should start with a capital.", diag.Message)
		assert.Equal(t, KindSemantic, diag.Kind)
	}
	assert.Equal(t, 1, doc.Diagnostics[0].Pos.Line)
	assert.Equal(t, 3, doc.Diagnostics[1].Pos.Line)
}
