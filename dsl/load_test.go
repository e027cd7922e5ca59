package dsl

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/teranos/ddgen/errors"
	"github.com/teranos/ddgen/model"
)

const sampleYAML = `elements:
  - datatype: string
  - datatype: number
  - package: foo.bar
    elements:
      - datatype: Id
        members: [string, number]
      - entity: Base
      - entity: Person
        extends: Base
        features:
          - {name: id, type: Id, nonNullable: true}
          - {name: tags, type: string, many: true}
      - enum: Color
        literals: [RED, GREEN]
`

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestParseYAML(t *testing.T) {
	defs, err := ParseYAML([]byte(sampleYAML))
	require.NoError(t, err)
	require.Len(t, defs.Elements, 3)

	str := defs.Elements[0].(*model.DataType)
	assert.Equal(t, model.PrimitiveString, str.Primitive)
	assert.Equal(t, 2, str.Pos.Line)

	pkg := defs.Elements[2].(*model.Package)
	assert.Equal(t, "foo.bar", pkg.Name)
	require.Len(t, pkg.Elements, 4)

	id := pkg.Elements[0].(*model.DataType)
	assert.Equal(t, []string{"string", "number"}, []string{id.Members[0].Text, id.Members[1].Text})

	person := pkg.Elements[2].(*model.Entity)
	assert.Equal(t, "Base", person.SuperType.Text)
	require.Len(t, person.Features, 2)
	assert.True(t, person.Features[0].NonNullable)
	assert.True(t, person.Features[1].Many)

	color := pkg.Elements[3].(*model.Enum)
	assert.Equal(t, []string{"RED", "GREEN"}, color.LiteralNames())
}

func TestParseYAML_Errors(t *testing.T) {
	tests := []struct {
		name     string
		source   string
		contains string
	}{
		{"two kinds", "elements:\n  - entity: A\n    enum: B\n", "exactly one of"},
		{"no kind", "elements:\n  - members: [a]\n", "exactly one of"},
		{"unknown element key", "elements:\n  - entity: A\n    field: x\n", `unknown element key "field"`},
		{"unknown top-level key", "types: []\n", "types"},
		{"feature without type", "elements:\n  - entity: A\n    features:\n      - {name: x}\n", "needs a name and a type"},
		{"malformed", "elements: [\n", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseYAML([]byte(tt.source))
			require.Error(t, err)
			assert.True(t, errors.IsParseError(err), "expected parse error, got %v", err)
			if tt.contains != "" {
				assert.Contains(t, err.Error(), tt.contains)
			}
		})
	}
}

func TestParseYAML_Empty(t *testing.T) {
	defs, err := ParseYAML(nil)
	require.NoError(t, err)
	assert.Empty(t, defs.Elements)
}

func TestMarshalYAML_MatchesTextualModel(t *testing.T) {
	fromText, err := Parse(sampleModel)
	require.NoError(t, err)

	data, err := MarshalYAML(fromText)
	require.NoError(t, err)

	fromYAML, err := ParseYAML(data)
	require.NoError(t, err)

	var want, got []string
	for _, typ := range model.Flatten(fromText) {
		want = append(want, typ.TypeName())
	}
	for _, typ := range model.Flatten(fromYAML) {
		got = append(got, typ.TypeName())
	}
	assert.Equal(t, want, got)

	e2 := model.Entities(fromYAML)[1]
	assert.Equal(t, "E1", e2.SuperType.Text)
	assert.Equal(t, "foo.bar.Id", e2.Features[3].Type.Text)
	assert.True(t, e2.Features[3].Many && e2.Features[3].NonNullable)
}

func TestMarshalJSON(t *testing.T) {
	defs, err := Parse("package p { entity A extends B { many nonNullable xs: C } enum E { X } }")
	require.NoError(t, err)

	data, err := MarshalJSON(defs)
	require.NoError(t, err)
	assert.JSONEq(t, `{"elements": [{"package": "p", "elements": [
		{"entity": "A", "extends": "B", "features": [{"name": "xs", "type": "C", "many": true, "nonNullable": true}]},
		{"enum": "E", "literals": ["X"]}
	]}]}`, string(data))
}

func TestParseFile(t *testing.T) {
	dir := t.TempDir()

	t.Run("textual", func(t *testing.T) {
		path := writeFile(t, dir, "model.ddef", sampleModel)
		doc, err := ParseFile(path)
		require.NoError(t, err)
		assert.Equal(t, path, doc.Path)
		assert.Equal(t, path, doc.Definitions.Source)
	})

	t.Run("yaml", func(t *testing.T) {
		path := writeFile(t, dir, "model.yml", sampleYAML)
		doc, err := ParseFile(path)
		require.NoError(t, err)
		assert.Len(t, model.Flatten(doc.Definitions), 6)
	})

	t.Run("unsupported extension", func(t *testing.T) {
		path := writeFile(t, dir, "model.json", "{}")
		_, err := ParseFile(path)
		require.Error(t, err)
		assert.True(t, errors.Is(err, errors.ErrUnsupportedInput))
		assert.Contains(t, errors.FlattenHints(err), ".ddef")
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := ParseFile(filepath.Join(dir, "absent.ddef"))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to read model file")
	})

	t.Run("syntax error carries file", func(t *testing.T) {
		path := writeFile(t, dir, "broken.ddef", "entity {")
		_, err := ParseFile(path)
		require.Error(t, err)

		var perr *ParseError
		require.True(t, errors.As(err, &perr))
		assert.Equal(t, path, perr.File)
	})
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "model.ddef", sampleModel+"\nentity lower {}\n")

	doc, err := Load(path, "")
	require.NoError(t, err)

	e2 := findType(t, doc.Definitions, "E2").(*model.Entity)
	assert.NotNil(t, e2.Super())

	warnings := doc.Warnings()
	require.Len(t, warnings, 3, "string, number and lower start lower-case")
	assert.Equal(t, "Type name should start with a capital.", warnings[2].Message)
}

func TestLoad_WithRoot(t *testing.T) {
	root := t.TempDir()
	main := writeFile(t, root, "app/main.ddef", "entity Order extends shared.Base { id: shared.Id }")
	writeFile(t, root, "shared/base.ddef", "package shared {\n entity Base {}\n}")
	writeFile(t, root, "shared/types.yaml", "elements:\n  - package: shared\n    elements:\n      - datatype: Id\n")
	writeFile(t, root, "shared/broken.ddef", "entity {")
	writeFile(t, root, "README.md", "not a model")

	t.Run("without root references stay unresolved", func(t *testing.T) {
		doc, err := Load(main, "")
		require.NoError(t, err)
		assert.Len(t, doc.Warnings(), 2)
	})

	t.Run("root resolves across files", func(t *testing.T) {
		doc, err := Load(main, root)
		require.NoError(t, err)
		assert.Empty(t, doc.Diagnostics)

		order := model.Entities(doc.Definitions)[0]
		require.NotNil(t, order.Super())
		assert.Equal(t, "Base", order.Super().Name)
		assert.True(t, order.Features[0].Type.Resolved())
	})
}
