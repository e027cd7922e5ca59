package util

import (
	"strings"

	"github.com/teranos/ddgen/model"
)

// TypeConfig configures how model references are rendered in a target language.
type TypeConfig struct {
	// ArrayFormat formats a many-valued type given the element type
	// e.g., Java and TypeScript: "%s[]"
	ArrayFormat func(elemType string) string

	// Builtins renames references to builtin primitive DataTypes
	// e.g., Java: string -> "String", TypeScript: int -> "number"
	Builtins map[model.Primitive]string
}

// TypeName renders a reference: the mapped name for a builtin primitive, the
// referenced type's name, or the text as written when unresolved.
func TypeName(ref model.Ref, config *TypeConfig) string {
	if dt, ok := ref.Target.(*model.DataType); ok && dt.Primitive.Builtin() {
		if name, ok := config.Builtins[dt.Primitive]; ok {
			return name
		}
	}
	return ref.Name()
}

// FeatureType renders the declared type of a feature, wrapped by ArrayFormat
// when the feature is many-valued.
func FeatureType(f *model.Feature, config *TypeConfig) string {
	name := TypeName(f.Type, config)
	if f.Many && config.ArrayFormat != nil {
		return config.ArrayFormat(name)
	}
	return name
}

// SuffixArray is the ArrayFormat shared by Java and TypeScript
func SuffixArray(elemType string) string {
	return elemType + "[]"
}

// QuotedUnion joins names as single-quoted literals separated by " | "
// ("A", "B" -> "'A' | 'B'").
func QuotedUnion(names []string) string {
	quoted := make([]string, len(names))
	for i, name := range names {
		quoted[i] = "'" + name + "'"
	}
	return strings.Join(quoted, " | ")
}
