package java

import (
	"fmt"

	"github.com/teranos/ddgen/model"
	"github.com/teranos/ddgen/typegen"
	"github.com/teranos/ddgen/typegen/util"
)

// featureAccessors renders the field and methods of one entity feature.
type featureAccessors struct {
	name    string
	cap     string // name with its first letter upper-cased
	typ     string // nominal type, array-suffixed when many
	aliases []*model.DataType
}

func newFeatureAccessors(f *model.Feature, analysis *typegen.Analysis) *featureAccessors {
	return &featureAccessors{
		name:    f.Name,
		cap:     util.UpperFirst(f.Name),
		typ:     util.FeatureType(f, typeConfig),
		aliases: distinctBoxed(analysis.AliasesOf(f.Type.Target)),
	}
}

// distinctBoxed keeps the first alias per boxed name, so aliases differing
// only in case ("string", "String") share one overload
func distinctBoxed(aliases []*model.DataType) []*model.DataType {
	seen := make(map[string]bool, len(aliases))
	var distinct []*model.DataType
	for _, alias := range aliases {
		boxed := boxedName(alias)
		if seen[boxed] {
			continue
		}
		seen[boxed] = true
		distinct = append(distinct, alias)
	}
	return distinct
}

// fieldType is Object when the value may hold any of several alias representations
func (fa *featureAccessors) fieldType() string {
	if len(fa.aliases) > 0 {
		return "Object"
	}
	return fa.typ
}

// methods returns the canonical setter, one setter per alias, the canonical
// getter and one As-getter per alias, in that order.
func (fa *featureAccessors) methods() []string {
	methods := make([]string, 0, 2+2*len(fa.aliases))

	methods = append(methods, fa.setter(fa.typ))
	for _, alias := range fa.aliases {
		methods = append(methods, fa.setter(boxedName(alias)))
	}

	if len(fa.aliases) == 0 {
		methods = append(methods, method(
			fmt.Sprintf("public %s get%s()", fa.typ, fa.cap),
			fmt.Sprintf("return this.%s;", fa.name)))
		return methods
	}

	methods = append(methods, method(
		fmt.Sprintf("public %s get%s()", fa.typ, fa.cap),
		fmt.Sprintf("return (%s) this.%s;", fa.typ, fa.name)))
	for _, alias := range fa.aliases {
		boxed := boxedName(alias)
		methods = append(methods, method(
			fmt.Sprintf("public %s get%sAs%s()", boxed, fa.cap, util.UpperFirst(alias.Name)),
			fmt.Sprintf("return this.%s instanceof %s ? (%s) this.%s : null;", fa.name, boxed, boxed, fa.name)))
	}
	return methods
}

func (fa *featureAccessors) setter(paramType string) string {
	return method(
		fmt.Sprintf("public void set%s(%s %s)", fa.cap, paramType, fa.name),
		fmt.Sprintf("this.%s = %s;", fa.name, fa.name))
}

// method renders a one-statement method at class member indentation
func method(signature, statement string) string {
	return indent + signature + " {\n" +
		indent + indent + statement + "\n" +
		indent + "}\n"
}

// boxedName is the Java reference type used for an alias member
func boxedName(alias *model.DataType) string {
	if boxed, ok := boxedTypes[alias.Primitive]; ok {
		return boxed
	}
	return alias.Name
}
