package dsl

import (
	"unicode"
	"unicode/utf8"

	"github.com/teranos/ddgen/model"
)

// Check runs the model validations and records their findings on the document.
func Check(doc *Document) {
	for _, t := range model.Flatten(doc.Definitions) {
		checkTypeStartsWithCapital(doc, t)
	}
}

func checkTypeStartsWithCapital(doc *Document, t model.Type) {
	name := t.TypeName()
	if name == "" {
		return
	}
	first, _ := utf8.DecodeRuneInString(name)
	if unicode.ToUpper(first) != first {
		doc.addDiagnostic(newWarning(KindSemantic, positionOf(t), "Type name should start with a capital."))
	}
}
