// Package oasgen builds OpenAPI 3.0 documents from explicit declarations and
// renders them as JSON or YAML.
//
// Declare reusable schemas in the document's registry and point at them with
// references, so recursive and shared types never embed each other:
//
//	doc := oasgen.MustNewDocument(oasgen.Info{Title: "Pets", Version: "1.0.0"})
//	pet, _ := doc.RegisterSchema("Pet", oasgen.MustSchema(oasgen.MustObject(
//	    oasgen.Field{Name: "id", Schema: oasgen.MustSchema(oasgen.String(), oasgen.ReadOnly)},
//	    oasgen.Field{Name: "name", Schema: oasgen.MustSchema(oasgen.String(), oasgen.Required)},
//	)))
//
// Paths take templates whose annotated placeholders declare their own path
// parameter:
//
//	item := doc.MustAddPath("/pets/{id:Int64}")
//	item.MustAddOperation(oasgen.MethodGet, nil, nil, oasgen.MustResponses(
//	    oasgen.Status(200, oasgen.MustResponse("A pet", oasgen.WithJSON(oasgen.MustSchema(pet)))),
//	))
//
// Then render with a single call:
//
//	out, err := doc.ToJSON(2)
//
// Declarations are checked when they are made; references are resolved by
// [Document.Build], which every renderer calls and which freezes the document.
//
// Sub-packages:
//   - encode – ordered mapping and its JSON and YAML renderers
//   - openapi – endpoint helpers and an HTTP handler serving a document
//   - transform – struct string transformation utilities
package oasgen
