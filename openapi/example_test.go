package openapi_test

import (
	"fmt"

	"github.com/Gobd/oasgen"
	"github.com/Gobd/oasgen/openapi"
)

func itemSchema() *oasgen.Schema {
	return oasgen.MustSchema(oasgen.MustObject(
		oasgen.Field{Name: "name", Schema: oasgen.MustSchema(oasgen.String(), oasgen.Required, oasgen.Length(1, 200))},
		oasgen.Field{Name: "price", Schema: oasgen.MustSchema(oasgen.Double(), oasgen.Required, oasgen.Min(0.01))},
	))
}

func ExamplePost() {
	doc, _ := openapi.DocBase("Shop API", "Example API", "1.0.0")
	item, _ := doc.RegisterSchema("Item", itemSchema())

	op, err := openapi.Post(doc, "/items", "createItem", openapi.Endpoint{
		Summary:  "Create an item",
		Request:  oasgen.MustSchema(item),
		Response: oasgen.MustSchema(item),
	})
	if err != nil {
		panic(err)
	}

	fmt.Println(op.OperationID)
	// Output: createItem
}

func ExampleDocBase() {
	doc, _ := openapi.DocBase("My Service", "A cool service", "0.1.0")
	fmt.Println(doc.Info().Title)
	fmt.Println(oasgen.Version)
	// Output:
	// My Service
	// 3.0.0
}

func ExampleGet() {
	doc, _ := openapi.DocBase("Shop API", "Example API", "1.0.0")
	item, _ := doc.RegisterSchema("Item", itemSchema())

	_, _ = openapi.Get(doc, "/items", "listItems", openapi.Endpoint{
		Summary:  "List all items",
		Response: oasgen.MustSchema(oasgen.MustArray(item)),
	})

	p, _ := doc.Path("/items")
	op, _ := p.Operation(oasgen.MethodGet)
	fmt.Println(op.OperationID)
	// Output: listItems
}
