// Command chi serves an oasgen document from a chi router.
//
// Run:
//
//	cd _example/chi && go run .
//
// Then open http://localhost:8080/docs/ in your browser.
package main

import (
	"fmt"
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/Gobd/oasgen"
	"github.com/Gobd/oasgen/openapi"
)

func main() {
	doc := oasgen.MustNewDocument(oasgen.Info{Title: "Orders", Version: "0.1.0"})
	order, err := doc.RegisterSchema("Order", oasgen.MustSchema(oasgen.MustObject(
		oasgen.Field{Name: "customer_name", Schema: oasgen.MustSchema(oasgen.String(), oasgen.Required, oasgen.Length(1, 200))},
		oasgen.Field{Name: "item_count", Schema: oasgen.MustSchema(oasgen.Int32(), oasgen.Required, oasgen.Min(1))},
		oasgen.Field{Name: "total", Schema: oasgen.MustSchema(oasgen.Double(), oasgen.Required, oasgen.Min(0.01))},
	)))
	if err != nil {
		log.Fatal(err)
	}
	if _, err := openapi.Post(doc, "/orders", "createOrder", openapi.Endpoint{
		Summary:  "Create an order",
		Request:  oasgen.MustSchema(order),
		Response: oasgen.MustSchema(order),
	}); err != nil {
		log.Fatal(err)
	}

	r := chi.NewRouter()
	r.Mount("/docs", openapi.HandlerMust("/docs", doc))

	fmt.Println("Swagger UI: http://localhost:8080/docs/")
	log.Fatal(http.ListenAndServe(":8080", r))
}
