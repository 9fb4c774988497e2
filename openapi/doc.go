// Package openapi provides shortcuts over [oasgen] for declaring JSON
// endpoints and serving the finished document over HTTP.
//
// Use [DocBase] to create a document, declare endpoints with [Get], [Post],
// [Put], [Patch], or [Delete], and serve it with [HandlerMust]:
//
//	doc, _ := openapi.DocBase("my-api", "My API", "1.0")
//	order, _ := doc.RegisterSchema("Order", orderSchema)
//	openapi.Post(doc, "/orders", "createOrder", openapi.Endpoint{
//	    Request:  oasgen.MustSchema(order),
//	    Response: oasgen.MustSchema(order),
//	})
//	http.Handle("/docs/", openapi.HandlerMust("/docs/", doc))
package openapi
