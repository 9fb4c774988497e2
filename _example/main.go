// Command example declares the Pet Store API, prints it as YAML and serves
// it with a Swagger UI.
//
// Run:
//
//	go run ./_example
//
// Then open http://localhost:8080/docs/ in your browser.
package main

import (
	"fmt"
	"log"
	"net/http"
	"os"

	"github.com/Gobd/oasgen"
	"github.com/Gobd/oasgen/openapi"
)

func main() {
	doc, err := petStore()
	if err != nil {
		log.Fatal(err)
	}

	if err := doc.WriteYAML(os.Stdout); err != nil {
		log.Fatal(err)
	}

	http.Handle("/docs/", openapi.HandlerMust("/docs/", doc))

	fmt.Println("Listening on http://localhost:8080")
	fmt.Println("Swagger UI: http://localhost:8080/docs/")
	log.Fatal(http.ListenAndServe(":8080", nil))
}

func petStore() (*oasgen.Document, error) {
	doc, err := oasgen.NewDocument(oasgen.Info{
		Title:       "Pet Store",
		Version:     "1.0.0",
		Description: "A sample API that uses a pet store as an example.",
		License:     &oasgen.License{Name: "MIT"},
	}, oasgen.WithServer("http://localhost:8080", "Local"))
	if err != nil {
		return nil, err
	}

	pet, err := doc.RegisterSchema("Pet", oasgen.MustSchema(oasgen.MustObject(
		oasgen.Field{Name: "id", Schema: oasgen.MustSchema(oasgen.String(), oasgen.ReadOnly, oasgen.Format("uuid"))},
		oasgen.Field{Name: "name", Schema: oasgen.MustSchema(oasgen.String(), oasgen.Required, oasgen.Length(1, 100), oasgen.Example("Rex"))},
		oasgen.Field{Name: "kind", Schema: oasgen.MustSchema(oasgen.String(), oasgen.In("cat", "dog", "bird"))},
		oasgen.Field{Name: "owner", Schema: oasgen.MustSchema(oasgen.SchemaRef("Owner"))},
	)))
	if err != nil {
		return nil, err
	}
	if _, err := doc.RegisterSchema("Owner", oasgen.MustSchema(oasgen.MustObject(
		oasgen.Field{Name: "email", Schema: oasgen.MustSchema(oasgen.Email(), oasgen.Required)},
		oasgen.Field{Name: "pets", Schema: oasgen.MustSchema(oasgen.MustArray(pet))},
	))); err != nil {
		return nil, err
	}
	if _, err := doc.RegisterSchema("PetId", oasgen.MustSchema(oasgen.String(), oasgen.Format("uuid"))); err != nil {
		return nil, err
	}
	notFound, err := doc.RegisterResponse("NotFound", oasgen.MustResponse("The pet does not exist"))
	if err != nil {
		return nil, err
	}

	_, err = openapi.Get(doc, "/pets", "listPets", openapi.Endpoint{
		Summary:  "List all pets",
		Tags:     []string{"pets"},
		Params:   []oasgen.ParameterSpec{oasgen.MustParameter("limit", oasgen.InQuery, oasgen.MustSchema(oasgen.Int32(), oasgen.Min(1), oasgen.Max(100)))},
		Response: oasgen.MustSchema(oasgen.MustArray(pet)),
	})
	if err != nil {
		return nil, err
	}
	_, err = openapi.Post(doc, "/pets", "createPet", openapi.Endpoint{
		Summary: "Create a pet",
		Tags:    []string{"pets"},
		Request: oasgen.MustSchema(pet),
		Responses: map[string]openapi.Response{
			"201": {Desc: "Created pet", Bodies: []*oasgen.Schema{oasgen.MustSchema(pet)}},
		},
	})
	if err != nil {
		return nil, err
	}

	item, err := doc.AddPath("/pets/{pet_id:PetId}")
	if err != nil {
		return nil, err
	}
	item.Summary = "A single pet"
	_, err = item.AddOperation(oasgen.MethodGet, nil, oasgen.NoRequestBody, oasgen.MustResponses(
		oasgen.Status(http.StatusOK, oasgen.MustResponse("The pet", oasgen.WithJSON(oasgen.MustSchema(pet)))),
		oasgen.Status(http.StatusNotFound, notFound),
	), oasgen.WithOperationID("getPet"), oasgen.WithTags("pets"))
	if err != nil {
		return nil, err
	}
	return doc, nil
}
