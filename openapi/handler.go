package openapi

import (
	"bytes"
	"context"
	"html/template"
	"net/http"

	"github.com/Gobd/oasgen"
)

var index = template.Must(template.New("index").Parse(`<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>{{.Title}}</title>
<link rel="stylesheet" href="https://unpkg.com/swagger-ui-dist@5/swagger-ui.css">
</head>
<body>
<div id="swagger-ui"></div>
<script src="https://unpkg.com/swagger-ui-dist@5/swagger-ui-bundle.js"></script>
<script>
window.ui = SwaggerUIBundle({url: "openapi.json", dom_id: "#swagger-ui"});
</script>
</body>
</html>
`))

// Handler returns an http.Handler that serves the document as
// /openapi.json and /openapi.yaml and a Swagger UI page at the root. The
// document is validated with kin-openapi and rendered once, so the handler
// serves fixed bytes. The prefix is stripped automatically, so just mount it:
//
//	http.Handle("/docs/", openapi.HandlerMust("/docs/", doc))
func Handler(prefix string, doc *oasgen.Document) (http.Handler, error) {
	if err := doc.Validate(context.Background()); err != nil {
		return nil, err
	}

	specJSON, err := doc.ToJSON(2)
	if err != nil {
		return nil, err
	}
	specYAML, err := doc.ToYAML()
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	if err := index.Execute(&buf, map[string]any{"Title": doc.Info().Title}); err != nil {
		return nil, err
	}
	page := buf.Bytes()

	return http.StripPrefix(prefix, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "", "/":
			w.Header().Set("Content-Type", "text/html; charset=utf-8")
			_, _ = w.Write(page)
		case "openapi.json", "/openapi.json":
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(specJSON))
		case "openapi.yaml", "/openapi.yaml":
			w.Header().Set("Content-Type", "application/yaml")
			_, _ = w.Write([]byte(specYAML))
		default:
			http.NotFound(w, r)
		}
	})), nil
}

// HandlerMust is like [Handler] but panics on error.
func HandlerMust(prefix string, doc *oasgen.Document) http.Handler {
	h, err := Handler(prefix, doc)
	if err != nil {
		panic(err)
	}
	return h
}
