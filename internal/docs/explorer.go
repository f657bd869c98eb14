package docs

import "fmt"

const swaggerUIPage = `<!DOCTYPE html>
<html lang="en">
<head>
  <meta charset="utf-8"/>
  <meta name="viewport" content="width=device-width, initial-scale=1"/>
  <title>API Reference</title>
  <link rel="stylesheet" href="https://unpkg.com/swagger-ui-dist@5/swagger-ui.css"/>
</head>
<body>
<div id="swagger-ui"></div>
<script src="https://unpkg.com/swagger-ui-dist@5/swagger-ui-bundle.js"></script>
<script>
  window.onload = () => {
    SwaggerUIBundle({ url: %q, dom_id: "#swagger-ui" });
  };
</script>
</body>
</html>
`

const scalarPage = `<!DOCTYPE html>
<html lang="en">
<head>
  <meta charset="utf-8"/>
  <meta name="viewport" content="width=device-width, initial-scale=1"/>
  <title>API Reference</title>
</head>
<body>
<script id="api-reference" data-url=%q></script>
<script src="https://cdn.jsdelivr.net/npm/@scalar/api-reference"></script>
</body>
</html>
`

// SwaggerUI renders the Swagger UI explorer page pointed at the given
// OpenAPI document URL. Assets load from a CDN; the page itself carries no
// state.
func SwaggerUI(specURL string) []byte {
	return []byte(fmt.Sprintf(swaggerUIPage, specURL))
}

// Scalar renders the Scalar explorer page pointed at the given OpenAPI
// document URL.
func Scalar(specURL string) []byte {
	return []byte(fmt.Sprintf(scalarPage, specURL))
}
