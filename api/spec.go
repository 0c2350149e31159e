// Package api embeds the OpenAPI description of the admin back-end.
package api

import _ "embed"

// OpenAPISpec is the YAML document served at /openapi.json by the mock API.
//
//go:embed openapi.yaml
var OpenAPISpec []byte
