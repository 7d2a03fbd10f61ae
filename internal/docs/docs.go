// Package docs bundles the OpenAPI document describing the server's HTTP
// surface so it can be served without relying on the working directory.
package docs

import _ "embed"

//go:embed openapi.yaml
var OpenAPI []byte
