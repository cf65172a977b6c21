// Package api holds the OpenAPI document of the explorer HTTP API.
package api

import _ "embed"

// Spec is explorer.openapi.yaml.
//
//go:embed explorer.openapi.yaml
var Spec []byte
