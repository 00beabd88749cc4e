// Package oas contains the HTTP server and client generated from
// api/openapi.yaml.
package oas

//go:generate go run github.com/ogen-go/ogen/cmd/ogen --target . --package oas ../../api/openapi.yaml
