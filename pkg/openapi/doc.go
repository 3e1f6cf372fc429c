// Package openapi describes the values stored by resolved field groups as an
// OpenAPI 3 document, one component schema and one read path per group. The
// document is built and validated with kin-openapi.
package openapi
