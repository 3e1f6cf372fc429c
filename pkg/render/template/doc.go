// Package template defines what the exporters need from a template engine.
// The pongo subpackage implements it on pongo2.
package template
