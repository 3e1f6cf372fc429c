// Package fields provides fluent builders for custom field definitions. Each
// builder carries a fixed type tag, a label, an optional machine name and a
// settings mapping that the host plugin runtime reads literally.
//
// Setters write their documented keys and return the builder, so definitions
// read as a single expression:
//
//	button := fields.NewButton("Send").ButtonType("submit").ButtonAjax()
//
// Capabilities shared by several field types (required, wrapper, conditional
// logic, ...) are generic types embedded in each builder; each one owns a
// single key family.
//
// Setters that only accept a closed set of values never panic. A rejected
// value leaves the settings untouched and is recorded on the builder: Err
// reports it and Resolve refuses to produce output.
package fields
