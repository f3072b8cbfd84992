// Package codec bridges value trees to and from JSON and YAML bytes. All
// text handling is delegated to the encoding libraries; the value model
// itself defines no wire format.
package codec
