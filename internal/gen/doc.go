// Package gen writes the catalog registration file.
//
// The file lists every record and union found by package analyze as one
// catalogOptions function, so building the catalog needs no reflection
// over package contents at run time. Code is rendered with text/template
// and formatted with go/format.
package gen
