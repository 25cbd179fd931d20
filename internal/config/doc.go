// Package config loads the kicadfmt configuration file.
//
// The file is YAML:
//
//	version: "1"
//	precision: 6
//	max_depth: 256
//	check:
//	  roundtrip: true
//	  jobs: 4
//	watch:
//	  debounce: 200ms
//
// Every key is optional. The document is validated against an embedded
// JSON Schema before it is decoded, so typos in key names are reported
// instead of ignored.
package config
