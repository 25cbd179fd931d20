// Package diagnostic collects per-file findings of the kicadfmt check
// command.
//
// Errors returned by the codec are classified into codes with errors.As,
// so a report lists every failing file with the location the error
// carries: line and column for syntax errors, the record path for schema
// mismatches.
package diagnostic
