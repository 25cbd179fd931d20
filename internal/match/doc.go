// Package match derives keywords from Go identifiers and finds the closest
// keyword for a misspelt one.
package match
