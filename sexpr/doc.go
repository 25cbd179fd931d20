// Package sexpr reads and writes the untyped expression trees KiCad stores
// its documents in.
//
// A tree is built from two node kinds: Atom, a bare word, number or quoted
// string, and List, a parenthesised group whose first element is usually a
// bare tag atom. Parse turns text into a tree and Render turns a tree back
// into text. Quoted atoms understand only two escapes, \\ and \", any other
// backslash pair is kept as written.
//
// Besides text, a tree can be exported as canonical CBOR (see MarshalCBOR
// and Fingerprint) or as a YAML node for inspection (see ToYAML).
package sexpr
