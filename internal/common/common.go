package common

import "strings"

// UnknownStr names enum values outside their known range.
const UnknownStr = "unknown"

// PkgAlias is the default import name of pkgPath, its last path element.
func PkgAlias(pkgPath string) string {
	return pkgPath[strings.LastIndexByte(pkgPath, '/')+1:]
}

// First returns the head of s, if any.
func First[S ~[]E, E any](s S) (head E, ok bool) {
	if len(s) > 0 {
		head, ok = s[0], true
	}

	return head, ok
}
