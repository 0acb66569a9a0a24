// Package utils provides small conversion helpers used by the HTTP handlers
// to interpret loosely-typed query parameters.
package utils
