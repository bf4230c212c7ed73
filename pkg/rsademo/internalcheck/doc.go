// Package internalcheck holds source-policy tests for the rsademo packages.
//
// The tests load the library with golang.org/x/tools/go/packages and walk its
// syntax trees. They enforce rules that ordinary unit tests cannot see, such
// as "randomness only comes from a seed". There is no non-test API.
package internalcheck
