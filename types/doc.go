// Package types defines the interfaces shared between the solver and its
// pluggable collaborators, so internal implementations can satisfy them
// without importing the root package.
package types
