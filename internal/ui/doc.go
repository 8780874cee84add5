// Package ui provides theme and color support for the diagnostic output
// written to the error stream. The result block on standard output is never
// colored.
package ui
