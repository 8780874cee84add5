// Package app wires configuration, the integration drivers and the
// command-line output into a runnable application.
package app
