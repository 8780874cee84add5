// Package cli renders the command-line output of numint.
//
// # Naming Conventions
//
//   - Display* functions write formatted output to an [io.Writer].
//     Examples: [DisplayResult], [DisplayDetails].
//
//   - Format* functions return a formatted string without performing I/O.
//     Examples: [FormatResultBlock], [FormatWorkerLine].
//
// The result block and the per-worker lines go to standard output; every
// other rendering (details, spinner) targets the error stream so that
// standard output stays machine-comparable.
package cli
