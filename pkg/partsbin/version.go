// Package partsbin carries module-level metadata shared by the CLI and
// library consumers.
package partsbin

// Version is the semantic version of the partsbin module.
const Version = "0.1.0"
