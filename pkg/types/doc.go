// Package types defines the entity types, the Store interface, the Config
// struct, and standard error values for the partsbin catalog system.
package types
