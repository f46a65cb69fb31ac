// Package bound holds the type-annotated tree the binder hands to code
// generation. Every expression has a statically derivable type (TypeOf).
package bound
