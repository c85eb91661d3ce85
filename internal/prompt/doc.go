// Package prompt builds the instruction text sent to the language model for
// a topic, and the matching response schema.
//
// Build is a pure function: the template is embedded in the binary and
// parsed once, so the same topic always yields byte-identical output.
package prompt
