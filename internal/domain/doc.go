// Package domain contains the core entities of the application: the
// structured concept explanation the language model is asked to produce,
// together with the rules for decoding and checking it. It has no knowledge
// of any provider, transport or configuration.
package domain
