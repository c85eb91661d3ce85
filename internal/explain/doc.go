// Package explain implements the concept explanation pipeline: it builds the
// prompt for a topic, calls the language model through a
// generation.TextGenerator, decodes the model's JSON answer and normalizes
// every outcome into an Envelope.
//
// An Envelope is either a Success carrying the decoded domain.ConceptAnswer
// or an Error carrying a flat ErrorKind, a human-readable detail and, for
// decoding failures, the raw model output. Both carry the elapsed wall-clock
// time of the call. No failure of the provider or of decoding ever escapes
// as a Go error or panic; callers always receive an Envelope.
package explain
