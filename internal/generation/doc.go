// Package generation defines the boundary between the application and
// external AI/LLM text generation services such as Gemini.
//
// The TextGenerator interface is the only capability the core needs from a
// provider: given a prompt and a Config, produce text or fail. Config and
// Schema are provider-neutral so that adapters (see platform/gemini) can be
// swapped or mocked without provider types leaking into the core.
//
// Provider failures are reported as errors wrapping one of the sentinels in
// errors.go, which ClassifyFailure maps onto the closed FailureKind set.
package generation
