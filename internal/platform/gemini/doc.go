// Package gemini provides an implementation of the generation.TextGenerator
// interface backed by Google's Gemini API.
//
// This package is an infrastructure adapter in the hexagonal architecture,
// connecting the application's explanation pipeline to Google's external
// Gemini AI service. It translates between the application's provider-neutral
// generation.Config and the genai client types without exposing the details
// of the external service to the core application.
//
// Key components:
//
// 1. Generator:
//   - Implements the generation.TextGenerator interface
//   - Sends one GenerateContent request per call
//   - Extracts the text of the first candidate
//
// 2. Configuration mapping:
//   - Converts generation.Config into genai.GenerateContentConfig
//   - Converts generation.Schema into genai.Schema for structured output
//
// 3. Error Handling:
//   - Classifies API, network and context errors into the closed set of
//     generation sentinel errors
//   - Reports safety blocks and empty candidates explicitly
//
// The package depends on the google.golang.org/genai client library. It does
// not retry; every call is a single attempt.
package gemini
