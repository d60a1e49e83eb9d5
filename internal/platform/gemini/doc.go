// Package gemini provides the Google Gemini implementation of the
// generation.Generator interface.
//
// This package is an infrastructure adapter in the hexagonal architecture,
// connecting the application's AI content pipeline to the external Gemini
// service without exposing SDK types to the rest of the application.
//
// Key components:
//
// 1. Client:
//   - Implements generation.Generator with a single GenerateContent call
//   - Applies fixed sampling parameters and the caller's token ceiling
//   - Reports an unconfigured credential as CONFIG_MISSING without any I/O
//
// 2. ModelCatalog:
//   - Discovers the models usable with the credential once per process
//   - Picks the first preferred model that is available
//   - Shares concurrent first discovery through a singleflight group
//
// 3. Classify:
//   - Translates raw provider failures into the closed generation.Error
//     taxonomy; this is the only place that knows Gemini's error wording
//
// The package depends on google.golang.org/genai for communicating with the
// Gemini API.
package gemini
