// Package generation holds the provider-independent half of the AI content
// pipeline: the Generator boundary to the LLM provider (Gemini), the closed
// error taxonomy, prompt construction, and the deterministic post-processing
// (sanitization, skill list parsing, degraded-mode text) that every provider
// response passes through before it reaches a caller.
package generation
