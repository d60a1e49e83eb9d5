// Package service contains the application use cases behind the AI content
// routes. It coordinates the generation pipeline (internal/generation) with a
// provider adapter injected through the generation.Generator and
// generation.ModelCatalog interfaces, so it never depends on a specific
// provider SDK.
//
// EnhanceService is the only place where a failure may be replaced by
// degraded output: callers decide whether that is allowed via
// EnhanceServiceOptions.AllowDegraded, and the decision is reported in the
// result's Fallback flag. Every other failure reaches the API layer as the
// *generation.Error produced by the adapter.
package service
