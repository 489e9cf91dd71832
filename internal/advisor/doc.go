// Package advisor produces farming recommendations for a farmer profile.
//
// A Provider asks a text-generation service for advice and decodes the reply
// into a model.RecommendationSet. When no service is configured, or the call
// fails, or the reply cannot be decoded, the deterministic template generator
// in fallback.go is used instead. Generate never returns an error.
package advisor
