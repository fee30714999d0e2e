// Package provider defines the AI provider interface and implementations.
package provider

import "github.com/ZaguanLabs/convertirse"

// AIProvider is the interface for AI text-generation backends.
// This is an alias to the main package interface for convenience.
type AIProvider = convertirse.AIProvider

// GenerationRequest is an alias to the main package type.
type GenerationRequest = convertirse.GenerationRequest
