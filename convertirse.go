// Package convertirse provides an AI-powered source code conversion engine.
//
// Convertirse converts code snippets between programming languages using
// AI providers (Groq, OpenAI, or any compatible backend) with response
// caching keyed by a fingerprint of the conversion request.
//
// Basic usage:
//
//	import (
//	    "context"
//	    "github.com/ZaguanLabs/convertirse"
//	    "github.com/ZaguanLabs/convertirse/cache"
//	    "github.com/ZaguanLabs/convertirse/provider"
//	)
//
//	func main() {
//	    // Create provider
//	    p, err := provider.NewOpenAIProvider(provider.OpenAIConfig{
//	        APIKey: os.Getenv("GROQ_API_KEY"),
//	        BaseURL: provider.GroqBaseURL,
//	    })
//	    if err != nil {
//	        log.Fatal(err)
//	    }
//
//	    // Create converter
//	    c := convertirse.NewConverter(p,
//	        convertirse.WithCache(cache.NewInMemoryCache(3600)),
//	    )
//
//	    // Convert code
//	    result, err := c.Convert(context.Background(), convertirse.ConversionRequest{
//	        SourceLang: "Python",
//	        TargetLang: "Go",
//	        Code:       "def add(a, b):\n    return a + b",
//	    })
//	    if err != nil {
//	        log.Fatal(err)
//	    }
//	    fmt.Println(result.Code)
//	}
package convertirse
