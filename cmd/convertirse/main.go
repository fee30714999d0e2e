// Command convertirse converts source code between languages using AI.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/ZaguanLabs/convertirse"
	"github.com/ZaguanLabs/convertirse/cache"
	"github.com/ZaguanLabs/convertirse/provider"
)

// Build-time variables (can be overridden with ldflags)
var (
	version   = convertirse.Version
	commit    = convertirse.GitCommit
	buildDate = convertirse.BuildDate
)

func main() {
	if err := run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string, stdout, stderr io.Writer) error {
	fs := flag.NewFlagSet("convertirse", flag.ContinueOnError)
	fs.SetOutput(stderr)

	// Flags
	sourceLang := fs.String("source", "", "Source language (e.g., Python)")
	targetLang := fs.String("target", "", "Target language (e.g., Go)")
	output := fs.String("output", "", "Output file (default: stdout)")
	outputShort := fs.String("o", "", "Output file (short for --output)")
	apiKey := fs.String("api-key", "", "API key (default: GROQ_API_KEY or OPENAI_API_KEY env)")
	baseURL := fs.String("base-url", provider.GroqBaseURL, "OpenAI-compatible API base URL")
	model := fs.String("model", "", "Model to use (default depends on base URL)")
	temperature := fs.Float64("temperature", 0.2, "Sampling temperature (0.0-1.0)")
	maxTokens := fs.Int("max-tokens", 32768, "Maximum output tokens (1000-32768)")
	timeout := fs.Duration("timeout", 2*time.Minute, "Deadline for the model call (0 to disable)")
	cacheTTL := fs.Int("cache-ttl", 3600, "In-memory cache TTL in seconds (0 to disable caching)")
	cacheDB := fs.String("cache-db", "", "SQLite cache database path (persistent cache)")
	redisURL := fs.String("redis", "", "Redis URL for a shared cache (e.g., redis://localhost:6379)")
	rawOutput := fs.Bool("raw", false, "Print the raw model output instead of the extracted code")
	showVersion := fs.Bool("version", false, "Show version")
	quiet := fs.Bool("quiet", false, "Suppress progress output")
	jsonOutput := fs.Bool("json", false, "Output result as JSON")
	diffFile := fs.String("diff", "", "Compare input with a previous version and report whether re-conversion is needed")

	if err := fs.Parse(args); err != nil {
		return err
	}

	if *showVersion {
		fmt.Fprintf(stdout, "%s %s\n", convertirse.Name, version)
		if commit != "unknown" && commit != "" {
			fmt.Fprintf(stdout, "  commit:  %s\n", commit)
		}
		if buildDate != "unknown" && buildDate != "" {
			fmt.Fprintf(stdout, "  built:   %s\n", buildDate)
		}
		return nil
	}

	// Handle -o alias for --output
	if *outputShort != "" && *output == "" {
		*output = *outputShort
	}

	// Validate required flags
	if *sourceLang == "" || *targetLang == "" {
		fs.Usage()
		return fmt.Errorf("--source and --target are required (supported: %s)",
			strings.Join(convertirse.SupportedLanguages, ", "))
	}
	if !convertirse.IsSupported(*sourceLang) {
		return fmt.Errorf("unsupported source language %q (supported: %s)",
			*sourceLang, strings.Join(convertirse.SupportedLanguages, ", "))
	}
	if !convertirse.IsSupported(*targetLang) {
		return fmt.Errorf("unsupported target language %q (supported: %s)",
			*targetLang, strings.Join(convertirse.SupportedLanguages, ", "))
	}

	// Get input
	input, inputName, err := readInput(fs)
	if err != nil {
		return err
	}

	req := convertirse.ConversionRequest{
		SourceLang: *sourceLang,
		TargetLang: *targetLang,
		Code:       input,
	}

	// Handle diff mode
	if *diffFile != "" {
		return runDiff(req, *diffFile, inputName, stdout)
	}

	// Get API key
	key := *apiKey
	if key == "" {
		key = os.Getenv("GROQ_API_KEY")
	}
	if key == "" {
		key = os.Getenv("OPENAI_API_KEY")
	}
	if key == "" {
		return fmt.Errorf("API key required (--api-key, GROQ_API_KEY, or OPENAI_API_KEY env)")
	}

	// Create provider
	p, err := provider.NewOpenAIProvider(provider.OpenAIConfig{
		APIKey:  key,
		Model:   *model,
		BaseURL: *baseURL,
	})
	if err != nil {
		return err
	}

	// Wrap with retry
	retryable := convertirse.NewRetryableProvider(p, convertirse.DefaultRetryConfig())

	// Build options
	opts := []convertirse.ConverterOption{
		convertirse.WithConfig(convertirse.ConversionConfig{
			Temperature: float32(*temperature),
			MaxTokens:   *maxTokens,
		}),
		convertirse.WithTimeout(*timeout),
	}

	store, err := selectCache(*redisURL, *cacheDB, *cacheTTL)
	if err != nil {
		return err
	}
	if store != nil {
		opts = append(opts, convertirse.WithCache(store))
	}

	converter := convertirse.NewConverter(retryable, opts...)

	if !*quiet {
		fmt.Fprintf(stderr, "Converting %s from %s to %s...\n", inputName,
			convertirse.NormalizeLanguage(*sourceLang), convertirse.NormalizeLanguage(*targetLang))
	}

	start := time.Now()
	result, err := converter.Convert(context.Background(), req)
	if err != nil {
		return err
	}
	elapsed := time.Since(start)

	if *jsonOutput {
		return outputJSON(stdout, req, result, elapsed)
	}

	text := result.Code
	if *rawOutput || text == "" {
		text = result.Output
	}

	if *output != "" {
		if err := os.WriteFile(*output, []byte(text), 0644); err != nil {
			return fmt.Errorf("writing output: %w", err)
		}
	} else {
		fmt.Fprintln(stdout, text)
	}

	if !*quiet {
		if result.Cached {
			fmt.Fprintf(stderr, "Done in %v (cached).\n", elapsed.Round(time.Millisecond))
		} else {
			fmt.Fprintf(stderr, "Done in %v.\n", elapsed.Round(time.Millisecond))
		}
		if result.Summary != "" {
			fmt.Fprintf(stderr, "\n%s\n", result.Summary)
		}
	}

	return nil
}

// readInput reads the code snippet from the first positional argument or stdin.
func readInput(fs *flag.FlagSet) (string, string, error) {
	if fs.NArg() == 0 {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return "", "", fmt.Errorf("reading stdin: %w", err)
		}
		return string(data), "stdin", nil
	}

	inputPath := fs.Arg(0)
	data, err := os.ReadFile(inputPath) // #nosec G304 - CLI tool reads user-specified files
	if err != nil {
		return "", "", fmt.Errorf("reading file: %w", err)
	}
	return string(data), inputPath, nil
}

// selectCache picks the cache backend: Redis when a URL is given, SQLite
// when a database path is given, otherwise an in-memory cache (unless
// disabled with a zero TTL).
func selectCache(redisURL, cacheDB string, cacheTTL int) (convertirse.ConversionCache, error) {
	switch {
	case redisURL != "":
		store, err := cache.NewRedisCache(cache.RedisConfig{URL: redisURL, TTL: cacheTTL})
		if err != nil {
			return nil, fmt.Errorf("connecting to Redis: %w", err)
		}
		return store, nil
	case cacheDB != "":
		store, err := cache.NewSQLiteCache(cacheDB, time.Duration(cacheTTL)*time.Second)
		if err != nil {
			return nil, fmt.Errorf("opening cache database: %w", err)
		}
		return store, nil
	case cacheTTL > 0:
		return cache.NewInMemoryCache(cacheTTL), nil
	default:
		return nil, nil
	}
}

// runDiff compares the current input against a previous version of the same
// snippet and reports whether a fresh conversion is needed.
func runDiff(req convertirse.ConversionRequest, diffPath, inputName string, stdout io.Writer) error {
	oldData, err := os.ReadFile(diffPath) // #nosec G304 - CLI tool reads user-specified files
	if err != nil {
		return fmt.Errorf("reading diff file: %w", err)
	}

	oldReq := req
	oldReq.Code = string(oldData)

	diff := convertirse.DiffRequestsByName(
		map[string]convertirse.ConversionRequest{inputName: oldReq},
		map[string]convertirse.ConversionRequest{inputName: req},
	)

	if !diff.HasChanges() {
		fmt.Fprintf(stdout, "%s is unchanged; a cached conversion would be reused.\n", inputName)
		return nil
	}

	fmt.Fprintf(stdout, "%s changed since %s; re-conversion needed.\n", inputName, diffPath)
	fmt.Fprintf(stdout, "Run without --diff to perform the conversion.\n")
	return nil
}

// JSONOutput represents the JSON output format.
type JSONOutput struct {
	SourceLang  string `json:"source_lang"`
	TargetLang  string `json:"target_lang"`
	Fingerprint string `json:"fingerprint"`
	Cached      bool   `json:"cached"`
	Code        string `json:"code"`
	Summary     string `json:"summary,omitempty"`
	ElapsedMs   int64  `json:"elapsed_ms"`
}

// outputJSON writes the result as JSON.
func outputJSON(w io.Writer, req convertirse.ConversionRequest, result *convertirse.ConversionResult, elapsed time.Duration) error {
	out := JSONOutput{
		SourceLang:  convertirse.NormalizeLanguage(req.SourceLang),
		TargetLang:  convertirse.NormalizeLanguage(req.TargetLang),
		Fingerprint: result.Fingerprint,
		Cached:      result.Cached,
		Code:        result.Code,
		Summary:     result.Summary,
		ElapsedMs:   elapsed.Milliseconds(),
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}
