package convertirse

import "strings"

// promptTemplate is the fixed instruction template for code conversion.
// The template text is configuration data, not logic; any wording works as
// long as it names both languages, embeds the code, states conversion
// guidelines, and requests output fenced as a target-language code block.
const promptTemplate = `You are an expert programmer with extensive experience in multiple programming languages and paradigms. Your task is to convert the given code from {{source}} to {{target}} with high accuracy and adherence to best practices.

Source Language: {{source}}
Target Language: {{target}}

Original Code:
` + "```{{source_fence}}\n{{code}}\n```" + `

Follow these guidelines for the conversion:

1. Structure and Logic: maintain the overall structure and logic of the original code. If {{target}} requires significant structural changes, explain them in comments.
2. Idioms and Best Practices: use idiomatic expressions, coding conventions, and design patterns appropriate for {{target}}.
3. Comments and Documentation: preserve existing comments, translating them where necessary, and add explanatory comments for non-obvious conversions.
4. Dependencies and Imports: include all import statements or module inclusions required by the converted code, and note any external libraries that must be installed.
5. Error Handling and Validation: implement error handling and input validation appropriate for {{target}}.
6. Completeness: ensure the converted code is complete, correct, and ready to run. If the source is incomplete or contains errors, make reasonable assumptions and note them in comments.

Provide the converted code in a single {{target}} code block:

` + "```{{target_fence}}\n// Converted code here\n```" + `

After the code block, provide a brief summary of the major changes, any assumptions made, and any additional steps required to run the converted code.`

// BuildPrompt validates the request and substitutes its fields into the
// conversion instruction template. Pure function of its inputs; fails with
// a *ValidationError and makes no external calls.
func BuildPrompt(req ConversionRequest) (string, error) {
	if err := req.Validate(); err != nil {
		return "", err
	}

	source := NormalizeLanguage(req.SourceLang)
	target := NormalizeLanguage(req.TargetLang)

	replacer := strings.NewReplacer(
		"{{source}}", source,
		"{{target}}", target,
		"{{source_fence}}", FenceName(source),
		"{{target_fence}}", FenceName(target),
		"{{code}}", strings.TrimSpace(req.Code),
	)

	return replacer.Replace(promptTemplate), nil
}
