package speech

import (
	"regexp"
	"strings"
)

// numberPattern recognizes grouped numbers with an optional leading currency
// symbol, optional two-digit decimal and optional trailing percent sign.
var numberPattern = regexp.MustCompile(`\$?([0-9]{1,3}(,[0-9]{3})*|[0-9]+)(\.[0-9][0-9])?%?`)

// currencyPattern recognizes the same numeric token followed by whitespace;
// matches already preceded by a currency symbol are skipped by the caller.
var currencyPattern = regexp.MustCompile(`([0-9]{1,3}(,[0-9]{3})*|[0-9]+)(\.[0-9][0-9])?\s`)

// MarkupNumbers wraps each numeric token in say-as markup so the synthesizer
// pronounces digits and punctuation correctly, then wraps the whole message
// in a speak tag. Each distinct literal match is replaced once, globally:
// identical numeric substrings collapse into a single replacement pass.
func MarkupNumbers(message string) string {
	for _, match := range distinctMatches(numberPattern.FindAllString(message, -1)) {
		message = strings.ReplaceAll(message, match, `<say-as interpret-as="unit">`+match+`</say-as>`)
	}
	return "<speak>" + message + "</speak>"
}

// InsertCurrencySymbol prefixes trailing numeric tokens with a dollar sign.
// Applied only on the tuition message path.
func InsertCurrencySymbol(message string) string {
	var matches []string
	for _, loc := range currencyPattern.FindAllStringIndex(message, -1) {
		if loc[0] > 0 && message[loc[0]-1] == '$' {
			continue
		}
		matches = append(matches, message[loc[0]:loc[1]])
	}
	for _, match := range distinctMatches(matches) {
		message = strings.ReplaceAll(message, match, "$"+match)
	}
	return message
}

func distinctMatches(all []string) []string {
	seen := make(map[string]struct{}, len(all))
	out := make([]string, 0, len(all))
	for _, m := range all {
		if _, ok := seen[m]; ok {
			continue
		}
		seen[m] = struct{}{}
		out = append(out, m)
	}
	return out
}
