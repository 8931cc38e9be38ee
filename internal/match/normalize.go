package match

import (
	"strings"
	"unicode"
)

// NormalizeIdent lowercases an identifier and drops separators, so that
// "ClOrdID", "cl_ord_id" and "Cl-Ord-Id" compare equal.
func NormalizeIdent(s string) string {
	return strings.Join(TokenizeIdent(s), "")
}

// NormalizeGroupIdent additionally drops the leading "No" token that count
// fields of repeating groups carry, so "NoPartyIDs" matches "PartyIDs".
func NormalizeGroupIdent(s string) string {
	tokens := TokenizeIdent(s)
	if len(tokens) > 1 && tokens[0] == "no" {
		tokens = tokens[1:]
	}

	return strings.Join(tokens, "")
}

// TokenizeIdent splits an identifier into lowercase tokens.
//   - "OrderID" -> ["order", "id"]
//   - "NoPartySubIDs" -> ["no", "party", "sub", "i", "ds"]
//   - "XMLData" -> ["xml", "data"]
func TokenizeIdent(s string) []string {
	tokens := tokenizeCamelCase(s)
	for i, t := range tokens {
		tokens[i] = strings.ToLower(t)
	}

	return tokens
}

func tokenizeCamelCase(s string) []string {
	if s == "" {
		return nil
	}

	var (
		tokens  []string
		current strings.Builder
	)

	flush := func() {
		if current.Len() > 0 {
			tokens = append(tokens, current.String())
			current.Reset()
		}
	}

	runes := []rune(s)
	for i, r := range runes {
		if isSeparator(r) {
			flush()
			continue
		}

		if i > 0 && startsToken(runes, i) {
			flush()
		}

		current.WriteRune(r)
	}

	flush()

	return tokens
}

func isSeparator(r rune) bool {
	return r == '_' || r == '-' || r == ' ' || r == '.'
}

// startsToken reports whether runes[i] opens a new CamelCase token.
func startsToken(runes []rune, i int) bool {
	r, prev := runes[i], runes[i-1]
	if !unicode.IsUpper(r) || isSeparator(prev) {
		return false
	}

	// "orderID": lower to upper
	if !unicode.IsUpper(prev) {
		return true
	}

	// "XMLParser": the last capital of an acronym starts the next word
	return i+1 < len(runes) && unicode.IsLower(runes[i+1])
}
