package gallery

import "strings"

const separator = "and"

// ParseQuery splits a query such as "Poodle AND corgi" into breed tokens.
// Tokens are lowercased, split on the standalone word "and", trimmed and
// deduplicated in first-seen order. Words inside one token are joined with
// a hyphen, the form sub-breeds take. Empty tokens are dropped.
func ParseQuery(raw string) []string {
	fields := strings.Fields(strings.ToLower(raw))

	var (
		tokens  []string
		seen    = make(map[string]struct{})
		current []string
	)

	flush := func() {
		token := strings.Join(current, "-")
		current = current[:0]
		if token == "" {
			return
		}
		if _, ok := seen[token]; ok {
			return
		}
		seen[token] = struct{}{}
		tokens = append(tokens, token)
	}

	for _, field := range fields {
		if field == separator {
			flush()
			continue
		}
		current = append(current, field)
	}
	flush()

	return tokens
}
