package utils

import "strings"

// ExtractScript strips the code fence from a model completion. The first
// go-tagged block wins; failing that, the first fenced block of any tag;
// failing that, the whole completion is taken verbatim. Best effort: a
// completion with several fenced blocks yields only the first match.
func ExtractScript(completion string) string {
	if block, ok := fencedBlock(completion, "go"); ok {
		return block
	}
	if block, ok := fencedBlock(completion, ""); ok {
		return block
	}
	return strings.TrimSpace(completion)
}

// fencedBlock returns the interior of the first ``` fence whose language tag
// equals lang; an empty lang accepts any tag. The tag is the rest of the
// opening line, so "go" does not match a "golang" fence, and the tag line is
// never part of the extracted block.
func fencedBlock(text, lang string) (string, bool) {
	rest := text
	for {
		start := strings.Index(rest, "```")
		if start == -1 {
			return "", false
		}
		rest = rest[start+3:]

		nl := strings.IndexByte(rest, '\n')
		if nl == -1 {
			return "", false
		}
		tag := strings.TrimSpace(rest[:nl])
		body := rest[nl+1:]

		end := strings.Index(body, "```")
		if end == -1 {
			return "", false
		}
		if lang == "" || tag == lang {
			return strings.TrimSpace(body[:end]), true
		}
		rest = body[end+3:]
	}
}
