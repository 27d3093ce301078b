// Package nlp holds the pure text services used by ingestion: title
// sanitization, subtitle cleaning, and module boundary detection. Everything
// here is deterministic and free of IO.
package nlp

import (
	"strings"
	"unicode"
)

// episodeMarkers are matched case-insensitively anywhere in the title. Each
// match is removed together with the trailing run of digits, '#', '-', ':' and
// spaces that usually follows it ("Tutorial #5 - ", "Part 2:").
var episodeMarkers = []string{
	"tutorial", "part", "episode", "ep.", "ep ", "lesson", "chapter", "section",
	"module", "lecture", "video",
}

// SanitizeTitle removes noise from a raw video title: episode markers,
// year/update tags, emoji, clickbait punctuation, and redundant whitespace.
// The result is deterministic and idempotent. A removal can expose new noise
// ("pEPisode ART" collapses to "part"), so the pipeline repeats until the
// string stops changing.
func SanitizeTitle(raw string) string {
	s := raw
	for {
		next := removeEpisodeMarkers(s)
		next = removeYearTags(next)
		next = removeEmojis(next)
		next = collapsePunctuation(next)
		next = normalizeWhitespace(next)
		if next == s {
			return s
		}
		s = next
	}
}

func removeEpisodeMarkers(text string) string {
	result := text
	for _, pattern := range episodeMarkers {
		for {
			start := indexASCIIFold(result, pattern)
			if start < 0 {
				break
			}
			end := markerEnd(result, start+len(pattern))
			result = result[:start] + result[end:]
		}
	}
	return result
}

// indexASCIIFold finds the first case-insensitive occurrence of an ASCII
// pattern. Matching byte-wise keeps offsets valid for strings whose lowercase
// form changes byte length (lowering them and indexing into the copy would cut
// multi-byte runes).
func indexASCIIFold(s, pattern string) int {
	for start := 0; start+len(pattern) <= len(s); start++ {
		match := true
		for i := 0; i < len(pattern); i++ {
			if asciiLower(s[start+i]) != pattern[i] {
				match = false
				break
			}
		}
		if match {
			return start
		}
	}
	return -1
}

func asciiLower(c byte) byte {
	if c >= 'A' && c <= 'Z' {
		return c + ('a' - 'A')
	}
	return c
}

// markerEnd extends past the marker over digits and the separators that tend to
// trail episode numbers.
func markerEnd(text string, start int) int {
	end := start
	for end < len(text) {
		c := text[end]
		if (c >= '0' && c <= '9') || c == '#' || c == '-' || c == ':' || c == ' ' {
			end++
		} else {
			break
		}
	}
	return end
}

// removeYearTags drops parenthesized or bracketed tags whose contents are
// purely digits/whitespace ("(2024)") or mention "update" ("[2023 Update]").
func removeYearTags(text string) string {
	var out strings.Builder
	runes := []rune(text)
	for i := 0; i < len(runes); i++ {
		c := runes[i]
		if c != '(' && c != '[' {
			out.WriteRune(c)
			continue
		}
		closer := ')'
		if c == '[' {
			closer = ']'
		}
		var inside []rune
		j := i + 1
		for ; j < len(runes); j++ {
			if runes[j] == closer {
				break
			}
			inside = append(inside, runes[j])
		}
		insideStr := string(inside)
		if !isNoiseTag(insideStr) {
			out.WriteRune(c)
			out.WriteString(insideStr)
			if j < len(runes) {
				out.WriteRune(closer)
			}
		}
		i = j
	}
	return out.String()
}

func isNoiseTag(inside string) bool {
	if strings.Contains(strings.ToLower(inside), "update") {
		return true
	}
	for _, r := range inside {
		if !unicode.IsDigit(r) && !unicode.IsSpace(r) {
			return false
		}
	}
	return true
}

// removeEmojis drops the emoji blocks U+1F600-U+1FAFF and U+2600-U+27BF,
// keeping ASCII and extended Latin.
func removeEmojis(text string) string {
	return strings.Map(func(r rune) rune {
		code := uint32(r)
		if (code >= 0x1F600 && code <= 0x1FAFF) || (code >= 0x2600 && code <= 0x27BF) {
			return -1
		}
		return r
	}, text)
}

// collapsePunctuation shortens runs of '!' or '?' longer than two into two.
func collapsePunctuation(text string) string {
	var out strings.Builder
	var last rune
	run := 0
	for _, c := range text {
		if c == '!' || c == '?' {
			if c == last {
				run++
			} else {
				run = 1
			}
			if run <= 2 {
				out.WriteRune(c)
			}
		} else {
			run = 0
		}
		last = c
		if c != '!' && c != '?' {
			out.WriteRune(c)
		}
	}
	return out.String()
}

func normalizeWhitespace(text string) string {
	return strings.Join(strings.Fields(text), " ")
}
