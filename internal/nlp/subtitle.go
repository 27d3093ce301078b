package nlp

import (
	"strings"
	"unicode"
)

// vttHeaderPrefixes mark WebVTT header/metadata lines, matched case-insensitively.
var vttHeaderPrefixes = []string{"WEBVTT", "KIND:", "LANGUAGE:", "STYLE", "NOTE"}

// CleanSubtitles normalizes SRT or WebVTT content into plain running text:
// headers, cue indices, and timestamp lines are dropped, inline tags and speaker
// labels are stripped, whitespace is collapsed, and consecutive duplicate lines
// are removed. The kept lines are joined with single spaces.
func CleanSubtitles(raw string) string {
	normalized := strings.TrimPrefix(raw, "\uFEFF")

	var out []string
	prev := ""
	havePrev := false

	for _, line := range strings.Split(normalized, "\n") {
		line = strings.TrimSpace(strings.TrimSuffix(line, "\r"))
		if line == "" {
			continue
		}
		if isVTTHeader(line) || isCueIndex(line) || isTimestampLine(line) {
			continue
		}

		cleaned := stripInlineTags(line)
		cleaned = stripSpeakerLabel(cleaned)
		cleaned = normalizeWhitespace(cleaned)
		if cleaned == "" {
			continue
		}
		if havePrev && cleaned == prev {
			continue
		}
		prev = cleaned
		havePrev = true
		out = append(out, cleaned)
	}

	return strings.Join(out, " ")
}

func isVTTHeader(line string) bool {
	upper := strings.ToUpper(line)
	for _, prefix := range vttHeaderPrefixes {
		if strings.HasPrefix(upper, prefix) {
			return true
		}
	}
	return false
}

func isCueIndex(line string) bool {
	for _, r := range line {
		if !unicode.IsDigit(r) {
			return false
		}
	}
	return line != ""
}

// isTimestampLine matches cue timing lines: both sides of "-->" must parse as
// timecodes of the form HH:MM:SS[.,]mmm or MM:SS[.,]mmm. VTT cue settings after
// the end timecode are tolerated.
func isTimestampLine(line string) bool {
	if !strings.Contains(line, "-->") {
		return false
	}
	parts := strings.SplitN(line, "-->", 2)
	start := strings.TrimSpace(parts[0])
	end := strings.TrimSpace(parts[1])
	if fields := strings.Fields(end); len(fields) > 0 {
		end = fields[0]
	}
	return isTimecode(start) && isTimecode(end)
}

func isTimecode(value string) bool {
	v := strings.ReplaceAll(strings.TrimSpace(value), ",", ".")
	parts := strings.Split(v, ":")
	if len(parts) < 2 || len(parts) > 3 {
		return false
	}
	for _, part := range parts[:len(parts)-1] {
		if !isDigits(part) {
			return false
		}
	}
	secPart := parts[len(parts)-1]
	sec, millis, hasMillis := strings.Cut(secPart, ".")
	if !isDigits(sec) {
		return false
	}
	if hasMillis && !isDigits(millis) {
		return false
	}
	return true
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if !unicode.IsDigit(r) {
			return false
		}
	}
	return true
}

// stripInlineTags removes angle-bracket tags such as <i> or VTT <c> cues.
func stripInlineTags(line string) string {
	if !strings.Contains(line, "<") {
		return line
	}
	var out strings.Builder
	inTag := false
	for _, c := range line {
		switch {
		case c == '<':
			inTag = true
		case c == '>':
			inTag = false
		case !inTag:
			out.WriteRune(c)
		}
	}
	return out.String()
}

// stripSpeakerLabel removes leading speaker markers: ">> ...", "[NAME]: ..."
// and "NAME: ..." where NAME is all-uppercase and at most 24 characters.
func stripSpeakerLabel(line string) string {
	trimmed := strings.TrimSpace(line)

	if rest, ok := strings.CutPrefix(trimmed, ">>"); ok {
		return strings.TrimSpace(rest)
	}

	if strings.HasPrefix(trimmed, "[") {
		if close := strings.Index(trimmed, "]"); close > 0 && close <= 25 {
			rest := trimmed[close+1:]
			if after, ok := strings.CutPrefix(strings.TrimSpace(rest), ":"); ok {
				return strings.TrimSpace(after)
			}
		}
		return trimmed
	}

	if colon := strings.Index(trimmed, ":"); colon > 0 && colon <= 24 {
		name := trimmed[:colon]
		if isAllUppercase(name) {
			return strings.TrimSpace(trimmed[colon+1:])
		}
	}

	return trimmed
}

func isAllUppercase(s string) bool {
	hasLetter := false
	for _, r := range s {
		if unicode.IsLower(r) {
			return false
		}
		if unicode.IsLetter(r) {
			hasLetter = true
		}
	}
	return hasLetter
}
