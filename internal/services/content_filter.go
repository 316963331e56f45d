package services

import (
	"regexp"
	"sync"
)

// FilteredPlaceholder replaces free text that failed the content filter.
const FilteredPlaceholder = "[content filtered]"

var bannedWords = []string{
	"fuck", "fucking", "fucker", "shit", "shitty", "bullshit",
	"ass", "asshole", "bastard", "bitch", "cunt",
	"nigger", "nigga", "chink", "spic", "kike", "faggot", "fag",
	"retard", "retarded", "tranny",
	"porn", "porno", "nude", "nudes",
	"spam", "scam", "scammer", "phishing", "malware",
}

// ContentFilter screens user-supplied free text (mood context, completion
// notes) for profanity, links and contact info. Flagged text is replaced,
// never rejected.
type ContentFilter struct {
	bannedWordRegexps []*regexp.Regexp
	urlPattern        *regexp.Regexp
	emailPattern      *regexp.Regexp
	phonePattern      *regexp.Regexp
	mu                sync.RWMutex
}

func NewContentFilter() *ContentFilter {
	cf := &ContentFilter{}
	cf.compilePatterns()
	return cf
}

func (cf *ContentFilter) compilePatterns() {
	cf.mu.Lock()
	defer cf.mu.Unlock()

	cf.bannedWordRegexps = make([]*regexp.Regexp, 0, len(bannedWords))
	for _, word := range bannedWords {
		pattern := `(?i)\b` + regexp.QuoteMeta(word) + `\b`
		if re, err := regexp.Compile(pattern); err == nil {
			cf.bannedWordRegexps = append(cf.bannedWordRegexps, re)
		}
	}

	cf.urlPattern = regexp.MustCompile(`(?i)(https?://\S+|www\.\S+\.\S+)`)
	cf.emailPattern = regexp.MustCompile(`(?i)\b[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Z|a-z]{2,}\b`)
	cf.phonePattern = regexp.MustCompile(`\d{3}[-.\s]?\d{3}[-.\s]?\d{4}|\(\d{3}\)\s*\d{3}[-.\s]?\d{4}`)
}

// IsClean reports whether text passes the filter.
func (cf *ContentFilter) IsClean(text string) bool {
	cf.mu.RLock()
	defer cf.mu.RUnlock()
	if text == "" {
		return true
	}
	for _, re := range cf.bannedWordRegexps {
		if re.MatchString(text) {
			return false
		}
	}
	if cf.urlPattern.MatchString(text) {
		return false
	}
	if cf.emailPattern.MatchString(text) {
		return false
	}
	if cf.phonePattern.MatchString(text) {
		return false
	}
	return true
}

// Sanitize returns the text unchanged when clean, or the placeholder.
func (cf *ContentFilter) Sanitize(text string) string {
	if cf.IsClean(text) {
		return text
	}
	return FilteredPlaceholder
}
