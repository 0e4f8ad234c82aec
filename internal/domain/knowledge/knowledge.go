package knowledge

import (
	_ "embed"
	"os"
	"regexp"
	"strings"
	"unicode"
)

var (
	//go:embed about_company.md
	defaultAbout string

	//go:embed leadership_team.md
	defaultLeadership string
)

var questionHeading = regexp.MustCompile(`(?m)^##\s*Q\d+:\s*(.+)$`)

// Entry is one question and answer of the company FAQ.
type Entry struct {
	Question string
	Answer   string
}

// Base is the read-only company knowledge: an FAQ split into entries and the
// leadership team sheet.
type Base struct {
	entries    []Entry
	leadership string
}

// Default returns the built-in company knowledge.
func Default() *Base {
	return New(defaultAbout, defaultLeadership)
}

// New parses an FAQ written as "## Q<n>: question" headings, each followed by
// its answer.
func New(about, leadership string) *Base {
	b := &Base{leadership: strings.TrimSpace(leadership)}

	headings := questionHeading.FindAllStringSubmatchIndex(about, -1)
	for i, h := range headings {
		end := len(about)
		if i+1 < len(headings) {
			end = headings[i+1][0]
		}
		b.entries = append(b.entries, Entry{
			Question: strings.TrimSpace(about[h[2]:h[3]]),
			Answer:   strings.TrimSpace(about[h[1]:end]),
		})
	}
	return b
}

// LoadFiles reads the FAQ and leadership sheet from disk. An empty path keeps
// the built-in text for that part.
func LoadFiles(aboutPath, leadershipPath string) (*Base, error) {
	about, leadership := defaultAbout, defaultLeadership
	if aboutPath != "" {
		raw, err := os.ReadFile(aboutPath)
		if err != nil {
			return nil, err
		}
		about = string(raw)
	}
	if leadershipPath != "" {
		raw, err := os.ReadFile(leadershipPath)
		if err != nil {
			return nil, err
		}
		leadership = string(raw)
	}
	return New(about, leadership), nil
}

func (b *Base) Questions() []string {
	out := make([]string, 0, len(b.entries))
	for _, e := range b.entries {
		out = append(out, e.Question)
	}
	return out
}

func (b *Base) Leadership() string {
	return b.leadership
}

// Lookup returns the entry sharing the most keywords with query. Question
// words weigh more than answer words; ties go to the earlier entry.
func (b *Base) Lookup(query string) (Entry, bool) {
	terms := keywords(query)
	if len(terms) == 0 {
		return Entry{}, false
	}

	best, bestScore := -1, 0
	for i, e := range b.entries {
		question, answer := keywordSet(e.Question), keywordSet(e.Answer)
		score := 0
		for _, t := range terms {
			if _, ok := question[t]; ok {
				score += 3
			}
			if _, ok := answer[t]; ok {
				score++
			}
		}
		if score > bestScore {
			best, bestScore = i, score
		}
	}
	if best < 0 {
		return Entry{}, false
	}
	return b.entries[best], true
}

var stopwords = map[string]struct{}{
	"the": {}, "and": {}, "are": {}, "you": {}, "your": {}, "our": {}, "for": {}, "with": {},
	"what": {}, "which": {}, "when": {}, "how": {}, "who": {}, "does": {}, "can": {}, "tell": {},
	"about": {}, "this": {}, "that": {}, "from": {}, "have": {}, "any": {}, "all": {}, "there": {},
	"mayfairtech": {}, "company": {}, "please": {}, "know": {}, "want": {}, "would": {}, "like": {},
}

func keywords(s string) []string {
	fields := strings.FieldsFunc(strings.ToLower(s), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
	out := make([]string, 0, len(fields))
	for _, f := range fields {
		if len(f) < 3 {
			continue
		}
		if _, stop := stopwords[f]; stop {
			continue
		}
		out = append(out, stem(f))
	}
	return out
}

func keywordSet(s string) map[string]struct{} {
	set := make(map[string]struct{})
	for _, k := range keywords(s) {
		set[k] = struct{}{}
	}
	return set
}

// stem folds simple plurals so "returns" matches "return".
func stem(w string) string {
	switch {
	case len(w) > 4 && strings.HasSuffix(w, "ies"):
		return w[:len(w)-3] + "y"
	case len(w) > 3 && strings.HasSuffix(w, "s") && !strings.HasSuffix(w, "ss"):
		return w[:len(w)-1]
	}
	return w
}
