package analyzer

import (
	"regexp"
	"strings"
	"sync"
	"unicode/utf8"
)

// UsageDetector decides whether a name is referenced by a project's source corpus.
type UsageDetector interface {
	// PackageUsed reports whether the package name appears to be used.
	PackageUsed(name, corpus string) bool

	// ProjectUsed reports whether the referenced project's name appears to be used.
	ProjectUsed(name, corpus string) bool
}

// HeuristicDetector matches names as whole words in raw source text.
//
// It does not parse using directives or resolve types: a package consumed
// only by a source generator, an analyzer or reflection looks unused, and an
// unrelated identifier equal to a name segment makes a package look used.
type HeuristicDetector struct {
	minSegmentLength int

	mu       sync.Mutex
	patterns map[string]*regexp.Regexp
}

// NewHeuristicDetector creates a detector that tries package name segments of at
// least minSegmentLength characters before the full name.
func NewHeuristicDetector(minSegmentLength int) *HeuristicDetector {
	return &HeuristicDetector{
		minSegmentLength: minSegmentLength,
		patterns:         make(map[string]*regexp.Regexp),
	}
}

// PackageUsed reports whether a dot-separated segment of name, or name itself,
// occurs as a whole word in corpus.
func (d *HeuristicDetector) PackageUsed(name, corpus string) bool {
	for _, part := range strings.Split(name, ".") {
		if utf8.RuneCountInString(part) >= d.minSegmentLength && d.containsWord(corpus, part) {
			return true
		}
	}
	return d.containsWord(corpus, name)
}

// ProjectUsed reports whether name occurs as a whole word in corpus.
func (d *HeuristicDetector) ProjectUsed(name, corpus string) bool {
	return d.containsWord(corpus, name)
}

func (d *HeuristicDetector) containsWord(corpus, word string) bool {
	if word == "" {
		return false
	}
	return d.wordPattern(word).MatchString(corpus)
}

// wordPattern returns the whole-word pattern for word, compiled once per detector.
func (d *HeuristicDetector) wordPattern(word string) *regexp.Regexp {
	d.mu.Lock()
	defer d.mu.Unlock()

	if re, ok := d.patterns[word]; ok {
		return re
	}
	if d.patterns == nil {
		d.patterns = make(map[string]*regexp.Regexp)
	}
	re := regexp.MustCompile(`\b` + regexp.QuoteMeta(word) + `\b`)
	d.patterns[word] = re
	return re
}
