// Package langdetect wraps language identification for extracted document
// text. Detection is statistical and needs a reasonable amount of text to be
// reliable; callers gate on sample length before asking.
package langdetect

import (
	"fmt"
	"strings"
	"sync"

	"github.com/pemistahl/lingua-go"
)

var (
	detectorOnce sync.Once
	detector     lingua.LanguageDetector
)

// buildDetector constructs the shared detector. Model load is expensive, so
// it happens once per process on first use.
func buildDetector() lingua.LanguageDetector {
	detectorOnce.Do(func() {
		detector = lingua.NewLanguageDetectorBuilder().
			FromAllLanguages().
			Build()
	})
	return detector
}

// Detect returns the lowercase ISO 639-1 code of the most likely language of
// the given text, or an error when the text carries no usable signal.
func Detect(text string) (string, error) {
	lang, ok := buildDetector().DetectLanguageOf(text)
	if !ok {
		return "", fmt.Errorf("language could not be determined")
	}
	return strings.ToLower(lang.IsoCode639_1().String()), nil
}
