package services

import (
	"strings"
	"sync"

	"github.com/pemistahl/lingua-go"
)

var (
	detector     lingua.LanguageDetector
	detectorOnce sync.Once
)

// DetectLanguage tags post content with an ISO 639-1 code. Returns an
// empty string when the language cannot be told apart.
func DetectLanguage(content string) string {
	if len(content) == 0 {
		return ""
	}

	detectorOnce.Do(func() {
		detector = lingua.NewLanguageDetectorBuilder().
			FromLanguages(
				lingua.English,
				lingua.Russian,
				lingua.Spanish,
				lingua.French,
				lingua.German,
				lingua.Chinese,
				lingua.Japanese,
			).
			Build()
	})

	if language, ok := detector.DetectLanguageOf(content); ok {
		return strings.ToLower(language.IsoCode639_1().String())
	}

	return ""
}
