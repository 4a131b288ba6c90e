package synthesis

import (
	"sort"

	"github.com/sashabaranov/go-openai"
)

// voiceStyles binds user-facing style names to provider voices.
var voiceStyles = map[string]openai.SpeechVoice{
	"narrator":    openai.VoiceOnyx,
	"warm":        openai.VoiceNova,
	"bright":      openai.VoiceShimmer,
	"calm":        openai.VoiceAlloy,
	"formal":      openai.VoiceEcho,
	"storyteller": openai.VoiceFable,
}

// supportedLanguages maps language codes accepted by the API to display
// names. The provider's voices speak the language of the input text;
// the code is validated here and recorded with each synthesis.
var supportedLanguages = map[string]string{
	"en": "English",
	"es": "Spanish",
	"fr": "French",
	"de": "German",
	"it": "Italian",
	"pt": "Portuguese",
	"hi": "Hindi",
	"ja": "Japanese",
	"ko": "Korean",
	"zh": "Mandarin Chinese",
	"ar": "Arabic",
	"ru": "Russian",
}

// VoiceStyles returns the accepted style names in sorted order.
func VoiceStyles() []string {
	names := make([]string, 0, len(voiceStyles))
	for name := range voiceStyles {
		names = append(names, name)
	}
	sort.Strings(names)

	return names
}

// Languages returns the accepted language codes in sorted order.
func Languages() []string {
	codes := make([]string, 0, len(supportedLanguages))
	for code := range supportedLanguages {
		codes = append(codes, code)
	}
	sort.Strings(codes)

	return codes
}
