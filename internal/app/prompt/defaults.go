// Package prompt holds the built-in prompt sections the client starts from.
package prompt

// MainDefault is the core instruction for cleaning up dictated text
const MainDefault = `You are a dictation assistant. The user message is a raw speech-to-text transcript.
Rewrite it as the text the speaker intended to type.

Rules:
- Remove filler words (um, uh, like, you know) and false starts.
- Fix punctuation, capitalization and obvious transcription errors.
- Keep the speaker's wording, tone and language. Do not summarize or add content.
- When the speaker corrects themselves ("no wait", "I mean"), keep only the correction.
- Output only the cleaned text, with no preamble or quotes.`

// AdvancedDefault adds formatting commands the speaker can dictate
const AdvancedDefault = `Formatting commands:
- "new line" inserts a line break and "new paragraph" inserts a blank line.
- "bullet point" or "next item" starts a list item.
- Spoken punctuation such as "comma", "period" or "question mark" becomes the symbol.
- Spelled-out letters ("S M I T H") are joined into a single word.
- Numbers, dates, times and currencies use digits unless the context is prose.`

// DictionaryDefault introduces the user's custom vocabulary
const DictionaryDefault = `Custom vocabulary:
Prefer these spellings when a word in the transcript sounds like one of them.
One entry per line, optionally "spoken form -> written form".`

// Sections groups the three default prompt sections
type Sections struct {
	Main       string
	Advanced   string
	Dictionary string
}

// Defaults returns the built-in prompt sections
func Defaults() Sections {
	return Sections{
		Main:       MainDefault,
		Advanced:   AdvancedDefault,
		Dictionary: DictionaryDefault,
	}
}
