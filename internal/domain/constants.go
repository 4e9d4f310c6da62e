package domain

import "time"

const (
	// DefaultLocale is used when no preference has been persisted.
	DefaultLocale = "uk"
	// FallbackLocale owns the complete translation table.
	FallbackLocale = "uk"
	// LocalePreferenceKey names the persisted locale preference.
	LocalePreferenceKey = "vim-learn-locale"
)

const (
	// ScrollStep is the j/k scroll distance in pixels.
	ScrollStep = 100
	// SequenceTimeout bounds the delay between the two keys of gg.
	SequenceTimeout = 500 * time.Millisecond
)
