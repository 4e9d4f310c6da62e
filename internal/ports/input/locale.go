package input

import (
	"context"

	"vimlearn/internal/domain/entities"
)

type LocaleUseCase interface {
	Locale() string
	Available() []entities.Locale
	SetLocale(ctx context.Context, code string)
	Subscribe(fn func(code string)) func()
}

type TranslationUseCase interface {
	T(key string) string
	Tf(key string, data map[string]any) string
}
