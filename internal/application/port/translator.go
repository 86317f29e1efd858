package port

// Translator looks up localized user-facing strings.
// Unknown keys are returned unchanged.
type Translator interface {
	Tr(key string) string
}

// TranslatorFunc adapts a plain function to Translator.
type TranslatorFunc func(key string) string

// Tr implements Translator.
func (f TranslatorFunc) Tr(key string) string {
	return f(key)
}
