package messages

import "golang.org/x/text/language"

// maxAcceptLanguageLength bounds the header size accepted for negotiation.
const maxAcceptLanguageLength = 4096

// Match negotiates the best known language for an Accept-Language header
// value. It returns the default language when the header is empty,
// malformed or matches nothing.
func (c *Catalog) Match(acceptLanguage string) string {
	if len(acceptLanguage) > maxAcceptLanguageLength {
		acceptLanguage = acceptLanguage[:maxAcceptLanguageLength]
	}

	c.mu.RLock()
	defer c.mu.RUnlock()

	fallback := c.langs[0]
	if acceptLanguage == "" {
		return fallback
	}

	tags, _, err := language.ParseAcceptLanguage(acceptLanguage)
	if err != nil || len(tags) == 0 {
		return fallback
	}

	_, index, confidence := c.matcher.Match(tags...)
	if confidence == language.No || index < 0 || index >= len(c.langs) {
		return fallback
	}
	return c.langs[index]
}
