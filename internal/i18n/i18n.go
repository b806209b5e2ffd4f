// Package i18n translates user-facing API messages. Spanish is the default
// locale, English is also available.
package i18n

import (
	"sync"

	"github.com/gin-gonic/gin"
	"golang.org/x/text/language"
)

const (
	// DefaultLocale is used when the client states no supported language.
	DefaultLocale = "es"
	// AcceptLanguageHeader is the HTTP header name for language preference.
	AcceptLanguageHeader = "Accept-Language"
)

var (
	defaultTranslator *Translator
	translatorOnce    sync.Once

	supportedLocales = []string{"es", "en"}
	localeMatcher    = language.NewMatcher([]language.Tag{language.Spanish, language.English})
)

// Translator handles message translation for different locales.
type Translator struct {
	messages map[string]map[string]string
}

// NewTranslator creates a new translator with the default messages.
func NewTranslator() *Translator {
	return &Translator{
		messages: defaultMessages(),
	}
}

// GetTranslator returns the shared translator.
func GetTranslator() *Translator {
	translatorOnce.Do(func() {
		defaultTranslator = NewTranslator()
	})
	return defaultTranslator
}

// Translate returns the message for key in locale, falling back to
// DefaultLocale and finally to the key itself.
func (t *Translator) Translate(key, locale string) string {
	if msgs, ok := t.messages[locale]; ok {
		if msg, ok := msgs[key]; ok {
			return msg
		}
	}
	if msg, ok := t.messages[DefaultLocale][key]; ok {
		return msg
	}
	return key
}

// GetLocale picks the best supported locale from the Accept-Language header.
func GetLocale(c *gin.Context) string {
	header := c.GetHeader(AcceptLanguageHeader)
	if header == "" {
		return DefaultLocale
	}

	tags, _, err := language.ParseAcceptLanguage(header)
	if err != nil || len(tags) == 0 {
		return DefaultLocale
	}

	_, index, confidence := localeMatcher.Match(tags...)
	if confidence == language.No {
		return DefaultLocale
	}
	return supportedLocales[index]
}

func defaultMessages() map[string]map[string]string {
	return map[string]map[string]string{
		"es": {
			ErrKeyInvalidRequest:     "Solicitud inválida",
			ErrKeyInvalidRequestBody: "Cuerpo de la solicitud inválido",
			ErrKeyInternalError:      "Ocurrió un error inesperado",
			ErrKeyNotFound:           "No encontrado",
			ErrKeyRateLimitExceeded:  "Demasiadas solicitudes, intenta de nuevo más tarde",
			ErrKeyTimeout:            "La solicitud tardó demasiado",
			ErrKeyProductNotFound:    "Producto no encontrado",
			ErrKeyValidationQuantity: "quantity: se requiere quantity o input",
			ErrKeyValidationClient:   "tier: se requiere un tipo de cliente o un nombre válido",
			ErrKeyExportFailed:       "No se pudo generar la exportación",
		},
		"en": {
			ErrKeyInvalidRequest:     "Invalid request",
			ErrKeyInvalidRequestBody: "Invalid request body",
			ErrKeyInternalError:      "An unexpected error occurred",
			ErrKeyNotFound:           "Not found",
			ErrKeyRateLimitExceeded:  "Too many requests, please try again later",
			ErrKeyTimeout:            "Request timed out",
			ErrKeyProductNotFound:    "Product not found",
			ErrKeyValidationQuantity: "quantity: quantity or input is required",
			ErrKeyValidationClient:   "tier: a client tier or name is required",
			ErrKeyExportFailed:       "The export could not be generated",
		},
	}
}
