// Package i18n translates user-facing messages for the inventory optimizer API.
package i18n

import (
	"strings"
	"sync"

	"github.com/gin-gonic/gin"
)

const (
	// DefaultLocale is the default language locale (English).
	DefaultLocale = "en"
	// AcceptLanguageHeader is the HTTP header name for language preference.
	AcceptLanguageHeader = "Accept-Language"
)

var (
	// defaultTranslator is the singleton translator instance.
	defaultTranslator *Translator
	translatorOnce    sync.Once
)

// Translator handles message translation for different locales.
type Translator struct {
	messages map[string]map[string]string
}

// NewTranslator creates a new translator with the default messages.
func NewTranslator() *Translator {
	return &Translator{
		messages: getDefaultMessages(),
	}
}

// GetTranslator returns the default singleton translator instance.
func GetTranslator() *Translator {
	translatorOnce.Do(func() {
		defaultTranslator = NewTranslator()
	})
	return defaultTranslator
}

// Translate returns the message for key in locale, falling back to
// DefaultLocale and finally to the key itself.
func (t *Translator) Translate(key, locale string) string {
	for _, l := range []string{locale, DefaultLocale} {
		if msg, ok := t.messages[l][key]; ok {
			return msg
		}
	}
	return key
}

// Supports reports whether the locale has its own message table.
func (t *Translator) Supports(locale string) bool {
	_, ok := t.messages[locale]
	return ok
}

// GetLocale picks the first supported language from the Accept-Language
// header, in the order the client listed them. Quality values are ignored.
func GetLocale(c *gin.Context) string {
	for _, part := range strings.Split(c.GetHeader(AcceptLanguageHeader), ",") {
		lang, _, _ := strings.Cut(part, ";")
		lang, _, _ = strings.Cut(strings.TrimSpace(lang), "-")
		lang = strings.ToLower(lang)
		if lang != "" && GetTranslator().Supports(lang) {
			return lang
		}
	}
	return DefaultLocale
}

func getDefaultMessages() map[string]map[string]string {
	return map[string]map[string]string{
		"en": {
			"error.invalid_request":            "Invalid request",
			"error.invalid_request_body":       "Invalid request body",
			"error.internal_error":             "An unexpected error occurred",
			"error.unauthorized":               "Unauthorized",
			"error.api_key_required":           "API key is required",
			"error.invalid_api_key":            "Invalid API key",
			"error.not_found":                  "Not found",
			"error.rate_limit_exceeded":        "Too many requests, please try again later",
			"error.invalid_token":              "Invalid or expired token",
			"error.token_required":             "Authentication token is required",
			"error.timeout":                    "The request took too long to complete",
			"error.service_unavailable":        "The database is disabled or unreachable",
			"error.validation.consumption":     "consumption: must be a non-empty list of non-negative integers",
			"error.validation.cost_params":     "Cost parameters must be finite, non-negative numbers",
			"error.validation.initial_stock":   "initial_stock: must be between 0 and the storage capacity",
			"error.validation.step":            "step: must be a positive integer",
			"error.validation.capacity_factor": "capacity_factor: must be a positive integer",
			"error.validation.algorithm":       "algorithm: must be one of topdown, bottomup, both",
			"error.validation.days":            "days: must be a positive integer",
			"error.validation.generator":       "Invalid generator options",
			"error.horizon_too_long":           "The planning horizon is longer than this server allows",
			"error.capacity_too_large":         "Peak consumption times capacity_factor is larger than this server allows",
			"error.solver_divergence":          "The solvers disagreed on the minimum cost",
			"error.no_cost_profile":            "No cost profile has been stored yet",

			"success.plan_computed": "Reorder plan computed successfully",
		},
		"pt": {
			"error.invalid_request":            "Requisição inválida",
			"error.invalid_request_body":       "Corpo da requisição inválido",
			"error.internal_error":             "Ocorreu um erro inesperado",
			"error.unauthorized":               "Não autorizado",
			"error.api_key_required":           "Chave de API é obrigatória",
			"error.invalid_api_key":            "Chave de API inválida",
			"error.not_found":                  "Não encontrado",
			"error.rate_limit_exceeded":        "Muitas requisições, tente novamente mais tarde",
			"error.invalid_token":              "Token inválido ou expirado",
			"error.token_required":             "Token de autenticação é obrigatório",
			"error.timeout":                    "A requisição demorou demais para ser concluída",
			"error.service_unavailable":        "O banco de dados está desativado ou inacessível",
			"error.validation.consumption":     "consumption: deve ser uma lista não vazia de inteiros não negativos",
			"error.validation.cost_params":     "Os parâmetros de custo devem ser números finitos e não negativos",
			"error.validation.initial_stock":   "initial_stock: deve estar entre 0 e a capacidade de armazenamento",
			"error.validation.step":            "step: deve ser um inteiro positivo",
			"error.validation.capacity_factor": "capacity_factor: deve ser um inteiro positivo",
			"error.validation.algorithm":       "algorithm: deve ser topdown, bottomup ou both",
			"error.validation.days":            "days: deve ser um inteiro positivo",
			"error.validation.generator":       "Opções do gerador inválidas",
			"error.horizon_too_long":           "O horizonte de planejamento excede o limite do servidor",
			"error.capacity_too_large":         "O consumo máximo vezes capacity_factor excede o limite do servidor",
			"error.solver_divergence":          "Os algoritmos discordaram sobre o custo mínimo",
			"error.no_cost_profile":            "Nenhum perfil de custo foi armazenado ainda",

			"success.plan_computed": "Plano de reposição calculado com sucesso",
		},
		"nl": {
			"error.invalid_request":            "Ongeldig verzoek",
			"error.invalid_request_body":       "Ongeldige aanvraag body",
			"error.internal_error":             "Er is een onverwachte fout opgetreden",
			"error.unauthorized":               "Niet geautoriseerd",
			"error.api_key_required":           "API-sleutel is vereist",
			"error.invalid_api_key":            "Ongeldige API-sleutel",
			"error.not_found":                  "Niet gevonden",
			"error.rate_limit_exceeded":        "Te veel verzoeken, probeer het later opnieuw",
			"error.invalid_token":              "Ongeldig of verlopen token",
			"error.token_required":             "Authenticatietoken is vereist",
			"error.timeout":                    "Het verzoek duurde te lang",
			"error.service_unavailable":        "De database is uitgeschakeld of onbereikbaar",
			"error.validation.consumption":     "consumption: moet een niet-lege lijst van niet-negatieve gehele getallen zijn",
			"error.validation.cost_params":     "Kostenparameters moeten eindige, niet-negatieve getallen zijn",
			"error.validation.initial_stock":   "initial_stock: moet tussen 0 en de opslagcapaciteit liggen",
			"error.validation.step":            "step: moet een positief geheel getal zijn",
			"error.validation.capacity_factor": "capacity_factor: moet een positief geheel getal zijn",
			"error.validation.algorithm":       "algorithm: moet topdown, bottomup of both zijn",
			"error.validation.days":            "days: moet een positief geheel getal zijn",
			"error.validation.generator":       "Ongeldige generatoropties",
			"error.horizon_too_long":           "De planningshorizon is langer dan deze server toestaat",
			"error.capacity_too_large":         "Piekverbruik maal capacity_factor is groter dan deze server toestaat",
			"error.solver_divergence":          "De algoritmen waren het oneens over de minimale kosten",
			"error.no_cost_profile":            "Er is nog geen kostenprofiel opgeslagen",

			"success.plan_computed": "Bestelplan succesvol berekend",
		},
	}
}
