package config

const (
	LangEN = "en"
	LangES = "es"
)

// GetLocaleConfig normaliza el idioma configurado. Cualquier valor no soportado cae a inglés.
func GetLocaleConfig(lang string) string {
	switch lang {
	case LangEN:
		return LangEN
	case LangES:
		return LangES
	default:
		return LangEN
	}
}
