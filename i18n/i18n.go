package i18n

import (
	"log"
	"os"
	"strings"

	"github.com/jeandeaual/go-locale"
)

var lang string

var translations = map[string]map[string]string{
	"Start": {
		"pt": "Iniciar",
		"es": "Iniciar",
		"ru": "Старт",
	},
	"Reset": {
		"pt": "Resetar",
		"es": "Reiniciar",
		"ru": "Сброс",
	},
	"Megahealth": {
		"pt": "Megavida",
		"es": "Megasalud",
		"ru": "Мегаздоровье",
	},
	"Red Armor": {
		"pt": "Armadura Vermelha",
		"es": "Armadura Roja",
		"ru": "Красная броня",
	},
}

func init() {
	// Check for override environment variable
	if forcedLang := strings.TrimSpace(os.Getenv("QLTOOLS_LANG")); forcedLang != "" {
		log.Printf("QLTOOLS_LANG is set to: '%s'", forcedLang)
		lang = forcedLang
		return
	}

	userLocales, err := locale.GetLocales()
	if err != nil {
		log.Println("Could not get user locale, defaulting to english")
		lang = "en"
		return
	}
	lang = detect(userLocales)
	log.Printf("Language set to: %s", lang)
}

func detect(userLocales []string) string {
	if len(userLocales) == 0 {
		return "en"
	}
	for _, l := range []string{"pt", "es", "ru"} {
		if strings.HasPrefix(userLocales[0], l) {
			return l
		}
	}
	return "en"
}

func T(key string) string {
	if translated, ok := translations[key][lang]; ok {
		return translated
	}
	return key
}

func GetLang() string {
	return lang
}

// SetLang overrides the detected language.
func SetLang(l string) {
	lang = l
}
