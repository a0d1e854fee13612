// Package i18n holds the user-facing strings shown on auth and form errors.
package i18n

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/message/catalog"
)

// Message keys.
const (
	KeyMissingFields      = "missing_fields"
	KeyInvalidEmail       = "invalid_email"
	KeyWeakPassword       = "weak_password"
	KeyInvalidCredentials = "invalid_credentials"
	KeyEmailNotConfirmed  = "email_not_confirmed"
	KeyRateLimited        = "rate_limited"
	KeyEmailTaken         = "email_taken"
	KeyGenericAuth        = "generic_auth"
	KeySaveFailed         = "save_failed"
	KeyLoginRequired      = "login_required"
	KeyNotFound           = "not_found"
	KeyDeleteConfirmation = "delete_confirmation"
)

var supported = []language.Tag{language.French, language.English}

var matcher = language.NewMatcher(supported)

var cat = newCatalog()

func newCatalog() catalog.Catalog {
	b := catalog.NewBuilder(catalog.Fallback(language.French))
	set := func(tag language.Tag, entries map[string]string) {
		for k, v := range entries {
			if err := b.SetString(tag, k, v); err != nil {
				panic(err)
			}
		}
	}
	set(language.French, map[string]string{
		KeyMissingFields:      "Veuillez remplir tous les champs",
		KeyInvalidEmail:       "Adresse email invalide",
		KeyWeakPassword:       "Le mot de passe doit contenir au moins 8 caractères",
		KeyInvalidCredentials: "Email ou mot de passe incorrect.",
		KeyEmailNotConfirmed:  "Veuillez confirmer votre adresse email avant de vous connecter.",
		KeyRateLimited:        "Trop de tentatives, veuillez réessayer plus tard.",
		KeyEmailTaken:         "Un compte existe déjà avec cette adresse email.",
		KeyGenericAuth:        "Une erreur est survenue, veuillez réessayer.",
		KeySaveFailed:         "Erreur lors de l'enregistrement",
		KeyLoginRequired:      "Veuillez vous connecter pour accéder à cette page.",
		KeyNotFound:           "404 - Page non trouvée",
		KeyDeleteConfirmation: "Tapez la phrase de confirmation pour supprimer votre compte.",
	})
	set(language.English, map[string]string{
		KeyMissingFields:      "Please fill in all fields",
		KeyInvalidEmail:       "Invalid email address",
		KeyWeakPassword:       "Password must be at least 8 characters long",
		KeyInvalidCredentials: "Incorrect email or password.",
		KeyEmailNotConfirmed:  "Please confirm your email address before signing in.",
		KeyRateLimited:        "Too many attempts, please try again later.",
		KeyEmailTaken:         "An account already exists for this email address.",
		KeyGenericAuth:        "Something went wrong, please try again.",
		KeySaveFailed:         "Error while saving",
		KeyLoginRequired:      "Please log in to access this page.",
		KeyNotFound:           "404 - Page not found",
		KeyDeleteConfirmation: "Type the confirmation phrase to delete your account.",
	})
	return b
}

// Printer returns a printer for the best match of an Accept-Language
// header. French is the default.
func Printer(acceptLanguage string) *message.Printer {
	tags, _, _ := language.ParseAcceptLanguage(acceptLanguage)
	_, idx, _ := matcher.Match(tags...)
	return message.NewPrinter(supported[idx], message.Catalog(cat))
}

// Text translates key for the given Accept-Language header.
func Text(acceptLanguage, key string) string {
	return Printer(acceptLanguage).Sprintf(key)
}
