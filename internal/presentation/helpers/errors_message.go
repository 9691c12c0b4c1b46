package helpers

import (
	"errors"
	"strings"
	"sync"

	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	en_translations "github.com/go-playground/validator/v10/translations/en"

	"github.com/anuntech/expense-backend/internal/logger"
)

var (
	translator     ut.Translator
	translatorOnce sync.Once
	registered     sync.Map
)

func englishTranslator(validate *validator.Validate) ut.Translator {
	translatorOnce.Do(func() {
		eng := en.New()
		uni := ut.New(eng, eng)
		translator, _ = uni.GetTranslator("en")
	})
	// every caller waits on the same Once, so none translates before registration ends
	once, _ := registered.LoadOrStore(validate, &sync.Once{})
	once.(*sync.Once).Do(func() {
		if err := en_translations.RegisterDefaultTranslations(validate, translator); err != nil {
			logger.L().WithError(err).Error("register validator translations")
		}
	})
	return translator
}

// GetErrorMessages joins the English translation of every validation failure.
func GetErrorMessages(validate *validator.Validate, errs error) string {
	var validationErrors validator.ValidationErrors
	if !errors.As(errs, &validationErrors) {
		return errs.Error()
	}

	trans := englishTranslator(validate)

	errorMessages := make([]string, 0, len(validationErrors))
	for _, e := range validationErrors {
		errorMessages = append(errorMessages, e.Translate(trans))
	}
	return strings.Join(errorMessages, ", ")
}
