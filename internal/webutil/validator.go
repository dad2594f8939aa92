package webutil

import (
	"log"
	"reflect"
	"strings"

	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	en_translations "github.com/go-playground/validator/v10/translations/en"

	"langy/internal/model"
)

// Validator はアプリケーション全体で共有されるバリデータインスタンスです。
var Validator *validator.Validate

// Trans はエラーメッセージを翻訳するためのトランスレータです。
var Trans ut.Translator

func init() {
	Validator = validator.New(validator.WithRequiredStructEnabled())

	// JSONタグからフィールド名を取得する
	Validator.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	// 対応言語コード
	if err := Validator.RegisterValidation("language", func(fl validator.FieldLevel) bool {
		return model.IsSupportedLanguage(fl.Field().String())
	}); err != nil {
		log.Fatal(err)
	}

	english := en.New()
	uni := ut.New(english, english)
	var found bool
	Trans, found = uni.GetTranslator("en")
	if !found {
		log.Fatal("translator not found")
	}

	if err := en_translations.RegisterDefaultTranslations(Validator, Trans); err != nil {
		log.Fatal(err)
	}

	registerTranslation := func(tag, msg string, withParam bool) {
		Validator.RegisterTranslation(tag, Trans, func(ut ut.Translator) error {
			return ut.Add(tag, msg, true)
		}, func(ut ut.Translator, fe validator.FieldError) string {
			var t string
			if withParam {
				t, _ = ut.T(tag, fe.Field(), fe.Param())
			} else {
				t, _ = ut.T(tag, fe.Field())
			}
			return t
		})
	}

	registerTranslation("required", "{0} is required.", false)
	registerTranslation("email", "{0} must be a valid email address.", false)
	registerTranslation("oneof", "{0} must be one of [{1}].", true)
	registerTranslation("language", "{0} must be a supported language code.", false)

	// min/max は文字列なら文字数、数値なら値として表示する
	registerLength := func(tag, strMsg, numMsg string) {
		Validator.RegisterTranslation(tag, Trans, func(ut ut.Translator) error {
			if err := ut.Add(tag+"-string", strMsg, true); err != nil {
				return err
			}
			return ut.Add(tag+"-number", numMsg, true)
		}, func(ut ut.Translator, fe validator.FieldError) string {
			key := tag + "-number"
			if fe.Kind() == reflect.String {
				key = tag + "-string"
			}
			t, _ := ut.T(key, fe.Field(), fe.Param())
			return t
		})
	}
	registerLength("min", "{0} must be at least {1} characters.", "{0} must be {1} or greater.")
	registerLength("max", "{0} must be at most {1} characters.", "{0} must be {1} or less.")
}
