package webutil

import (
	"log"
	"reflect"
	"strings"

	"github.com/go-playground/locales/ja"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	ja_translations "github.com/go-playground/validator/v10/translations/ja"
)

// Validator はアプリケーション全体で共有されるバリデータインスタンスです。
var Validator *validator.Validate

// Trans はエラーメッセージを翻訳するためのトランスレータです。
var Trans ut.Translator

var fieldNameTranslations = map[string]string{
	"lesson_id":      "レッスンID",
	"session_id":     "セッションID",
	"vocabulary_id":  "単語ID",
	"mode":           "練習モード",
	"action":         "評価",
	"question_type":  "問題形式",
	"correct_answer": "正解",
	"is_correct":     "回答の正誤",
	"time_spent_sec": "回答時間",
	"duration_sec":   "練習時間",
}

func init() {
	Validator = validator.New()

	// JSONタグからフィールド名を取得するように設定
	Validator.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	japanese := ja.New()
	uni := ut.New(japanese, japanese)
	var found bool
	Trans, found = uni.GetTranslator("ja")
	if !found {
		log.Fatal("translator not found")
	}

	if err := ja_translations.RegisterDefaultTranslations(Validator, Trans); err != nil {
		log.Fatal(err)
	}

	registerTranslation("required", "{0}は必須項目です。")
	registerTranslation("min", "{0}は{1}以上で入力してください。")
	registerTranslation("max", "{0}は{1}以下で入力してください。")
	registerTranslation("oneof", "{0}は[{1}]のいずれかを指定してください。")
}

// registerTranslation はフィールド名を日本語化したメッセージテンプレートを登録する
func registerTranslation(tag, msg string) {
	Validator.RegisterTranslation(tag, Trans, func(ut ut.Translator) error {
		return ut.Add(tag, msg, true)
	}, func(ut ut.Translator, fe validator.FieldError) string {
		fieldName := fe.Field()
		if translated, ok := fieldNameTranslations[fieldName]; ok {
			fieldName = translated
		}
		t, _ := ut.T(tag, fieldName, fe.Param())
		return t
	})
}
