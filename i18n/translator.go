package i18n

import (
	"strings"
	"sync"
)

// Translator retrieves localized messages for Issue codes.
// data provides optional metadata to embed in the message (for example,
// "field", "expected" or "key").
type Translator interface {
	Message(code string, data map[string]string) string
}

// dictTranslator is the built-in dictionary-based Translator.
type dictTranslator struct{ lang string }

var catalogue = map[string]map[string]string{
	"en": {
		"structural":            "{field} should be an object",
		"missing_field":         "{field} is required",
		"missing_description":   "description is required",
		"missing_required":      "required is required",
		"wrong_type":            "{field} should be {expected}",
		"invalid_type":          "type should be one of {expected}",
		"invalid_method":        "method should be get | post | put | delete",
		"invalid_status_code":   "responses key {key} should be an http status code",
		"invalid_ref_format":    "ref should start with '{expected}'",
		"invalid_date":          "example {value} should be a date",
		"unknown_variable_type": "unknown variable type {payload}",
		"parse_error":           "parse error",
		"duplicate_key":         "key '{key}' duplicated",
		"too_deep":              "document nesting exceeds {max}",
	},
	"ja": {
		"structural":            "{field} はオブジェクトである必要があります",
		"missing_field":         "{field} は必須です",
		"missing_description":   "description は必須です",
		"missing_required":      "required は必須です",
		"wrong_type":            "{field} は {expected} である必要があります",
		"invalid_type":          "type は {expected} のいずれかである必要があります",
		"invalid_method":        "method は get | post | put | delete のいずれかです",
		"invalid_status_code":   "responses のキー {key} は HTTP ステータスコードである必要があります",
		"invalid_ref_format":    "ref は '{expected}' で始まる必要があります",
		"invalid_date":          "example {value} は日付である必要があります",
		"unknown_variable_type": "未知の変数型です {payload}",
		"parse_error":           "解析エラー",
		"duplicate_key":         "キー '{key}' が重複しています",
		"too_deep":              "ネストが {max} を超えています",
	},
}

func (t dictTranslator) Message(code string, data map[string]string) string {
	msgs, ok := catalogue[t.lang]
	if !ok {
		msgs = catalogue["en"]
	}
	tmpl, ok := msgs[code]
	if !ok {
		return code
	}
	return expand(tmpl, data)
}

// expand replaces {name} placeholders with values from data. Unknown
// placeholders are left as-is.
func expand(tmpl string, data map[string]string) string {
	if len(data) == 0 || !strings.Contains(tmpl, "{") {
		return tmpl
	}
	pairs := make([]string, 0, len(data)*2)
	for k, v := range data {
		pairs = append(pairs, "{"+k+"}", v)
	}
	return strings.NewReplacer(pairs...).Replace(tmpl)
}

var (
	mu                sync.RWMutex
	currentTranslator Translator = dictTranslator{lang: "en"}
)

// SetLanguage switches the built-in Translator language ("en"/"ja").
func SetLanguage(lang string) {
	if lang != "ja" {
		lang = "en"
	}
	SetTranslator(dictTranslator{lang: lang})
}

// SetTranslator replaces the Translator implementation (not limited to the
// dictionary version).
func SetTranslator(tr Translator) {
	if tr == nil {
		tr = dictTranslator{lang: "en"}
	}
	mu.Lock()
	currentTranslator = tr
	mu.Unlock()
}

// T fetches a message for the given code using the current Translator.
func T(code string, data map[string]string) string {
	mu.RLock()
	tr := currentTranslator
	mu.RUnlock()
	return tr.Message(code, data)
}
