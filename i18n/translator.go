package i18n

// Translator retrieves localized messages for Issue codes.
// data provides optional metadata to embed in the message (for example,
// "expected" or "field").
type Translator interface {
	Message(code string, data map[string]string) string
}

// dictTranslator is the built-in dictionary-based Translator.
type dictTranslator struct{ lang string }

func (t dictTranslator) Message(code string, data map[string]string) string {
	switch t.lang {
	case "ja":
		switch code {
		case "path_syntax":
			return "パス構文が不正です"
		case "required":
			return "必須フィールドが不足しています"
		case "invalid_type":
			return "型が不正です"
		case "validation":
			return "検証に失敗しました"
		case "depth_exceeded":
			return "再帰の深さ上限を超えました"
		case "parse_error":
			return "解析エラー"
		}
	default: // "en"
		switch code {
		case "path_syntax":
			return "invalid path syntax"
		case "required":
			return "required field missing"
		case "invalid_type":
			if data != nil && data["expected"] != "" {
				return "invalid type, expected " + data["expected"]
			}
			return "invalid type"
		case "validation":
			return "validation failed"
		case "depth_exceeded":
			return "recursion depth limit exceeded"
		case "parse_error":
			return "parse error"
		}
	}
	return code
}

var currentTranslator Translator = dictTranslator{lang: "en"}

// SetLanguage switches the built-in Translator language ("en"/"ja").
func SetLanguage(lang string) {
	if lang != "ja" {
		lang = "en"
	}
	currentTranslator = dictTranslator{lang: lang}
}

// SetTranslator replaces the Translator implementation (not limited to the
// dictionary version).
func SetTranslator(tr Translator) {
	if tr == nil {
		currentTranslator = dictTranslator{lang: "en"}
		return
	}
	currentTranslator = tr
}

// T fetches a message for the given code using the current Translator.
func T(code string, data map[string]string) string { return currentTranslator.Message(code, data) }
