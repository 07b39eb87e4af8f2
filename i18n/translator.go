package i18n

// Translator retrieves localized messages for DecodeError codes.
// data provides optional metadata to embed in the message (for example,
// "expected" or "key").
type Translator interface {
	Message(code string, data map[string]string) string
}

// dictTranslator is the built-in dictionary-based Translator.
type dictTranslator struct{ lang string }

func (t dictTranslator) Message(code string, data map[string]string) string {
	switch t.lang {
	case "ja":
		switch code {
		case "shape_mismatch":
			return "コンテナの形が一致しません"
		case "key_not_found":
			if k, ok := data["key"]; ok {
				return "キーがありません: " + k
			}
			return "キーがありません"
		case "type_mismatch":
			return "型が不正です"
		case "element_out_of_bounds":
			return "要素が範囲外です"
		}
	default: // "en"
		switch code {
		case "shape_mismatch":
			return "container shape mismatch"
		case "key_not_found":
			if k, ok := data["key"]; ok {
				return "no value associated with key " + k
			}
			return "no value associated with key"
		case "type_mismatch":
			if e, ok := data["expected"]; ok {
				return "value is not of expected type " + e
			}
			return "value is not of expected type"
		case "element_out_of_bounds":
			return "no more elements to decode"
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
