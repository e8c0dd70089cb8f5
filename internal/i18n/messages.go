package i18n

import (
	"golang.org/x/text/message"
)

func init() {
	register(SerbianLatin, messagesSR)
	register(English, messagesEN)
	register(Swedish, messagesSV)

	cyr := make(map[string]string, len(messagesSR))
	for k, v := range messagesSR {
		cyr[k] = ToCyrillic(v)
	}
	// Proper names stay as written.
	cyr["site.name"] = "Српско удружење"
	register(SerbianCyrillic, cyr)
}

// register sets every English key for lang, using the English text where
// lang has no translation.
func register(lang string, msgs map[string]string) {
	tag := Tag(lang)
	for key, en := range messagesEN {
		text, ok := msgs[key]
		if !ok {
			text = en
		}
		if err := message.SetString(tag, key, text); err != nil {
			panic("i18n: " + key + ": " + err.Error())
		}
	}
}
