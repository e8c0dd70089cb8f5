package model

// LocalizedText maps a language code (sr-latin, sr-cyrillic, en, sv) to text.
type LocalizedText map[string]string

type NewsItem struct {
	ID        string        `json:"id"`
	Date      string        `json:"date"`
	Title     LocalizedText `json:"title"`
	Text      LocalizedText `json:"text"`
	Image     string        `json:"image,omitempty"`
	Video     string        `json:"video,omitempty"`
	CreatedAt string        `json:"createdAt,omitempty"`
}

// Story is a cultural story ("Serbian story") entry.
type Story struct {
	ID    string        `json:"id"`
	Date  string        `json:"date"`
	Title LocalizedText `json:"title"`
	Text  LocalizedText `json:"text"`
	Image string        `json:"image,omitempty"`
	URL   string        `json:"url,omitempty"`
}

// Album is a gallery entry with its media.
type Album struct {
	ID          string        `json:"id"`
	Date        string        `json:"date"`
	Title       LocalizedText `json:"title,omitempty"`
	Description LocalizedText `json:"description"`
	Place       string        `json:"place,omitempty"`
	Images      []string      `json:"images"`
	Videos      []string      `json:"videos"`
}

// ContactMessage is submitted from the public contact form.
type ContactMessage struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Topic   string `json:"topic"`
	Message string `json:"message"`
}
