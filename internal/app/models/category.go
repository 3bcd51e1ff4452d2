package models

// LocalizedText maps a language code to text.
type LocalizedText map[string]string

// Resolve returns the text for language, falling back to fallback and then
// to any available translation.
func (t LocalizedText) Resolve(language, fallback string) string {
	if text, ok := t[language]; ok && text != "" {
		return text
	}
	if text, ok := t[fallback]; ok && text != "" {
		return text
	}
	for _, text := range t {
		return text
	}
	return ""
}

type Category struct {
	CategoryID  string        `json:"category_id" bson:"category_id"`
	Name        LocalizedText `json:"name" bson:"name"`
	Icon        string        `json:"icon" bson:"icon"`
	Description LocalizedText `json:"description" bson:"description"`
	ParentID    string        `json:"parent_id,omitempty" bson:"parent_id,omitempty"`
	IsActive    bool          `json:"is_active" bson:"is_active"`
}
