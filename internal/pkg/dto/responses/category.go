package responses

// Category is a catalog entry resolved to one language.
type Category struct {
	CategoryID  string `json:"category_id"`
	Name        string `json:"name"`
	Icon        string `json:"icon"`
	Description string `json:"description"`
	ParentID    string `json:"parent_id,omitempty"`
}
