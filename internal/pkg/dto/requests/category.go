package requests

type CreateCategory struct {
	CategoryID  string            `json:"category_id" validate:"omitempty,notblank"`
	Name        map[string]string `json:"name" validate:"required,min=1"`
	Icon        string            `json:"icon" validate:"required,notblank"`
	Description map[string]string `json:"description"`
	ParentID    string            `json:"parent_id"`
}
