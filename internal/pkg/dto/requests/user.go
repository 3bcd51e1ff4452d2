package requests

type UpdateUserProfile struct {
	Name              *string                `json:"name" validate:"omitempty,notblank,max=200"`
	PreferredLanguage *string                `json:"preferred_language" validate:"omitempty,min=2,max=8"`
	Location          map[string]interface{} `json:"location"`
	PostalCode        *string                `json:"postal_code" validate:"omitempty,max=16"`
	Picture           *string                `json:"picture" validate:"omitempty,max=2048"`
}
