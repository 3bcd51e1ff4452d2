package requests

type RegisterProvider struct {
	Bio          string                   `json:"bio" validate:"max=2000"`
	Categories   []string                 `json:"categories" validate:"dive,notblank"`
	Services     []map[string]interface{} `json:"services"`
	ResponseTime string                   `json:"response_time" validate:"max=32"`
	Location     map[string]interface{}   `json:"location"`
	PostalCode   string                   `json:"postal_code" validate:"max=16"`
}

// UpdateProviderProfile carries only the editable fields. A nil field is
// left as stored.
type UpdateProviderProfile struct {
	Bio          *string                   `json:"bio" validate:"omitempty,max=2000"`
	Categories   *[]string                 `json:"categories" validate:"omitempty,dive,notblank"`
	Services     *[]map[string]interface{} `json:"services"`
	Availability *string                   `json:"availability" validate:"omitempty,oneof=available busy offline"`
	ResponseTime *string                   `json:"response_time" validate:"omitempty,max=32"`
	Location     map[string]interface{}    `json:"location"`
	PostalCode   *string                   `json:"postal_code" validate:"omitempty,max=16"`
}
