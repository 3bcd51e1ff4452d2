package requests

type SendMessage struct {
	RequestID  string `json:"request_id" validate:"required,notblank"`
	ReceiverID string `json:"receiver_id" validate:"required,notblank"`
	Content    string `json:"content" validate:"required,notblank,max=4000"`
}
