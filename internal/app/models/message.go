package models

import "time"

type Message struct {
	MessageID         string    `json:"message_id" bson:"message_id"`
	RequestID         string    `json:"request_id" bson:"request_id"`
	SenderID          string    `json:"sender_id" bson:"sender_id"`
	ReceiverID        string    `json:"receiver_id" bson:"receiver_id"`
	Content           string    `json:"content" bson:"content"`
	TranslatedContent string    `json:"translated_content" bson:"translated_content"`
	Read              bool      `json:"read" bson:"read"`
	CreatedAt         time.Time `json:"created_at" bson:"created_at"`
}
