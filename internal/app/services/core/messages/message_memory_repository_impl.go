package messages

import (
	"context"
	"helpmynew-service/internal/app/models"
	"sort"
	"sync"
)

type MessageMemoryRepository struct {
	mu        sync.RWMutex
	byRequest map[string][]*models.Message
}

func NewMessageMemoryRepository() *MessageMemoryRepository {
	return &MessageMemoryRepository{byRequest: make(map[string][]*models.Message)}
}

func (r *MessageMemoryRepository) Insert(ctx context.Context, message *models.Message) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	stored := *message
	r.byRequest[message.RequestID] = append(r.byRequest[message.RequestID], &stored)
	return nil
}

func (r *MessageMemoryRepository) FindByRequestID(ctx context.Context, requestID string) ([]models.Message, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]models.Message, 0, len(r.byRequest[requestID]))
	for _, message := range r.byRequest[requestID] {
		result = append(result, *message)
	}
	sort.SliceStable(result, func(i, j int) bool {
		return result[i].CreatedAt.Before(result[j].CreatedAt)
	})
	return result, nil
}

func (r *MessageMemoryRepository) MarkRead(ctx context.Context, requestID, receiverID string) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var modified int64
	for _, message := range r.byRequest[requestID] {
		if message.ReceiverID == receiverID && !message.Read {
			message.Read = true
			modified++
		}
	}
	return modified, nil
}
