package repository

import (
	"context"

	"skillswap/exchange-service/internal/models"
	"skillswap/exchange-service/internal/storage"
)

// ChatRepository reads and writes conversations, messages and contact exchange requests.
// Lookups by id wrap storage.ErrNotFound.
type ChatRepository interface {
	CreateConversation(ctx context.Context, conv *models.Conversation) error
	GetConversationByID(ctx context.Context, id string) (*models.Conversation, error)
	ListConversations(ctx context.Context) ([]*models.Conversation, error)
	UpdateConversation(ctx context.Context, id string, patch models.ConversationPatch) error

	CreateMessage(ctx context.Context, msg *models.Message) error
	ListMessages(ctx context.Context) ([]*models.Message, error)
	UpdateMessage(ctx context.Context, id string, patch models.MessagePatch) error
	DeleteMessage(ctx context.Context, id string) error

	CreateContactRequest(ctx context.Context, req *models.ContactExchangeRequest) error
	GetContactRequestByID(ctx context.Context, id string) (*models.ContactExchangeRequest, error)
	ListContactRequests(ctx context.Context) ([]*models.ContactExchangeRequest, error)
	UpdateContactRequest(ctx context.Context, id string, patch models.ContactRequestPatch) error
	// AnswerContactRequest applies patch only while the request is still pending.
	AnswerContactRequest(ctx context.Context, id string, patch models.ContactRequestPatch) error
	DeleteContactRequest(ctx context.Context, id string) error
}

type chatRepository struct {
	conversations collection[models.Conversation]
	messages      collection[models.Message]
	requests      collection[models.ContactExchangeRequest]
}

func NewChatRepository(store storage.Store) ChatRepository {
	return &chatRepository{
		conversations: newCollection[models.Conversation](store, storage.Conversations),
		messages:      newCollection[models.Message](store, storage.Messages),
		requests:      newCollection[models.ContactExchangeRequest](store, storage.ContactExchangeRequests),
	}
}

func (r *chatRepository) CreateConversation(ctx context.Context, conv *models.Conversation) error {
	return r.conversations.create(ctx, conv.ID, conv)
}

func (r *chatRepository) GetConversationByID(ctx context.Context, id string) (*models.Conversation, error) {
	return r.conversations.byID(ctx, id)
}

func (r *chatRepository) ListConversations(ctx context.Context) ([]*models.Conversation, error) {
	return r.conversations.all(ctx)
}

func (r *chatRepository) UpdateConversation(ctx context.Context, id string, patch models.ConversationPatch) error {
	return r.conversations.update(ctx, id, patch)
}

func (r *chatRepository) CreateMessage(ctx context.Context, msg *models.Message) error {
	return r.messages.create(ctx, msg.ID, msg)
}

func (r *chatRepository) ListMessages(ctx context.Context) ([]*models.Message, error) {
	return r.messages.all(ctx)
}

func (r *chatRepository) UpdateMessage(ctx context.Context, id string, patch models.MessagePatch) error {
	return r.messages.update(ctx, id, patch)
}

func (r *chatRepository) DeleteMessage(ctx context.Context, id string) error {
	return r.messages.delete(ctx, id)
}

func (r *chatRepository) CreateContactRequest(ctx context.Context, req *models.ContactExchangeRequest) error {
	return r.requests.create(ctx, req.ID, req)
}

func (r *chatRepository) GetContactRequestByID(ctx context.Context, id string) (*models.ContactExchangeRequest, error) {
	return r.requests.byID(ctx, id)
}

func (r *chatRepository) ListContactRequests(ctx context.Context) ([]*models.ContactExchangeRequest, error) {
	return r.requests.all(ctx)
}

func (r *chatRepository) UpdateContactRequest(ctx context.Context, id string, patch models.ContactRequestPatch) error {
	return r.requests.update(ctx, id, patch)
}

func (r *chatRepository) AnswerContactRequest(ctx context.Context, id string, patch models.ContactRequestPatch) error {
	return r.requests.updateIf(ctx, id, "status", string(models.ContactRequestPending), patch)
}

func (r *chatRepository) DeleteContactRequest(ctx context.Context, id string) error {
	return r.requests.delete(ctx, id)
}
