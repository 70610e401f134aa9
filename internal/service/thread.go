package service

import (
	"sort"
	"strings"

	"skillswap/exchange-service/internal/models"
)

// Thread is the message list and contact exchange requests of one conversation.
type Thread struct {
	Messages []*models.Message                `json:"messages"`
	Requests []*models.ContactExchangeRequest `json:"requests"`
}

// ConversationSnapshot is everything a conversation view shows.
type ConversationSnapshot struct {
	Conversation *models.Conversation `json:"conversation"`
	OtherUser    *models.UserProfile  `json:"otherUser,omitempty"`
	Thread
}

type ConversationSummary struct {
	Conversation *models.Conversation `json:"conversation"`
	OtherUser    *models.UserProfile  `json:"otherUser,omitempty"`
}

// Pending returns the requests still awaiting an answer.
func (t *Thread) Pending() []*models.ContactExchangeRequest {
	var out []*models.ContactExchangeRequest
	for _, req := range t.Requests {
		if req.Status == models.ContactRequestPending {
			out = append(out, req)
		}
	}
	return out
}

// RequestFor finds the request a contact_request message announces. Messages written
// before RequestID existed fall back to the newest request from the same author for the
// contact type named in the content.
func (t *Thread) RequestFor(msg *models.Message) *models.ContactExchangeRequest {
	if msg.MessageType != models.MessageContactRequest {
		return nil
	}
	if msg.RequestID != "" {
		for _, req := range t.Requests {
			if req.ID == msg.RequestID {
				return req
			}
		}
		return nil
	}
	var found *models.ContactExchangeRequest
	for _, req := range t.Requests {
		if req.RequesterID != msg.AuthorID {
			continue
		}
		if !strings.HasSuffix(msg.Content, string(req.ContactTypeRequested)) {
			continue
		}
		if found == nil || req.CreatedAt.After(found.CreatedAt) {
			found = req
		}
	}
	return found
}

// SortMessages orders messages by creation time, oldest first.
func SortMessages(messages []*models.Message) {
	sort.SliceStable(messages, func(i, j int) bool {
		return messages[i].CreatedAt.Before(messages[j].CreatedAt)
	})
}

func contactRequestContent(t models.ContactType) string {
	return "Requested to share " + string(t)
}
