package models

import (
	"time"
)

type ConversationStatus string

const (
	ConversationActive   ConversationStatus = "active"
	ConversationArchived ConversationStatus = "archived"
)

type MessageType string

const (
	MessageText           MessageType = "text"
	MessageContactRequest MessageType = "contact_request"
)

type ContactType string

const (
	ContactEmail ContactType = "email"
	ContactPhone ContactType = "phone"
)

func (t ContactType) Valid() bool {
	return t == ContactEmail || t == ContactPhone
}

type ContactRequestStatus string

const (
	ContactRequestPending  ContactRequestStatus = "pending"
	ContactRequestApproved ContactRequestStatus = "approved"
	ContactRequestDeclined ContactRequestStatus = "declined"
)

type Conversation struct {
	ID                          string             `json:"_id"`
	ParticipantOneID            string             `json:"participantOneId"`
	ParticipantTwoID            string             `json:"participantTwoId"`
	MatchID                     string             `json:"matchId,omitempty"`
	Status                      ConversationStatus `json:"status"`
	CreatedAt                   time.Time          `json:"createdAt"`
	LastMessageAt               *time.Time         `json:"lastMessageAt,omitempty"`
	ParticipantOneContactShared bool               `json:"participantOneContactShared"`
	ParticipantTwoContactShared bool               `json:"participantTwoContactShared"`
}

// HasParticipant reports whether memberID occupies one of the two slots.
func (c *Conversation) HasParticipant(memberID string) bool {
	return memberID != "" && (c.ParticipantOneID == memberID || c.ParticipantTwoID == memberID)
}

// OtherParticipant returns whichever slot does not hold memberID.
func (c *Conversation) OtherParticipant(memberID string) string {
	if c.ParticipantOneID == memberID {
		return c.ParticipantTwoID
	}
	return c.ParticipantOneID
}

// ActivityAt is the timestamp conversation lists are ordered by.
func (c *Conversation) ActivityAt() time.Time {
	if c.LastMessageAt != nil {
		return *c.LastMessageAt
	}
	return c.CreatedAt
}

type Message struct {
	ID          string      `json:"_id"`
	ThreadID    string      `json:"threadId"`
	AuthorID    string      `json:"authorId"`
	Content     string      `json:"content"`
	MessageType MessageType `json:"messageType"`
	IsRead      bool        `json:"isRead"`
	CreatedAt   time.Time   `json:"createdAt"`
	// RequestID links a contact_request message to its ContactExchangeRequest.
	RequestID string `json:"requestId,omitempty"`
}

type ContactExchangeRequest struct {
	ID                   string               `json:"_id"`
	ConversationID       string               `json:"conversationId"`
	RequesterID          string               `json:"requesterId"`
	RecipientID          string               `json:"recipientId"`
	ContactTypeRequested ContactType          `json:"contactTypeRequested"`
	Status               ContactRequestStatus `json:"status"`
	CreatedAt            time.Time            `json:"createdAt"`
	RespondedAt          *time.Time           `json:"respondedAt,omitempty"`
}

type ConversationPatch struct {
	LastMessageAt               *time.Time          `json:"lastMessageAt,omitempty"`
	Status                      *ConversationStatus `json:"status,omitempty"`
	ParticipantOneContactShared *bool               `json:"participantOneContactShared,omitempty"`
	ParticipantTwoContactShared *bool               `json:"participantTwoContactShared,omitempty"`
}

type MessagePatch struct {
	IsRead *bool `json:"isRead,omitempty"`
}

type ContactRequestPatch struct {
	Status      *ContactRequestStatus `json:"status,omitempty"`
	RespondedAt *time.Time            `json:"respondedAt,omitempty"`
}
