package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"skillswap/exchange-service/internal/models"
)

func TestRequestForFallsBackToAuthorAndType(t *testing.T) {
	at := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	thread := Thread{
		Requests: []*models.ContactExchangeRequest{
			{ID: "old-email", RequesterID: "alice", ContactTypeRequested: models.ContactEmail, CreatedAt: at},
			{ID: "phone", RequesterID: "alice", ContactTypeRequested: models.ContactPhone, CreatedAt: at.Add(time.Minute)},
			{ID: "new-email", RequesterID: "alice", ContactTypeRequested: models.ContactEmail, CreatedAt: at.Add(2 * time.Minute)},
			{ID: "bob-email", RequesterID: "bob", ContactTypeRequested: models.ContactEmail, CreatedAt: at.Add(3 * time.Minute)},
		},
	}

	legacy := &models.Message{AuthorID: "alice", MessageType: models.MessageContactRequest, Content: "Requested to share email"}
	assert.Equal(t, "new-email", thread.RequestFor(legacy).ID)

	linked := &models.Message{AuthorID: "alice", MessageType: models.MessageContactRequest, Content: "Requested to share email", RequestID: "old-email"}
	assert.Equal(t, "old-email", thread.RequestFor(linked).ID)

	dangling := &models.Message{AuthorID: "alice", MessageType: models.MessageContactRequest, RequestID: "gone"}
	assert.Nil(t, thread.RequestFor(dangling))

	text := &models.Message{AuthorID: "alice", MessageType: models.MessageText, Content: "Requested to share email"}
	assert.Nil(t, thread.RequestFor(text))
}

func TestSortMessagesOrdersByCreatedAt(t *testing.T) {
	at := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	a1 := &models.Message{ID: "a1", CreatedAt: at}
	a2 := &models.Message{ID: "a2", CreatedAt: at}
	b := &models.Message{ID: "b", CreatedAt: at.Add(time.Second)}
	msgs := []*models.Message{b, a1, a2}

	SortMessages(msgs)
	assert.ElementsMatch(t, []*models.Message{a1, a2}, msgs[:2])
	assert.Same(t, b, msgs[2])
}
