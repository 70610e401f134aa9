package service

import (
	"context"
	"encoding/json"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"skillswap/exchange-service/internal/models"
	"skillswap/exchange-service/internal/storage"
	"skillswap/exchange-service/internal/storage/storagetest"
)

func startConversation(t *testing.T, f *fixture, memberID, matchID string) *models.Conversation {
	t.Helper()
	conv, _, err := f.chat.StartConversation(context.Background(), memberID, matchID)
	require.NoError(t, err)
	return conv
}

func TestStartConversation(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	conv, created, err := f.chat.StartConversation(ctx, "alice", "m-ab")
	require.NoError(t, err)
	assert.True(t, created)
	assert.Equal(t, "alice", conv.ParticipantOneID)
	assert.Equal(t, "bob", conv.ParticipantTwoID)
	assert.Equal(t, "m-ab", conv.MatchID)
	assert.Equal(t, models.ConversationActive, conv.Status)
	assert.False(t, conv.ParticipantOneContactShared)
	assert.False(t, conv.ParticipantTwoContactShared)

	again, created, err := f.chat.StartConversation(ctx, "bob", "m-ab")
	require.NoError(t, err)
	assert.False(t, created)
	assert.Equal(t, conv.ID, again.ID)
}

func TestStartConversationPicksTheOtherMatchUser(t *testing.T) {
	f := newFixture(t)

	conv := startConversation(t, f, "alice", "m-ca")
	assert.Equal(t, "alice", conv.ParticipantOneID)
	assert.Equal(t, "carol", conv.ParticipantTwoID)
}

func TestStartConversationErrors(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	_, _, err := f.chat.StartConversation(ctx, "alice", "nope")
	assert.ErrorIs(t, err, ErrMatchNotFound)

	_, _, err = f.chat.StartConversation(ctx, "alice", "m-solo")
	assert.ErrorIs(t, err, ErrMatchHasNoPartner)

	_, _, err = f.chat.StartConversation(ctx, "carol", "m-ab")
	assert.ErrorIs(t, err, ErrNotParticipant)

	_, _, err = f.chat.StartConversation(ctx, "", "m-ab")
	assert.ErrorIs(t, err, ErrMemberRequired)
}

func TestListConversationsNewestActivityFirst(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	first := startConversation(t, f, "alice", "m-ab")
	second := startConversation(t, f, "alice", "m-ca")

	_, err := f.chat.SendMessage(ctx, first.ID, "bob", "ping")
	require.NoError(t, err)

	summaries, err := f.chat.ListConversations(ctx, "alice")
	require.NoError(t, err)
	require.Len(t, summaries, 2)
	assert.Equal(t, first.ID, summaries[0].Conversation.ID)
	assert.Equal(t, second.ID, summaries[1].Conversation.ID)
	require.NotNil(t, summaries[0].OtherUser)
	assert.Equal(t, "Bob", summaries[0].OtherUser.UserName)
	assert.Equal(t, "Carol", summaries[1].OtherUser.UserName)

	summaries, err = f.chat.ListConversations(ctx, "bob")
	require.NoError(t, err)
	assert.Len(t, summaries, 1)
}

func TestLoadConversation(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	conv := startConversation(t, f, "alice", "m-ab")

	_, err := f.chat.SendMessage(ctx, conv.ID, "alice", "one")
	require.NoError(t, err)
	_, err = f.chat.SendMessage(ctx, conv.ID, "bob", "two")
	require.NoError(t, err)

	snapshot, err := f.chat.LoadConversation(ctx, conv.ID, "alice")
	require.NoError(t, err)
	assert.Equal(t, conv.ID, snapshot.Conversation.ID)
	require.NotNil(t, snapshot.OtherUser)
	assert.Equal(t, "bob", snapshot.OtherUser.ID)
	require.Len(t, snapshot.Messages, 2)
	assert.Equal(t, "one", snapshot.Messages[0].Content)
	assert.Equal(t, "two", snapshot.Messages[1].Content)
	assert.Empty(t, snapshot.Requests)
}

func TestLoadConversationErrors(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	conv := startConversation(t, f, "alice", "m-ab")

	_, err := f.chat.LoadConversation(ctx, "missing", "alice")
	assert.ErrorIs(t, err, ErrConversationNotFound)

	_, err = f.chat.LoadConversation(ctx, conv.ID, "carol")
	assert.ErrorIs(t, err, ErrNotParticipant)
}

func TestFetchThreadSortsByCreatedAt(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	conv := startConversation(t, f, "alice", "m-ab")

	base := f.clock.Now()
	storagetest.Seed(t, f.store, storage.Messages,
		&models.Message{ID: "late", ThreadID: conv.ID, AuthorID: "bob", Content: "late", MessageType: models.MessageText, CreatedAt: base.Add(10)},
		&models.Message{ID: "early", ThreadID: conv.ID, AuthorID: "alice", Content: "early", MessageType: models.MessageText, CreatedAt: base},
		&models.Message{ID: "other", ThreadID: "elsewhere", AuthorID: "alice", Content: "x", MessageType: models.MessageText, CreatedAt: base},
	)

	thread, err := f.chat.FetchThread(ctx, conv.ID)
	require.NoError(t, err)
	require.Len(t, thread.Messages, 2)
	assert.Equal(t, "early", thread.Messages[0].ID)
	assert.Equal(t, "late", thread.Messages[1].ID)
}

func TestRefreshConversationRereadsRecord(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	conv := startConversation(t, f, "alice", "m-ab")

	req, _, err := f.chat.RequestContactShare(ctx, conv.ID, "alice", "bob", models.ContactEmail)
	require.NoError(t, err)
	_, err = f.chat.ApproveContactRequest(ctx, req.ID, "bob")
	require.NoError(t, err)
	sent, err := f.chat.SendMessage(ctx, conv.ID, "bob", "here it is")
	require.NoError(t, err)

	snapshot, err := f.chat.RefreshConversation(ctx, conv.ID)
	require.NoError(t, err)
	assert.Nil(t, snapshot.OtherUser)
	assert.True(t, snapshot.Conversation.ParticipantTwoContactShared)
	require.NotNil(t, snapshot.Conversation.LastMessageAt)
	assert.True(t, sent.CreatedAt.Equal(*snapshot.Conversation.LastMessageAt))
	assert.Len(t, snapshot.Messages, 2)
	assert.Len(t, snapshot.Requests, 1)

	_, err = f.chat.RefreshConversation(ctx, "missing")
	assert.ErrorIs(t, err, ErrConversationNotFound)
}

func TestSendMessage(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	conv := startConversation(t, f, "alice", "m-ab")

	msg, err := f.chat.SendMessage(ctx, conv.ID, "alice", "Hello Bob")
	require.NoError(t, err)
	assert.Equal(t, conv.ID, msg.ThreadID)
	assert.Equal(t, "alice", msg.AuthorID)
	assert.Equal(t, models.MessageText, msg.MessageType)
	assert.False(t, msg.IsRead)

	loaded, err := f.chat.LoadConversation(ctx, conv.ID, "bob")
	require.NoError(t, err)
	require.NotNil(t, loaded.Conversation.LastMessageAt)
	assert.True(t, msg.CreatedAt.Equal(*loaded.Conversation.LastMessageAt))
}

func TestSendMessageRejectsBlankContent(t *testing.T) {
	f := newFixture(t)
	conv := startConversation(t, f, "alice", "m-ab")

	_, err := f.chat.SendMessage(context.Background(), conv.ID, "alice", "   \n\t")
	assert.ErrorIs(t, err, ErrEmptyMessage)
	assert.Equal(t, 0, f.store.Calls(storagetest.OpCreate, storage.Messages))
}

func TestSendMessageSurvivesLastMessageAtFailure(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	conv := startConversation(t, f, "alice", "m-ab")
	f.store.Fail(storagetest.OpUpdate, storage.Conversations, nil)

	msg, err := f.chat.SendMessage(ctx, conv.ID, "alice", "still stored")
	require.NoError(t, err)
	assert.NotEmpty(t, msg.ID)
}

func TestSendMessageStoreFailure(t *testing.T) {
	f := newFixture(t)
	conv := startConversation(t, f, "alice", "m-ab")
	f.store.Fail(storagetest.OpCreate, storage.Messages, nil)

	_, err := f.chat.SendMessage(context.Background(), conv.ID, "alice", "lost")
	assert.ErrorIs(t, err, storagetest.ErrInjected)
}

func TestRequestContactShare(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	conv := startConversation(t, f, "alice", "m-ab")

	req, msg, err := f.chat.RequestContactShare(ctx, conv.ID, "alice", "bob", models.ContactEmail)
	require.NoError(t, err)
	assert.Equal(t, models.ContactRequestPending, req.Status)
	assert.Equal(t, "alice", req.RequesterID)
	assert.Equal(t, "bob", req.RecipientID)
	assert.Equal(t, models.ContactEmail, req.ContactTypeRequested)
	assert.Nil(t, req.RespondedAt)

	assert.Equal(t, "Requested to share email", msg.Content)
	assert.Equal(t, models.MessageContactRequest, msg.MessageType)
	assert.Equal(t, req.ID, msg.RequestID)

	thread, err := f.chat.FetchThread(ctx, conv.ID)
	require.NoError(t, err)
	require.Len(t, thread.Messages, 1)
	require.Len(t, thread.Requests, 1)
	assert.Equal(t, req.ID, thread.RequestFor(thread.Messages[0]).ID)
	assert.Len(t, thread.Pending(), 1)
}

func TestRequestContactShareDefaultsRecipient(t *testing.T) {
	f := newFixture(t)
	conv := startConversation(t, f, "alice", "m-ab")

	req, _, err := f.chat.RequestContactShare(context.Background(), conv.ID, "bob", "", models.ContactPhone)
	require.NoError(t, err)
	assert.Equal(t, "alice", req.RecipientID)
}

func TestRequestContactShareValidation(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	conv := startConversation(t, f, "alice", "m-ab")

	_, _, err := f.chat.RequestContactShare(ctx, conv.ID, "alice", "bob", models.ContactType("fax"))
	assert.ErrorIs(t, err, ErrInvalidContactType)

	_, _, err = f.chat.RequestContactShare(ctx, conv.ID, "alice", "carol", models.ContactEmail)
	assert.ErrorIs(t, err, ErrInvalidRecipient)

	_, _, err = f.chat.RequestContactShare(ctx, conv.ID, "carol", "bob", models.ContactEmail)
	assert.ErrorIs(t, err, ErrNotParticipant)

	_, _, err = f.chat.RequestContactShare(ctx, conv.ID, "alice", "bob", models.ContactEmail)
	require.NoError(t, err)
	_, _, err = f.chat.RequestContactShare(ctx, conv.ID, "alice", "bob", models.ContactEmail)
	assert.ErrorIs(t, err, ErrRequestAlreadyOpen)

	_, _, err = f.chat.RequestContactShare(ctx, conv.ID, "alice", "bob", models.ContactPhone)
	assert.NoError(t, err)
}

func TestRequestContactShareRollsBackWhenMessageFails(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	conv := startConversation(t, f, "alice", "m-ab")
	f.store.Fail(storagetest.OpCreate, storage.Messages, nil)

	_, _, err := f.chat.RequestContactShare(ctx, conv.ID, "alice", "bob", models.ContactEmail)
	require.ErrorIs(t, err, storagetest.ErrInjected)
	assert.Equal(t, 1, f.store.Calls(storagetest.OpDelete, storage.ContactExchangeRequests))

	f.store.Heal()
	thread, err := f.chat.FetchThread(ctx, conv.ID)
	require.NoError(t, err)
	assert.Empty(t, thread.Requests)
	assert.Empty(t, thread.Messages)
}

func TestApproveContactRequestOnlyTouchesStatus(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	conv := startConversation(t, f, "alice", "m-ab")

	req, _, err := f.chat.RequestContactShare(ctx, conv.ID, "alice", "bob", models.ContactEmail)
	require.NoError(t, err)

	before := map[string]any{}
	raw, err := f.store.GetByID(ctx, storage.ContactExchangeRequests, req.ID)
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal(raw, &before))

	approved, err := f.chat.ApproveContactRequest(ctx, req.ID, "bob")
	require.NoError(t, err)
	assert.Equal(t, models.ContactRequestApproved, approved.Status)
	require.NotNil(t, approved.RespondedAt)

	after := map[string]any{}
	raw, err = f.store.GetByID(ctx, storage.ContactExchangeRequests, req.ID)
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal(raw, &after))

	assert.Equal(t, "approved", after["status"])
	assert.NotEmpty(t, after["respondedAt"])
	for k, v := range before {
		if k == "status" {
			continue
		}
		assert.Equal(t, v, after[k], "field %s changed", k)
	}
	assert.Len(t, after, len(before)+1)

	loaded, err := f.chat.LoadConversation(ctx, conv.ID, "alice")
	require.NoError(t, err)
	assert.True(t, loaded.Conversation.ParticipantTwoContactShared)
	assert.False(t, loaded.Conversation.ParticipantOneContactShared)
	assert.Empty(t, loaded.Pending())
}

func TestAnswerContactRequestErrors(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	conv := startConversation(t, f, "alice", "m-ab")
	req, _, err := f.chat.RequestContactShare(ctx, conv.ID, "alice", "bob", models.ContactPhone)
	require.NoError(t, err)

	_, err = f.chat.ApproveContactRequest(ctx, "missing", "bob")
	assert.ErrorIs(t, err, ErrRequestNotFound)

	_, err = f.chat.ApproveContactRequest(ctx, req.ID, "")
	assert.ErrorIs(t, err, ErrMemberRequired)

	_, err = f.chat.ApproveContactRequest(ctx, req.ID, "alice")
	assert.ErrorIs(t, err, ErrNotRecipient)

	declined, err := f.chat.DeclineContactRequest(ctx, req.ID, "bob")
	require.NoError(t, err)
	assert.Equal(t, models.ContactRequestDeclined, declined.Status)

	_, err = f.chat.ApproveContactRequest(ctx, req.ID, "bob")
	assert.ErrorIs(t, err, ErrRequestNotPending)

	thread, err := f.chat.FetchThread(ctx, conv.ID)
	require.NoError(t, err)
	require.Len(t, thread.Requests, 1)
	assert.Equal(t, models.ContactRequestDeclined, thread.Requests[0].Status)
}

func TestConcurrentAnswersLetOneWin(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	conv := startConversation(t, f, "alice", "m-ab")
	req, _, err := f.chat.RequestContactShare(ctx, conv.ID, "alice", "bob", models.ContactEmail)
	require.NoError(t, err)

	results := make(chan error, 6)
	var wg sync.WaitGroup
	for i := 0; i < 6; i++ {
		wg.Add(1)
		go func(approve bool) {
			defer wg.Done()
			if approve {
				_, err := f.chat.ApproveContactRequest(ctx, req.ID, "bob")
				results <- err
				return
			}
			_, err := f.chat.DeclineContactRequest(ctx, req.ID, "bob")
			results <- err
		}(i%2 == 0)
	}
	wg.Wait()
	close(results)

	won := 0
	for err := range results {
		if err == nil {
			won++
			continue
		}
		assert.ErrorIs(t, err, ErrRequestNotPending)
	}
	assert.Equal(t, 1, won)
}

func TestMarkMessagesAsRead(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	conv := startConversation(t, f, "alice", "m-ab")

	for _, author := range []string{"bob", "bob", "alice"} {
		_, err := f.chat.SendMessage(ctx, conv.ID, author, "hi from "+author)
		require.NoError(t, err)
	}

	count, err := f.chat.MarkMessagesAsRead(ctx, conv.ID, "alice")
	require.NoError(t, err)
	assert.Equal(t, 2, count)

	count, err = f.chat.MarkMessagesAsRead(ctx, conv.ID, "alice")
	require.NoError(t, err)
	assert.Equal(t, 0, count)

	thread, err := f.chat.FetchThread(ctx, conv.ID)
	require.NoError(t, err)
	for _, msg := range thread.Messages {
		assert.Equal(t, msg.AuthorID == "bob", msg.IsRead, msg.Content)
	}
}

func TestArchiveConversation(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	conv := startConversation(t, f, "alice", "m-ab")

	assert.ErrorIs(t, f.chat.ArchiveConversation(ctx, conv.ID, "carol"), ErrNotParticipant)
	require.NoError(t, f.chat.ArchiveConversation(ctx, conv.ID, "bob"))

	loaded, err := f.chat.LoadConversation(ctx, conv.ID, "alice")
	require.NoError(t, err)
	assert.Equal(t, models.ConversationArchived, loaded.Conversation.Status)
}
