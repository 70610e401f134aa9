package chatsync

import (
	"context"
	"fmt"
	"io"
	"sync"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"skillswap/exchange-service/internal/models"
	"skillswap/exchange-service/internal/repository"
	"skillswap/exchange-service/internal/service"
	"skillswap/exchange-service/internal/storage"
	"skillswap/exchange-service/internal/storage/storagetest"
)

func quietLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return logger
}

var epoch = time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)

// step scripts one RefreshConversation call: it blocks until hold is closed (when set)
// and then returns thread and err.
type step struct {
	hold   chan struct{}
	thread *service.Thread
	err    error
}

type fakeSource struct {
	mu       sync.Mutex
	snapshot *service.ConversationSnapshot
	loadErr  error
	thread   *service.Thread
	conv     *models.Conversation
	fetchErr error
	hold     chan struct{}
	script   map[int]step
	calls    int
	entered  chan int
	nextID   int
}

func newFakeSource() *fakeSource {
	return &fakeSource{
		snapshot: &service.ConversationSnapshot{
			Conversation: &models.Conversation{ID: "c1", ParticipantOneID: "alice", ParticipantTwoID: "bob", Status: models.ConversationActive},
			OtherUser:    &models.UserProfile{ID: "bob", UserName: "Bob"},
			Thread:       service.Thread{Messages: []*models.Message{}, Requests: []*models.ContactExchangeRequest{}},
		},
		thread:  &service.Thread{Messages: []*models.Message{}, Requests: []*models.ContactExchangeRequest{}},
		script:  map[int]step{},
		entered: make(chan int, 64),
	}
}

func (f *fakeSource) LoadConversation(ctx context.Context, conversationID, memberID string) (*service.ConversationSnapshot, error) {
	if f.loadErr != nil {
		return nil, f.loadErr
	}
	return f.snapshot, nil
}

func (f *fakeSource) RefreshConversation(ctx context.Context, conversationID string) (*service.ConversationSnapshot, error) {
	f.mu.Lock()
	f.calls++
	call := f.calls
	st, ok := f.script[call]
	if !ok {
		st = step{hold: f.hold, thread: f.thread, err: f.fetchErr}
	}
	conv := f.conv
	f.mu.Unlock()

	select {
	case f.entered <- call:
	default:
	}
	if st.hold != nil {
		<-st.hold
	}
	if st.err != nil {
		return nil, st.err
	}
	return &service.ConversationSnapshot{Conversation: conv, Thread: *st.thread}, nil
}

func (f *fakeSource) id() string {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.nextID++
	return fmt.Sprintf("local-%d", f.nextID)
}

func (f *fakeSource) SendMessage(ctx context.Context, conversationID, authorID, content string) (*models.Message, error) {
	return &models.Message{
		ID:          f.id(),
		ThreadID:    conversationID,
		AuthorID:    authorID,
		Content:     content,
		MessageType: models.MessageText,
		CreatedAt:   epoch.Add(time.Hour),
	}, nil
}

func (f *fakeSource) RequestContactShare(ctx context.Context, conversationID, requesterID, recipientID string, contactType models.ContactType) (*models.ContactExchangeRequest, *models.Message, error) {
	req := &models.ContactExchangeRequest{
		ID:                   f.id(),
		ConversationID:       conversationID,
		RequesterID:          requesterID,
		RecipientID:          "bob",
		ContactTypeRequested: contactType,
		Status:               models.ContactRequestPending,
		CreatedAt:            epoch.Add(time.Hour),
	}
	msg := &models.Message{
		ID:          f.id(),
		ThreadID:    conversationID,
		AuthorID:    requesterID,
		Content:     "Requested to share " + string(contactType),
		MessageType: models.MessageContactRequest,
		CreatedAt:   req.CreatedAt,
		RequestID:   req.ID,
	}
	return req, msg, nil
}

func (f *fakeSource) ApproveContactRequest(ctx context.Context, requestID, memberID string) (*models.ContactExchangeRequest, error) {
	now := epoch.Add(2 * time.Hour)
	return &models.ContactExchangeRequest{ID: requestID, Status: models.ContactRequestApproved, RespondedAt: &now, CreatedAt: epoch}, nil
}

func (f *fakeSource) DeclineContactRequest(ctx context.Context, requestID, memberID string) (*models.ContactExchangeRequest, error) {
	now := epoch.Add(2 * time.Hour)
	return &models.ContactExchangeRequest{ID: requestID, Status: models.ContactRequestDeclined, RespondedAt: &now, CreatedAt: epoch}, nil
}

func (f *fakeSource) setThread(messages ...*models.Message) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.thread = &service.Thread{Messages: messages, Requests: []*models.ContactExchangeRequest{}}
}

func textMessage(id, content string, at time.Time) *models.Message {
	return &models.Message{ID: id, ThreadID: "c1", AuthorID: "bob", Content: content, MessageType: models.MessageText, CreatedAt: at}
}

func contents(v View) []string {
	out := make([]string, len(v.Messages))
	for i, m := range v.Messages {
		out[i] = m.Content
	}
	return out
}

func openFake(t *testing.T, src *fakeSource, cfg Config) *Session {
	t.Helper()
	s, err := Open(context.Background(), src, "c1", "alice", cfg, quietLogger())
	require.NoError(t, err)
	return s
}

func TestOpenPublishesInitialView(t *testing.T) {
	src := newFakeSource()
	src.snapshot.Messages = []*models.Message{
		textMessage("m2", "second", epoch.Add(time.Minute)),
		textMessage("m1", "first", epoch),
	}

	s := openFake(t, src, Config{})
	assert.Equal(t, "c1", s.ConversationID())
	assert.Equal(t, "alice", s.MemberID())
	assert.Equal(t, DefaultInterval, s.interval)

	view := <-s.Updates()
	assert.Equal(t, []string{"first", "second"}, contents(view))
	assert.Equal(t, "Bob", view.OtherUser.UserName)
	assert.Equal(t, view, s.Snapshot())
}

func TestOpenReturnsLoadError(t *testing.T) {
	src := newFakeSource()
	src.loadErr = service.ErrConversationNotFound

	_, err := Open(context.Background(), src, "missing", "alice", Config{}, quietLogger())
	assert.ErrorIs(t, err, service.ErrConversationNotFound)
}

func TestSendShowsMessageImmediately(t *testing.T) {
	src := newFakeSource()
	s := openFake(t, src, Config{})

	msg, err := s.Send(context.Background(), "hello")
	require.NoError(t, err)

	view := s.Snapshot()
	assert.Equal(t, []string{"hello"}, contents(view))
	require.NotNil(t, view.Conversation.LastMessageAt)
	assert.True(t, msg.CreatedAt.Equal(*view.Conversation.LastMessageAt))
}

func TestSendThenRefreshShowsOneCopy(t *testing.T) {
	ctx := context.Background()
	src := newFakeSource()
	s := openFake(t, src, Config{})

	msg, err := s.Send(ctx, "hello")
	require.NoError(t, err)

	src.setThread(msg)
	require.NoError(t, s.Refresh(ctx))
	assert.Equal(t, []string{"hello"}, contents(s.Snapshot()))

	require.NoError(t, s.Refresh(ctx))
	assert.Equal(t, []string{"hello"}, contents(s.Snapshot()))
}

func TestFetchIssuedBeforeSendDoesNotHideMessage(t *testing.T) {
	ctx := context.Background()
	src := newFakeSource()
	s := openFake(t, src, Config{})

	hold := make(chan struct{})
	src.script[1] = step{hold: hold, thread: &service.Thread{}}

	errs := make(chan error, 1)
	go func() { errs <- s.Refresh(ctx) }()
	<-src.entered

	msg, err := s.Send(ctx, "sent during fetch")
	require.NoError(t, err)

	close(hold)
	require.NoError(t, <-errs)
	assert.Equal(t, []string{"sent during fetch"}, contents(s.Snapshot()))

	src.setThread(msg)
	require.NoError(t, s.Refresh(ctx))
	assert.Equal(t, []string{"sent during fetch"}, contents(s.Snapshot()))
}

func TestStaleFetchIsDiscarded(t *testing.T) {
	ctx := context.Background()
	src := newFakeSource()
	s := openFake(t, src, Config{})

	hold := make(chan struct{})
	src.script[1] = step{hold: hold, thread: &service.Thread{Messages: []*models.Message{textMessage("old", "old", epoch)}}}
	src.script[2] = step{thread: &service.Thread{Messages: []*models.Message{
		textMessage("old", "old", epoch),
		textMessage("new", "new", epoch.Add(time.Second)),
	}}}

	errs := make(chan error, 1)
	go func() { errs <- s.Refresh(ctx) }()
	<-src.entered

	require.NoError(t, s.Refresh(ctx))
	assert.Equal(t, []string{"old", "new"}, contents(s.Snapshot()))

	close(hold)
	require.NoError(t, <-errs)
	assert.Equal(t, []string{"old", "new"}, contents(s.Snapshot()))
}

func TestRefreshFailureKeepsView(t *testing.T) {
	ctx := context.Background()
	src := newFakeSource()
	src.snapshot.Messages = []*models.Message{textMessage("m1", "kept", epoch)}
	s := openFake(t, src, Config{})
	before := s.Snapshot()

	src.fetchErr = storagetest.ErrInjected
	src.thread = nil
	err := s.Refresh(ctx)
	assert.ErrorIs(t, err, storagetest.ErrInjected)
	assert.Equal(t, before, s.Snapshot())
}

func TestRunSwallowsFailures(t *testing.T) {
	src := newFakeSource()
	src.snapshot.Messages = []*models.Message{textMessage("m1", "kept", epoch)}
	src.fetchErr = storagetest.ErrInjected
	src.thread = nil
	s := openFake(t, src, Config{Interval: 5 * time.Millisecond})

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- s.Run(ctx) }()

	for i := 0; i < 3; i++ {
		<-src.entered
	}
	cancel()
	require.NoError(t, <-done)
	s.Wait()

	assert.Equal(t, []string{"kept"}, contents(s.Snapshot()))
}

func TestRunDropsResultsAfterCancel(t *testing.T) {
	src := newFakeSource()
	src.hold = make(chan struct{})
	src.setThread(textMessage("late", "late", epoch))
	s := openFake(t, src, Config{Interval: 5 * time.Millisecond})
	before := s.Snapshot()

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- s.Run(ctx) }()

	<-src.entered
	cancel()
	require.NoError(t, <-done)

	close(src.hold)
	s.Wait()

	assert.Equal(t, before, s.Snapshot())
}

func TestRequestContactAndApproveOverlay(t *testing.T) {
	ctx := context.Background()
	src := newFakeSource()
	s := openFake(t, src, Config{})

	req, err := s.RequestContact(ctx, models.ContactPhone)
	require.NoError(t, err)

	view := s.Snapshot()
	require.Len(t, view.Requests, 1)
	require.Len(t, view.Messages, 1)
	assert.Equal(t, req.ID, view.RequestFor(view.Messages[0]).ID)
	assert.Len(t, view.Pending(), 1)

	_, err = s.Approve(ctx, req.ID)
	require.NoError(t, err)
	view = s.Snapshot()
	require.Len(t, view.Requests, 1)
	assert.Equal(t, models.ContactRequestApproved, view.Requests[0].Status)
	assert.Empty(t, view.Pending())
}

func TestRefreshPicksUpConversationChanges(t *testing.T) {
	ctx := context.Background()
	src := newFakeSource()
	s := openFake(t, src, Config{})

	reply := textMessage("m1", "my email is bob@example.com", epoch.Add(time.Minute))
	last := reply.CreatedAt
	src.mu.Lock()
	src.conv = &models.Conversation{
		ID:                          "c1",
		ParticipantOneID:            "alice",
		ParticipantTwoID:            "bob",
		Status:                      models.ConversationActive,
		LastMessageAt:               &last,
		ParticipantTwoContactShared: true,
	}
	src.mu.Unlock()
	src.setThread(reply)

	require.NoError(t, s.Refresh(ctx))
	view := s.Snapshot()
	assert.True(t, view.Conversation.ParticipantTwoContactShared)
	assert.False(t, view.Conversation.ParticipantOneContactShared)
	require.NotNil(t, view.Conversation.LastMessageAt)
	assert.True(t, last.Equal(*view.Conversation.LastMessageAt))
	assert.Equal(t, "Bob", view.OtherUser.UserName)
}

func TestRefreshKeepsNewerLocalConversationState(t *testing.T) {
	ctx := context.Background()
	src := newFakeSource()
	s := openFake(t, src, Config{})

	sent, err := s.Send(ctx, "hello")
	require.NoError(t, err)
	_, err = s.Approve(ctx, "r1")
	require.NoError(t, err)

	src.mu.Lock()
	src.conv = &models.Conversation{ID: "c1", ParticipantOneID: "alice", ParticipantTwoID: "bob", Status: models.ConversationActive}
	src.mu.Unlock()

	require.NoError(t, s.Refresh(ctx))
	view := s.Snapshot()
	require.NotNil(t, view.Conversation.LastMessageAt)
	assert.True(t, sent.CreatedAt.Equal(*view.Conversation.LastMessageAt))
	assert.True(t, view.Conversation.ParticipantOneContactShared)
}

func TestUpdatesKeepsOnlyLatestView(t *testing.T) {
	ctx := context.Background()
	src := newFakeSource()
	s := openFake(t, src, Config{})

	_, err := s.Send(ctx, "one")
	require.NoError(t, err)
	_, err = s.Send(ctx, "two")
	require.NoError(t, err)

	view := <-s.Updates()
	assert.Equal(t, s.Snapshot().Version, view.Version)
	assert.Len(t, view.Messages, 2)

	select {
	case extra := <-s.Updates():
		t.Fatalf("unexpected queued view %d", extra.Version)
	default:
	}
}

func TestRunPicksUpOtherParticipantsMessages(t *testing.T) {
	store := storage.NewMemoryStore()
	storagetest.Seed(t, store, storage.UserProfiles,
		&models.UserProfile{ID: "alice", UserName: "Alice"},
		&models.UserProfile{ID: "bob", UserName: "Bob"},
	)
	storagetest.Seed(t, store, storage.Matches, &models.Match{ID: "m1", UserOneID: "alice", UserTwoID: "bob"})
	chat := service.NewChatService(repository.NewChatRepository(store), repository.NewCatalogRepository(store), quietLogger())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	conv, _, err := chat.StartConversation(ctx, "alice", "m1")
	require.NoError(t, err)

	s, err := Open(ctx, chat, conv.ID, "alice", Config{Interval: 10 * time.Millisecond}, quietLogger())
	require.NoError(t, err)

	done := make(chan error, 1)
	go func() { done <- s.Run(ctx) }()

	_, err = chat.SendMessage(ctx, conv.ID, "bob", "hi alice")
	require.NoError(t, err)

	require.Eventually(t, func() bool {
		return len(s.Snapshot().Messages) == 1
	}, 2*time.Second, 10*time.Millisecond)

	sent, err := s.Send(ctx, "hi bob")
	require.NoError(t, err)

	require.Eventually(t, func() bool {
		view := s.Snapshot()
		count := 0
		for _, m := range view.Messages {
			if m.ID == sent.ID {
				count++
			}
		}
		return len(view.Messages) == 2 && count == 1
	}, 2*time.Second, 10*time.Millisecond)

	req, err := s.RequestContact(ctx, models.ContactEmail)
	require.NoError(t, err)
	_, err = chat.ApproveContactRequest(ctx, req.ID, "bob")
	require.NoError(t, err)

	require.Eventually(t, func() bool {
		view := s.Snapshot()
		return view.Conversation.ParticipantTwoContactShared && len(view.Pending()) == 0
	}, 2*time.Second, 10*time.Millisecond)

	cancel()
	require.NoError(t, <-done)
	s.Wait()
}
