// Package chatsync keeps the view of one open conversation fresh by polling.
//
// A Session is created per open conversation view. It loads the conversation once,
// then re-reads the conversation record and its thread (messages and contact exchange
// requests) on a fixed interval until the context passed to Run is cancelled. Writes made through the
// session are shown immediately and reconciled against later fetches by record id,
// so a freshly sent message is never shown twice and never disappears while an
// older fetch is still in flight.
package chatsync

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/sirupsen/logrus"

	"skillswap/exchange-service/internal/metrics"
	"skillswap/exchange-service/internal/models"
	"skillswap/exchange-service/internal/service"
)

const DefaultInterval = 2 * time.Second

// Source is the part of service.ChatService a session drives.
type Source interface {
	LoadConversation(ctx context.Context, conversationID, memberID string) (*service.ConversationSnapshot, error)
	RefreshConversation(ctx context.Context, conversationID string) (*service.ConversationSnapshot, error)
	SendMessage(ctx context.Context, conversationID, authorID, content string) (*models.Message, error)
	RequestContactShare(ctx context.Context, conversationID, requesterID, recipientID string, contactType models.ContactType) (*models.ContactExchangeRequest, *models.Message, error)
	ApproveContactRequest(ctx context.Context, requestID, memberID string) (*models.ContactExchangeRequest, error)
	DeclineContactRequest(ctx context.Context, requestID, memberID string) (*models.ContactExchangeRequest, error)
}

type Config struct {
	// Interval between refresh ticks. Zero means DefaultInterval.
	Interval time.Duration
	// FetchTimeout bounds a single tick's fetch. Zero means no timeout.
	FetchTimeout time.Duration
}

// View is an immutable copy of what the session currently shows.
type View struct {
	service.ConversationSnapshot
	Version uint64 `json:"version"`
}

// local is a record written through the session that fetches may not reflect yet.
// It stays overlaid until a tick issued after the write has been applied.
type local[T any] struct {
	rec   T
	after uint64
}

type Session struct {
	source         Source
	logger         *logrus.Logger
	conversationID string
	memberID       string
	interval       time.Duration
	fetchTimeout   time.Duration

	mu            sync.Mutex
	conversation  *models.Conversation
	otherUser     *models.UserProfile
	base          service.Thread
	localMessages map[string]local[*models.Message]
	localRequests map[string]local[*models.ContactExchangeRequest]
	view          View
	issued        uint64
	applied       uint64

	updates  chan View
	inflight sync.WaitGroup
}

// Open loads the conversation for memberID. It returns service.ErrConversationNotFound
// when the id does not resolve.
func Open(ctx context.Context, source Source, conversationID, memberID string, cfg Config, logger *logrus.Logger) (*Session, error) {
	snapshot, err := source.LoadConversation(ctx, conversationID, memberID)
	if err != nil {
		return nil, err
	}

	interval := cfg.Interval
	if interval <= 0 {
		interval = DefaultInterval
	}

	s := &Session{
		source:         source,
		logger:         logger,
		conversationID: conversationID,
		memberID:       memberID,
		interval:       interval,
		fetchTimeout:   cfg.FetchTimeout,
		conversation:   snapshot.Conversation,
		otherUser:      snapshot.OtherUser,
		base:           snapshot.Thread,
		localMessages:  make(map[string]local[*models.Message]),
		localRequests:  make(map[string]local[*models.ContactExchangeRequest]),
		updates:        make(chan View, 1),
	}
	s.mu.Lock()
	s.rebuildLocked()
	s.mu.Unlock()
	return s, nil
}

func (s *Session) ConversationID() string {
	return s.conversationID
}

func (s *Session) MemberID() string {
	return s.memberID
}

// Snapshot returns the current view.
func (s *Session) Snapshot() View {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.view
}

// Updates delivers the newest view after every change. Only the latest view is kept
// when the reader falls behind.
func (s *Session) Updates() <-chan View {
	return s.updates
}

// Run refreshes the conversation every interval until ctx is cancelled. Ticks are not
// serialized: a slow fetch does not delay the next tick. Fetches still in flight when
// ctx is cancelled are left to finish and their results are dropped.
func (s *Session) Run(ctx context.Context) error {
	metrics.ActiveSyncSessions.Inc()
	defer metrics.ActiveSyncSessions.Dec()

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			seq := s.nextSeq()
			s.inflight.Add(1)
			go func() {
				defer s.inflight.Done()
				s.tick(ctx, seq)
			}()
		}
	}
}

// Wait blocks until fetches started by Run have returned.
func (s *Session) Wait() {
	s.inflight.Wait()
}

// Refresh performs one fetch-and-apply synchronously.
func (s *Session) Refresh(ctx context.Context) error {
	seq := s.nextSeq()
	fetched, err := s.fetch(ctx)
	if err != nil {
		s.logFetchError(err)
		return err
	}
	s.apply(fetched, seq)
	return nil
}

func (s *Session) tick(ctx context.Context, seq uint64) {
	fetched, err := s.fetch(context.WithoutCancel(ctx))
	if ctx.Err() != nil {
		metrics.PollTicksTotal.WithLabelValues("discarded").Inc()
		return
	}
	if err != nil {
		s.logFetchError(err)
		return
	}
	s.apply(fetched, seq)
}

func (s *Session) fetch(ctx context.Context) (*service.ConversationSnapshot, error) {
	if s.fetchTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.fetchTimeout)
		defer cancel()
	}
	return s.source.RefreshConversation(ctx, s.conversationID)
}

func (s *Session) logFetchError(err error) {
	metrics.PollTicksTotal.WithLabelValues("failed").Inc()
	s.logger.WithError(err).WithField("conversation_id", s.conversationID).Warn("Conversation refresh failed")
}

func (s *Session) nextSeq() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.issued++
	return s.issued
}

// apply replaces the fetched base unless a later tick has already been applied.
func (s *Session) apply(fetched *service.ConversationSnapshot, seq uint64) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if seq <= s.applied {
		metrics.PollTicksTotal.WithLabelValues("stale").Inc()
		return
	}
	s.applied = seq
	s.base = fetched.Thread
	if fetched.Conversation != nil {
		s.conversation = mergeConversation(s.conversation, fetched.Conversation)
	}
	s.rebuildLocked()
	metrics.PollTicksTotal.WithLabelValues("applied").Inc()
}

// Send stores a text message and shows it right away.
func (s *Session) Send(ctx context.Context, content string) (*models.Message, error) {
	msg, err := s.source.SendMessage(ctx, s.conversationID, s.memberID, content)
	if err != nil {
		s.logger.WithError(err).WithField("conversation_id", s.conversationID).Error("Error sending message")
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.localMessages[msg.ID] = local[*models.Message]{rec: msg, after: s.issued}
	conv := *s.conversation
	lastMessageAt := msg.CreatedAt
	conv.LastMessageAt = &lastMessageAt
	s.conversation = &conv
	s.rebuildLocked()
	return msg, nil
}

// RequestContact asks the other participant to share contactType.
func (s *Session) RequestContact(ctx context.Context, contactType models.ContactType) (*models.ContactExchangeRequest, error) {
	req, msg, err := s.source.RequestContactShare(ctx, s.conversationID, s.memberID, "", contactType)
	if err != nil {
		s.logger.WithError(err).WithField("conversation_id", s.conversationID).Error("Error requesting contact")
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.localRequests[req.ID] = local[*models.ContactExchangeRequest]{rec: req, after: s.issued}
	s.localMessages[msg.ID] = local[*models.Message]{rec: msg, after: s.issued}
	s.rebuildLocked()
	return req, nil
}

func (s *Session) Approve(ctx context.Context, requestID string) (*models.ContactExchangeRequest, error) {
	return s.answer(ctx, requestID, s.source.ApproveContactRequest)
}

func (s *Session) Decline(ctx context.Context, requestID string) (*models.ContactExchangeRequest, error) {
	return s.answer(ctx, requestID, s.source.DeclineContactRequest)
}

func (s *Session) answer(ctx context.Context, requestID string, call func(context.Context, string, string) (*models.ContactExchangeRequest, error)) (*models.ContactExchangeRequest, error) {
	req, err := call(ctx, requestID, s.memberID)
	if err != nil {
		s.logger.WithError(err).WithField("request_id", requestID).Error("Error answering contact request")
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.localRequests[req.ID] = local[*models.ContactExchangeRequest]{rec: req, after: s.issued}
	if req.Status == models.ContactRequestApproved {
		conv := *s.conversation
		if conv.ParticipantOneID == s.memberID {
			conv.ParticipantOneContactShared = true
		} else {
			conv.ParticipantTwoContactShared = true
		}
		s.conversation = &conv
	}
	s.rebuildLocked()
	return req, nil
}

// mergeConversation takes the fetched record but keeps what local writes already
// showed: a later lastMessageAt and shared flags, which only ever turn on.
func mergeConversation(current, fetched *models.Conversation) *models.Conversation {
	merged := *fetched
	if current == nil {
		return &merged
	}
	if current.LastMessageAt != nil && (merged.LastMessageAt == nil || current.LastMessageAt.After(*merged.LastMessageAt)) {
		last := *current.LastMessageAt
		merged.LastMessageAt = &last
	}
	merged.ParticipantOneContactShared = merged.ParticipantOneContactShared || current.ParticipantOneContactShared
	merged.ParticipantTwoContactShared = merged.ParticipantTwoContactShared || current.ParticipantTwoContactShared
	return &merged
}

// rebuildLocked derives the view from the fetched base and local writes and publishes it.
func (s *Session) rebuildLocked() {
	messages := overlay(s.base.Messages, s.localMessages, s.applied, func(m *models.Message) string { return m.ID })
	service.SortMessages(messages)

	requests := overlay(s.base.Requests, s.localRequests, s.applied, func(r *models.ContactExchangeRequest) string { return r.ID })
	sort.SliceStable(requests, func(i, j int) bool {
		return requests[i].CreatedAt.Before(requests[j].CreatedAt)
	})

	s.view = View{
		ConversationSnapshot: service.ConversationSnapshot{
			Conversation: s.conversation,
			OtherUser:    s.otherUser,
			Thread: service.Thread{
				Messages: messages,
				Requests: requests,
			},
		},
		Version: s.view.Version + 1,
	}
	s.publishLocked()
}

func (s *Session) publishLocked() {
	select {
	case s.updates <- s.view:
		return
	default:
	}
	// Drop the unread view in favour of the new one.
	select {
	case <-s.updates:
	default:
	}
	select {
	case s.updates <- s.view:
	default:
	}
}

// overlay merges local writes into fetched records by id. Local entries written before
// the applied tick was issued are discarded: the fetch already reflects them.
func overlay[T any](fetched []T, pending map[string]local[T], applied uint64, id func(T) string) []T {
	out := make([]T, 0, len(fetched)+len(pending))
	index := make(map[string]int, len(fetched))
	for _, rec := range fetched {
		index[id(rec)] = len(out)
		out = append(out, rec)
	}
	for key, p := range pending {
		if applied > p.after {
			delete(pending, key)
			continue
		}
		if i, ok := index[key]; ok {
			out[i] = p.rec
		} else {
			out = append(out, p.rec)
		}
	}
	return out
}
