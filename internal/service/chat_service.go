package service

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"skillswap/exchange-service/internal/metrics"
	"skillswap/exchange-service/internal/models"
	"skillswap/exchange-service/internal/repository"
)

type ChatService interface {
	ListConversations(ctx context.Context, memberID string) ([]*ConversationSummary, error)
	StartConversation(ctx context.Context, memberID, matchID string) (*models.Conversation, bool, error)
	ArchiveConversation(ctx context.Context, conversationID, memberID string) error
	LoadConversation(ctx context.Context, conversationID, memberID string) (*ConversationSnapshot, error)
	FetchThread(ctx context.Context, conversationID string) (*Thread, error)
	RefreshConversation(ctx context.Context, conversationID string) (*ConversationSnapshot, error)
	SendMessage(ctx context.Context, conversationID, authorID, content string) (*models.Message, error)
	RequestContactShare(ctx context.Context, conversationID, requesterID, recipientID string, contactType models.ContactType) (*models.ContactExchangeRequest, *models.Message, error)
	ApproveContactRequest(ctx context.Context, requestID, memberID string) (*models.ContactExchangeRequest, error)
	DeclineContactRequest(ctx context.Context, requestID, memberID string) (*models.ContactExchangeRequest, error)
	MarkMessagesAsRead(ctx context.Context, conversationID, memberID string) (int, error)
}

type Option func(*options)

type options struct {
	now func() time.Time
}

// WithClock replaces time.Now for every timestamp the service writes.
func WithClock(now func() time.Time) Option {
	return func(o *options) {
		o.now = now
	}
}

func buildOptions(opts []Option) options {
	o := options{now: time.Now}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

type chatService struct {
	repository repository.ChatRepository
	catalog    repository.CatalogRepository
	logger     *logrus.Logger
	now        func() time.Time
}

func NewChatService(repo repository.ChatRepository, catalog repository.CatalogRepository, logger *logrus.Logger, opts ...Option) ChatService {
	o := buildOptions(opts)
	return &chatService{
		repository: repo,
		catalog:    catalog,
		logger:     logger,
		now:        o.now,
	}
}

func (s *chatService) ListConversations(ctx context.Context, memberID string) ([]*ConversationSummary, error) {
	if memberID == "" {
		return nil, ErrMemberRequired
	}

	all, err := s.repository.ListConversations(ctx)
	if err != nil {
		s.logger.WithError(err).Error("Failed to list conversations")
		return nil, err
	}

	var summaries []*ConversationSummary
	for _, conv := range all {
		if conv.HasParticipant(memberID) {
			summaries = append(summaries, &ConversationSummary{Conversation: conv})
		}
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(8)
	for _, summary := range summaries {
		summary := summary
		g.Go(func() error {
			other, err := s.profile(gctx, summary.Conversation.OtherParticipant(memberID))
			if err != nil {
				return err
			}
			summary.OtherUser = other
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		s.logger.WithError(err).Error("Failed to load conversation participants")
		return nil, err
	}

	sort.SliceStable(summaries, func(i, j int) bool {
		return summaries[i].Conversation.ActivityAt().After(summaries[j].Conversation.ActivityAt())
	})

	return summaries, nil
}

func (s *chatService) StartConversation(ctx context.Context, memberID, matchID string) (*models.Conversation, bool, error) {
	if memberID == "" {
		return nil, false, ErrMemberRequired
	}

	match, err := s.catalog.GetMatchByID(ctx, matchID)
	if err != nil {
		if repository.IsNotFound(err) {
			return nil, false, ErrMatchNotFound
		}
		return nil, false, err
	}

	if match.UserOneID != memberID && match.UserTwoID != memberID {
		return nil, false, ErrNotParticipant
	}

	partnerID := match.UserTwoID
	if match.UserTwoID == memberID {
		partnerID = match.UserOneID
	}
	if partnerID == "" {
		return nil, false, ErrMatchHasNoPartner
	}
	if partnerID == memberID {
		return nil, false, ErrSelfConversation
	}

	existing, err := s.repository.ListConversations(ctx)
	if err != nil {
		return nil, false, err
	}
	for _, conv := range existing {
		if conv.MatchID == matchID && conv.HasParticipant(memberID) && conv.HasParticipant(partnerID) {
			return conv, false, nil
		}
	}

	now := s.now()
	conv := &models.Conversation{
		ID:               uuid.New().String(),
		ParticipantOneID: memberID,
		ParticipantTwoID: partnerID,
		MatchID:          matchID,
		Status:           models.ConversationActive,
		CreatedAt:        now,
		LastMessageAt:    &now,
	}

	if err := s.repository.CreateConversation(ctx, conv); err != nil {
		s.logger.WithError(err).Error("Failed to create conversation")
		return nil, false, err
	}

	s.logger.WithFields(logrus.Fields{
		"conversation_id": conv.ID,
		"match_id":        matchID,
		"participant_one": memberID,
		"participant_two": partnerID,
	}).Info("Conversation created")

	return conv, true, nil
}

func (s *chatService) ArchiveConversation(ctx context.Context, conversationID, memberID string) error {
	if _, err := s.participantConversation(ctx, conversationID, memberID); err != nil {
		return err
	}
	archived := models.ConversationArchived
	if err := s.repository.UpdateConversation(ctx, conversationID, models.ConversationPatch{Status: &archived}); err != nil {
		s.logger.WithError(err).Error("Failed to archive conversation")
		return err
	}
	return nil
}

func (s *chatService) LoadConversation(ctx context.Context, conversationID, memberID string) (*ConversationSnapshot, error) {
	conv, err := s.participantConversation(ctx, conversationID, memberID)
	if err != nil {
		return nil, err
	}

	snapshot := &ConversationSnapshot{Conversation: conv}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		other, err := s.profile(gctx, conv.OtherParticipant(memberID))
		if err != nil {
			return err
		}
		snapshot.OtherUser = other
		return nil
	})
	g.Go(func() error {
		thread, err := s.FetchThread(gctx, conversationID)
		if err != nil {
			return err
		}
		snapshot.Thread = *thread
		return nil
	})
	if err := g.Wait(); err != nil {
		s.logger.WithError(err).WithField("conversation_id", conversationID).Error("Failed to load conversation")
		return nil, err
	}

	return snapshot, nil
}

// RefreshConversation re-reads the conversation record alongside its thread. OtherUser
// is left nil: profiles are not re-read.
func (s *chatService) RefreshConversation(ctx context.Context, conversationID string) (*ConversationSnapshot, error) {
	snapshot := &ConversationSnapshot{}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		conv, err := s.repository.GetConversationByID(gctx, conversationID)
		if err != nil {
			if repository.IsNotFound(err) {
				return ErrConversationNotFound
			}
			return err
		}
		snapshot.Conversation = conv
		return nil
	})
	g.Go(func() error {
		thread, err := s.FetchThread(gctx, conversationID)
		if err != nil {
			return err
		}
		snapshot.Thread = *thread
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return snapshot, nil
}

// FetchThread reads both collections in full and keeps the records of one conversation.
func (s *chatService) FetchThread(ctx context.Context, conversationID string) (*Thread, error) {
	thread := &Thread{
		Messages: []*models.Message{},
		Requests: []*models.ContactExchangeRequest{},
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		all, err := s.repository.ListMessages(gctx)
		if err != nil {
			return err
		}
		for _, msg := range all {
			if msg.ThreadID == conversationID {
				thread.Messages = append(thread.Messages, msg)
			}
		}
		SortMessages(thread.Messages)
		return nil
	})
	g.Go(func() error {
		all, err := s.repository.ListContactRequests(gctx)
		if err != nil {
			return err
		}
		for _, req := range all {
			if req.ConversationID == conversationID {
				thread.Requests = append(thread.Requests, req)
			}
		}
		sort.SliceStable(thread.Requests, func(i, j int) bool {
			return thread.Requests[i].CreatedAt.Before(thread.Requests[j].CreatedAt)
		})
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return thread, nil
}

func (s *chatService) SendMessage(ctx context.Context, conversationID, authorID, content string) (*models.Message, error) {
	if strings.TrimSpace(content) == "" {
		return nil, ErrEmptyMessage
	}

	if _, err := s.participantConversation(ctx, conversationID, authorID); err != nil {
		return nil, err
	}

	now := s.now()
	msg := &models.Message{
		ID:          uuid.New().String(),
		ThreadID:    conversationID,
		AuthorID:    authorID,
		Content:     content,
		MessageType: models.MessageText,
		CreatedAt:   now,
	}

	if err := s.repository.CreateMessage(ctx, msg); err != nil {
		s.logger.WithError(err).Error("Failed to send message")
		return nil, err
	}
	metrics.MessagesSentTotal.WithLabelValues(string(models.MessageText)).Inc()

	// The message is stored; a stale lastMessageAt only affects list ordering.
	if err := s.repository.UpdateConversation(ctx, conversationID, models.ConversationPatch{LastMessageAt: &now}); err != nil {
		s.logger.WithError(err).WithField("conversation_id", conversationID).Warn("Failed to update lastMessageAt")
	}

	s.logger.WithFields(logrus.Fields{
		"message_id":      msg.ID,
		"conversation_id": conversationID,
		"author_id":       authorID,
	}).Info("Message sent")

	return msg, nil
}

// RequestContactShare stores a pending request and its announcing message. If the
// message cannot be stored the request is removed again.
func (s *chatService) RequestContactShare(ctx context.Context, conversationID, requesterID, recipientID string, contactType models.ContactType) (*models.ContactExchangeRequest, *models.Message, error) {
	if !contactType.Valid() {
		return nil, nil, ErrInvalidContactType
	}

	conv, err := s.participantConversation(ctx, conversationID, requesterID)
	if err != nil {
		return nil, nil, err
	}

	other := conv.OtherParticipant(requesterID)
	if recipientID == "" {
		recipientID = other
	}
	if recipientID != other || recipientID == "" {
		return nil, nil, ErrInvalidRecipient
	}

	existing, err := s.repository.ListContactRequests(ctx)
	if err != nil {
		return nil, nil, err
	}
	for _, req := range existing {
		if req.ConversationID == conversationID && req.RequesterID == requesterID &&
			req.ContactTypeRequested == contactType && req.Status == models.ContactRequestPending {
			return nil, nil, ErrRequestAlreadyOpen
		}
	}

	now := s.now()
	req := &models.ContactExchangeRequest{
		ID:                   uuid.New().String(),
		ConversationID:       conversationID,
		RequesterID:          requesterID,
		RecipientID:          recipientID,
		ContactTypeRequested: contactType,
		Status:               models.ContactRequestPending,
		CreatedAt:            now,
	}
	if err := s.repository.CreateContactRequest(ctx, req); err != nil {
		s.logger.WithError(err).Error("Failed to create contact request")
		return nil, nil, err
	}

	msg := &models.Message{
		ID:          uuid.New().String(),
		ThreadID:    conversationID,
		AuthorID:    requesterID,
		Content:     contactRequestContent(contactType),
		MessageType: models.MessageContactRequest,
		CreatedAt:   now,
		RequestID:   req.ID,
	}
	if err := s.repository.CreateMessage(ctx, msg); err != nil {
		logger := s.logger.WithError(err).WithField("request_id", req.ID)
		if cleanupErr := s.repository.DeleteContactRequest(ctx, req.ID); cleanupErr != nil {
			logger.WithField("cleanup_error", cleanupErr.Error()).Error("Contact request left without its message")
			metrics.ContactRequestsTotal.WithLabelValues("orphaned").Inc()
		} else {
			logger.Warn("Contact request rolled back after message write failed")
		}
		return nil, nil, fmt.Errorf("store contact request message: %w", err)
	}

	metrics.ContactRequestsTotal.WithLabelValues(string(models.ContactRequestPending)).Inc()
	metrics.MessagesSentTotal.WithLabelValues(string(models.MessageContactRequest)).Inc()

	s.logger.WithFields(logrus.Fields{
		"request_id":      req.ID,
		"conversation_id": conversationID,
		"contact_type":    contactType,
	}).Info("Contact share requested")

	return req, msg, nil
}

func (s *chatService) ApproveContactRequest(ctx context.Context, requestID, memberID string) (*models.ContactExchangeRequest, error) {
	req, err := s.answer(ctx, requestID, memberID, models.ContactRequestApproved)
	if err != nil {
		return nil, err
	}

	conv, err := s.repository.GetConversationByID(ctx, req.ConversationID)
	if err != nil {
		s.logger.WithError(err).WithField("request_id", requestID).Warn("Approved request has no readable conversation")
		return req, nil
	}
	shared := true
	patch := models.ConversationPatch{}
	if conv.ParticipantOneID == req.RecipientID {
		patch.ParticipantOneContactShared = &shared
	} else {
		patch.ParticipantTwoContactShared = &shared
	}
	if err := s.repository.UpdateConversation(ctx, conv.ID, patch); err != nil {
		s.logger.WithError(err).WithField("conversation_id", conv.ID).Warn("Failed to flag shared contact")
	}

	return req, nil
}

func (s *chatService) DeclineContactRequest(ctx context.Context, requestID, memberID string) (*models.ContactExchangeRequest, error) {
	return s.answer(ctx, requestID, memberID, models.ContactRequestDeclined)
}

// answer moves a pending request to status. Only status and respondedAt are written.
func (s *chatService) answer(ctx context.Context, requestID, memberID string, status models.ContactRequestStatus) (*models.ContactExchangeRequest, error) {
	if memberID == "" {
		return nil, ErrMemberRequired
	}
	req, err := s.repository.GetContactRequestByID(ctx, requestID)
	if err != nil {
		if repository.IsNotFound(err) {
			return nil, ErrRequestNotFound
		}
		return nil, err
	}
	if memberID != req.RecipientID {
		return nil, ErrNotRecipient
	}
	if req.Status != models.ContactRequestPending {
		return nil, ErrRequestNotPending
	}

	now := s.now()
	if err := s.repository.AnswerContactRequest(ctx, requestID, models.ContactRequestPatch{
		Status:      &status,
		RespondedAt: &now,
	}); err != nil {
		if repository.IsConflict(err) {
			return nil, ErrRequestNotPending
		}
		s.logger.WithError(err).WithField("request_id", requestID).Error("Failed to answer contact request")
		return nil, err
	}

	req.Status = status
	req.RespondedAt = &now
	metrics.ContactRequestsTotal.WithLabelValues(string(status)).Inc()

	s.logger.WithFields(logrus.Fields{
		"request_id": requestID,
		"status":     status,
	}).Info("Contact request answered")

	return req, nil
}

func (s *chatService) MarkMessagesAsRead(ctx context.Context, conversationID, memberID string) (int, error) {
	if _, err := s.participantConversation(ctx, conversationID, memberID); err != nil {
		return 0, err
	}

	all, err := s.repository.ListMessages(ctx)
	if err != nil {
		s.logger.WithError(err).Error("Failed to mark messages as read")
		return 0, err
	}

	read := true
	count := 0
	for _, msg := range all {
		if msg.ThreadID != conversationID || msg.AuthorID == memberID || msg.IsRead {
			continue
		}
		if err := s.repository.UpdateMessage(ctx, msg.ID, models.MessagePatch{IsRead: &read}); err != nil {
			s.logger.WithError(err).WithField("message_id", msg.ID).Error("Failed to mark message as read")
			return count, err
		}
		count++
	}

	return count, nil
}

func (s *chatService) participantConversation(ctx context.Context, conversationID, memberID string) (*models.Conversation, error) {
	if memberID == "" {
		return nil, ErrMemberRequired
	}
	conv, err := s.repository.GetConversationByID(ctx, conversationID)
	if err != nil {
		if repository.IsNotFound(err) {
			return nil, ErrConversationNotFound
		}
		return nil, err
	}
	if !conv.HasParticipant(memberID) {
		return nil, ErrNotParticipant
	}
	return conv, nil
}

// profile returns nil without error when the member has no profile record.
func (s *chatService) profile(ctx context.Context, memberID string) (*models.UserProfile, error) {
	if memberID == "" {
		return nil, nil
	}
	user, err := s.catalog.GetUserByID(ctx, memberID)
	if err != nil {
		if repository.IsNotFound(err) {
			return nil, nil
		}
		return nil, err
	}
	return user, nil
}
