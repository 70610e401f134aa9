package grpc

import (
	"context"

	"github.com/sirupsen/logrus"

	pb "skillswap/exchange-service/api/exchange/v1"
	"skillswap/exchange-service/internal/chatsync"
	"skillswap/exchange-service/internal/identity"
	"skillswap/exchange-service/internal/models"
	"skillswap/exchange-service/internal/service"
)

type ChatServer struct {
	pb.UnimplementedChatServiceServer
	service   service.ChatService
	validator *identity.Validator
	sync      chatsync.Config
	logger    *logrus.Logger
}

func NewChatServer(svc service.ChatService, validator *identity.Validator, sync chatsync.Config, logger *logrus.Logger) *ChatServer {
	return &ChatServer{
		service:   svc,
		validator: validator,
		sync:      sync,
		logger:    logger,
	}
}

// memberID prefers the authenticated session. The id carried in the request is only
// trusted when auth is disabled.
func (s *ChatServer) memberID(ctx context.Context, requested string) string {
	if session := identity.FromContext(ctx); session.IsAuthenticated() {
		return session.MemberID
	}
	if !s.validator.Enabled() {
		return requested
	}
	return ""
}

func (s *ChatServer) ListConversations(ctx context.Context, req *pb.ListConversationsRequest) (*pb.ListConversationsResponse, error) {
	memberID := s.memberID(ctx, req.MemberId)
	s.logger.WithField("member_id", memberID).Info("Listing conversations via gRPC")

	summaries, err := s.service.ListConversations(ctx, memberID)
	if err != nil {
		return nil, s.toStatus(err, "list conversations")
	}
	protoSummaries := make([]*pb.ConversationSummary, len(summaries))
	for i, summary := range summaries {
		protoSummaries[i] = &pb.ConversationSummary{
			Conversation: s.conversationToProto(summary.Conversation),
			OtherUser:    s.userToProto(summary.OtherUser),
		}
	}

	return &pb.ListConversationsResponse{Conversations: protoSummaries}, nil
}

func (s *ChatServer) StartConversation(ctx context.Context, req *pb.StartConversationRequest) (*pb.StartConversationResponse, error) {
	memberID := s.memberID(ctx, req.MemberId)
	s.logger.WithFields(logrus.Fields{
		"member_id": memberID,
		"match_id":  req.MatchId,
	}).Info("Starting conversation via gRPC")

	conv, created, err := s.service.StartConversation(ctx, memberID, req.MatchId)
	if err != nil {
		return nil, s.toStatus(err, "start conversation")
	}

	return &pb.StartConversationResponse{Conversation: s.conversationToProto(conv), Created: created}, nil
}

func (s *ChatServer) LoadConversation(ctx context.Context, req *pb.LoadConversationRequest) (*pb.ConversationView, error) {
	memberID := s.memberID(ctx, req.MemberId)
	s.logger.WithField("conversation_id", req.ConversationId).Info("Loading conversation via gRPC")

	snapshot, err := s.service.LoadConversation(ctx, req.ConversationId, memberID)
	if err != nil {
		return nil, s.toStatus(err, "load conversation")
	}

	return s.snapshotToProto(snapshot, 0), nil
}

func (s *ChatServer) SendMessage(ctx context.Context, req *pb.SendMessageRequest) (*pb.SendMessageResponse, error) {
	senderID := s.memberID(ctx, req.SenderId)
	s.logger.WithFields(logrus.Fields{
		"conversation_id": req.ConversationId,
		"sender_id":       senderID,
	}).Info("Sending message via gRPC")

	msg, err := s.service.SendMessage(ctx, req.ConversationId, senderID, req.Content)
	if err != nil {
		return nil, s.toStatus(err, "send message")
	}

	return &pb.SendMessageResponse{Message: s.messageToProto(msg)}, nil
}

func (s *ChatServer) RequestContactShare(ctx context.Context, req *pb.RequestContactShareRequest) (*pb.RequestContactShareResponse, error) {
	requesterID := s.memberID(ctx, req.RequesterId)
	s.logger.WithFields(logrus.Fields{
		"conversation_id": req.ConversationId,
		"requester_id":    requesterID,
		"contact_type":    req.ContactType,
	}).Info("Requesting contact share via gRPC")

	request, msg, err := s.service.RequestContactShare(ctx, req.ConversationId, requesterID, req.RecipientId, models.ContactType(req.ContactType))
	if err != nil {
		return nil, s.toStatus(err, "request contact share")
	}

	return &pb.RequestContactShareResponse{
		Request: s.requestToProto(request),
		Message: s.messageToProto(msg),
	}, nil
}

func (s *ChatServer) ApproveContactRequest(ctx context.Context, req *pb.AnswerContactRequestRequest) (*pb.AnswerContactRequestResponse, error) {
	memberID := s.memberID(ctx, req.MemberId)
	s.logger.WithField("request_id", req.RequestId).Info("Approving contact request via gRPC")

	request, err := s.service.ApproveContactRequest(ctx, req.RequestId, memberID)
	if err != nil {
		return nil, s.toStatus(err, "approve contact request")
	}

	return &pb.AnswerContactRequestResponse{Request: s.requestToProto(request)}, nil
}

func (s *ChatServer) DeclineContactRequest(ctx context.Context, req *pb.AnswerContactRequestRequest) (*pb.AnswerContactRequestResponse, error) {
	memberID := s.memberID(ctx, req.MemberId)
	s.logger.WithField("request_id", req.RequestId).Info("Declining contact request via gRPC")

	request, err := s.service.DeclineContactRequest(ctx, req.RequestId, memberID)
	if err != nil {
		return nil, s.toStatus(err, "decline contact request")
	}

	return &pb.AnswerContactRequestResponse{Request: s.requestToProto(request)}, nil
}

func (s *ChatServer) MarkMessagesAsRead(ctx context.Context, req *pb.MarkMessagesAsReadRequest) (*pb.MarkMessagesAsReadResponse, error) {
	memberID := s.memberID(ctx, req.MemberId)
	s.logger.WithFields(logrus.Fields{
		"conversation_id": req.ConversationId,
		"member_id":       memberID,
	}).Info("Marking messages as read via gRPC")

	count, err := s.service.MarkMessagesAsRead(ctx, req.ConversationId, memberID)
	if err != nil {
		return nil, s.toStatus(err, "mark messages as read")
	}

	return &pb.MarkMessagesAsReadResponse{MarkedCount: int32(count)}, nil
}

func (s *ChatServer) ArchiveConversation(ctx context.Context, req *pb.ArchiveConversationRequest) (*pb.ArchiveConversationResponse, error) {
	memberID := s.memberID(ctx, req.MemberId)
	s.logger.WithFields(logrus.Fields{
		"conversation_id": req.ConversationId,
		"member_id":       memberID,
	}).Info("Archiving conversation via gRPC")

	if err := s.service.ArchiveConversation(ctx, req.ConversationId, memberID); err != nil {
		return nil, s.toStatus(err, "archive conversation")
	}

	return &pb.ArchiveConversationResponse{
		ConversationId: req.ConversationId,
		Status:         string(models.ConversationArchived),
	}, nil
}

// WatchConversation streams the conversation view, starting with the current state
// and then after every refresh, until the client goes away.
// Fetches still running when the client leaves are waited for before returning.
func (s *ChatServer) WatchConversation(req *pb.WatchConversationRequest, stream pb.ChatService_WatchConversationServer) error {
	ctx := stream.Context()
	memberID := s.memberID(ctx, req.MemberId)
	s.logger.WithFields(logrus.Fields{
		"conversation_id": req.ConversationId,
		"member_id":       memberID,
	}).Info("Watching conversation via gRPC")

	session, err := chatsync.Open(ctx, s.service, req.ConversationId, memberID, s.sync, s.logger)
	if err != nil {
		return s.toStatus(err, "open conversation")
	}

	runCtx, cancel := context.WithCancel(ctx)
	done := make(chan struct{})
	go func() {
		defer close(done)
		_ = session.Run(runCtx)
	}()
	defer func() {
		cancel()
		<-done
		session.Wait()
	}()

	for {
		select {
		case <-ctx.Done():
			return nil
		case view := <-session.Updates():
			if err := stream.Send(s.viewToProto(view)); err != nil {
				return err
			}
		}
	}
}
