package grpc

import (
	"google.golang.org/protobuf/types/known/timestamppb"

	pb "skillswap/exchange-service/api/exchange/v1"
	"skillswap/exchange-service/internal/chatsync"
	"skillswap/exchange-service/internal/models"
	"skillswap/exchange-service/internal/service"
)

func (s *ChatServer) conversationToProto(conv *models.Conversation) *pb.Conversation {
	if conv == nil {
		return nil
	}
	protoConv := &pb.Conversation{
		Id:                          conv.ID,
		ParticipantOneId:            conv.ParticipantOneID,
		ParticipantTwoId:            conv.ParticipantTwoID,
		MatchId:                     conv.MatchID,
		Status:                      string(conv.Status),
		CreatedAt:                   timestamppb.New(conv.CreatedAt),
		ParticipantOneContactShared: conv.ParticipantOneContactShared,
		ParticipantTwoContactShared: conv.ParticipantTwoContactShared,
	}
	if conv.LastMessageAt != nil {
		protoConv.LastMessageAt = timestamppb.New(*conv.LastMessageAt)
	}
	return protoConv
}

// userToProto returns nil for a participant without a profile record.
func (s *ChatServer) userToProto(user *models.UserProfile) *pb.UserProfile {
	if user == nil {
		return nil
	}
	return &pb.UserProfile{
		Id:                     user.ID,
		UserName:               user.UserName,
		ProfilePicture:         user.ProfilePicture,
		Bio:                    user.Bio,
		City:                   user.City,
		Region:                 user.Region,
		OfferedSkillsSummary:   user.OfferedSkillsSummary,
		RequestedSkillsSummary: user.RequestedSkillsSummary,
		IsAvailable:            user.IsAvailable,
	}
}

func (s *ChatServer) messageToProto(msg *models.Message) *pb.Message {
	return &pb.Message{
		Id:          msg.ID,
		ThreadId:    msg.ThreadID,
		AuthorId:    msg.AuthorID,
		Content:     msg.Content,
		MessageType: string(msg.MessageType),
		IsRead:      msg.IsRead,
		CreatedAt:   timestamppb.New(msg.CreatedAt),
		RequestId:   msg.RequestID,
	}
}

func (s *ChatServer) requestToProto(req *models.ContactExchangeRequest) *pb.ContactExchangeRequest {
	protoReq := &pb.ContactExchangeRequest{
		Id:                   req.ID,
		ConversationId:       req.ConversationID,
		RequesterId:          req.RequesterID,
		RecipientId:          req.RecipientID,
		ContactTypeRequested: string(req.ContactTypeRequested),
		Status:               string(req.Status),
		CreatedAt:            timestamppb.New(req.CreatedAt),
	}
	if req.RespondedAt != nil {
		protoReq.RespondedAt = timestamppb.New(*req.RespondedAt)
	}
	return protoReq
}

func (s *ChatServer) snapshotToProto(snapshot *service.ConversationSnapshot, version uint64) *pb.ConversationView {
	view := &pb.ConversationView{
		Conversation: s.conversationToProto(snapshot.Conversation),
		OtherUser:    s.userToProto(snapshot.OtherUser),
		Messages:     make([]*pb.Message, 0, len(snapshot.Messages)),
		Requests:     make([]*pb.ContactExchangeRequest, 0, len(snapshot.Requests)),
		Version:      version,
	}
	for _, msg := range snapshot.Messages {
		view.Messages = append(view.Messages, s.messageToProto(msg))
	}
	for _, req := range snapshot.Requests {
		view.Requests = append(view.Requests, s.requestToProto(req))
	}
	return view
}

func (s *ChatServer) viewToProto(view chatsync.View) *pb.ConversationView {
	return s.snapshotToProto(&view.ConversationSnapshot, view.Version)
}
