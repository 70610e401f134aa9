package grpc

import (
	"context"
	"errors"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"skillswap/exchange-service/internal/service"
)

func statusCode(err error) codes.Code {
	var verr *service.ValidationError
	switch {
	case errors.Is(err, service.ErrConversationNotFound),
		errors.Is(err, service.ErrMatchNotFound),
		errors.Is(err, service.ErrRequestNotFound),
		errors.Is(err, service.ErrUserNotFound),
		errors.Is(err, service.ErrSkillNotFound):
		return codes.NotFound
	case errors.Is(err, service.ErrNotParticipant),
		errors.Is(err, service.ErrNotRecipient):
		return codes.PermissionDenied
	case errors.Is(err, service.ErrMemberRequired):
		return codes.Unauthenticated
	case errors.Is(err, service.ErrEmptyMessage),
		errors.Is(err, service.ErrInvalidContactType),
		errors.Is(err, service.ErrInvalidRecipient),
		errors.Is(err, service.ErrSelfConversation),
		errors.Is(err, service.ErrMatchHasNoPartner),
		errors.As(err, &verr):
		return codes.InvalidArgument
	case errors.Is(err, service.ErrRequestAlreadyOpen):
		return codes.AlreadyExists
	case errors.Is(err, service.ErrRequestNotPending):
		return codes.FailedPrecondition
	case errors.Is(err, context.Canceled):
		return codes.Canceled
	case errors.Is(err, context.DeadlineExceeded):
		return codes.DeadlineExceeded
	default:
		return codes.Internal
	}
}

func (s *ChatServer) toStatus(err error, action string) error {
	code := statusCode(err)
	if code == codes.Internal {
		s.logger.WithError(err).Errorf("Failed to %s", action)
		return status.Errorf(codes.Internal, "failed to %s: %v", action, err)
	}
	s.logger.WithError(err).Warnf("Rejected %s", action)
	return status.Error(code, err.Error())
}
