package identity

import (
	"context"
	"strings"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
)

func (v *Validator) sessionFromMetadata(ctx context.Context) (*Session, error) {
	md, _ := metadata.FromIncomingContext(ctx)
	session, err := v.Resolve(ctx, firstValue(md, "authorization"), firstValue(md, strings.ToLower(MemberHeader)))
	if err != nil {
		v.logger.WithError(err).Warn("Rejected gRPC credentials")
		return nil, status.Error(codes.Unauthenticated, "invalid token")
	}
	return session, nil
}

func (v *Validator) UnaryServerInterceptor() grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req interface{}, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (interface{}, error) {
		session, err := v.sessionFromMetadata(ctx)
		if err != nil {
			return nil, err
		}
		return handler(WithSession(ctx, session), req)
	}
}

func (v *Validator) StreamServerInterceptor() grpc.StreamServerInterceptor {
	return func(srv interface{}, ss grpc.ServerStream, info *grpc.StreamServerInfo, handler grpc.StreamHandler) error {
		session, err := v.sessionFromMetadata(ss.Context())
		if err != nil {
			return err
		}
		return handler(srv, &sessionStream{ServerStream: ss, ctx: WithSession(ss.Context(), session)})
	}
}

type sessionStream struct {
	grpc.ServerStream
	ctx context.Context
}

func (s *sessionStream) Context() context.Context {
	return s.ctx
}

func firstValue(md metadata.MD, key string) string {
	if vals := md.Get(key); len(vals) > 0 {
		return vals[0]
	}
	return ""
}
