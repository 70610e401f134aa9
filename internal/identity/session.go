// Package identity turns credentials issued by the external member provider into a
// Session that is passed explicitly down the request context.
package identity

import "context"

type Method string

const (
	MethodNone   Method = ""
	MethodJWT    Method = "jwt"
	MethodHeader Method = "header"
)

// Session is the member identity for one request. A nil or anonymous session means
// nobody is signed in.
type Session struct {
	MemberID string `json:"memberId,omitempty"`
	Name     string `json:"name,omitempty"`
	Email    string `json:"email,omitempty"`
	Method   Method `json:"method,omitempty"`
}

func Anonymous() *Session {
	return &Session{}
}

func (s *Session) IsAuthenticated() bool {
	return s != nil && s.MemberID != ""
}

type sessionKey struct{}

func WithSession(ctx context.Context, s *Session) context.Context {
	return context.WithValue(ctx, sessionKey{}, s)
}

// FromContext returns the session stored on ctx, or an anonymous one.
func FromContext(ctx context.Context) *Session {
	if s, ok := ctx.Value(sessionKey{}).(*Session); ok && s != nil {
		return s
	}
	return Anonymous()
}
