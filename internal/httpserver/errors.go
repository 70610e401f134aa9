package httpserver

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"skillswap/exchange-service/internal/service"
)

func httpStatus(err error) int {
	var verr *service.ValidationError
	switch {
	case errors.Is(err, service.ErrConversationNotFound),
		errors.Is(err, service.ErrMatchNotFound),
		errors.Is(err, service.ErrRequestNotFound),
		errors.Is(err, service.ErrUserNotFound),
		errors.Is(err, service.ErrSkillNotFound):
		return http.StatusNotFound
	case errors.Is(err, service.ErrNotParticipant),
		errors.Is(err, service.ErrNotRecipient):
		return http.StatusForbidden
	case errors.Is(err, service.ErrMemberRequired):
		return http.StatusUnauthorized
	case errors.Is(err, service.ErrEmptyMessage),
		errors.Is(err, service.ErrInvalidContactType),
		errors.Is(err, service.ErrInvalidRecipient),
		errors.Is(err, service.ErrSelfConversation),
		errors.Is(err, service.ErrMatchHasNoPartner),
		errors.Is(err, errUnknownFrame),
		errors.As(err, &verr):
		return http.StatusBadRequest
	case errors.Is(err, service.ErrRequestAlreadyOpen),
		errors.Is(err, service.ErrRequestNotPending):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// respondError writes the JSON error body. A conversation that does not resolve also
// tells the client where to go instead.
func (s *Server) respondError(c *gin.Context, err error) {
	code := httpStatus(err)
	body := gin.H{"error": err.Error()}

	var verr *service.ValidationError
	if errors.As(err, &verr) {
		body["fields"] = verr.Fields
	}
	if errors.Is(err, service.ErrConversationNotFound) {
		body["redirect"] = "/chats"
	}

	if code == http.StatusInternalServerError {
		s.logger.WithError(err).WithFields(logrus.Fields{
			"method": c.Request.Method,
			"route":  c.FullPath(),
		}).Error("Request failed")
		body["error"] = "internal error"
	}

	c.AbortWithStatusJSON(code, body)
}

func badRequest(c *gin.Context, message string) {
	c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": message})
}
