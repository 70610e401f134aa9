package httpserver

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"skillswap/exchange-service/internal/models"
	"skillswap/exchange-service/internal/service"
)

func (s *Server) listConversations(c *gin.Context) {
	summaries, err := s.chat.ListConversations(c.Request.Context(), memberID(c))
	if err != nil {
		s.respondError(c, err)
		return
	}
	if summaries == nil {
		summaries = []*service.ConversationSummary{}
	}
	c.JSON(http.StatusOK, gin.H{"conversations": summaries})
}

func (s *Server) startConversation(c *gin.Context) {
	conv, created, err := s.chat.StartConversation(c.Request.Context(), memberID(c), c.Param("id"))
	if err != nil {
		s.respondError(c, err)
		return
	}
	code := http.StatusOK
	if created {
		code = http.StatusCreated
	}
	c.JSON(code, gin.H{
		"conversation": conv,
		"created":      created,
		"redirect":     "/chat/" + conv.ID,
	})
}

func (s *Server) loadConversation(c *gin.Context) {
	snapshot, err := s.chat.LoadConversation(c.Request.Context(), c.Param("id"), memberID(c))
	if err != nil {
		s.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, snapshot)
}

type sendMessageBody struct {
	Content string `json:"content"`
}

func (s *Server) sendMessage(c *gin.Context) {
	var body sendMessageBody
	if err := c.ShouldBindJSON(&body); err != nil {
		badRequest(c, "invalid request body")
		return
	}
	msg, err := s.chat.SendMessage(c.Request.Context(), c.Param("id"), memberID(c), body.Content)
	if err != nil {
		s.respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, msg)
}

type contactRequestBody struct {
	ContactType models.ContactType `json:"contactType"`
	RecipientID string             `json:"recipientId"`
}

func (s *Server) requestContact(c *gin.Context) {
	var body contactRequestBody
	if err := c.ShouldBindJSON(&body); err != nil {
		badRequest(c, "invalid request body")
		return
	}
	req, msg, err := s.chat.RequestContactShare(c.Request.Context(), c.Param("id"), memberID(c), body.RecipientID, body.ContactType)
	if err != nil {
		s.respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"request": req, "message": msg})
}

func (s *Server) markRead(c *gin.Context) {
	count, err := s.chat.MarkMessagesAsRead(c.Request.Context(), c.Param("id"), memberID(c))
	if err != nil {
		s.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"markedCount": count})
}

func (s *Server) archiveConversation(c *gin.Context) {
	if err := s.chat.ArchiveConversation(c.Request.Context(), c.Param("id"), memberID(c)); err != nil {
		s.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": models.ConversationArchived})
}

func (s *Server) approveContactRequest(c *gin.Context) {
	req, err := s.chat.ApproveContactRequest(c.Request.Context(), c.Param("id"), memberID(c))
	if err != nil {
		s.respondError(c, err)
		return
	}
	s.logger.WithFields(logrus.Fields{
		"request_id": req.ID,
		"member_id":  memberID(c),
	}).Debug("Contact request approved over HTTP")
	c.JSON(http.StatusOK, req)
}

func (s *Server) declineContactRequest(c *gin.Context) {
	req, err := s.chat.DeclineContactRequest(c.Request.Context(), c.Param("id"), memberID(c))
	if err != nil {
		s.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, req)
}
