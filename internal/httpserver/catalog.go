package httpserver

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"skillswap/exchange-service/internal/identity"
	"skillswap/exchange-service/internal/service"
)

func (s *Server) home(c *gin.Context) {
	feed, err := s.catalog.Home(c.Request.Context())
	if err != nil {
		s.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, feed)
}

func (s *Server) discover(c *gin.Context) {
	result, err := s.catalog.Discover(c.Request.Context(), service.DiscoveryQuery{
		Search:   c.Query("q"),
		Category: c.Query("category"),
	})
	if err != nil {
		s.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

func (s *Server) listUsers(c *gin.Context) {
	availableOnly, _ := strconv.ParseBool(c.DefaultQuery("available", "false"))
	list, err := s.catalog.ListUsers(c.Request.Context(), service.UserQuery{
		Search:        c.Query("q"),
		AvailableOnly: availableOnly,
	})
	if err != nil {
		s.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, list)
}

func (s *Server) getUser(c *gin.Context) {
	user, err := s.catalog.GetUser(c.Request.Context(), c.Param("id"))
	if err != nil {
		s.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, user)
}

func (s *Server) listSkills(c *gin.Context) {
	list, err := s.catalog.ListSkills(c.Request.Context(), service.SkillQuery{
		Search:     c.Query("q"),
		Category:   c.Query("category"),
		Difficulty: c.Query("difficulty"),
	})
	if err != nil {
		s.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, list)
}

func (s *Server) getSkill(c *gin.Context) {
	skill, err := s.catalog.GetSkill(c.Request.Context(), c.Param("id"))
	if err != nil {
		s.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, skill)
}

func (s *Server) listSkillListings(c *gin.Context) {
	listings, err := s.catalog.ListSkillListings(c.Request.Context(), service.ListingQuery{
		Type:   c.Query("type"),
		Status: c.Query("status"),
	})
	if err != nil {
		s.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"listings": listings, "total": len(listings)})
}

func (s *Server) listLocations(c *gin.Context) {
	list, err := s.catalog.ListLocations(c.Request.Context(), c.Query("q"))
	if err != nil {
		s.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, list)
}

func (s *Server) listMatches(c *gin.Context) {
	list, err := s.matches.ListMatches(c.Request.Context(), service.MatchQuery{
		Search: c.Query("q"),
		Sort:   service.MatchSort(c.DefaultQuery("sort", string(service.SortByRecency))),
	})
	if err != nil {
		s.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, list)
}

func (s *Server) getMatch(c *gin.Context) {
	match, err := s.matches.GetMatch(c.Request.Context(), c.Param("id"))
	if err != nil {
		s.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, match)
}

func (s *Server) submitContact(c *gin.Context) {
	var in service.ContactInput
	if err := c.ShouldBindJSON(&in); err != nil {
		badRequest(c, "invalid request body")
		return
	}
	sub, err := s.catalog.SubmitContact(c.Request.Context(), in)
	if err != nil {
		s.respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, sub)
}

func (s *Server) me(c *gin.Context) {
	session := identity.SessionFrom(c)
	body := gin.H{"session": session, "authenticated": session.IsAuthenticated()}
	if session.IsAuthenticated() {
		status, err := s.catalog.GetOnboarding(c.Request.Context(), session.MemberID)
		if err != nil {
			s.respondError(c, err)
			return
		}
		body["onboarding"] = status
	}
	c.JSON(http.StatusOK, body)
}

func (s *Server) getOnboarding(c *gin.Context) {
	status, err := s.catalog.GetOnboarding(c.Request.Context(), memberID(c))
	if err != nil {
		s.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"completed":  status.Completed,
		"state":      status.State,
		"categories": service.OnboardingCategories,
	})
}

type onboardingBody struct {
	Interests []string `json:"interests"`
}

func (s *Server) completeOnboarding(c *gin.Context) {
	var body onboardingBody
	if err := c.ShouldBindJSON(&body); err != nil {
		badRequest(c, "invalid request body")
		return
	}
	state, err := s.catalog.CompleteOnboarding(c.Request.Context(), memberID(c), body.Interests)
	if err != nil {
		s.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, state)
}
