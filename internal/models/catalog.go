package models

import (
	"time"
)

// Match is generated outside this service and only ever read here.
type Match struct {
	ID                    string     `json:"_id"`
	MatchTitle            string     `json:"matchTitle,omitempty"`
	UserOneID             string     `json:"userOneId,omitempty"`
	UserOneDisplayName    string     `json:"userOneDisplayName,omitempty"`
	UserOneProfilePicture string     `json:"userOneProfilePicture,omitempty"`
	UserTwoID             string     `json:"userTwoId,omitempty"`
	UserTwoDisplayName    string     `json:"userTwoDisplayName,omitempty"`
	UserTwoProfilePicture string     `json:"userTwoProfilePicture,omitempty"`
	OfferedSkillName      string     `json:"offeredSkillName,omitempty"`
	RequestedSkillName    string     `json:"requestedSkillName,omitempty"`
	MatchConfidenceScore  *int       `json:"matchConfidenceScore,omitempty"`
	MatchExplanation      string     `json:"matchExplanation,omitempty"`
	MatchGenerationDate   *time.Time `json:"matchGenerationDate,omitempty"`
}

// Confidence returns the score as stored, or 0 when absent. No range check is applied.
func (m *Match) Confidence() int {
	if m.MatchConfidenceScore == nil {
		return 0
	}
	return *m.MatchConfidenceScore
}

// GeneratedAt returns the generation date, or the Unix epoch when absent.
func (m *Match) GeneratedAt() time.Time {
	if m.MatchGenerationDate == nil {
		return time.Unix(0, 0).UTC()
	}
	return *m.MatchGenerationDate
}

type UserProfile struct {
	ID                     string `json:"_id"`
	UserName               string `json:"userName,omitempty"`
	ProfilePicture         string `json:"profilePicture,omitempty"`
	Bio                    string `json:"bio,omitempty"`
	City                   string `json:"city,omitempty"`
	Region                 string `json:"region,omitempty"`
	OfferedSkillsSummary   string `json:"offeredSkillsSummary,omitempty"`
	RequestedSkillsSummary string `json:"requestedSkillsSummary,omitempty"`
	IsAvailable            bool   `json:"isAvailable"`
}

type Skill struct {
	ID              string `json:"_id"`
	SkillName       string `json:"skillName,omitempty"`
	Description     string `json:"description,omitempty"`
	Category        string `json:"category,omitempty"`
	DifficultyLevel string `json:"difficultyLevel,omitempty"`
	SkillImage      string `json:"skillImage,omitempty"`
	Keywords        string `json:"keywords,omitempty"`
}

type SkillListing struct {
	ID                    string     `json:"_id"`
	SkillTitle            string     `json:"skillTitle,omitempty"`
	ListingType           string     `json:"listingType,omitempty"`
	Description           string     `json:"description,omitempty"`
	Status                string     `json:"status,omitempty"`
	CreatedAt             *time.Time `json:"createdAt,omitempty"`
	PreferredAvailability string     `json:"preferredAvailability,omitempty"`
	ExchangeFormat        string     `json:"exchangeFormat,omitempty"`
}

type Location struct {
	ID            string   `json:"_id"`
	LocationName  string   `json:"locationName,omitempty"`
	Description   string   `json:"description,omitempty"`
	Latitude      *float64 `json:"latitude,omitempty"`
	Longitude     *float64 `json:"longitude,omitempty"`
	City          string   `json:"city,omitempty"`
	StateProvince string   `json:"stateProvince,omitempty"`
	Country       string   `json:"country,omitempty"`
	LocationImage string   `json:"locationImage,omitempty"`
}

type ContactSubmission struct {
	ID                 string    `json:"_id"`
	SenderName         string    `json:"senderName" validate:"required,max=200"`
	SenderEmail        string    `json:"senderEmail" validate:"required,email"`
	Subject            string    `json:"subject" validate:"required,max=300"`
	MessageContent     string    `json:"messageContent" validate:"required,max=5000"`
	SubmissionDateTime time.Time `json:"submissionDateTime"`
	Status             string    `json:"status"`
}

// OnboardingState records that a member finished onboarding and what they picked.
type OnboardingState struct {
	ID          string    `json:"_id"`
	Interests   []string  `json:"interests"`
	CompletedAt time.Time `json:"completedAt"`
}
