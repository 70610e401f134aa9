package service

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
)

var (
	ErrConversationNotFound = errors.New("conversation not found")
	ErrNotParticipant       = errors.New("user is not a participant in this conversation")
	ErrSelfConversation     = errors.New("cannot create conversation with yourself")
	ErrMatchNotFound        = errors.New("match not found")
	ErrMatchHasNoPartner    = errors.New("match does not name a conversation partner")
	ErrEmptyMessage         = errors.New("message content is empty")
	ErrInvalidContactType   = errors.New("contact type must be email or phone")
	ErrInvalidRecipient     = errors.New("recipient is not the other participant")
	ErrRequestNotFound      = errors.New("contact request not found")
	ErrRequestAlreadyOpen   = errors.New("a pending request for this contact type already exists")
	ErrRequestNotPending    = errors.New("contact request is not pending")
	ErrNotRecipient         = errors.New("only the recipient can answer a contact request")
	ErrUserNotFound         = errors.New("user not found")
	ErrSkillNotFound        = errors.New("skill not found")
	ErrMemberRequired       = errors.New("a signed-in member is required")
)

// ValidationError reports rejected input fields.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid input: %v", e.Fields)
}

func newValidationError(err error) error {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}
	fields := make(map[string]string, len(verrs))
	for _, fe := range verrs {
		fields[fe.Field()] = fe.Tag()
	}
	return &ValidationError{Fields: fields}
}
