package services

import (
	"chat-client/domain"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// nicknameUpdate bounds what the client is willing to send server-side.
type nicknameUpdate struct {
	Nickname string `validate:"required,min=1,max=32,excludesall=0x20"`
}

type outboundMessage struct {
	Body         string `validate:"required,max=2000"`
	Conversation string `validate:"required"`
}

func validateNickname(nickname string) error {
	return validate.Struct(nicknameUpdate{Nickname: nickname})
}

func validateMessage(body string, id domain.ConversationID) error {
	return validate.Struct(outboundMessage{Body: body, Conversation: string(id)})
}
