package handler

import (
	"strings"
	"unicode"

	"phonequest/internal/domain"

	tele "gopkg.in/telebot.v3"
)

// cleanArg removes all non-printable characters from a command argument
func cleanArg(arg string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsPrint(r) {
			return r
		}
		return -1
	}, strings.TrimSpace(arg))
}

// commandArgs splits the command payload on whitespace
func commandArgs(c tele.Context) []string {
	msg := c.Message()
	if msg == nil {
		return nil
	}

	var args []string
	for _, field := range strings.Fields(msg.Payload) {
		if arg := cleanArg(field); arg != "" {
			args = append(args, arg)
		}
	}
	return args
}

// parseKey reads "number [password]" from command arguments
func parseKey(args []string) (phone string, password *string, ok bool) {
	if len(args) == 0 {
		return "", nil, false
	}
	phone = args[0]
	if len(args) > 1 {
		pw := args[1]
		password = &pw
	}
	return phone, password, true
}

// passwordString renders an optional password for messages
func passwordString(password *string) string {
	if password == nil {
		return "—"
	}
	return *password
}

// contentFromMessage extracts the session content carried by msg
func contentFromMessage(msg *tele.Message) (domain.ContentPart, bool) {
	switch {
	case msg == nil:
		return nil, false
	case msg.Text != "":
		return domain.Text(msg.Text), true
	case msg.Photo != nil:
		return domain.Photo(msg.Photo.FileID), true
	case msg.Sticker != nil:
		return domain.Sticker(msg.Sticker.FileID), true
	case msg.Voice != nil:
		return domain.Voice(msg.Voice.FileID), true
	case msg.Document != nil:
		return domain.Document(msg.Document.FileID), true
	}
	return nil, false
}

// sendable converts a content part into something tele can send
func sendable(part domain.ContentPart) interface{} {
	switch p := part.(type) {
	case domain.Text:
		return string(p)
	case domain.Photo:
		return &tele.Photo{File: tele.File{FileID: string(p)}}
	case domain.Sticker:
		return &tele.Sticker{File: tele.File{FileID: string(p)}}
	case domain.Voice:
		return &tele.Voice{File: tele.File{FileID: string(p)}}
	case domain.Document:
		return &tele.Document{File: tele.File{FileID: string(p)}}
	}
	return nil
}

// sendReply sends every part of reply to the recipient, in order
func (h *Handler) sendReply(to tele.Recipient, reply domain.Reply) error {
	for _, part := range reply.Parts() {
		what := sendable(part)
		if what == nil {
			continue
		}
		if _, err := h.sender.Send(to, what); err != nil {
			return err
		}
	}
	return nil
}
