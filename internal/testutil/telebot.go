package testutil

import (
	"strings"
	"sync"
	"time"

	tele "gopkg.in/telebot.v3"
)

// FakeContext is a tele.Context for handler and middleware tests.
// Only the methods handlers use are implemented; anything else panics.
type FakeContext struct {
	tele.Context

	sender  *tele.User
	message *tele.Message
	Sent    []interface{}
}

// NewFakeContext creates a context for a text message from sender.
// The command payload is everything after the first space.
func NewFakeContext(sender *tele.User, text string) *FakeContext {
	msg := &tele.Message{
		Text:     text,
		Sender:   sender,
		Unixtime: time.Date(2024, 5, 11, 12, 0, 0, 0, time.UTC).Unix(),
	}
	if strings.HasPrefix(text, "/") {
		if i := strings.IndexByte(text, ' '); i >= 0 {
			msg.Payload = text[i+1:]
		}
	}
	return NewFakeMessageContext(sender, msg)
}

// NewFakeMessageContext creates a context for an arbitrary message from sender
func NewFakeMessageContext(sender *tele.User, msg *tele.Message) *FakeContext {
	if sender != nil {
		msg.Chat = &tele.Chat{ID: sender.ID, Type: tele.ChatPrivate}
	}
	return &FakeContext{sender: sender, message: msg}
}

func (c *FakeContext) Sender() *tele.User        { return c.sender }
func (c *FakeContext) Message() *tele.Message    { return c.message }
func (c *FakeContext) Chat() *tele.Chat          { return c.message.Chat }
func (c *FakeContext) Recipient() tele.Recipient { return c.message.Chat }
func (c *FakeContext) Text() string              { return c.message.Text }

func (c *FakeContext) Send(what interface{}, opts ...interface{}) error {
	c.Sent = append(c.Sent, what)
	return nil
}

// FakeSender records messages sent through the bot API.
// Recipients listed in Fail get an error instead.
type FakeSender struct {
	mu   sync.Mutex
	Fail map[string]error
	Sent map[string][]interface{}
}

// NewFakeSender creates an empty FakeSender
func NewFakeSender() *FakeSender {
	return &FakeSender{
		Fail: make(map[string]error),
		Sent: make(map[string][]interface{}),
	}
}

func (s *FakeSender) Send(to tele.Recipient, what interface{}, opts ...interface{}) (*tele.Message, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err, ok := s.Fail[to.Recipient()]; ok {
		return nil, err
	}
	s.Sent[to.Recipient()] = append(s.Sent[to.Recipient()], what)
	return &tele.Message{}, nil
}
