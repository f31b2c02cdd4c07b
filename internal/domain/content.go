package domain

import (
	"errors"
	"fmt"
)

// ErrUnknownContentKind is returned when a stored reply part has an unsupported type
var ErrUnknownContentKind = errors.New("unknown content kind")

// ContentKind identifies the type of a reply part.
// The value is also the reply_type stored in the phonebook table.
type ContentKind string

const (
	KindText     ContentKind = "text"
	KindPhoto    ContentKind = "photo"
	KindSticker  ContentKind = "sticker"
	KindVoice    ContentKind = "voice"
	KindDocument ContentKind = "document"
)

// ContentPart is one unit of reply content.
// The set of implementations is closed: Text, Photo, Sticker, Voice, Document.
type ContentPart interface {
	Kind() ContentKind
	// Data is the text itself for Text and the opaque file reference otherwise
	Data() string

	contentPart()
}

// Text is a plain text message
type Text string

// Photo references a stored photo
type Photo string

// Sticker references a stored sticker
type Sticker string

// Voice references a stored voice clip
type Voice string

// Document references a stored document
type Document string

func (Text) Kind() ContentKind     { return KindText }
func (Photo) Kind() ContentKind    { return KindPhoto }
func (Sticker) Kind() ContentKind  { return KindSticker }
func (Voice) Kind() ContentKind    { return KindVoice }
func (Document) Kind() ContentKind { return KindDocument }

func (t Text) Data() string     { return string(t) }
func (p Photo) Data() string    { return string(p) }
func (s Sticker) Data() string  { return string(s) }
func (v Voice) Data() string    { return string(v) }
func (d Document) Data() string { return string(d) }

func (Text) contentPart()     {}
func (Photo) contentPart()    {}
func (Sticker) contentPart()  {}
func (Voice) contentPart()    {}
func (Document) contentPart() {}

// NewContentPart builds a part from its stored kind and data
func NewContentPart(kind ContentKind, data string) (ContentPart, error) {
	switch kind {
	case KindText:
		return Text(data), nil
	case KindPhoto:
		return Photo(data), nil
	case KindSticker:
		return Sticker(data), nil
	case KindVoice:
		return Voice(data), nil
	case KindDocument:
		return Document(data), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownContentKind, kind)
	}
}
