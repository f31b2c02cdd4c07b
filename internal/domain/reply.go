package domain

// Reply is an ordered sequence of content parts.
// Parts are replayed to the recipient in the order they were captured.
type Reply struct {
	parts []ContentPart
}

// NewReply assembles a reply from parts, keeping their order
func NewReply(parts ...ContentPart) Reply {
	if len(parts) == 0 {
		return Reply{}
	}
	copied := make([]ContentPart, len(parts))
	copy(copied, parts)
	return Reply{parts: copied}
}

// Append returns a reply with part added at the end.
// The receiver is never modified.
func (r Reply) Append(part ContentPart) Reply {
	parts := make([]ContentPart, len(r.parts), len(r.parts)+1)
	copy(parts, r.parts)
	return Reply{parts: append(parts, part)}
}

// Parts returns a copy of the reply parts
func (r Reply) Parts() []ContentPart {
	if len(r.parts) == 0 {
		return nil
	}
	parts := make([]ContentPart, len(r.parts))
	copy(parts, r.parts)
	return parts
}

// Len returns the number of parts
func (r Reply) Len() int {
	return len(r.parts)
}

// IsEmpty reports whether the reply has no parts
func (r Reply) IsEmpty() bool {
	return len(r.parts) == 0
}
