package domain

// PhonebookKey identifies a phonebook entry by phone number and optional password
type PhonebookKey struct {
	Phone    string
	Password *string
}

// NewPhonebookKey creates a key; a nil password means "no password"
func NewPhonebookKey(phone string, password *string) PhonebookKey {
	if password != nil {
		p := *password
		password = &p
	}
	return PhonebookKey{Phone: phone, Password: password}
}

// Equal reports whether both keys address the same entry
func (k PhonebookKey) Equal(other PhonebookKey) bool {
	if k.Phone != other.Phone {
		return false
	}
	if k.Password == nil || other.Password == nil {
		return k.Password == nil && other.Password == nil
	}
	return *k.Password == *other.Password
}

// String renders the key for logs and admin messages
func (k PhonebookKey) String() string {
	if k.Password == nil {
		return k.Phone
	}
	return k.Phone + " " + *k.Password
}

// phonebookIndex is the comparable form of PhonebookKey used as a map key
type phonebookIndex struct {
	phone       string
	password    string
	hasPassword bool
}

func (k PhonebookKey) index() phonebookIndex {
	if k.Password == nil {
		return phonebookIndex{phone: k.Phone}
	}
	return phonebookIndex{phone: k.Phone, password: *k.Password, hasPassword: true}
}

// PhonebookEntry is a stored reply together with its key
type PhonebookEntry struct {
	Key   PhonebookKey
	Reply Reply
}

// Phonebook is an immutable snapshot of all entries.
// It is built once from storage and never modified afterwards.
type Phonebook struct {
	replies map[phonebookIndex]Reply
}

// NewPhonebook builds a snapshot from entries.
// Entries with an empty reply are skipped; a later entry for the same key wins.
func NewPhonebook(entries []PhonebookEntry) *Phonebook {
	replies := make(map[phonebookIndex]Reply, len(entries))
	for _, e := range entries {
		if e.Reply.IsEmpty() {
			continue
		}
		replies[e.Key.index()] = e.Reply
	}
	return &Phonebook{replies: replies}
}

// Lookup returns the reply stored under exactly this key
func (p *Phonebook) Lookup(key PhonebookKey) (Reply, bool) {
	if p == nil {
		return Reply{}, false
	}
	reply, ok := p.replies[key.index()]
	return reply, ok
}

// Has reports whether an entry exists for the key
func (p *Phonebook) Has(key PhonebookKey) bool {
	_, ok := p.Lookup(key)
	return ok
}

// Len returns the number of entries
func (p *Phonebook) Len() int {
	if p == nil {
		return 0
	}
	return len(p.replies)
}
