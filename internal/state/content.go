package state

import "encoding/json"

// ContentStatus describes what the content store currently holds.
type ContentStatus int

const (
	ContentNone ContentStatus = iota
	ContentLoaded
	ContentEmpty
	ContentFailed
)

func (s ContentStatus) String() string {
	switch s {
	case ContentLoaded:
		return "loaded"
	case ContentEmpty:
		return "empty"
	case ContentFailed:
		return "failed"
	default:
		return "none"
	}
}

// ContentStore holds the data displayed for one basket.
type ContentStore interface {
	Basket() string
	Data() json.RawMessage
	Status() ContentStatus
	Loading() bool
	BeginLoad(basket string)
	SetLoaded(basket string, data json.RawMessage)
	SetEmpty(basket string)
	SetFailed(basket string)
	Clear()
}

type contentStore struct {
	basket  string
	data    json.RawMessage
	status  ContentStatus
	loading bool
}

func NewContentStore() ContentStore {
	return &contentStore{}
}

func (s *contentStore) Basket() string {
	return s.basket
}

func (s *contentStore) Data() json.RawMessage {
	return cloneRaw(s.data)
}

func (s *contentStore) Status() ContentStatus {
	return s.status
}

func (s *contentStore) Loading() bool {
	return s.loading
}

// BeginLoad marks a fetch as in flight. Content already shown for the same
// basket stays visible until the response lands.
func (s *contentStore) BeginLoad(basket string) {
	if s.basket != basket {
		s.data = nil
		s.status = ContentNone
	}
	s.basket = basket
	s.loading = true
}

func (s *contentStore) SetLoaded(basket string, data json.RawMessage) {
	s.basket = basket
	s.data = cloneRaw(data)
	s.status = ContentLoaded
	s.loading = false
}

func (s *contentStore) SetEmpty(basket string) {
	s.basket = basket
	s.data = nil
	s.status = ContentEmpty
	s.loading = false
}

func (s *contentStore) SetFailed(basket string) {
	s.basket = basket
	s.data = nil
	s.status = ContentFailed
	s.loading = false
}

func (s *contentStore) Clear() {
	s.basket = ""
	s.data = nil
	s.status = ContentNone
	s.loading = false
}

func cloneRaw(data json.RawMessage) json.RawMessage {
	if data == nil {
		return nil
	}
	dup := make(json.RawMessage, len(data))
	copy(dup, data)
	return dup
}
