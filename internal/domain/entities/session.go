package entities

import "time"

// Session is the conversation-scoped state: at most one pending order, one
// pending request per kind and one upsell offer.
//
// A session is driven by a single dialogue at a time; it carries no lock.
// Callers that can deliver concurrent operations serialize them (see
// usecase.SessionRegistry).
type Session struct {
	ID        string
	CreatedAt time.Time

	pendingOrder *Order
	upsellOffer  []string
	requests     map[RequestKind]any
}

func NewSession(id string, now time.Time) *Session {
	return &Session{ID: id, CreatedAt: now, requests: make(map[RequestKind]any)}
}

func (s *Session) PendingOrder() *Order {
	return s.pendingOrder
}

func (s *Session) SetPendingOrder(o *Order) {
	s.pendingOrder = o
}

func (s *Session) ClearPendingOrder() {
	s.pendingOrder = nil
}

func (s *Session) UpsellOffer() []string {
	return s.upsellOffer
}

func (s *Session) SetUpsellOffer(offer []string) {
	s.upsellOffer = offer
}

// TakeUpsellOffer returns the current offer and clears it.
func (s *Session) TakeUpsellOffer() []string {
	offer := s.upsellOffer
	s.upsellOffer = nil
	return offer
}

func (s *Session) PendingRequest(kind RequestKind) any {
	return s.requests[kind]
}

func (s *Session) SetPendingRequest(kind RequestKind, req any) {
	if s.requests == nil {
		s.requests = make(map[RequestKind]any)
	}
	s.requests[kind] = req
}

func (s *Session) ClearPendingRequest(kind RequestKind) {
	delete(s.requests, kind)
}

// Discard drops every pending entity. Nothing pending was ever persisted, so
// there is nothing to roll back.
func (s *Session) Discard() {
	s.pendingOrder = nil
	s.upsellOffer = nil
	s.requests = make(map[RequestKind]any)
}
