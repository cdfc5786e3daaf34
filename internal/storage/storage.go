package storage

import "errors"

var (
	ErrNotFound       = errors.New("not found")
	ErrEventFull      = errors.New("event is full")
	ErrPromoExhausted = errors.New("promo code expired or exhausted")
)
