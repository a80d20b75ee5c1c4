package domain

import "errors"

var (
	ErrEventNotFound    = errors.New("event not found")
	ErrCityNotFound     = errors.New("city not found")
	ErrCategoryNotFound = errors.New("category not found")
)

var (
	ErrAlreadyJoined    = errors.New("user has already joined this event")
	ErrEventFull        = errors.New("event is full")
	ErrEventNotJoinable = errors.New("event is not open for enrollment")
	ErrEventClosed      = errors.New("event is closed, participation can no longer change")
	ErrNotJoined        = errors.New("user is not a participant of this event")
)

var (
	ErrForbidden = errors.New("only the event creator may perform this action")
	ErrImmutable = errors.New("event can no longer be edited once completed")
	ErrConflict  = errors.New("event was modified concurrently")
)

var (
	ErrValidation = errors.New("validation error")
)
