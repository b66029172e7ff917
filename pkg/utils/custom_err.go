package utils

import "errors"

var (
	ErrMemberNotFound     = errors.New("member not found")
	ErrBookingNotFound    = errors.New("booking not found")
	ErrBenefitNotFound    = errors.New("benefit not found")
	ErrRewardNotFound     = errors.New("reward not found")
	ErrInquiryNotFound    = errors.New("inquiry not found")
	ErrRecordNotFound     = errors.New("record not found")
	ErrMemberNotPending   = errors.New("member is not pending confirmation")
	ErrMemberNotExpired   = errors.New("membership is not expired")
	ErrEmailAlreadyExists = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrSessionOutOfRange  = errors.New("session number out of range")
	ErrDatabaseError      = errors.New("database error")
)
