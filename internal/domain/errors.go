package domain

import "errors"

var (
	ErrRecordNotFound     = errors.New("record not found")
	ErrReferenceNotFound  = errors.New("referenced record does not exist")
	ErrScheduleConflict   = errors.New("this hall is already booked for the selected time")
	ErrSeatConflict       = errors.New("seat(s) are already booked")
	ErrBookingCodeTaken   = errors.New("booking code already in use")
	ErrInvalidLayout      = errors.New("layout does not fit the hall dimensions")
	ErrInvalidSeatID      = errors.New("invalid seat identifier")
	ErrUnknownSeat        = errors.New("seat does not exist in the hall")
	ErrPriceMismatch      = errors.New("total price does not match the selected seats")
	ErrInvalidPrice       = errors.New("price must be between 0 and 99999999.99 with at most 2 decimal places")
	ErrUnsupportedUpload  = errors.New("only jpeg, png and gif images are allowed")
	ErrUploadTooLarge     = errors.New("file exceeds the maximum allowed size")
	ErrInvalidCredentials = errors.New("invalid credentials")
)
