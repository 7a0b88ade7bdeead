package header

import "errors"

var (
	ErrInvalidHeaderValue = errors.New("failed to parse header value")
	ErrToStr              = errors.New("failed to convert header to a str")
	ErrInvalidHeaderName  = errors.New("invalid HTTP header name")
	ErrMalformedLine      = errors.New("malformed header line")
)
