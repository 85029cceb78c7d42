package usecases

import "errors"

// UseCaseError carries the HTTP status a handler should answer with.
type UseCaseError struct {
	Code    int
	Message string
}

func (e *UseCaseError) Error() string {
	return e.Message
}

// RejectionKind enumerates the typed rejections the admission engine can
// produce. Handlers map each kind to a transport status deterministically.
type RejectionKind string

const (
	RejectInvalidDateFormat     RejectionKind = "invalid_date_format"
	RejectCheckInTooEarly       RejectionKind = "check_in_too_early"
	RejectCheckOutTooEarly      RejectionKind = "check_out_too_early"
	RejectCheckOutBeforeCheckIn RejectionKind = "check_out_before_check_in"
	RejectInvalidOccupancy      RejectionKind = "invalid_occupancy"
	RejectUnknownRoomType       RejectionKind = "unknown_room_type"
	RejectNoRoomAvailable       RejectionKind = "no_room_available"
	RejectConfiguration         RejectionKind = "configuration_error"
)

// AdmissionError is a typed rejection from Admit/ReValidate. It is always
// returned, never panicked past the engine boundary.
type AdmissionError struct {
	Kind    RejectionKind
	Message string
}

func (e *AdmissionError) Error() string {
	return e.Message
}

func reject(kind RejectionKind, message string) *AdmissionError {
	return &AdmissionError{Kind: kind, Message: message}
}

// IsAdmissionError unwraps err into an *AdmissionError, or nil.
func IsAdmissionError(err error) *AdmissionError {
	if err == nil {
		return nil
	}

	var admissionErr *AdmissionError
	if errors.As(err, &admissionErr) {
		return admissionErr
	}

	return nil
}
