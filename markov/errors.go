package markov

// DomainError - Custom error to inform that a score can not be computed, for instance because the
// smoothing denominator is zero (model trained on an empty text) or because a score is normalized by an empty text
type DomainError struct {
	msg string
}

// Error - Used to notify an arithmetic domain failure
func (D DomainError) Error() string {
	if D.msg == "" {
		return "arithmetic domain error"
	}
	return D.msg
}

// Is - Makes errors.Is(err, DomainError{}) true regardless of message
func (D DomainError) Is(target error) bool {
	_, ok := target.(DomainError)
	return ok
}

// InvalidOrder - Custom error to inform that the model order is not a positive number
type InvalidOrder struct {
	msg string
}

// Error - Used to notify an invalid order
func (I InvalidOrder) Error() string {
	if I.msg == "" {
		return "order must be a positive value higher than 0 (zero)"
	}
	return I.msg
}

// Is - Makes errors.Is(err, InvalidOrder{}) true regardless of message
func (I InvalidOrder) Is(target error) bool {
	_, ok := target.(InvalidOrder)
	return ok
}

