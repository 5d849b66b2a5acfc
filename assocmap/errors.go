package assocmap

// KeyNotFound - Custom error to inform that a key was not found, or was found but has been deleted
type KeyNotFound struct {
	msg string
}

// Error - Used to notify that no key was found
func (E KeyNotFound) Error() string {
	if E.msg == "" {
		return "key not found"
	}
	return E.msg
}

// Is - Makes errors.Is(err, KeyNotFound{}) true regardless of message
func (E KeyNotFound) Is(target error) bool {
	_, ok := target.(KeyNotFound)
	return ok
}

// ConfigurationError - Custom error to inform that a map configuration is invalid
type ConfigurationError struct {
	msg string
}

// Error - Used to notify that the configuration is invalid
func (C ConfigurationError) Error() string {
	if C.msg == "" {
		return "invalid map configuration"
	}
	return C.msg
}

// Is - Makes errors.Is(err, ConfigurationError{}) true regardless of message
func (C ConfigurationError) Is(target error) bool {
	_, ok := target.(ConfigurationError)
	return ok
}

// ProbingExhausted - Custom error to inform that a probe visited every slot without finding a usable one
type ProbingExhausted struct {
	msg string
}

// Error - Used to notify that probing was exhausted
func (P ProbingExhausted) Error() string {
	if P.msg == "" {
		return "probing algorithm exhausted"
	}
	return P.msg
}
