package bank

import "fmt"

// LoadError represents an error during snapshot file I/O or JSON parsing
type LoadError struct {
	Message string
	Cause   error
}

func (e *LoadError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("skill bank load error: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("skill bank load error: %s", e.Message)
}

func (e *LoadError) Unwrap() error {
	return e.Cause
}

// FetchError represents an error fetching a skill bank from the remote service
type FetchError struct {
	UserID  string
	Message string
	Cause   error
}

func (e *FetchError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("skill bank fetch error for user %s: %s: %v", e.UserID, e.Message, e.Cause)
	}
	return fmt.Sprintf("skill bank fetch error for user %s: %s", e.UserID, e.Message)
}

func (e *FetchError) Unwrap() error {
	return e.Cause
}

// InvalidBankError represents a structural validation failure in a fetched bank
type InvalidBankError struct {
	Message string
	Cause   error
}

func (e *InvalidBankError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("invalid skill bank: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("invalid skill bank: %s", e.Message)
}

func (e *InvalidBankError) Unwrap() error {
	return e.Cause
}
