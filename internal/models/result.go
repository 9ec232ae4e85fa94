package models

// Result is the structured outcome of an account operation. Failures are
// recovered locally and described by Message; they never propagate as faults.
type Result struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// Ok builds a successful result with the given message.
func Ok(message string) Result {
	return Result{Success: true, Message: message}
}

// Fail builds a failed result with the given message.
func Fail(message string) Result {
	return Result{Success: false, Message: message}
}
