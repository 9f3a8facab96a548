package processor

// Error strings here are the process's user-facing contract: the CLI prints
// them verbatim, so they keep their original capitalized form.

// inputNotFoundError reports a missing input file, detected locally before
// any engine call.
type inputNotFoundError struct{ path string }

func (e inputNotFoundError) Error() string { return "Input file not found: " + e.path }

// ErrInputNotFound constructs an inputNotFoundError.
func ErrInputNotFound(path string) error { return inputNotFoundError{path: path} }

// IsInputNotFound reports whether err indicates a missing input file.
func IsInputNotFound(err error) bool {
	_, ok := err.(inputNotFoundError)
	return ok
}

// unknownModelError carries the original, non-normalized user string for
// diagnostics.
type unknownModelError struct{ input string }

func (e unknownModelError) Error() string { return "Unknown model: " + e.input }

// ErrUnknownModel constructs an unknownModelError.
func ErrUnknownModel(input string) error { return unknownModelError{input: input} }

// IsUnknownModel reports whether err indicates a model name that resolved to
// nothing.
func IsUnknownModel(err error) bool {
	_, ok := err.(unknownModelError)
	return ok
}

// initFailedError signals a hard device-configuration failure. GPU init
// failure alone is not fatal (it forces CPU fallback); only a failed device
// configuration produces this.
type initFailedError struct{}

func (initFailedError) Error() string { return "Initialization failed" }

// ErrInitFailed constructs an initFailedError.
func ErrInitFailed() error { return initFailedError{} }

// IsInitFailed reports whether err indicates failed engine initialization.
func IsInitFailed(err error) bool {
	_, ok := err.(initFailedError)
	return ok
}

// submitError carries the engine's own last-error text for a rejected task.
type submitError struct{ msg string }

func (e submitError) Error() string { return e.msg }

// ErrSubmit constructs a submitError from the engine's last-error accessor,
// falling back to a generic message when the engine reports nothing.
func ErrSubmit(msg string) error {
	if msg == "" {
		msg = "Failed to add task"
	}
	return submitError{msg: msg}
}

// IsSubmit reports whether err indicates a rejected task submission.
func IsSubmit(err error) bool {
	_, ok := err.(submitError)
	return ok
}

// timeoutError signals poll-budget exhaustion.
type timeoutError struct{}

func (timeoutError) Error() string { return "Processing timeout" }

// ErrTimeout constructs a timeoutError.
func ErrTimeout() error { return timeoutError{} }

// IsTimeout reports whether err indicates the result never became ready.
func IsTimeout(err error) bool {
	_, ok := err.(timeoutError)
	return ok
}

// busyError signals a second job on a processor whose job is still in
// flight. The engine is not reentrant, so only one job may run.
type busyError struct{}

func (busyError) Error() string { return "busy: job already in flight" }

// IsBusy reports whether err indicates an in-flight job collision.
func IsBusy(err error) bool {
	_, ok := err.(busyError)
	return ok
}
