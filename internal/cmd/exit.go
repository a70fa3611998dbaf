package cmd

// Exit codes returned by the modforge CLI.
const (
	// ExitSuccess indicates the command completed successfully.
	ExitSuccess = 0

	// ExitGeneralError indicates an unspecified error occurred.
	ExitGeneralError = 1

	// ExitPrecondition indicates a precondition failed before any work was
	// done: the program directory already exists, a module destination is
	// taken, or the modules directory is unusable.
	ExitPrecondition = 2

	// ExitFetchFailed indicates a mandatory remote module could not be
	// fetched after all retries.
	ExitFetchFailed = 3

	// ExitAborted indicates the user declined to continue.
	ExitAborted = 130
)

// ExitCodeName returns the name of the exit code.
func ExitCodeName(code int) string {
	switch code {
	case ExitSuccess:
		return "Success"
	case ExitGeneralError:
		return "General Error"
	case ExitPrecondition:
		return "Precondition Failed"
	case ExitFetchFailed:
		return "Fetch Failed"
	case ExitAborted:
		return "Aborted"
	default:
		return "Unknown"
	}
}
