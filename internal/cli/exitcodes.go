package cli

import "github.com/Adda-Baaj/restful/internal/domain"

// Exit codes for the restful CLI
const (
	// ExitSuccess indicates the response was printed or saved
	ExitSuccess = 0

	// ExitFailure indicates the single request could not be completed
	ExitFailure = 1
)

var exitCodes = map[domain.Kind]int{
	domain.KindUnsupportedMethod:       ExitFailure,
	domain.KindTransport:               ExitFailure,
	domain.KindHTTP:                    ExitFailure,
	domain.KindUnsupportedOutputFormat: ExitFailure,
	domain.KindDecode:                  ExitFailure,
	domain.KindMalformedInputData:      ExitFailure,
	domain.KindEmptyResult:             ExitFailure,
	domain.KindNotTabular:              ExitFailure,
	domain.KindOutput:                  ExitFailure,
	domain.KindConfig:                  ExitFailure,
	domain.KindUsage:                   ExitFailure,
}

// ExitCode maps an error returned by a run to the process exit code.
func ExitCode(err error) int {
	if err == nil {
		return ExitSuccess
	}
	if code, ok := exitCodes[domain.KindOf(err)]; ok {
		return code
	}
	return ExitFailure
}
