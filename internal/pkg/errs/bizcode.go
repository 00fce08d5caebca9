package errs

const (
	BizCodeUnexpected = -1

	BizCodeInvalidParams = 1001

	BizCodeProjectNotFound         = 8001
	BizCodeVersionNotFound         = 8002
	BizCodeNoBuildsAvailable       = 8003
	BizCodeUpstreamUnavailable     = 8004
	BizCodeResolverMissingArgument = 8005
	BizCodeClipboardWriteFailed    = 8006
)
