package flags

import (
	"gopkg.in/urfave/cli.v1"
)

var (
	LogVerbosityFlag = cli.IntFlag{
		Name:  "log.verbosity",
		Usage: "Logging verbosity (0=fatal,1=error,2=warn,3=info,4=debug,5=trace)",
		Value: 3,
	}
	LogFormatFlag = cli.StringFlag{
		Name:  "log.format",
		Usage: "Log output format (text|json)",
		Value: "text",
	}
	LogColorFlag = cli.BoolFlag{
		Name:  "log.color",
		Usage: "Enable colored log output",
	}
	SentryDSNFlag = cli.StringFlag{
		Name:   "sentry.dsn",
		Usage:  "Report errors to this Sentry DSN",
		EnvVar: "ISSUANCE_AUDIT_SENTRY_DSN",
	}
)

// CommonFlags returns the logging and error reporting flags.
func CommonFlags() []cli.Flag {
	return []cli.Flag{
		LogVerbosityFlag,
		LogFormatFlag,
		LogColorFlag,
		SentryDSNFlag,
	}
}
