package flags

import (
	"gopkg.in/urfave/cli.v1"
)

// URLFlag is the JSON-RPC endpoint of the node being audited.
var URLFlag = cli.StringFlag{
	Name:   "url",
	Usage:  "JSON-RPC endpoint of the node to audit (http, https, ws or wss)",
	EnvVar: "ISSUANCE_AUDIT_URL",
}

// NodeFlags holds the flags that select the node to audit.
func NodeFlags() []cli.Flag {
	return []cli.Flag{
		URLFlag,
	}
}
