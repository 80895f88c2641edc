// Copyright 2020 The go-ethereum Authors
// This file is part of go-ethereum.
//
// go-ethereum is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// go-ethereum is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE. See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with go-ethereum. If not, see <http://www.gnu.org/licenses/>.

package flags

import (
	"os"

	cli "gopkg.in/urfave/cli.v1"
)

// NewApp creates the cli.App with the tool's name and version. Flags and
// Action are filled in by the launcher.
func NewApp() *cli.App {
	app := cli.NewApp()
	app.Name = "issuance-audit"
	app.Usage = "Check the issuance accounting of a proof-of-work chain from genesis to tip"
	app.UsageText = "issuance-audit --url <node RPC endpoint> [options]"
	app.Version = "0.1.0"
	app.Writer = os.Stdout
	app.ErrWriter = os.Stderr
	return app
}

// AllFlags returns every flag the tool understands.
func AllFlags() []cli.Flag {
	var all []cli.Flag
	all = append(all, NodeFlags()...)
	all = append(all, CommonFlags()...)
	return all
}
