// Package main is the entry point for the albctl CLI.
//
// albctl deploys Azure Application Gateway for Containers end to end: it
// provisions the resource group and AKS infrastructure from an ARM template,
// installs the ALB controller into the cluster, applies the Gateway API
// workload, and waits for the load balancer to converge.
//
// Commands: init, apply, status, destroy.
//
// For detailed usage information, run:
//
//	albctl --help
package main

import (
	"fmt"
	"os"

	"github.com/albctl/albctl/cmd/albctl/commands"
)

// Version information set by goreleaser at build time.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	commands.SetVersionInfo(version, commit, date)
	if err := commands.Root().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
