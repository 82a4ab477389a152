// Package main provides the strided CLI for inspecting tensor views.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"k8s.io/klog/v2"
)

const version = "v0.1.0-dev"

func main() {
	defer klog.Flush()

	if err := newRootCmd().Execute(); err != nil {
		klog.Errorf("strided: %v", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "strided",
		Short:         "Inspect N-dimensional strided tensors and their views",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	klogFlags := flag.NewFlagSet("klog", flag.ContinueOnError)
	klog.InitFlags(klogFlags)
	root.PersistentFlags().AddGoFlagSet(klogFlags)

	root.AddCommand(newVersionCmd(), newDemoCmd(), newPropsCmd())
	return root
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "strided %s\n", version)
		},
	}
}
