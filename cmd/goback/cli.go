package main

import (
	"strconv"

	"github.com/spf13/cobra"
)

const (
	defaultSteps     = 1
	defaultListCount = 10
)

const helpText = `goback - Go back to a previous git branch

USAGE:
    goback [N] [OPTIONS]

ARGS:
    N    Number of steps back (default: 1)

OPTIONS:
    -p, --print     Print the branch name only (don't switch)
    -l, --list [N]  List recent N branches (default: 10)
    -h, --help      Print this help message

EXAMPLES:
    goback           Go back to the previous branch
    goback 2         Go back 2 branches ago
    goback --print   Print the previous branch name
    goback 2 -p      Print the branch name 2 steps back
    goback -l        List recent 10 branches
    goback -l 5      List recent 5 branches
`

type options struct {
	Steps     int
	PrintOnly bool
	List      bool
	ListCount int
}

func newRootCommand(args []string) *cobra.Command {
	root := &cobra.Command{
		Use:   "goback [N] [OPTIONS]",
		Short: "Go back to a previous git branch",
		Args:  cobra.ArbitraryArgs,
		// parseOptions scans the raw args: a bare number after --list is the
		// list count and unknown tokens are ignored.
		DisableFlagParsing: true,
		SilenceUsage:       true,
		SilenceErrors:      true,
		CompletionOptions:  cobra.CompletionOptions{DisableDefaultCmd: true},
		RunE: func(cmd *cobra.Command, cmdArgs []string) error {
			opts, help := parseOptions(trimArgTerminator(cmdArgs))
			if help {
				return cmd.Help()
			}
			return runGoback(cmd.OutOrStdout(), opts)
		},
	}
	root.SetHelpTemplate(helpText)

	// The leading "--" keeps cobra from resolving a first token such as
	// __complete to its hidden completion command.
	rawArgs := []string{argTerminator}
	if len(args) > 0 {
		rawArgs = append(rawArgs, args[1:]...)
	}
	root.SetArgs(rawArgs)
	return root
}

const argTerminator = "--"

func trimArgTerminator(args []string) []string {
	if len(args) > 0 && args[0] == argTerminator {
		return args[1:]
	}
	return args
}

// parseOptions reports help=true as soon as -h/--help is seen.
func parseOptions(args []string) (options, bool) {
	opts := options{Steps: defaultSteps, ListCount: defaultListCount}
	expectListCount := false
	for _, arg := range args {
		switch arg {
		case "-h", "--help":
			return opts, true
		case "-l", "--list":
			opts.List = true
			expectListCount = true
		case "-p", "--print":
			opts.PrintOnly = true
		default:
			n, ok := parseCount(arg)
			if !ok {
				continue
			}
			if expectListCount {
				opts.ListCount = n
				expectListCount = false
			} else {
				opts.Steps = n
			}
		}
	}
	return opts, false
}

func parseCount(arg string) (int, bool) {
	n, err := strconv.ParseUint(arg, 10, strconv.IntSize-1)
	if err != nil {
		return 0, false
	}
	return int(n), true
}
