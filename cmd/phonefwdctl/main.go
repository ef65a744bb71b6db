// SPDX-License-Identifier: MIT

// Command phonefwdctl is a small operational front end for phonefwd: it
// loads a rule set from repeated --rule flags and runs a single query
// against it. Nothing is persisted between invocations (phonefwd itself
// has no persistence layer); phonefwdctl is a way to exercise the library
// and inspect its behavior from a shell, not a server.
package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/adamgreloch/phonefwd"
)

var (
	rules   []string
	verbose bool
	log     = logrus.New()
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "phonefwdctl",
		Short:         "Inspect a phone-number prefix forwarding store",
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if verbose {
				log.SetLevel(logrus.DebugLevel)
			}
		},
	}
	flags := root.PersistentFlags()
	flags.StringArrayVarP(&rules, "rule", "r", nil,
		`forwarding rule to load before running the query, as "src:tgt" (repeatable)`)
	flags.BoolVarP(&verbose, "verbose", "v", false, "log every loaded rule and query step")
	flags.SortFlags = false
	flags.VisitAll(func(f *pflag.Flag) {
		log.WithField("flag", f.Name).Trace("registered")
	})

	root.AddCommand(newGetCmd(), newReverseCmd(), newGetReverseCmd(), newDemoCmd(), newDumpCmd())
	return root
}

// loadRules builds a PhoneForward from the --rule flags, logging rejected
// rules rather than failing the whole run, since Add itself already
// treats invalid input as a silent false rather than an error.
func loadRules() *phonefwd.PhoneForward {
	pf := phonefwd.New()
	for _, r := range rules {
		src, tgt, ok := strings.Cut(r, ":")
		if !ok || !pf.Add(src, tgt) {
			log.WithField("rule", r).Warn("rejected rule")
			continue
		}
		log.WithFields(logrus.Fields{"src": src, "tgt": tgt}).Debug("loaded rule")
	}
	log.WithField("count", pf.Len()).Debug("rules loaded")
	return pf
}

func printNumbers(pn *phonefwd.PhoneNumbers) {
	for i := 0; i < pn.Len(); i++ {
		s, _ := pn.Get(i)
		fmt.Println(s)
	}
}

func newGetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get <number>",
		Short: "Rewrite a number by its longest matching source prefix",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			pf := loadRules()
			defer pf.Close()
			if phonefwd.Validate(args[0]) == 0 {
				return fmt.Errorf("invalid number %q", args[0])
			}
			printNumbers(pf.Get(args[0]))
			return nil
		},
	}
}

func newReverseCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "reverse <number>",
		Short: "List every number that could plausibly forward onto the given number",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			pf := loadRules()
			defer pf.Close()
			if phonefwd.Validate(args[0]) == 0 {
				return fmt.Errorf("invalid number %q", args[0])
			}
			printNumbers(pf.Reverse(args[0]))
			return nil
		},
	}
}

func newGetReverseCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get-reverse <number>",
		Short: "List numbers that forward onto the given number and round-trip back to it",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			pf := loadRules()
			defer pf.Close()
			if phonefwd.Validate(args[0]) == 0 {
				return fmt.Errorf("invalid number %q", args[0])
			}
			printNumbers(pf.GetReverse(args[0]))
			return nil
		},
	}
}

func newDumpCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "dump",
		Short: "Print both tries' internal structure for the loaded rules",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			pf := loadRules()
			defer pf.Close()
			fmt.Print(pf.Debug())
			return nil
		},
	}
}

// scenario is one step of the demo scenario script.
type scenario struct {
	label string
	run   func(pf *phonefwd.PhoneForward) *phonefwd.PhoneNumbers
}

func newDemoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "demo",
		Short: "Replay the library's documented scenarios end to end",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			pf := phonefwd.New()
			defer pf.Close()

			add := func(src, tgt string) scenario {
				return scenario{
					label: fmt.Sprintf("add(%q, %q)", src, tgt),
					run: func(pf *phonefwd.PhoneForward) *phonefwd.PhoneNumbers {
						pf.Add(src, tgt)
						return nil
					},
				}
			}
			get := func(num string) scenario {
				return scenario{
					label: fmt.Sprintf("get(%q)", num),
					run:   func(pf *phonefwd.PhoneForward) *phonefwd.PhoneNumbers { return pf.Get(num) },
				}
			}
			reverse := func(num string) scenario {
				return scenario{
					label: fmt.Sprintf("reverse(%q)", num),
					run:   func(pf *phonefwd.PhoneForward) *phonefwd.PhoneNumbers { return pf.Reverse(num) },
				}
			}
			getReverse := func(num string) scenario {
				return scenario{
					label: fmt.Sprintf("get_reverse(%q)", num),
					run:   func(pf *phonefwd.PhoneForward) *phonefwd.PhoneNumbers { return pf.GetReverse(num) },
				}
			}

			script := []scenario{
				add("123", "9"), get("1234"), get("12"),
				add("123456", "777777"), get("12345"), get("123456"), get("997"),
				add("431", "432"), add("432", "433"), get("431"), get("432"),
				reverse("9"), getReverse("9"), reverse("94"), getReverse("94"),
			}

			for _, step := range script {
				log.WithField("step", step.label).Debug("running")
				pn := step.run(pf)
				if pn == nil {
					fmt.Println(step.label)
					continue
				}
				fmt.Printf("%s =>", step.label)
				for i := 0; i < pn.Len(); i++ {
					s, _ := pn.Get(i)
					fmt.Printf(" %s", s)
				}
				fmt.Println()
			}
			return nil
		},
	}
}
