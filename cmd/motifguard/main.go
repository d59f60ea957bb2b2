// Command motifguard compiles motif-avoidance transducers.
//
// It prints the transition table for each motif as JSON (the format read
// by the transducer-composition engine) or as Graphviz DOT, or runs a
// sequence through the compiled machines with --check.
//
//	motifguard -m GAATTC                     # both strands, no repeats
//	motifguard -m GAATTC -f -r --format dot  # forward strand only, repeats allowed
//	motifguard -m GAATTC -m GGATCC --out-dir machines/
//	motifguard -m - -c ACGTAC                # homopolymer check only
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/pkg/profile"
	"github.com/spf13/pflag"

	"github.com/katalvlaran/motifguard/automaton"
	"github.com/katalvlaran/motifguard/machine"
)

var (
	version = "dev"
	commit  = "none"
)

// Exit codes.
const (
	exitOK    = 0
	exitError = 1
	exitUsage = 2
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

type options struct {
	motifs       []string
	forwardOnly  bool
	allowRepeats bool
	format       string
	output       string
	outDir       string
	jobs         int
	check        string
	verbose      bool
	profile      string
	version      bool
}

func parseFlags(args []string, stderr io.Writer) (*options, *pflag.FlagSet, error) {
	o := &options{}
	fs := pflag.NewFlagSet("motifguard", pflag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.StringArrayVarP(&o.motifs, "motif", "m", nil, "motif over IUPAC codes [ACGTWSMKRYBDHVN-]; repeatable ('-' forbids no pattern)")
	fs.BoolVarP(&o.forwardOnly, "forward", "f", false, "do not check the reverse-complement strand")
	fs.BoolVarP(&o.allowRepeats, "allow-repeats", "r", false, "allow consecutive identical bases")
	fs.StringVar(&o.format, "format", "json", "output format: json|dot")
	fs.StringVarP(&o.output, "output", "o", "-", "output file ('-' for stdout); single motif only")
	fs.StringVar(&o.outDir, "out-dir", "", "write one file per motif into this directory")
	fs.IntVarP(&o.jobs, "jobs", "j", runtime.NumCPU(), "concurrent builds")
	fs.StringVarP(&o.check, "check", "c", "", "run `SEQ` through each machine and report accept/reject")
	fs.BoolVarP(&o.verbose, "verbose", "v", false, "log build statistics to stderr")
	fs.StringVar(&o.profile, "profile", "", "(dev) enable profiling one of `cpu|mem|block`")
	fs.BoolVar(&o.version, "version", false, "print version and exit")
	fs.Usage = func() {
		fmt.Fprintln(stderr, "motifguard: compile motif-avoidance transducers")
		fmt.Fprintln(stderr)
		fmt.Fprintln(stderr, "Usage:")
		fmt.Fprintln(stderr, "  motifguard -m <MOTIF> [-m <MOTIF>...] [options]")
		fmt.Fprintln(stderr)
		fmt.Fprintln(stderr, "Options:")
		fs.PrintDefaults()
	}
	if err := fs.Parse(args); err != nil {
		return nil, fs, err
	}
	return o, fs, nil
}

func (o *options) validate() error {
	if len(o.motifs) == 0 {
		return errors.New("at least one --motif is required")
	}
	if o.format != "json" && o.format != "dot" {
		return fmt.Errorf("unknown --format %q", o.format)
	}
	if o.check == "" && len(o.motifs) > 1 && o.outDir == "" {
		return errors.New("several motifs need --out-dir")
	}
	if o.outDir != "" && o.output != "-" {
		return errors.New("--output and --out-dir are mutually exclusive")
	}
	if o.jobs < 1 {
		return fmt.Errorf("--jobs must be positive (got %d)", o.jobs)
	}
	if o.outDir != "" && o.check == "" {
		seen := make(map[string]string, len(o.motifs))
		for _, m := range o.motifs {
			name := fileName(m, o.format)
			if prev, dup := seen[name]; dup {
				return fmt.Errorf("motifs %q and %q both map to %s", prev, m, name)
			}
			seen[name] = m
		}
	}
	return nil
}

func run(args []string, stdout, stderr io.Writer) int {
	logger := log.New(stderr, "motifguard: ", 0)

	o, fs, err := parseFlags(args, stderr)
	if errors.Is(err, pflag.ErrHelp) {
		return exitOK
	}
	if err != nil {
		return exitUsage
	}
	if o.version {
		fmt.Fprintf(stdout, "motifguard %s (commit %s)\n", version, commit)
		return exitOK
	}
	if err := o.validate(); err != nil {
		logger.Printf("error: %v", err)
		fs.Usage()
		return exitUsage
	}

	switch strings.ToLower(o.profile) {
	case "":
	case "cpu":
		defer profile.Start(profile.CPUProfile, profile.ProfilePath("."), profile.Quiet).Stop()
	case "mem":
		defer profile.Start(profile.MemProfile, profile.ProfilePath("."), profile.Quiet).Stop()
	case "block":
		defer profile.Start(profile.BlockProfile, profile.ProfilePath("."), profile.Quiet).Stop()
	default:
		logger.Printf("invalid profile: %s", o.profile)
		fs.Usage()
		return exitUsage
	}

	opts := []automaton.Option{
		automaton.WithForwardOnly(o.forwardOnly),
		automaton.WithAllowRepeats(o.allowRepeats),
	}
	reqs := make([]automaton.Request, len(o.motifs))
	for i, m := range o.motifs {
		reqs[i] = automaton.Request{Motif: m, Options: opts}
	}
	results, err := automaton.BuildAllWithStats(context.Background(), reqs, o.jobs)
	if err != nil {
		logger.Printf("build: %v", err)
		return exitError
	}
	machines := make([]*machine.Machine, len(results))
	for i, r := range results {
		machines[i] = r.Machine
		if o.verbose {
			logger.Printf("motif=%s states=%d transitions=%d discovered=%d live=%d depth=%d",
				o.motifs[i], r.Machine.NStates(), r.Stats.Transitions,
				r.Stats.Discovered, r.Stats.Live, r.Stats.Depth)
		}
	}

	if o.check != "" {
		return checkSequence(stdout, o, machines)
	}
	if err := writeMachines(stdout, o, machines); err != nil {
		logger.Printf("write: %v", err)
		return exitError
	}
	return exitOK
}

// checkSequence prints one line per motif. The exit status is 1 if any
// machine rejects the sequence.
func checkSequence(stdout io.Writer, o *options, machines []*machine.Machine) int {
	seq := strings.ToUpper(o.check)
	code := exitOK
	for i, m := range machines {
		if _, err := m.Transduce(seq); err != nil {
			fmt.Fprintf(stdout, "%s\treject\t%v\n", o.motifs[i], err)
			code = exitError
			continue
		}
		fmt.Fprintf(stdout, "%s\taccept\n", o.motifs[i])
	}
	return code
}

func encode(w io.Writer, format string, m *machine.Machine) error {
	if format == "dot" {
		return m.WriteDot(w, "")
	}
	return m.WriteJSON(w)
}

// fileName derives an output name from a motif; '-' is not a friendly
// file name character.
func fileName(motif, format string) string {
	name := strings.ToUpper(strings.ReplaceAll(motif, "-", "_"))
	return name + "." + format
}

func writeMachines(stdout io.Writer, o *options, machines []*machine.Machine) error {
	if o.outDir == "" {
		if o.output == "-" {
			return encode(stdout, o.format, machines[0])
		}
		return writeFile(o.output, o.format, machines[0])
	}
	if err := os.MkdirAll(o.outDir, 0o755); err != nil {
		return err
	}
	for i, m := range machines {
		if err := writeFile(filepath.Join(o.outDir, fileName(o.motifs[i], o.format)), o.format, m); err != nil {
			return err
		}
	}
	return nil
}

func writeFile(path, format string, m *machine.Machine) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := encode(f, format, m); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}
