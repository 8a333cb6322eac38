package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/fatih/color"
	"github.com/goccy/go-yaml"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/crillab/gophermodel/finder"
	"github.com/crillab/gophermodel/logic"
	"github.com/crillab/gophermodel/sat"
)

type cliOptions struct {
	startSize          int
	startWithConstants bool
	symmetryRatio      float64
	widgetOrder        string
	symbolOrder        string
	backend            string
	format             string
	timeout            time.Duration
	useModelSize       bool
	verbose            bool
}

func main() {
	if err := rootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "gophermodel: %v\n", err)
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	var opts cliOptions
	cmd := &cobra.Command{
		Use:   "gophermodel [flags] file.fcnf",
		Short: "finite model finder for flattened first-order clause sets",
		Long: "gophermodel decides satisfiability of a flattened first-order clause set " +
			"by searching for a finite model: each candidate domain size is encoded " +
			"propositionally and handed to a SAT engine, growing the size until a model " +
			"is found or none can exist.",
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(args[0], opts)
		},
	}
	flags := cmd.Flags()
	flags.IntVar(&opts.startSize, "start-size", 1, "first candidate domain size")
	flags.BoolVar(&opts.startWithConstants, "start-with-constants", false, "seed the candidate size with the constant count")
	flags.Float64Var(&opts.symmetryRatio, "symmetry-ratio", 1.0, "fraction of the candidate size used as canonicity prefix")
	flags.StringVar(&opts.widgetOrder, "widget-order", "function-first", "symmetry sequence layout: function-first, argument-first or diagonal")
	flags.StringVar(&opts.symbolOrder, "symbol-order", "occurrence", "symbol ordering: occurrence, input-usage or preprocessed-usage")
	flags.StringVar(&opts.backend, "backend", sat.Gophersat, "SAT engine: gophersat or gini")
	flags.StringVar(&opts.format, "format", "text", "model output format: text or yaml")
	flags.DurationVar(&opts.timeout, "timeout", 0, "overall time limit, 0 for none")
	flags.BoolVar(&opts.useModelSize, "use-model-size", false, "assert that the candidate size is fully used (arity <= 1 signatures only)")
	flags.BoolVarP(&opts.verbose, "verbose", "v", false, "log every attempt")
	return cmd
}

func run(path string, opts cliOptions) error {
	if opts.format != "text" && opts.format != "yaml" {
		return errors.Errorf("unknown output format %q", opts.format)
	}
	widgetOrder, err := finder.ParseWidgetOrder(opts.widgetOrder)
	if err != nil {
		return err
	}
	symbolOrder, err := finder.ParseSymbolOrder(opts.symbolOrder)
	if err != nil {
		return err
	}

	file, err := os.Open(path)
	if err != nil {
		return errors.Wrap(err, "could not open problem")
	}
	defer file.Close()
	cs, err := logic.Parse(file)
	if err != nil {
		return errors.Wrapf(err, "could not parse %s", path)
	}

	log := logrus.New()
	if opts.verbose {
		log.SetLevel(logrus.InfoLevel)
	} else {
		log.SetLevel(logrus.WarnLevel)
	}

	// No sort inference pass here: every symbol goes into one
	// unbounded sort.
	prb := finder.NewProblem(cs.Sig, logic.SingleSort(cs.Sig), cs.Clauses)
	prb.EPR = cs.Sig.MaxArity() == 0

	fnd, err := finder.New(prb, finder.Options{
		StartSize:          opts.startSize,
		StartWithConstants: opts.startWithConstants,
		SymmetryRatio:      opts.symmetryRatio,
		WidgetOrder:        widgetOrder,
		SymbolOrder:        symbolOrder,
		Backend:            opts.backend,
		UseModelSizeAxiom:  opts.useModelSize,
		Logger:             log,
	})
	if err != nil {
		return err
	}

	ctx := context.Background()
	if opts.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, opts.timeout)
		defer cancel()
	}

	res := fnd.Run(ctx)
	switch res.Outcome {
	case finder.Satisfiable:
		fmt.Printf("%s (size %d)\n", color.GreenString(res.Outcome.String()), res.Size)
		return printModel(res.Model, opts.format)
	case finder.Refuted:
		fmt.Printf("%s (no model up to the maximum possible size %d)\n",
			color.RedString(res.Outcome.String()), res.Size)
	case finder.TimeLimit:
		fmt.Println(color.YellowString(res.Outcome.String()))
	default:
		fmt.Printf("%s (gave up at size %d)\n", color.YellowString(res.Outcome.String()), res.Size)
	}
	return nil
}

func printModel(m *logic.Model, format string) error {
	if format == "yaml" {
		out, err := yaml.Marshal(m.Tables())
		if err != nil {
			return errors.Wrap(err, "could not serialize model")
		}
		_, err = os.Stdout.Write(out)
		return err
	}
	return m.WriteText(os.Stdout)
}
