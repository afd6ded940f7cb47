package main

import (
	"fmt"
	"io"
	"os"
	"runtime/pprof"
	"strings"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/barakmich/lutq"
)

func main() {
	if err := newRootCmd(os.Stdout).Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd(out io.Writer) *cobra.Command {
	v := viper.New()
	cmd := &cobra.Command{
		Use:           "run-lut-benchmark",
		Short:         "Time 4-bit LUT quantizers against each other",
		SilenceUsage:  true,
		SilenceErrors: true,
		PreRunE: func(cmd *cobra.Command, args []string) error {
			if err := v.BindPFlags(cmd.Flags()); err != nil {
				return fmt.Errorf("binding flags: %w", err)
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			err := run(v, out)
			if err != nil {
				log.Error().Err(err).Msg("benchmark failed")
			}
			return err
		},
	}

	def := lutq.DefaultBenchmarkConfig()
	f := cmd.Flags()
	f.IntSlice("sizes", def.Sizes, "Table sizes to generate")
	f.Int("trials", def.Trials, "Quantizations per variant and size")
	f.Int("parallel", def.Parallelism, "Concurrent trials")
	f.Int64("seed", 0, "Generator seed, 0 for the clock")
	f.StringSlice("variants", []string{"reference", "fused", "vek"}, "Quantizers; the first is the baseline")
	f.String("path", "", "CSV of tables to quantize instead of random ones")
	f.String("log-level", "info", "Log level")
	f.String("cpuprof", "", "CPU profile file")

	v.SetEnvPrefix("LUTQ")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	return cmd
}

func run(v *viper.Viper, out io.Writer) error {
	if err := initLogger(v.GetString("log-level")); err != nil {
		return err
	}
	if p := v.GetString("cpuprof"); p != "" {
		f, err := os.Create(p)
		if err != nil {
			return fmt.Errorf("could not create CPU profile: %w", err)
		}
		defer f.Close()
		if err := pprof.StartCPUProfile(f); err != nil {
			return fmt.Errorf("could not start CPU profile: %w", err)
		}
		defer pprof.StopCPUProfile()
	}

	quantizers, err := lutq.QuantizersByName(v.GetStringSlice("variants"))
	if err != nil {
		return err
	}
	cfg := lutq.BenchmarkConfig{
		Sizes:       v.GetIntSlice("sizes"),
		Trials:      v.GetInt("trials"),
		Parallelism: v.GetInt("parallel"),
		Seed:        v.GetInt64("seed"),
		Quantizers:  quantizers,
	}
	runner, err := lutq.NewRunner(cfg)
	if err != nil {
		return err
	}
	runner.SetLogger(printfLogger())

	var results []lutq.BenchmarkResult
	if path := v.GetString("path"); path != "" {
		results, err = runFile(runner, path)
	} else {
		log.Info().Ints("sizes", cfg.Sizes).Int("trials", cfg.Trials).Msg("Benchmarking random tables")
		results, err = runner.Run()
	}
	if err != nil {
		return err
	}

	fmt.Fprintln(out, "group,name,size,trials,ns_per_op,mb_per_s,agreement,max_delta")
	for _, r := range results {
		fmt.Fprintf(out, "%s,%s,%d,%d,%0.1f,%0.2f,%0.4f,%d\n",
			r.Group, r.Name(), r.Size, r.Trials, r.NsPerOp(), r.MBPerSec(), r.Agreement, r.MaxDelta)
	}
	return nil
}

func runFile(runner *lutq.Runner, path string) ([]lutq.BenchmarkResult, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	luts, err := lutq.LoadLUTs(f)
	if err != nil {
		return nil, err
	}
	log.Info().Str("path", path).Int("tables", len(luts)).Msg("Loaded tables")

	var out []lutq.BenchmarkResult
	for i, lut := range luts {
		if err := lutq.CheckFinite(lut); err != nil {
			return nil, fmt.Errorf("table %d: %w", i, err)
		}
		out = append(out, runner.RunLUT(fmt.Sprintf("row%d", i), lut)...)
	}
	return out, nil
}
