package main

import (
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/spf13/cobra"

	"github.com/hasbyte1/go-classic-ciphers/pipeline"
)

// stageFlags holds the transform selection shared by every command.
type stageFlags struct {
	config   string
	logLevel string

	vig, sub, mul, aff, tra, cae string
	obf, rev                     bool
}

func (f *stageFlags) register(cmd *cobra.Command) {
	fs := cmd.PersistentFlags()
	fs.StringVar(&f.config, "config", "", "YAML pipeline specification; flags below override its stages")
	fs.StringVar(&f.logLevel, "log-level", "warn", "log level (debug, info, warn, error)")

	fs.StringVarP(&f.vig, "vig", "v", "", "Vigenère: takes a memorable string key")
	fs.StringVarP(&f.sub, "sub", "s", "", "substitution: takes a 26-letter scrambled alphabet key")
	fs.StringVarP(&f.mul, "mul", "m", "", "multiplicative: takes a number key coprime with 26")
	fs.StringVarP(&f.aff, "aff", "a", "", "affine: takes a large number key")
	fs.BoolVarP(&f.obf, "obf", "o", false, "obfuscate text; destructive with some encryption, careful")
	fs.StringVarP(&f.tra, "tra", "t", "", "transposition: takes a number key")
	fs.StringVarP(&f.cae, "cae", "c", "", "Caesar: takes a number key")
	fs.BoolVarP(&f.rev, "rev", "r", false, "reverse text")
}

// spec merges the optional specification file with the stage flags that were
// set on the command line.
func (f *stageFlags) spec(cmd *cobra.Command) (*pipeline.Spec, error) {
	spec := &pipeline.Spec{}
	if f.config != "" {
		loaded, err := pipeline.LoadSpec(f.config)
		if err != nil {
			return nil, err
		}
		spec = loaded
	}

	keyed := []struct {
		flag string
		name pipeline.Name
		key  string
	}{
		{"vig", pipeline.Vigenere, f.vig},
		{"sub", pipeline.Substitution, f.sub},
		{"mul", pipeline.Multiplicative, f.mul},
		{"aff", pipeline.Affine, f.aff},
		{"tra", pipeline.Transposition, f.tra},
		{"cae", pipeline.Caesar, f.cae},
	}
	for _, k := range keyed {
		if cmd.Flags().Changed(k.flag) {
			spec.Set(k.name, k.key)
		}
	}
	if f.obf {
		spec.Set(pipeline.Obfuscation, "")
	}
	if f.rev {
		spec.Set(pipeline.Reverse, "")
	}

	if len(spec.Enabled()) == 0 {
		return nil, errNoTransforms
	}
	return spec, nil
}

func (f *stageFlags) logger(w io.Writer) (*slog.Logger, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(strings.TrimSpace(f.logLevel))); err != nil {
		return nil, fmt.Errorf("invalid --log-level %q: %w", f.logLevel, err)
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level})), nil
}

// build resolves the stage flags into a pipeline.
func (f *stageFlags) build(cmd *cobra.Command) (*pipeline.Pipeline, error) {
	logger, err := f.logger(cmd.ErrOrStderr())
	if err != nil {
		return nil, err
	}
	spec, err := f.spec(cmd)
	if err != nil {
		return nil, err
	}
	return pipeline.New(spec.Stages, pipeline.WithLogger(logger))
}
