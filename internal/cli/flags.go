package cli

import (
	"io"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"golang.org/x/term"

	"github.com/jmylchreest/swatch/internal/config"
)

// formatFlag is a pflag.Value restricted to the supported output formats.
type formatFlag struct {
	value *config.Format
}

var _ pflag.Value = (*formatFlag)(nil)

func (f *formatFlag) String() string {
	if f.value == nil {
		return ""
	}
	return string(*f.value)
}

func (f *formatFlag) Set(s string) error {
	v, err := config.ParseFormat(s)
	if err != nil {
		return err
	}
	*f.value = v
	return nil
}

func (f *formatFlag) Type() string {
	return "format"
}

// previewFlag is a pflag.Value for auto/always/never. A bare --preview means always.
type previewFlag struct {
	value *config.PreviewMode
}

var _ pflag.Value = (*previewFlag)(nil)

func (f *previewFlag) String() string {
	if f.value == nil {
		return ""
	}
	return string(*f.value)
}

func (f *previewFlag) Set(s string) error {
	v, err := config.ParsePreviewMode(s)
	if err != nil {
		return err
	}
	*f.value = v
	return nil
}

func (f *previewFlag) Type() string {
	return "mode"
}

// outputFlags are shared by every command that renders results.
type outputFlags struct {
	format  config.Format
	preview config.PreviewMode
	strict  bool
}

// register adds --format, --preview and --strict to cmd.
func (o *outputFlags) register(cmd *cobra.Command) {
	o.format = config.FormatText
	o.preview = config.PreviewAuto
	o.strict = true

	cmd.Flags().VarP(&formatFlag{value: &o.format}, "format", "f", "output format (text, json, table)")
	cmd.Flags().Var(&previewFlag{value: &o.preview}, "preview", "show colour previews in terminal (auto, always, never)")
	cmd.Flags().Lookup("preview").NoOptDefVal = string(config.PreviewAlways)
	cmd.Flags().BoolVar(&o.strict, "strict", true, "reject malformed hex instead of treating it as black")
}

// resolve fills unset flags from cfg. Explicit flags win.
func (o *outputFlags) resolve(flags *pflag.FlagSet, cfg config.Config) {
	if !flags.Changed("format") {
		o.format = cfg.Format
	}
	if !flags.Changed("preview") {
		o.preview = cfg.Preview
	}
	if !flags.Changed("strict") {
		o.strict = cfg.Strict
	}
}

// previewEnabled decides whether ANSI previews are written to out.
func previewEnabled(mode config.PreviewMode, out io.Writer) bool {
	switch mode {
	case config.PreviewAlways:
		return true
	case config.PreviewNever:
		return false
	}
	f, ok := out.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}
