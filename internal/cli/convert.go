package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jmylchreest/swatch/internal/colour"
)

// viewFunc renders one view of a parsed colour.
type viewFunc func(r *renderer, hex string) error

// newViewCmd builds a command that takes one hex colour and renders a view of it.
func newViewCmd(opts *rootOptions, use, short, long string, view viewFunc) *cobra.Command {
	out := &outputFlags{}

	cmd := &cobra.Command{
		Use:   use,
		Short: short,
		Long:  long,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out.resolve(cmd.Flags(), opts.config)

			hex, err := resolveHex(opts, args[0], out.strict)
			if err != nil {
				return err
			}

			r := newRenderer(cmd.OutOrStdout(), out.format, previewEnabled(out.preview, cmd.OutOrStdout()))
			opts.logger.Debug("rendering", "command", cmd.Name(), "hex", hex, "format", out.format, "preview", r.preview)
			return view(r, hex)
		},
	}
	out.register(cmd)

	return cmd
}

// resolveHex validates the input colour and returns it in canonical form.
// When strict is false, malformed input is logged and converted as black.
func resolveHex(opts *rootOptions, input string, strict bool) (string, error) {
	hex, err := colour.NormaliseHex(input)
	if err == nil {
		return hex, nil
	}
	if strict {
		return "", fmt.Errorf("invalid colour: %w", err)
	}
	opts.logger.Warn("malformed colour treated as black", "input", input)
	return colour.HexToRGB(input).Hex(), nil
}

func newConvertCmd(opts *rootOptions) *cobra.Command {
	return newViewCmd(opts, "convert <hex>",
		"Convert a hex colour to every derived representation",
		`Convert a 6-digit hex colour (with or without '#') to RGB, HSL and LCH,
and derive its palette, variation ramps and contrast ratios.

Examples:
  # Full conversion
  swatch convert '#ff0000'

  # As JSON
  swatch convert --format json 3c78b4

  # As a table with colour previews
  swatch convert -f table --preview '#3c78b4'

  # Treat malformed input as black instead of failing
  swatch convert --strict=false nonsense`,
		func(r *renderer, hex string) error {
			return r.result(colour.ConvertColor(hex))
		})
}

func newPaletteCmd(opts *rootOptions) *cobra.Command {
	return newViewCmd(opts, "palette <hex>",
		"Derive complementary, triadic, analogous and split-complementary colours",
		`Rotate the hue of a colour to derive harmony palettes. Saturation and
lightness are kept.

  complementary         +180
  triadic               +120, +240
  analogous             +30, -30
  split-complementary   +150, +210`,
		func(r *renderer, hex string) error {
			return r.palette(hex, colour.GeneratePalette(hex))
		})
}

func newVariationsCmd(opts *rootOptions) *cobra.Command {
	return newViewCmd(opts, "variations <hex>",
		"Derive tint, shade and tone ramps",
		`Derive five-step ramps: tints raise lightness by 10 per step, shades lower
it by 10, tones lower saturation by 15. Steps clamp at 0 and 100.`,
		func(r *renderer, hex string) error {
			return r.variations(hex, colour.GenerateVariations(hex))
		})
}

func newContrastCmd(opts *rootOptions) *cobra.Command {
	return newViewCmd(opts, "contrast <hex>",
		"Report WCAG contrast ratios against white and black",
		`Report the WCAG 2.0 contrast ratio of a colour against pure white and pure
black, rounded to two decimal places, with the conformance level each ratio
meets for normal text (AA 4.5:1, AAA 7:1) or large text (3:1).`,
		func(r *renderer, hex string) error {
			return r.contrasts(hex, colour.CalculateContrasts(hex))
		})
}
