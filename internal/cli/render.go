package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/jmylchreest/swatch/internal/colour"
	"github.com/jmylchreest/swatch/internal/config"
)

const previewWidth = 6

// renderer writes colour views in one output format.
type renderer struct {
	w       io.Writer
	format  config.Format
	preview bool
	heading lipgloss.Style
}

// newRenderer returns a renderer for w. Headings are styled only when
// previews are on, regardless of what the process stdout is.
func newRenderer(w io.Writer, format config.Format, preview bool) *renderer {
	lr := lipgloss.NewRenderer(w)
	if preview {
		lr.SetColorProfile(termenv.ANSI)
	} else {
		lr.SetColorProfile(termenv.Ascii)
	}
	return &renderer{
		w:       w,
		format:  format,
		preview: preview,
		heading: lr.NewStyle().Bold(true),
	}
}

// swatch formats hex with an optional preview block in front.
func (r *renderer) swatch(hex string) string {
	if !r.preview {
		return hex
	}
	return colour.FormatColourWithPreview(colour.HexToRGB(hex), previewWidth)
}

func (r *renderer) writeJSON(v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to convert to JSON: %w", err)
	}
	_, err = fmt.Fprintln(r.w, string(data))
	return err
}

func formatRatio(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64)
}

// result renders the full conversion for hex.
func (r *renderer) result(res colour.Result) error {
	switch r.format {
	case config.FormatJSON:
		return r.writeJSON(res)
	case config.FormatTable:
		t := NewTable([]string{"View", "Name", "Value"})
		t.AddRow([]string{"colour", "hex", r.swatch(res.Hex())})
		t.AddRow([]string{"colour", "rgb", res.RGB.String()})
		t.AddRow([]string{"colour", "hsl", res.HSL.String()})
		t.AddRow([]string{"colour", "lch", res.LCH.String()})
		r.contrastRows(t, res.Contrasts)
		r.paletteRows(t, res.Palette)
		r.variationRows(t, res.Variations)
		_, err := fmt.Fprint(r.w, t.Render())
		return err
	default:
		var sb strings.Builder
		sb.WriteString(r.heading.Render(res.Hex()) + "\n")
		if r.preview {
			sb.WriteString("  " + colour.ColourPreviewWithText(res.RGB, res.Hex(), 3*previewWidth) + "\n")
		}
		fmt.Fprintf(&sb, "  %-9s %s\n", "RGB", res.RGB)
		fmt.Fprintf(&sb, "  %-9s %s\n", "HSL", res.HSL)
		fmt.Fprintf(&sb, "  %-9s %s\n", "LCH", res.LCH)
		fmt.Fprintf(&sb, "  %-9s %s\n", "Contrast", r.contrastSummary(res.Contrasts))
		sb.WriteString("\n")
		sb.WriteString(r.paletteText(res.Palette))
		sb.WriteString("\n")
		sb.WriteString(r.variationsText(res.Variations))
		_, err := fmt.Fprint(r.w, sb.String())
		return err
	}
}

// palette renders the harmony palette of base.
func (r *renderer) palette(base string, p colour.Harmony) error {
	switch r.format {
	case config.FormatJSON:
		return r.writeJSON(struct {
			Hex     string         `json:"hex"`
			Palette colour.Harmony `json:"palette"`
		}{base, p})
	case config.FormatTable:
		t := NewTable([]string{"View", "Name", "Value"})
		r.paletteRows(t, p)
		_, err := fmt.Fprint(r.w, t.Render())
		return err
	default:
		_, err := fmt.Fprint(r.w, r.paletteText(p))
		return err
	}
}

// variations renders the tint, shade and tone ramps of base.
func (r *renderer) variations(base string, v colour.Variations) error {
	switch r.format {
	case config.FormatJSON:
		return r.writeJSON(struct {
			Hex        string            `json:"hex"`
			Variations colour.Variations `json:"variations"`
		}{base, v})
	case config.FormatTable:
		t := NewTable([]string{"View", "Name", "Value"})
		r.variationRows(t, v)
		_, err := fmt.Fprint(r.w, t.Render())
		return err
	default:
		_, err := fmt.Fprint(r.w, r.variationsText(v))
		return err
	}
}

// contrasts renders the WCAG contrast ratios of base.
func (r *renderer) contrasts(base string, c colour.Contrasts) error {
	switch r.format {
	case config.FormatJSON:
		return r.writeJSON(struct {
			Hex       string           `json:"hex"`
			Contrasts colour.Contrasts `json:"contrasts"`
		}{base, c})
	case config.FormatTable:
		t := NewTable([]string{"View", "Name", "Value"})
		r.contrastRows(t, c)
		_, err := fmt.Fprint(r.w, t.Render())
		return err
	default:
		_, err := fmt.Fprintf(r.w, "%s\n  %s\n", r.heading.Render("Contrast"), r.contrastSummary(c))
		return err
	}
}

func (r *renderer) contrastSummary(c colour.Contrasts) string {
	return fmt.Sprintf("white %s (%s)  black %s (%s)",
		formatRatio(c.White), colour.WCAGLevel(c.White),
		formatRatio(c.Black), colour.WCAGLevel(c.Black))
}

func (r *renderer) contrastRows(t *Table, c colour.Contrasts) {
	t.AddRow([]string{"contrast", "white", formatRatio(c.White) + " " + colour.WCAGLevel(c.White)})
	t.AddRow([]string{"contrast", "black", formatRatio(c.Black) + " " + colour.WCAGLevel(c.Black)})
}

func (r *renderer) paletteText(p colour.Harmony) string {
	var sb strings.Builder
	sb.WriteString(r.heading.Render("Palette") + "\n")
	for _, s := range p.Swatches() {
		if r.preview {
			sb.WriteString("  " + colour.FormatColourWithLabel(colour.HexToRGB(s.Hex), s.Label, previewWidth) + "\n")
			continue
		}
		fmt.Fprintf(&sb, "  %-22s %s\n", s.Label, s.Hex)
	}
	return sb.String()
}

func (r *renderer) paletteRows(t *Table, p colour.Harmony) {
	for _, s := range p.Swatches() {
		t.AddRow([]string{"palette", s.Label, r.swatch(s.Hex)})
	}
}

func (r *renderer) variationsText(v colour.Variations) string {
	var sb strings.Builder
	sb.WriteString(r.heading.Render("Variations") + "\n")
	ramps := []struct {
		name  string
		hexes [colour.VariationSteps]string
	}{
		{"tints", v.Tints},
		{"shades", v.Shades},
		{"tones", v.Tones},
	}
	for _, ramp := range ramps {
		fmt.Fprintf(&sb, "  %-7s", ramp.name)
		if r.preview {
			sb.WriteString(" " + colour.Ramp(ramp.hexes[:], previewWidth/2))
		}
		sb.WriteString(" " + strings.Join(ramp.hexes[:], " ") + "\n")
	}
	return sb.String()
}

func (r *renderer) variationRows(t *Table, v colour.Variations) {
	for i := 0; i < colour.VariationSteps; i++ {
		t.AddRow([]string{"variations", fmt.Sprintf("tint %d", i+1), r.swatch(v.Tints[i])})
	}
	for i := 0; i < colour.VariationSteps; i++ {
		t.AddRow([]string{"variations", fmt.Sprintf("shade %d", i+1), r.swatch(v.Shades[i])})
	}
	for i := 0; i < colour.VariationSteps; i++ {
		t.AddRow([]string{"variations", fmt.Sprintf("tone %d", i+1), r.swatch(v.Tones[i])})
	}
}
