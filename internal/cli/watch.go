package cli

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/hashicorp/go-hclog"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/jmylchreest/swatch/internal/colour"
	"github.com/jmylchreest/swatch/internal/config"
	"github.com/jmylchreest/swatch/internal/session"
)

// delayDirective changes the debounce delay from within the input stream.
const delayDirective = "delay"

func newWatchCmd(opts *rootOptions) *cobra.Command {
	out := &outputFlags{}
	var debounceMS int

	cmd := &cobra.Command{
		Use:   "watch",
		Short: "Feed colours from stdin through an immediate and a debounced channel",
		Long: `Read hex colours from stdin, one per line, and apply each to two channels:
the immediate channel re-derives on every line, the debounced channel only
once input has been quiet for the debounce delay. Every commit prints the
channel, its update count and the derived colour.

Line forms:
  #ff0000               apply to both channels
  immediate:#ff0000     apply to the immediate channel only
  debounced:#ff0000     apply to the debounced channel only
  delay:500             change the debounce delay (0-1000ms, step 50)

On end of input any pending debounced colour is committed.

Examples:
  # Coalesce rapid changes with a 300ms window
  printf '#ff0000\n#00ff00\n#0000ff\n' | swatch watch

  # JSON lines, no coalescing
  swatch watch --debounce 0 --format json < colours.txt`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out.resolve(cmd.Flags(), opts.config)

			delay := opts.config.DebounceDelay
			if cmd.Flags().Changed("debounce") {
				delay = time.Duration(debounceMS) * time.Millisecond
			}

			w := &commitWriter{
				w:       cmd.OutOrStdout(),
				json:    out.format == config.FormatJSON,
				preview: previewEnabled(out.preview, cmd.OutOrStdout()),
				logger:  opts.logger,
			}

			sess, err := session.New(session.Options{
				Delay:    delay,
				Strict:   out.strict,
				OnCommit: w.write,
				Logger:   opts.logger,
			})
			if err != nil {
				return fmt.Errorf("failed to start session: %w", err)
			}
			defer sess.Close()

			in := cmd.InOrStdin()
			if f, ok := in.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
				fmt.Fprintf(cmd.ErrOrStderr(), "Enter hex colours, one per line (debounce %s). Ctrl-D to finish.\n", delay)
			}

			if err := feed(sess, in, opts); err != nil {
				return err
			}

			sess.Flush()
			opts.logger.Debug("input finished", "states", len(sess.Snapshot()))
			return nil
		},
	}

	out.register(cmd)
	cmd.Flags().IntVarP(&debounceMS, "debounce", "d", int(config.DefaultDebounceDelay/time.Millisecond),
		"debounce delay in milliseconds for the debounced channel (0-1000, step 50)")

	return cmd
}

// feed applies every line of in to sess. Bad lines are logged and skipped.
func feed(sess *session.Session, in io.Reader, opts *rootOptions) error {
	scanner := bufio.NewScanner(in)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "//") {
			continue
		}
		if err := applyLine(sess, line); err != nil {
			opts.logger.Error("skipping line", "line", lineNo, "input", line, "error", err)
		}
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("failed to read input: %w", err)
	}
	return nil
}

// applyLine interprets one input line.
func applyLine(sess *session.Session, line string) error {
	target, value, found := strings.Cut(line, ":")
	if !found {
		return sess.SetAll(line)
	}

	target = strings.ToLower(strings.TrimSpace(target))
	value = strings.TrimSpace(value)

	if target == delayDirective {
		ms, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("invalid delay %q: %w", value, err)
		}
		return sess.SetDelay(time.Duration(ms) * time.Millisecond)
	}
	return sess.Set(target, value)
}

// commitWriter serialises commit output; debounced commits arrive on a
// timer goroutine.
type commitWriter struct {
	mu      sync.Mutex
	w       io.Writer
	json    bool
	preview bool
	logger  hclog.Logger
}

// commitLine is the JSON form of a commit.
type commitLine struct {
	Channel string        `json:"channel"`
	Updates int           `json:"updates"`
	Hex     string        `json:"hex"`
	Result  colour.Result `json:"result"`
}

func (c *commitWriter) write(st session.ChannelState) {
	c.mu.Lock()
	defer c.mu.Unlock()

	res := st.Result
	if c.json {
		data, err := json.Marshal(commitLine{
			Channel: st.Name,
			Updates: st.Updates,
			Hex:     res.Hex(),
			Result:  res,
		})
		if err != nil {
			c.logger.Error("failed to encode commit", "channel", st.Name, "error", err)
			return
		}
		fmt.Fprintln(c.w, string(data))
		return
	}

	swatch := res.Hex()
	if c.preview {
		swatch = colour.FormatColourWithPreview(res.RGB, previewWidth)
	}
	fmt.Fprintf(c.w, "[%s #%d] %s  %s  %s  W:%s B:%s\n",
		st.Name, st.Updates, swatch, res.HSL, res.LCH,
		formatRatio(res.Contrasts.White), formatRatio(res.Contrasts.Black))
}
