// Package session models the display-layer contract around the colour core:
// two independent colour channels, one applying changes immediately and one
// through a debounce window, each re-deriving a colour.Result on commit.
package session

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/hashicorp/go-hclog"

	"github.com/jmylchreest/swatch/internal/colour"
	"github.com/jmylchreest/swatch/internal/config"
	"github.com/jmylchreest/swatch/internal/debounce"
)

// Channel names.
const (
	ChannelImmediate = "immediate"
	ChannelDebounced = "debounced"
)

// Initial channel colours.
const (
	DefaultImmediateColour = "#ff0000"
	DefaultDebouncedColour = "#0000ff"
)

// ErrUnknownChannel is returned when a channel name is not recognised.
var ErrUnknownChannel = errors.New("unknown channel")

// ChannelState is a point-in-time copy of a channel.
type ChannelState struct {
	Name string `json:"name"`
	// Local is the latest value supplied, committed or not.
	Local string `json:"local"`
	// Committed is the value Result was derived from.
	Committed string `json:"committed"`
	// Updates counts commits since the session started.
	Updates int           `json:"updates"`
	Delay   time.Duration `json:"-"`
	// DelayMS is Delay in milliseconds.
	DelayMS int64         `json:"delay_ms"`
	Result  colour.Result `json:"result"`
}

// Channel holds one colour input and its derived result.
type Channel struct {
	name      string
	mu        sync.Mutex
	local     string
	committed string
	updates   int
	result    colour.Result
	debouncer *debounce.Debouncer[string]
	onCommit  func(ChannelState)
	logger    hclog.Logger
}

func newChannel(name, initial string, logger hclog.Logger, onCommit func(ChannelState)) *Channel {
	return &Channel{
		name:      name,
		local:     initial,
		committed: initial,
		result:    colour.ConvertColor(initial),
		onCommit:  onCommit,
		logger:    logger.Named(name),
	}
}

// Name returns the channel name.
func (c *Channel) Name() string {
	return c.name
}

// set records hex locally and commits it now or after the debounce window.
func (c *Channel) set(hex string) {
	c.mu.Lock()
	c.local = hex
	c.mu.Unlock()

	if c.debouncer == nil {
		c.commit(hex)
		return
	}
	c.logger.Trace("scheduled", "hex", hex, "delay", c.debouncer.Delay())
	c.debouncer.Trigger(hex)
}

func (c *Channel) commit(hex string) {
	result := colour.ConvertColor(hex)

	c.mu.Lock()
	c.committed = hex
	c.updates++
	c.result = result
	state := c.stateLocked()
	c.mu.Unlock()

	c.logger.Debug("committed", "hex", hex, "updates", state.Updates)
	if c.onCommit != nil {
		c.onCommit(state)
	}
}

func (c *Channel) stateLocked() ChannelState {
	var delay time.Duration
	if c.debouncer != nil {
		delay = c.debouncer.Delay()
	}
	return ChannelState{
		Name:      c.name,
		Local:     c.local,
		Committed: c.committed,
		Updates:   c.updates,
		Delay:     delay,
		DelayMS:   delay.Milliseconds(),
		Result:    c.result,
	}
}

// State returns a snapshot of the channel.
func (c *Channel) State() ChannelState {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.stateLocked()
}

// Preview converts the latest local value, whether or not it has been committed.
func (c *Channel) Preview() colour.Result {
	c.mu.Lock()
	local := c.local
	c.mu.Unlock()
	return colour.ConvertColor(local)
}

// Options configures a Session.
type Options struct {
	// Delay applies to the debounced channel. Must satisfy config.ValidateDebounceDelay.
	Delay time.Duration
	// Strict rejects malformed hex in Set.
	Strict bool
	// InitialImmediate and InitialDebounced default to red and blue.
	InitialImmediate string
	InitialDebounced string
	// OnCommit, if set, is called after every commit. Calls for the
	// debounced channel arrive on a timer goroutine.
	OnCommit func(ChannelState)
	Logger   hclog.Logger
}

// Session owns the immediate and debounced channels.
type Session struct {
	immediate *Channel
	debounced *Channel
	strict    bool
	logger    hclog.Logger
}

// New creates a Session with both channels committed to their initial colours.
func New(opts Options) (*Session, error) {
	if err := config.ValidateDebounceDelay(opts.Delay); err != nil {
		return nil, err
	}

	logger := opts.Logger
	if logger == nil {
		logger = hclog.NewNullLogger()
	}
	logger = logger.Named("session")

	initImmediate := opts.InitialImmediate
	if initImmediate == "" {
		initImmediate = DefaultImmediateColour
	}
	initDebounced := opts.InitialDebounced
	if initDebounced == "" {
		initDebounced = DefaultDebouncedColour
	}
	if opts.Strict {
		for _, hex := range []string{initImmediate, initDebounced} {
			if _, err := colour.ParseHex(hex); err != nil {
				return nil, fmt.Errorf("initial colour: %w", err)
			}
		}
	}

	s := &Session{
		immediate: newChannel(ChannelImmediate, initImmediate, logger, opts.OnCommit),
		debounced: newChannel(ChannelDebounced, initDebounced, logger, opts.OnCommit),
		strict:    opts.Strict,
		logger:    logger,
	}
	s.debounced.debouncer = debounce.New(opts.Delay, s.debounced.commit)

	logger.Debug("session started", "delay", opts.Delay, "strict", opts.Strict)
	return s, nil
}

// Channel returns the named channel.
func (s *Session) Channel(name string) (*Channel, error) {
	switch name {
	case ChannelImmediate:
		return s.immediate, nil
	case ChannelDebounced:
		return s.debounced, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownChannel, name)
	}
}

// Set supplies a new colour to the named channel.
func (s *Session) Set(name, hex string) error {
	ch, err := s.Channel(name)
	if err != nil {
		return err
	}
	if err := s.check(hex); err != nil {
		return err
	}
	ch.set(hex)
	return nil
}

// SetAll supplies the same colour to both channels.
func (s *Session) SetAll(hex string) error {
	if err := s.check(hex); err != nil {
		return err
	}
	s.immediate.set(hex)
	s.debounced.set(hex)
	return nil
}

func (s *Session) check(hex string) error {
	if colour.IsHex(hex) {
		return nil
	}
	if s.strict {
		return fmt.Errorf("%w: %q", colour.ErrInvalidHex, hex)
	}
	s.logger.Warn("malformed colour treated as black", "hex", hex)
	return nil
}

// SetDelay changes the debounce delay for subsequent changes.
func (s *Session) SetDelay(d time.Duration) error {
	if err := config.ValidateDebounceDelay(d); err != nil {
		return err
	}
	s.debounced.debouncer.SetDelay(d)
	s.logger.Debug("debounce delay changed", "delay", d)
	return nil
}

// Pending reports whether the debounced channel has an uncommitted change.
func (s *Session) Pending() bool {
	return s.debounced.debouncer.Pending()
}

// Flush commits any pending debounced change now.
func (s *Session) Flush() bool {
	return s.debounced.debouncer.Flush()
}

// Snapshot returns the state of both channels, immediate first.
func (s *Session) Snapshot() []ChannelState {
	return []ChannelState{s.immediate.State(), s.debounced.State()}
}

// Close drops any pending debounced change.
func (s *Session) Close() {
	if s.debounced.debouncer.Cancel() {
		s.logger.Debug("dropped pending change on close")
	}
}
