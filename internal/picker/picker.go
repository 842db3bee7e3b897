package picker

import (
	"errors"
	"fmt"
	"github.com/osmike/cronpick/internal/domain"
	errs "github.com/osmike/cronpick/internal/error"
	"time"

	"go.uber.org/zap"
)

// Picker is a headless recurrence picker bound to one host and one dialect.
//
// It owns the live Descriptor a user edits. Every successful edit rebuilds the
// cron expression and publishes it to the host, the monitoring sink and the
// change callback. The dialect is fixed for the lifetime of the picker.
//
// A Picker is not safe for concurrent use; it belongs to a single session.
type Picker struct {
	// host stores the published expression.
	host domain.Host

	// formatter encodes and decodes the descriptor in the picker's dialect.
	formatter domain.Formatter

	// format is the clock the hour is presented with.
	format domain.HourFormat

	// state is the live descriptor.
	state domain.Descriptor

	// expression is the last expression read from or written to the host.
	expression string

	onChange func(expr string)
	mon      domain.Monitoring
	logger   *zap.Logger
	now      func() time.Time

	destroyed bool
}

// Option configures a Picker.
type Option func(*Picker)

// WithHourFormat selects the 24-hour (default) or 12-hour clock for SetHours and Clock.
func WithHourFormat(format domain.HourFormat) Option {
	return func(p *Picker) { p.format = format }
}

// WithOnChange registers a callback invoked with every published expression.
func WithOnChange(fn func(expr string)) Option {
	return func(p *Picker) { p.onChange = fn }
}

// WithMonitoring registers a sink recording every published expression.
func WithMonitoring(mon domain.Monitoring) Option {
	return func(p *Picker) { p.mon = mon }
}

// WithLogger sets the logger. Defaults to a no-op logger.
func WithLogger(logger *zap.Logger) Option {
	return func(p *Picker) { p.logger = logger }
}

// WithDescriptor replaces the default initial descriptor.
func WithDescriptor(d domain.Descriptor) Option {
	return func(p *Picker) { p.state = d.Clone() }
}

// WithNow overrides the clock used to timestamp published changes.
func WithNow(now func() time.Time) Option {
	return func(p *Picker) { p.now = now }
}

// New creates a picker over host using formatter's dialect.
//
// The picker seeds itself from the host value: an empty host receives the
// expression of the initial descriptor, anything else is parsed into it. A
// host value that cannot be parsed is logged and the initial descriptor is
// kept.
//
// Parameters:
//   - host: Storage of the expression string.
//   - formatter: Codec for the dialect the picker speaks.
//   - opts: Optional settings.
//
// Returns:
//   - The picker.
//   - An error if host or formatter is nil, the hour format is unknown, or the
//     host cannot be read or written.
func New(host domain.Host, formatter domain.Formatter, opts ...Option) (*Picker, error) {
	if host == nil {
		return nil, errs.ErrNilHost
	}
	if formatter == nil {
		return nil, errs.ErrNilFormatter
	}

	p := &Picker{
		host:      host,
		formatter: formatter,
		format:    domain.Format24,
		state:     domain.NewDescriptor(),
		logger:    zap.NewNop(),
		now:       time.Now,
	}
	for _, opt := range opts {
		opt(p)
	}

	if p.format != domain.Format24 && p.format != domain.Format12 {
		return nil, errs.New(errs.ErrUnknownHourFormat, string(p.format))
	}
	if p.logger == nil {
		p.logger = zap.NewNop()
	}

	value, err := host.Value()
	if err != nil {
		return nil, fmt.Errorf("read host value: %w", err)
	}
	if err := p.SetExpression(value); err != nil && !IsMalformed(err) {
		return nil, err
	}

	return p, nil
}

// IsMalformed reports whether err means an expression could not be parsed.
func IsMalformed(err error) bool {
	return errors.Is(err, errs.ErrInvalidExpression) ||
		errors.Is(err, errs.ErrFieldRange) ||
		errors.Is(err, errs.ErrInvalidWeekday) ||
		errors.Is(err, errs.ErrUnknownOrdinal)
}

// SetExpression loads expr into the picker.
//
// An empty expr publishes the expression of the current descriptor. Otherwise
// expr is parsed into the descriptor; fields it does not determine keep their
// values. A malformed expr is logged at warn level, leaves the descriptor
// untouched and is returned as an error.
func (p *Picker) SetExpression(expr string) error {
	if p.destroyed {
		return errs.ErrPickerDestroyed
	}

	if expr == "" {
		return p.publish()
	}

	if err := p.formatter.ParseInto(expr, &p.state); err != nil {
		p.logger.Warn("invalid cron expression, skip parsing",
			zap.String("dialect", string(p.formatter.Dialect())),
			zap.String("expression", expr),
			zap.Error(err),
		)
		return err
	}
	p.expression = expr
	return nil
}

// Expression returns the current expression.
func (p *Picker) Expression() string {
	return p.expression
}

// State returns a copy of the live descriptor.
func (p *Picker) State() domain.Descriptor {
	return p.state.Clone()
}

// Dialect returns the dialect of the picker's formatter.
func (p *Picker) Dialect() domain.Dialect {
	return p.formatter.Dialect()
}

// HourFormat returns the clock the picker presents hours with.
func (p *Picker) HourFormat() domain.HourFormat {
	return p.format
}

// Destroy detaches the change callback and monitoring sink. Any later call
// that would edit the picker fails with ErrPickerDestroyed.
func (p *Picker) Destroy() {
	p.destroyed = true
	p.onChange = nil
	p.mon = nil
}

// publish builds the expression of the current descriptor and hands it to
// the host, the monitoring sink and the change callback, in that order.
func (p *Picker) publish() error {
	expr, err := p.formatter.Build(p.state)
	if err != nil {
		p.logger.Error("build cron expression",
			zap.String("dialect", string(p.formatter.Dialect())),
			zap.String("type", string(p.state.Type)),
			zap.Error(err),
		)
		return err
	}

	if err := p.host.SetValue(expr); err != nil {
		return fmt.Errorf("write host value: %w", err)
	}
	p.expression = expr

	if p.mon != nil {
		p.mon.SaveChange(domain.ChangeDTO{
			Expression: expr,
			Dialect:    p.formatter.Dialect(),
			Type:       p.state.Type,
			At:         p.now(),
		})
	}

	p.logger.Debug("cron expression changed",
		zap.String("dialect", string(p.formatter.Dialect())),
		zap.String("expression", expr),
	)

	if p.onChange != nil {
		p.onChange(expr)
	}
	return nil
}
