// Package poller implements the bot's polling loop: fetch homework statuses,
// validate the response, translate each record into a message, deliver it, and
// report failures to the operator chat.
package poller

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/homework-hub/homework-status-bot/internal/domain/homework"
	"github.com/homework-hub/homework-status-bot/pkg/logger"
)

// DefaultInterval is the fixed wait between poll cycles.
const DefaultInterval = 600 * time.Second

// StatusAPI fetches homework statuses changed since a unix timestamp.
type StatusAPI interface {
	Fetch(ctx context.Context, fromDate int64) (any, error)
}

// Validator checks the shape of a fetched response.
type Validator func(response any) ([]any, error)

// Formatter turns one raw homework record into a notification message.
type Formatter func(record any) (string, error)

// Notifier delivers one message to the operator chat.
type Notifier interface {
	Notify(ctx context.Context, text string) error
}

// Config contains configuration for the Poller.
type Config struct {
	// Interval is the fixed wait between cycles (default: 600s)
	Interval time.Duration

	// Logger for structured logging
	Logger *logger.Logger

	// Now overrides the clock, for tests
	Now func() time.Time
}

// Poller runs the polling loop. It owns the only piece of mutable state in the
// application: the from_date timestamp of the next request.
type Poller struct {
	api       StatusAPI
	validate  Validator
	format    Formatter
	notifier  Notifier
	interval  time.Duration
	logger    *logger.Logger
	now      func() time.Time
	fromDate int64
}

// New creates a Poller. The validator and formatter default to the production
// ones; tests may substitute their own collaborators.
func New(api StatusAPI, validate Validator, format Formatter, notifier Notifier, cfg Config) *Poller {
	if cfg.Interval <= 0 {
		cfg.Interval = DefaultInterval
	}
	if cfg.Logger == nil {
		cfg.Logger = logger.Default()
	}
	if cfg.Now == nil {
		cfg.Now = time.Now
	}

	return &Poller{
		api:      api,
		validate: validate,
		format:   format,
		notifier: notifier,
		interval: cfg.Interval,
		logger:   cfg.Logger.With(logger.Component("poller")),
		now:      cfg.Now,
	}
}

// FromDate returns the current poll timestamp. Zero means "start from now".
func (p *Poller) FromDate() int64 {
	return p.fromDate
}

// Run executes poll cycles until the context is cancelled. Every cycle,
// successful or not, is followed by the same fixed wait.
func (p *Poller) Run(ctx context.Context) error {
	p.logger.Info("poller started", logger.Duration("interval", p.interval))

	for {
		p.RunCycle(ctx)

		select {
		case <-ctx.Done():
			p.logger.Info("poller stopped")
			return ctx.Err()
		case <-time.After(p.interval):
		}
	}
}

// RunCycle performs a single poll cycle. Any failure inside the cycle is
// converted into one error message, logged, and best-effort reported to the
// operator chat; nothing here terminates the loop.
func (p *Poller) RunCycle(ctx context.Context) {
	log := p.logger.With(logger.CycleID(uuid.New().String()))
	started := p.now()

	errMessage := p.cycle(ctx, log)

	if errMessage != "" {
		log.Error("poll cycle failed", logger.String("message", errMessage))

		if err := p.notifier.Notify(ctx, errMessage); err != nil {
			// A failing error report must not mask the original failure.
			log.Error("failed to report error to operator chat", logger.Err(err))
		}
	}

	log.Debug("poll cycle finished", logger.Latency(p.now().Sub(started)))
}

// cycle runs one fetch-validate-notify pass and returns the cycle's error
// message, empty on success.
func (p *Poller) cycle(ctx context.Context, log *logger.Logger) string {
	fromDate := p.fromDate
	if fromDate == 0 {
		fromDate = p.now().Unix()
	}

	response, err := p.api.Fetch(ctx, fromDate)
	if err != nil {
		return classify(err)
	}

	homeworks, err := p.validate(response)
	if err != nil {
		return classify(err)
	}

	if len(homeworks) == 0 {
		log.Debug("no new homework statuses", logger.FromDate(fromDate))
	}

	for _, record := range homeworks {
		message, err := p.format(record)
		if err != nil {
			return classify(err)
		}
		if err := p.notifier.Notify(ctx, message); err != nil {
			return classify(err)
		}
	}

	p.fromDate = p.now().Unix()
	return ""
}

// classify converts a cycle error into the operator-facing message.
func classify(err error) string {
	switch {
	case errors.Is(err, homework.ErrNotify):
		return fmt.Sprintf("Ошибка в работе телеграм-бота: %v", err)
	case errors.Is(err, homework.ErrTransport),
		errors.Is(err, homework.ErrStatusCode),
		errors.Is(err, homework.ErrDecode):
		return fmt.Sprintf("Ошибка в работе API сервиса: %v", err)
	case errors.Is(err, homework.ErrShape),
		errors.Is(err, homework.ErrUnknownStatus):
		return fmt.Sprintf("Некорректный формат ответа API сервиса: %v", err)
	default:
		return fmt.Sprintf("Непредвиденный сбой в работе программы: %v", err)
	}
}
