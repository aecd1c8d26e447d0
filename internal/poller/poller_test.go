package poller

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/homework-hub/homework-status-bot/internal/domain/homework"
	"github.com/homework-hub/homework-status-bot/internal/infrastructure/external/practicum"
)

type fakeAPI struct {
	response any
	err      error
	calls    []int64
}

func (f *fakeAPI) Fetch(ctx context.Context, fromDate int64) (any, error) {
	f.calls = append(f.calls, fromDate)
	if f.err != nil {
		return nil, f.err
	}
	return f.response, nil
}

type fakeNotifier struct {
	messages []string
	err      error
}

func (f *fakeNotifier) Notify(ctx context.Context, text string) error {
	f.messages = append(f.messages, text)
	return f.err
}

func newTestPoller(api StatusAPI, notifier Notifier, now time.Time) *Poller {
	return New(api, practicum.CheckResponse, homework.ParseStatus, notifier, Config{
		Interval: time.Second,
		Now:      func() time.Time { return now },
	})
}

func TestRunCycle_EmptyHomeworks(t *testing.T) {
	now := time.Unix(1700000600, 0)
	api := &fakeAPI{response: map[string]any{"homeworks": []any{}}}
	notifier := &fakeNotifier{}
	p := newTestPoller(api, notifier, now)

	p.RunCycle(context.Background())

	// No notifications, no error, and a successful cycle advances the timestamp.
	assert.Empty(t, notifier.messages)
	assert.Equal(t, now.Unix(), p.FromDate())
}

func TestRunCycle_ZeroTimestampMeansNow(t *testing.T) {
	now := time.Unix(1700000600, 0)
	api := &fakeAPI{response: map[string]any{"homeworks": []any{}}}
	p := newTestPoller(api, &fakeNotifier{}, now)

	p.RunCycle(context.Background())

	require.Len(t, api.calls, 1)
	assert.Equal(t, now.Unix(), api.calls[0])
}

func TestRunCycle_RejectedHomework(t *testing.T) {
	now := time.Unix(1700000600, 0)
	api := &fakeAPI{response: map[string]any{
		"homeworks": []any{
			map[string]any{"homework_name": "hw1", "status": "rejected"},
		},
	}}
	notifier := &fakeNotifier{}
	p := newTestPoller(api, notifier, now)

	p.RunCycle(context.Background())

	verdict, ok := homework.Verdict("rejected")
	require.True(t, ok)

	require.Len(t, notifier.messages, 1)
	assert.Contains(t, notifier.messages[0], "hw1")
	assert.Contains(t, notifier.messages[0], verdict)
	assert.Equal(t, now.Unix(), p.FromDate())
}

func TestRunCycle_MissingHomeworksKey(t *testing.T) {
	api := &fakeAPI{response: map[string]any{"current_date": float64(0)}}
	notifier := &fakeNotifier{}
	p := newTestPoller(api, notifier, time.Unix(1700000600, 0))

	p.RunCycle(context.Background())

	// The error-reporting path runs exactly once.
	require.Len(t, notifier.messages, 1)
	assert.Contains(t, notifier.messages[0], "Некорректный формат ответа API сервиса")
	assert.Zero(t, p.FromDate())
}

func TestRunCycle_TransportFailureIsReported(t *testing.T) {
	api := &fakeAPI{err: homework.WrapError("Fetch", homework.ErrTransport,
		"request failed", context.DeadlineExceeded)}
	notifier := &fakeNotifier{}
	p := newTestPoller(api, notifier, time.Unix(1700000600, 0))

	p.RunCycle(context.Background())

	require.Len(t, notifier.messages, 1)
	assert.Contains(t, notifier.messages[0], "Ошибка в работе API сервиса")
	assert.Zero(t, p.FromDate())
}

func TestRunCycle_SecondaryNotifyFailureIsSwallowed(t *testing.T) {
	api := &fakeAPI{err: homework.NewError("Fetch", homework.ErrStatusCode, "http code = 503")}
	notifier := &fakeNotifier{err: homework.NewError("Notify", homework.ErrNotify, "chat unreachable")}
	p := newTestPoller(api, notifier, time.Unix(1700000600, 0))

	// Must not panic and must not mask the original failure.
	p.RunCycle(context.Background())

	require.Len(t, notifier.messages, 1)
	assert.Contains(t, notifier.messages[0], "Ошибка в работе API сервиса")
}

func TestRunCycle_NotifyFailureAbortsRemainingRecords(t *testing.T) {
	api := &fakeAPI{response: map[string]any{
		"homeworks": []any{
			map[string]any{"homework_name": "hw1", "status": "approved"},
			map[string]any{"homework_name": "hw2", "status": "reviewing"},
		},
	}}
	notifier := &fakeNotifier{err: homework.NewError("Notify", homework.ErrNotify, "send failed")}
	p := newTestPoller(api, notifier, time.Unix(1700000600, 0))

	p.RunCycle(context.Background())

	// One failed delivery for hw1 plus the error report; hw2 is never attempted.
	require.Len(t, notifier.messages, 2)
	assert.Contains(t, notifier.messages[0], "hw1")
	assert.Contains(t, notifier.messages[1], "Ошибка в работе телеграм-бота")
	assert.Zero(t, p.FromDate())
}

func TestRunCycle_UnknownStatus(t *testing.T) {
	api := &fakeAPI{response: map[string]any{
		"homeworks": []any{
			map[string]any{"homework_name": "hw1", "status": "burned"},
		},
	}}
	notifier := &fakeNotifier{}
	p := newTestPoller(api, notifier, time.Unix(1700000600, 0))

	p.RunCycle(context.Background())

	require.Len(t, notifier.messages, 1)
	assert.Contains(t, notifier.messages[0], "Некорректный формат ответа API сервиса")
}

func TestRun_StopsOnContextCancel(t *testing.T) {
	api := &fakeAPI{response: map[string]any{"homeworks": []any{}}}
	p := newTestPoller(api, &fakeNotifier{}, time.Unix(1700000600, 0))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := p.Run(ctx)
	require.ErrorIs(t, err, context.Canceled)

	// The first cycle still ran before the wait observed cancellation.
	assert.Len(t, api.calls, 1)
}
