package jobs

import (
	"context"
	"errors"
	"testing"
	"time"

	"stayrooted/services/logger"

	"github.com/robfig/cron/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

type fakeCompleter struct {
	calls int
	err   error
}

func (f *fakeCompleter) CompleteElapsed(ctx context.Context, now time.Time) (int, error) {
	f.calls++
	return 2, f.err
}

func TestCompleteBookingsJob(t *testing.T) {
	completer := &fakeCompleter{}
	CompleteBookingsJob(completer, logger.NewNop())()
	assert.Equal(t, 1, completer.calls)

	failing := &fakeCompleter{err: errors.New("db down")}
	assert.NotPanics(t, CompleteBookingsJob(failing, logger.NewNop()))
}

func TestInitCronJobs(t *testing.T) {
	c := cron.New()
	require.NoError(t, InitCronJobs(c, &fakeCompleter{}, logger.NewNop()))
	defer func() { <-c.Stop().Done() }()

	entries := c.Entries()
	require.Len(t, entries, 1)
	assert.True(t, entries[0].Next.After(time.Now()))
}

func TestDailyScheduleParses(t *testing.T) {
	_, err := cron.ParseStandard(DailySchedule)
	assert.NoError(t, err)
}
