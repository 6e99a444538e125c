package timer_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/mchmarny/breve/pkg/timer"
	"github.com/mchmarny/breve/pkg/timer/timertest"
)

func TestArmFiresAfterDelay(t *testing.T) {
	clock := timertest.New()
	tm := timer.New(clock)
	fired := 0

	tm.Arm(func() { fired++ }, 100*time.Millisecond, nil)
	assert.True(t, tm.Pending())

	clock.Advance(99 * time.Millisecond)
	assert.Equal(t, 0, fired)

	clock.Advance(time.Millisecond)
	assert.Equal(t, 1, fired)
	assert.False(t, tm.Pending())
}

func TestArmReplacesPrevious(t *testing.T) {
	clock := timertest.New()
	tm := timer.New(clock)
	var got []string

	tm.Arm(func() { got = append(got, "first") }, 50*time.Millisecond, nil)
	clock.Advance(40 * time.Millisecond)
	tm.Arm(func() { got = append(got, "second") }, 50*time.Millisecond, nil)

	clock.Advance(40 * time.Millisecond)
	assert.Empty(t, got)

	clock.Advance(10 * time.Millisecond)
	assert.Equal(t, []string{"second"}, got)
}

func TestPauseAndResume(t *testing.T) {
	clock := timertest.New()
	tm := timer.New(clock)
	fired, paused := 0, 0

	tm.Arm(func() { fired++ }, 100*time.Millisecond, func() { paused++ })
	clock.Advance(60 * time.Millisecond)

	tm.Pause()
	assert.True(t, tm.Paused())
	assert.Equal(t, 1, paused)

	clock.Advance(time.Second)
	assert.Equal(t, 0, fired)

	tm.Resume()
	assert.False(t, tm.Paused())
	clock.Advance(99 * time.Millisecond)
	assert.Equal(t, 0, fired, "resume restarts the delay from zero")
	clock.Advance(time.Millisecond)
	assert.Equal(t, 1, fired)
}

func TestArmWhilePausedWaitsForResume(t *testing.T) {
	clock := timertest.New()
	tm := timer.New(clock)
	fired := 0

	tm.Pause()
	tm.Arm(func() { fired++ }, 10*time.Millisecond, nil)
	assert.False(t, tm.Pending())

	clock.Advance(time.Second)
	assert.Equal(t, 0, fired)

	tm.Resume()
	clock.Advance(10 * time.Millisecond)
	assert.Equal(t, 1, fired)
}

func TestResumeWithoutPauseIsNoop(t *testing.T) {
	clock := timertest.New()
	tm := timer.New(clock)
	fired := 0

	tm.Arm(func() { fired++ }, 10*time.Millisecond, nil)
	clock.Advance(5 * time.Millisecond)
	tm.Resume()
	clock.Advance(5 * time.Millisecond)

	assert.Equal(t, 1, fired)
}

func TestCancel(t *testing.T) {
	clock := timertest.New()
	tm := timer.New(clock)
	fired := 0

	tm.Arm(func() { fired++ }, 10*time.Millisecond, nil)
	tm.Pause()
	tm.Cancel()

	assert.False(t, tm.Paused())
	assert.Equal(t, timer.DefaultDelay, tm.Delay())

	tm.Resume()
	clock.Advance(time.Minute)
	assert.Equal(t, 0, fired)
	assert.Equal(t, 0, clock.Pending())
}

func TestStickyCancelKeepsPause(t *testing.T) {
	clock := timertest.New()
	tm := timer.New(clock, timer.WithSticky())
	fired := 0

	tm.Pause()
	tm.Cancel()
	assert.True(t, tm.Paused())

	tm.Arm(func() { fired++ }, 10*time.Millisecond, nil)
	clock.Advance(time.Second)
	assert.Equal(t, 0, fired)

	tm.Resume()
	clock.Advance(10 * time.Millisecond)
	assert.Equal(t, 1, fired)
}

func TestStaleCallbackIgnored(t *testing.T) {
	var scheduled []func()
	clock := timer.ClockFunc(func(_ time.Duration, f func()) timer.Stopper {
		scheduled = append(scheduled, f)
		return lostRace{}
	})
	tm := timer.New(clock)
	var got []string

	tm.Arm(func() { got = append(got, "old") }, time.Millisecond, nil)
	tm.Arm(func() { got = append(got, "new") }, time.Millisecond, nil)

	for _, f := range scheduled {
		f()
	}
	assert.Equal(t, []string{"new"}, got)
}

type lostRace struct{}

func (lostRace) Stop() bool { return false }
