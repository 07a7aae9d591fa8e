package broadcast

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeSender struct {
	texts      map[int64]int
	photos     map[int64]string
	failTextOn map[int64]error
	sentCh     chan int64
}

func newFakeSender() *fakeSender {
	return &fakeSender{
		texts:      make(map[int64]int),
		photos:     make(map[int64]string),
		failTextOn: make(map[int64]error),
	}
}

func (f *fakeSender) SendText(chatID int64, text string) error {
	if err, ok := f.failTextOn[chatID]; ok {
		return err
	}
	f.texts[chatID]++
	if f.sentCh != nil {
		f.sentCh <- chatID
	}
	return nil
}

func (f *fakeSender) SendPhoto(chatID int64, path string) error {
	f.photos[chatID] = path
	return nil
}

type staticRecipients []int64

func (s staticRecipients) Known() []int64 { return s }

func TestCycleDeliversToAllRecipients(t *testing.T) {
	sender := newFakeSender()
	sched := NewScheduler(sender, staticRecipients{1, 2, 3}, nil, time.Minute)

	report := sched.Cycle(context.Background())

	assert.Equal(t, 3, report.Delivered)
	assert.Zero(t, report.Failed)
	for _, id := range []int64{1, 2, 3} {
		assert.Equal(t, 1, sender.texts[id])
	}
}

func TestCycleFailureDoesNotBlockOthers(t *testing.T) {
	sender := newFakeSender()
	sender.failTextOn[2] = errors.New("chat not found")
	sched := NewScheduler(sender, staticRecipients{1, 2, 3}, nil, time.Minute)

	report := sched.Cycle(context.Background())

	assert.Equal(t, 2, report.Delivered)
	assert.Equal(t, 1, report.Failed)
	require.Len(t, report.Results, 3)
	assert.NoError(t, report.Results[0].Err)
	assert.Error(t, report.Results[1].Err)
	assert.NoError(t, report.Results[2].Err)
	assert.Equal(t, 1, sender.texts[3])
}

func TestCycleSendsRandomPhoto(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "cat.png"), []byte("img"), 0o644))
	sender := newFakeSender()
	sched := NewScheduler(sender, staticRecipients{7}, NewPool(dir), time.Minute)

	report := sched.Cycle(context.Background())

	assert.Equal(t, 1, report.Delivered)
	assert.Equal(t, 1, report.Photos)
	assert.Equal(t, filepath.Join(dir, "cat.png"), sender.photos[7])
}

func TestCycleEmptyPoolSkipsPhotos(t *testing.T) {
	sender := newFakeSender()
	sched := NewScheduler(sender, staticRecipients{7}, NewPool(t.TempDir()), time.Minute)

	report := sched.Cycle(context.Background())

	assert.Equal(t, 1, report.Delivered)
	assert.Zero(t, report.Photos)
	assert.Empty(t, sender.photos)
}

func TestPoolFiltersNonImages(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"a.png", "b.JPG", "c.jpeg", "notes.txt", "d.gif"} {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte("x"), 0o644))
	}
	require.NoError(t, os.Mkdir(filepath.Join(dir, "sub.png"), 0o755))

	photos := NewPool(dir).List()
	assert.ElementsMatch(t, []string{
		filepath.Join(dir, "a.png"),
		filepath.Join(dir, "b.JPG"),
		filepath.Join(dir, "c.jpeg"),
	}, photos)
}

func TestPoolMissingDir(t *testing.T) {
	assert.Empty(t, NewPool(filepath.Join(t.TempDir(), "absent")).List())
}

func TestSchedulerDefaultInterval(t *testing.T) {
	sched := NewScheduler(newFakeSender(), staticRecipients{}, nil, 0)
	assert.Equal(t, DefaultInterval, sched.interval)
}

func TestRunCyclesImmediately(t *testing.T) {
	sender := newFakeSender()
	sender.sentCh = make(chan int64, 1)
	sched := NewScheduler(sender, staticRecipients{1}, nil, time.Hour)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		sched.Run(ctx)
		close(done)
	}()

	// The first pass happens right away, not after the first interval.
	select {
	case chatID := <-sender.sentCh:
		assert.Equal(t, int64(1), chatID)
	case <-time.After(2 * time.Second):
		t.Fatal("no delivery before the first interval elapsed")
	}

	cancel()
	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("scheduler did not stop on cancel")
	}
	assert.Equal(t, 1, sender.texts[1])
}

func TestRunStopsOnCancel(t *testing.T) {
	sender := newFakeSender()
	sched := NewScheduler(sender, staticRecipients{1}, nil, time.Hour)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	done := make(chan struct{})
	go func() {
		sched.Run(ctx)
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("scheduler did not stop on cancel")
	}
	assert.Empty(t, sender.texts)
}
