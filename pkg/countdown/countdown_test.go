package countdown

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRemainingBreakdown(t *testing.T) {
	now := time.Date(2026, 5, 1, 12, 0, 0, 0, time.UTC)

	// 90061 sn = 1 gün 1 saat 1 dakika 1 saniye
	snap, ok := Remaining(now.Add(90061*time.Second), now)
	require.True(t, ok)
	assert.Equal(t, Snapshot{Days: 1, Hours: 1, Minutes: 1, Seconds: 1}, snap)
}

func TestRemainingMinuteBoundary(t *testing.T) {
	now := time.Date(2026, 5, 1, 12, 0, 0, 0, time.UTC)
	target := now.Add(61 * time.Second)

	snap, ok := Remaining(target, now)
	require.True(t, ok)
	assert.Equal(t, Snapshot{Minutes: 1, Seconds: 1}, snap)

	// bir tick sonra
	snap, ok = Remaining(target, now.Add(time.Second))
	require.True(t, ok)
	assert.Equal(t, Snapshot{Minutes: 1, Seconds: 0}, snap)

	// dakika sınırından doğru geçiş
	snap, ok = Remaining(target, now.Add(2*time.Second))
	require.True(t, ok)
	assert.Equal(t, Snapshot{Minutes: 0, Seconds: 59}, snap)
}

func TestRemainingExpired(t *testing.T) {
	now := time.Date(2026, 5, 1, 12, 0, 0, 0, time.UTC)

	_, ok := Remaining(now.Add(-time.Hour), now)
	assert.False(t, ok)

	// tam hedef anı da "dolmuş" sayılır
	_, ok = Remaining(now, now)
	assert.False(t, ok)
}

func TestRemainingFromISO(t *testing.T) {
	now := time.Date(2026, 5, 1, 12, 0, 0, 0, time.UTC)

	snap, ok := RemainingFromISO("2026-05-01T13:00:00Z", now)
	require.True(t, ok)
	assert.Equal(t, Snapshot{Hours: 1}, snap)

	// datetime-local biçimi (saniyesiz) de kabul edilir
	_, ok = RemainingFromISO("2026-05-01T13:00", now)
	assert.True(t, ok)

	// bozuk tarih hata değil, "dolmuş" demektir
	_, ok = RemainingFromISO("dün akşam", now)
	assert.False(t, ok)

	_, ok = RemainingFromISO("", now)
	assert.False(t, ok)
}

// fakeClock her çağrıda sabit bir anı döndürür; testler ilerletebilir.
type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	c.now = c.now.Add(d)
	c.mu.Unlock()
}

func waitClosed(t *testing.T, ch <-chan Snapshot) {
	t.Helper()
	deadline := time.After(2 * time.Second)
	for {
		select {
		case _, open := <-ch:
			if !open {
				return
			}
		case <-deadline:
			t.Fatal("kanal kapanmadı: zamanlayıcı sızıntısı")
		}
	}
}

func TestEngineExpiredTargetEmitsNothing(t *testing.T) {
	clock := &fakeClock{now: time.Date(2026, 5, 1, 12, 0, 0, 0, time.UTC)}
	e := newEngine(clock.Now().Add(-time.Minute), time.Millisecond, clock.Now)

	ch := e.Start()
	snap, open := <-ch
	assert.False(t, open, "dolmuş hedef hiçbir değer yaymamalı")
	assert.Zero(t, snap)
}

func TestEngineEmitsImmediatelyThenStopsAtTarget(t *testing.T) {
	clock := &fakeClock{now: time.Date(2026, 5, 1, 12, 0, 0, 0, time.UTC)}
	target := clock.Now().Add(2 * time.Second)
	e := newEngine(target, 2*time.Millisecond, clock.Now)

	ch := e.Start()

	// İlk değer tick beklemeden gelir.
	snap, open := <-ch
	require.True(t, open)
	assert.Equal(t, Snapshot{Seconds: 2}, snap)

	// Hedef geçilince kanal kendiliğinden kapanır, başka tick olmaz.
	clock.Advance(3 * time.Second)
	waitClosed(t, ch)
}

func TestEngineStopCancelsWithoutLeak(t *testing.T) {
	clock := &fakeClock{now: time.Date(2026, 5, 1, 12, 0, 0, 0, time.UTC)}
	e := newEngine(clock.Now().Add(time.Hour), 2*time.Millisecond, clock.Now)

	ch := e.Start()
	_, open := <-ch
	require.True(t, open)

	e.Stop()
	waitClosed(t, ch)

	// Tekrarlı Stop güvenli.
	e.Stop()
}

func TestEngineResetRestartsFromNewTarget(t *testing.T) {
	clock := &fakeClock{now: time.Date(2026, 5, 1, 12, 0, 0, 0, time.UTC)}
	e := newEngine(clock.Now().Add(10*time.Second), 2*time.Millisecond, clock.Now)

	oldCh := e.Start()
	snap, open := <-oldCh
	require.True(t, open)
	assert.Equal(t, Snapshot{Seconds: 10}, snap)

	// Hedef değişince eski kanal kapanır, sayım yeni hedeften anında başlar.
	newCh := e.Reset(clock.Now().Add(5 * time.Minute))
	waitClosed(t, oldCh)

	snap, open = <-newCh
	require.True(t, open)
	assert.Equal(t, Snapshot{Minutes: 5}, snap)

	e.Stop()
	waitClosed(t, newCh)
}
