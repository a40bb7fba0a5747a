package singleton

import (
	"bytes"
	"strings"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/vnykmshr/gopatterns/internal/testutil"
)

type service struct {
	id int
}

func TestNewNilInit(t *testing.T) {
	defer func() {
		if r := recover(); r == nil {
			t.Error("expected panic for nil init")
		}
	}()
	New[*service](nil)
}

func TestInstanceIdentity(t *testing.T) {
	var built int32
	h := New(func() *service {
		atomic.AddInt32(&built, 1)
		return &service{id: 42}
	})

	first := h.Instance()
	for i := 0; i < 10; i++ {
		testutil.AssertEqual(t, h.Instance() == first, true)
	}
	testutil.AssertEqual(t, atomic.LoadInt32(&built), int32(1))
	testutil.AssertEqual(t, first.id, 42)
}

func TestLazyInitialization(t *testing.T) {
	h := New(func() *service { return &service{} })

	testutil.AssertEqual(t, h.Initialized(), false)
	h.Instance()
	testutil.AssertEqual(t, h.Initialized(), true)
}

func TestConcurrentFirstAccess(t *testing.T) {
	var built int32
	h := New(func() *service {
		atomic.AddInt32(&built, 1)
		return &service{}
	})

	const goroutines = 50
	results := make([]*service, goroutines)

	var start, done sync.WaitGroup
	start.Add(1)
	done.Add(goroutines)
	for i := 0; i < goroutines; i++ {
		go func(i int) {
			defer done.Done()
			start.Wait()
			results[i] = h.Instance()
		}(i)
	}
	start.Done()
	done.Wait()

	testutil.AssertEqual(t, atomic.LoadInt32(&built), int32(1))
	for i := 1; i < goroutines; i++ {
		testutil.AssertEqual(t, results[i] == results[0], true)
	}
}

func TestReset(t *testing.T) {
	h := New(func() *service { return &service{} })

	first := h.Instance()
	h.Reset()
	testutil.AssertEqual(t, h.Initialized(), false)

	second := h.Instance()
	testutil.AssertEqual(t, first == second, false)
}

func TestLoggerIdentity(t *testing.T) {
	var buf bytes.Buffer
	SetLoggerOutput(&buf)
	defer SetLoggerOutput(nil)

	testutil.AssertEqual(t, Logger() == Logger(), true)

	Logger().Info().Str("who", "first").Msg("hello")
	Logger().Info().Str("who", "second").Msg("world")

	out := buf.String()
	testutil.AssertEqual(t, strings.Count(out, "\n"), 2)
	testutil.AssertEqual(t, strings.Contains(out, `"who":"first"`), true)
	testutil.AssertEqual(t, strings.Contains(out, `"who":"second"`), true)
}
