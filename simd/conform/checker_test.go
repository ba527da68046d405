package conform

import (
	"fmt"
	"strings"
	"testing"

	"github.com/ajroetker/go-simd-conform/internal/device"
	"github.com/ajroetker/go-simd-conform/simd"
)

// spyChecker records every assertion it sees so tests can verify both
// that failures are caught and that passing runs assert anything at
// all.
type spyChecker struct {
	checks   int
	failures []string
}

func (c *spyChecker) Truth(ok bool, format string, args ...any) {
	c.checks++
	if !ok {
		c.failures = append(c.failures, fmt.Sprintf(format, args...))
	}
}

// spyReporter stands in for testing.TB under ReportChecker.
type spyReporter struct {
	messages []string
}

func (r *spyReporter) Errorf(format string, args ...any) {
	r.messages = append(r.messages, fmt.Sprintf(format, args...))
}

func TestReportCheckerRecordsAndContinues(t *testing.T) {
	r := &spyReporter{}
	c := ReportChecker{R: r}

	c.Truth(true, "should not appear")
	c.Truth(false, "first failure %d", 1)
	c.Truth(false, "second failure %d", 2)

	if len(r.messages) != 2 {
		t.Fatalf("recorded %d failures, want 2: %v", len(r.messages), r.messages)
	}
	if r.messages[0] != "first failure 1" || r.messages[1] != "second failure 2" {
		t.Errorf("unexpected messages: %v", r.messages)
	}
}

func TestAbortCheckerHaltsOnFirstFailure(t *testing.T) {
	c := AbortChecker{}
	c.Truth(true, "passing check must not abort")

	defer func() {
		r := recover()
		if r == nil {
			t.Fatal("AbortChecker did not abort on failure")
		}
		fault, ok := r.(device.Fault)
		if !ok {
			t.Fatalf("abort raised %T, want device.Fault", r)
		}
		if fault.Msg != "lane 2: got 5, want 4" {
			t.Errorf("unexpected fault message: %q", fault.Msg)
		}
	}()
	c.Truth(false, "lane %d: got %d, want %d", 2, 5, 4)
}

func TestCheckEqualityEqualVectors(t *testing.T) {
	d := simd.FixedTag256[float64]{}
	a := simd.Load(d, []float64{1, 2, 3, 4})
	b := simd.Load(d, []float64{1, 2, 3, 4})

	spy := &spyChecker{}
	CheckEquality(spy, a, b)

	if len(spy.failures) != 0 {
		t.Errorf("equal vectors reported failures: %v", spy.failures)
	}
	// all_of, none_of, and one scalar check per lane.
	if want := 2 + d.Lanes(); spy.checks != want {
		t.Errorf("ran %d checks, want %d", spy.checks, want)
	}
}

func TestCheckEqualityMismatchedLane(t *testing.T) {
	d := simd.FixedTag256[float64]{}
	a := simd.Load(d, []float64{1, 2, 3, 4})
	b := simd.Load(d, []float64{1, 2, -3, 4})

	spy := &spyChecker{}
	CheckEquality(spy, a, b)

	// all_of fails, none_of fails, and exactly one lane check fails.
	if len(spy.failures) != 3 {
		t.Fatalf("got %d failures, want 3: %v", len(spy.failures), spy.failures)
	}
	if !strings.Contains(spy.failures[2], "lane 2") {
		t.Errorf("lane failure does not name lane 2: %q", spy.failures[2])
	}
}

func TestCheckEqualityScalarWidth(t *testing.T) {
	d := simd.ScalarTag[int32]{}
	a := simd.Set(d, int32(7))
	b := simd.Set(d, int32(7))

	spy := &spyChecker{}
	CheckEquality(spy, a, b)

	if len(spy.failures) != 0 {
		t.Errorf("scalar-width equality reported failures: %v", spy.failures)
	}
}
