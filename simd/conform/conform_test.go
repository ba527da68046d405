package conform

import (
	"testing"

	"github.com/ajroetker/go-simd-conform/internal/device"
	"github.com/ajroetker/go-simd-conform/simd"
)

// TestSIMDHost is the host-context scenario: fixed input arrays run
// through every ABI, operation, and loader combination.
func TestSIMDHost(t *testing.T) {
	c := ReportChecker{R: t}
	HostCheckABIs(c, DefaultABISet[float64](), firstFixture, secondFixture)
}

func TestSIMDHostInt32(t *testing.T) {
	first := []int32{1, 2, -1, 10, 0, 1, -2}
	second := []int32{1, 2, 1, 1, 0, -3, -2}
	HostCheckABIs(ReportChecker{R: t}, DefaultABISet[int32](), first, second)
}

func TestSIMDHostFloat32(t *testing.T) {
	first := []float32{1, 2, -1, 10, 0, 1, -2}
	second := []float32{1, 2, 1, 1, 0, -3, -2}
	HostCheckABIs(ReportChecker{R: t}, DefaultABISet[float32](), first, second)
}

// TestSIMDDevice runs the same scenario on the device context: one
// kernel instance per ABI, each touching only its own loaded vectors
// and locals, with a mismatch aborting the context.
func TestSIMDDevice(t *testing.T) {
	pool := device.New(0)
	defer pool.Close()

	set := DefaultABISet[float64]()
	pool.Launch(len(set), func(instance int) {
		DeviceCheckABI(AbortChecker{}, set[instance], firstFixture, secondFixture)
	})
}

// TestSIMDDeviceNative runs the device scenario at the width the
// dispatch layer detected for the running CPU.
func TestSIMDDeviceNative(t *testing.T) {
	t.Logf("native backend: %s (%d bytes)", simd.NativeName(), simd.NativeWidth())

	pool := device.New(0)
	defer pool.Close()

	pool.Launch(1, func(int) {
		DeviceCheckABI(AbortChecker{}, simd.NativeABI[float64](), firstFixture, secondFixture)
	})
}

// TestScenarioChunkValues pins the concrete per-chunk results of the
// addition scenario at width 4: the full first chunk and the
// zero-padded tail chunk.
func TestScenarioChunkValues(t *testing.T) {
	d := simd.FixedTag256[float64]{} // width 4
	op := Plus[float64]{}

	// Chunk 1: n=4, all loaders run, including element-aligned.
	for _, loader := range loaders[float64]() {
		a := simd.Undefined[float64](d)
		b := simd.Undefined[float64](d)
		if !loader.HostLoad(firstFixture, 4, &a) || !loader.HostLoad(secondFixture, 4, &b) {
			t.Fatalf("%s: refused full chunk", loader.Name())
		}
		got := op.OnHostVec(a, b)
		want := []float64{2, 4, 0, 11}
		for i := range want {
			if got.Lane(i) != want[i] {
				t.Errorf("%s chunk 1 lane %d: got %v, want %v", loader.Name(), i, got.Lane(i), want[i])
			}
		}
	}

	// Chunk 2: n=3, element-aligned skips; the others zero-pad lane 3.
	aligned := LoadElementAligned[float64]{}
	tail := simd.Undefined[float64](d)
	if aligned.HostLoad(firstFixture[4:], 3, &tail) {
		t.Error("element-aligned loader accepted a short tail")
	}

	for _, loader := range []Loader[float64]{LoadMasked[float64]{}, LoadAsScalars[float64]{}} {
		a := simd.Undefined[float64](d)
		b := simd.Undefined[float64](d)
		if !loader.HostLoad(firstFixture[4:], 3, &a) || !loader.HostLoad(secondFixture[4:], 3, &b) {
			t.Fatalf("%s: refused tail chunk", loader.Name())
		}
		got := op.OnHostVec(a, b)
		want := []float64{1, -2, -4, 0}
		for i := range want {
			if got.Lane(i) != want[i] {
				t.Errorf("%s chunk 2 lane %d: got %v, want %v", loader.Name(), i, got.Lane(i), want[i])
			}
		}
	}
}
