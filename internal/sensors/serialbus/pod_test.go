package serialbus

import (
	"context"
	"io"
	"math"
	"os"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/microwx/microwx/internal/log"
	"github.com/microwx/microwx/pkg/config"
	"go.uber.org/zap"
)

func TestMain(m *testing.M) {
	if err := log.Init(false); err != nil {
		panic(err)
	}
	os.Exit(m.Run())
}

func testPod(t *testing.T) *Pod {
	t.Helper()
	s := NewPod(context.Background(), &sync.WaitGroup{}, config.SensorData{
		Name: "rooftop",
		Type: "serialbus",
	}, time.Minute, zap.NewNop().Sugar())
	return s.(*Pod)
}

func TestReadsNaNWhenNoPacket(t *testing.T) {
	p := testPod(t)

	if !math.IsNaN(float64(p.ReadTemperature())) {
		t.Error("ReadTemperature with no packet should be NaN")
	}
	if !math.IsNaN(float64(p.ReadHumidity())) {
		t.Error("ReadHumidity with no packet should be NaN")
	}
	if !math.IsNaN(float64(p.ReadPressure())) {
		t.Error("ReadPressure with no packet should be NaN")
	}
}

func TestReadsLatestFreshPacket(t *testing.T) {
	p := testPod(t)

	p.mu.Lock()
	p.latest = Packet{Temperature: 21.5, Humidity: 48.0, Pressure: 1012.3}
	p.latestAt = time.Now()
	p.mu.Unlock()

	if got := p.ReadTemperature(); got != 21.5 {
		t.Errorf("ReadTemperature = %v, want 21.5", got)
	}
	if got := p.ReadHumidity(); got != 48.0 {
		t.Errorf("ReadHumidity = %v, want 48.0", got)
	}
	if got := p.ReadPressure(); got != 1012.3 {
		t.Errorf("ReadPressure = %v, want 1012.3", got)
	}
}

func TestStalePacketReadsNaN(t *testing.T) {
	p := testPod(t)

	p.mu.Lock()
	p.latest = Packet{Temperature: 21.5, Humidity: 48.0, Pressure: 1012.3}
	p.latestAt = time.Now().Add(-3 * time.Minute) // staleness is 2x interval
	p.mu.Unlock()

	if !math.IsNaN(float64(p.ReadPressure())) {
		t.Error("stale packet should read back as NaN")
	}
}

type fakeStream struct {
	io.Reader
}

func (f *fakeStream) Write(p []byte) (int, error) { return len(p), nil }
func (f *fakeStream) Close() error                { return nil }

func TestParsePacketsKeepsNewest(t *testing.T) {
	p := testPod(t)
	p.rwc = &fakeStream{Reader: strings.NewReader(
		`{"temp_c":20.1,"rh":51,"baro_hpa":1011.2}` + "\n" +
			`{"temp_c":20.4,"rh":52,"baro_hpa":1011.0}` + "\n")}

	if err := p.parsePackets(); err == nil {
		t.Fatal("parsePackets should report stream closure")
	}

	if got := p.ReadTemperature(); got != 20.4 {
		t.Errorf("ReadTemperature = %v, want 20.4", got)
	}
	if got := p.ReadHumidity(); got != 52.0 {
		t.Errorf("ReadHumidity = %v, want 52.0", got)
	}
	if got := p.ReadPressure(); got != 1011.0 {
		t.Errorf("ReadPressure = %v, want 1011.0", got)
	}
}

func TestParsePacketsRejectsMalformedLine(t *testing.T) {
	p := testPod(t)
	p.rwc = &fakeStream{Reader: strings.NewReader("not json\n")}

	if err := p.parsePackets(); err == nil {
		t.Fatal("parsePackets should fail on a malformed line")
	}
}
