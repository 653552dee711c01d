// Package serialbus reads packets from a sensor pod attached over a
// USB serial port or a TCP bridge.  The pod firmware samples its
// temperature/humidity/pressure chips over I2C and emits one JSON
// packet per line.
package serialbus

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"math"
	"net"
	"sync"
	"time"

	"github.com/microwx/microwx/internal/log"
	"github.com/microwx/microwx/internal/sensors"
	"github.com/microwx/microwx/pkg/config"
	serial "github.com/tarm/goserial"
	"go.uber.org/zap"
)

var nan = float32(math.NaN())

// Packet describes one JSON line emitted by the sensor pod firmware
type Packet struct {
	Temperature float32 `json:"temp_c,omitempty"`
	Humidity    float32 `json:"rh,omitempty"`
	Pressure    float32 `json:"baro_hpa,omitempty"`
	BattVolt    float32 `json:"batt_volt,omitempty"`
}

// Pod holds our connection to the sensor pod along with the latest
// packet it produced
type Pod struct {
	ctx     context.Context
	wg      *sync.WaitGroup
	netConn net.Conn
	rwc     io.ReadWriteCloser
	config  config.SensorData
	logger  *zap.SugaredLogger

	mu        sync.RWMutex
	latest    Packet
	latestAt  time.Time
	staleness time.Duration
}

// NewPod creates a sensor pod frontend from the sensor configuration.
// Readings older than twice the sampling interval are considered stale
// and read back as NaN.
func NewPod(ctx context.Context, wg *sync.WaitGroup, cfg config.SensorData, sampleInterval time.Duration, logger *zap.SugaredLogger) sensors.Sensor {
	pod := &Pod{
		ctx:       ctx,
		wg:        wg,
		config:    cfg,
		logger:    logger,
		staleness: 2 * sampleInterval,
	}

	// 115200 is the pod firmware default for USB serial
	if pod.config.Baud == 0 {
		pod.config.Baud = 115200
	}

	return pod
}

func (p *Pod) SensorName() string {
	return p.config.Name
}

// Start connects to the pod and launches the packet reader goroutine
func (p *Pod) Start() error {
	log.Infof("Starting sensor pod [%v]...", p.config.Name)

	if err := p.connect(); err != nil {
		return err
	}

	p.wg.Add(1)
	go p.getPackets()

	return nil
}

// connect opens the serial device or TCP bridge
func (p *Pod) connect() error {
	if p.config.SerialDevice != "" {
		log.Infof("Connecting to sensor pod [%v] via serial device %v...",
			p.config.Name, p.config.SerialDevice)
		rwc, err := serial.OpenPort(&serial.Config{
			Name: p.config.SerialDevice,
			Baud: p.config.Baud,
		})
		if err != nil {
			return fmt.Errorf("could not open serial device %v: %w", p.config.SerialDevice, err)
		}
		p.rwc = rwc
		return nil
	}

	log.Infof("Connecting to sensor pod [%v] via TCP %v:%v...",
		p.config.Name, p.config.Hostname, p.config.Port)
	conn, err := net.Dial("tcp", net.JoinHostPort(p.config.Hostname, p.config.Port))
	if err != nil {
		return fmt.Errorf("could not connect to sensor pod at %v:%v: %w",
			p.config.Hostname, p.config.Port, err)
	}
	p.netConn = conn
	p.rwc = conn
	return nil
}

// getPackets runs the packet parsing loop, reconnecting on error
func (p *Pod) getPackets() {
	defer p.wg.Done()
	for {
		select {
		case <-p.ctx.Done():
			log.Info("cancellation request received. Cancelling sensor pod reader.")
			return
		default:
			err := p.parsePackets()
			if err != nil {
				p.logger.Error(err)
				p.rwc.Close()
				p.logger.Info("attempting to reconnect to sensor pod...")
				p.reconnectWithBackoff()
			} else {
				return
			}
		}
	}
}

func (p *Pod) reconnectWithBackoff() {
	delay := time.Second
	for {
		select {
		case <-p.ctx.Done():
			return
		case <-time.After(delay):
		}

		if err := p.connect(); err == nil {
			return
		}

		if delay < 30*time.Second {
			delay *= 2
		}
		log.Infof("reconnection to sensor pod [%v] failed, retrying in %v", p.config.Name, delay)
	}
}

// parsePackets reads JSON lines from the pod and stores the newest one
func (p *Pod) parsePackets() error {
	scanner := bufio.NewScanner(p.rwc)

	for scanner.Scan() {
		if p.netConn != nil {
			p.netConn.SetReadDeadline(time.Now().Add(30 * time.Second))
		}

		select {
		case <-p.ctx.Done():
			return nil
		default:
		}

		var pkt Packet
		if err := json.Unmarshal(scanner.Bytes(), &pkt); err != nil {
			return fmt.Errorf("error unmarshalling sensor packet: %v", err)
		}

		log.Debugf("sensor pod [%v] packet: temp=%.1fC rh=%.1f%% baro=%.1fhPa",
			p.config.Name, pkt.Temperature, pkt.Humidity, pkt.Pressure)

		p.mu.Lock()
		p.latest = pkt
		p.latestAt = time.Now()
		p.mu.Unlock()
	}

	if err := scanner.Err(); err != nil {
		return fmt.Errorf("error reading from sensor pod: %v", err)
	}
	return fmt.Errorf("sensor pod stream closed")
}

// fresh returns the latest packet, or false if no sufficiently recent
// packet exists
func (p *Pod) fresh() (Packet, bool) {
	p.mu.RLock()
	defer p.mu.RUnlock()

	if p.latestAt.IsZero() || time.Since(p.latestAt) > p.staleness {
		return Packet{}, false
	}
	return p.latest, true
}

func (p *Pod) ReadTemperature() float32 {
	pkt, ok := p.fresh()
	if !ok {
		return nan
	}
	return pkt.Temperature
}

func (p *Pod) ReadHumidity() float32 {
	pkt, ok := p.fresh()
	if !ok {
		return nan
	}
	return pkt.Humidity
}

func (p *Pod) ReadPressure() float32 {
	pkt, ok := p.fresh()
	if !ok {
		return nan
	}
	return pkt.Pressure
}
