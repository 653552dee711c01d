// pod-emulator emulates a sensor pod for development: it listens on
// TCP and streams newline-delimited JSON packets in the pod wire
// format, with plausible diurnal weather curves.
package main

import (
	"encoding/json"
	"flag"
	"log"
	"math"
	"math/rand"
	"net"
	"time"
)

// PodPacket matches the wire format the daemon's serialbus frontend expects
type PodPacket struct {
	TempC       float32 `json:"temp_c"`
	RH          float32 `json:"rh"`
	BaroHPa     float32 `json:"baro_hpa"`
	BattVoltage float32 `json:"batt_volt,omitempty"`
}

func main() {
	var (
		port     = flag.String("port", "8123", "TCP port to listen on")
		interval = flag.Duration("interval", 2*time.Second, "Interval between readings")
		falling  = flag.Bool("falling", false, "Simulate a steadily falling pressure trend")
	)
	flag.Parse()

	log.Printf("Sensor Pod Emulator")
	log.Printf("Listening on port %s, sending data every %v", *port, *interval)

	listener, err := net.Listen("tcp", ":"+*port)
	if err != nil {
		log.Fatal("Failed to listen:", err)
	}
	defer listener.Close()

	for {
		conn, err := listener.Accept()
		if err != nil {
			log.Printf("Failed to accept connection: %v", err)
			continue
		}

		log.Printf("Client connected from %s", conn.RemoteAddr())
		go handleConnection(conn, *interval, *falling)
	}
}

func handleConnection(conn net.Conn, interval time.Duration, falling bool) {
	defer conn.Close()

	encoder := json.NewEncoder(conn)
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	start := time.Now()

	packet := generateReading(start, start, falling)
	if err := encoder.Encode(packet); err != nil {
		log.Printf("Failed to send packet: %v", err)
		return
	}

	for range ticker.C {
		packet := generateReading(start, time.Now(), falling)
		if err := encoder.Encode(packet); err != nil {
			log.Printf("Failed to send packet: %v", err)
			return
		}
		log.Printf("Sent: temp=%.1f°C, humidity=%.1f%%, pressure=%.1f hPa",
			packet.TempC, packet.RH, packet.BaroHPa)
	}
}

func generateReading(start, now time.Time, falling bool) PodPacket {
	hour := float64(now.Hour()) + float64(now.Minute())/60

	// Temperature: diurnal curve peaking mid-afternoon
	temp := 18.0 + 8.0*math.Sin(2*math.Pi*(hour-9)/24) + rand.Float64()*1.0 - 0.5

	// Humidity: inverse of temperature, higher overnight
	humidity := math.Max(20, math.Min(98, 65-(temp-18)*2+rand.Float64()*6-3))

	// Pressure: slow sinusoidal wander around 1013 hPa, or a steady
	// fall for exercising the storm and rain alerts
	pressure := 1013.0 + 3.0*math.Sin(2*math.Pi*hour/24) + rand.Float64()*0.4 - 0.2
	if falling {
		pressure -= now.Sub(start).Minutes() * 0.05
	}

	return PodPacket{
		TempC:       float32(temp),
		RH:          float32(humidity),
		BaroHPa:     float32(pressure),
		BattVoltage: 12.4 + float32(rand.Float64()*0.2),
	}
}
