// Command rfbridge runs the pulse-capture bridge on real hardware: a
// receiver pin sampled at a fixed tick rate, a transmit pin driven by the
// replay engine, and a UART carrying the line protocol to a host.
package main

import (
	"machine"
	"time"

	rf433 "github.com/sparques/rf433bridge"
	"github.com/sparques/rf433bridge/decode/ask"
	"github.com/sparques/rf433bridge/decode/manchester"
	"github.com/sparques/rf433bridge/decode/ook"
	"github.com/sparques/rf433bridge/decode/rawpulse"
)

const (
	rxPin      = machine.GPIO2
	txPin      = machine.GPIO3
	antennaPin = machine.GPIO4

	uartBaud = 115200

	// tickRate is tuned so typical ASK bit durations land in the
	// 0x40-0x80 tick range on the reference receiver.
	tickRate = 10 * time.Microsecond
)

// pin adapts machine.Pin to rf433.InputPin and rf433.OutputPin.
type pin struct{ machine.Pin }

func (p pin) Get() bool      { return p.Pin.Get() }
func (p pin) Set(level bool) { p.Pin.Set(level) }

// uartPort adapts machine.UART to rf433.Port.
type uartPort struct{ uart *machine.UART }

func (u uartPort) WriteByte(b byte) error {
	return u.uart.WriteByte(b)
}

func (u uartPort) ReadByte() (byte, error) {
	if u.uart.Buffered() == 0 {
		return 0, rf433.ErrNoByte
	}
	return u.uart.ReadByte()
}

func (u uartPort) Available() bool {
	return u.uart.Buffered() > 0
}

func main() {
	rx := pin{rxPin}
	tx := pin{txPin}
	antenna := pin{antennaPin}
	rx.Configure(machine.PinConfig{Mode: machine.PinInput})
	tx.Configure(machine.PinConfig{Mode: machine.PinOutput})
	antenna.Configure(machine.PinConfig{Mode: machine.PinOutput})

	machine.UART0.Configure(machine.UARTConfig{BaudRate: uartBaud})
	port := uartPort{uart: machine.UART0}

	decoders := rf433.Decoders{
		ASK:        ask.New(),
		OOK:        ook.New(),
		Manchester: manchester.New(),
		RawPulses:  rawpulse.New(),
	}

	bridge := rf433.NewBridge(port, antenna, tx, decoders)

	println("rf433bridge: armed, sampling at", tickRate.String())

	ticker := time.NewTicker(tickRate)
	for range ticker.C {
		bridge.Tick(rx.Get())
	}
}
