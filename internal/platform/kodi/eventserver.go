package kodi

import (
	"encoding/binary"
	"fmt"
	"net"
	"strconv"
	"sync"
	"time"

	"github.com/google/uuid"
)

// EventServer packet types and action kinds.
const (
	packetHelo   uint16 = 0x01
	packetBye    uint16 = 0x02
	packetAction uint16 = 0x0A

	actionExecBuiltin byte = 0x01

	headerSize     = 32
	maxPacketSize  = 1024
	maxPayloadSize = maxPacketSize - headerSize

	protocolMajor = 2
	protocolMinor = 0
)

const deviceName = "kodi-search"

// Kodi forgets clients that stay silent for 60s.
const (
	reHeloAfter = 30 * time.Second
	byeDelay    = 250 * time.Millisecond
)

// encodePacket builds a single-part EventServer packet.
func encodePacket(kind uint16, uid uint32, payload []byte) []byte {
	buf := make([]byte, headerSize+len(payload))
	copy(buf[0:4], "XBMC")
	buf[4] = protocolMajor
	buf[5] = protocolMinor
	binary.BigEndian.PutUint16(buf[6:8], kind)
	binary.BigEndian.PutUint32(buf[8:12], 1)  // sequence
	binary.BigEndian.PutUint32(buf[12:16], 1) // total packets
	binary.BigEndian.PutUint16(buf[16:18], uint16(len(payload)))
	binary.BigEndian.PutUint32(buf[18:22], uid)
	// buf[22:32] reserved
	copy(buf[headerSize:], payload)
	return buf
}

func heloPayload(name string) []byte {
	p := make([]byte, 0, len(name)+12)
	p = append(p, name...)
	p = append(p, 0)
	p = append(p, 0)          // icon type: none
	p = append(p, 0, 0)       // port
	p = append(p, 0, 0, 0, 0) // reserved
	p = append(p, 0, 0, 0, 0) // reserved
	return p
}

func actionPayload(builtin string) []byte {
	p := make([]byte, 0, len(builtin)+2)
	p = append(p, actionExecBuiltin)
	p = append(p, builtin...)
	p = append(p, 0)
	return p
}

// EventClient sends builtin commands to Kodi's EventServer over UDP.
// Delivery is not confirmed.
type EventClient struct {
	mu       sync.Mutex
	conn     net.Conn
	uid      uint32
	greeted  bool
	lastSent time.Time
	timeout  time.Duration

	// byeDelay is the quiet period kept between the last action and BYE.
	byeDelay time.Duration
	now      func() time.Time
	sleep    func(time.Duration)
}

// DialEvents opens a UDP socket towards host:port.
func DialEvents(host string, port int, timeout time.Duration) (*EventClient, error) {
	conn, err := net.Dial("udp", net.JoinHostPort(host, strconv.Itoa(port)))
	if err != nil {
		return nil, fmt.Errorf("dial eventserver: %w", err)
	}
	if timeout <= 0 {
		timeout = 2 * time.Second
	}
	return &EventClient{
		conn:     conn,
		uid:      uuid.New().ID(),
		timeout:  timeout,
		byeDelay: byeDelay,
		now:      time.Now,
		sleep:    time.Sleep,
	}, nil
}

// Send issues one builtin. The client registers with a HELO on first use and
// again after being idle long enough that Kodi may have dropped it.
func (c *EventClient) Send(builtin string) error {
	payload := actionPayload(builtin)
	if len(payload) > maxPayloadSize {
		return fmt.Errorf("builtin too long for eventserver: %d bytes", len(payload))
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.greeted || c.now().Sub(c.lastSent) >= reHeloAfter {
		if err := c.write(packetHelo, heloPayload(deviceName)); err != nil {
			return err
		}
		c.greeted = true
	}
	return c.write(packetAction, payload)
}

func (c *EventClient) write(kind uint16, payload []byte) error {
	_ = c.conn.SetWriteDeadline(time.Now().Add(c.timeout))
	if _, err := c.conn.Write(encodePacket(kind, c.uid, payload)); err != nil {
		return fmt.Errorf("eventserver write: %w", err)
	}
	c.lastSent = c.now()
	return nil
}

// Close says goodbye (when registered) and closes the socket. Kodi handles a
// BYE immediately and would discard actions still queued for this client, so
// BYE waits until byeDelay has passed since the last packet.
func (c *EventClient) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.greeted {
		if wait := c.byeDelay - c.now().Sub(c.lastSent); wait > 0 {
			c.sleep(wait)
		}
		_ = c.write(packetBye, nil)
		c.greeted = false
	}
	return c.conn.Close()
}
