// Package realtime maintains the single authenticated websocket
// connection to the SwiftBus backend and multiplexes logical rooms
// (per-bus, per-booking) over it. Frames are {"event": name, "data":
// payload} JSON messages; inbound frames are decoded into the typed
// event union before reaching any consumer.
package realtime

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"strings"
	"sync"
	"time"

	"github.com/gorilla/websocket"

	"github.com/tersoo/swiftbus/internal/core/domain"
)

const (
	handshakeTimeout     = 20 * time.Second
	writeTimeout         = 10 * time.Second
	defaultMaxReconnects = 5
	defaultReconnectWait = time.Second
	eventBufferSize      = 64
)

type frame struct {
	Event string          `json:"event"`
	Data  json.RawMessage `json:"data"`
}

type authResult struct {
	Success bool   `json:"success"`
	UserID  string `json:"userId"`
	Error   string `json:"error"`
}

// Channel is one physical connection per authenticated session. Joins
// issued before the handshake completes are buffered and flushed once
// authenticated. After a reconnect the joined-room set is cleared and
// a state notification is pushed; re-subscribing is the caller's job,
// the channel knows nothing about what the rooms mean.
type Channel struct {
	url    string
	dialer *websocket.Dialer

	maxReconnects int
	reconnectWait time.Duration

	mu      sync.Mutex
	writeMu sync.Mutex
	state   domain.ChannelState
	conn    *websocket.Conn
	creds   domain.Credentials
	joined  map[string]bool
	pending []string
	done    chan struct{}

	events chan domain.Event
	states chan domain.ChannelState
}

func NewChannel(socketURL string) *Channel {
	return &Channel{
		url:           socketURL,
		dialer:        &websocket.Dialer{HandshakeTimeout: handshakeTimeout},
		maxReconnects: defaultMaxReconnects,
		reconnectWait: defaultReconnectWait,
		state:         domain.ChannelDisconnected,
		joined:        make(map[string]bool),
		events:        make(chan domain.Event, eventBufferSize),
		states:        make(chan domain.ChannelState, 8),
	}
}

// Events returns the inbound event stream for the current connection
// generation. The stream closes when the channel goes terminally
// Disconnected; after a fresh Connect, call Events again.
func (c *Channel) Events() <-chan domain.Event {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.events
}

func (c *Channel) States() <-chan domain.ChannelState { return c.states }

func (c *Channel) State() domain.ChannelState {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// Connect dials the backend and performs the authenticate handshake.
// Absent credentials never open a connection: the channel stays
// Disconnected and the caller gets an AuthError instead of an implicit
// anonymous session.
func (c *Channel) Connect(ctx context.Context, creds domain.Credentials) error {
	if creds.Empty() {
		log.Println("realtime channel not connecting: no credentials")
		return &domain.AuthError{Reason: "realtime channel requires userId and token"}
	}

	c.mu.Lock()
	if c.state != domain.ChannelDisconnected {
		c.mu.Unlock()
		return nil
	}
	c.creds = creds
	c.done = make(chan struct{})
	c.events = make(chan domain.Event, eventBufferSize)
	events := c.events
	c.setStateLocked(domain.ChannelConnecting)
	c.mu.Unlock()

	conn, err := c.dialAndAuthenticate(ctx)
	if err != nil {
		c.mu.Lock()
		c.setStateLocked(domain.ChannelDisconnected)
		c.mu.Unlock()
		return err
	}

	c.mu.Lock()
	c.conn = conn
	c.setStateLocked(domain.ChannelConnected)
	pending := c.pending
	c.pending = nil
	c.mu.Unlock()

	for _, room := range pending {
		if err := c.JoinRoom(room); err != nil {
			log.Printf("replaying buffered join for %s failed: %v", room, err)
		}
	}

	go c.run(conn, events)
	return nil
}

func (c *Channel) dialAndAuthenticate(ctx context.Context) (*websocket.Conn, error) {
	conn, _, err := c.dialer.DialContext(ctx, c.url, nil)
	if err != nil {
		return nil, &domain.NetworkError{Op: "connect " + c.url, Err: err}
	}

	payload, _ := json.Marshal(c.creds)
	_ = conn.SetWriteDeadline(time.Now().Add(writeTimeout))
	if err := conn.WriteJSON(frame{Event: "authenticate", Data: payload}); err != nil {
		_ = conn.Close()
		return nil, &domain.NetworkError{Op: "authenticate", Err: err}
	}

	_ = conn.SetReadDeadline(time.Now().Add(handshakeTimeout))
	var ack frame
	if err := conn.ReadJSON(&ack); err != nil {
		_ = conn.Close()
		return nil, &domain.NetworkError{Op: "authenticate ack", Err: err}
	}
	if ack.Event != "authenticated" {
		_ = conn.Close()
		return nil, &domain.AuthError{Reason: fmt.Sprintf("unexpected handshake reply %q", ack.Event)}
	}
	var result authResult
	if err := json.Unmarshal(ack.Data, &result); err != nil || !result.Success {
		_ = conn.Close()
		reason := result.Error
		if reason == "" {
			reason = "authentication rejected"
		}
		return nil, &domain.AuthError{Reason: reason}
	}

	_ = conn.SetReadDeadline(time.Time{})
	return conn, nil
}

// run reads frames until the connection drops, then attempts a bounded
// reconnect. The events stream closes when the loop exits, whether by
// Close or by reconnect exhaustion; only an explicit Connect revives
// the channel.
func (c *Channel) run(conn *websocket.Conn, events chan domain.Event) {
	defer close(events)
	for {
		c.readFrames(conn, events)

		select {
		case <-c.done:
			return
		default:
		}

		next, ok := c.reconnect()
		if !ok {
			c.mu.Lock()
			c.conn = nil
			c.setStateLocked(domain.ChannelDisconnected)
			c.mu.Unlock()
			return
		}
		conn = next
	}
}

func (c *Channel) readFrames(conn *websocket.Conn, events chan domain.Event) {
	for {
		var f frame
		if err := conn.ReadJSON(&f); err != nil {
			select {
			case <-c.done:
			default:
				log.Printf("realtime channel read failed: %v", err)
			}
			return
		}

		ev, err := domain.DecodeEvent(f.Event, f.Data)
		if err != nil {
			log.Printf("skipping realtime frame: %v", err)
			continue
		}
		select {
		case events <- ev:
		case <-c.done:
			return
		}
	}
}

func (c *Channel) reconnect() (*websocket.Conn, bool) {
	c.mu.Lock()
	c.conn = nil
	// Rooms joined on the old connection are gone server-side; the
	// caller re-subscribes when it sees the Connected notification.
	c.joined = make(map[string]bool)
	c.setStateLocked(domain.ChannelConnecting)
	c.mu.Unlock()

	for attempt := 1; attempt <= c.maxReconnects; attempt++ {
		select {
		case <-c.done:
			return nil, false
		case <-time.After(c.reconnectWait):
		}

		log.Printf("realtime channel reconnecting (attempt %d/%d)", attempt, c.maxReconnects)
		conn, err := c.dialAndAuthenticate(context.Background())
		if err != nil {
			log.Printf("reconnect attempt %d failed: %v", attempt, err)
			continue
		}

		c.mu.Lock()
		c.conn = conn
		c.setStateLocked(domain.ChannelConnected)
		c.mu.Unlock()
		return conn, true
	}

	log.Printf("realtime channel giving up after %d reconnect attempts", c.maxReconnects)
	return nil, false
}

// JoinRoom subscribes to a room such as "bus:<id>" or "booking:<id>".
// Idempotent; a join before the channel is connected is buffered and
// replayed once the handshake completes.
func (c *Channel) JoinRoom(room string) error {
	c.mu.Lock()
	if c.joined[room] {
		c.mu.Unlock()
		return nil
	}
	if c.state != domain.ChannelConnected {
		for _, p := range c.pending {
			if p == room {
				c.mu.Unlock()
				return nil
			}
		}
		c.pending = append(c.pending, room)
		c.mu.Unlock()
		log.Printf("buffered join for %s until channel connects", room)
		return nil
	}
	conn := c.conn
	c.joined[room] = true
	c.mu.Unlock()

	event, id := roomFrame("join", room)
	return c.writeFrame(conn, event, id)
}

// LeaveRoom is idempotent; leaving an unknown room is a no-op.
func (c *Channel) LeaveRoom(room string) error {
	c.mu.Lock()
	for i, p := range c.pending {
		if p == room {
			c.pending = append(c.pending[:i], c.pending[i+1:]...)
			break
		}
	}
	if !c.joined[room] || c.state != domain.ChannelConnected {
		c.mu.Unlock()
		return nil
	}
	delete(c.joined, room)
	conn := c.conn
	c.mu.Unlock()

	event, id := roomFrame("leave", room)
	return c.writeFrame(conn, event, id)
}

// Emit sends an arbitrary event frame, used for client intents such as
// notification:read.
func (c *Channel) Emit(event string, payload any) error {
	c.mu.Lock()
	conn := c.conn
	connected := c.state == domain.ChannelConnected
	c.mu.Unlock()
	if !connected {
		return &domain.NetworkError{Op: "emit " + event, Err: errNotConnected}
	}
	return c.writeFrame(conn, event, payload)
}

var errNotConnected = fmt.Errorf("realtime channel is not connected")

func (c *Channel) writeFrame(conn *websocket.Conn, event string, payload any) error {
	data, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("encode %s frame: %w", event, err)
	}
	c.writeMu.Lock()
	defer c.writeMu.Unlock()
	_ = conn.SetWriteDeadline(time.Now().Add(writeTimeout))
	if err := conn.WriteJSON(frame{Event: event, Data: data}); err != nil {
		return &domain.NetworkError{Op: "emit " + event, Err: err}
	}
	return nil
}

// roomFrame maps a room name onto the backend's join/leave event pair:
// "bus:123" joins via "join:bus" with data "123".
func roomFrame(verb, room string) (string, string) {
	kind, id, ok := strings.Cut(room, ":")
	if !ok {
		return verb + ":room", room
	}
	return verb + ":" + kind, id
}

func (c *Channel) setStateLocked(state domain.ChannelState) {
	c.state = state
	select {
	case c.states <- state:
	default:
	}
}

// Close tears the connection down. The channel ends Disconnected and
// needs a fresh Connect to be used again.
func (c *Channel) Close() error {
	c.mu.Lock()
	if c.done != nil {
		select {
		case <-c.done:
		default:
			close(c.done)
		}
	}
	conn := c.conn
	c.conn = nil
	c.setStateLocked(domain.ChannelDisconnected)
	c.mu.Unlock()

	if conn != nil {
		return conn.Close()
	}
	return nil
}
