// Package openai connects to the OpenAI Realtime API over a websocket.
package openai

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net"
	"net/http"
	"net/url"
	"sync"
	"time"

	"github.com/gorilla/websocket"
)

const (
	defaultRealtimeURL = "wss://api.openai.com/v1/realtime"
	handshakeTimeout   = 10 * time.Second
	writeTimeout       = 5 * time.Second
)

var (
	ErrMissingAPIKey = errors.New("OpenAI API key is required")
	// ErrConnectionClosed is returned by ReadEvent after the socket is closed
	ErrConnectionClosed = errors.New("realtime connection closed")
	// ErrMalformedEvent marks a frame that could not be decoded; the
	// connection itself is still usable.
	ErrMalformedEvent = errors.New("malformed realtime event")
)

// RealtimeConfig holds connection settings for the realtime endpoint
type RealtimeConfig struct {
	APIKey string
	URL    string
	Model  string
}

type RealtimeClient struct {
	cfg    RealtimeConfig
	dialer *websocket.Dialer
}

func NewRealtimeClient(cfg RealtimeConfig) (*RealtimeClient, error) {
	if cfg.APIKey == "" {
		return nil, ErrMissingAPIKey
	}
	if cfg.URL == "" {
		cfg.URL = defaultRealtimeURL
	}
	return &RealtimeClient{
		cfg:    cfg,
		dialer: &websocket.Dialer{HandshakeTimeout: handshakeTimeout, Proxy: http.ProxyFromEnvironment},
	}, nil
}

// Dial opens a new realtime session socket
func (c *RealtimeClient) Dial(ctx context.Context) (*RealtimeConn, error) {
	endpoint, err := url.Parse(c.cfg.URL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse realtime url: %w", err)
	}
	if c.cfg.Model != "" {
		q := endpoint.Query()
		q.Set("model", c.cfg.Model)
		endpoint.RawQuery = q.Encode()
	}

	headers := http.Header{}
	headers.Set("Authorization", "Bearer "+c.cfg.APIKey)

	conn, resp, err := c.dialer.DialContext(ctx, endpoint.String(), headers)
	if err != nil {
		if resp != nil {
			return nil, fmt.Errorf("failed to connect to realtime endpoint (status %d): %w", resp.StatusCode, err)
		}
		return nil, fmt.Errorf("failed to connect to realtime endpoint: %w", err)
	}
	return &RealtimeConn{conn: conn}, nil
}

// RealtimeConn is one realtime session. ReadEvent must be called from a
// single goroutine; Send may be called concurrently.
type RealtimeConn struct {
	conn       *websocket.Conn
	writeMutex sync.Mutex
	closeOnce  sync.Once
}

// Send writes a client event frame
func (c *RealtimeConn) Send(ctx context.Context, event any) error {
	msg, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal realtime event: %w", err)
	}

	deadline := time.Now().Add(writeTimeout)
	if d, ok := ctx.Deadline(); ok && d.Before(deadline) {
		deadline = d
	}

	c.writeMutex.Lock()
	defer c.writeMutex.Unlock()
	_ = c.conn.SetWriteDeadline(deadline)
	if err := c.conn.WriteMessage(websocket.TextMessage, msg); err != nil {
		return fmt.Errorf("failed to send realtime event: %w", err)
	}
	return nil
}

// ReadEvent blocks until the next server event arrives
func (c *RealtimeConn) ReadEvent() (ServerEvent, error) {
	var event ServerEvent
	_, msg, err := c.conn.ReadMessage()
	if err != nil {
		if websocket.IsCloseError(err, websocket.CloseNormalClosure) || errors.Is(err, net.ErrClosed) {
			return event, ErrConnectionClosed
		}
		return event, fmt.Errorf("failed to read realtime event: %w", err)
	}
	if err := json.Unmarshal(msg, &event); err != nil {
		return event, fmt.Errorf("%w: %v", ErrMalformedEvent, err)
	}
	return event, nil
}

func (c *RealtimeConn) Close() error {
	var err error
	c.closeOnce.Do(func() {
		c.writeMutex.Lock()
		_ = c.conn.WriteControl(websocket.CloseMessage,
			websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""),
			time.Now().Add(time.Second))
		c.writeMutex.Unlock()
		err = c.conn.Close()
	})
	return err
}
