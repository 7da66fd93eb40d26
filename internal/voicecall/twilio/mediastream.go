// Package twilio speaks the Twilio Media Streams websocket protocol.
package twilio

import (
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/gorilla/websocket"
)

var (
	// ErrStreamClosed is returned by ReadEvent once the caller leg is gone
	ErrStreamClosed = errors.New("media stream closed")
	// ErrMalformedEvent marks a frame that could not be decoded; the stream
	// itself is still usable.
	ErrMalformedEvent = errors.New("malformed media stream event")
)

const writeTimeout = 5 * time.Second

// MediaStream wraps one accepted Twilio media stream connection. Reads must
// come from a single goroutine; writes are serialized internally.
type MediaStream struct {
	conn       *websocket.Conn
	writeMutex sync.Mutex
	closeOnce  sync.Once
}

func NewMediaStream(conn *websocket.Conn) *MediaStream {
	return &MediaStream{conn: conn}
}

// ReadEvent blocks until the next stream event arrives
func (s *MediaStream) ReadEvent() (StreamEvent, error) {
	var event StreamEvent
	_, msg, err := s.conn.ReadMessage()
	if err != nil {
		if websocket.IsCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) ||
			errors.Is(err, websocket.ErrCloseSent) {
			return event, ErrStreamClosed
		}
		return event, fmt.Errorf("failed to read media stream: %w", err)
	}
	if err := json.Unmarshal(msg, &event); err != nil {
		return event, fmt.Errorf("%w: failed to parse media stream event: %v", ErrMalformedEvent, err)
	}
	return event, nil
}

// SendMedia plays a base64 mu-law payload to the caller
func (s *MediaStream) SendMedia(streamSid, payload string) error {
	return s.write(outboundMedia{
		Event:     EventMedia,
		StreamSid: streamSid,
		Media:     map[string]string{"payload": payload},
	})
}

// SendMark asks Twilio to echo name back once preceding audio has played
func (s *MediaStream) SendMark(streamSid, name string) error {
	return s.write(outboundMark{
		Event:     EventMark,
		StreamSid: streamSid,
		Mark:      MarkPayload{Name: name},
	})
}

// SendClear flushes audio Twilio has buffered but not yet played
func (s *MediaStream) SendClear(streamSid string) error {
	return s.write(outboundClear{Event: EventClear, StreamSid: streamSid})
}

func (s *MediaStream) write(frame any) error {
	msg, err := json.Marshal(frame)
	if err != nil {
		return fmt.Errorf("failed to marshal media stream frame: %w", err)
	}

	s.writeMutex.Lock()
	defer s.writeMutex.Unlock()
	_ = s.conn.SetWriteDeadline(time.Now().Add(writeTimeout))
	if err := s.conn.WriteMessage(websocket.TextMessage, msg); err != nil {
		return fmt.Errorf("failed to write media stream frame: %w", err)
	}
	return nil
}

// Close sends a normal close frame and releases the connection. Safe to call
// more than once.
func (s *MediaStream) Close() error {
	var err error
	s.closeOnce.Do(func() {
		s.writeMutex.Lock()
		_ = s.conn.WriteControl(websocket.CloseMessage,
			websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""),
			time.Now().Add(time.Second))
		s.writeMutex.Unlock()
		err = s.conn.Close()
	})
	return err
}
