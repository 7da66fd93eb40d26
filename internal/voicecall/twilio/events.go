package twilio

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
)

// Media stream event names
const (
	EventConnected = "connected"
	EventStart     = "start"
	EventMedia     = "media"
	EventMark      = "mark"
	EventStop      = "stop"
	EventDTMF      = "dtmf"
	EventClear     = "clear"
)

// StreamEvent is a message received from a Twilio media stream
type StreamEvent struct {
	Event          string        `json:"event"`
	SequenceNumber string        `json:"sequenceNumber,omitempty"`
	StreamSid      string        `json:"streamSid,omitempty"`
	Start          *StartPayload `json:"start,omitempty"`
	Media          *MediaPayload `json:"media,omitempty"`
	Mark           *MarkPayload  `json:"mark,omitempty"`
	Stop           *StopPayload  `json:"stop,omitempty"`
	DTMF           *DTMFPayload  `json:"dtmf,omitempty"`
}

type StartPayload struct {
	StreamSid        string            `json:"streamSid"`
	CallSid          string            `json:"callSid"`
	AccountSid       string            `json:"accountSid"`
	Tracks           []string          `json:"tracks,omitempty"`
	CustomParameters map[string]string `json:"customParameters,omitempty"`
	MediaFormat      MediaFormat       `json:"mediaFormat"`
}

type MediaFormat struct {
	Encoding   string `json:"encoding"`
	SampleRate int    `json:"sampleRate"`
	Channels   int    `json:"channels"`
}

type MediaPayload struct {
	Track     string `json:"track,omitempty"`
	Chunk     string `json:"chunk,omitempty"`
	Timestamp Millis `json:"timestamp"`
	Payload   string `json:"payload"`
}

type MarkPayload struct {
	Name string `json:"name"`
}

type StopPayload struct {
	AccountSid string `json:"accountSid"`
	CallSid    string `json:"callSid"`
}

type DTMFPayload struct {
	Track string `json:"track"`
	Digit string `json:"digit"`
}

// Millis is a stream timestamp in milliseconds. Twilio sends it as a JSON
// string but numbers are accepted too.
type Millis int64

func (m *Millis) UnmarshalJSON(data []byte) error {
	data = bytes.Trim(data, `"`)
	if len(data) == 0 || string(data) == "null" {
		*m = 0
		return nil
	}
	v, err := strconv.ParseInt(string(data), 10, 64)
	if err != nil {
		return fmt.Errorf("failed to parse media timestamp %q: %w", data, err)
	}
	*m = Millis(v)
	return nil
}

func (m Millis) MarshalJSON() ([]byte, error) {
	return json.Marshal(strconv.FormatInt(int64(m), 10))
}

// outbound frames

type outboundMedia struct {
	Event     string            `json:"event"`
	StreamSid string            `json:"streamSid"`
	Media     map[string]string `json:"media"`
}

type outboundMark struct {
	Event     string      `json:"event"`
	StreamSid string      `json:"streamSid"`
	Mark      MarkPayload `json:"mark"`
}

type outboundClear struct {
	Event     string `json:"event"`
	StreamSid string `json:"streamSid"`
}
