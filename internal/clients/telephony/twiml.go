package telephony

import (
	"fmt"
	"sort"

	"github.com/twilio/twilio-go/twiml"
)

// SayAndHangupTwiML speaks message to the caller and ends the call
func SayAndHangupTwiML(message string) (string, error) {
	say := &twiml.VoiceSay{Message: message}
	hangup := &twiml.VoiceHangup{}

	result, err := twiml.Voice([]twiml.Element{say, hangup})
	if err != nil {
		return "", fmt.Errorf("failed to build hangup twiml: %w", err)
	}
	return result, nil
}

// ConnectStreamTwiML speaks an optional prompt, then connects the call audio
// to a bidirectional media stream. Parameters are delivered as
// customParameters on the stream start event.
func ConnectStreamTwiML(prompt, streamURL string, parameters map[string]string) (string, error) {
	keys := make([]string, 0, len(parameters))
	for k := range parameters {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	params := make([]twiml.Element, 0, len(keys))
	for _, k := range keys {
		params = append(params, twiml.VoiceParameter{Name: k, Value: parameters[k]})
	}

	stream := twiml.VoiceStream{
		Name:          "voice-bridge",
		Url:           streamURL,
		InnerElements: params,
	}
	connect := twiml.VoiceConnect{
		InnerElements: []twiml.Element{stream},
	}

	var elements []twiml.Element
	if prompt != "" {
		elements = append(elements, &twiml.VoiceSay{Message: prompt})
	}
	elements = append(elements, connect)

	result, err := twiml.Voice(elements)
	if err != nil {
		return "", fmt.Errorf("failed to build stream twiml: %w", err)
	}
	return result, nil
}
