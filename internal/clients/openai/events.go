package openai

import (
	"github.com/openai/openai-go/v3/packages/param"
	oairealtime "github.com/openai/openai-go/v3/realtime"
	"github.com/openai/openai-go/v3/responses"
)

// Server event types handled by the bridge
const (
	EventError                  = "error"
	EventSessionCreated         = "session.created"
	EventSessionUpdated         = "session.updated"
	EventResponseAudioDelta     = "response.audio.delta"
	EventResponseOutputAudio    = "response.output_audio.delta"
	EventSpeechStarted          = "input_audio_buffer.speech_started"
	EventSpeechStopped          = "input_audio_buffer.speech_stopped"
	EventInputAudioCommitted    = "input_audio_buffer.committed"
	EventFunctionCallArgsDone   = "response.function_call_arguments.done"
	EventResponseDone           = "response.done"
	EventInputTranscriptDone    = "conversation.item.input_audio_transcription.completed"
	EventResponseTranscriptDone = "response.audio_transcript.done"
	EventOutputTranscriptDone   = "response.output_audio_transcript.done"
	EventRateLimitsUpdated      = "rate_limits.updated"
)

// Error codes after which the session cannot continue
var fatalErrorCodes = map[string]bool{
	"session_expired":    true,
	"invalid_api_key":    true,
	"insufficient_quota": true,
	"session_terminated": true,
}

// ServerEvent is the union of the server event fields the bridge reads.
// The SDK types cover request params only, so frames decode into this.
type ServerEvent struct {
	Type         string       `json:"type"`
	EventID      string       `json:"event_id,omitempty"`
	ItemID       string       `json:"item_id,omitempty"`
	ResponseID   string       `json:"response_id,omitempty"`
	ContentIndex int          `json:"content_index,omitempty"`
	Delta        string       `json:"delta,omitempty"`
	CallID       string       `json:"call_id,omitempty"`
	Name         string       `json:"name,omitempty"`
	Arguments    string       `json:"arguments,omitempty"`
	Transcript   string       `json:"transcript,omitempty"`
	AudioStartMs int64        `json:"audio_start_ms,omitempty"`
	AudioEndMs   int64        `json:"audio_end_ms,omitempty"`
	Error        *ErrorDetail `json:"error,omitempty"`
	Response     *Response    `json:"response,omitempty"`
}

// IsAudioDelta reports whether the event carries assistant audio under
// either the current or the legacy event name.
func (e ServerEvent) IsAudioDelta() bool {
	return e.Type == EventResponseAudioDelta || e.Type == EventResponseOutputAudio
}

// IsResponseTranscript reports whether the event carries a finished
// assistant transcript under either event name.
func (e ServerEvent) IsResponseTranscript() bool {
	return e.Type == EventResponseTranscriptDone || e.Type == EventOutputTranscriptDone
}

type ErrorDetail struct {
	Type    string `json:"type"`
	Code    string `json:"code"`
	Message string `json:"message"`
	Param   string `json:"param,omitempty"`
}

// Fatal reports whether the error ends the realtime session
func (e *ErrorDetail) Fatal() bool {
	return e != nil && fatalErrorCodes[e.Code]
}

func (e *ErrorDetail) Error() string {
	return e.Code + ": " + e.Message
}

type Response struct {
	ID     string       `json:"id"`
	Status string       `json:"status"`
	Output []OutputItem `json:"output,omitempty"`
}

type OutputItem struct {
	ID        string `json:"id"`
	Type      string `json:"type"`
	Name      string `json:"name,omitempty"`
	CallID    string `json:"call_id,omitempty"`
	Arguments string `json:"arguments,omitempty"`
}

// FunctionCalls returns the function call items of a finished response
func (r *Response) FunctionCalls() []OutputItem {
	if r == nil {
		return nil
	}
	var calls []OutputItem
	for _, item := range r.Output {
		if item.Type == "function_call" && item.CallID != "" {
			calls = append(calls, item)
		}
	}
	return calls
}

// Session configuration

const (
	// mu-law at 8kHz, the encoding of Twilio media streams
	audioFormatPCMU  = "audio/pcmu"
	toolTypeFunction = "function"
)

// PhoneSession holds the per-call settings of a telephone session
type PhoneSession struct {
	Instructions       string
	Voice              string
	VADThreshold       float64
	PrefixPaddingMs    int
	SilenceDurationMs  int
	TranscriptionModel string
	Tools              oairealtime.RealtimeToolsConfigParam
}

// Params builds the realtime session: mu-law in and out, server VAD that
// interrupts playback but never starts a response on its own.
func (p PhoneSession) Params() oairealtime.RealtimeSessionCreateRequestParam {
	format := oairealtime.RealtimeAudioFormatsUnionParam{
		OfAudioPCMU: &oairealtime.RealtimeAudioFormatsAudioPCMUParam{Type: audioFormatPCMU},
	}

	input := oairealtime.RealtimeAudioConfigInputParam{
		Format: format,
		TurnDetection: oairealtime.RealtimeAudioInputTurnDetectionUnionParam{
			OfServerVad: &oairealtime.RealtimeAudioInputTurnDetectionServerVadParam{
				Threshold:         param.NewOpt(p.VADThreshold),
				PrefixPaddingMs:   param.NewOpt(int64(p.PrefixPaddingMs)),
				SilenceDurationMs: param.NewOpt(int64(p.SilenceDurationMs)),
				CreateResponse:    param.NewOpt(false),
				InterruptResponse: param.NewOpt(true),
			},
		},
	}
	if p.TranscriptionModel != "" {
		input.Transcription = oairealtime.AudioTranscriptionParam{
			Model: oairealtime.AudioTranscriptionModel(p.TranscriptionModel),
		}
	}

	session := oairealtime.RealtimeSessionCreateRequestParam{
		OutputModalities: []string{"audio"},
		Audio: oairealtime.RealtimeAudioConfigParam{
			Input: input,
			Output: oairealtime.RealtimeAudioConfigOutputParam{
				Format: format,
				Voice:  oairealtime.RealtimeAudioConfigOutputVoice(p.Voice),
			},
		},
		Tools: p.Tools,
	}
	if p.Instructions != "" {
		session.Instructions = param.NewOpt(p.Instructions)
	}
	if len(p.Tools) > 0 {
		session.ToolChoice = oairealtime.RealtimeToolChoiceConfigUnionParam{
			OfToolChoiceMode: param.NewOpt(responses.ToolChoiceOptionsAuto),
		}
	}
	return session
}

// FunctionTool declares a callable function in the session tools block
func FunctionTool(name, description string, parameters map[string]any) oairealtime.RealtimeToolsConfigUnionParam {
	tool := &oairealtime.RealtimeFunctionToolParam{
		Name: param.NewOpt(name),
		Type: toolTypeFunction,
	}
	if description != "" {
		tool.Description = param.NewOpt(description)
	}
	if parameters != nil {
		tool.Parameters = parameters
	}
	return oairealtime.RealtimeToolsConfigUnionParam{OfFunction: tool}
}

// Client events

type ClientEvent struct {
	Type         string                                         `json:"type"`
	Session      *oairealtime.RealtimeSessionCreateRequestParam `json:"session,omitempty"`
	Audio        string                                         `json:"audio,omitempty"`
	ItemID       string                                         `json:"item_id,omitempty"`
	ContentIndex *int                                           `json:"content_index,omitempty"`
	AudioEndMs   *int64                                         `json:"audio_end_ms,omitempty"`
	Item         *ConversationItem                              `json:"item,omitempty"`
	Response     *ResponseConfig                                `json:"response,omitempty"`
}

type ConversationItem struct {
	Type   string `json:"type"`
	CallID string `json:"call_id,omitempty"`
	Output string `json:"output,omitempty"`
}

type ResponseConfig struct {
	Instructions string `json:"instructions,omitempty"`
}

// SessionUpdate configures the session built by PhoneSession.Params
func SessionUpdate(session oairealtime.RealtimeSessionCreateRequestParam) ClientEvent {
	return ClientEvent{Type: "session.update", Session: &session}
}

// InputAudioAppend forwards a base64 mu-law caller chunk
func InputAudioAppend(payload string) ClientEvent {
	return ClientEvent{Type: "input_audio_buffer.append", Audio: payload}
}

func InputAudioCommit() ClientEvent {
	return ClientEvent{Type: "input_audio_buffer.commit"}
}

// ResponseCreate asks for a model response. Non-empty instructions override
// the session instructions for this response only.
func ResponseCreate(instructions string) ClientEvent {
	event := ClientEvent{Type: "response.create"}
	if instructions != "" {
		event.Response = &ResponseConfig{Instructions: instructions}
	}
	return event
}

// ConversationItemTruncate trims an assistant item to what the caller heard
func ConversationItemTruncate(itemID string, audioEndMs int64) ClientEvent {
	contentIndex := 0
	return ClientEvent{
		Type:         "conversation.item.truncate",
		ItemID:       itemID,
		ContentIndex: &contentIndex,
		AudioEndMs:   &audioEndMs,
	}
}

// FunctionCallOutput injects a tool result into the conversation
func FunctionCallOutput(callID, output string) ClientEvent {
	return ClientEvent{
		Type: "conversation.item.create",
		Item: &ConversationItem{
			Type:   "function_call_output",
			CallID: callID,
			Output: output,
		},
	}
}
