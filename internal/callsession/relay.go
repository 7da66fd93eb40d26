package callsession

import (
	"context"
	"errors"
	"fmt"

	"voice-bridge/internal/capabilities"
	"voice-bridge/internal/clients/openai"
	"voice-bridge/internal/observability"
	"voice-bridge/internal/voice/audio"
	"voice-bridge/internal/voicecall/twilio"
)

// markName labels the playback mark sent after each assistant chunk
const markName = "responsePart"

// Caller leg

func (s *Session) handleCaller(ev twilio.StreamEvent) {
	switch ev.Event {
	case twilio.EventConnected:
		s.logger.Debug(s.ctx, "media stream connected")
	case twilio.EventStart:
		if s.State() != StateResolving {
			s.logger.Warn(s.ctx, "ignoring repeated start event")
			return
		}
		s.begin(ev.Start, ev.StreamSid)
	case twilio.EventMedia:
		s.relayCallerAudio(ev.Media)
	case twilio.EventMark:
		s.turns.MarkPlayed()
	case twilio.EventStop:
		s.logger.Info(s.ctx, "caller hung up")
		s.setState(StateDraining)
	case twilio.EventDTMF:
		if ev.DTMF != nil {
			s.logger.Info(s.ctx, fmt.Sprintf("caller pressed %s", ev.DTMF.Digit))
		}
	default:
		s.logger.Debug(s.ctx, fmt.Sprintf("ignoring media stream event %q", ev.Event))
	}
}

func (s *Session) relayCallerAudio(media *twilio.MediaPayload) {
	// Audio before the model is configured has nowhere to go
	if s.State() != StateActive || media == nil {
		return
	}
	s.turns.ObserveCallerAudio(int64(media.Timestamp))
	s.inboundMs += audio.PayloadDurationMs(media.Payload)
	s.sendAI(openai.InputAudioAppend(media.Payload))
}

func (s *Session) callerGone(err error) {
	switch {
	case s.State() == StateResolving:
		s.failure = fmt.Errorf("%w: %v", ErrMissingStartEvent, err)
		s.logger.Warn(s.ctx, s.failure.Error())
	case errors.Is(err, twilio.ErrStreamClosed):
		s.logger.Info(s.ctx, "media stream closed")
	default:
		s.logger.Error(s.ctx, "media stream read failed", err)
	}
	s.setState(StateDraining)
}

func (s *Session) callerWriteFailed(err error) {
	s.logger.Error(s.ctx, "failed to write to media stream", err)
	s.setState(StateDraining)
}

// Model leg

func (s *Session) handleAI(ev openai.ServerEvent) {
	if s.State() != StateActive {
		return
	}

	switch {
	case ev.IsAudioDelta():
		s.relayAssistantAudio(ev)
	case ev.Type == openai.EventSpeechStarted:
		s.bargeIn()
	case ev.Type == openai.EventSpeechStopped:
		// The only place a model response is requested for caller speech
		if s.sendAI(openai.InputAudioCommit()) {
			s.sendAI(openai.ResponseCreate(""))
		}
	case ev.Type == openai.EventFunctionCallArgsDone:
		s.dispatchTool(ev.CallID, ev.Name, ev.Arguments)
	case ev.Type == openai.EventResponseDone:
		for _, call := range ev.Response.FunctionCalls() {
			s.dispatchTool(call.CallID, call.Name, call.Arguments)
		}
		s.turns.ResponseDone()
	case ev.Type == openai.EventError:
		s.modelError(ev.Error)
	case ev.Type == openai.EventInputTranscriptDone:
		s.logger.Info(s.ctx, "caller: "+ev.Transcript)
	case ev.IsResponseTranscript():
		s.logger.Info(s.ctx, "agent: "+ev.Transcript)
	case ev.Type == openai.EventSessionCreated, ev.Type == openai.EventSessionUpdated:
		s.logger.Debug(s.ctx, ev.Type)
	}
}

func (s *Session) relayAssistantAudio(ev openai.ServerEvent) {
	if !s.turns.AssistantAudio(ev.ItemID) {
		return
	}
	if err := s.stream.SendMedia(s.streamSid, ev.Delta); err != nil {
		s.callerWriteFailed(err)
		return
	}
	s.outboundMs += audio.PayloadDurationMs(ev.Delta)

	if err := s.stream.SendMark(s.streamSid, markName); err != nil {
		s.callerWriteFailed(err)
		return
	}
	s.turns.MarkSent(markName)
}

// bargeIn cuts the assistant off when the caller starts talking over it
func (s *Session) bargeIn() {
	cut, ok := s.turns.Interrupt()
	if !ok {
		return
	}
	s.interruptions++
	s.logger.Debug(s.ctx, fmt.Sprintf("caller interrupted %s at %dms", cut.ItemID, cut.AudioEndMs))

	// Clear goes out first so the cut audio stops even if the model write fails
	if err := s.stream.SendClear(s.streamSid); err != nil {
		s.callerWriteFailed(err)
		return
	}
	s.sendAI(openai.ConversationItemTruncate(cut.ItemID, cut.AudioEndMs))
}

func (s *Session) modelError(detail *openai.ErrorDetail) {
	if detail == nil {
		return
	}
	if !detail.Fatal() {
		s.logger.Warn(s.ctx, fmt.Sprintf("speech AI error: %s", detail.Error()))
		return
	}
	s.logger.Error(s.ctx, "speech AI session failed", detail)
	s.refuse(KindAIConnection, MessageApology, detail)
}

// sendAI writes to the model and reports whether the write succeeded
func (s *Session) sendAI(event openai.ClientEvent) bool {
	if s.ai == nil {
		return false
	}
	if err := s.ai.Send(s.ctx, event); err != nil {
		s.aiFailed(err)
		return false
	}
	return true
}

// aiFailed handles a dropped model connection: reconnect once with a fresh
// session, otherwise apologise and end the call.
func (s *Session) aiFailed(err error) {
	if s.draining() {
		return
	}
	s.logger.Error(s.ctx, "speech AI connection lost", err)

	if _, playing := s.turns.ActiveItem(); playing {
		if clearErr := s.stream.SendClear(s.streamSid); clearErr != nil {
			s.callerWriteFailed(clearErr)
			return
		}
	}
	s.turns.Reset()

	if s.reconnects >= s.cfg.ReconnectAttempts {
		s.refuse(KindAIConnection, MessageApology, err)
		return
	}
	s.reconnects++
	if dialErr := s.dialAndConfigure(); dialErr != nil {
		s.logger.Error(s.ctx, "failed to reconnect speech AI", dialErr)
		s.refuse(KindAIConnection, MessageApology, errors.Join(err, dialErr))
		return
	}
	s.logger.Info(s.ctx, "speech AI reconnected")
}

// Tools

func (s *Session) dispatchTool(callID, name, arguments string) {
	// A call surfaces in both the arguments event and response.done
	if callID == "" || s.dispatched[callID] {
		return
	}
	s.dispatched[callID] = true
	s.toolCalls++

	if s.deps.Tools == nil {
		s.toolFinished(toolOutcome{callID: callID, name: name, result: capabilities.Result{
			Output: `{"error":"unknown_tool"}`,
			Err:    capabilities.ErrUnknownTool,
		}})
		return
	}

	call := s.callContext()
	ctx := observability.WithFields(context.WithoutCancel(s.ctx),
		observability.Field{Key: "tool_name", Value: name},
		observability.Field{Key: "tool_call_id", Value: callID},
	)
	go func() {
		result := s.deps.Tools.Dispatch(ctx, name, arguments, call)
		select {
		case s.events <- sessionEvent{kind: toolEvent, tool: toolOutcome{callID: callID, name: name, result: result}}:
		case <-s.closed:
		}
	}()
}

func (s *Session) toolFinished(out toolOutcome) {
	if s.State() != StateActive {
		s.logger.Debug(s.ctx, fmt.Sprintf("discarding result of %s after call ended", out.name))
		return
	}

	ctx := observability.WithFields(s.ctx,
		observability.Field{Key: "tool_name", Value: out.name},
		observability.Field{Key: "tool_call_id", Value: out.callID},
	)
	if out.result.Err != nil {
		s.logger.Warn(ctx, newError(KindToolDispatch, out.result.Err).Error())
	}
	s.logger.Metrics(ctx, observability.MetricField{Key: "tool_duration_ms", Value: out.result.Duration.Milliseconds()})

	if s.sendAI(openai.FunctionCallOutput(out.callID, out.result.Output)) {
		s.sendAI(openai.ResponseCreate(""))
	}
}
