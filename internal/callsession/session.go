// Package callsession bridges one phone call to a realtime speech-AI
// session. Each call is an actor: the caller leg, the model leg and tool
// results all feed one ordered event channel drained by a single goroutine
// that owns every piece of call state.
package callsession

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"voice-bridge/internal/billing"
	billingProcessor "voice-bridge/internal/billing/processor"
	"voice-bridge/internal/callregistry"
	"voice-bridge/internal/capabilities"
	"voice-bridge/internal/clients/openai"
	"voice-bridge/internal/observability"
	"voice-bridge/internal/store"
	"voice-bridge/internal/voicecall/twilio"

	"github.com/google/uuid"
	oairealtime "github.com/openai/openai-go/v3/realtime"
	"golang.org/x/sync/errgroup"
)

// State is the lifecycle stage of a call
type State int32

const (
	StateResolving State = iota
	StateConfiguring
	StateActive
	StateDraining
	StateClosed
)

func (s State) String() string {
	switch s {
	case StateResolving:
		return "resolving"
	case StateConfiguring:
		return "configuring"
	case StateActive:
		return "active"
	case StateDraining:
		return "draining"
	case StateClosed:
		return "closed"
	default:
		return fmt.Sprintf("state(%d)", int32(s))
	}
}

// Factory builds sessions that share configuration and collaborators, and
// tracks the ones it serves so they can be ended on shutdown.
type Factory struct {
	cfg    Config
	deps   Dependencies
	logger *observability.Logger
	now    clock

	base    context.Context
	stop    context.CancelFunc
	mu      sync.Mutex
	closing bool
	live    int
	wg      sync.WaitGroup
}

func NewFactory(cfg Config, deps Dependencies, logger *observability.Logger) *Factory {
	defaults := DefaultConfig()
	if cfg.MaxPendingMarks <= 0 {
		cfg.MaxPendingMarks = defaults.MaxPendingMarks
	}
	if cfg.EventBuffer <= 0 {
		cfg.EventBuffer = defaults.EventBuffer
	}
	if cfg.ReconnectAttempts < 0 {
		cfg.ReconnectAttempts = 0
	}
	if cfg.DefaultInstructions == "" {
		cfg.DefaultInstructions = defaults.DefaultInstructions
	}
	if cfg.DefaultVoice == "" {
		cfg.DefaultVoice = defaults.DefaultVoice
	}
	if cfg.FinalizeTimeout <= 0 {
		cfg.FinalizeTimeout = defaults.FinalizeTimeout
	}
	base, stop := context.WithCancel(context.Background())
	return &Factory{cfg: cfg, deps: deps, logger: logger, now: time.Now, base: base, stop: stop}
}

// New creates a session for a freshly upgraded media stream
func (f *Factory) New(stream CallerStream) *Session {
	return &Session{
		id:         uuid.NewString(),
		cfg:        f.cfg,
		deps:       f.deps,
		logger:     f.logger,
		now:        f.now,
		stream:     stream,
		events:     make(chan sessionEvent, f.cfg.EventBuffer),
		closed:     make(chan struct{}),
		turns:      NewTurnController(f.cfg.MaxPendingMarks),
		dispatched: make(map[string]bool),
		status:     store.CallStatusFailed,
	}
}

// Serve runs a session for stream until the call is closed. The session
// also ends when the factory shuts down.
func (f *Factory) Serve(ctx context.Context, stream CallerStream) error {
	if !f.track() {
		_ = stream.Close()
		return ErrShuttingDown
	}
	defer f.untrack()

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	stopAfter := context.AfterFunc(f.base, cancel)
	defer stopAfter()

	return f.New(stream).Run(ctx)
}

func (f *Factory) track() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.closing {
		return false
	}
	f.live++
	f.wg.Add(1)
	return true
}

func (f *Factory) untrack() {
	f.mu.Lock()
	f.live--
	f.mu.Unlock()
	f.wg.Done()
}

// Live reports how many sessions are being served
func (f *Factory) Live() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.live
}

// Shutdown refuses new streams and ends every live session, waiting until
// each has closed and queued its billing or ctx is done.
func (f *Factory) Shutdown(ctx context.Context) error {
	f.mu.Lock()
	f.closing = true
	live := f.live
	f.mu.Unlock()

	f.logger.Info(ctx, fmt.Sprintf("ending %d live calls", live))
	f.stop()

	done := make(chan struct{})
	go func() {
		f.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return fmt.Errorf("failed to end %d live calls: %w", f.Live(), ctx.Err())
	}
}

type eventKind int

const (
	callerEvent eventKind = iota
	aiEvent
	toolEvent
)

type sessionEvent struct {
	kind   eventKind
	caller twilio.StreamEvent
	ai     openai.ServerEvent
	gen    int
	tool   toolOutcome
	err    error
}

type toolOutcome struct {
	callID string
	name   string
	result capabilities.Result
}

// Session is one call. Every field below state is owned by the goroutine
// running Run.
type Session struct {
	id     string
	cfg    Config
	deps   Dependencies
	logger *observability.Logger
	now    clock
	stream CallerStream

	state     atomic.Int32
	events    chan sessionEvent
	closed    chan struct{}
	ctx       context.Context
	group     *errgroup.Group
	readerCtx context.Context

	streamSid    string
	callSid      string
	dialedNumber string
	callerNumber string
	agent        store.Agent
	startedAt    time.Time
	endedAt      time.Time
	status       store.CallStatus
	failure      error

	ai           AIConn
	aiGen        int
	reconnects   int
	turns        *TurnController
	greetingSent bool
	dispatched   map[string]bool

	inboundMs     int64
	outboundMs    int64
	toolCalls     int
	interruptions int
}

// State reports the current lifecycle stage. It is safe to call from any
// goroutine.
func (s *Session) State() State {
	return State(s.state.Load())
}

func (s *Session) setState(state State) {
	if s.State() == state {
		return
	}
	s.logger.Debug(s.ctx, fmt.Sprintf("call state %s -> %s", s.State(), state))
	s.state.Store(int32(state))
}

func (s *Session) draining() bool {
	return s.State() >= StateDraining
}

// Run drives the call until both legs are closed. It returns nil when the
// call ended normally and an *Error when it was refused or cut short.
func (s *Session) Run(ctx context.Context) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	s.ctx = observability.WithFields(ctx, observability.Field{Key: "session_id", Value: s.id})
	group, readerCtx := errgroup.WithContext(ctx)
	s.group = group
	s.readerCtx = readerCtx

	logCtx := s.ctx
	group.Go(func() error {
		s.readCaller(readerCtx, logCtx)
		return nil
	})

	for !s.draining() {
		select {
		case ev := <-s.events:
			s.handle(ev)
		case <-ctx.Done():
			s.logger.Info(s.ctx, "call context cancelled")
			s.setState(StateDraining)
		}
	}

	// Closing both legs unblocks their readers
	if s.ai != nil {
		_ = s.ai.Close()
	}
	_ = s.stream.Close()
	cancel()
	_ = group.Wait()

	s.finish()
	return s.failure
}

func (s *Session) push(ctx context.Context, ev sessionEvent) bool {
	select {
	case s.events <- ev:
		return true
	case <-ctx.Done():
		return false
	}
}

func (s *Session) readCaller(ctx, logCtx context.Context) {
	for {
		ev, err := s.stream.ReadEvent()
		if errors.Is(err, twilio.ErrMalformedEvent) {
			s.logger.Warn(logCtx, err.Error())
			continue
		}
		if !s.push(ctx, sessionEvent{kind: callerEvent, caller: ev, err: err}) || err != nil {
			return
		}
	}
}

func (s *Session) readAI(ctx, logCtx context.Context, conn AIConn, gen int) {
	for {
		ev, err := conn.ReadEvent()
		if errors.Is(err, openai.ErrMalformedEvent) {
			s.logger.Warn(logCtx, err.Error())
			continue
		}
		if !s.push(ctx, sessionEvent{kind: aiEvent, ai: ev, gen: gen, err: err}) || err != nil {
			return
		}
	}
}

func (s *Session) handle(ev sessionEvent) {
	switch ev.kind {
	case callerEvent:
		if ev.err != nil {
			s.callerGone(ev.err)
			return
		}
		s.handleCaller(ev.caller)
	case aiEvent:
		if ev.gen != s.aiGen {
			// Left over from a connection that was replaced
			return
		}
		if ev.err != nil {
			s.aiFailed(ev.err)
			return
		}
		s.handleAI(ev.ai)
	case toolEvent:
		s.toolFinished(ev.tool)
	}
}

// begin runs Resolving and Configuring for the start event
func (s *Session) begin(start *twilio.StartPayload, streamSid string) {
	if start == nil {
		s.failure = ErrInvalidStreamRequest
		s.setState(StateDraining)
		return
	}

	s.streamSid = start.StreamSid
	if s.streamSid == "" {
		s.streamSid = streamSid
	}
	s.callSid = start.CallSid
	s.dialedNumber = start.CustomParameters["dialed_number"]
	s.callerNumber = start.CustomParameters["caller_number"]
	s.startedAt = s.now()
	s.ctx = observability.WithFields(s.ctx,
		observability.Field{Key: "call_sid", Value: s.callSid},
		observability.Field{Key: "stream_sid", Value: s.streamSid},
	)
	s.logger.Info(s.ctx, "media stream started")

	if s.deps.Tokens != nil {
		claims, err := s.deps.Tokens.Verify(start.CustomParameters["token"])
		if err == nil && claims.CallSid() != s.callSid {
			err = fmt.Errorf("token minted for call %s", claims.CallSid())
		}
		if err != nil {
			s.logger.Warn(s.ctx, fmt.Sprintf("rejecting stream: %v", err))
			s.refuse(KindAgentNotFound, MessageAgentNotFound, fmt.Errorf("%w: %v", ErrInvalidStreamRequest, err))
			return
		}
		if s.dialedNumber == "" {
			s.dialedNumber = claims.DialedNumber
		}
		if s.callerNumber == "" {
			s.callerNumber = claims.CallerNumber
		}
	}

	if !s.resolveAgent() || !s.checkBalance() {
		return
	}

	s.setState(StateConfiguring)
	if err := s.connectAI(); err != nil {
		s.logger.Error(s.ctx, "failed to open speech AI session", err)
		s.refuse(KindAIConnection, MessageApology, err)
		return
	}
	s.activate()
}

func (s *Session) resolveAgent() bool {
	if s.dialedNumber == "" {
		s.refuse(KindAgentNotFound, MessageAgentNotFound, errors.New("start event has no dialed number"))
		return false
	}

	agent, err := s.deps.Agents.GetAgentByPhoneNumber(s.ctx, s.dialedNumber)
	if errors.Is(err, store.ErrNotFound) {
		s.logger.Info(s.ctx, fmt.Sprintf("no agent configured on %s", s.dialedNumber))
		s.refuse(KindAgentNotFound, MessageAgentNotFound, err)
		return false
	}
	if err != nil {
		s.logger.Error(s.ctx, "failed to resolve agent", err)
		s.say(MessageApology)
		s.failure = fmt.Errorf("failed to resolve agent: %w", err)
		s.setState(StateDraining)
		return false
	}

	s.agent = agent
	s.ctx = observability.WithFields(s.ctx,
		observability.Field{Key: "account_id", Value: agent.AccountID},
		observability.Field{Key: "agent_id", Value: agent.ID},
	)
	return true
}

func (s *Session) checkBalance() bool {
	_, err := s.deps.Billing.CheckBalance(s.ctx, s.agent.AccountID)
	if err == nil {
		return true
	}
	if errors.Is(err, billingProcessor.ErrInsufficientBalance) {
		s.status = store.CallStatusDeclined
	} else {
		// An unknown balance cannot be charged, so the call is not taken
		s.logger.Error(s.ctx, "failed to check balance", err)
	}
	s.refuse(KindInsufficientBalance, MessageDeclined, err)
	return false
}

// connectAI dials the model, retrying within the reconnect budget
func (s *Session) connectAI() error {
	err := s.dialAndConfigure()
	for err != nil && s.reconnects < s.cfg.ReconnectAttempts {
		s.reconnects++
		s.logger.Warn(s.ctx, fmt.Sprintf("retrying speech AI connection: %v", err))
		err = s.dialAndConfigure()
	}
	return err
}

func (s *Session) dialAndConfigure() error {
	conn, err := s.deps.Dialer.Dial(s.ctx)
	if err != nil {
		return fmt.Errorf("failed to dial speech AI: %w", err)
	}
	if err := conn.Send(s.ctx, openai.SessionUpdate(s.sessionConfig())); err != nil {
		_ = conn.Close()
		return fmt.Errorf("failed to configure speech AI session: %w", err)
	}

	if s.ai != nil {
		_ = s.ai.Close()
	}
	s.ai = conn
	s.aiGen++
	gen := s.aiGen
	logCtx := s.ctx
	s.group.Go(func() error {
		s.readAI(s.readerCtx, logCtx, conn, gen)
		return nil
	})
	return nil
}

func (s *Session) sessionConfig() oairealtime.RealtimeSessionCreateRequestParam {
	session := openai.PhoneSession{
		Instructions:       s.agent.SystemPrompt,
		Voice:              s.agent.Voice,
		VADThreshold:       s.cfg.VADThreshold,
		PrefixPaddingMs:    s.cfg.PrefixPaddingMs,
		SilenceDurationMs:  s.cfg.SilenceDurationMs,
		TranscriptionModel: s.cfg.TranscriptionModel,
	}
	if session.Instructions == "" {
		session.Instructions = s.cfg.DefaultInstructions
	}
	if session.Voice == "" {
		session.Voice = s.cfg.DefaultVoice
	}
	if s.deps.Tools != nil && len(s.agent.Tools) > 0 {
		session.Tools = s.deps.Tools.Definitions(s.agent.Tools)
	}
	return session.Params()
}

func (s *Session) activate() {
	s.setState(StateActive)
	s.status = store.CallStatusCompleted

	if s.deps.Registry != nil {
		err := s.deps.Registry.Register(s.ctx, callregistry.Entry{
			CallSid:   s.callSid,
			StreamSid: s.streamSid,
			AccountID: s.agent.AccountID.String(),
			AgentID:   s.agent.ID.String(),
			StartedAt: s.startedAt,
		})
		if err != nil {
			s.logger.Error(s.ctx, "failed to register live call", err)
		}
	}

	s.logger.Info(s.ctx, "call active")
	s.greet()
}

// greet asks for the opening line exactly once per call
func (s *Session) greet() {
	if s.greetingSent {
		return
	}
	s.greetingSent = true

	instructions := ""
	if s.agent.FirstMessage != "" {
		instructions = "Greet the caller by saying exactly this: " + s.agent.FirstMessage
	}
	s.sendAI(openai.ResponseCreate(instructions))
}

// refuse speaks a fixed message, records the failure and starts draining
func (s *Session) refuse(kind Kind, message string, cause error) {
	s.say(message)
	s.failure = newError(kind, cause)
	s.setState(StateDraining)
}

// say speaks over the call itself, outside the media stream, then hangs up
func (s *Session) say(message string) {
	if s.deps.Control == nil || s.callSid == "" {
		return
	}
	if err := s.deps.Control.SayAndHangup(context.WithoutCancel(s.ctx), s.callSid, message); err != nil {
		s.logger.Error(s.ctx, "failed to speak to caller", err)
	}
}

// finish is the Closed transition: release the call and hand it to billing
func (s *Session) finish() {
	s.endedAt = s.now()
	s.setState(StateClosed)
	close(s.closed)

	ctx := context.WithoutCancel(s.ctx)
	if s.status == store.CallStatusCompleted && s.deps.Registry != nil {
		if err := s.deps.Registry.Unregister(ctx, s.callSid, s.agent.AccountID.String()); err != nil {
			s.logger.Error(ctx, "failed to unregister live call", err)
		}
	}
	if s.status == store.CallStatusDeclined && s.deps.Billing != nil {
		if err := s.deps.Billing.NotifyDeclined(ctx, s.agent, s.callSid); err != nil {
			s.logger.Error(ctx, "failed to notify account of declined call", err)
		}
	}

	rec := s.record()
	if s.agent.ID != uuid.Nil && s.deps.Finalizer != nil {
		submitCtx, cancel := context.WithTimeout(ctx, s.cfg.FinalizeTimeout)
		err := s.deps.Finalizer.Submit(submitCtx, rec)
		cancel()
		if err != nil {
			// Teardown never waits on billing
			s.logger.Error(ctx, "failed to queue call finalization", newError(KindBillingFinalization, err))
		}
	}

	s.logger.Metrics(ctx,
		observability.MetricField{Key: "call_status", Value: string(s.status)},
		observability.MetricField{Key: "call_duration_seconds", Value: rec.DurationSeconds()},
		observability.MetricField{Key: "inbound_audio_ms", Value: s.inboundMs},
		observability.MetricField{Key: "outbound_audio_ms", Value: s.outboundMs},
		observability.MetricField{Key: "tool_calls", Value: s.toolCalls},
		observability.MetricField{Key: "interruptions", Value: s.interruptions},
		observability.MetricField{Key: "ai_reconnects", Value: s.reconnects},
	)
	s.logger.Info(ctx, "call closed")
}

// record summarises the call for billing
func (s *Session) record() billing.CallRecord {
	return billing.CallRecord{
		CallSid:         s.callSid,
		StreamSid:       s.streamSid,
		AccountID:       s.agent.AccountID,
		AgentID:         s.agent.ID,
		StartedAt:       s.startedAt,
		EndedAt:         s.endedAt,
		InboundAudioMs:  s.inboundMs,
		OutboundAudioMs: s.outboundMs,
		ToolCalls:       s.toolCalls,
		Interruptions:   s.interruptions,
		Status:          s.status,
	}
}

func (s *Session) callContext() capabilities.CallContext {
	return capabilities.CallContext{
		AccountID:    s.agent.AccountID,
		AgentID:      s.agent.ID,
		AgentName:    s.agent.Name,
		CallSid:      s.callSid,
		DialedNumber: s.dialedNumber,
		CallerNumber: s.callerNumber,
		CalendarID:   s.agent.CalendarID,
		Timezone:     s.agent.Timezone,
		NotifyEmail:  s.agent.NotifyEmail,
	}
}
