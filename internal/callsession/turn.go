package callsession

// Truncation tells the model how much of an utterance the caller heard
type Truncation struct {
	ItemID     string
	AudioEndMs int64
}

// TurnController tracks assistant playback against the caller's audio
// clock so a barge-in can cut the model's utterance where the caller
// stopped listening.
type TurnController struct {
	latestCallerMs int64
	activeItemID   string
	startMs        int64
	responseDone   bool
	truncated      map[string]struct{}
	acks           *AckQueue
}

func NewTurnController(ackLimit int) *TurnController {
	return &TurnController{
		truncated: make(map[string]struct{}),
		acks:      NewAckQueue(ackLimit),
	}
}

// ObserveCallerAudio advances the caller clock. It never moves backwards.
func (t *TurnController) ObserveCallerAudio(timestampMs int64) {
	if timestampMs > t.latestCallerMs {
		t.latestCallerMs = timestampMs
	}
}

func (t *TurnController) LatestCallerMs() int64 {
	return t.latestCallerMs
}

// ActiveItem returns the utterance currently playing, if any
func (t *TurnController) ActiveItem() (string, bool) {
	return t.activeItemID, t.activeItemID != ""
}

// AssistantAudio registers an audio chunk for itemID and reports whether it
// should be forwarded. Chunks of a truncated utterance are dropped.
func (t *TurnController) AssistantAudio(itemID string) bool {
	if _, cut := t.truncated[itemID]; cut {
		return false
	}
	if itemID != t.activeItemID {
		t.activeItemID = itemID
		t.startMs = t.latestCallerMs
		t.responseDone = false
	}
	return true
}

// Interrupt truncates the active utterance. The second call for the same
// state is a no-op.
func (t *TurnController) Interrupt() (Truncation, bool) {
	if t.activeItemID == "" {
		return Truncation{}, false
	}
	elapsed := t.latestCallerMs - t.startMs
	if elapsed < 0 {
		elapsed = 0
	}
	cut := Truncation{ItemID: t.activeItemID, AudioEndMs: elapsed}
	t.truncated[t.activeItemID] = struct{}{}
	t.clearActive()
	return cut, true
}

// MarkSent records a playback mark sent after an audio chunk
func (t *TurnController) MarkSent(name string) {
	t.acks.Push(name)
}

// MarkPlayed consumes one playback ack. Once the model finished the
// response and every chunk has played, the utterance is no longer active.
func (t *TurnController) MarkPlayed() {
	t.acks.Pop()
	if t.responseDone && t.acks.Len() == 0 {
		t.clearActive()
	}
}

// ResponseDone notes that the model sent the last chunk of the response
func (t *TurnController) ResponseDone() {
	if t.activeItemID == "" {
		return
	}
	t.responseDone = true
	if t.acks.Len() == 0 {
		t.clearActive()
	}
}

// PendingAcks is the number of marks not yet acknowledged
func (t *TurnController) PendingAcks() int {
	return t.acks.Len()
}

// Reset forgets the active utterance, used when the model connection is
// replaced.
func (t *TurnController) Reset() {
	t.clearActive()
}

func (t *TurnController) clearActive() {
	t.activeItemID = ""
	t.startMs = 0
	t.responseDone = false
	t.acks.Clear()
}
