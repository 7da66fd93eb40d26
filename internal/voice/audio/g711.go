// Package audio holds helpers for the G.711 mu-law frames carried on both
// legs of a call. Audio is relayed without transcoding.
package audio

import "encoding/base64"

// SampleRate of telephony mu-law audio, one byte per sample
const SampleRate = 8000

const bytesPerMillisecond = SampleRate / 1000

// PayloadDurationMs returns the playback length of a base64 mu-law payload
// without allocating the decoded buffer.
func PayloadDurationMs(payload string) int64 {
	n := base64.StdEncoding.DecodedLen(len(payload))
	for i := len(payload) - 1; i >= 0 && payload[i] == '='; i-- {
		n--
	}
	if n < 0 {
		return 0
	}
	return int64(n / bytesPerMillisecond)
}
