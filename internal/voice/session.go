package voice

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
)

// Recognizer is the boundary to the external speech engine. One call is
// one recording session: it blocks until the engine delivers a single
// final transcript, the context is cancelled, or the session fails with
// a reason.
type Recognizer interface {
	Recognize(ctx context.Context) (transcript string, err error)
}

// ReasonError carries the engine's failure reason string.
type ReasonError struct {
	Reason string
}

func (e *ReasonError) Error() string {
	return fmt.Sprintf("recognition failed: %s", e.Reason)
}

// Reasons reported by speech engines that map to user-facing messages.
const (
	ReasonNoSpeech          = "no-speech"
	ReasonNotAllowed        = "not-allowed"
	ReasonServiceNotAllowed = "service-not-allowed"
	ReasonNetwork           = "network"
)

var reasonMessages = map[string]string{
	ReasonNotAllowed:        "麦克风权限被拦截，请在系统设置中开启录音权限",
	ReasonServiceNotAllowed: "系统安全策略拦截了语音请求，请使用安全环境（HTTPS）",
	ReasonNetwork:           "识别失败：语音识别需要联网调用系统语音引擎",
}

// ReasonMessage maps a failure reason to its user-facing message.
// no-speech and unknown reasons return ok=false: the former is silently
// ignored, the latter is logged only.
func ReasonMessage(reason string) (string, bool) {
	msg, ok := reasonMessages[reason]
	return msg, ok
}

// Coordinator serializes recognition sessions: starting a new one stops
// any session still in flight (last writer wins, nothing is queued).
type Coordinator struct {
	rec Recognizer

	mu     sync.Mutex
	cancel context.CancelFunc
}

func NewCoordinator(rec Recognizer) *Coordinator {
	return &Coordinator{rec: rec}
}

// Listen runs one recognition session and returns the final transcript.
// A no-speech session yields an empty transcript and no error. Failures
// with a known reason come back as an error carrying the user-facing
// message; unknown reasons are logged and swallowed. There are no
// retries; the caller may start a new session manually.
func (c *Coordinator) Listen(ctx context.Context) (string, error) {
	c.mu.Lock()
	if c.cancel != nil {
		c.cancel()
	}
	sctx, cancel := context.WithCancel(ctx)
	c.cancel = cancel
	c.mu.Unlock()
	defer cancel()

	transcript, err := c.rec.Recognize(sctx)
	if err == nil {
		return transcript, nil
	}
	var re *ReasonError
	if !errors.As(err, &re) {
		return "", fmt.Errorf("recognition session: %w", err)
	}
	if re.Reason == ReasonNoSpeech {
		slog.DebugContext(ctx, "No speech detected")
		return "", nil
	}
	if msg, ok := ReasonMessage(re.Reason); ok {
		return "", fmt.Errorf("%s: %w", msg, re)
	}
	slog.WarnContext(ctx, "Recognition ended with unknown reason", "reason", re.Reason)
	return "", nil
}

// Stop cancels the in-flight session, if any.
func (c *Coordinator) Stop() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.cancel != nil {
		c.cancel()
		c.cancel = nil
	}
}
