package chime

import (
	"context"

	"github.com/hammamikhairi/timebar/internal/domain"
	"github.com/hammamikhairi/timebar/internal/logger"
)

// Compile-time interface checks.
var (
	_ domain.Notifier = (*Notifier)(nil)
	_ domain.Notifier = (*NoOp)(nil)
)

// Notifier rings the chime for every completed timer.
type Notifier struct {
	player *Player
	pcm    []byte
	log    *logger.Logger
}

// NewNotifier prepares the tone once and plays it on each notice.
func NewNotifier(player *Player, log *logger.Logger) *Notifier {
	return &Notifier{
		player: player,
		pcm:    Synthesize(DefaultChime, 0.4),
		log:    log,
	}
}

// Notify plays the chime. Blocks for the length of the tone.
func (n *Notifier) Notify(ctx context.Context, timer domain.Timer) error {
	n.log.Debug("chime: %s", timer.Name)
	return n.player.Play(ctx, n.pcm)
}

// NoOp is a notifier that only logs. Used when audio is disabled or the
// device could not be opened.
type NoOp struct {
	log *logger.Logger
}

// NewNoOp creates a silent notifier.
func NewNoOp(log *logger.Logger) *NoOp {
	return &NoOp{log: log}
}

// Notify does nothing beyond a debug line.
func (n *NoOp) Notify(ctx context.Context, timer domain.Timer) error {
	n.log.Debug("chime disabled: would ring for %q", timer.Name)
	return nil
}
