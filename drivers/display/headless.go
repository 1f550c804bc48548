package display

import (
	"context"
	"fmt"
	"time"

	"github.com/AntonioND/nds-rtt-example/hw/keypad"
)

// HeadlessConfig controls the runner without a window.
type HeadlessConfig struct {
	Hz     int        // steps per second, 0 runs as fast as possible
	Frames uint64     // stop after this many steps, 0 runs until ctx is done
	Hold   keypad.Key // keys held during the whole run
}

// RunHeadless calls step repeatedly with the keys in cfg.Hold pressed.
func RunHeadless(ctx context.Context, cfg HeadlessConfig, keys *keypad.Register, step func() error) error {
	if cfg.Hz < 0 {
		return fmt.Errorf("invalid headless hz: %d", cfg.Hz)
	}
	var tick <-chan time.Time
	if cfg.Hz > 0 {
		t := time.NewTicker(time.Second / time.Duration(cfg.Hz))
		defer t.Stop()
		tick = t.C
	}

	keys.Set(cfg.Hold)
	for n := uint64(0); cfg.Frames == 0 || n < cfg.Frames; n++ {
		if err := ctx.Err(); err != nil {
			return err
		}
		if tick != nil {
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-tick:
			}
		}
		if err := step(); err != nil {
			return err
		}
	}
	return nil
}
