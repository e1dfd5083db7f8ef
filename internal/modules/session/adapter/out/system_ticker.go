package out

import (
	"time"

	sessionout "focusforge/internal/modules/session/port/out"
)

type SystemTickerFactory struct{}

func NewSystemTickerFactory() sessionout.TickerFactory {
	return SystemTickerFactory{}
}

func (SystemTickerFactory) NewTicker() sessionout.TickSource {
	return &systemTicker{ticker: time.NewTicker(time.Second)}
}

type systemTicker struct {
	ticker *time.Ticker
}

func (t *systemTicker) C() <-chan time.Time {
	return t.ticker.C
}

func (t *systemTicker) Stop() {
	t.ticker.Stop()
}
