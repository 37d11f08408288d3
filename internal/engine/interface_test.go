package engine_test

import (
	"github.com/dshills/voicenav/internal/engine"
	"github.com/dshills/voicenav/internal/nav"
)

var (
	_ nav.Editor      = (*engine.Editor)(nil)
	_ nav.ReadyWaiter = (*engine.Editor)(nil)
)
