package game

import (
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// gameLog is the sub-logger for the game module; every entry carries
// module=game so ride events are easy to filter.
var gameLog zerolog.Logger = log.With().Str("module", "game").Logger()
