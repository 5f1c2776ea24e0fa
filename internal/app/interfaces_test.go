package app

import "balloon-tower-defense/internal/interfaces"

var _ interfaces.Game = (*Game)(nil)
