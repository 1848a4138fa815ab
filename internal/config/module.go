package config

import "go.uber.org/fx"

// Module provides parsed application configuration to the fx graph.
var Module = fx.Provide(Load)
