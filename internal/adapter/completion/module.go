package completion

import (
	"log/slog"

	"go.uber.org/fx"

	"github.com/vporoshin/solace/internal/config"
)

// Module exposes completion client implementation to fx graph.
var Module = fx.Provide(newClient)

type clientParams struct {
	fx.In

	Config *config.Config
	Logger *slog.Logger
}

func newClient(p clientParams) (Client, error) {
	return NewOpenAIClient(Config{
		BaseURL: p.Config.CompletionAddress,
		APIKey:  p.Config.CompletionAPIKey,
		Model:   p.Config.CompletionModel,
		Timeout: p.Config.CompletionTimeout,
	}, p.Logger)
}
