// Package synthesis provides speech synthesis infrastructure and Fx modules.
package synthesis

import (
	"go.uber.org/fx"
)

// Module provides synthesis service dependencies.
var Module = fx.Module("synthesis",
	fx.Provide(
		NewOpenAIProvider,
		NewService,
	),
)
