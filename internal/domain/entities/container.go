package entities

import (
	"go.uber.org/dig"
)

// RegisterProviders registers all entity providers with the DIG container.
func RegisterProviders(container *dig.Container) error {
	// Settings depend on the --config flag, so controllers load them at execution time.
	return container.Provide(NewRecordCodec)
}
