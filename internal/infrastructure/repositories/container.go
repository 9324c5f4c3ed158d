package repositories

import (
	ghRepo "github.com/rios0rios0/readmegen/internal/infrastructure/repositories/github"
	"go.uber.org/dig"
)

// RegisterProviders registers all repository providers with the DIG container.
func RegisterProviders(container *dig.Container) error {
	return container.Provide(func() *DataSourceRegistry {
		reg := NewDataSourceRegistry()
		reg.Register("github", ghRepo.NewDataSourceRepository)
		return reg
	})
}
