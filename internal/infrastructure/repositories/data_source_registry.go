package repositories

import (
	"fmt"
	"sort"

	"github.com/rios0rios0/readmegen/internal/domain/entities"
	domainRepos "github.com/rios0rios0/readmegen/internal/domain/repositories"
)

// DataSourceFactory is a constructor function that creates a DataSourceRepository from the settings.
type DataSourceFactory func(settings *entities.Settings) (domainRepos.DataSourceRepository, error)

// DataSourceRegistry manages all registered hosting API implementations.
type DataSourceRegistry struct {
	factories map[string]DataSourceFactory
}

// NewDataSourceRegistry creates an empty data source registry.
func NewDataSourceRegistry() *DataSourceRegistry {
	return &DataSourceRegistry{
		factories: make(map[string]DataSourceFactory),
	}
}

// Register adds a data source factory under the given name (e.g. "github").
func (r *DataSourceRegistry) Register(name string, factory DataSourceFactory) {
	r.factories[name] = factory
}

// Get returns a configured data source for the given name.
func (r *DataSourceRegistry) Get(
	name string,
	settings *entities.Settings,
) (domainRepos.DataSourceRepository, error) {
	factory, ok := r.factories[name]
	if !ok {
		return nil, fmt.Errorf("unknown data source: %q (registered: %v)", name, r.Names())
	}
	return factory(settings)
}

// Names returns the sorted list of registered data source names.
func (r *DataSourceRegistry) Names() []string {
	names := make([]string, 0, len(r.factories))
	for name := range r.factories {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
