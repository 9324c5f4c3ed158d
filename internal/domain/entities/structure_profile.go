package entities

// DefaultPackageManager is assumed until a lockfile says otherwise.
const DefaultPackageManager = "npm"

// StructureProfile summarizes the root listing of a repository.
// Presence flags only ever go from false to true while the profile is built.
type StructureProfile struct {
	HasPackageJSON     bool
	HasRequirementsTxt bool
	HasCargoToml       bool
	HasGoMod           bool
	HasDockerfile      bool
	HasTerraform       bool

	HasSrcFolder  bool
	HasTestFolder bool
	HasDocsFolder bool

	PackageManager string
	Frameworks     []string
}

// NewStructureProfile returns an empty profile with the default package manager.
func NewStructureProfile() *StructureProfile {
	return &StructureProfile{
		PackageManager: DefaultPackageManager,
		Frameworks:     []string{},
	}
}

// HasFramework reports whether the given framework name was detected.
func (p *StructureProfile) HasFramework(name string) bool {
	for _, framework := range p.Frameworks {
		if framework == name {
			return true
		}
	}
	return false
}
