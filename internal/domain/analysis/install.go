package analysis

import (
	"github.com/rios0rios0/readmegen/internal/domain/entities"
)

// GenerateInstallCommand picks the install instruction of the first detected ecosystem.
func GenerateInstallCommand(profile *entities.StructureProfile) string {
	switch {
	case profile.HasPackageJSON:
		return profile.PackageManager + " install"
	case profile.HasRequirementsTxt:
		return "pip install -r requirements.txt"
	case profile.HasCargoToml:
		return "cargo build"
	case profile.HasGoMod:
		return "go mod download"
	default:
		return "git clone <repository-url>"
	}
}
