package analysis

import (
	"context"

	"github.com/BurntSushi/toml"
	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/hclparse"
	logger "github.com/sirupsen/logrus"
	"github.com/zclconf/go-cty/cty"
	"golang.org/x/mod/modfile"

	"github.com/rios0rios0/readmegen/internal/domain/entities"
	"github.com/rios0rios0/readmegen/internal/domain/repositories"
)

var terraformFiles = []string{"versions.tf", "main.tf"}

// cargoManifest is the subset of Cargo.toml the analysis reads.
type cargoManifest struct {
	Package struct {
		RustVersion string `toml:"rust-version"`
	} `toml:"package"`
}

// ExtractPrerequisites reads the toolchain constraints declared by the
// detected manifests. Unreadable or malformed manifests are skipped.
func ExtractPrerequisites(
	ctx context.Context,
	source repositories.DataSourceRepository,
	ref entities.RepositoryReference,
	profile *entities.StructureProfile,
) []string {
	prerequisites := []string{}

	if profile.HasPackageJSON {
		if content, ok := source.FetchFileContent(ctx, ref, packageManifest); ok {
			if node := NodeEngine(content); node != "" {
				prerequisites = append(prerequisites, "Node.js "+node)
			}
		}
	}
	if profile.HasGoMod {
		if content, ok := source.FetchFileContent(ctx, ref, "go.mod"); ok {
			if version := GoVersion(content); version != "" {
				prerequisites = append(prerequisites, "Go "+version+" or later")
			}
		}
	}
	if profile.HasCargoToml {
		if content, ok := source.FetchFileContent(ctx, ref, "Cargo.toml"); ok {
			if version := RustVersion(content); version != "" {
				prerequisites = append(prerequisites, "Rust "+version+" or later")
			}
		}
	}
	if profile.HasTerraform {
		for _, filename := range terraformFiles {
			content, ok := source.FetchFileContent(ctx, ref, filename)
			if !ok {
				continue
			}
			if constraint := TerraformVersion(content, filename); constraint != "" {
				prerequisites = append(prerequisites, "Terraform "+constraint)
				break
			}
		}
	}

	return prerequisites
}

// NodeEngine returns the engines.node range of a package.json.
func NodeEngine(content string) string {
	manifest, err := parsePackageManifest(content)
	if err != nil {
		logger.Debugf("[analyze] %v", err)
		return ""
	}
	engines, ok := manifest.Engines.(map[string]any)
	if !ok {
		return ""
	}
	node, _ := engines["node"].(string)
	return node
}

// GoVersion returns the go directive of a go.mod file.
func GoVersion(content string) string {
	file, err := modfile.ParseLax("go.mod", []byte(content), nil)
	if err != nil {
		logger.Debugf("[analyze] Failed to parse go.mod: %v", err)
		return ""
	}
	if file.Go == nil {
		return ""
	}
	return file.Go.Version
}

// RustVersion returns package.rust-version of a Cargo.toml file.
func RustVersion(content string) string {
	var manifest cargoManifest
	if _, err := toml.Decode(content, &manifest); err != nil {
		logger.Debugf("[analyze] Failed to parse Cargo.toml: %v", err)
		return ""
	}
	return manifest.Package.RustVersion
}

// TerraformVersion returns the required_version of the terraform block.
func TerraformVersion(content, filename string) string {
	parser := hclparse.NewParser()

	file, diags := parser.ParseHCL([]byte(content), filename)
	if diags.HasErrors() || file.Body == nil {
		return ""
	}

	bodyContent, _, partialDiags := file.Body.PartialContent(&hcl.BodySchema{
		Blocks: []hcl.BlockHeaderSchema{{Type: "terraform"}},
	})
	if partialDiags.HasErrors() {
		return ""
	}

	for _, block := range bodyContent.Blocks {
		attrContent, _, attrDiags := block.Body.PartialContent(&hcl.BodySchema{
			Attributes: []hcl.AttributeSchema{{Name: "required_version"}},
		})
		if attrDiags.HasErrors() {
			continue
		}

		attr, ok := attrContent.Attributes["required_version"]
		if !ok {
			continue
		}

		value, valueDiags := attr.Expr.Value(&hcl.EvalContext{})
		if valueDiags.HasErrors() || value.IsNull() || !value.IsKnown() || value.Type() != cty.String {
			continue
		}
		return value.AsString()
	}

	return ""
}
