package entities

import (
	"fmt"
	"regexp"
	"strings"
)

// RepositoryHost is the only hosting domain a reference may point to.
const RepositoryHost = "github.com"

var referencePattern = regexp.MustCompile(
	`^https?://(?:www\.)?` + regexp.QuoteMeta(RepositoryHost) + `/([^/?#]+)/([^/?#]+)(?:[/?#].*)?$`,
)

// RepositoryReference identifies a repository on the hosting service.
type RepositoryReference struct {
	Owner string
	Name  string
}

// ParseRepositoryReference extracts the owner/name pair from a repository URL
// such as https://github.com/owner/repo.git/tree/main. It never touches the network.
func ParseRepositoryReference(raw string) (RepositoryReference, error) {
	trimmed := strings.TrimSpace(raw)
	match := referencePattern.FindStringSubmatch(trimmed)
	if match == nil {
		return RepositoryReference{}, fmt.Errorf("%w: %q", ErrInvalidReference, raw)
	}

	name := strings.TrimSuffix(match[2], ".git")
	if name == "" {
		return RepositoryReference{}, fmt.Errorf("%w: %q", ErrInvalidReference, raw)
	}

	return RepositoryReference{Owner: match[1], Name: name}, nil
}

// String returns the owner/name path.
func (r RepositoryReference) String() string {
	return r.Owner + "/" + r.Name
}
