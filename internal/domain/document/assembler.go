// Package document renders project records into README documents.
package document

import (
	"fmt"
	"strings"

	"github.com/rios0rios0/readmegen/internal/domain/entities"
)

const githubPrefix = "https://github.com/"

// Assemble renders a project record as a Markdown README. The output depends
// only on the record, so equal records give byte-identical documents.
func Assemble(record entities.ProjectRecord) string {
	var b strings.Builder

	writeHeader(&b, record)
	writeBadges(&b, record)
	b.WriteString(record.Description + "\n\n")
	writeQuickStart(&b, record)
	writeList(&b, "## ✨ Features", record.Features, "- **%s**\n")
	writeList(&b, "## 🛠 Technology Stack", record.TechStack, "- %s\n")
	b.WriteString(categorySection(record))
	writeContributing(&b)
	writeLicense(&b, record)
	writeSupport(&b, record)
	writeAcknowledgments(&b)

	return b.String()
}

func writeHeader(b *strings.Builder, record entities.ProjectRecord) {
	b.WriteString("# " + record.Title + "\n")
	if record.Tagline != "" {
		b.WriteString(record.Tagline + "\n\n")
	}
}

func writeBadges(b *strings.Builder, record entities.ProjectRecord) {
	if record.GitHubURL == "" {
		return
	}

	url := record.GitHubURL
	repoPath := strings.Replace(url, githubPrefix, "", 1)

	fmt.Fprintf(b, "[![Build Status](https://github.com/%s/workflows/CI/badge.svg)](%s/actions) ", repoPath, url)
	if record.License != "" {
		fmt.Fprintf(b,
			"[![License](https://img.shields.io/badge/license-%s-blue.svg)](%s/blob/main/LICENSE) ",
			record.License, url,
		)
	}
	fmt.Fprintf(b, "[![GitHub stars](https://img.shields.io/github/stars/%s.svg)](%s/stargazers)\n\n", repoPath, url)
}

func writeQuickStart(b *strings.Builder, record entities.ProjectRecord) {
	b.WriteString("## 🚀 Quick Start\n\n")
	if record.DemoURL != "" {
		b.WriteString("### Live Demo\n")
		b.WriteString("[**Try it now →**](" + record.DemoURL + ")\n\n")
	}

	if len(record.Prerequisites) > 0 {
		b.WriteString("### Prerequisites\n")
		for _, prerequisite := range record.Prerequisites {
			b.WriteString("- " + prerequisite + "\n")
		}
		b.WriteString("\n")
	}

	if record.InstallCommand != "" {
		b.WriteString("### Installation\n")
		b.WriteString("```bash\n" + record.InstallCommand + "\n```\n\n")
	}

	if record.UsageExample != "" {
		b.WriteString("### Basic Usage\n")
		b.WriteString("```" + DetectLanguage(record.UsageExample) + "\n" + record.UsageExample + "\n```\n\n")
	}
}

func writeList(b *strings.Builder, heading string, items []string, format string) {
	if len(items) == 0 {
		return
	}
	b.WriteString(heading + "\n\n")
	for _, item := range items {
		fmt.Fprintf(b, format, item)
	}
	b.WriteString("\n")
}

func writeContributing(b *strings.Builder) {
	b.WriteString("## 🤝 Contributing\n\n")
	b.WriteString("Contributions are welcome! Please feel free to submit a Pull Request.\n\n")
	b.WriteString("1. Fork the project\n")
	b.WriteString("2. Create your feature branch (`git checkout -b feature/AmazingFeature`)\n")
	b.WriteString("3. Commit your changes (`git commit -m 'Add some AmazingFeature'`)\n")
	b.WriteString("4. Push to the branch (`git push origin feature/AmazingFeature`)\n")
	b.WriteString("5. Open a Pull Request\n\n")
}

func writeLicense(b *strings.Builder, record entities.ProjectRecord) {
	if record.License == "" {
		return
	}
	b.WriteString("## 📄 License\n\n")
	b.WriteString("This project is licensed under the " + record.License +
		" License - see the [LICENSE](LICENSE) file for details.\n\n")
}

func writeSupport(b *strings.Builder, record entities.ProjectRecord) {
	b.WriteString("## 💬 Support\n\n")
	if record.GitHubURL != "" {
		b.WriteString("- 📫 [Create an issue](" + record.GitHubURL + "/issues) for bug reports or feature requests\n")
	}
	b.WriteString("- ⭐ Star this repository if you find it helpful\n")
	b.WriteString("- 🐦 Follow us for updates\n\n")
}

func writeAcknowledgments(b *strings.Builder) {
	b.WriteString("## 🙏 Acknowledgments\n\n")
	b.WriteString("- Thanks to all contributors who have helped improve this project\n")
	b.WriteString("- Inspired by the open source community\n")
}
