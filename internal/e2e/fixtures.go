package e2e

import "github.com/klauern/labelsync/internal/label"

// standardManifest is a typical triage label set in YAML form.
const standardManifest = `labels:
  - name: bug
    color: d73a4a
    description: Something isn't working
  - name: enhancement
    color: a2eeef
    description: New feature or request
  - name: documentation
    color: "0075ca"
    description: Improvements or additions to documentation
`

// renameManifest migrates legacy names through aliases.
const renameManifest = `labels:
  - name: bug
    color: d73a4a
    aliases:
      - defect
      - broken
  - name: enhancement
    color: a2eeef
    aliases:
      - feature-request
`

// declarativeManifest keeps only the desired set and protects releases.
const declarativeManifest = `labels:
  - name: bug
    color: d73a4a
  - name: enhancement
    color: a2eeef
ignore:
  - release-*
  - "dependabot*"
`

// explicitDeleteManifest removes named legacy labels only.
const explicitDeleteManifest = `labels:
  - name: bug
    color: d73a4a
    description: Something isn't working
delete:
  - wontfix
  - invalid
`

// tomlManifest is the standard set expressed in TOML.
const tomlManifest = `[[labels]]
name = "bug"
color = "d73a4a"
description = "Something isn't working"

[[labels]]
name = "enhancement"
color = "a2eeef"
`

// githubDefaults mirrors the label set a fresh repository starts with.
func githubDefaults() []label.RemoteLabel {
	return []label.RemoteLabel{
		{Name: "bug", Color: "d73a4a", Description: "Something isn't working"},
		{Name: "documentation", Color: "0075ca", Description: "Improvements or additions to documentation"},
		{Name: "duplicate", Color: "cfd3d7", Description: "This issue or pull request already exists"},
		{Name: "enhancement", Color: "a2eeef", Description: "New feature or request"},
		{Name: "good first issue", Color: "7057ff", Description: "Good for newcomers"},
		{Name: "help wanted", Color: "008672", Description: "Extra attention is needed"},
		{Name: "invalid", Color: "e4e669", Description: "This doesn't seem right"},
		{Name: "question", Color: "d876e3", Description: "Further information is requested"},
		{Name: "wontfix", Color: "ffffff", Description: "This will not be worked on"},
	}
}
