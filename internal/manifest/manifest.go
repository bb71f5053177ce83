// Package manifest models the package.json written into generated projects.
package manifest

import (
	"encoding/json"

	"github.com/thoreinstein/koagen/internal/errors"
)

// FileName is the manifest's name inside a generated project.
const FileName = "package.json"

// Fixed values carried by every generated manifest.
const (
	StartScript      = "node ./src/server.js"
	Contributor      = "mkubasz@gmail.com"
	FrameworkPackage = "koa"
	FrameworkVersion = "^2.11.0"
	startScriptName  = "start"
)

// Manifest is an npm package manifest. Field order here is the order fields
// are serialized in. No field uses omitempty: empty values are written out.
type Manifest struct {
	Name         string            `json:"name"`
	Version      string            `json:"version"`
	Description  string            `json:"description"`
	Main         string            `json:"main"`
	Private      bool              `json:"private"`
	Scripts      map[string]string `json:"scripts"`
	Author       string            `json:"author"`
	License      string            `json:"license"`
	Contributors []string          `json:"contributors"`
	Dependencies map[string]string `json:"dependencies"`
}

// Default returns the manifest every project is generated with.
func Default() Manifest {
	return Manifest{
		Scripts:      map[string]string{startScriptName: StartScript},
		Contributors: []string{Contributor},
		Dependencies: map[string]string{FrameworkPackage: FrameworkVersion},
	}
}

// Start returns the start script, or "" if none is defined.
func (m Manifest) Start() string {
	return m.Scripts[startScriptName]
}

// Marshal encodes m as compact JSON.
func Marshal(m Manifest) ([]byte, error) {
	data, err := json.Marshal(m)
	if err != nil {
		return nil, errors.Wrap(err, "encoding manifest")
	}
	return data, nil
}

// Parse decodes a manifest.
func Parse(data []byte) (Manifest, error) {
	var m Manifest
	if err := json.Unmarshal(data, &m); err != nil {
		return Manifest{}, errors.Wrap(err, "decoding manifest")
	}
	return m, nil
}
