// Package specfile loads and saves the YAML build specification consumed by
// the neurodocker CLI. Files are validated against an embedded JSON Schema
// before decoding, so malformed specs fail with a pointed message instead of
// a half-filled struct.
package specfile

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/santhosh-tekuri/jsonschema/v5"
	yamlv3 "gopkg.in/yaml.v3"
	sigsyaml "sigs.k8s.io/yaml"
)

//go:embed schema.json
var schemaJSON string

// Spec describes one generated Dockerfile block.
type Spec struct {
	PkgManager string  `json:"pkg_manager" yaml:"pkg_manager"`
	CheckURLs  *bool   `json:"check_urls,omitempty" yaml:"check_urls,omitempty"`
	SPM        SPMSpec `json:"spm" yaml:"spm"`
}

// SPMSpec selects the SPM build to install.
type SPMSpec struct {
	Version       string `json:"version" yaml:"version"`
	MatlabVersion string `json:"matlab_version" yaml:"matlab_version"`
}

// URLCheckEnabled reports whether download URLs should be probed. Specs that
// omit check_urls default to probing.
func (s *Spec) URLCheckEnabled() bool {
	return s.CheckURLs == nil || *s.CheckURLs
}

// Load reads path, validates it against the embedded schema and decodes it.
func Load(path string) (*Spec, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading spec file: %w", err)
	}
	spec, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("spec file %s: %w", path, err)
	}
	return spec, nil
}

// Parse validates and decodes one YAML document.
func Parse(data []byte) (*Spec, error) {
	jsonData, err := sigsyaml.YAMLToJSON(data)
	if err != nil {
		return nil, fmt.Errorf("converting spec to JSON: %w", err)
	}
	if err := validateJSON(jsonData); err != nil {
		return nil, err
	}

	var spec Spec
	if err := json.Unmarshal(jsonData, &spec); err != nil {
		return nil, fmt.Errorf("decoding spec: %w", err)
	}
	return &spec, nil
}

func validateJSON(data []byte) error {
	compiler := jsonschema.NewCompiler()
	if err := compiler.AddResource("spec.schema.json", strings.NewReader(schemaJSON)); err != nil {
		return fmt.Errorf("loading spec schema: %w", err)
	}
	schema, err := compiler.Compile("spec.schema.json")
	if err != nil {
		return fmt.Errorf("compiling spec schema: %w", err)
	}

	var v interface{}
	if err := json.Unmarshal(data, &v); err != nil {
		return fmt.Errorf("decoding spec: %w", err)
	}
	if err := schema.Validate(v); err != nil {
		return fmt.Errorf("spec does not match schema: %w", err)
	}
	return nil
}

// Save writes the resolved spec back out as YAML.
func Save(spec *Spec, path string) error {
	data, err := yamlv3.Marshal(spec)
	if err != nil {
		return fmt.Errorf("encoding spec: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing spec file: %w", err)
	}
	return nil
}
