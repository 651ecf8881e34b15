package browser

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/roach88/textwire/internal/serde"
)

// DefaultURL is the WebDriver endpoint used when options omit one.
const DefaultURL = "http://localhost:4444"

// Options configures a WebDriver session.
type Options struct {
	// Browser selects the browser; encoded as its canonical text.
	Browser serde.Text[Type] `yaml:"browser" json:"browser"`

	// Headless appends --headless to the launch arguments.
	Headless bool `yaml:"headless" json:"headless"`

	// URL is the WebDriver endpoint.
	URL string `yaml:"url,omitempty" json:"url,omitempty"`
}

// Capabilities returns the capabilities for o.
func (o *Options) Capabilities() map[string]any {
	return Capabilities(o.Browser.V, o.Headless)
}

// LoadOptions reads browser options from a YAML file. Unknown fields are
// rejected; a missing URL falls back to DefaultURL.
func LoadOptions(path string) (*Options, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read browser options: %w", err)
	}
	return ParseOptions(data)
}

// ParseOptions decodes browser options from YAML bytes.
func ParseOptions(data []byte) (*Options, error) {
	var opts Options
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&opts); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("failed to parse browser options: %w", err)
	}
	if opts.URL == "" {
		opts.URL = DefaultURL
	}
	return &opts, nil
}
