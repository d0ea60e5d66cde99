package render

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/pelletier/go-toml/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fuelup/components/internal/config"
	"github.com/fuelup/components/pkg/component"
)

func sampleComponents() []component.Component {
	return []component.Component{
		{Name: "forc", TarballPrefix: "forc-binaries", RepositoryName: "sway",
			Executables: []string{"forc"}, Targets: []string{"linux_amd64"}, Publish: component.Bool(true)},
		{Name: "fuel-core", TarballPrefix: "fuel-core", RepositoryName: "fuel-core",
			Executables: []string{"fuel-core"}, Targets: []string{"linux_amd64"}},
	}
}

// TestComponentsText verifies the plain listing without ANSI escapes.
func TestComponentsText(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, New(&buf, config.OutputText, true).Components(sampleComponents()))

	out := buf.String()
	assert.NotContains(t, out, "\x1b[")
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	require.Len(t, lines, 2)
	assert.Contains(t, lines[0], "forc")
	assert.Contains(t, lines[1], "fuel-core")
}

// TestComponentsJSON verifies that JSON output decodes back to the same
// records and keeps unset flags out of the document.
func TestComponentsJSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, New(&buf, config.OutputJSON, true).Components(sampleComponents()))

	var got []component.Component
	require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
	assert.Equal(t, sampleComponents(), got)
	assert.NotContains(t, buf.String(), "is_plugin")
}

// TestComponentsJSONEmpty verifies that an empty listing is [] not null.
func TestComponentsJSONEmpty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, New(&buf, config.OutputJSON, true).Components(nil))
	assert.Equal(t, "[]\n", buf.String())
}

// TestComponentsTOML verifies that TOML output decodes back.
func TestComponentsTOML(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, New(&buf, config.OutputTOML, true).Components(sampleComponents()))

	var got struct {
		Component []component.Component `toml:"component"`
	}
	require.NoError(t, toml.Unmarshal(buf.Bytes(), &got))
	assert.Equal(t, sampleComponents(), got.Component)
}

// TestComponentText verifies that unset flags are shown as such.
func TestComponentText(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, New(&buf, config.OutputText, true).Component(sampleComponents()[1]))

	out := buf.String()
	assert.Contains(t, out, "fuel-core")
	assert.Contains(t, out, "unset")
	assert.Contains(t, out, "linux_amd64")
}

// TestPluginsText verifies the main-executable marker.
func TestPluginsText(t *testing.T) {
	var buf bytes.Buffer
	plugins := []component.Plugin{
		{Name: "forc-client", Executables: []string{"forc-deploy", "forc-run"}},
		{Name: "forc-fmt", Executables: []string{"forc-fmt"}},
	}
	require.NoError(t, New(&buf, config.OutputText, true).Plugins(plugins))

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	require.Len(t, lines, 2)
	assert.Contains(t, lines[0], "○")
	assert.Contains(t, lines[0], "forc-deploy forc-run")
	assert.Contains(t, lines[1], "●")
}

// TestStringsFormats verifies each format of a string listing.
func TestStringsFormats(t *testing.T) {
	values := []string{"forc-fmt", "forc-lsp"}

	var text bytes.Buffer
	require.NoError(t, New(&text, config.OutputText, true).Strings("executables", values))
	assert.Equal(t, "forc-fmt\nforc-lsp\n", text.String())

	var js bytes.Buffer
	require.NoError(t, New(&js, config.OutputJSON, true).Strings("executables", values))
	var gotJSON []string
	require.NoError(t, json.Unmarshal(js.Bytes(), &gotJSON))
	assert.Equal(t, values, gotJSON)

	var tm bytes.Buffer
	require.NoError(t, New(&tm, config.OutputTOML, true).Strings("executables", values))
	var gotTOML map[string][]string
	require.NoError(t, toml.Unmarshal(tm.Bytes(), &gotTOML))
	assert.Equal(t, values, gotTOML["executables"])
}

// TestBoolFormats verifies each format of a boolean answer.
func TestBoolFormats(t *testing.T) {
	var text bytes.Buffer
	require.NoError(t, New(&text, config.OutputText, true).Bool("published", true))
	assert.Equal(t, "true\n", text.String())

	var js bytes.Buffer
	require.NoError(t, New(&js, config.OutputJSON, true).Bool("published", false))
	assert.JSONEq(t, `{"published": false}`, js.String())
}
