package tree

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/open-cli-collective/shortcode-cli/internal/cmd/cmdutil"
	"github.com/open-cli-collective/shortcode-cli/internal/config"
	"github.com/open-cli-collective/shortcode-cli/pkg/shortcode"
)

func newTestOptions(output string, buf *bytes.Buffer) *treeOptions {
	return &treeOptions{
		Options: &cmdutil.Options{
			Output:  output,
			NoColor: true,
			Config:  &config.Config{},
			Out:     buf,
		},
	}
}

func TestRunTree_Trace(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, runTree("a [b]c [i]d[/i][/b]", newTestOptions("table", &buf)))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 5)
	assert.True(t, strings.HasPrefix(lines[0], "[Root]"))
	assert.Equal(t, `--- [Text] "a "`, lines[1])
	assert.Equal(t, "--- [b] offset=2", lines[2])
	assert.Equal(t, `------ [Text] "c "`, lines[3])
	assert.Equal(t, `------ [i] offset=2 content="d"`, lines[4])
}

func TestRunTree_JSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, runTree("x[hr/]", newTestOptions("json", &buf)))

	var root map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &root))
	assert.Equal(t, "tag", root["type"])
	assert.Equal(t, "x[hr/]", root["text"])

	children := root["children"].([]interface{})
	require.Len(t, children, 2)
	assert.Equal(t, "text", children[0].(map[string]interface{})["type"])
	tag := children[1].(map[string]interface{})["tag"].(map[string]interface{})
	assert.Equal(t, "hr", tag["name"])
}

func TestRunTree_YAML(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, runTree("[b]x[/b]", newTestOptions("yaml", &buf)))

	var root map[string]interface{}
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &root))
	assert.Equal(t, "tag", root["type"])
	require.Len(t, root["children"], 1)
}

func TestRunTree_MaxDepth(t *testing.T) {
	var buf bytes.Buffer
	opts := newTestOptions("table", &buf)
	opts.parser.MaxDepth = 1

	err := runTree("[a][b]x[/b][/a]", opts)
	require.Error(t, err)
	assert.True(t, errors.Is(err, shortcode.ErrTooDeep))
}
