package ui_test

import (
	"bytes"
	stdjson "encoding/json"
	"errors"
	"testing"

	packerrors "github.com/arthur-debert/packsmith/pkg/errors"
	"github.com/arthur-debert/packsmith/pkg/types"
	"github.com/arthur-debert/packsmith/pkg/ui"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleList() *types.ListResult {
	return &types.ListResult{
		ContentRoot: "content_packs",
		Packs: []types.PackSummary{
			{
				Key:       "bible/faith",
				HasConfig: true,
				Config: types.PackConfig{
					Category:    "Bible",
					Subcategory: "Faith",
					Description: "Verses about faith",
				},
				Quotes: 12, Videos: 3, Audio: 2,
			},
			{
				Key:    "stoicism/mindset",
				Config: types.PackConfig{Category: "Stoicism", Subcategory: "Mindset"},
			},
		},
	}
}

func TestNewRenderer(t *testing.T) {
	for _, format := range []ui.Format{ui.FormatAuto, ui.FormatTerminal, ui.FormatText, ui.FormatJSON} {
		t.Run(format.String(), func(t *testing.T) {
			r, err := ui.NewRenderer(format, &bytes.Buffer{})
			require.NoError(t, err)
			assert.NotNil(t, r)
		})
	}

	_, err := ui.NewRenderer(ui.Format(42), &bytes.Buffer{})
	assert.Error(t, err)
}

func TestTextRendererList(t *testing.T) {
	var buf bytes.Buffer
	r, err := ui.NewRenderer(ui.FormatText, &buf)
	require.NoError(t, err)

	require.NoError(t, r.RenderResult(sampleList()))

	out := buf.String()
	assert.Contains(t, out, "Content packs in content_packs")
	assert.Contains(t, out, "Bible")
	assert.Contains(t, out, "quotes: 12  videos: 3  audio: 2")
	assert.Contains(t, out, "Mindset (no pack_config.json)")
	assert.Less(t, bytes.Index(buf.Bytes(), []byte("Bible")), bytes.Index(buf.Bytes(), []byte("Stoicism")))
}

func TestTextRendererEmptyList(t *testing.T) {
	var buf bytes.Buffer
	r, err := ui.NewRenderer(ui.FormatText, &buf)
	require.NoError(t, err)

	require.NoError(t, r.RenderResult(&types.ListResult{ContentRoot: "nowhere"}))
	assert.Contains(t, buf.String(), "No content packs found in nowhere")
}

func TestTextRendererProvision(t *testing.T) {
	var buf bytes.Buffer
	r, err := ui.NewRenderer(ui.FormatText, &buf)
	require.NoError(t, err)

	require.NoError(t, r.RenderResult(&types.ProvisionResult{
		ContentRoot:  "content_packs",
		FilesWritten: []string{"content_packs/bible/faith/pack_config.json"},
		DryRun:       true,
	}))

	out := buf.String()
	assert.Contains(t, out, "Dry run")
	assert.Contains(t, out, "Would write 1 pack config(s)")
	assert.Contains(t, out, "bible/faith/pack_config.json")
}

func TestTextRendererErrorAndMarkdown(t *testing.T) {
	var buf bytes.Buffer
	r, err := ui.NewRenderer(ui.FormatText, &buf)
	require.NoError(t, err)

	require.NoError(t, r.RenderError(errors.New("boom")))
	require.NoError(t, r.RenderMarkdown("# Title\n\n- item\n\n"))

	assert.Equal(t, "Error: boom\n# Title\n\n- item\n", buf.String())
}

func TestAutoRendererOnBufferIsPlain(t *testing.T) {
	var buf bytes.Buffer
	r, err := ui.NewRenderer(ui.FormatAuto, &buf)
	require.NoError(t, err)

	require.NoError(t, r.RenderMarkdown("# Heading"))
	assert.Equal(t, "# Heading\n", buf.String(), "markdown is not rendered for non-terminal writers")
}

func TestJSONRendererError(t *testing.T) {
	var buf bytes.Buffer
	r, err := ui.NewRenderer(ui.FormatJSON, &buf)
	require.NoError(t, err)

	appErr := packerrors.New(packerrors.ErrApplicationFailure, "gui_app.py exited with code 3").
		WithDetail(packerrors.DetailExitCode, 3)
	require.NoError(t, r.RenderError(appErr))

	var decoded map[string]interface{}
	require.NoError(t, stdjson.Unmarshal(buf.Bytes(), &decoded))
	assert.Equal(t, "APP_FAILURE", decoded["code"])
	assert.Equal(t, float64(3), decoded["exitCode"])
	assert.Contains(t, decoded["error"], "exited with code 3")
}

func TestJSONRendererList(t *testing.T) {
	var buf bytes.Buffer
	r, err := ui.NewRenderer(ui.FormatJSON, &buf)
	require.NoError(t, err)

	require.NoError(t, r.RenderResult(sampleList()))

	var decoded types.ListResult
	require.NoError(t, stdjson.Unmarshal(buf.Bytes(), &decoded))
	assert.Equal(t, "content_packs", decoded.ContentRoot)
	require.Len(t, decoded.Packs, 2)
	assert.Equal(t, "bible/faith", decoded.Packs[0].Key)
}

func TestTerminalRendererMarkdown(t *testing.T) {
	var buf bytes.Buffer
	r, err := ui.NewRenderer(ui.FormatTerminal, &buf)
	require.NoError(t, err)

	require.NoError(t, r.RenderMarkdown("Reinstall dependencies with `pip install -r requirements.txt`"))
	assert.Contains(t, buf.String(), "pip install -r requirements.txt")
}
