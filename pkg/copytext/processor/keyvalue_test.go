package processor

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/ukaji3/copytext-go/pkg/copytext/markup"
	"github.com/ukaji3/copytext-go/pkg/copytext/models"
)

func TestKeyValue_Basic(t *testing.T) {
	sheet := newSheet("CORGI", map[string]any{
		"A1": "name",
		"B1": "Winston",
		"A2": "instagram_account",
		"B2": "https://instagram.com/winstonthewhitecorgi/",
	})

	got, err := KeyValue{}.Process(sheet)
	require.NoError(t, err)
	assert.Equal(t, map[string]any{
		"name":              "Winston",
		"instagram_account": "https://instagram.com/winstonthewhitecorgi/",
	}, got)
}

func TestKeyValue_EmptyValueCell(t *testing.T) {
	sheet := newSheet("CORGI", map[string]any{
		"A1": "name",
		"B1": "Winston",
		"A2": "instagram_account",
	})

	got, err := KeyValue{}.Process(sheet)
	require.NoError(t, err)
	assert.Equal(t, map[string]any{
		"name":              "Winston",
		"instagram_account": "",
	}, got)
}

func TestKeyValue_SkipsMetadataAndOtherColumns(t *testing.T) {
	sheet := newSheet("S", map[string]any{
		models.MetaRef: "A1:AA2",
		"A1":           "k",
		"B1":           "v",
		"C1":           "ignored",
		"AA1":          "not column A",
		"AA2":          "x",
	})

	got, err := KeyValue{}.Process(sheet)
	require.NoError(t, err)
	assert.Equal(t, map[string]any{"k": "v"}, got)
}

func TestKeyValue_LastWriteWins(t *testing.T) {
	sheet := newSheet("S", map[string]any{
		"A1":  "title",
		"B1":  "first",
		"A2":  "other",
		"B2":  "x",
		"A10": "title",
		"B10": "last",
	})

	got, err := KeyValue{}.Process(sheet)
	require.NoError(t, err)
	assert.Equal(t, "last", got.(map[string]any)["title"])
	assert.Len(t, got, 2)
}

func TestKeyValue_NonStringKeysAndValues(t *testing.T) {
	sheet := newSheet("S", map[string]any{
		"A1": int64(2024),
		"B1": 3.5,
		"A2": 1.25,
		"B2": true,
		"A3": true,
		"B3": int64(7),
	})

	got, err := KeyValue{}.Process(sheet)
	require.NoError(t, err)
	assert.Equal(t, map[string]any{
		"2024": 3.5,
		"1.25": true,
		"true": int64(7),
	}, got)
}

func TestKeyValue_MarkerColumn(t *testing.T) {
	sheet := newSheet("S", map[string]any{
		"A1": "plain",
		"B1": "**bold**",
		"A2": "rich",
		"B2": "**bold**",
		"C2": "Markdown",
		"A3": "short",
		"B3": "text",
		"C3": "MD",
		"A4": "number",
		"B4": int64(4),
		"C4": "md",
	})

	got, err := KeyValue{Renderer: bracket}.Process(sheet)
	require.NoError(t, err)
	assert.Equal(t, map[string]any{
		"plain":  "**bold**",
		"rich":   "[**BOLD**]",
		"short":  "[TEXT]",
		"number": int64(4),
	}, got)
}

func TestKeyValue_MarkerIgnoredWithoutRenderer(t *testing.T) {
	sheet := newSheet("S", map[string]any{
		"A1": "rich",
		"B1": "**bold**",
		"C1": "markdown",
	})

	got, err := KeyValue{}.Process(sheet)
	require.NoError(t, err)
	assert.Equal(t, map[string]any{"rich": "**bold**"}, got)
}

func TestKeyValue_CustomMarkerColumn(t *testing.T) {
	sheet := newSheet("S", map[string]any{
		"A1": "rich",
		"B1": "x",
		"C1": "markdown",
		"D2": "markdown",
		"A2": "other",
		"B2": "y",
	})

	got, err := KeyValue{Renderer: bracket, MarkerColumn: "D"}.Process(sheet)
	require.NoError(t, err)
	assert.Equal(t, map[string]any{"rich": "x", "other": "[Y]"}, got)
}

func TestKeyValue_GoldmarkRendering(t *testing.T) {
	sheet := newSheet("S", map[string]any{
		"A1": "bio",
		"B1": "**bold**",
		"C1": "markdown",
	})

	got, err := KeyValue{Renderer: markup.NewGoldmark()}.Process(sheet)
	require.NoError(t, err)
	assert.Contains(t, got.(map[string]any)["bio"], "<strong>bold</strong>")
}

func TestKeyValue_RenderError(t *testing.T) {
	boom := errors.New("boom")
	failing := markup.RenderFunc(func(string) (string, error) { return "", boom })
	sheet := newSheet("S", map[string]any{
		"A1": "bio",
		"B1": "x",
		"C1": "md",
	})

	_, err := KeyValue{Renderer: failing}.Process(sheet)
	require.Error(t, err)
	assert.ErrorIs(t, err, boom)
	assert.Contains(t, err.Error(), "B1")
}

func TestKeyValue_EmptySheet(t *testing.T) {
	got, err := KeyValue{}.Process(models.NewSheet("empty"))
	require.NoError(t, err)
	assert.Equal(t, map[string]any{}, got)
}

func TestKeyValue_DoesNotModifySheet(t *testing.T) {
	sheet := newSheet("S", map[string]any{
		"A1": "rich",
		"B1": "x",
		"C1": "md",
	})

	_, err := KeyValue{Renderer: bracket}.Process(sheet)
	require.NoError(t, err)
	assert.Equal(t, "x", sheet.ValueAt("B", 1))
	assert.Len(t, sheet.Cells, 3)
}

func TestKeyValue_MarkerMustMatchExactly(t *testing.T) {
	sheet := newSheet("S", map[string]any{
		"A1": "padded",
		"B1": "x",
		"C1": " md ",
		"A2": "exact",
		"B2": "y",
		"C2": "MarkDown",
	})

	got, err := KeyValue{Renderer: bracket}.Process(sheet)
	require.NoError(t, err)
	assert.Equal(t, map[string]any{"padded": "x", "exact": "[Y]"}, got)
}
