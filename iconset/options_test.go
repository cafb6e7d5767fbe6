package iconset

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/image/font/basicfont"
)

func TestLoadFace_Default(t *testing.T) {
	face, err := LoadFace("")
	require.NoError(t, err)
	assert.Equal(t, basicfont.Face7x13, face)
}

func TestLoadFace_GoRegular(t *testing.T) {
	face, err := LoadFace("GoRegular")
	require.NoError(t, err)
	require.NotNil(t, face)
	defer face.Close()

	assert.Greater(t, face.Metrics().Ascent.Ceil(), 0)

	icon, err := Lookup("activity")
	require.NoError(t, err)
	_, err = Render(icon, Options{Scale: 1, Face: face})
	assert.NoError(t, err)
}

func TestLoadFace_MissingFile(t *testing.T) {
	_, err := LoadFace(filepath.Join(t.TempDir(), "missing.ttf"))
	assert.ErrorIs(t, err, ErrFontUnreadable)
}

func TestLoadFace_InvalidFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "broken.ttf")
	require.NoError(t, os.WriteFile(path, []byte("definitely not a font"), 0644))

	_, err := LoadFace(path)
	assert.ErrorIs(t, err, ErrFontUnreadable)
}

func TestOptions_Normalize(t *testing.T) {
	o := Options{Scale: -3}.normalize()
	assert.Equal(t, 1, o.Scale)
	assert.Equal(t, basicfont.Face7x13, o.Face)

	o = Options{Scale: 99}.normalize()
	assert.Equal(t, MaxScale, o.Scale)
}
