package filestore

import (
	"encoding/base64"
	"os"
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGeneratedFilename(t *testing.T) {
	name := GeneratedFilename(".webm")
	assert.Regexp(t, regexp.MustCompile(`^\d+_[0-9a-f]{8}\.webm$`), name)

	other := GeneratedFilename(".webm")
	assert.NotEqual(t, name, other)
}

func TestSaveAudioRecording(t *testing.T) {
	fs, err := New(t.TempDir())
	require.NoError(t, err)

	payload := []byte("fake audio bytes")
	encoded := base64.StdEncoding.EncodeToString(payload)

	filename, size, err := fs.SaveAudioRecording(encoded, "webm")
	require.NoError(t, err)
	assert.Equal(t, int64(len(payload)), size)

	written, err := os.ReadFile(fs.Path(filename))
	require.NoError(t, err)
	assert.Equal(t, payload, written)
}

func TestSaveAudioRecordingInvalidBase64(t *testing.T) {
	fs, err := New(t.TempDir())
	require.NoError(t, err)

	_, _, err = fs.SaveAudioRecording("%%% not base64 %%%", "webm")
	assert.Error(t, err)
}

func TestNewCreatesDirectory(t *testing.T) {
	dir := t.TempDir() + "/nested/uploads"
	_, err := New(dir)
	require.NoError(t, err)

	info, err := os.Stat(dir)
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}

func TestPathStripsDirectoryTraversal(t *testing.T) {
	fs, err := New(t.TempDir())
	require.NoError(t, err)

	p := fs.Path("../../etc/passwd")
	assert.Equal(t, fs.Dir()+"/passwd", p)
}
