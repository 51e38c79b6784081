package config

import (
	"encoding/binary"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoadProgramDecodesLittleEndianWords(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "prog.bin")
	buf := make([]byte, 8)
	binary.LittleEndian.PutUint32(buf[0:4], 0x0000_000F)
	binary.LittleEndian.PutUint32(buf[4:8], 0x0000_0E00)
	require.NoError(t, os.WriteFile(path, buf, 0o644))

	words, err := LoadProgram(path)
	require.NoError(t, err)
	require.Equal(t, []uint32{0x0000_000F, 0x0000_0E00}, words)
}

func TestLoadProgramRejectsEmptyFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "empty.bin")
	require.NoError(t, os.WriteFile(path, nil, 0o644))

	_, err := LoadProgram(path)
	require.Error(t, err)
}

func TestLoadProgramRejectsPartialWord(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "partial.bin")
	require.NoError(t, os.WriteFile(path, []byte{1, 2, 3}, 0o644))

	_, err := LoadProgram(path)
	require.Error(t, err)
}
