package cli

import (
	"bytes"
	"encoding/binary"
	"encoding/hex"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/archex/archex/archive"
	"github.com/archex/archex/transform"
)

func buildTestArchive(t *testing.T, entries map[string][]byte) []byte {
	t.Helper()

	var buf bytes.Buffer

	header := make([]byte, 4)
	binary.BigEndian.PutUint32(header, archive.Magic)
	buf.Write(header)
	buf.WriteByte(0x01)

	var scratch [8]byte

	for name, payload := range entries {
		binary.BigEndian.PutUint32(scratch[:4], uint32(len(name)))
		buf.Write(scratch[:4])
		buf.WriteString(name)

		binary.BigEndian.PutUint64(scratch[:], uint64(len(payload)))
		buf.Write(scratch[:])
		binary.BigEndian.PutUint64(scratch[:], uint64(len(payload)))
		buf.Write(scratch[:])

		buf.WriteByte(byte(transform.None))
		buf.Write(payload)
	}

	return buf.Bytes()
}

func TestExtractCommand(t *testing.T) {
	dir := t.TempDir()

	data := buildTestArchive(t, map[string][]byte{
		"a.txt":     []byte("first file"),
		"sub/b.txt": []byte("second file"),
	})

	dumpPath := filepath.Join(dir, "archive.hex")
	require.NoError(t, os.WriteFile(dumpPath, []byte(hex.EncodeToString(data)+"\n"), 0o600))

	outDir := filepath.Join(dir, "extracted")

	require.Equal(t, 0, runForTest(t, "extract", "-i", dumpPath, "-o", outDir))

	got, err := os.ReadFile(filepath.Join(outDir, "a.txt"))
	require.NoError(t, err)
	require.Equal(t, []byte("first file"), got)

	got, err = os.ReadFile(filepath.Join(outDir, "sub", "b.txt"))
	require.NoError(t, err)
	require.Equal(t, []byte("second file"), got)

	report, err := os.ReadFile(filepath.Join(outDir, archive.ReportFileName))
	require.NoError(t, err)
	require.Contains(t, string(report), "a.txt\t10\t10\tnone\n")
}

func TestExtractCommandUnsupportedFormat(t *testing.T) {
	dir := t.TempDir()

	dumpPath := filepath.Join(dir, "archive.bin")
	require.NoError(t, os.WriteFile(dumpPath, []byte("00"), 0o600))

	require.Equal(t, 1, runForTest(t, "extract", "-i", dumpPath, "-o", filepath.Join(dir, "out")))
}

func TestExtractCommandMissingInput(t *testing.T) {
	dir := t.TempDir()

	require.Equal(t, 1, runForTest(t, "extract", "-i", filepath.Join(dir, "missing.hex"), "-o", dir))
}
