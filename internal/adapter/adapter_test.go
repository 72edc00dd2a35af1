package adapter

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMakeTLSConfig(t *testing.T) {
	t.Run("NoFiles", func(t *testing.T) {
		cfg, err := MakeTLSConfig(TLSFiles{})
		require.NoError(t, err)
		assert.Nil(t, cfg)
	})

	t.Run("Partial", func(t *testing.T) {
		_, err := MakeTLSConfig(TLSFiles{CA: "ca.pem"})
		assert.Error(t, err)
	})

	t.Run("MissingCA", func(t *testing.T) {
		dir := t.TempDir()
		_, err := MakeTLSConfig(TLSFiles{
			CA:   filepath.Join(dir, "ca.pem"),
			Cert: filepath.Join(dir, "cert.pem"),
			Key:  filepath.Join(dir, "key.pem"),
		})
		assert.ErrorIs(t, err, os.ErrNotExist)
	})

	t.Run("BadCA", func(t *testing.T) {
		dir := t.TempDir()
		ca := filepath.Join(dir, "ca.pem")
		require.NoError(t, os.WriteFile(ca, []byte("not a pem"), 0o600))

		_, err := MakeTLSConfig(TLSFiles{
			CA:   ca,
			Cert: filepath.Join(dir, "cert.pem"),
			Key:  filepath.Join(dir, "key.pem"),
		})
		assert.ErrorContains(t, err, "failed to parse CA certificate")
	})
}
