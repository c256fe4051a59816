// artifact_test.go - Hex artifact persistence tests.
//
// To the extent possible under law, Yawning Angel has waived all copyright
// and related or neighboring rights to kyber1024, using the Creative
// Commons "CC0" public domain dedication. See LICENSE or
// <http://creativecommons.org/publicdomain/zero/1.0/> for full details.

package artifact

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestHexRoundTrip(t *testing.T) {
	s, err := NewStore(filepath.Join(t.TempDir(), "nested", "out"))
	require.NoError(t, err)

	data := []byte{0x00, 0x01, 0xab, 0xff}
	e, err := s.WriteHex(PublicKeyFile, data, false)
	require.NoError(t, err)
	require.Equal(t, PublicKeyFile, e.File)
	require.Equal(t, 4, e.Size)
	require.Equal(t, Fingerprint(data), e.Fingerprint)

	raw, err := os.ReadFile(s.Path(PublicKeyFile))
	require.NoError(t, err)
	require.Equal(t, "0001abff", string(raw))

	got, err := s.ReadHex(PublicKeyFile, len(data))
	require.NoError(t, err)
	require.Equal(t, data, got)
}

func TestSecretArtifact(t *testing.T) {
	s, err := NewStore(t.TempDir())
	require.NoError(t, err)

	e, err := s.WriteHex(PrivateKeyFile, []byte{1, 2, 3}, true)
	require.NoError(t, err)
	require.True(t, e.Secret)
	require.Empty(t, e.Fingerprint)

	fi, err := os.Stat(s.Path(PrivateKeyFile))
	require.NoError(t, err)
	if fi.Mode().Perm()&0077 != 0 && os.PathSeparator == '/' {
		t.Fatalf("secret artifact is group or world accessible: %v", fi.Mode())
	}
}

func TestReadHexErrors(t *testing.T) {
	s, err := NewStore(t.TempDir())
	require.NoError(t, err)

	_, err = s.ReadHex(CiphertextFile, 4)
	require.Error(t, err)

	require.NoError(t, os.WriteFile(s.Path(CiphertextFile), []byte("0011\n"), 0644))
	_, err = s.ReadHex(CiphertextFile, 4)
	require.Error(t, err)

	got, err := s.ReadHex(CiphertextFile, 2)
	require.NoError(t, err)
	require.Equal(t, []byte{0x00, 0x11}, got)

	require.NoError(t, os.WriteFile(s.Path(CiphertextFile), []byte("zz11"), 0644))
	_, err = s.ReadHex(CiphertextFile, 2)
	require.Error(t, err)
}

func TestManifestRoundTrip(t *testing.T) {
	s, err := NewStore(t.TempDir())
	require.NoError(t, err)

	m := &Manifest{
		ParameterSet:    "Kyber1024",
		UpstreamVersion: "20210804",
		Created:         time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC),
		Deterministic:   true,
		Artifacts: []Entry{
			{File: PublicKeyFile, Size: 1568, Fingerprint: Fingerprint([]byte("pk"))},
			{File: PrivateKeyFile, Size: 3168, Secret: true},
		},
	}
	require.NoError(t, s.WriteManifest(m))

	got, err := s.ReadManifest()
	require.NoError(t, err)
	require.Equal(t, m, got)
}
