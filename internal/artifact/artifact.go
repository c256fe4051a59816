// artifact.go - Hex artifact persistence.
//
// To the extent possible under law, Yawning Angel has waived all copyright
// and related or neighboring rights to kyber1024, using the Creative
// Commons "CC0" public domain dedication. See LICENSE or
// <http://creativecommons.org/publicdomain/zero/1.0/> for full details.

// Package artifact persists keys, ciphertexts and shared secrets as
// lowercase hex text files, one artifact per file, along with a YAML
// manifest describing the run that produced them.
package artifact

import (
	"bytes"
	"encoding/hex"
	"os"
	"path/filepath"
	"time"

	"github.com/pkg/errors"
	"golang.org/x/crypto/sha3"
	"gopkg.in/yaml.v3"
)

// Well known artifact file names.
const (
	PublicKeyFile      = "pkey.txt"
	PrivateKeyFile     = "skey.txt"
	CiphertextFile     = "cipher.txt"
	SenderSecretFile   = "shrdkey0.txt"
	ReceiverSecretFile = "shrdkey1.txt"
	ManifestFile       = "manifest.yaml"

	dirPermMode    = 0755
	publicPermMode = 0644
	secretPermMode = 0600
)

// Entry describes a single persisted artifact.
type Entry struct {
	File   string `yaml:"file"`
	Size   int    `yaml:"size"`
	Secret bool   `yaml:"secret,omitempty"`

	// Fingerprint is the hex SHA3-256 digest of the raw artifact.  It is
	// only recorded for public artifacts.
	Fingerprint string `yaml:"sha3_256,omitempty"`
}

// Manifest describes the artifacts produced by a run.
type Manifest struct {
	ParameterSet    string    `yaml:"parameter_set"`
	UpstreamVersion string    `yaml:"upstream_version"`
	Created         time.Time `yaml:"created"`
	Deterministic   bool      `yaml:"deterministic"`
	Artifacts       []Entry   `yaml:"artifacts"`
}

// Store reads and writes artifacts in a single directory.
type Store struct {
	dir string
}

// NewStore returns a Store rooted at dir, creating the directory if needed.
func NewStore(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, dirPermMode); err != nil {
		return nil, errors.Wrapf(err, "cannot create artifact directory %s", dir)
	}
	return &Store{dir: dir}, nil
}

// Dir returns the directory the store is rooted at.
func (s *Store) Dir() string {
	return s.dir
}

// Path returns the full path of the named artifact.
func (s *Store) Path(name string) string {
	return filepath.Join(s.dir, name)
}

// WriteHex writes b as lowercase hex to the named artifact, and returns the
// manifest entry describing it.  Secret artifacts are only readable by the
// owner, and are not fingerprinted.
func (s *Store) WriteHex(name string, b []byte, secret bool) (Entry, error) {
	perm := os.FileMode(publicPermMode)
	if secret {
		perm = secretPermMode
	}

	buf := make([]byte, hex.EncodedLen(len(b)))
	hex.Encode(buf, b)
	defer wipe(buf)

	if err := os.WriteFile(s.Path(name), buf, perm); err != nil {
		return Entry{}, errors.Wrapf(err, "cannot write %s", name)
	}

	e := Entry{File: name, Size: len(b), Secret: secret}
	if !secret {
		e.Fingerprint = Fingerprint(b)
	}
	return e, nil
}

// ReadHex reads the named hex artifact, which must decode to exactly size
// bytes.  Surrounding whitespace is ignored.
func (s *Store) ReadHex(name string, size int) ([]byte, error) {
	raw, err := os.ReadFile(s.Path(name))
	if err != nil {
		return nil, errors.Wrapf(err, "cannot read %s", name)
	}
	defer wipe(raw)

	raw = bytes.TrimSpace(raw)
	if hex.DecodedLen(len(raw)) != size {
		return nil, errors.Errorf("%s: expected %d bytes, got %d hex digits", name, size, len(raw))
	}

	b := make([]byte, size)
	if _, err := hex.Decode(b, raw); err != nil {
		return nil, errors.Wrapf(err, "cannot decode %s", name)
	}
	return b, nil
}

// WriteManifest serializes m to the manifest file.
func (s *Store) WriteManifest(m *Manifest) error {
	b, err := yaml.Marshal(m)
	if err != nil {
		return errors.Wrap(err, "cannot encode manifest")
	}
	if err := os.WriteFile(s.Path(ManifestFile), b, publicPermMode); err != nil {
		return errors.Wrap(err, "cannot write manifest")
	}
	return nil
}

// ReadManifest loads the manifest file.
func (s *Store) ReadManifest() (*Manifest, error) {
	b, err := os.ReadFile(s.Path(ManifestFile))
	if err != nil {
		return nil, errors.Wrap(err, "cannot read manifest")
	}
	m := new(Manifest)
	if err := yaml.Unmarshal(b, m); err != nil {
		return nil, errors.Wrap(err, "cannot decode manifest")
	}
	return m, nil
}

// Fingerprint returns the hex SHA3-256 digest of b.
func Fingerprint(b []byte) string {
	h := sha3.Sum256(b)
	return hex.EncodeToString(h[:])
}

func wipe(b []byte) {
	for i := range b {
		b[i] = 0
	}
}
