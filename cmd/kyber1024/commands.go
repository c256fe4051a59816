// commands.go - Kyber1024 driver commands.
//
// To the extent possible under law, Yawning Angel has waived all copyright
// and related or neighboring rights to kyber1024, using the Creative
// Commons "CC0" public domain dedication. See LICENSE or
// <http://creativecommons.org/publicdomain/zero/1.0/> for full details.

package main

import (
	"crypto/subtle"
	"encoding/hex"
	"io"
	"os"
	"time"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"github.com/urfave/cli/v2"

	"gitlab.com/yawning/kyber1024.git"
	"gitlab.com/yawning/kyber1024.git/internal/artifact"
	"gitlab.com/yawning/kyber1024.git/prng"
)

const (
	outputDirFlag = "output-dir"
	seedFlag      = "seed"
	zeroSeedsFlag = "zero-seeds"
	secretLenFlag = "secret-len"
	logLevelFlag  = "loglevel"

	parameterSet = "Kyber1024"
)

// errMismatch is returned by the demo when the two shared secrets differ,
// which only happens on a decryption failure.
var errMismatch = errors.New("shared secrets mismatched")

func flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:    outputDirFlag,
			Aliases: []string{"o"},
			Value:   ".",
			Usage:   "Directory the hex artifacts are read from and written to",
			EnvVars: []string{"KYBER_OUTPUT_DIR"},
		},
		&cli.StringFlag{
			Name:    seedFlag,
			Usage:   "Hex encoded 32 byte seed for the ChaCha20 DRBG, making the run reproducible. Testing only",
			EnvVars: []string{"KYBER_SEED"},
		},
		&cli.BoolFlag{
			Name:  zeroSeedsFlag,
			Usage: "Use all zero seeds, reproducing the reference test vector. Testing only",
		},
		&cli.IntFlag{
			Name:    secretLenFlag,
			Value:   kyber1024.SharedSecretSize,
			Usage:   "Number of shared secret bytes to squeeze from the KDF",
			EnvVars: []string{"KYBER_SECRET_LEN"},
		},
		&cli.StringFlag{
			Name:    logLevelFlag,
			Value:   "info",
			Usage:   "Application logging level {trace, debug, info, warn, error, fatal}",
			EnvVars: []string{"KYBER_LOGLEVEL"},
		},
	}
}

func commands() []*cli.Command {
	return []*cli.Command{
		{
			Name:   "demo",
			Usage:  "Generate a key pair, encapsulate, decapsulate and persist every artifact",
			Action: demo,
		},
		{
			Name:   "keygen",
			Usage:  "Generate a key pair, writing " + artifact.PublicKeyFile + " and " + artifact.PrivateKeyFile,
			Action: keygen,
		},
		{
			Name:   "encaps",
			Usage:  "Encapsulate to " + artifact.PublicKeyFile + ", writing " + artifact.CiphertextFile + " and " + artifact.SenderSecretFile,
			Action: encaps,
		},
		{
			Name:   "decaps",
			Usage:  "Decapsulate " + artifact.CiphertextFile + " with " + artifact.PrivateKeyFile + ", writing " + artifact.ReceiverSecretFile,
			Action: decaps,
		},
	}
}

// runner carries the state shared by every command.
type runner struct {
	log           *zerolog.Logger
	store         *artifact.Store
	rand          io.Reader
	deterministic bool
	secretLen     int
}

func newRunner(c *cli.Context) (*runner, error) {
	log, err := newLogger(c.String(logLevelFlag), nil)
	if err != nil {
		return nil, err
	}

	secretLen := c.Int(secretLenFlag)
	if secretLen <= 0 {
		return nil, errors.Errorf("%s must be positive, got %d", secretLenFlag, secretLen)
	}

	rand, deterministic, err := entropySource(c.String(seedFlag), c.Bool(zeroSeedsFlag))
	if err != nil {
		return nil, err
	}
	if deterministic {
		log.Warn().Msg("Using a deterministic entropy source, the artifacts are NOT secure")
	}

	store, err := artifact.NewStore(c.String(outputDirFlag))
	if err != nil {
		return nil, err
	}
	log.Debug().Str("dir", store.Dir()).Msg("Artifact store ready")

	return &runner{
		log:           log,
		store:         store,
		rand:          rand,
		deterministic: deterministic,
		secretLen:     secretLen,
	}, nil
}

// entropySource picks the reader the seeds are drawn from.
func entropySource(seedHex string, zeroSeeds bool) (io.Reader, bool, error) {
	switch {
	case zeroSeeds && seedHex != "":
		return nil, false, errors.Errorf("%s and %s are mutually exclusive", seedFlag, zeroSeedsFlag)
	case zeroSeeds:
		return prng.Zero, true, nil
	case seedHex != "":
		b, err := hex.DecodeString(seedHex)
		if err != nil {
			return nil, false, errors.Wrapf(err, "invalid %s", seedFlag)
		}
		if len(b) != prng.SeedSize {
			return nil, false, errors.Errorf("%s must be %d bytes, got %d", seedFlag, prng.SeedSize, len(b))
		}
		var seed [prng.SeedSize]byte
		copy(seed[:], b)
		drbg := prng.NewChaCha20(&seed)
		wipe(seed[:])
		wipe(b)
		return drbg, true, nil
	default:
		return prng.System, false, nil
	}
}

func (r *runner) writeHex(name string, b []byte, secret bool) (artifact.Entry, error) {
	e, err := r.store.WriteHex(name, b, secret)
	if err != nil {
		return e, err
	}
	ev := r.log.Info().Str("path", r.store.Path(name)).Int("size", e.Size)
	if e.Fingerprint != "" {
		ev = ev.Str("sha3_256", e.Fingerprint)
	}
	ev.Msg("Wrote artifact")
	return e, nil
}

// recordManifest merges entries into the manifest of the output directory.
func (r *runner) recordManifest(entries ...artifact.Entry) error {
	m, err := r.store.ReadManifest()
	if err != nil {
		if _, statErr := os.Stat(r.store.Path(artifact.ManifestFile)); !os.IsNotExist(statErr) {
			return err
		}
		m = &artifact.Manifest{}
	}

	m.ParameterSet = parameterSet
	m.UpstreamVersion = kyber1024.UpstreamVersion
	m.Created = time.Now().UTC().Truncate(time.Second)
	m.Deterministic = r.deterministic
	for _, e := range entries {
		replaced := false
		for i := range m.Artifacts {
			if m.Artifacts[i].File == e.File {
				m.Artifacts[i] = e
				replaced = true
			}
		}
		if !replaced {
			m.Artifacts = append(m.Artifacts, e)
		}
	}
	return r.store.WriteManifest(m)
}

func (r *runner) generateKeyPair() (*kyber1024.PublicKey, *kyber1024.PrivateKey, error) {
	pk, sk, err := kyber1024.GenerateKeyPair(r.rand)
	if err != nil {
		return nil, nil, errors.Wrap(err, "cannot generate key pair")
	}
	return pk, sk, nil
}

func (r *runner) encapsulate(pk *kyber1024.PublicKey) (*kyber1024.Ciphertext, []byte, error) {
	ct, kdf, err := kyber1024.EncapsulateRandom(r.rand, pk)
	if err != nil {
		return nil, nil, errors.Wrap(err, "cannot encapsulate")
	}
	ss := make([]byte, r.secretLen)
	kdf.Squeeze(ss)
	kdf.Reset()
	return ct, ss, nil
}

func (r *runner) decapsulate(sk *kyber1024.PrivateKey, ct *kyber1024.Ciphertext) []byte {
	kdf := kyber1024.Decapsulate(sk, ct)
	ss := make([]byte, r.secretLen)
	kdf.Squeeze(ss)
	kdf.Reset()
	return ss
}

// demo is the complete exchange: keygen, encapsulate, decapsulate, check
// that both sides agree, then persist every artifact.
func demo(c *cli.Context) error {
	r, err := newRunner(c)
	if err != nil {
		return err
	}

	pk, sk, err := r.generateKeyPair()
	if err != nil {
		return err
	}
	defer sk.Reset()

	ct, senderSecret, err := r.encapsulate(pk)
	if err != nil {
		return err
	}
	defer wipe(senderSecret)

	receiverSecret := r.decapsulate(sk, ct)
	defer wipe(receiverSecret)

	if subtle.ConstantTimeCompare(senderSecret, receiverSecret) != 1 {
		r.log.Error().Msg("Sender and receiver derived different shared secrets")
		return errMismatch
	}
	r.log.Info().Int("size", r.secretLen).Msg("Shared secrets match")

	artifacts := []struct {
		name   string
		data   []byte
		secret bool
	}{
		{artifact.PublicKeyFile, pk[:], false},
		{artifact.PrivateKeyFile, sk[:], true},
		{artifact.CiphertextFile, ct[:], false},
		{artifact.SenderSecretFile, senderSecret, true},
		{artifact.ReceiverSecretFile, receiverSecret, true},
	}
	var entries []artifact.Entry
	for _, a := range artifacts {
		e, err := r.writeHex(a.name, a.data, a.secret)
		if err != nil {
			return err
		}
		entries = append(entries, e)
	}
	return r.recordManifest(entries...)
}

func keygen(c *cli.Context) error {
	r, err := newRunner(c)
	if err != nil {
		return err
	}

	pk, sk, err := r.generateKeyPair()
	if err != nil {
		return err
	}
	defer sk.Reset()

	pkEntry, err := r.writeHex(artifact.PublicKeyFile, pk[:], false)
	if err != nil {
		return err
	}
	skEntry, err := r.writeHex(artifact.PrivateKeyFile, sk[:], true)
	if err != nil {
		return err
	}
	return r.recordManifest(pkEntry, skEntry)
}

func encaps(c *cli.Context) error {
	r, err := newRunner(c)
	if err != nil {
		return err
	}

	b, err := r.store.ReadHex(artifact.PublicKeyFile, kyber1024.PublicKeySize)
	if err != nil {
		return err
	}
	pk, err := kyber1024.ParsePublicKey(b)
	if err != nil {
		return errors.Wrap(err, artifact.PublicKeyFile)
	}

	ct, ss, err := r.encapsulate(pk)
	if err != nil {
		return err
	}
	defer wipe(ss)

	ctEntry, err := r.writeHex(artifact.CiphertextFile, ct[:], false)
	if err != nil {
		return err
	}
	ssEntry, err := r.writeHex(artifact.SenderSecretFile, ss, true)
	if err != nil {
		return err
	}
	return r.recordManifest(ctEntry, ssEntry)
}

func decaps(c *cli.Context) error {
	r, err := newRunner(c)
	if err != nil {
		return err
	}

	b, err := r.store.ReadHex(artifact.PrivateKeyFile, kyber1024.PrivateKeySize)
	if err != nil {
		return err
	}
	sk, err := kyber1024.ParsePrivateKey(b)
	wipe(b)
	if err != nil {
		return errors.Wrap(err, artifact.PrivateKeyFile)
	}
	defer sk.Reset()

	b, err = r.store.ReadHex(artifact.CiphertextFile, kyber1024.CiphertextSize)
	if err != nil {
		return err
	}
	ct, err := kyber1024.ParseCiphertext(b)
	if err != nil {
		return errors.Wrap(err, artifact.CiphertextFile)
	}

	ss := r.decapsulate(sk, ct)
	defer wipe(ss)

	ssEntry, err := r.writeHex(artifact.ReceiverSecretFile, ss, true)
	if err != nil {
		return err
	}
	return r.recordManifest(ssEntry)
}

func wipe(b []byte) {
	for i := range b {
		b[i] = 0
	}
}
