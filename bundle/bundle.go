// Package bundle reads and writes the persisted artifacts spec.md §6
// names: ciphertext_97.txt, plaintext_97.txt, proof_digest_enhanced.json,
// and an optional SHA-256 manifest over the three. This is the thin I/O
// shell spec.md keeps strictly outside the pure core — bundle never
// decides feasibility or plaintext identity, it only persists what the
// core already computed. Adapted from the teacher's own
// MarshalBinary/UnmarshalBinary pattern (a pure encode/decode pair, with
// file I/O kept one layer further out than the core ever reaches), but
// using plain text/JSON files instead of lattigo's binary wire format,
// since spec.md describes these artifacts as flat text/JSON.
package bundle

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/anchorcipher/k4wheel/alphabet"
	"github.com/anchorcipher/k4wheel/faults"
	"github.com/anchorcipher/k4wheel/partition"
	"github.com/anchorcipher/k4wheel/wheel"
)

// Names of the files a Bundle's directory contains.
const (
	CiphertextFile = "ciphertext_97.txt"
	PlaintextFile  = "plaintext_97.txt"
	DigestFile     = "proof_digest_enhanced.json"
	ManifestFile   = "sha256_manifest.json"
)

// Bundle is the in-memory form of a persisted solve/verify result.
type Bundle struct {
	Ciphertext []alphabet.Letter
	Plaintext  []alphabet.Letter
	Digest     *wheel.Digest
}

// Manifest is a SHA-256 integrity manifest over the bundle's flat files.
type Manifest struct {
	Ciphertext string `json:"ciphertext_97.txt"`
	Plaintext  string `json:"plaintext_97.txt"`
	Digest     string `json:"proof_digest_enhanced.json"`
}

// Write persists b's three artifacts, plus a SHA-256 manifest over
// them, into dir (created if necessary).
func Write(dir string, b *Bundle) error {
	if len(b.Ciphertext) != partition.MessageLength || len(b.Plaintext) != partition.MessageLength {
		return &faults.InputMalformed{Reason: "bundle ciphertext/plaintext must both be exactly 97 letters"}
	}

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("bundle: %w", err)
	}

	cipherText := alphabet.Text(b.Ciphertext)
	plainText := alphabet.Text(b.Plaintext)

	digestJSON, err := json.MarshalIndent(b.Digest, "", "  ")
	if err != nil {
		return fmt.Errorf("bundle: marshal digest: %w", err)
	}

	if err := os.WriteFile(filepath.Join(dir, CiphertextFile), []byte(cipherText), 0o644); err != nil {
		return fmt.Errorf("bundle: write ciphertext: %w", err)
	}
	if err := os.WriteFile(filepath.Join(dir, PlaintextFile), []byte(plainText), 0o644); err != nil {
		return fmt.Errorf("bundle: write plaintext: %w", err)
	}
	if err := os.WriteFile(filepath.Join(dir, DigestFile), digestJSON, 0o644); err != nil {
		return fmt.Errorf("bundle: write digest: %w", err)
	}

	manifest := Manifest{
		Ciphertext: sha256Hex([]byte(cipherText)),
		Plaintext:  sha256Hex([]byte(plainText)),
		Digest:     sha256Hex(digestJSON),
	}
	manifestJSON, err := json.MarshalIndent(manifest, "", "  ")
	if err != nil {
		return fmt.Errorf("bundle: marshal manifest: %w", err)
	}
	if err := os.WriteFile(filepath.Join(dir, ManifestFile), manifestJSON, 0o644); err != nil {
		return fmt.Errorf("bundle: write manifest: %w", err)
	}

	return nil
}

// Read loads a Bundle from dir, without checking the manifest. Use
// VerifyManifest separately to check integrity.
func Read(dir string) (*Bundle, error) {
	cipherRaw, err := os.ReadFile(filepath.Join(dir, CiphertextFile))
	if err != nil {
		return nil, fmt.Errorf("bundle: read ciphertext: %w", err)
	}
	plainRaw, err := os.ReadFile(filepath.Join(dir, PlaintextFile))
	if err != nil {
		return nil, fmt.Errorf("bundle: read plaintext: %w", err)
	}
	digestRaw, err := os.ReadFile(filepath.Join(dir, DigestFile))
	if err != nil {
		return nil, fmt.Errorf("bundle: read digest: %w", err)
	}

	ciphertext, err := alphabet.ParseText(string(cipherRaw))
	if err != nil {
		return nil, err
	}
	plaintext, err := alphabet.ParseText(string(plainRaw))
	if err != nil {
		return nil, err
	}

	var digest wheel.Digest
	if err := json.Unmarshal(digestRaw, &digest); err != nil {
		return nil, fmt.Errorf("bundle: unmarshal digest: %w", err)
	}

	return &Bundle{Ciphertext: ciphertext, Plaintext: plaintext, Digest: &digest}, nil
}

// VerifyManifest recomputes SHA-256 over the three flat files in dir and
// compares against the persisted manifest, returning an error naming the
// first file whose digest does not match.
func VerifyManifest(dir string) error {
	manifestRaw, err := os.ReadFile(filepath.Join(dir, ManifestFile))
	if err != nil {
		return fmt.Errorf("bundle: read manifest: %w", err)
	}
	var manifest Manifest
	if err := json.Unmarshal(manifestRaw, &manifest); err != nil {
		return fmt.Errorf("bundle: unmarshal manifest: %w", err)
	}

	checks := []struct {
		file string
		want string
	}{
		{CiphertextFile, manifest.Ciphertext},
		{PlaintextFile, manifest.Plaintext},
		{DigestFile, manifest.Digest},
	}

	for _, c := range checks {
		raw, err := os.ReadFile(filepath.Join(dir, c.file))
		if err != nil {
			return fmt.Errorf("bundle: read %s: %w", c.file, err)
		}
		if got := sha256Hex(raw); got != c.want {
			return fmt.Errorf("bundle: %s sha256 mismatch: manifest says %s, file is %s", c.file, c.want, got)
		}
	}
	return nil
}

func sha256Hex(b []byte) string {
	sum := sha256.Sum256(b)
	return hex.EncodeToString(sum[:])
}
