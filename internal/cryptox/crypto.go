// Package cryptox implements the passphrase envelope used to protect reading
// bundles at rest.
//
// A key is derived from the passphrase and a fresh random salt, then the JSON
// payload is sealed with AES-256-GCM under a fresh random 96-bit nonce. Salt
// and nonce travel with the ciphertext in the Envelope. Nothing else about the
// payload is visible.
package cryptox

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/sha256"
	"encoding/base64"
	"encoding/json"
	"fmt"

	"github.com/dmitrijs2005/astroproof/internal/common"
	"golang.org/x/crypto/argon2"
	"golang.org/x/crypto/pbkdf2"
)

const (
	// AlgorithmAESGCM is the only supported algorithm tag.
	AlgorithmAESGCM = "AES-GCM"

	// VersionPBKDF2 derives keys with PBKDF2-HMAC-SHA256. Envelopes without
	// a version field are treated as this version.
	VersionPBKDF2 = 1
	// VersionArgon2id derives keys with Argon2id.
	VersionArgon2id = 2

	PBKDF2Iterations = 100_000

	KeySize   = 32
	SaltSize  = 16
	NonceSize = 12
)

// Envelope is the persisted, self-describing encrypted record. All binary
// fields are standard base64.
type Envelope struct {
	Ciphertext string `json:"ciphertext"`
	IV         string `json:"iv"`
	Salt       string `json:"salt"`
	Algorithm  string `json:"algo"`
	Version    int    `json:"v"`
}

type kdf func(passphrase, salt []byte) []byte

var kdfs = map[int]kdf{
	VersionPBKDF2:   derivePBKDF2,
	VersionArgon2id: deriveArgon2id,
}

func derivePBKDF2(passphrase, salt []byte) []byte {
	return pbkdf2.Key(passphrase, salt, PBKDF2Iterations, KeySize, sha256.New)
}

func deriveArgon2id(passphrase, salt []byte) []byte {
	return argon2.IDKey(passphrase, salt, 1, 64*1024, 4, KeySize)
}

// DeriveKey derives the envelope key for the given version.
func DeriveKey(version int, passphrase string, salt []byte) ([]byte, error) {
	derive, ok := kdfs[version]
	if !ok {
		return nil, fmt.Errorf("unsupported envelope version %d", version)
	}
	p := []byte(passphrase)
	defer common.WipeByteArray(p)
	return derive(p, salt), nil
}

// Cipher seals payloads with a fixed envelope version.
type Cipher struct {
	version int
}

// NewCipher returns a Cipher producing envelopes of the given version.
func NewCipher(version int) (*Cipher, error) {
	if _, ok := kdfs[version]; !ok {
		return nil, fmt.Errorf("unsupported envelope version %d", version)
	}
	return &Cipher{version: version}, nil
}

// Version reports the envelope version c produces.
func (c *Cipher) Version() int {
	return c.version
}

// Encrypt serializes payload to JSON and seals it under passphrase.
//
// Every call draws a new salt and a new nonce, so encrypting the same payload
// twice with the same passphrase yields unrelated envelopes.
func (c *Cipher) Encrypt(payload any, passphrase string) (*Envelope, error) {
	plaintext, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("serialize payload: %w", err)
	}
	defer common.WipeByteArray(plaintext)

	salt, err := common.GenerateRandBytes(SaltSize)
	if err != nil {
		return nil, err
	}

	key, err := DeriveKey(c.version, passphrase, salt)
	if err != nil {
		return nil, err
	}
	defer common.WipeByteArray(key)

	nonce, ciphertext, err := seal(key, plaintext)
	if err != nil {
		return nil, err
	}

	return &Envelope{
		Ciphertext: base64.StdEncoding.EncodeToString(ciphertext),
		IV:         base64.StdEncoding.EncodeToString(nonce),
		Salt:       base64.StdEncoding.EncodeToString(salt),
		Algorithm:  AlgorithmAESGCM,
		Version:    c.version,
	}, nil
}

// Decrypt opens env with passphrase and returns the exact JSON bytes that
// were sealed.
//
// Every failure, whether a wrong passphrase, a modified ciphertext, a
// malformed field or an unknown version, returns common.ErrDecryption and
// nothing else. No partial plaintext is ever returned.
func Decrypt(env *Envelope, passphrase string) (json.RawMessage, error) {
	if env == nil || env.Algorithm != AlgorithmAESGCM {
		return nil, common.ErrDecryption
	}

	version := env.Version
	if version == 0 {
		version = VersionPBKDF2
	}

	salt, err := base64.StdEncoding.DecodeString(env.Salt)
	if err != nil || len(salt) == 0 {
		return nil, common.ErrDecryption
	}
	nonce, err := base64.StdEncoding.DecodeString(env.IV)
	if err != nil || len(nonce) != NonceSize {
		return nil, common.ErrDecryption
	}
	ciphertext, err := base64.StdEncoding.DecodeString(env.Ciphertext)
	if err != nil {
		return nil, common.ErrDecryption
	}

	key, err := DeriveKey(version, passphrase, salt)
	if err != nil {
		return nil, common.ErrDecryption
	}
	defer common.WipeByteArray(key)

	plaintext, err := open(key, nonce, ciphertext)
	if err != nil {
		return nil, common.ErrDecryption
	}

	// GCM authenticated the bytes, but a payload written by another client
	// could still be something other than JSON.
	if !json.Valid(plaintext) {
		return nil, common.ErrDecryption
	}

	return json.RawMessage(plaintext), nil
}

// DecryptInto opens env and unmarshals the payload into v.
func DecryptInto(env *Envelope, passphrase string, v any) error {
	raw, err := Decrypt(env, passphrase)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(raw, v); err != nil {
		return fmt.Errorf("decode payload: %w", err)
	}
	return nil
}

func newGCM(key []byte) (cipher.AEAD, error) {
	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, err
	}
	return cipher.NewGCM(block)
}

// seal encrypts plaintext under key with a fresh random nonce.
func seal(key, plaintext []byte) (nonce, ciphertext []byte, err error) {
	aesgcm, err := newGCM(key)
	if err != nil {
		return nil, nil, err
	}

	nonce, err = common.GenerateRandBytes(aesgcm.NonceSize())
	if err != nil {
		return nil, nil, err
	}

	return nonce, aesgcm.Seal(nil, nonce, plaintext, nil), nil
}

func open(key, nonce, ciphertext []byte) ([]byte, error) {
	aesgcm, err := newGCM(key)
	if err != nil {
		return nil, err
	}
	return aesgcm.Open(nil, nonce, ciphertext, nil)
}
