package cryptox

import (
	"encoding/base64"
	"encoding/hex"
	"encoding/json"
	"errors"
	"testing"

	"github.com/dmitrijs2005/astroproof/internal/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newCipher(t *testing.T, version int) *Cipher {
	t.Helper()
	c, err := NewCipher(version)
	require.NoError(t, err)
	return c
}

func TestDeriveKey_PBKDF2Snapshot(t *testing.T) {
	key, err := DeriveKey(VersionPBKDF2, "secret-password", []byte("fixed-salt"))
	require.NoError(t, err)
	assert.Equal(t, "9748d9ecd89f2a27d5d46a4a8fc18fbd1a09c6b3a02e47d152ab0d03e7bb1ee1", hex.EncodeToString(key))
}

func TestDeriveKey_Argon2idSnapshot(t *testing.T) {
	key, err := DeriveKey(VersionArgon2id, "secret-password", []byte("fixed-salt"))
	require.NoError(t, err)
	assert.Equal(t, "34f7a1c64df63ab1ad5b5ee06e64db5713b35f81839823304db63e8e5e6a6a39", hex.EncodeToString(key))
}

func TestDeriveKey_DifferentSalts(t *testing.T) {
	k1, err := DeriveKey(VersionPBKDF2, "secret-password", []byte("salt-1"))
	require.NoError(t, err)
	k2, err := DeriveKey(VersionPBKDF2, "secret-password", []byte("salt-2"))
	require.NoError(t, err)
	assert.NotEqual(t, k1, k2)
}

func TestDeriveKey_UnknownVersion(t *testing.T) {
	_, err := DeriveKey(9, "p", []byte("s"))
	require.Error(t, err)

	_, err = NewCipher(9)
	require.Error(t, err)
}

func TestEncryptDecrypt_RoundTrip(t *testing.T) {
	payloads := []any{
		map[string]any{"reading": "Trust the timing.", "hashes": map[string]any{"report_hash": "ab"}},
		[]any{1.5, "two", nil, true},
		"just a string",
		map[string]any{},
	}

	for _, version := range []int{VersionPBKDF2, VersionArgon2id} {
		c := newCipher(t, version)
		for _, p := range payloads {
			env, err := c.Encrypt(p, "correct horse")
			require.NoError(t, err)
			assert.Equal(t, version, env.Version)

			raw, err := Decrypt(env, "correct horse")
			require.NoError(t, err)

			want, err := json.Marshal(p)
			require.NoError(t, err)
			assert.JSONEq(t, string(want), string(raw))
		}
	}
}

func TestEncrypt_ExactBytesPreserved(t *testing.T) {
	c := newCipher(t, VersionPBKDF2)
	in := json.RawMessage(`{"z":1,"a":[true,false],"m":"é"}`)

	env, err := c.Encrypt(in, "k")
	require.NoError(t, err)

	out, err := Decrypt(env, "k")
	require.NoError(t, err)
	assert.Equal(t, string(in), string(out))
}

func TestEncrypt_FreshSaltAndNoncePerCall(t *testing.T) {
	c := newCipher(t, VersionPBKDF2)

	a, err := c.Encrypt("same", "same-pass")
	require.NoError(t, err)
	b, err := c.Encrypt("same", "same-pass")
	require.NoError(t, err)

	assert.NotEqual(t, a.IV, b.IV)
	assert.NotEqual(t, a.Salt, b.Salt)
	assert.NotEqual(t, a.Ciphertext, b.Ciphertext)

	iv, err := base64.StdEncoding.DecodeString(a.IV)
	require.NoError(t, err)
	salt, err := base64.StdEncoding.DecodeString(a.Salt)
	require.NoError(t, err)
	assert.Len(t, iv, NonceSize)
	assert.Len(t, salt, SaltSize)
	assert.Equal(t, AlgorithmAESGCM, a.Algorithm)
}

func TestEnvelope_JSONLayout(t *testing.T) {
	c := newCipher(t, VersionPBKDF2)
	env, err := c.Encrypt(map[string]string{"reading": "x"}, "k")
	require.NoError(t, err)

	b, err := json.Marshal(env)
	require.NoError(t, err)

	var fields map[string]any
	require.NoError(t, json.Unmarshal(b, &fields))
	assert.Len(t, fields, 5)
	for _, k := range []string{"ciphertext", "iv", "salt", "algo", "v"} {
		assert.Contains(t, fields, k)
	}
	assert.NotContains(t, string(b), "reading")
}

func TestDecrypt_WrongPassphrase(t *testing.T) {
	c := newCipher(t, VersionPBKDF2)
	env, err := c.Encrypt(map[string]string{"reading": "x"}, "right")
	require.NoError(t, err)

	raw, err := Decrypt(env, "wrong")
	assert.Nil(t, raw)
	assert.True(t, errors.Is(err, common.ErrDecryption))
}

func TestDecrypt_TamperedFieldsFailUniformly(t *testing.T) {
	c := newCipher(t, VersionPBKDF2)
	env, err := c.Encrypt(map[string]string{"reading": "x"}, "pass")
	require.NoError(t, err)

	flip := func(s string) string {
		b, err := base64.StdEncoding.DecodeString(s)
		require.NoError(t, err)
		b[0] ^= 0x01
		return base64.StdEncoding.EncodeToString(b)
	}

	tests := []struct {
		name   string
		mutate func(e *Envelope)
	}{
		{name: "ciphertext bit", mutate: func(e *Envelope) { e.Ciphertext = flip(e.Ciphertext) }},
		{name: "iv bit", mutate: func(e *Envelope) { e.IV = flip(e.IV) }},
		{name: "salt bit", mutate: func(e *Envelope) { e.Salt = flip(e.Salt) }},
		{name: "ciphertext not base64", mutate: func(e *Envelope) { e.Ciphertext = "%%%" }},
		{name: "short iv", mutate: func(e *Envelope) { e.IV = base64.StdEncoding.EncodeToString([]byte("short")) }},
		{name: "empty salt", mutate: func(e *Envelope) { e.Salt = "" }},
		{name: "unknown algorithm", mutate: func(e *Envelope) { e.Algorithm = "AES-CBC" }},
		{name: "unknown version", mutate: func(e *Envelope) { e.Version = 7 }},
		{name: "version switched", mutate: func(e *Envelope) { e.Version = VersionArgon2id }},
		{name: "truncated ciphertext", mutate: func(e *Envelope) { e.Ciphertext = base64.StdEncoding.EncodeToString([]byte{1, 2, 3}) }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := *env
			tt.mutate(&e)

			raw, err := Decrypt(&e, "pass")
			assert.Nil(t, raw)
			assert.Equal(t, common.ErrDecryption, err)
		})
	}
}

func TestOpen_EverySingleBitFlipRejected(t *testing.T) {
	key, err := common.GenerateRandBytes(KeySize)
	require.NoError(t, err)

	nonce, ct, err := seal(key, []byte(`{"reading":"Trust the timing."}`))
	require.NoError(t, err)

	for i := 0; i < len(ct)*8; i++ {
		tampered := append([]byte(nil), ct...)
		tampered[i/8] ^= 1 << (i % 8)

		pt, err := open(key, nonce, tampered)
		require.Errorf(t, err, "bit %d flip accepted", i)
		require.Nil(t, pt)
	}

	pt, err := open(key, nonce, ct)
	require.NoError(t, err)
	assert.Equal(t, `{"reading":"Trust the timing."}`, string(pt))
}

func TestDecrypt_NilEnvelope(t *testing.T) {
	_, err := Decrypt(nil, "x")
	assert.Equal(t, common.ErrDecryption, err)
}

// Produced by the browser client with WebCrypto (PBKDF2-SHA256 100k,
// AES-GCM), before envelopes carried a version field.
const webClientEnvelope = `{"ciphertext":"74qN2gya6azvOPFzu2MYN8mOLL2n10zvMOT8mU0LrQ3HOrFpem+V8BCs08ykX/nOsxtP1oGzomKwg+r5Mcjk","iv":"ZGVmZ2hpamtsbW5v","salt":"AAECAwQFBgcICQoLDA0ODw==","algo":"AES-GCM"}`

func TestDecrypt_UnversionedWebClientEnvelope(t *testing.T) {
	var env Envelope
	require.NoError(t, json.Unmarshal([]byte(webClientEnvelope), &env))
	assert.Equal(t, 0, env.Version)

	var got struct {
		Version string `json:"version"`
		Reading string `json:"reading"`
	}
	require.NoError(t, DecryptInto(&env, "moon-river", &got))
	assert.Equal(t, "1.0", got.Version)
	assert.Equal(t, "Trust the timing.", got.Reading)

	assert.Equal(t, common.ErrDecryption, DecryptInto(&env, "moon-rivers", &got))
}

func TestDecryptInto_ShapeMismatch(t *testing.T) {
	c := newCipher(t, VersionPBKDF2)
	env, err := c.Encrypt([]int{1, 2}, "k")
	require.NoError(t, err)

	var target struct{ Reading string }
	err = DecryptInto(env, "k", &target)
	require.Error(t, err)
	assert.False(t, errors.Is(err, common.ErrDecryption))
}
