package crypto

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"math/rand/v2"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/blgguy/safetransport/internal/apperrors"
)

func newTestService(t *testing.T) *Service {
	key := bytes.Repeat([]byte{0x42}, 32)
	svc, err := NewService(key, "test-salt")
	require.NoError(t, err)
	return svc
}

func TestNewService_RejectsBadKey(t *testing.T) {
	_, err := NewService([]byte("short"), "salt")
	assert.Error(t, err)

	_, err = NewService(bytes.Repeat([]byte{1}, 32), "")
	assert.Error(t, err)
}

func TestEncryptDecrypt_RoundTrip(t *testing.T) {
	svc := newTestService(t)

	for _, plaintext := range []string{
		"A passenger was harassed near the rear door of the bus.",
		"короткий отчет на русском",
		strings.Repeat("x", 500),
	} {
		blob, err := svc.Encrypt(plaintext)
		require.NoError(t, err)
		assert.NotContains(t, blob, plaintext)
		assert.Len(t, strings.Split(blob, "."), 3)

		decrypted, err := svc.Decrypt(blob)
		require.NoError(t, err)
		assert.Equal(t, plaintext, decrypted)
	}
}

func TestEncrypt_EmptyStringPassesThrough(t *testing.T) {
	svc := newTestService(t)

	blob, err := svc.Encrypt("")
	require.NoError(t, err)
	assert.Empty(t, blob)

	plaintext, err := svc.Decrypt("")
	require.NoError(t, err)
	assert.Empty(t, plaintext)
}

func TestEncrypt_FreshNoncePerCall(t *testing.T) {
	svc := newTestService(t)

	blob1, err := svc.Encrypt("same plaintext")
	require.NoError(t, err)
	blob2, err := svc.Encrypt("same plaintext")
	require.NoError(t, err)

	assert.NotEqual(t, blob1, blob2)
}

func TestDecrypt_TamperedCiphertext(t *testing.T) {
	svc := newTestService(t)

	blob, err := svc.Encrypt("sensitive incident description")
	require.NoError(t, err)

	// Портим один байт внутри компонента шифртекста
	parts := strings.Split(blob, ".")
	ct, err := base64.RawStdEncoding.DecodeString(parts[2])
	require.NoError(t, err)
	ct[0] ^= 0xFF
	parts[2] = base64.RawStdEncoding.EncodeToString(ct)

	_, err = svc.Decrypt(strings.Join(parts, "."))
	var tamperErr *apperrors.TamperError
	assert.ErrorAs(t, err, &tamperErr)
}

func TestDecrypt_WrongKey(t *testing.T) {
	svc := newTestService(t)
	other, err := NewService(bytes.Repeat([]byte{0x13}, 32), "test-salt")
	require.NoError(t, err)

	blob, err := svc.Encrypt("secret")
	require.NoError(t, err)

	_, err = other.Decrypt(blob)
	var tamperErr *apperrors.TamperError
	assert.ErrorAs(t, err, &tamperErr)
}

func TestDecrypt_MalformedBlob(t *testing.T) {
	svc := newTestService(t)

	cases := []string{
		"only-one-part",
		"two.parts",
		"a.b.c.d",
		"!!!.###.$$$",
		base64.RawStdEncoding.EncodeToString([]byte("shortiv")) + "." +
			base64.RawStdEncoding.EncodeToString(bytes.Repeat([]byte{1}, 16)) + "." +
			base64.RawStdEncoding.EncodeToString([]byte("ct")),
	}
	for _, blob := range cases {
		_, err := svc.Decrypt(blob)
		var formatErr *apperrors.FormatError
		assert.ErrorAs(t, err, &formatErr, "blob: %q", blob)
	}
}

func TestAnonymousHash_Deterministic(t *testing.T) {
	svc := newTestService(t)

	h1 := svc.AnonymousHash("seed-value")
	h2 := svc.AnonymousHash("seed-value")
	assert.Equal(t, h1, h2)
	assert.Len(t, h1, 64)
	assert.NotContains(t, h1, "seed-value")
}

func TestAnonymousHash_SaltMatters(t *testing.T) {
	svc := newTestService(t)
	other, err := NewService(bytes.Repeat([]byte{0x42}, 32), "another-salt")
	require.NoError(t, err)

	assert.NotEqual(t, svc.AnonymousHash("seed"), other.AnonymousHash("seed"))
}

func TestAnonymousHash_NoCollisions(t *testing.T) {
	svc := newTestService(t)

	// Семена той же формы, что при подаче отчета: uuid + unix time + случайное число
	now := time.Now().Unix()
	seen := make(map[string]string, 10000)
	for i := 0; i < 10000; i++ {
		seed := fmt.Sprintf("%s%d%d", uuid.New(), now, rand.IntN(100000))
		h := svc.AnonymousHash(seed)
		if prev, ok := seen[h]; ok {
			t.Fatalf("hash collision between seeds %q and %q", prev, seed)
		}
		seen[h] = seed
	}
}

func TestSanitizeString(t *testing.T) {
	assert.Equal(t, "&lt;script&gt;alert(1)&lt;/script&gt;", SanitizeString("  <script>alert(1)</script>  "))
	assert.Equal(t, "plain text", SanitizeString("plain text"))
	assert.Empty(t, SanitizeString("   "))
}

func TestEnsureInt(t *testing.T) {
	assert.Equal(t, 3, EnsureInt(3))
	assert.Equal(t, 3, EnsureInt(3.0))
	assert.Equal(t, 3, EnsureInt("3"))
	assert.Equal(t, 3, EnsureInt(" 3 "))
	assert.Equal(t, 0, EnsureInt("abc"))
	assert.Equal(t, 0, EnsureInt(nil))
}

func TestEnsureFloat(t *testing.T) {
	assert.Equal(t, 40.7, EnsureFloat(40.7))
	assert.Equal(t, 40.0, EnsureFloat(40))
	assert.Equal(t, -74.01, EnsureFloat("-74.01"))
	assert.Equal(t, 0.0, EnsureFloat("abc"))
	assert.Equal(t, 0.0, EnsureFloat(nil))
}
