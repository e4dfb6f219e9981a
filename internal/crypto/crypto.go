package crypto

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"html"
	"strconv"
	"strings"

	"github.com/blgguy/safetransport/internal/apperrors"
)

const (
	keySize   = 32 // AES-256
	nonceSize = 12
	tagSize   = 16

	blobDelimiter = "."
)

// Service отвечает за шифрование чувствительных полей и анонимные хэши.
// Все операции - чистые функции над входными данными
type Service struct {
	key           []byte
	anonymousSalt string
}

func NewService(key []byte, anonymousSalt string) (*Service, error) {
	if len(key) != keySize {
		return nil, fmt.Errorf("encryption key must be %d bytes, got %d", keySize, len(key))
	}
	if anonymousSalt == "" {
		return nil, fmt.Errorf("anonymous salt must not be empty")
	}
	return &Service{key: key, anonymousSalt: anonymousSalt}, nil
}

// Encrypt шифрует строку AES-256-GCM со свежим случайным nonce на каждый вызов.
// Формат блоба: b64(iv) "." b64(tag) "." b64(ciphertext).
// Пустая строка возвращается пустой - нечего шифровать
func (s *Service) Encrypt(plaintext string) (string, error) {
	if plaintext == "" {
		return "", nil
	}

	gcm, err := s.newGCM()
	if err != nil {
		return "", err
	}

	iv := make([]byte, nonceSize)
	if _, err := rand.Read(iv); err != nil {
		return "", fmt.Errorf("failed to generate iv: %w", err)
	}

	// Seal возвращает ciphertext||tag, раскладываем на компоненты блоба
	sealed := gcm.Seal(nil, iv, []byte(plaintext), nil)
	ciphertext := sealed[:len(sealed)-tagSize]
	tag := sealed[len(sealed)-tagSize:]

	enc := base64.RawStdEncoding
	return enc.EncodeToString(iv) + blobDelimiter +
		enc.EncodeToString(tag) + blobDelimiter +
		enc.EncodeToString(ciphertext), nil
}

// Decrypt - обратная операция к Encrypt. Возвращает FormatError при поврежденной
// структуре блоба и TamperError, если не сошелся аутентификационный тег
func (s *Service) Decrypt(blob string) (string, error) {
	if blob == "" {
		return "", nil
	}

	parts := strings.Split(blob, blobDelimiter)
	if len(parts) != 3 {
		return "", &apperrors.FormatError{Reason: fmt.Sprintf("expected 3 components, got %d", len(parts))}
	}

	enc := base64.RawStdEncoding
	iv, err := enc.DecodeString(parts[0])
	if err != nil {
		return "", &apperrors.FormatError{Reason: "invalid iv encoding"}
	}
	tag, err := enc.DecodeString(parts[1])
	if err != nil {
		return "", &apperrors.FormatError{Reason: "invalid tag encoding"}
	}
	ciphertext, err := enc.DecodeString(parts[2])
	if err != nil {
		return "", &apperrors.FormatError{Reason: "invalid ciphertext encoding"}
	}

	if len(iv) != nonceSize {
		return "", &apperrors.FormatError{Reason: fmt.Sprintf("iv must be %d bytes, got %d", nonceSize, len(iv))}
	}
	if len(tag) != tagSize {
		return "", &apperrors.FormatError{Reason: fmt.Sprintf("tag must be %d bytes, got %d", tagSize, len(tag))}
	}

	gcm, err := s.newGCM()
	if err != nil {
		return "", err
	}

	plaintext, err := gcm.Open(nil, iv, append(ciphertext, tag...), nil)
	if err != nil {
		// Провал аутентификации - признак подмены данных, не возвращаем ничего
		return "", &apperrors.TamperError{Err: err}
	}
	return string(plaintext), nil
}

func (s *Service) newGCM() (cipher.AEAD, error) {
	block, err := aes.NewCipher(s.key)
	if err != nil {
		return nil, fmt.Errorf("failed to init cipher: %w", err)
	}
	gcm, err := cipher.NewGCM(block)
	if err != nil {
		return nil, fmt.Errorf("failed to init gcm: %w", err)
	}
	return gcm, nil
}

// AnonymousHash возвращает детерминированный SHA-256 от seed и соли приложения.
// Seed обязан быть свободен от PII: report_id + время подачи + случайное число.
// Хэш необратим и пригоден только для дедупликации/rate-limit
func (s *Service) AnonymousHash(seed string) string {
	sum := sha256.Sum256([]byte(seed + s.anonymousSalt))
	return hex.EncodeToString(sum[:])
}

// SanitizeString обрезает пробелы и экранирует HTML (аналог htmlspecialchars)
func SanitizeString(input string) string {
	return html.EscapeString(strings.TrimSpace(input))
}

// EnsureInt приводит значение JSON-поля к int, не падая на типе
func EnsureInt(v any) int {
	switch t := v.(type) {
	case int:
		return t
	case int64:
		return int(t)
	case float64:
		return int(t)
	case json.Number:
		n, err := t.Int64()
		if err != nil {
			return 0
		}
		return int(n)
	case string:
		n, err := strconv.Atoi(strings.TrimSpace(t))
		if err != nil {
			return 0
		}
		return n
	}
	return 0
}

// EnsureFloat приводит значение JSON-поля к float64, не падая на типе
func EnsureFloat(v any) float64 {
	switch t := v.(type) {
	case float64:
		return t
	case int:
		return float64(t)
	case int64:
		return float64(t)
	case json.Number:
		f, err := t.Float64()
		if err != nil {
			return 0
		}
		return f
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(t), 64)
		if err != nil {
			return 0
		}
		return f
	}
	return 0
}
