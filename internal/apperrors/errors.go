package apperrors

import "fmt"

// ValidationError - некорректный ввод клиента. Всегда исправим на стороне
// вызывающего, на границе HTTP отображается в 400
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return fmt.Sprintf("validation error: %s", e.Reason)
	}
	return fmt.Sprintf("validation error: field '%s': %s", e.Field, e.Reason)
}

// AuthorizationError - отсутствующие или недействительные учетные данные (401/403)
type AuthorizationError struct {
	Reason string
}

func (e *AuthorizationError) Error() string {
	return fmt.Sprintf("authorization error: %s", e.Reason)
}

// NotFoundError - запрошенный ресурс не существует (404)
type NotFoundError struct {
	Resource string
	ID       string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s with id %s not found", e.Resource, e.ID)
}

// TamperError - аутентификационный тег шифртекста не сошелся. Наружу уходит
// только generic 500, подробности остаются в журнале безопасности
type TamperError struct {
	Err error
}

func (e *TamperError) Error() string {
	return fmt.Sprintf("ciphertext failed integrity check: %v", e.Err)
}

func (e *TamperError) Unwrap() error {
	return e.Err
}

// FormatError - структура зашифрованного блоба повреждена (число компонент,
// длина IV или тега, кодировка)
type FormatError struct {
	Reason string
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("encrypted blob is malformed: %s", e.Reason)
}

// PersistenceError - транзакционный сбой хранилища, изменения откачены.
// Клиенту отдается generic 500, полная причина только в логах
type PersistenceError struct {
	Op  string
	Err error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("persistence failure during %s: %v", e.Op, e.Err)
}

func (e *PersistenceError) Unwrap() error {
	return e.Err
}
