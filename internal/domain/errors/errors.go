package errors

import (
	"fmt"
)

type ErrShopNotFound struct {
	Name string
}

func (e *ErrShopNotFound) Error() string {
	return "магазин не найден: " + e.Name
}

func (e *ErrShopNotFound) Is(target error) bool {
	_, ok := target.(*ErrShopNotFound)
	return ok
}

// ErrCredentialMissing возникает, когда магазин есть в конфигурации, но API ключ у него пустой.
type ErrCredentialMissing struct {
	Name string
}

func (e *ErrCredentialMissing) Error() string {
	return "API ключ для магазина не найден: " + e.Name
}

func (e *ErrCredentialMissing) Is(target error) bool {
	_, ok := target.(*ErrCredentialMissing)
	return ok
}

type ErrUnknownCommand struct {
	Command string
}

func (e *ErrUnknownCommand) Error() string {
	return "неизвестная команда: " + e.Command
}

type ErrMissingRequiredField struct {
	FieldName string
	Index     int
}

func (e *ErrMissingRequiredField) Error() string {
	return fmt.Sprintf("отсутствует обязательное поле: %s (запись %d)", e.FieldName, e.Index)
}

func (e *ErrMissingRequiredField) Is(target error) bool {
	_, ok := target.(*ErrMissingRequiredField)
	return ok
}

type ErrInvalidValue struct {
	FieldName string
	Value     string
}

func (e *ErrInvalidValue) Error() string {
	return fmt.Sprintf("некорректное значение '%s' для поля '%s'", e.Value, e.FieldName)
}

func (e *ErrInvalidValue) Is(target error) bool {
	_, ok := target.(*ErrInvalidValue)
	return ok
}

type ErrUnknownStorageType struct {
	StorageType string
}

func (e *ErrUnknownStorageType) Error() string {
	return fmt.Sprintf("неизвестный тип хранилища: %s", e.StorageType)
}

type ErrUnknownState struct {
	Flow string
	Step string
}

func (e *ErrUnknownState) Error() string {
	return fmt.Sprintf("нет обработчика для состояния %s/%s", e.Flow, e.Step)
}

// FailureKind различает причины неуспешного обращения к API маркетплейса.
type FailureKind string

const (
	KindCredentialInvalid FailureKind = "credential_invalid"
	KindNetworkFailure    FailureKind = "network_failure"
	KindEmptyData         FailureKind = "empty_data"
	KindMalformedData     FailureKind = "malformed_data"
	KindUnexpectedStatus  FailureKind = "unexpected_status"
	KindRateLimited       FailureKind = "rate_limited"
)

type ErrMarketplace struct {
	Kind       FailureKind
	StatusCode int
	Cause      error
}

func (e *ErrMarketplace) Error() string {
	msg := fmt.Sprintf("ошибка API маркетплейса (%s)", e.Kind)

	if e.StatusCode != 0 {
		msg += fmt.Sprintf(", статус %d", e.StatusCode)
	}

	if e.Cause != nil {
		msg += ": " + e.Cause.Error()
	}

	return msg
}

func (e *ErrMarketplace) Unwrap() error {
	return e.Cause
}

// Is сравнивает только вид ошибки, чтобы работал errors.Is(err, &ErrMarketplace{Kind: ...}).
func (e *ErrMarketplace) Is(target error) bool {
	t, ok := target.(*ErrMarketplace)
	if !ok {
		return false
	}

	return t.Kind == "" || t.Kind == e.Kind
}

type ErrBuildSQLQuery struct {
	Operation string
	Cause     error
}

func (e *ErrBuildSQLQuery) Error() string {
	return fmt.Sprintf("ошибка при построении SQL запроса для %s: %v", e.Operation, e.Cause)
}

func (e *ErrBuildSQLQuery) Unwrap() error {
	return e.Cause
}

type ErrSQLExecution struct {
	Operation string
	Cause     error
}

func (e *ErrSQLExecution) Error() string {
	return fmt.Sprintf("ошибка при выполнении SQL запроса для %s: %v", e.Operation, e.Cause)
}

func (e *ErrSQLExecution) Unwrap() error {
	return e.Cause
}

type ErrSQLScan struct {
	Entity string
	Cause  error
}

func (e *ErrSQLScan) Error() string {
	return fmt.Sprintf("ошибка при сканировании %s: %v", e.Entity, e.Cause)
}

func (e *ErrSQLScan) Unwrap() error {
	return e.Cause
}

type HTTPError struct {
	StatusCode int
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("HTTP error: %d", e.StatusCode)
}
