package apperrors

import (
	"fmt"
	"net/http"
)

/*
Фабрики и предопределенные переменные для доменных ошибок платформы.
*/

// =========================================================================
// Фабричные функции (оборачивание ошибок репозитория)
// =========================================================================

// ErrNotFound - фабрика для ошибки "не найдено" (404)
func ErrNotFound(err error, domain, message string) *AppError {
	return Wrap(err, CodeNotFound, domain, message, http.StatusNotFound)
}

// ErrConflict - фабрика для конфликтов (дубликат имени/заявки).
// 400, как зафиксировано в таксономии ошибок платформы.
func ErrConflict(err error, domain, message string) *AppError {
	return Wrap(err, CodeConflict, domain, message, http.StatusBadRequest)
}

// =========================================================================
// Фабричные функции (новые ошибки)
// =========================================================================

// ErrInvalidJobStatus - нарушен guard жизненного цикла джобы (400).
// Сообщение обязано называть ТЕКУЩИЙ статус джобы.
func ErrInvalidJobStatus(required, actual string) *AppError {
	return New(
		CodeInvalidStatus,
		"job",
		fmt.Sprintf("Job must be in '%s' status. Current status: %s", required, actual),
		http.StatusBadRequest,
	)
}

// ErrInvalidOperation - фабрика для невалидных операций (400)
func ErrInvalidOperation(domain, message string) *AppError {
	return New(CodeInvalidOperation, domain, message, http.StatusBadRequest)
}

// =========================================================================
// Предопределенные переменные (частые, статичные ошибки)
// =========================================================================

// ErrCannotModifySelf - админ пытается удалить/деактивировать самого себя.
var ErrCannotModifySelf = New(
	CodeForbidden,
	"business_logic",
	"Operation on self is not allowed",
	http.StatusForbidden,
)

// ErrInsufficientPermissions - не-админ пытается выполнить админ-действие.
var ErrInsufficientPermissions = New(
	CodeForbidden,
	"auth",
	"Insufficient permissions",
	http.StatusForbidden,
)

// --- Jobs & Applications ---

// ErrJobNotOpen - джоба не принимает заявки.
var ErrJobNotOpen = New(
	CodeInvalidStatus,
	"job",
	"Job is not open for applications",
	http.StatusBadRequest,
)

// ErrAlreadyApplied - заявка (job, user) уже существует.
var ErrAlreadyApplied = New(
	CodeConflict,
	"job",
	"You have already applied for this job",
	http.StatusBadRequest,
)

// ErrJobNotAssignedToCaller - деливерить может только назначенный фрилансер.
var ErrJobNotAssignedToCaller = New(
	CodeForbidden,
	"job",
	"Job is not assigned to you",
	http.StatusForbidden,
)

// --- Bots & Bot accounts ---

// ErrBotNameTaken - имя бота уже занято.
var ErrBotNameTaken = New(
	CodeConflict,
	"bot",
	"Bot name already exists",
	http.StatusBadRequest,
)

// ErrBotAccountNameTaken - имя бот-аккаунта уже занято.
var ErrBotAccountNameTaken = New(
	CodeConflict,
	"bot_account",
	"Bot account name already exists",
	http.StatusBadRequest,
)

// --- Auth & User Status ---

// ErrEmailAlreadyExists - email уже используется.
var ErrEmailAlreadyExists = New(
	CodeAlreadyExists,
	"auth",
	"Email already in use",
	http.StatusConflict,
)

// ErrInvalidCredentials - неверный email или пароль.
var ErrInvalidCredentials = New(
	CodeInvalidCredentials,
	"auth",
	"Invalid email or password",
	http.StatusUnauthorized,
)

// ErrInvalidToken - неверный или просроченный токен.
var ErrInvalidToken = New(
	CodeInvalidToken,
	"auth",
	"Invalid or expired token",
	http.StatusUnauthorized,
)

// ErrUserInactive - аккаунт деактивирован администратором.
var ErrUserInactive = New(
	CodeForbidden,
	"auth",
	"Your account has been deactivated",
	http.StatusForbidden,
)
