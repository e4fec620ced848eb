package util

import "errors"

var (
	ErrUserNotFound         = errors.New("用户不存在")
	ErrEmailRegistered      = errors.New("该邮箱已被注册")
	ErrInvalidCredentials   = errors.New("invalid email or password")
	ErrCategoryNotFound     = errors.New("category not found")
	ErrNoContentAvailable   = errors.New("no content available for category")
	ErrQuotaExceeded        = errors.New("daily session quota exceeded")
	ErrSessionAlreadyActive = errors.New("a session is already active")
	ErrNoActiveSession      = errors.New("no active session")
	ErrSessionComplete      = errors.New("session queue already answered")
	ErrSessionNotFound      = errors.New("session not found")
	ErrUnknownPlan          = errors.New("unknown subscription plan")
)
