package board

import (
	"context"
	"errors"
	"unicode/utf8"

	"github.com/Nourbaganne/Esport-post-board/pkg/client"
)

// Mode — режим формы авторизации
type Mode int

const (
	ModeSignIn Mode = iota
	ModeSignUp
)

// MinPasswordLength применяется на уровне ввода при регистрации
const MinPasswordLength = 6

var ErrPasswordTooShort = errors.New("Password must be at least 6 characters")

// SessionService — удалённые операции сессии (см. client.Client)
type SessionService interface {
	SignUp(ctx context.Context, email, password, username string) (*client.User, error)
	SignIn(ctx context.Context, email, password string) (*client.User, error)
}

// AuthForm — состояние формы входа/регистрации. Ошибка удалённого
// вызова отдаётся как есть, введённое сохраняется
type AuthForm struct {
	session SessionService

	mode     Mode
	Email    string
	Password string
	Username string
}

// NewAuthForm: начальный режим приходит снаружи (?mode=signup)
func NewAuthForm(session SessionService, mode Mode) *AuthForm {
	return &AuthForm{session: session, mode: mode}
}

func (f *AuthForm) Mode() Mode {
	return f.mode
}

// Toggle переключает режим формы
func (f *AuthForm) Toggle() {
	if f.mode == ModeSignIn {
		f.mode = ModeSignUp
	} else {
		f.mode = ModeSignIn
	}
}

// Submit выполняет вход или регистрацию в зависимости от режима.
// Короткий пароль при регистрации отсекается до сетевого вызова.
// Создание профиля — забота сервера, его сбой не блокирует регистрацию
func (f *AuthForm) Submit(ctx context.Context) (*client.User, error) {
	if f.mode == ModeSignUp {
		// Считаем символы, не байты: пароль в кириллице длиннее в байтах
		if utf8.RuneCountInString(f.Password) < MinPasswordLength {
			return nil, ErrPasswordTooShort
		}
		return f.session.SignUp(ctx, f.Email, f.Password, f.Username)
	}

	return f.session.SignIn(ctx, f.Email, f.Password)
}
