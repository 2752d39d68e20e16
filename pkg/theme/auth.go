package theme

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownAuthMethod is returned by ParseAuthMethod for unsupported names.
var ErrUnknownAuthMethod = errors.New("theme: unknown auth method")

// AuthMethod is the identifier a user signs in with.
type AuthMethod string

const (
	AuthMethodEmail      AuthMethod = "email"
	AuthMethodScreenName AuthMethod = "screenName"
	AuthMethodUserID     AuthMethod = "userId"
)

// AuthMethods lists the supported methods in display order.
var AuthMethods = []AuthMethod{AuthMethodEmail, AuthMethodScreenName, AuthMethodUserID}

// ParseAuthMethod matches raw against the supported methods ignoring case.
func ParseAuthMethod(raw string) (AuthMethod, error) {
	trimmed := strings.TrimSpace(raw)
	for _, method := range AuthMethods {
		if strings.EqualFold(trimmed, string(method)) {
			return method, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownAuthMethod, raw)
}

// Description is the translation key of the method's placeholder.
func (m AuthMethod) Description() string {
	return string(m)
}

// KeyboardType returns the keyboard suited to the method.
func (m AuthMethod) KeyboardType() KeyboardType {
	switch m {
	case AuthMethodEmail:
		return KeyboardEmailAddress
	case AuthMethodScreenName:
		return KeyboardASCIICapable
	case AuthMethodUserID:
		return KeyboardNumberPad
	default:
		return KeyboardDefault
	}
}

// IconType names the icon family, resolved as "default-<type>-icon".
func (m AuthMethod) IconType() string {
	switch m {
	case AuthMethodEmail:
		return "mail"
	default:
		return "user"
	}
}
