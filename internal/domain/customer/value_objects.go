package customer

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"perks-ledger/internal/pkg/errs"

	"go.jetify.com/typeid/v2"
)

const (
	MaxNameLength = 100
	MaxCodeLength = 128

	// CodePrefix tags generated scannable codes.
	CodePrefix = "perk"
)

var (
	ErrInvalidEmail   = errs.Mark(errs.New("invalid email format"), errs.ErrInvalidArgument)
	ErrInvalidName    = errs.Mark(errs.New("name must be between 1 and 100 characters"), errs.ErrInvalidArgument)
	ErrInvalidCode    = errs.Mark(errs.New("invalid scannable code"), errs.ErrInvalidArgument)
	ErrMissingSubject = errs.Mark(errs.New("auth provider id is required"), errs.ErrInvalidArgument)

	ErrNotFound          = errs.Mark(errs.New("customer not found"), errs.ErrNotFound)
	ErrEmailTaken        = errs.Mark(errs.New("a customer with this email already exists"), errs.ErrConflict)
	ErrAlreadyRegistered = errs.Mark(errs.New("customer already registered"), errs.ErrConflict)
)

var emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)

type Email struct {
	value string
}

func NewEmail(s string) (Email, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if !emailRegex.MatchString(s) {
		return Email{}, ErrInvalidEmail
	}
	return Email{value: s}, nil
}

func (e Email) Value() string { return e.value }

type Name struct {
	value string
}

func NewName(s string) (Name, error) {
	s = strings.TrimSpace(s)
	if s == "" || utf8.RuneCountInString(s) > MaxNameLength {
		return Name{}, ErrInvalidName
	}
	return Name{value: s}, nil
}

func (n Name) Value() string { return n.value }

// Code is the value encoded in a customer's QR code. Codes issued before
// generation moved to typeids are arbitrary strings, so only shape is checked.
type Code struct {
	value string
}

func ParseCode(s string) (Code, error) {
	s = strings.TrimSpace(s)
	if s == "" || len(s) > MaxCodeLength {
		return Code{}, ErrInvalidCode
	}
	return Code{value: s}, nil
}

// GenerateCode returns a fresh "perk_..." code. Uniqueness against stored
// customers is checked by the caller.
func GenerateCode() (Code, error) {
	tid, err := typeid.Generate(CodePrefix)
	if err != nil {
		return Code{}, errs.Wrap(err, "generate scannable code")
	}
	return Code{value: tid.String()}, nil
}

func (c Code) Value() string { return c.value }
