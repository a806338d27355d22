package helper

import (
	"errors"
	"fmt"
	"log"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type ErrorKind int

const (
	KindValidation ErrorKind = iota + 1
	KindNotFound
	KindConflict
	KindForbidden
	KindUnauthenticated
	KindStorage
)

// AppError is the error taxonomy shared by repositories, services and
// controllers. Message is safe to show to the caller; Err is only logged.
type AppError struct {
	Kind    ErrorKind
	Message string
	Fields  map[string][]string
	Err     error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *AppError) Unwrap() error { return e.Err }

func (e *AppError) Status() int {
	switch e.Kind {
	case KindValidation:
		return fiber.StatusBadRequest
	case KindNotFound:
		return fiber.StatusNotFound
	case KindConflict:
		return fiber.StatusConflict
	case KindForbidden:
		return fiber.StatusForbidden
	case KindUnauthenticated:
		return fiber.StatusUnauthorized
	default:
		return fiber.StatusInternalServerError
	}
}

func ValidationErr(message string) *AppError {
	return &AppError{Kind: KindValidation, Message: message}
}

func FieldErr(field, message string) *AppError {
	return &AppError{
		Kind:    KindValidation,
		Message: message,
		Fields:  map[string][]string{field: {message}},
	}
}

func NotFoundErr(message string) *AppError {
	return &AppError{Kind: KindNotFound, Message: message}
}

func ConflictErr(message string, err error) *AppError {
	return &AppError{Kind: KindConflict, Message: message, Err: err}
}

func ForbiddenErr(message string) *AppError {
	return &AppError{Kind: KindForbidden, Message: message}
}

func StorageErr(message string, err error) *AppError {
	return &AppError{Kind: KindStorage, Message: message, Err: err}
}

// IsKind reports whether err is an *AppError of the given kind.
func IsKind(err error, kind ErrorKind) bool {
	var ae *AppError
	return errors.As(err, &ae) && ae.Kind == kind
}

// Classify turns raw store errors into *AppError; label names the entity
// for user-facing messages ("locker", "part spec").
func Classify(err error, label string) error {
	if err == nil {
		return nil
	}
	var ae *AppError
	if errors.As(err, &ae) {
		return ae
	}
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		return NotFoundErr(label + " not found")
	case IsDuplicateKey(err):
		return ConflictErr(label+" already exists", err)
	default:
		return StorageErr("failed to process "+label, err)
	}
}

// RespondError writes err using the standard envelope. Storage details are
// logged, never returned.
func RespondError(c *fiber.Ctx, err error) error {
	if err == nil {
		return nil
	}
	var ae *AppError
	if !errors.As(err, &ae) {
		var fe *fiber.Error
		if errors.As(err, &fe) {
			return JsonError(c, fe.Code, fe.Message)
		}
		ae = StorageErr("internal server error", err)
	}

	switch ae.Kind {
	case KindValidation:
		return JsonValidationError(c, ae.Message, ae.Fields)
	case KindStorage:
		log.Printf("[ERROR] %s %s: %v", c.Method(), c.OriginalURL(), ae)
		return JsonError(c, fiber.StatusInternalServerError, ae.Message)
	case KindConflict:
		if ae.Err != nil {
			log.Printf("[WARN] conflict on %s: %v", c.OriginalURL(), ae.Err)
		}
		return JsonError(c, ae.Status(), ae.Message)
	default:
		return JsonError(c, ae.Status(), ae.Message)
	}
}
