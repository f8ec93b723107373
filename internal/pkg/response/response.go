package response

import "github.com/gofiber/fiber/v3"

type ErrorResponse struct {
	Error string `json:"error"`
}

type MessageResponse struct {
	Message string      `json:"message"`
	Data    interface{} `json:"data"`
}

const (
	MessageBadRequest          = "Bad Request"
	MessageNotFound            = "Not Found"
	MessageMethodNotAllowed    = "Method Not Allowed"
	MessageServiceUnavailable  = "Service Unavailable"
	MessageInternalServerError = "Internal Server Error"
	MessageError               = "Error"
)

// JSON writes data as the bare response body.
func JSON(c fiber.Ctx, status int, data interface{}) error {
	return c.Status(normalizeStatus(status)).JSON(data)
}

func Message(c fiber.Ctx, status int, message string, data interface{}) error {
	return c.Status(normalizeStatus(status)).JSON(MessageResponse{Message: message, Data: data})
}

func Error(c fiber.Ctx, status int, message string) error {
	st := normalizeStatus(status)
	if message == "" {
		message = DefaultMessageForStatus(st)
	}
	return c.Status(st).JSON(ErrorResponse{Error: message})
}

func normalizeStatus(status int) int {
	if status < 100 || status > 599 {
		return fiber.StatusInternalServerError
	}
	return status
}

func DefaultMessageForStatus(status int) string {
	switch status {
	case fiber.StatusBadRequest:
		return MessageBadRequest
	case fiber.StatusNotFound:
		return MessageNotFound
	case fiber.StatusMethodNotAllowed:
		return MessageMethodNotAllowed
	case fiber.StatusServiceUnavailable:
		return MessageServiceUnavailable
	default:
		if status >= 500 {
			return MessageInternalServerError
		}
		return MessageError
	}
}
