package middleware

import (
	"github.com/gofiber/fiber/v2"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	filestorage "talent-tracker-backend/lib/file-storage"
	apimodels "talent-tracker-backend/models/api"
)

// ErrorHandler последний рубеж: любая необработанная ошибка превращается в json ответ.
// Текст ошибки отдается клиенту только в режиме разработки
func ErrorHandler(isDevelopment bool) fiber.ErrorHandler {
	return func(ctx *fiber.Ctx, err error) error {
		// тело обрезается сервером до обработчиков, для клиента это отказ в приеме файла
		if errors.Is(err, fiber.ErrRequestEntityTooLarge) {
			return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(filestorage.MsgUploadFailed, filestorage.ErrTooLarge.Error()))
		}
		var fiberErr *fiber.Error
		if errors.As(err, &fiberErr) && fiberErr.Code < fiber.StatusInternalServerError {
			return ctx.Status(fiberErr.Code).JSON(apimodels.NewError(fiberErr.Message, fiberErr.Message))
		}
		log.WithError(err).
			WithField("path", ctx.Path()).
			Error("необработанная ошибка запроса")
		errText := "Something went wrong"
		if isDevelopment {
			errText = err.Error()
		}
		return ctx.Status(fiber.StatusInternalServerError).JSON(apimodels.NewError("Internal server error", errText))
	}
}

// NotFound обработчик для всех незарегистрированных маршрутов
func NotFound() fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		return ctx.Status(fiber.StatusNotFound).JSON(
			apimodels.NewError("Route not found", "Cannot "+ctx.Method()+" "+ctx.OriginalURL()))
	}
}
