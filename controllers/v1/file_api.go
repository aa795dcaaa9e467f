package apiv1

import (
	"github.com/gofiber/fiber/v2"
	"github.com/pkg/errors"
	"talent-tracker-backend/controllers"
	filestorage "talent-tracker-backend/lib/file-storage"
	apimodels "talent-tracker-backend/models/api"
)

type fileApiController struct {
	controllers.BaseAPIController
}

func InitFileApiRouters(app *fiber.App) {
	controller := fileApiController{}
	app.Route("files", func(router fiber.Router) {
		router.Get("cv/:fileName", controller.downloadCV)
	})
}

// @Summary Скачать резюме
// @Tags Файлы
// @Description Скачать резюме по имени, выданному при загрузке
// @Param   fileName	path	string	true	"Имя файла"
// @Produce octet-stream
// @Success 200
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/files/cv/{fileName} [get]
func (c *fileApiController) downloadCV(ctx *fiber.Ctx) error {
	fileName := ctx.Params("fileName")
	reader, size, err := filestorage.Instance.Open(ctx.UserContext(), fileName)
	if err != nil {
		if errors.Is(err, filestorage.ErrFileNotFound) {
			return ctx.Status(fiber.StatusNotFound).JSON(apimodels.NewError("File not found", "The requested CV file could not be found"))
		}
		return c.SendError(ctx, c.GetLogger(ctx), err, "Failed to download file")
	}
	ctx.Attachment(fileName)
	return ctx.Status(fiber.StatusOK).SendStream(reader, int(size))
}
