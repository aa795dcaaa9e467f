package apiv1

import (
	"fmt"

	"github.com/gofiber/fiber/v2"
	"talent-tracker-backend/controllers"
	"talent-tracker-backend/lib/candidate"
	pdfexport "talent-tracker-backend/lib/export/pdf"
	xlsexport "talent-tracker-backend/lib/export/xls"
	filestorage "talent-tracker-backend/lib/file-storage"
	apimodels "talent-tracker-backend/models/api"
	candidateapimodels "talent-tracker-backend/models/api/candidate"
)

type candidateApiController struct {
	controllers.BaseAPIController
}

func InitCandidateApiRouters(app *fiber.App) {
	controller := candidateApiController{}
	app.Route("candidates", func(router fiber.Router) {
		router.Post("", controller.create)
		router.Get("", controller.list)
		router.Get("export/xlsx", controller.exportXlsx)
		router.Route(":id", func(idRouter fiber.Router) {
			idRouter.Get("", controller.get)
			idRouter.Get("card", controller.card)
		})
	})
}

// @Summary Добавление кандидата
// @Tags Кандидат
// @Description Добавление кандидата с необязательным файлом резюме (pdf, doc, docx до 5MB)
// @Accept  multipart/form-data
// @Param   firstName		formData	string	true	"Имя"
// @Param   lastName		formData	string	true	"Фамилия"
// @Param   email			formData	string	true	"Емайл"
// @Param   phone			formData	string	true	"Телефон"
// @Param   address			formData	string	false	"Адрес"
// @Param   education		formData	string	false	"Образование"
// @Param   workExperience	formData	string	false	"Опыт работы"
// @Param   cv				formData	file	false	"Резюме"
// @Success 201 {object} candidateapimodels.CandidateResponse
// @Failure 400 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/candidates [post]
func (c *candidateApiController) create(ctx *fiber.Ctx) error {
	var payload candidateapimodels.CandidateData
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(candidate.MsgValidationFailed, err.Error()))
	}
	submission := candidateapimodels.Submission{CandidateData: payload}

	// файл не обязателен: ошибка означает его отсутствие
	if header, err := ctx.FormFile("cv"); err == nil {
		file, err := filestorage.Instance.Accept(ctx.UserContext(), header)
		if err != nil {
			if filestorage.IsRejected(err) {
				return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(filestorage.MsgUploadFailed, err.Error()))
			}
			return c.SendError(ctx, c.GetLogger(ctx), err, filestorage.MsgUploadFailed)
		}
		submission.CV = &candidateapimodels.CandidateFile{
			FileName: file.Name,
			FilePath: file.Path,
		}
	}

	outcome := candidate.Instance.CreateCandidate(ctx.UserContext(), submission)
	switch outcome.Kind {
	case candidate.OutcomeCreated:
		return ctx.Status(fiber.StatusCreated).JSON(candidateapimodels.NewCandidateResponse(outcome.Message, *outcome.Candidate))
	case candidate.OutcomeRejected:
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(outcome.Message, outcome.ErrorText()))
	default:
		return ctx.Status(fiber.StatusInternalServerError).JSON(apimodels.NewError(outcome.Message, outcome.ErrorText()))
	}
}

// @Summary Список кандидатов
// @Tags Кандидат
// @Description Все кандидаты, новые первыми
// @Success 200 {object} candidateapimodels.CandidateListResponse
// @Failure 500 {object} apimodels.Response
// @router /api/candidates [get]
func (c *candidateApiController) list(ctx *fiber.Ctx) error {
	list, err := candidate.Instance.ListCandidates(ctx.UserContext())
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Failed to retrieve candidates")
	}
	return ctx.Status(fiber.StatusOK).JSON(candidateapimodels.NewCandidateListResponse("Candidates retrieved successfully", list))
}

// @Summary Получение по ИД
// @Tags Кандидат
// @Param   id	path	int	true	"ИД кандидата"
// @Success 200 {object} candidateapimodels.CandidateResponse
// @Failure 400 {object} apimodels.Response
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/candidates/{id} [get]
func (c *candidateApiController) get(ctx *fiber.Ctx) error {
	view, errResp := c.getCandidate(ctx)
	if view == nil {
		return errResp
	}
	return ctx.Status(fiber.StatusOK).JSON(candidateapimodels.NewCandidateResponse("Candidate retrieved successfully", *view))
}

// @Summary Карточка кандидата в PDF
// @Tags Кандидат
// @Param   id	path	int	true	"ИД кандидата"
// @Produce application/pdf
// @Success 200
// @Failure 400 {object} apimodels.Response
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/candidates/{id}/card [get]
func (c *candidateApiController) card(ctx *fiber.Ctx) error {
	view, errResp := c.getCandidate(ctx)
	if view == nil {
		return errResp
	}
	body, err := pdfexport.GenerateCandidateCard(*view)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Failed to generate candidate card")
	}
	ctx.Attachment(fmt.Sprintf("candidate-%d.pdf", view.ID))
	return ctx.Status(fiber.StatusOK).Send(body)
}

// @Summary Выгрузка кандидатов в Excel
// @Tags Кандидат
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Success 200
// @Failure 500 {object} apimodels.Response
// @router /api/candidates/export/xlsx [get]
func (c *candidateApiController) exportXlsx(ctx *fiber.Ctx) error {
	list, err := candidate.Instance.ListCandidates(ctx.UserContext())
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Failed to retrieve candidates")
	}
	buf, err := xlsexport.Instance.ExportCandidateList(list)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Failed to export candidates")
	}
	ctx.Attachment("candidates.xlsx")
	return ctx.Status(fiber.StatusOK).Send(buf.Bytes())
}

// getCandidate nil и уже отправленный ответ с ошибкой, если кандидата не получить
func (c *candidateApiController) getCandidate(ctx *fiber.Ctx) (*candidateapimodels.CandidateView, error) {
	id, err := c.GetID(ctx)
	if err != nil {
		return nil, ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError("Invalid candidate ID", err.Error()))
	}
	view, err := candidate.Instance.GetCandidate(ctx.UserContext(), id)
	if err != nil {
		return nil, c.SendError(ctx, c.GetLogger(ctx), err, "Failed to retrieve candidate")
	}
	if view == nil {
		return nil, ctx.Status(fiber.StatusNotFound).JSON(apimodels.NewError("Candidate not found", "No candidate found with the provided ID"))
	}
	return view, nil
}
