package xlsexport

import (
	"bytes"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/xuri/excelize/v2"
	candidateapimodels "talent-tracker-backend/models/api/candidate"
)

type Provider interface {
	ExportCandidateList(list []candidateapimodels.CandidateView) (*bytes.Buffer, error)
}

var Instance Provider

func NewHandler() {
	Instance = impl{}
}

type impl struct{}

var candidateHeaders = []string{"ID", "Name", "Email", "Phone", "Address", "Education", "Work experience", "CV", "Created"}

func (i impl) ExportCandidateList(list []candidateapimodels.CandidateView) (*bytes.Buffer, error) {
	f := excelize.NewFile()
	defer func() {
		if err := f.Close(); err != nil {
			log.WithError(err).Error("ошибка закрытия файла")
		}
	}()
	sheet := "Sheet1"
	row := 0
	row, err := writeHeader(f, sheet, row, candidateHeaders)
	if err != nil {
		return nil, errors.Wrap(err, "ошибка формирования заголовка в xlsx")
	}
	if len(list) != 0 {
		_, err = writeCandidateData(f, sheet, list, row)
		if err != nil {
			return nil, errors.Wrap(err, "ошибка формирования таблицы с данными в xlsx")
		}
	}
	if err = f.SetSheetName(sheet, "Candidates"); err != nil {
		return nil, err
	}
	return f.WriteToBuffer()
}

func writeCandidateData(f *excelize.File, sheet string, list []candidateapimodels.CandidateView, row int) (int, error) {
	if err := applyDataCellStyle(f, sheet, 1, row+1, len(candidateHeaders), len(list)+1); err != nil {
		return row, err
	}
	for _, item := range list {
		row++
		values := []interface{}{
			item.ID,
			item.GetFIO(),
			item.Email,
			item.Phone,
			valueOf(item.Address),
			valueOf(item.Education),
			valueOf(item.WorkExperience),
			valueOf(item.CvFileName),
			item.CreatedAt.Format("02.01.2006 15:04"),
		}
		for idx, value := range values {
			if err := writeColumn(f, sheet, idx+1, row, value); err != nil {
				return row, err
			}
		}
	}
	return row, nil
}

func valueOf(value *string) string {
	if value == nil {
		return ""
	}
	return *value
}
