package pdfexport

import (
	"bytes"
	"fmt"

	"github.com/go-pdf/fpdf"
	"github.com/pkg/errors"
	candidateapimodels "talent-tracker-backend/models/api/candidate"
)

// GenerateCandidateCard карточка кандидата в pdf
func GenerateCandidateCard(view candidateapimodels.CandidateView) (pdfFile []byte, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = errors.Errorf("GenerateCandidateCard panic recover: %v", r)
		}
	}()
	pdf := fpdf.New("P", "mm", "A4", "")
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.SetTitle(fmt.Sprintf("Candidate %d", view.ID), true)
	pdf.AddPage()

	pdf.SetFont("Arial", "B", 16)
	pdf.CellFormat(0, 10, tr(view.GetFIO()), "", 1, "L", false, 0, "")
	pdf.Ln(2)

	fields := []struct {
		label string
		value string
	}{
		{"Email", view.Email},
		{"Phone", view.Phone},
		{"Address", valueOf(view.Address)},
		{"CV", valueOf(view.CvFileName)},
		{"Added", view.CreatedAt.Format("02.01.2006 15:04")},
	}
	for _, field := range fields {
		pdf.SetFont("Arial", "B", 11)
		pdf.CellFormat(35, 7, tr(field.label+":"), "", 0, "L", false, 0, "")
		pdf.SetFont("Arial", "", 11)
		pdf.MultiCell(0, 7, tr(field.value), "", "L", false)
	}

	for _, section := range []struct {
		title string
		text  *string
	}{
		{"Education", view.Education},
		{"Work experience", view.WorkExperience},
	} {
		if section.text == nil {
			continue
		}
		pdf.Ln(4)
		pdf.SetFont("Arial", "B", 12)
		pdf.CellFormat(0, 8, tr(section.title), "B", 1, "L", false, 0, "")
		pdf.SetFont("Arial", "", 11)
		pdf.MultiCell(0, 6, tr(*section.text), "", "L", false)
	}

	if pdf.Error() != nil {
		return nil, pdf.Error()
	}
	buf := new(bytes.Buffer)
	err = pdf.Output(buf)
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func valueOf(value *string) string {
	if value == nil {
		return "-"
	}
	return *value
}
