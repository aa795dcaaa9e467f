package candidateapimodels

import (
	apimodels "talent-tracker-backend/models/api"
	dbmodels "talent-tracker-backend/models/db"
	"time"
)

// CandidateData данные анкеты кандидата
type CandidateData struct {
	FirstName      string `json:"firstName" form:"firstName"`           // Имя
	LastName       string `json:"lastName" form:"lastName"`             // Фамилия
	Email          string `json:"email" form:"email"`                   // Емайл
	Phone          string `json:"phone" form:"phone"`                   // Телефон
	Address        string `json:"address" form:"address"`               // Адрес
	Education      string `json:"education" form:"education"`           // Образование
	WorkExperience string `json:"workExperience" form:"workExperience"` // Опыт работы
}

// CandidateFile файл резюме, уже принятый хранилищем
type CandidateFile struct {
	FileName string
	FilePath string
}

// Submission анкета вместе с принятым файлом (если он есть)
type Submission struct {
	CandidateData
	CV *CandidateFile
}

type CandidateView struct {
	ID             uint      `json:"id"`
	FirstName      string    `json:"firstName"`
	LastName       string    `json:"lastName"`
	Email          string    `json:"email"`
	Phone          string    `json:"phone"`
	Address        *string   `json:"address"`
	Education      *string   `json:"education"`
	WorkExperience *string   `json:"workExperience"`
	CvFileName     *string   `json:"cvFileName"`
	CvFilePath     *string   `json:"cvFilePath"`
	CreatedAt      time.Time `json:"createdAt"`
	UpdatedAt      time.Time `json:"updatedAt"`
}

type CandidateResponse struct {
	apimodels.Response
	Candidate *CandidateView `json:"candidate,omitempty"`
}

type CandidateListResponse struct {
	apimodels.Response
	Candidates []CandidateView `json:"candidates"`
}

func (v CandidateView) GetFIO() string {
	return v.FirstName + " " + v.LastName
}

func (s Submission) ToDB() dbmodels.Candidate {
	rec := dbmodels.Candidate{
		FirstName:      s.FirstName,
		LastName:       s.LastName,
		Email:          s.Email,
		Phone:          s.Phone,
		Address:        optional(s.Address),
		Education:      optional(s.Education),
		WorkExperience: optional(s.WorkExperience),
	}
	if s.CV != nil {
		rec.CvFileName = optional(s.CV.FileName)
		rec.CvFilePath = optional(s.CV.FilePath)
	}
	return rec
}

func CandidateConvert(rec dbmodels.Candidate) CandidateView {
	return CandidateView{
		ID:             rec.ID,
		FirstName:      rec.FirstName,
		LastName:       rec.LastName,
		Email:          rec.Email,
		Phone:          rec.Phone,
		Address:        rec.Address,
		Education:      rec.Education,
		WorkExperience: rec.WorkExperience,
		CvFileName:     rec.CvFileName,
		CvFilePath:     rec.CvFilePath,
		CreatedAt:      rec.CreatedAt,
		UpdatedAt:      rec.UpdatedAt,
	}
}

func NewCandidateResponse(message string, view CandidateView) CandidateResponse {
	return CandidateResponse{
		Response:  apimodels.NewResponse(message),
		Candidate: &view,
	}
}

func NewCandidateListResponse(message string, list []CandidateView) CandidateListResponse {
	if list == nil {
		list = []CandidateView{}
	}
	return CandidateListResponse{
		Response:   apimodels.NewResponse(message),
		Candidates: list,
	}
}

func optional(value string) *string {
	if value == "" {
		return nil
	}
	return &value
}
