package candidatenotify

import (
	"fmt"
	"strings"

	log "github.com/sirupsen/logrus"
	filestorage "talent-tracker-backend/lib/file-storage"
	"talent-tracker-backend/lib/smtp"
	candidateapimodels "talent-tracker-backend/models/api/candidate"
)

type Notifier interface {
	NewCandidate(view candidateapimodels.CandidateView)
}

type impl struct {
	mailer         smtp.Provider
	files          filestorage.Provider
	recruiterEmail string
}

// NewInstance nil, если оповещать некого или smtp не настроен
func NewInstance(mailer smtp.Provider, files filestorage.Provider, recruiterEmail string) Notifier {
	if mailer == nil || files == nil || recruiterEmail == "" || !mailer.IsConfigured() {
		return nil
	}
	return &impl{
		mailer:         mailer,
		files:          files,
		recruiterEmail: recruiterEmail,
	}
}

func (i *impl) NewCandidate(view candidateapimodels.CandidateView) {
	err := i.mailer.SendEMail(i.recruiterEmail, "New candidate", i.BuildBody(view))
	if err != nil {
		log.WithError(err).WithField("candidate_id", view.ID).Warn("не удалось оповестить рекрутера о новом кандидате")
	}
}

func (i *impl) BuildBody(view candidateapimodels.CandidateView) string {
	sb := strings.Builder{}
	sb.WriteString(fmt.Sprintf("A new candidate was added: %s\r\n", view.GetFIO()))
	sb.WriteString(fmt.Sprintf("Email: %s\r\n", view.Email))
	sb.WriteString(fmt.Sprintf("Phone: %s\r\n", view.Phone))
	if view.CvFileName != nil {
		sb.WriteString(fmt.Sprintf("CV: %s\r\n", i.files.FileURL(*view.CvFileName)))
	}
	return sb.String()
}
