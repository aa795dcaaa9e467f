package candidatenotify

import (
	"testing"

	"github.com/stretchr/testify/require"
	filestorage "talent-tracker-backend/lib/file-storage"
	localstorage "talent-tracker-backend/lib/file-storage/local-storage"
	candidateapimodels "talent-tracker-backend/models/api/candidate"
)

type fakeMailer struct {
	configured bool
	sent       []string
}

func (f *fakeMailer) SendEMail(to, subject, message string) error {
	f.sent = append(f.sent, to+"|"+subject+"|"+message)
	return nil
}

func (f *fakeMailer) IsConfigured() bool {
	return f.configured
}

func TestNotify(t *testing.T) {
	files := filestorage.NewInstance(localstorage.NewInstance(t.TempDir()), filestorage.DefaultPolicy())

	t.Run(`disabled without recipient or smtp`, func(t *testing.T) {
		require.Nil(t, NewInstance(&fakeMailer{configured: true}, files, ""))
		require.Nil(t, NewInstance(&fakeMailer{configured: false}, files, "hr@example.com"))
		require.Nil(t, NewInstance(nil, files, "hr@example.com"))
		require.Nil(t, NewInstance(&fakeMailer{configured: true}, nil, "hr@example.com"))
	})

	t.Run(`sends body with cv link`, func(t *testing.T) {
		mailer := &fakeMailer{configured: true}
		notifier := NewInstance(mailer, files, "hr@example.com")
		require.NotNil(t, notifier)

		cv := "cv-1-2.pdf"
		notifier.NewCandidate(candidateapimodels.CandidateView{
			ID:         7,
			FirstName:  "John",
			LastName:   "Doe",
			Email:      "john.doe@example.com",
			Phone:      "+1234567890",
			CvFileName: &cv,
		})
		require.Len(t, mailer.sent, 1)
		require.Contains(t, mailer.sent[0], "hr@example.com|New candidate|")
		require.Contains(t, mailer.sent[0], "John Doe")
		require.Contains(t, mailer.sent[0], "CV: "+files.FileURL("cv-1-2.pdf")+"\r\n")
		require.Contains(t, mailer.sent[0], "/api/files/cv/cv-1-2.pdf")
	})
}
