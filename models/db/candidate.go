package dbmodels

type Candidate struct {
	BaseModel
	FirstName      string  `gorm:"type:varchar(50);not null"`
	LastName       string  `gorm:"type:varchar(50);not null"`
	Email          string  `gorm:"type:text;not null;uniqueIndex"`
	Phone          string  `gorm:"type:text;not null"`
	Address        *string `gorm:"type:varchar(200)"`
	Education      *string `gorm:"type:text"`
	WorkExperience *string `gorm:"type:text"`
	CvFileName     *string `gorm:"type:varchar(255)"`
	CvFilePath     *string `gorm:"type:varchar(1024)"`
}
