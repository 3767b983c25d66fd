package models

type StatusCheck struct {
	ID         string  `json:"id" gorm:"type:varchar(255);primaryKey"`
	ClientName string  `json:"client_name" gorm:"type:text;not null"`
	Timestamp  ISOTime `json:"timestamp" gorm:"type:text;not null"`
}

func (StatusCheck) TableName() string {
	return "status_checks"
}
