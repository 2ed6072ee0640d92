package models

import (
	"gorm.io/gorm"
)

const MinAcademicYear = 2000

type AcademicDetails struct {
	gorm.Model
	AcademicField              string  `gorm:"not null" json:"academicField"`
	AcademicYear               int     `gorm:"not null" json:"academicYear"` // [2000, currentYear+10]
	CourseName                 string  `gorm:"not null" json:"courseName"`
	CollegeName                string  `gorm:"not null" json:"collegeName"`
	LastAcademicYearPercentage float64 `gorm:"default:0" json:"lastAcademicYearPercentage"`
	Hobbies                    string  `gorm:"default:''" json:"hobbies"`
	BeneficiaryID              uint    `json:"beneficiaryId"`
}
