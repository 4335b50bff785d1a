package models

import "strings"

// Status is the case lifecycle state.
//
//	OPEN -> IN_PROGRESS -> SOLVED
//	IN_PROGRESS -> OPEN (pause)
//	OPEN | IN_PROGRESS -> CLOSED -> OPEN (reopen)
//
// SOLVED is terminal for solving; CLOSED never reaches SOLVED directly.
type Status string

const (
	StatusOpen       Status = "OPEN"
	StatusInProgress Status = "IN_PROGRESS"
	StatusSolved     Status = "SOLVED"
	StatusClosed     Status = "CLOSED"
)

func (s Status) IsValid() bool {
	switch s {
	case StatusOpen, StatusInProgress, StatusSolved, StatusClosed:
		return true
	}
	return false
}

// IsWorkable reports whether the case still accepts participants and solutions.
func (s Status) IsWorkable() bool {
	return s == StatusOpen || s == StatusInProgress
}

type Privacy string

const (
	PrivacyPublic     Privacy = "PUBLIC"
	PrivacyPrivate    Privacy = "PRIVATE"
	PrivacyRestricted Privacy = "RESTRICTED"
)

func (p Privacy) IsValid() bool {
	switch p {
	case PrivacyPublic, PrivacyPrivate, PrivacyRestricted:
		return true
	}
	return false
}

type CaseType string

const (
	CaseTypeMurder        CaseType = "MURDER"
	CaseTypeFraud         CaseType = "FRAUD"
	CaseTypeRobbery       CaseType = "ROBBERY"
	CaseTypeCyber         CaseType = "CYBER"
	CaseTypeMissingPerson CaseType = "MISSING_PERSON"
	CaseTypeDrugs         CaseType = "DRUGS"
	CaseTypeAssault       CaseType = "ASSAULT"
	CaseTypeForgery       CaseType = "FORGERY"
	CaseTypeArson         CaseType = "ARSON"
	CaseTypeOther         CaseType = "OTHER"
)

func (c CaseType) IsValid() bool {
	switch c {
	case CaseTypeMurder, CaseTypeFraud, CaseTypeRobbery, CaseTypeCyber, CaseTypeMissingPerson,
		CaseTypeDrugs, CaseTypeAssault, CaseTypeForgery, CaseTypeArson, CaseTypeOther:
		return true
	}
	return false
}

type Difficulty string

const (
	DifficultyEasy   Difficulty = "EASY"
	DifficultyMedium Difficulty = "MEDIUM"
	DifficultyHard   Difficulty = "HARD"
	DifficultyExpert Difficulty = "EXPERT"
)

func (d Difficulty) IsValid() bool {
	switch d {
	case DifficultyEasy, DifficultyMedium, DifficultyHard, DifficultyExpert:
		return true
	}
	return false
}

func normalizeEnum(s string) string {
	return strings.ToUpper(strings.TrimSpace(s))
}
