package service

import "errors"

var (
	PasswordIncorrect     = errors.New("password incorrect")
	TokenIncorrect        = errors.New("token incorrect")
	ErrSurveyNotFound     = errors.New("survey not found")
	ErrSubmissionNotFound = errors.New("submission not found")
	ErrEmptyImport        = errors.New("import payload contains no submissions")
	ErrNoUsableSource     = errors.New("all submission count sources failed")
)
