package providers

import "github.com/jackc/pgx/v5/pgxpool"

type Providers struct {
	AuthProvider       *AuthProvider
	SubmissionProvider *SubmissionProvider
}

func New(db *pgxpool.Pool) *Providers {
	return &Providers{
		AuthProvider:       NewAuthProvider(db),
		SubmissionProvider: NewSubmissionProvider(db),
	}
}
