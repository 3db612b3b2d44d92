// Package models defines the rows owned by the access store.
package models

// User is a registered account. Hash is the scrypt-derived password hash;
// the raw password is never stored. ScryptN/R/P are the cost parameters the
// hash was derived with.
type User struct {
	Email     string
	Hash      []byte
	Salt      []byte
	FirstName string
	LastName  string
	IsTeacher bool
	ScryptN   int
	ScryptR   int
	ScryptP   int
}

// Project is a collaborative workspace. Names are not unique.
type Project struct {
	ID   string
	Name string
}

// Admin names the single user allowed to delete a project.
type Admin struct {
	ProjectID string
	Email     string
}

// Member grants a user access to a project's files.
type Member struct {
	ProjectID string
	Email     string
}

// File is file metadata; names are unique within a project.
type File struct {
	ID        string
	ProjectID string
	Name      string
}
