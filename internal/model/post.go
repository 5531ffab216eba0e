package model

import "errors"

// Post is a stored post row. Posts are never updated or deleted.
type Post struct {
	ID          int64   `db:"id" json:"id"`
	UID         int64   `db:"uid" json:"uid"`
	Title       string  `db:"title" json:"title"`
	Description string  `db:"description" json:"description"`
	Location    string  `db:"location" json:"location"`
	Pic         *string `db:"pic" json:"pic"`
}

// PostSummary is one element of the list reply: the post joined with its
// authoring username.
type PostSummary struct {
	ID          int64   `db:"id" json:"id"`
	Title       string  `db:"title" json:"title"`
	Description string  `db:"description" json:"description"`
	Pic         *string `db:"pic" json:"pic"`
	Author      string  `db:"author" json:"author"`
}

// PostDetail is the show reply: one post with its committed like count
// and whether the requesting user has liked it.
type PostDetail struct {
	ID          int64   `db:"id" json:"id"`
	UID         int64   `db:"uid" json:"uid"`
	Title       string  `db:"title" json:"title"`
	Description string  `db:"description" json:"description"`
	Location    string  `db:"location" json:"location"`
	Pic         *string `db:"pic" json:"pic"`
	Likes       int64   `db:"likes" json:"likes"`
	ILiked      bool    `db:"i_liked" json:"i_liked"`
}

var (
	// ErrPostNotFound is returned when no post matches the requested id.
	ErrPostNotFound = errors.New("post not found")

	// ErrPostNotInserted is returned when the post insert affects no rows.
	ErrPostNotInserted = errors.New("post row not inserted")
)
