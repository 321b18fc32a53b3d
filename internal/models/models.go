package models

import (
	"time"
)

type User struct {
	UserID          string    `json:"userId" db:"user_id"`
	Username        string    `json:"username" db:"username"`
	Email           string    `json:"email" db:"email"`
	PasswordHash    string    `json:"-" db:"password_hash"`
	ProfilePhotoURL *string   `json:"profilePhotoUrl" db:"profile_photo_url"`
	CreatedAt       time.Time `json:"createdAt" db:"created_at"`
}

type Post struct {
	PostID    string    `json:"postId" db:"post_id"`
	AuthorID  string    `json:"authorId" db:"author_id"`
	Caption   string    `json:"caption" db:"caption"`
	ImageURL  *string   `json:"imageUrl" db:"image_url"`
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt time.Time `json:"updatedAt" db:"updated_at"`
}

// PostWithAuthor is a post joined with the author columns the feed needs.
type PostWithAuthor struct {
	Post
	AuthorUsername string `db:"author_username"`
	AuthorEmail    string `db:"author_email"`
}

type Follow struct {
	FollowID    string    `json:"followId" db:"follow_id"`
	FollowerID  string    `json:"followerId" db:"follower_id"`
	FollowingID string    `json:"followingId" db:"following_id"`
	CreatedAt   time.Time `json:"createdAt" db:"created_at"`
}

type Like struct {
	LikeID    string    `json:"likeId" db:"like_id"`
	UserID    string    `json:"userId" db:"user_id"`
	PostID    string    `json:"postId" db:"post_id"`
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
}

type Comment struct {
	CommentID string    `json:"commentId" db:"comment_id"`
	PostID    string    `json:"postId" db:"post_id"`
	AuthorID  string    `json:"authorId" db:"author_id"`
	Content   string    `json:"content" db:"content"`
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt time.Time `json:"updatedAt" db:"updated_at"`
}

// PostUpdate holds the fields of a partial post update; nil means keep.
type PostUpdate struct {
	Caption  *string
	ImageURL *string
}
