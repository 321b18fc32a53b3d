package models

import "time"

// UserDTO is the public face of a user; it never carries the password hash.
type UserDTO struct {
	ID              string  `json:"id"`
	Username        string  `json:"username"`
	Email           string  `json:"email"`
	ProfilePhotoURL *string `json:"profilePhotoUrl"`
}

// PostView is a post enriched with counters and viewer-relative flags.
type PostView struct {
	ID                 string    `json:"id"`
	AuthorID           string    `json:"authorId"`
	Username           string    `json:"username"`
	UserEmail          string    `json:"userEmail"`
	Caption            string    `json:"caption"`
	ImageURL           *string   `json:"imageUrl"`
	CreatedAt          time.Time `json:"createdAt"`
	UpdatedAt          time.Time `json:"updatedAt"`
	LikeCount          int64     `json:"likeCount"`
	CommentCount       int64     `json:"commentCount"`
	LikedByCurrentUser bool      `json:"likedByCurrentUser"`
	FollowingAuthor    bool      `json:"followingAuthor"`
}

type CommentView struct {
	ID        string    `json:"id"`
	PostID    string    `json:"postId"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
	User      *UserDTO  `json:"user"`
}

type LikeView struct {
	ID        string    `json:"id"`
	CreatedAt time.Time `json:"createdAt"`
	User      *UserDTO  `json:"user"`
}

func ToUserDTO(u *User) *UserDTO {
	if u == nil {
		return nil
	}
	return &UserDTO{
		ID:              u.UserID,
		Username:        u.Username,
		Email:           u.Email,
		ProfilePhotoURL: u.ProfilePhotoURL,
	}
}

func ToUserDTOs(users []*User) []*UserDTO {
	list := make([]*UserDTO, 0, len(users))
	for _, u := range users {
		list = append(list, ToUserDTO(u))
	}
	return list
}

func ToCommentView(c *Comment, author *User) *CommentView {
	return &CommentView{
		ID:        c.CommentID,
		PostID:    c.PostID,
		Content:   c.Content,
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
		User:      ToUserDTO(author),
	}
}

func ToLikeView(l *Like, user *User) *LikeView {
	return &LikeView{
		ID:        l.LikeID,
		CreatedAt: l.CreatedAt,
		User:      ToUserDTO(user),
	}
}
