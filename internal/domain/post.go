package domain

import "time"

type Post struct {
	Id        PostId
	BoardId   BoardId
	Author    User
	Title     string
	Content   string
	Views     int64
	Likes     int64
	Status    Status
	CreatedAt time.Time
	UpdatedAt time.Time
}

type PostCreationData struct {
	BoardId BoardId
	Author  UserId
	Title   string
	Content string
}

// Nil fields keep their prior value.
type PostUpdateData struct {
	Title   *string
	Content *string
}

type Comment struct {
	Id        CommentId
	PostId    PostId
	Author    User
	Content   string
	Status    Status
	CreatedAt time.Time
	UpdatedAt time.Time
}

type CommentCreationData struct {
	PostId  PostId
	Author  UserId
	Content string
}

type Like struct {
	PostId    PostId
	UserId    UserId
	CreatedAt time.Time
}
