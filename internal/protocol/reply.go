package protocol

// ErrorReply is the uniform error envelope for every failed request.
type ErrorReply struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

func NewErrorReply(message string) ErrorReply {
	return ErrorReply{Status: "error", Message: message}
}

// AuthReply acknowledges a successful login or registration.
type AuthReply struct {
	Status  string `json:"status"`
	Authkey string `json:"authkey"`
}

func NewAuthReply(authkey string) AuthReply {
	return AuthReply{Status: "ok", Authkey: authkey}
}

// OKReply acknowledges a successful post creation.
type OKReply struct {
	Status string `json:"status"`
}

func NewOKReply() OKReply {
	return OKReply{Status: "ok"}
}

// LikesReply reports the committed like count after a like or unlike.
type LikesReply struct {
	Status string `json:"status"`
	Likes  int64  `json:"likes"`
}

func NewLikedReply(likes int64) LikesReply {
	return LikesReply{Status: "liked", Likes: likes}
}

func NewUnlikedReply(likes int64) LikesReply {
	return LikesReply{Status: "unliked", Likes: likes}
}

// The list and show replies are deliberately unwrapped: list sends the
// raw summary array and show the raw detail object (or a bare {} when
// the post does not exist). Clients depend on that asymmetry.
