// Package dispatch turns one inbound message into one database-backed
// operation and exactly one reply.
package dispatch

import (
	"context"
	"errors"
	"fmt"
	"log"

	"activies-backend/internal/model"
	"activies-backend/internal/protocol"
)

// Client-facing error messages. These are part of the wire contract.
const (
	MsgMalformed     = "Malformatted request."
	MsgNoAction      = "Malformatted request: no action keyword."
	MsgUnrecognized  = "Unrecognized action keyword."
	MsgLoginFailed   = "Login failed."
	MsgUsernameTaken = "Username is taken."
	MsgUserInsert    = "Unable to insert user object."
	MsgAuthkeyInsert = "Could not insert unique authkey."
	MsgAuthFailed    = "Authorization failed."
	MsgPostInsert    = "Row could not be inserted."
	MsgRequestFailed = "Request failed."
)

// Replier delivers the single reply for one logical request.
type Replier interface {
	Send(payload any) error
}

// Authenticator covers login and registration.
type Authenticator interface {
	Login(ctx context.Context, username, password string) (int64, error)
	Register(ctx context.Context, username, email, password string) (int64, error)
}

// SessionAuthority resolves bearer tokens and mints new ones.
type SessionAuthority interface {
	Authorize(ctx context.Context, authkey string) (int64, error)
	IssueToken(ctx context.Context, uid int64) (string, error)
}

// PostStore covers every post-backed operation.
type PostStore interface {
	List(ctx context.Context) ([]model.PostSummary, error)
	Create(ctx context.Context, uid int64, title, description, location string, pic *string) error
	Show(ctx context.Context, postID, viewerID int64) (*model.PostDetail, error)
	Like(ctx context.Context, uid, postID int64) (int64, error)
	Unlike(ctx context.Context, uid, postID int64) (int64, error)
}

type Dispatcher struct {
	users Authenticator
	auth  SessionAuthority
	posts PostStore
}

func NewDispatcher(users Authenticator, auth SessionAuthority, posts PostStore) *Dispatcher {
	return &Dispatcher{
		users: users,
		auth:  auth,
		posts: posts,
	}
}

// Dispatch handles one raw inbound message end to end. Every path sends
// exactly one reply; no error escapes to the caller. Dispatch is safe to
// run concurrently with other requests from the same connection.
func (d *Dispatcher) Dispatch(ctx context.Context, raw []byte, r Replier) {
	req, err := protocol.Parse(raw)
	if err != nil {
		d.send(r, protocol.NewErrorReply(parseMessage(err)))
		return
	}

	switch req := req.(type) {
	case protocol.LoginRequest:
		d.handleLogin(ctx, req, r)
	case protocol.RegisterRequest:
		d.handleRegister(ctx, req, r)
	case protocol.ListRequest:
		d.handleList(ctx, req, r)
	case protocol.PostRequest:
		d.handlePost(ctx, req, r)
	case protocol.ShowRequest:
		d.handleShow(ctx, req, r)
	case protocol.LikeRequest:
		d.handleLike(ctx, req, r)
	case protocol.UnlikeRequest:
		d.handleUnlike(ctx, req, r)
	default:
		d.send(r, protocol.NewErrorReply(MsgUnrecognized))
	}
}

func (d *Dispatcher) handleLogin(ctx context.Context, req protocol.LoginRequest, r Replier) {
	uid, err := d.users.Login(ctx, req.Username, req.Password)
	if err != nil {
		d.fail(r, err)
		return
	}

	authkey, err := d.auth.IssueToken(ctx, uid)
	if err != nil {
		d.fail(r, err)
		return
	}

	d.send(r, protocol.NewAuthReply(authkey))
}

func (d *Dispatcher) handleRegister(ctx context.Context, req protocol.RegisterRequest, r Replier) {
	uid, err := d.users.Register(ctx, req.Username, req.Email, req.Password)
	if err != nil {
		d.fail(r, err)
		return
	}

	authkey, err := d.auth.IssueToken(ctx, uid)
	if err != nil {
		d.fail(r, err)
		return
	}

	d.send(r, protocol.NewAuthReply(authkey))
}

func (d *Dispatcher) handleList(ctx context.Context, req protocol.ListRequest, r Replier) {
	if _, err := d.auth.Authorize(ctx, req.Authkey); err != nil {
		d.fail(r, err)
		return
	}

	posts, err := d.posts.List(ctx)
	if err != nil {
		d.fail(r, err)
		return
	}

	// Raw array, no status envelope.
	d.send(r, posts)
}

func (d *Dispatcher) handlePost(ctx context.Context, req protocol.PostRequest, r Replier) {
	uid, err := d.auth.Authorize(ctx, req.Authkey)
	if err != nil {
		d.fail(r, err)
		return
	}

	if err := d.posts.Create(ctx, uid, req.Title, req.Description, req.Location, req.Pic); err != nil {
		d.fail(r, err)
		return
	}

	d.send(r, protocol.NewOKReply())
}

func (d *Dispatcher) handleShow(ctx context.Context, req protocol.ShowRequest, r Replier) {
	uid, err := d.auth.Authorize(ctx, req.Authkey)
	if err != nil {
		d.fail(r, err)
		return
	}

	detail, err := d.posts.Show(ctx, req.ID, uid)
	if err != nil {
		if errors.Is(err, model.ErrPostNotFound) {
			// An absent post is not an error: reply a bare object.
			d.send(r, struct{}{})
			return
		}
		d.fail(r, err)
		return
	}

	// Raw detail object, no status envelope.
	d.send(r, detail)
}

func (d *Dispatcher) handleLike(ctx context.Context, req protocol.LikeRequest, r Replier) {
	uid, err := d.auth.Authorize(ctx, req.Authkey)
	if err != nil {
		d.fail(r, err)
		return
	}

	likes, err := d.posts.Like(ctx, uid, req.ID)
	if err != nil {
		d.fail(r, err)
		return
	}

	d.send(r, protocol.NewLikedReply(likes))
}

func (d *Dispatcher) handleUnlike(ctx context.Context, req protocol.UnlikeRequest, r Replier) {
	uid, err := d.auth.Authorize(ctx, req.Authkey)
	if err != nil {
		d.fail(r, err)
		return
	}

	likes, err := d.posts.Unlike(ctx, uid, req.ID)
	if err != nil {
		d.fail(r, err)
		return
	}

	d.send(r, protocol.NewUnlikedReply(likes))
}

// fail converts any handler-level failure into an error reply. Database
// errors never terminate the connection.
func (d *Dispatcher) fail(r Replier, err error) {
	d.send(r, protocol.NewErrorReply(errorMessage(err)))
}

// send performs the single reply transmission. A send failure means the
// client vanished mid-request; it is logged and swallowed.
func (d *Dispatcher) send(r Replier, payload any) {
	if err := r.Send(payload); err != nil {
		log.Printf("[WARN] Client disconnected while processing request: %v", err)
	}
}

func parseMessage(err error) string {
	var missing *protocol.MissingFieldError
	var unrecognized *protocol.UnrecognizedActionError

	switch {
	case errors.Is(err, protocol.ErrNoAction):
		return MsgNoAction
	case errors.As(err, &unrecognized):
		return MsgUnrecognized
	case errors.As(err, &missing):
		return fmt.Sprintf("Malformatted request: missing field %q.", missing.Field)
	default:
		return MsgMalformed
	}
}

func errorMessage(err error) string {
	switch {
	case errors.Is(err, model.ErrInvalidCredentials):
		return MsgLoginFailed
	case errors.Is(err, model.ErrUsernameExists):
		return MsgUsernameTaken
	case errors.Is(err, model.ErrUserNotInserted):
		return MsgUserInsert
	case errors.Is(err, model.ErrAuthkeyNotInserted):
		return MsgAuthkeyInsert
	case errors.Is(err, model.ErrAuthorizationFailed):
		return MsgAuthFailed
	case errors.Is(err, model.ErrPostNotInserted):
		return MsgPostInsert
	default:
		// Pool or store failure: reply generically rather than leaking
		// driver detail.
		return MsgRequestFailed
	}
}
