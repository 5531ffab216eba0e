// Package protocol defines the wire format: the inbound request envelope,
// its parsed per-action variants, and the outbound reply shapes.
package protocol

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

// Parse errors. The dispatcher maps each to its client-facing message.
var (
	// ErrMalformed means the message body was not a JSON object.
	ErrMalformed = errors.New("malformed request body")

	// ErrNoAction means the object carried no action keyword.
	ErrNoAction = errors.New("no action keyword")
)

// UnrecognizedActionError is returned for action keywords outside the
// implemented set, including accepted-but-unimplemented ones.
type UnrecognizedActionError struct {
	Action string
}

func (e *UnrecognizedActionError) Error() string {
	return fmt.Sprintf("unrecognized action %q", e.Action)
}

// MissingFieldError is returned when a recognized action lacks one of its
// required fields.
type MissingFieldError struct {
	Field string
}

func (e *MissingFieldError) Error() string {
	return fmt.Sprintf("missing field %q", e.Field)
}

// Request is the closed set of parsed actions. Each variant carries the
// fields its handler needs, validated at parse time.
type Request interface {
	action() string
}

type LoginRequest struct {
	Username string
	Password string
}

type RegisterRequest struct {
	Username string
	Email    string
	Password string
}

type ListRequest struct {
	Authkey string
}

type PostRequest struct {
	Authkey     string
	Title       string
	Description string
	Location    string
	Pic         *string
}

type ShowRequest struct {
	Authkey string
	ID      int64
}

type LikeRequest struct {
	Authkey string
	ID      int64
}

type UnlikeRequest struct {
	Authkey string
	ID      int64
}

func (LoginRequest) action() string    { return "login" }
func (RegisterRequest) action() string { return "register" }
func (ListRequest) action() string     { return "list" }
func (PostRequest) action() string     { return "post" }
func (ShowRequest) action() string     { return "show" }
func (LikeRequest) action() string     { return "like" }
func (UnlikeRequest) action() string   { return "unlike" }

// envelope is the raw superset of all inbound fields.
type envelope struct {
	Action      string  `json:"action"`
	Uname       string  `json:"uname"`
	Pass        string  `json:"pass"`
	Email       string  `json:"email"`
	Authkey     string  `json:"authkey"`
	Title       string  `json:"title"`
	Description string  `json:"description"`
	Location    string  `json:"location"`
	Pic         *string `json:"pic"`
	ID          *int64  `json:"id"`
}

// Parse decodes a raw message into its action variant. The action keyword
// is trimmed and case-folded before matching.
func Parse(raw []byte) (Request, error) {
	var env envelope
	if err := json.Unmarshal(raw, &env); err != nil {
		return nil, ErrMalformed
	}

	if env.Action == "" {
		return nil, ErrNoAction
	}

	switch strings.ToLower(strings.TrimSpace(env.Action)) {
	case "login":
		if env.Uname == "" {
			return nil, &MissingFieldError{Field: "uname"}
		}
		if env.Pass == "" {
			return nil, &MissingFieldError{Field: "pass"}
		}
		return LoginRequest{Username: env.Uname, Password: env.Pass}, nil

	case "register":
		if env.Uname == "" {
			return nil, &MissingFieldError{Field: "uname"}
		}
		if env.Email == "" {
			return nil, &MissingFieldError{Field: "email"}
		}
		if env.Pass == "" {
			return nil, &MissingFieldError{Field: "pass"}
		}
		return RegisterRequest{Username: env.Uname, Email: env.Email, Password: env.Pass}, nil

	case "list":
		if env.Authkey == "" {
			return nil, &MissingFieldError{Field: "authkey"}
		}
		return ListRequest{Authkey: env.Authkey}, nil

	case "post":
		if env.Authkey == "" {
			return nil, &MissingFieldError{Field: "authkey"}
		}
		if env.Title == "" {
			return nil, &MissingFieldError{Field: "title"}
		}
		return PostRequest{
			Authkey:     env.Authkey,
			Title:       env.Title,
			Description: env.Description,
			Location:    env.Location,
			Pic:         env.Pic,
		}, nil

	case "show":
		if env.Authkey == "" {
			return nil, &MissingFieldError{Field: "authkey"}
		}
		if env.ID == nil {
			return nil, &MissingFieldError{Field: "id"}
		}
		return ShowRequest{Authkey: env.Authkey, ID: *env.ID}, nil

	case "like":
		if env.Authkey == "" {
			return nil, &MissingFieldError{Field: "authkey"}
		}
		if env.ID == nil {
			return nil, &MissingFieldError{Field: "id"}
		}
		return LikeRequest{Authkey: env.Authkey, ID: *env.ID}, nil

	case "unlike":
		if env.Authkey == "" {
			return nil, &MissingFieldError{Field: "authkey"}
		}
		if env.ID == nil {
			return nil, &MissingFieldError{Field: "id"}
		}
		return UnlikeRequest{Authkey: env.Authkey, ID: *env.ID}, nil

	default:
		// myprof is accepted during beta but unimplemented; it falls
		// through here like any unknown keyword.
		return nil, &UnrecognizedActionError{Action: env.Action}
	}
}
