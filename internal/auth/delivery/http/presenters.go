package http

import (
	"clickup-context/internal/auth"
	"clickup-context/pkg/clickup"
)

// --- Request DTOs ---

type loginReq struct {
	ClientID     string `json:"client_id"     binding:"required"`
	ClientSecret string `json:"client_secret" binding:"required"`
}

func (r loginReq) toInput() auth.StartOAuthInput {
	return auth.StartOAuthInput{
		ClientID:     r.ClientID,
		ClientSecret: r.ClientSecret,
	}
}

// --- Response DTOs ---

type statusResp struct {
	Authenticated bool   `json:"authenticated"`
	Error         string `json:"error,omitempty"`
}

func newStatusResp(st auth.AuthStatus) statusResp {
	return statusResp{
		Authenticated: st.Authenticated,
		Error:         st.Error,
	}
}

type userResp struct {
	ID             int64  `json:"id"`
	Username       string `json:"username"`
	Email          string `json:"email"`
	ProfilePicture string `json:"profile_picture,omitempty"`
}

func newUserResp(u *clickup.AuthenticatedUser) userResp {
	return userResp{
		ID:             u.ID,
		Username:       u.Username,
		Email:          u.Email,
		ProfilePicture: u.ProfilePicture,
	}
}
