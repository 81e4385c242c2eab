// Package session holds the per-request session state and its cookie codec.
//
// A Session is either anonymous or authenticated. The display theme is a
// browser preference that survives logout. Every cookie signed for a session
// carries its id, so revoking the id invalidates all of them at once.
package session

import (
	"movie_watchlist/model"
)

const (
	ThemeDark  = "dark"
	ThemeLight = "light"
)

type Session struct {
	UserId  string
	Email   string
	Theme   string
	Flashes []model.FlashMessage

	id       string
	modified bool
}

func (s *Session) IsAuthenticated() bool {
	return s != nil && s.UserId != "" && s.Email != ""
}

// Login starts a new session id so cookies issued before sign in stay anonymous.
func (s *Session) Login(userId string, email string) {
	s.id = ""
	s.UserId = userId
	s.Email = email
	s.modified = true
}

// Logout drops the identity and pending flashes but keeps the theme.
func (s *Session) Logout() {
	s.id = ""
	s.UserId = ""
	s.Email = ""
	s.Flashes = nil
	s.modified = true
}

func (s *Session) ToggleTheme() string {
	if s.Theme == ThemeDark {
		s.Theme = ThemeLight
	} else {
		s.Theme = ThemeDark
	}
	s.modified = true
	return s.Theme
}

func (s *Session) AddFlash(category string, message string) {
	s.Flashes = append(s.Flashes, model.FlashMessage{Category: category, Message: message})
	s.modified = true
}

func (s *Session) PopFlashes() []model.FlashMessage {
	if len(s.Flashes) == 0 {
		return nil
	}
	flashes := s.Flashes
	s.Flashes = nil
	s.modified = true
	return flashes
}

func (s *Session) Modified() bool {
	return s.modified
}

// Id is shared by every cookie signed for this session, empty until the first one.
func (s *Session) Id() string {
	return s.id
}
