package httpapi

import (
	"fmt"
	"unicode/utf8"
)

// Request DTOs with the field constraints the public contract defines.
// Violations are rejected here, before any service runs.

type submitScoreIn struct {
	Game     *string `json:"game"`
	Score    int64   `json:"score"`
	Username string  `json:"username"`
	Password string  `json:"password"`
	Email    *string `json:"email"`
}

func (in *submitScoreIn) validate() error {
	// an omitted game defaults; an explicit empty string does not
	if in.Game == nil {
		game := "tetris"
		in.Game = &game
	}
	if err := strLen("game", *in.Game, 1, 32); err != nil {
		return err
	}
	if in.Score < 0 || in.Score > 10_000_000 {
		return fmt.Errorf("score must be between 0 and 10000000")
	}
	if err := strLen("username", in.Username, 2, 20); err != nil {
		return err
	}
	if err := strLen("password", in.Password, 6, 128); err != nil {
		return err
	}
	if in.Email != nil {
		if err := strLen("email", *in.Email, 3, 254); err != nil {
			return err
		}
	}
	return nil
}

type linkEmailIn struct {
	Username string `json:"username"`
	Password string `json:"password"`
	Email    string `json:"email"`
}

func (in *linkEmailIn) validate() error {
	if err := strLen("username", in.Username, 2, 20); err != nil {
		return err
	}
	if err := strLen("password", in.Password, 6, 128); err != nil {
		return err
	}
	return strLen("email", in.Email, 3, 254)
}

type emailIn struct {
	Email string `json:"email"`
}

func (in *emailIn) validate() error {
	return strLen("email", in.Email, 3, 254)
}

type resetPasswordIn struct {
	Token       string `json:"token"`
	NewPassword string `json:"new_password"`
}

func (in *resetPasswordIn) validate() error {
	if err := strLen("token", in.Token, 10, 256); err != nil {
		return err
	}
	return strLen("new_password", in.NewPassword, 6, 128)
}

// strLen bounds are character counts, not bytes, so multibyte input is
// measured the way clients see it.
func strLen(field, value string, min, max int) error {
	if n := utf8.RuneCountInString(value); n < min || n > max {
		return fmt.Errorf("%s length must be between %d and %d", field, min, max)
	}
	return nil
}
