package request

import (
	"encoding/json"

	"github.com/rs/zerolog"
)

type LoginRequest struct {
	Name     string `validate:"required" json:"name"`
	Password string `validate:"required" json:"password"`
}

func (l LoginRequest) MarshalZerologObject(e *zerolog.Event) {
	e.Str("name", l.Name).Str("password", "***")
}

func (l LoginRequest) MarshalJSON() ([]byte, error) {
	l.Password = "***"
	type L LoginRequest
	return json.Marshal(L(l))
}
