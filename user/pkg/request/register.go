package request

import (
	"encoding/json"

	"github.com/rs/zerolog"
)

type RegisterRequest struct {
	Name     string `validate:"required,min=3" json:"name"`
	Password string `validate:"required,min=8" json:"password"`
}

func (r RegisterRequest) MarshalZerologObject(e *zerolog.Event) {
	e.Str("name", r.Name).Str("password", "***")
}

func (r RegisterRequest) MarshalJSON() ([]byte, error) {
	r.Password = "***"
	type R RegisterRequest
	return json.Marshal(R(r))
}
