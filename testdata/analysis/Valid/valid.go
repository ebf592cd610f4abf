package valid

import (
	"net/http"
	"time"
)

//derive:Builder
type Server struct {
	Host    string
	Port    uint16
	Handler http.Handler
	Timeout time.Duration
}

type (
	//derive:Builder
	Client struct {
		BaseURL string
		Retries int
	}

	// derive:Builder is not a directive with the space.
	Option func(*Client)
)

// Embedded fields are named by their types.
//
//derive:Builder
type Event struct {
	time.Time
	*http.Request
	_    struct{}
	Name string
}

//derive:Builder trailing text is allowed
type Tagged struct {
	Tag string `json:"tag"`
}

//derive:Builder
//derive:Builder
type Twice struct {
	N int
}
