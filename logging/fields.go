package logging

import (
	"time"

	"github.com/felixgeelhaar/bolt/v3"
)

type Field func(*bolt.Event) *bolt.Event

func Kind(kind string) Field {
	return func(e *bolt.Event) *bolt.Event {
		return e.Str("kind", kind)
	}
}

func Endpoint(url string) Field {
	return func(e *bolt.Event) *bolt.Event {
		return e.Str("endpoint", url)
	}
}

func RequestID(id string) Field {
	return func(e *bolt.Event) *bolt.Event {
		return e.Str("request_id", id)
	}
}

func Session(id string) Field {
	return func(e *bolt.Event) *bolt.Event {
		return e.Str("session_id", id)
	}
}

func Attempt(n int) Field {
	return func(e *bolt.Event) *bolt.Event {
		return e.Int("attempt", n)
	}
}

func Status(code int) Field {
	return func(e *bolt.Event) *bolt.Event {
		return e.Int("status", code)
	}
}

func Shapes(n int) Field {
	return func(e *bolt.Event) *bolt.Event {
		return e.Int("shapes", n)
	}
}

func File(name string) Field {
	return func(e *bolt.Event) *bolt.Event {
		return e.Str("file", name)
	}
}

func Duration(d time.Duration) Field {
	return func(e *bolt.Event) *bolt.Event {
		return e.Int64("duration_ms", d.Milliseconds())
	}
}

func Err(err error) Field {
	return func(e *bolt.Event) *bolt.Event {
		if err == nil {
			return e
		}
		return e.Err(err)
	}
}
