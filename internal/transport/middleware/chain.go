package middleware

import "net/http"

// Middleware wraps an http.Handler.
type Middleware func(http.Handler) http.Handler

// Chain composes mws so that the first one is outermost:
// Chain(RequestID(), Auth(...))(h) runs RequestID, then Auth, then h.
// Nil entries are skipped so optional layers can be listed in place.
func Chain(mws ...Middleware) Middleware {
	return func(final http.Handler) http.Handler {
		for i := len(mws) - 1; i >= 0; i-- {
			if mws[i] == nil {
				continue
			}
			final = mws[i](final)
		}
		return final
	}
}

// Step is one stage of a route pipeline. It either returns the request to
// hand to the next stage or an error that ends the pipeline.
type Step func(r *http.Request) (*http.Request, error)

// RunSteps feeds r through steps in order and stops at the first error.
func RunSteps(r *http.Request, steps ...Step) (*http.Request, error) {
	for _, step := range steps {
		next, err := step(r)
		if err != nil {
			return nil, err
		}
		r = next
	}
	return r, nil
}
