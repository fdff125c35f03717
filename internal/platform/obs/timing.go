package obs

import (
	"context"
	"log"
	"time"
)

type ctxKey string

const searchIDKey ctxKey = "search_id"

// WithSearchID tags the context with the id used in timing log lines.
func WithSearchID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, searchIDKey, id)
}

// SearchID returns the search id carried by the context, if any.
func SearchID(ctx context.Context) string {
	id, _ := ctx.Value(searchIDKey).(string)
	return id
}

func Time(ctx context.Context, name string) func(errp *error) {
	start := time.Now()
	id := SearchID(ctx)

	return func(errp *error) {
		dur := time.Since(start)

		if errp != nil && *errp != nil {
			log.Printf("search_id=%s op=%s dur=%dms err=%v", id, name, dur.Milliseconds(), *errp)
			return
		}
		log.Printf("search_id=%s op=%s dur=%dms", id, name, dur.Milliseconds())
	}
}
