package consumer

import "time"

func init() {
	retryDelay = time.Millisecond
	maxRetryDelay = 5 * time.Millisecond
}
