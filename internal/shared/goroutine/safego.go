// Package goroutine provides utilities for safely launching goroutines with panic recovery.
package goroutine

import (
	"fmt"
	"runtime/debug"

	"github.com/compiler-aditya/PropTech/internal/shared/logger"
)

// SafeGo launches fn on its own goroutine. A panic inside fn is logged with its stack
// under the given name and never reaches the caller. The returned channel is closed
// once fn has returned or panicked; callers that fire and forget simply ignore it.
func SafeGo(log logger.Interface, name string, fn func()) <-chan struct{} {
	done := make(chan struct{})
	go func() {
		defer close(done)
		defer func() {
			if r := recover(); r != nil {
				log.Errorw("goroutine panicked",
					"goroutine", name,
					"panic", fmt.Sprintf("%v", r),
					"stack", string(debug.Stack()),
				)
			}
		}()
		fn()
	}()
	return done
}
