package errors

import "fmt"

var (
	ErrWorkerPanic       = fmt.Errorf("worker panic")
	ErrNoAttachedCard    = fmt.Errorf("no attached work item")
	ErrCorruptTimerState = fmt.Errorf("corrupt timer state record")
	ErrUnknownRoom       = fmt.Errorf("unknown room")
	ErrSessionNotFound   = fmt.Errorf("session not found")
)
