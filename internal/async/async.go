package async

import "github.com/sirupsen/logrus"

func pcall(fn func()) {
	defer func() {
		if err := recover(); err != nil {
			logrus.Errorf("async: recovered from panic: %v", err)
		}
	}()

	fn()
}

// Run executes fn in a new goroutine. A panic in fn is logged and swallowed.
func Run(fn func()) {
	go pcall(fn)
}
