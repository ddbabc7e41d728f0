package refresh_grids

import "github.com/MoodLink/ArenaAxis-sub000/internal/service/refresher"

type RefreshService interface {
	Trigger(reason refresher.Reason) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
