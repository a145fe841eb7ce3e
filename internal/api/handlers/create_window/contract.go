package create_window

import (
	"context"

	createWindow "github.com/frizerio/salon-booking-service/internal/usecase/create_window"
)

type CreateWindowUseCase interface {
	Execute(ctx context.Context, req *createWindow.Request) (*createWindow.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
